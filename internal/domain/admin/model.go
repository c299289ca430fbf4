package admin

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"

	RoleAdmin         = "Admin"
	RoleInactiveAdmin = "Inactive Admin"

	NotAvailable = "N/A"
)

var (
	ErrNameRequired     = errors.New("name is required")
	ErrInvalidEmail     = errors.New("email is invalid")
	ErrInvalidAvatarURL = errors.New("avatar url is invalid")
	ErrInvalidProfile   = errors.New("profile is invalid")
)

var profileValidator = validator.New(validator.WithRequiredStructEnabled())

// Admin is a dashboard operator account.
type Admin struct {
	ID        string
	Name      string
	Email     string
	Status    string
	AvatarURL string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (a Admin) Role() string {
	if strings.EqualFold(strings.TrimSpace(a.Status), StatusActive) {
		return RoleAdmin
	}
	return RoleInactiveAdmin
}

// JoinedDate is the creation day, or empty when unknown.
func (a Admin) JoinedDate() string {
	if a.CreatedAt.IsZero() {
		return ""
	}
	return a.CreatedAt.UTC().Format("2006-01-02")
}

// ProfileUpdate carries the editable profile fields.
type ProfileUpdate struct {
	Name      string `validate:"required,max=120"`
	Email     string `validate:"required,email,max=254"`
	AvatarURL string `validate:"omitempty,url,max=2048"`
}

func (u ProfileUpdate) Normalize() ProfileUpdate {
	return ProfileUpdate{
		Name:      strings.TrimSpace(u.Name),
		Email:     strings.ToLower(strings.TrimSpace(u.Email)),
		AvatarURL: strings.TrimSpace(u.AvatarURL),
	}
}

// Validate expects a normalized update.
func (u ProfileUpdate) Validate() error {
	err := profileValidator.Struct(u)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}
	switch fe := fieldErrs[0]; fe.Field() {
	case "Name":
		if fe.Tag() == "required" {
			return ErrNameRequired
		}
		return fmt.Errorf("%w: name is longer than %s", ErrInvalidProfile, fe.Param())
	case "Email":
		return fmt.Errorf("%w: %q", ErrInvalidEmail, u.Email)
	case "AvatarURL":
		return fmt.Errorf("%w: %q", ErrInvalidAvatarURL, u.AvatarURL)
	default:
		return fmt.Errorf("%w: %s failed %s", ErrInvalidProfile, fe.Field(), fe.Tag())
	}
}

// Statistics summarizes an admin's reply activity.
type Statistics struct {
	TotalEmails     int
	AutoReplied     int
	ManualReplies   int
	AvgResponseTime string
	SuccessRate     string
	LastActive      string
}

// EmptyStatistics is served when nothing has been recorded for an admin.
func EmptyStatistics() Statistics {
	return Statistics{
		AvgResponseTime: NotAvailable,
		SuccessRate:     NotAvailable,
		LastActive:      NotAvailable,
	}
}
