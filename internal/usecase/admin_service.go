package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/cricket-analytics/internal/domain/admin"
	"github.com/riskibarqy/cricket-analytics/internal/platform/id"
	"github.com/riskibarqy/cricket-analytics/internal/platform/logging"
)

// AdminService backs the admin profile page.
type AdminService struct {
	repo   admin.Repository
	ids    id.Generator
	logger *logging.Logger
	now    func() time.Time
}

func NewAdminService(repo admin.Repository, ids id.Generator, logger *logging.Logger) *AdminService {
	if logger == nil {
		logger = logging.Default()
	}
	if ids == nil {
		ids = id.NewUUIDGenerator()
	}
	return &AdminService{
		repo:   repo,
		ids:    ids,
		logger: logger,
		now:    time.Now,
	}
}

func (s *AdminService) GetAdmin(ctx context.Context, adminID string) (_ admin.Admin, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.GetAdmin")
	defer func() { endUsecaseSpan(span, err) }()

	adminID = strings.TrimSpace(adminID)
	if adminID == "" {
		return admin.Admin{}, fmt.Errorf("%w: admin id is required", ErrInvalidInput)
	}

	item, exists, err := s.repo.GetByID(ctx, adminID)
	if err != nil {
		return admin.Admin{}, fmt.Errorf("get admin: %w", err)
	}
	if !exists {
		return admin.Admin{}, fmt.Errorf("%w: admin=%s", ErrNotFound, adminID)
	}
	return item, nil
}

// GetStatistics returns the admin's activity figures, falling back to the
// "N/A" placeholders when nothing has been recorded yet.
func (s *AdminService) GetStatistics(ctx context.Context, adminID string) (_ admin.Statistics, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.GetStatistics")
	defer func() { endUsecaseSpan(span, err) }()

	if _, err := s.GetAdmin(ctx, adminID); err != nil {
		return admin.Statistics{}, err
	}

	stats, exists, err := s.repo.GetStatistics(ctx, strings.TrimSpace(adminID))
	if err != nil {
		return admin.Statistics{}, fmt.Errorf("get admin statistics: %w", err)
	}
	if !exists {
		return admin.EmptyStatistics(), nil
	}
	return stats, nil
}

// UpdateProfile edits the caller's own profile.
func (s *AdminService) UpdateProfile(ctx context.Context, session SessionContext, adminID string, update admin.ProfileUpdate) (_ admin.Admin, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.UpdateProfile")
	defer func() { endUsecaseSpan(span, err) }()

	adminID = strings.TrimSpace(adminID)
	if err := authorizeOwner(session, adminID); err != nil {
		return admin.Admin{}, err
	}

	update = update.Normalize()
	if err := update.Validate(); err != nil {
		return admin.Admin{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated, exists, err := s.repo.UpdateProfile(ctx, adminID, update)
	if err != nil {
		return admin.Admin{}, fmt.Errorf("update admin profile: %w", err)
	}
	if !exists {
		return admin.Admin{}, fmt.Errorf("%w: admin=%s", ErrNotFound, adminID)
	}

	s.logger.InfoContext(ctx, "admin profile updated", "admin_id", adminID)
	return updated, nil
}

// RecordStatistics replaces the caller's activity figures.
func (s *AdminService) RecordStatistics(ctx context.Context, session SessionContext, adminID string, stats admin.Statistics) (err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.RecordStatistics")
	defer func() { endUsecaseSpan(span, err) }()

	adminID = strings.TrimSpace(adminID)
	if err := authorizeOwner(session, adminID); err != nil {
		return err
	}
	if stats.TotalEmails < 0 || stats.AutoReplied < 0 || stats.ManualReplies < 0 {
		return fmt.Errorf("%w: counters must be non-negative", ErrInvalidInput)
	}
	if _, err := s.GetAdmin(ctx, adminID); err != nil {
		return err
	}

	if err := s.repo.UpsertStatistics(ctx, adminID, stats); err != nil {
		return fmt.Errorf("upsert admin statistics: %w", err)
	}
	return nil
}

// Register creates an admin account with a generated id. Used to bootstrap the
// store from configuration.
func (s *AdminService) Register(ctx context.Context, name, email, avatarURL string) (_ admin.Admin, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.Register")
	defer func() { endUsecaseSpan(span, err) }()

	profile := admin.ProfileUpdate{Name: name, Email: email, AvatarURL: avatarURL}.Normalize()
	if err := profile.Validate(); err != nil {
		return admin.Admin{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	adminID, err := s.ids.NewID()
	if err != nil {
		return admin.Admin{}, fmt.Errorf("generate admin id: %w", err)
	}

	now := s.now().UTC()
	item := admin.Admin{
		ID:        adminID,
		Name:      profile.Name,
		Email:     profile.Email,
		AvatarURL: profile.AvatarURL,
		Status:    admin.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Upsert(ctx, item); err != nil {
		return admin.Admin{}, fmt.Errorf("upsert admin: %w", err)
	}

	s.logger.InfoContext(ctx, "admin registered", "admin_id", item.ID)
	return item, nil
}

func authorizeOwner(session SessionContext, adminID string) error {
	if !session.Authenticated() {
		return fmt.Errorf("%w: session is required", ErrUnauthorized)
	}
	if adminID == "" {
		return fmt.Errorf("%w: admin id is required", ErrInvalidInput)
	}
	if session.UserID != adminID {
		return fmt.Errorf("%w: admin=%s cannot act on admin=%s", ErrForbidden, session.UserID, adminID)
	}
	return nil
}
