package sqldb

import "time"

type adminTableModel struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Status    string    `db:"status"`
	AvatarURL string    `db:"avatar_url"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type adminStatisticsTableModel struct {
	AdminID         string    `db:"admin_id"`
	TotalEmails     int       `db:"total_emails"`
	AutoReplied     int       `db:"auto_replied"`
	ManualReplies   int       `db:"manual_replies"`
	AvgResponseTime string    `db:"avg_response_time"`
	SuccessRate     string    `db:"success_rate"`
	LastActive      string    `db:"last_active"`
	UpdatedAt       time.Time `db:"updated_at"`
}

var adminColumns = []string{"id", "name", "email", "status", "avatar_url", "created_at", "updated_at"}

var adminStatisticsColumns = []string{
	"admin_id", "total_emails", "auto_replied", "manual_replies",
	"avg_response_time", "success_rate", "last_active", "updated_at",
}
