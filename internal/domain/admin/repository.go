package admin

import "context"

// Repository persists admin accounts and their activity statistics.
type Repository interface {
	GetByID(ctx context.Context, id string) (Admin, bool, error)
	Upsert(ctx context.Context, admin Admin) error
	UpdateProfile(ctx context.Context, id string, update ProfileUpdate) (Admin, bool, error)
	GetStatistics(ctx context.Context, adminID string) (Statistics, bool, error)
	UpsertStatistics(ctx context.Context, adminID string, stats Statistics) error
}
