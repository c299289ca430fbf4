package sqldb

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/cricket-analytics/internal/domain/admin"
	qb "github.com/riskibarqy/cricket-analytics/internal/platform/querybuilder"
)

// created_at is kept on conflict.
const adminUpsertSuffix = `ON CONFLICT (id) DO UPDATE SET
	name = excluded.name,
	email = excluded.email,
	status = excluded.status,
	avatar_url = excluded.avatar_url,
	updated_at = excluded.updated_at`

type AdminRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewAdminRepository(db *sqlx.DB) *AdminRepository {
	return &AdminRepository{db: db, now: time.Now}
}

func (r *AdminRepository) GetByID(ctx context.Context, id string) (admin.Admin, bool, error) {
	query, args, err := qb.Select(adminColumns...).From("admins").
		Where(qb.Eq("id", id)).
		Limit(1).
		ToSQL()
	if err != nil {
		return admin.Admin{}, false, fmt.Errorf("build select admin query: %w", err)
	}

	var row adminTableModel
	if err := r.db.GetContext(ctx, &row, r.db.Rebind(query), args...); err != nil {
		if isNotFound(err) {
			return admin.Admin{}, false, nil
		}
		return admin.Admin{}, false, fmt.Errorf("select admin: %w", err)
	}

	return adminFromRow(row), true, nil
}

func (r *AdminRepository) Upsert(ctx context.Context, item admin.Admin) error {
	now := r.now().UTC()
	model := adminTableModel{
		ID:        item.ID,
		Name:      item.Name,
		Email:     item.Email,
		Status:    item.Status,
		AvatarURL: item.AvatarURL,
		CreatedAt: item.CreatedAt.UTC(),
		UpdatedAt: item.UpdatedAt.UTC(),
	}
	if model.CreatedAt.IsZero() {
		model.CreatedAt = now
	}
	if model.UpdatedAt.IsZero() {
		model.UpdatedAt = now
	}

	query, args, err := qb.InsertModel("admins", model, adminUpsertSuffix)
	if err != nil {
		return fmt.Errorf("build upsert admin query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("upsert admin: %w", err)
	}

	return nil
}

func (r *AdminRepository) UpdateProfile(ctx context.Context, id string, update admin.ProfileUpdate) (admin.Admin, bool, error) {
	query, args, err := qb.Update("admins").
		Set("name", update.Name).
		Set("email", update.Email).
		Set("avatar_url", update.AvatarURL).
		Set("updated_at", r.now().UTC()).
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return admin.Admin{}, false, fmt.Errorf("build update admin profile query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		return admin.Admin{}, false, fmt.Errorf("update admin profile: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return admin.Admin{}, false, fmt.Errorf("read updated admin rows: %w", err)
	}
	if affected == 0 {
		return admin.Admin{}, false, nil
	}

	return r.GetByID(ctx, id)
}

func (r *AdminRepository) GetStatistics(ctx context.Context, adminID string) (admin.Statistics, bool, error) {
	query, args, err := qb.Select(adminStatisticsColumns...).From("admin_statistics").
		Where(qb.Eq("admin_id", adminID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return admin.Statistics{}, false, fmt.Errorf("build select admin statistics query: %w", err)
	}

	var row adminStatisticsTableModel
	if err := r.db.GetContext(ctx, &row, r.db.Rebind(query), args...); err != nil {
		if isNotFound(err) {
			return admin.Statistics{}, false, nil
		}
		return admin.Statistics{}, false, fmt.Errorf("select admin statistics: %w", err)
	}

	return admin.Statistics{
		TotalEmails:     row.TotalEmails,
		AutoReplied:     row.AutoReplied,
		ManualReplies:   row.ManualReplies,
		AvgResponseTime: row.AvgResponseTime,
		SuccessRate:     row.SuccessRate,
		LastActive:      row.LastActive,
	}, true, nil
}

func (r *AdminRepository) UpsertStatistics(ctx context.Context, adminID string, stats admin.Statistics) error {
	model := adminStatisticsTableModel{
		AdminID:         adminID,
		TotalEmails:     stats.TotalEmails,
		AutoReplied:     stats.AutoReplied,
		ManualReplies:   stats.ManualReplies,
		AvgResponseTime: stats.AvgResponseTime,
		SuccessRate:     stats.SuccessRate,
		LastActive:      stats.LastActive,
		UpdatedAt:       r.now().UTC(),
	}

	query, args, err := qb.UpsertModel("admin_statistics", model, "admin_id")
	if err != nil {
		return fmt.Errorf("build upsert admin statistics query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("upsert admin statistics: %w", err)
	}

	return nil
}

func adminFromRow(row adminTableModel) admin.Admin {
	return admin.Admin{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		Status:    row.Status,
		AvatarURL: row.AvatarURL,
		CreatedAt: row.CreatedAt.UTC(),
		UpdatedAt: row.UpdatedAt.UTC(),
	}
}
