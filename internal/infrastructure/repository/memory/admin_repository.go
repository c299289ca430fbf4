package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/riskibarqy/cricket-analytics/internal/domain/admin"
)

type AdminRepository struct {
	mu     sync.RWMutex
	admins map[string]admin.Admin
	stats  map[string]admin.Statistics
	now    func() time.Time
}

func NewAdminRepository(seed ...admin.Admin) *AdminRepository {
	admins := make(map[string]admin.Admin, len(seed))
	for _, item := range seed {
		id := strings.TrimSpace(item.ID)
		if id == "" {
			continue
		}
		admins[id] = item
	}

	return &AdminRepository{
		admins: admins,
		stats:  make(map[string]admin.Statistics),
		now:    time.Now,
	}
}

func (r *AdminRepository) GetByID(_ context.Context, id string) (admin.Admin, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.admins[id]
	return item, ok, nil
}

func (r *AdminRepository) Upsert(_ context.Context, item admin.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.admins[item.ID]; ok && item.CreatedAt.IsZero() {
		item.CreatedAt = existing.CreatedAt
	}
	r.admins[item.ID] = item
	return nil
}

func (r *AdminRepository) UpdateProfile(_ context.Context, id string, update admin.ProfileUpdate) (admin.Admin, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.admins[id]
	if !ok {
		return admin.Admin{}, false, nil
	}
	item.Name = update.Name
	item.Email = update.Email
	item.AvatarURL = update.AvatarURL
	item.UpdatedAt = r.now().UTC()
	r.admins[id] = item

	return item, true, nil
}

func (r *AdminRepository) GetStatistics(_ context.Context, adminID string) (admin.Statistics, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats, ok := r.stats[adminID]
	return stats, ok, nil
}

func (r *AdminRepository) UpsertStatistics(_ context.Context, adminID string, stats admin.Statistics) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stats[adminID] = stats
	return nil
}
