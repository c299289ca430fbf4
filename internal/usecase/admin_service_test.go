package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/cricket-analytics/internal/domain/admin"
	adminmock "github.com/riskibarqy/cricket-analytics/internal/mocks/domain/admin"
	"github.com/riskibarqy/cricket-analytics/internal/platform/id"
	"github.com/riskibarqy/cricket-analytics/internal/platform/logging"
)

var ownerSession = SessionContext{UserID: "adm-1", Token: "token-1"}

func TestAdminService_GetStatistics_FallsBackWhenMissing(t *testing.T) {
	t.Parallel()

	repo := adminmock.NewRepository(t)
	service := NewAdminService(repo, id.NewSequence(), logging.NewNop())

	repo.On("GetByID", anyCtx(), "adm-1").Return(admin.Admin{ID: "adm-1", Status: admin.StatusActive}, true, nil).Once()
	repo.On("GetStatistics", anyCtx(), "adm-1").Return(admin.Statistics{}, false, nil).Once()

	got, err := service.GetStatistics(context.Background(), "adm-1")
	require.NoError(t, err)
	assert.Equal(t, admin.EmptyStatistics(), got)
	assert.Equal(t, "N/A", got.SuccessRate)
}

func TestAdminService_GetStatistics_UnknownAdmin(t *testing.T) {
	t.Parallel()

	repo := adminmock.NewRepository(t)
	service := NewAdminService(repo, id.NewSequence(), logging.NewNop())

	repo.On("GetByID", anyCtx(), "ghost").Return(admin.Admin{}, false, nil).Once()

	_, err := service.GetStatistics(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAdminService_UpdateProfile_RequiresOwner(t *testing.T) {
	t.Parallel()

	repo := adminmock.NewRepository(t)
	service := NewAdminService(repo, id.NewSequence(), logging.NewNop())
	update := admin.ProfileUpdate{Name: "Ravi", Email: "ravi@example.com"}

	_, err := service.UpdateProfile(context.Background(), SessionContext{}, "adm-1", update)
	require.ErrorIs(t, err, ErrUnauthorized)

	_, err = service.UpdateProfile(context.Background(), SessionContext{UserID: "adm-2", Token: "t"}, "adm-1", update)
	require.ErrorIs(t, err, ErrForbidden)
}

func TestAdminService_UpdateProfile_ValidatesAndPersists(t *testing.T) {
	t.Parallel()

	repo := adminmock.NewRepository(t)
	service := NewAdminService(repo, id.NewSequence(), logging.NewNop())

	_, err := service.UpdateProfile(context.Background(), ownerSession, "adm-1", admin.ProfileUpdate{Name: "Ravi", Email: "not-an-email"})
	require.ErrorIs(t, err, ErrInvalidInput)

	repo.
		On("UpdateProfile", anyCtx(), "adm-1", admin.ProfileUpdate{Name: "Ravi Shastri", Email: "ravi@example.com"}).
		Return(admin.Admin{ID: "adm-1", Name: "Ravi Shastri", Email: "ravi@example.com", Status: admin.StatusActive}, true, nil).
		Once()

	got, err := service.UpdateProfile(context.Background(), ownerSession, " adm-1 ", admin.ProfileUpdate{Name: " Ravi Shastri ", Email: "Ravi@Example.com"})
	require.NoError(t, err)
	assert.Equal(t, "Admin", got.Role())
}

func TestAdminService_UpdateProfile_RepositoryError(t *testing.T) {
	t.Parallel()

	repo := adminmock.NewRepository(t)
	service := NewAdminService(repo, id.NewSequence(), logging.NewNop())
	boom := errors.New("db down")

	repo.On("UpdateProfile", anyCtx(), "adm-1", mock.Anything).Return(admin.Admin{}, false, boom).Once()

	_, err := service.UpdateProfile(context.Background(), ownerSession, "adm-1", admin.ProfileUpdate{Name: "Ravi", Email: "ravi@example.com"})
	assert.ErrorIs(t, err, boom)
}

func TestAdminService_RecordStatistics(t *testing.T) {
	t.Parallel()

	repo := adminmock.NewRepository(t)
	service := NewAdminService(repo, id.NewSequence(), logging.NewNop())
	stats := admin.Statistics{TotalEmails: 120, AutoReplied: 90, ManualReplies: 30, AvgResponseTime: "2m", SuccessRate: "98%", LastActive: "2024-05-01"}

	err := service.RecordStatistics(context.Background(), ownerSession, "adm-1", admin.Statistics{TotalEmails: -1})
	require.ErrorIs(t, err, ErrInvalidInput)

	repo.On("GetByID", anyCtx(), "adm-1").Return(admin.Admin{ID: "adm-1"}, true, nil).Once()
	repo.On("UpsertStatistics", anyCtx(), "adm-1", stats).Return(nil).Once()

	require.NoError(t, service.RecordStatistics(context.Background(), ownerSession, "adm-1", stats))
}

func TestAdminService_Register(t *testing.T) {
	t.Parallel()

	repo := adminmock.NewRepository(t)
	service := NewAdminService(repo, id.NewSequence("adm-42"), logging.NewNop())
	service.now = func() time.Time { return time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC) }

	repo.
		On("Upsert", anyCtx(), mock.MatchedBy(func(a admin.Admin) bool {
			return a.ID == "adm-42" && a.Email == "ops@example.com" && a.Status == admin.StatusActive
		})).
		Return(nil).
		Once()

	got, err := service.Register(context.Background(), "Ops", "OPS@example.com", "")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", got.JoinedDate())

	_, err = service.Register(context.Background(), "", "ops@example.com", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
