package leagues

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/leaguehub/go/internal/errs"
	"github.com/mcdev12/leaguehub/go/internal/leaguecode"
	"github.com/mcdev12/leaguehub/go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestApp(repo *FakeRepository) *App {
	return NewApp(repo, leaguecode.NewGenerator(3, nil), clockwork.NewFakeClockAt(testNow))
}

func TestCreateLeague(t *testing.T) {
	adminID := uuid.New()

	tests := []struct {
		name      string
		req       CreateLeagueRequest
		wantErr   error
		wantTrace []string
	}{
		{
			name:      "valid league",
			req:       CreateLeagueRequest{Name: "  Sunday League ", Sport: models.SportFootball, AdminID: adminID},
			wantTrace: []string{"GetLeagueByCode", "CreateLeague"},
		},
		{
			name:    "name too short",
			req:     CreateLeagueRequest{Name: "ab", Sport: models.SportFootball, AdminID: adminID},
			wantErr: errs.ErrValidation,
		},
		{
			name:    "unknown sport",
			req:     CreateLeagueRequest{Name: "Office League", Sport: "Curling", AdminID: adminID},
			wantErr: errs.ErrValidation,
		},
		{
			name:    "missing admin",
			req:     CreateLeagueRequest{Name: "Office League", Sport: models.SportCricket},
			wantErr: errs.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewFakeRepository()
			app := newTestApp(repo)

			league, err := app.CreateLeague(context.Background(), tt.req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, league)
				assert.Empty(t, repo.Trace(), "validation failures must not touch the store")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Sunday League", league.Name)
			assert.True(t, leaguecode.Valid(league.Code))
			assert.Equal(t, testNow, league.CreatedAt)
			assert.Equal(t, tt.wantTrace, repo.Trace())
		})
	}
}

func TestCreateLeagueRetriesOnInsertConflict(t *testing.T) {
	repo := NewFakeRepository()
	conflicts := 1
	repo.CreateLeagueFunc = func(ctx context.Context, req NewLeague) (*models.League, error) {
		if conflicts > 0 {
			conflicts--
			return nil, fmt.Errorf("failed to create league: %w", errs.ErrConflict)
		}
		return &models.League{ID: uuid.New(), Name: req.Name, Code: req.Code, Sport: req.Sport}, nil
	}
	app := newTestApp(repo)

	league, err := app.CreateLeague(context.Background(), CreateLeagueRequest{
		Name: "Badminton Club", Sport: models.SportBadminton, AdminID: uuid.New(),
	})

	require.NoError(t, err)
	assert.Equal(t, "Badminton Club", league.Name)
	assert.Equal(t, []string{"GetLeagueByCode", "CreateLeague", "GetLeagueByCode", "CreateLeague"}, repo.Trace())
}

func TestCreateLeagueCodeExhausted(t *testing.T) {
	repo := NewFakeRepository()
	repo.GetLeagueByCodeFunc = func(ctx context.Context, code string) (*models.League, error) {
		return &models.League{Code: code}, nil
	}
	app := newTestApp(repo)

	_, err := app.CreateLeague(context.Background(), CreateLeagueRequest{
		Name: "Cricket Club", Sport: models.SportCricket, AdminID: uuid.New(),
	})

	assert.ErrorIs(t, err, errs.ErrCodeExhausted)
	assert.NotContains(t, repo.Trace(), "CreateLeague")
}

func TestGetLeagueByCode(t *testing.T) {
	league := models.League{ID: uuid.New(), Name: "Town League", Code: "TOWN42"}
	app := newTestApp(NewFakeRepository(league))

	got, err := app.GetLeagueByCode(context.Background(), "town42")
	require.NoError(t, err)
	assert.Equal(t, league.ID, got.ID)

	_, err = app.GetLeagueByCode(context.Background(), "ZZZZZZ")
	assert.ErrorIs(t, err, errs.ErrNotFound)

	_, err = app.GetLeagueByCode(context.Background(), "TOWN4")
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestUpdateAndDeleteRequireAdmin(t *testing.T) {
	adminID, stranger := uuid.New(), uuid.New()
	league := models.League{ID: uuid.New(), Name: "Town League", Sport: models.SportFootball, Code: "TOWN42", AdminID: adminID}

	t.Run("update by admin", func(t *testing.T) {
		app := newTestApp(NewFakeRepository(league))
		got, err := app.UpdateLeague(context.Background(), league.ID, UpdateLeagueRequest{
			AdminID: adminID, Name: "City League", Sport: models.SportCricket,
		})
		require.NoError(t, err)
		assert.Equal(t, "City League", got.Name)
		assert.Equal(t, models.SportCricket, got.Sport)
	})

	t.Run("update by stranger", func(t *testing.T) {
		repo := NewFakeRepository(league)
		app := newTestApp(repo)
		_, err := app.UpdateLeague(context.Background(), league.ID, UpdateLeagueRequest{
			AdminID: stranger, Name: "City League", Sport: models.SportCricket,
		})
		assert.ErrorIs(t, err, errs.ErrPermissionDenied)
		assert.NotContains(t, repo.Trace(), "UpdateLeague")
	})

	t.Run("delete by stranger", func(t *testing.T) {
		repo := NewFakeRepository(league)
		err := newTestApp(repo).DeleteLeague(context.Background(), league.ID, stranger)
		assert.ErrorIs(t, err, errs.ErrPermissionDenied)
		assert.NotContains(t, repo.Trace(), "DeleteLeague")
	})

	t.Run("delete by admin", func(t *testing.T) {
		repo := NewFakeRepository(league)
		app := newTestApp(repo)
		require.NoError(t, app.DeleteLeague(context.Background(), league.ID, adminID))
		_, err := app.GetLeague(context.Background(), league.ID)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("delete unknown league", func(t *testing.T) {
		err := newTestApp(NewFakeRepository()).DeleteLeague(context.Background(), uuid.New(), adminID)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestGetLeaguesByAdmin(t *testing.T) {
	adminID := uuid.New()
	repo := NewFakeRepository(
		models.League{ID: uuid.New(), Name: "Mine", AdminID: adminID},
		models.League{ID: uuid.New(), Name: "Theirs", AdminID: uuid.New()},
	)
	app := newTestApp(repo)

	got, err := app.GetLeaguesByAdmin(context.Background(), adminID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Mine", got[0].Name)

	_, err = app.GetLeaguesByAdmin(context.Background(), uuid.Nil)
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestCreateLeagueSharesCodeBudget(t *testing.T) {
	repo := NewFakeRepository()
	lookups := 0
	repo.GetLeagueByCodeFunc = func(ctx context.Context, code string) (*models.League, error) {
		lookups++
		if lookups%3 != 0 {
			return &models.League{Code: code}, nil
		}
		return nil, errs.NotFound("league code", code)
	}
	repo.CreateLeagueFunc = func(ctx context.Context, req NewLeague) (*models.League, error) {
		return nil, fmt.Errorf("failed to create league: %w", errs.ErrConflict)
	}
	app := newTestApp(repo)

	_, err := app.CreateLeague(context.Background(), CreateLeagueRequest{
		Name: "Tuesday Football", Sport: models.SportFootball, AdminID: uuid.New(),
	})

	assert.ErrorIs(t, err, errs.ErrCodeExhausted)
	assert.Equal(t, []string{"GetLeagueByCode", "GetLeagueByCode", "GetLeagueByCode", "CreateLeague"}, repo.Trace())
}
