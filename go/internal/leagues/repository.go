package leagues

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/leaguehub/go/internal/leagues/db"
	"github.com/mcdev12/leaguehub/go/internal/models"
	"github.com/mcdev12/leaguehub/go/internal/sqlutil"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	CreateLeague(ctx context.Context, arg db.CreateLeagueParams) (db.League, error)
	GetLeague(ctx context.Context, id uuid.UUID) (db.League, error)
	GetLeagueByCode(ctx context.Context, code string) (db.League, error)
	GetLeaguesByAdmin(ctx context.Context, adminID uuid.UUID) ([]db.GetLeaguesByAdminRow, error)
	UpdateLeague(ctx context.Context, arg db.UpdateLeagueParams) (db.League, error)
}

// Repository implements league data access operations
type Repository struct {
	queries Querier
	db      *sql.DB
}

// NewRepository creates a new leagues repository
func NewRepository(querier Querier, database *sql.DB) *Repository {
	return &Repository{
		queries: querier,
		db:      database,
	}
}

// CreateLeague inserts a league. A taken code surfaces errs.ErrConflict.
func (r *Repository) CreateLeague(ctx context.Context, req NewLeague) (*models.League, error) {
	league, err := r.queries.CreateLeague(ctx, db.CreateLeagueParams{
		Name:      req.Name,
		SportType: string(req.Sport),
		Code:      req.Code,
		AdminID:   req.AdminID,
		CreatedAt: req.CreatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create league: %w", sqlutil.MapError(err, "league code", req.Code))
	}

	return r.dbLeagueToModel(league), nil
}

// GetLeague retrieves a league by ID
func (r *Repository) GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error) {
	league, err := r.queries.GetLeague(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get league: %w", sqlutil.MapError(err, "league", id))
	}

	return r.dbLeagueToModel(league), nil
}

// GetLeagueByCode retrieves a league by its share code, ignoring case
func (r *Repository) GetLeagueByCode(ctx context.Context, code string) (*models.League, error) {
	league, err := r.queries.GetLeagueByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get league by code: %w", sqlutil.MapError(err, "league code", code))
	}

	return r.dbLeagueToModel(league), nil
}

// GetLeaguesByAdmin retrieves an admin's leagues, newest first, with counts
func (r *Repository) GetLeaguesByAdmin(ctx context.Context, adminID uuid.UUID) ([]models.LeagueSummary, error) {
	rows, err := r.queries.GetLeaguesByAdmin(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("failed to get leagues by admin: %w", err)
	}

	summaries := make([]models.LeagueSummary, len(rows))
	for i, row := range rows {
		summaries[i] = models.LeagueSummary{
			League:     *r.dbLeagueToModel(row.League),
			TeamCount:  int(row.TeamCount),
			MatchCount: int(row.MatchCount),
		}
	}
	return summaries, nil
}

// UpdateLeague updates the mutable fields of a league
func (r *Repository) UpdateLeague(ctx context.Context, id uuid.UUID, req UpdateLeagueRequest) (*models.League, error) {
	league, err := r.queries.UpdateLeague(ctx, db.UpdateLeagueParams{
		ID:        id,
		Name:      req.Name,
		SportType: string(req.Sport),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update league: %w", sqlutil.MapError(err, "league", id))
	}

	return r.dbLeagueToModel(league), nil
}

// DeleteLeague removes a league with its matches, players and teams in one
// transaction
func (r *Repository) DeleteLeague(ctx context.Context, id uuid.UUID) error {
	err := sqlutil.Run(ctx, r.db, func(tx *sql.Tx) *db.Queries { return db.New(tx) }, func(q *db.Queries) error {
		if err := q.DeleteMatchesByLeague(ctx, id); err != nil {
			return fmt.Errorf("failed to delete matches: %w", err)
		}
		if err := q.DeletePlayersByLeague(ctx, id); err != nil {
			return fmt.Errorf("failed to delete players: %w", err)
		}
		if err := q.DeleteTeamsByLeague(ctx, id); err != nil {
			return fmt.Errorf("failed to delete teams: %w", err)
		}
		n, err := q.DeleteLeague(ctx, id)
		if err != nil {
			return err
		}
		return sqlutil.RequireAffected(n, "league", id)
	})
	if err != nil {
		return fmt.Errorf("failed to delete league: %w", err)
	}
	return nil
}

// Helper function to convert database league to domain model
func (r *Repository) dbLeagueToModel(league db.League) *models.League {
	return &models.League{
		ID:        league.ID,
		Name:      league.Name,
		Sport:     models.Sport(league.SportType),
		Code:      league.Code,
		AdminID:   league.AdminID,
		CreatedAt: league.CreatedAt,
	}
}
