package teams

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/leaguehub/go/internal/models"
	"github.com/mcdev12/leaguehub/go/internal/sqlutil"
	"github.com/mcdev12/leaguehub/go/internal/teams/db"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	CreateTeam(ctx context.Context, arg db.CreateTeamParams) (db.Team, error)
	GetTeam(ctx context.Context, id uuid.UUID) (db.Team, error)
	GetTeamsByLeague(ctx context.Context, leagueID uuid.UUID) ([]db.Team, error)
	UpdateTeam(ctx context.Context, arg db.UpdateTeamParams) (db.Team, error)
	DeleteTeam(ctx context.Context, id uuid.UUID) (int64, error)
}

// Repository implements team data access operations
type Repository struct {
	queries Querier
}

// NewRepository creates a new teams repository
func NewRepository(querier Querier) *Repository {
	return &Repository{
		queries: querier,
	}
}

// CreateTeam creates a new team
func (r *Repository) CreateTeam(ctx context.Context, req CreateTeamRequest, createdAt time.Time) (*models.Team, error) {
	team, err := r.queries.CreateTeam(ctx, db.CreateTeamParams{
		LeagueID:  req.LeagueID,
		Name:      req.Name,
		LogoUrl:   sqlutil.ToSqlString(req.LogoURL),
		CreatedAt: createdAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return r.dbTeamToModel(team), nil
}

// GetTeam retrieves a team by ID
func (r *Repository) GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	team, err := r.queries.GetTeam(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", sqlutil.MapError(err, "team", id))
	}

	return r.dbTeamToModel(team), nil
}

// GetTeamsByLeague retrieves a league's teams in creation order
func (r *Repository) GetTeamsByLeague(ctx context.Context, leagueID uuid.UUID) ([]models.Team, error) {
	teams, err := r.queries.GetTeamsByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to get teams by league: %w", err)
	}

	result := make([]models.Team, len(teams))
	for i, team := range teams {
		result[i] = *r.dbTeamToModel(team)
	}
	return result, nil
}

// UpdateTeam updates an existing team
func (r *Repository) UpdateTeam(ctx context.Context, id uuid.UUID, req UpdateTeamRequest) (*models.Team, error) {
	team, err := r.queries.UpdateTeam(ctx, db.UpdateTeamParams{
		ID:      id,
		Name:    req.Name,
		LogoUrl: sqlutil.ToSqlString(req.LogoURL),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update team: %w", sqlutil.MapError(err, "team", id))
	}

	return r.dbTeamToModel(team), nil
}

// DeleteTeam deletes a team; its players and matches go with it
func (r *Repository) DeleteTeam(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeleteTeam(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	return sqlutil.RequireAffected(n, "team", id)
}

// Helper function to convert database team to domain model
func (r *Repository) dbTeamToModel(team db.Team) *models.Team {
	return &models.Team{
		ID:        team.ID,
		LeagueID:  team.LeagueID,
		Name:      team.Name,
		LogoURL:   sqlutil.FromSqlStringPtr(team.LogoUrl),
		CreatedAt: team.CreatedAt,
	}
}
