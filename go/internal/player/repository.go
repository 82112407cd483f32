package player

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/leaguehub/go/internal/models"
	"github.com/mcdev12/leaguehub/go/internal/player/db"
	"github.com/mcdev12/leaguehub/go/internal/sqlutil"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	CreatePlayer(ctx context.Context, arg db.CreatePlayerParams) (db.Player, error)
	GetPlayer(ctx context.Context, id uuid.UUID) (db.Player, error)
	GetPlayersByTeam(ctx context.Context, teamID uuid.UUID) ([]db.Player, error)
	GetPlayersByTeamIDs(ctx context.Context, teamIds []uuid.UUID) ([]db.Player, error)
	GetPlayersByLeague(ctx context.Context, leagueID uuid.UUID) ([]db.Player, error)
	UpdatePlayer(ctx context.Context, arg db.UpdatePlayerParams) (db.Player, error)
	DeletePlayer(ctx context.Context, id uuid.UUID) (int64, error)
}

// Repository handles all player-related database operations
type Repository struct {
	queries Querier
}

// NewRepository creates a new player repository
func NewRepository(queries Querier) *Repository {
	return &Repository{
		queries: queries,
	}
}

// CreatePlayerRequest contains all data needed to create a player
type CreatePlayerRequest struct {
	TeamID uuid.UUID
	Name   string
}

// CreatePlayer creates a player on a team
func (r *Repository) CreatePlayer(ctx context.Context, req CreatePlayerRequest, createdAt time.Time) (*models.Player, error) {
	player, err := r.queries.CreatePlayer(ctx, db.CreatePlayerParams{
		TeamID:    req.TeamID,
		Name:      req.Name,
		CreatedAt: createdAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	return dbPlayerToDomain(player), nil
}

// GetPlayer retrieves a player by ID
func (r *Repository) GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	player, err := r.queries.GetPlayer(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", sqlutil.MapError(err, "player", id))
	}

	return dbPlayerToDomain(player), nil
}

// GetPlayersByTeam retrieves a team's players
func (r *Repository) GetPlayersByTeam(ctx context.Context, teamID uuid.UUID) ([]models.Player, error) {
	players, err := r.queries.GetPlayersByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get players by team: %w", err)
	}
	return dbPlayersToDomain(players), nil
}

// GetPlayersByTeamIDs retrieves the players of any of the given teams
func (r *Repository) GetPlayersByTeamIDs(ctx context.Context, teamIDs []uuid.UUID) ([]models.Player, error) {
	if len(teamIDs) == 0 {
		return []models.Player{}, nil
	}

	players, err := r.queries.GetPlayersByTeamIDs(ctx, teamIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get players by team ids: %w", err)
	}
	return dbPlayersToDomain(players), nil
}

// GetPlayersByLeague retrieves every player of every team in a league
func (r *Repository) GetPlayersByLeague(ctx context.Context, leagueID uuid.UUID) ([]models.Player, error) {
	players, err := r.queries.GetPlayersByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to get players by league: %w", err)
	}
	return dbPlayersToDomain(players), nil
}

// UpdatePlayer renames a player
func (r *Repository) UpdatePlayer(ctx context.Context, id uuid.UUID, name string) (*models.Player, error) {
	player, err := r.queries.UpdatePlayer(ctx, db.UpdatePlayerParams{ID: id, Name: name})
	if err != nil {
		return nil, fmt.Errorf("failed to update player: %w", sqlutil.MapError(err, "player", id))
	}

	return dbPlayerToDomain(player), nil
}

// DeletePlayer deletes a player
func (r *Repository) DeletePlayer(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeletePlayer(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}
	return sqlutil.RequireAffected(n, "player", id)
}

// Helper function to convert database player to domain model
func dbPlayerToDomain(dbPlayer db.Player) *models.Player {
	return &models.Player{
		ID:        dbPlayer.ID,
		TeamID:    dbPlayer.TeamID,
		Name:      dbPlayer.Name,
		CreatedAt: dbPlayer.CreatedAt,
	}
}

func dbPlayersToDomain(dbPlayers []db.Player) []models.Player {
	players := make([]models.Player, len(dbPlayers))
	for i, p := range dbPlayers {
		players[i] = *dbPlayerToDomain(p)
	}
	return players
}
