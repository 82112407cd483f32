package player

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/leaguehub/go/internal/errs"
	"github.com/mcdev12/leaguehub/go/internal/models"
	"github.com/rs/zerolog/log"
)

// MinNameLength is the shortest accepted player name, after trimming.
const MinNameLength = 2

// PlayerRepository defines what the app layer needs from the repository
type PlayerRepository interface {
	CreatePlayer(ctx context.Context, req CreatePlayerRequest, createdAt time.Time) (*models.Player, error)
	GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error)
	GetPlayersByTeam(ctx context.Context, teamID uuid.UUID) ([]models.Player, error)
	GetPlayersByTeamIDs(ctx context.Context, teamIDs []uuid.UUID) ([]models.Player, error)
	GetPlayersByLeague(ctx context.Context, leagueID uuid.UUID) ([]models.Player, error)
	UpdatePlayer(ctx context.Context, id uuid.UUID, name string) (*models.Player, error)
	DeletePlayer(ctx context.Context, id uuid.UUID) error
}

// TeamApp resolves the team a player joins
type TeamApp interface {
	GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error)
}

// App handles player business logic
type App struct {
	repo    PlayerRepository
	teamApp TeamApp
	clock   clockwork.Clock
}

// NewApp creates a new player App
func NewApp(repo PlayerRepository, teamApp TeamApp, clock clockwork.Clock) *App {
	return &App{
		repo:    repo,
		teamApp: teamApp,
		clock:   clock,
	}
}

// CreatePlayer adds a player to an existing team
func (a *App) CreatePlayer(ctx context.Context, req CreatePlayerRequest) (*models.Player, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.TeamID == uuid.Nil {
		return nil, fmt.Errorf("validation failed: %w", errs.Validation("team_id", "is required"))
	}
	if err := validateName(req.Name); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := a.teamApp.GetTeam(ctx, req.TeamID); err != nil {
		return nil, fmt.Errorf("team not found: %w", err)
	}

	player, err := a.repo.CreatePlayer(ctx, req, a.clock.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	log.Info().
		Str("player_id", player.ID.String()).
		Str("team_id", player.TeamID.String()).
		Msg("created player")
	return player, nil
}

// GetPlayer retrieves a player by ID
func (a *App) GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	player, err := a.repo.GetPlayer(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return player, nil
}

// GetPlayersByTeam retrieves a team's players
func (a *App) GetPlayersByTeam(ctx context.Context, teamID uuid.UUID) ([]models.Player, error) {
	players, err := a.repo.GetPlayersByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get players by team: %w", err)
	}
	return players, nil
}

// GetPlayersByTeamIDs retrieves the players of the given teams
func (a *App) GetPlayersByTeamIDs(ctx context.Context, teamIDs []uuid.UUID) ([]models.Player, error) {
	players, err := a.repo.GetPlayersByTeamIDs(ctx, teamIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get players by team ids: %w", err)
	}
	return players, nil
}

// GetPlayersByLeague retrieves every player registered in a league
func (a *App) GetPlayersByLeague(ctx context.Context, leagueID uuid.UUID) ([]models.Player, error) {
	if leagueID == uuid.Nil {
		return nil, fmt.Errorf("validation failed: %w", errs.Validation("league_id", "is required"))
	}

	players, err := a.repo.GetPlayersByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to get players by league: %w", err)
	}
	return players, nil
}

// UpdatePlayer renames a player
func (a *App) UpdatePlayer(ctx context.Context, id uuid.UUID, name string) (*models.Player, error) {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	player, err := a.repo.UpdatePlayer(ctx, id, name)
	if err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	log.Info().Str("player_id", player.ID.String()).Msg("updated player")
	return player, nil
}

// DeletePlayer deletes a player
func (a *App) DeletePlayer(ctx context.Context, id uuid.UUID) error {
	if err := a.repo.DeletePlayer(ctx, id); err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}

	log.Info().Str("player_id", id.String()).Msg("deleted player")
	return nil
}

func validateName(name string) error {
	if name == "" {
		return errs.Validation("name", "is required")
	}
	if utf8.RuneCountInString(name) < MinNameLength {
		return errs.Validation("name", "must be at least %d characters", MinNameLength)
	}
	return nil
}
