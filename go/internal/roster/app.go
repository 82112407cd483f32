package roster

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/leaguehub/go/internal/errs"
	"github.com/mcdev12/leaguehub/go/internal/models"
)

// LeaguesRepository defines what the app layer needs to confirm a league exists
type LeaguesRepository interface {
	GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error)
}

// TeamsRepository defines what the app layer needs from the teams repository
type TeamsRepository interface {
	GetTeamsByLeague(ctx context.Context, leagueID uuid.UUID) ([]models.Team, error)
}

// PlayersRepository defines what the app layer needs from the players repository
type PlayersRepository interface {
	GetPlayersByTeamIDs(ctx context.Context, teamIDs []uuid.UUID) ([]models.Player, error)
}

// App assembles league rosters
type App struct {
	leaguesRepo LeaguesRepository
	teamsRepo   TeamsRepository
	playersRepo PlayersRepository
}

// NewApp creates a new roster App
func NewApp(leaguesRepo LeaguesRepository, teamsRepo TeamsRepository, playersRepo PlayersRepository) *App {
	return &App{
		leaguesRepo: leaguesRepo,
		teamsRepo:   teamsRepo,
		playersRepo: playersRepo,
	}
}

// GetLeagueRoster returns every team of a league with its players, in the
// order the teams repository lists them. Standings tallies are left zero.
func (a *App) GetLeagueRoster(ctx context.Context, leagueID uuid.UUID) ([]models.TeamWithDetails, error) {
	if leagueID == uuid.Nil {
		return nil, fmt.Errorf("validation failed: %w", errs.Validation("league_id", "is required"))
	}

	if _, err := a.leaguesRepo.GetLeague(ctx, leagueID); err != nil {
		return nil, fmt.Errorf("league not found: %w", err)
	}

	teams, err := a.teamsRepo.GetTeamsByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to get teams: %w", err)
	}

	return a.Assemble(ctx, teams)
}

// Assemble loads the players of the given teams and attaches them.
func (a *App) Assemble(ctx context.Context, teams []models.Team) ([]models.TeamWithDetails, error) {
	out := make([]models.TeamWithDetails, 0, len(teams))
	if len(teams) == 0 {
		return out, nil
	}

	teamIDs := make([]uuid.UUID, len(teams))
	for i, t := range teams {
		teamIDs[i] = t.ID
	}

	players, err := a.playersRepo.GetPlayersByTeamIDs(ctx, teamIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}

	grouped := GroupByTeam(players, teamIDs)
	for _, t := range teams {
		out = append(out, models.TeamWithDetails{Team: t, Players: grouped[t.ID]})
	}
	return out, nil
}
