// Package leagueview assembles the public, read-only view of a league that
// viewers reach through its share code.
package leagueview

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/leaguehub/go/internal/errs"
	"github.com/mcdev12/leaguehub/go/internal/leaguecode"
	"github.com/mcdev12/leaguehub/go/internal/models"
	"github.com/mcdev12/leaguehub/go/internal/standings"
)

// LeaguesRepository defines the league lookups the view needs
type LeaguesRepository interface {
	GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error)
	GetLeagueByCode(ctx context.Context, code string) (*models.League, error)
}

// TeamsRepository defines the team lookups the view needs
type TeamsRepository interface {
	GetTeamsByLeague(ctx context.Context, leagueID uuid.UUID) ([]models.Team, error)
}

// MatchesRepository defines the match lookups the view needs
type MatchesRepository interface {
	GetMatchesByLeague(ctx context.Context, leagueID uuid.UUID) ([]models.Match, error)
}

// RosterAssembler attaches players to teams
type RosterAssembler interface {
	Assemble(ctx context.Context, teams []models.Team) ([]models.TeamWithDetails, error)
}

// View is everything shown on a league's public page
type View struct {
	League    *models.League
	Teams     []models.TeamWithDetails
	Upcoming  []models.MatchWithTeamNames
	Completed []models.MatchWithTeamNames
	Standings []models.StandingsRow
}

// App composes repositories with the standings and roster components
type App struct {
	leaguesRepo LeaguesRepository
	teamsRepo   TeamsRepository
	matchesRepo MatchesRepository
	roster      RosterAssembler
}

// NewApp creates a new league view App
func NewApp(leaguesRepo LeaguesRepository, teamsRepo TeamsRepository, matchesRepo MatchesRepository, roster RosterAssembler) *App {
	return &App{
		leaguesRepo: leaguesRepo,
		teamsRepo:   teamsRepo,
		matchesRepo: matchesRepo,
		roster:      roster,
	}
}

// GetLeagueView resolves a share code and builds the league's view. Teams
// carry their players and standings tallies; standings are ranked by points
// then name. Cancelled matches appear in neither match list.
func (a *App) GetLeagueView(ctx context.Context, code string) (*View, error) {
	league, err := leaguecode.Resolve(ctx, a.leaguesRepo, code)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve league code: %w", err)
	}

	teams, err := a.teamsRepo.GetTeamsByLeague(ctx, league.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get teams: %w", err)
	}
	matches, err := a.matchesRepo.GetMatchesByLeague(ctx, league.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get matches: %w", err)
	}
	details, err := a.roster.Assemble(ctx, teams)
	if err != nil {
		return nil, err
	}

	rows := standings.Compute(teams, matches)
	standings.ApplyTo(details, rows)

	names := make(map[uuid.UUID]string, len(teams))
	for _, t := range teams {
		names[t.ID] = t.Name
	}

	view := &View{
		League:    league,
		Teams:     details,
		Upcoming:  []models.MatchWithTeamNames{},
		Completed: []models.MatchWithTeamNames{},
		Standings: standings.Rank(rows),
	}
	for _, m := range matches {
		named := models.MatchWithTeamNames{
			Match:        m,
			HomeTeamName: names[m.HomeTeamID],
			AwayTeamName: names[m.AwayTeamID],
		}
		switch m.Status {
		case models.MatchStatusScheduled:
			view.Upcoming = append(view.Upcoming, named)
		case models.MatchStatusCompleted:
			view.Completed = append(view.Completed, named)
		}
	}
	return view, nil
}

// GetStandings returns the ranked standings table of a league
func (a *App) GetStandings(ctx context.Context, leagueID uuid.UUID) ([]models.StandingsRow, error) {
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
	matches, err := a.matchesRepo.GetMatchesByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to get matches: %w", err)
	}

	return standings.Rank(standings.Compute(teams, matches)), nil
}
