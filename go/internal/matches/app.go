package matches

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/leaguehub/go/internal/errs"
	"github.com/mcdev12/leaguehub/go/internal/models"
	"github.com/rs/zerolog/log"
)

// MatchesRepository defines what the app layer needs from the repository
type MatchesRepository interface {
	CreateMatch(ctx context.Context, req NewMatch) (*models.Match, error)
	GetMatch(ctx context.Context, id uuid.UUID) (*models.Match, error)
	GetMatchesByLeague(ctx context.Context, leagueID uuid.UUID) ([]models.Match, error)
	GetMatchesByLeagueAndStatus(ctx context.Context, leagueID uuid.UUID, status models.MatchStatus) ([]models.Match, error)
	SetOutcome(ctx context.Context, id uuid.UUID, outcome Outcome) (*models.Match, error)
	RescheduleMatch(ctx context.Context, id uuid.UUID, date time.Time, clock string) (*models.Match, error)
	DeleteMatch(ctx context.Context, id uuid.UUID) error
}

// TeamsGetter resolves the teams of a fixture
type TeamsGetter interface {
	GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error)
}

// Metrics receives match status transitions
type Metrics interface {
	RecordMatchTransition(from, to models.MatchStatus)
}

type noopMetrics struct{}

func (noopMetrics) RecordMatchTransition(from, to models.MatchStatus) {}

// App handles the match lifecycle: scheduled, completed, cancelled.
//
// Every operation validates before it writes, and status and scores are
// always persisted together, so a failed call leaves the stored match as it
// was.
type App struct {
	repo    MatchesRepository
	teams   TeamsGetter
	clock   clockwork.Clock
	metrics Metrics
}

// NewApp creates a new matches App. A nil metrics collector records nothing.
func NewApp(repo MatchesRepository, teams TeamsGetter, clock clockwork.Clock, metrics Metrics) *App {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &App{
		repo:    repo,
		teams:   teams,
		clock:   clock,
		metrics: metrics,
	}
}

// Schedule creates a scheduled match between two different teams of the
// same league
func (a *App) Schedule(ctx context.Context, req ScheduleMatchRequest) (*models.Match, error) {
	date, clock, err := a.validateScheduleMatchRequest(req)
	if err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	for _, side := range []struct {
		field string
		id    uuid.UUID
	}{
		{"home_team_id", req.HomeTeamID},
		{"away_team_id", req.AwayTeamID},
	} {
		team, err := a.teams.GetTeam(ctx, side.id)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", side.field, err)
		}
		if team.LeagueID != req.LeagueID {
			return nil, fmt.Errorf("validation failed: %w",
				errs.Validation(side.field, "team %s does not belong to league %s", side.id, req.LeagueID))
		}
	}

	match, err := a.repo.CreateMatch(ctx, NewMatch{
		LeagueID:   req.LeagueID,
		HomeTeamID: req.HomeTeamID,
		AwayTeamID: req.AwayTeamID,
		MatchDate:  date,
		MatchTime:  clock,
		CreatedAt:  a.clock.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to schedule match: %w", err)
	}

	log.Info().
		Str("match_id", match.ID.String()).
		Str("league_id", match.LeagueID.String()).
		Str("date", date.Format(dateLayout)).
		Str("time", clock).
		Msg("scheduled match")
	return match, nil
}

// RecordResult stores both scores and marks the match completed, whatever
// its prior status. Re-recording a completed match overwrites its scores.
func (a *App) RecordResult(ctx context.Context, id uuid.UUID, homeScore, awayScore *int) (*models.Match, error) {
	if err := validateScores(homeScore, awayScore); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	home, away := *homeScore, *awayScore
	return a.transition(ctx, id, Outcome{
		Status:    models.MatchStatusCompleted,
		HomeScore: &home,
		AwayScore: &away,
	})
}

// ClearResult removes both scores and returns the match to scheduled.
// Cancelled matches cannot be reopened this way.
func (a *App) ClearResult(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	current, err := a.repo.GetMatch(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	if current.Status == models.MatchStatusCancelled {
		return nil, fmt.Errorf("validation failed: %w",
			errs.Validation("status", "cancelled match cannot be returned to scheduled"))
	}

	return a.write(ctx, current, Outcome{Status: models.MatchStatusScheduled})
}

// Cancel marks a scheduled or completed match cancelled and drops its
// scores. Cancelling a cancelled match changes nothing.
func (a *App) Cancel(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	current, err := a.repo.GetMatch(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	if current.Status == models.MatchStatusCancelled {
		return current, nil
	}

	return a.write(ctx, current, Outcome{Status: models.MatchStatusCancelled})
}

// Reschedule moves a match to a new date and time. Status and scores are
// left as they are.
func (a *App) Reschedule(ctx context.Context, id uuid.UUID, matchDate, matchTime string) (*models.Match, error) {
	date, err := parseDate(matchDate)
	if err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	clock, err := parseClock(matchTime)
	if err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	match, err := a.repo.RescheduleMatch(ctx, id, date, clock)
	if err != nil {
		return nil, fmt.Errorf("failed to reschedule match: %w", err)
	}

	log.Info().
		Str("match_id", id.String()).
		Str("date", date.Format(dateLayout)).
		Str("time", clock).
		Msg("rescheduled match")
	return match, nil
}

// GetMatch retrieves a match by ID
func (a *App) GetMatch(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	match, err := a.repo.GetMatch(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	return match, nil
}

// GetMatchesByLeague retrieves every match of a league
func (a *App) GetMatchesByLeague(ctx context.Context, leagueID uuid.UUID) ([]models.Match, error) {
	matches, err := a.repo.GetMatchesByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to get matches by league: %w", err)
	}
	return matches, nil
}

// GetMatchesByLeagueAndStatus retrieves a league's matches in one status
func (a *App) GetMatchesByLeagueAndStatus(ctx context.Context, leagueID uuid.UUID, status models.MatchStatus) ([]models.Match, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("validation failed: %w", errs.Validation("status", "unknown match status %q", status))
	}

	matches, err := a.repo.GetMatchesByLeagueAndStatus(ctx, leagueID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to get matches by status: %w", err)
	}
	return matches, nil
}

// DeleteMatch deletes a match
func (a *App) DeleteMatch(ctx context.Context, id uuid.UUID) error {
	if err := a.repo.DeleteMatch(ctx, id); err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}

	log.Info().Str("match_id", id.String()).Msg("deleted match")
	return nil
}

func (a *App) transition(ctx context.Context, id uuid.UUID, outcome Outcome) (*models.Match, error) {
	current, err := a.repo.GetMatch(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	return a.write(ctx, current, outcome)
}

func (a *App) write(ctx context.Context, current *models.Match, outcome Outcome) (*models.Match, error) {
	match, err := a.repo.SetOutcome(ctx, current.ID, outcome)
	if err != nil {
		return nil, fmt.Errorf("failed to update match: %w", err)
	}

	a.metrics.RecordMatchTransition(current.Status, match.Status)
	log.Info().
		Str("match_id", match.ID.String()).
		Str("from", string(current.Status)).
		Str("to", string(match.Status)).
		Msg("match status changed")
	return match, nil
}

// validateScheduleMatchRequest checks ids, distinct teams, date and time.
// It returns the parsed date and normalized HH:MM:SS time.
func (a *App) validateScheduleMatchRequest(req ScheduleMatchRequest) (time.Time, string, error) {
	if req.LeagueID == uuid.Nil {
		return time.Time{}, "", errs.Validation("league_id", "is required")
	}
	if req.HomeTeamID == uuid.Nil {
		return time.Time{}, "", errs.Validation("home_team_id", "is required")
	}
	if req.AwayTeamID == uuid.Nil {
		return time.Time{}, "", errs.Validation("away_team_id", "is required")
	}
	if req.HomeTeamID == req.AwayTeamID {
		return time.Time{}, "", errs.Validation("away_team_id", "must differ from home_team_id")
	}
	date, err := parseDate(req.MatchDate)
	if err != nil {
		return time.Time{}, "", err
	}
	clock, err := parseClock(req.MatchTime)
	if err != nil {
		return time.Time{}, "", err
	}
	return date, clock, nil
}
