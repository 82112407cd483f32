package matches

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/leaguehub/go/internal/matches/db"
	"github.com/mcdev12/leaguehub/go/internal/models"
	"github.com/mcdev12/leaguehub/go/internal/sqlutil"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	CreateMatch(ctx context.Context, arg db.CreateMatchParams) (db.Match, error)
	GetMatch(ctx context.Context, id uuid.UUID) (db.Match, error)
	GetMatchesByLeague(ctx context.Context, leagueID uuid.UUID) ([]db.Match, error)
	GetMatchesByLeagueAndStatus(ctx context.Context, arg db.GetMatchesByLeagueAndStatusParams) ([]db.Match, error)
	SetMatchOutcome(ctx context.Context, arg db.SetMatchOutcomeParams) (db.Match, error)
	RescheduleMatch(ctx context.Context, arg db.RescheduleMatchParams) (db.Match, error)
	DeleteMatch(ctx context.Context, id uuid.UUID) (int64, error)
}

// Repository implements match data access operations
type Repository struct {
	queries Querier
}

// NewRepository creates a new matches repository
func NewRepository(querier Querier) *Repository {
	return &Repository{
		queries: querier,
	}
}

// CreateMatch inserts a scheduled match without scores
func (r *Repository) CreateMatch(ctx context.Context, req NewMatch) (*models.Match, error) {
	match, err := r.queries.CreateMatch(ctx, db.CreateMatchParams{
		LeagueID:   req.LeagueID,
		HomeTeamID: req.HomeTeamID,
		AwayTeamID: req.AwayTeamID,
		MatchDate:  req.MatchDate,
		MatchTime:  req.MatchTime,
		CreatedAt:  req.CreatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	return r.dbMatchToModel(match), nil
}

// GetMatch retrieves a match by ID
func (r *Repository) GetMatch(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	match, err := r.queries.GetMatch(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get match: %w", sqlutil.MapError(err, "match", id))
	}

	return r.dbMatchToModel(match), nil
}

// GetMatchesByLeague retrieves a league's matches in kick-off order
func (r *Repository) GetMatchesByLeague(ctx context.Context, leagueID uuid.UUID) ([]models.Match, error) {
	matches, err := r.queries.GetMatchesByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to get matches by league: %w", err)
	}
	return r.dbMatchesToModels(matches), nil
}

// GetMatchesByLeagueAndStatus retrieves a league's matches in one status
func (r *Repository) GetMatchesByLeagueAndStatus(ctx context.Context, leagueID uuid.UUID, status models.MatchStatus) ([]models.Match, error) {
	matches, err := r.queries.GetMatchesByLeagueAndStatus(ctx, db.GetMatchesByLeagueAndStatusParams{
		LeagueID: leagueID,
		Status:   string(status),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get matches by league and status: %w", err)
	}
	return r.dbMatchesToModels(matches), nil
}

// SetOutcome writes status and both scores in one statement
func (r *Repository) SetOutcome(ctx context.Context, id uuid.UUID, outcome Outcome) (*models.Match, error) {
	match, err := r.queries.SetMatchOutcome(ctx, db.SetMatchOutcomeParams{
		ID:        id,
		Status:    string(outcome.Status),
		HomeScore: sqlutil.ToSqlInt32(outcome.HomeScore),
		AwayScore: sqlutil.ToSqlInt32(outcome.AwayScore),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set match outcome: %w", sqlutil.MapError(err, "match", id))
	}

	return r.dbMatchToModel(match), nil
}

// RescheduleMatch moves a match to a new date and time
func (r *Repository) RescheduleMatch(ctx context.Context, id uuid.UUID, date time.Time, clock string) (*models.Match, error) {
	match, err := r.queries.RescheduleMatch(ctx, db.RescheduleMatchParams{
		ID:        id,
		MatchDate: date,
		MatchTime: clock,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reschedule match: %w", sqlutil.MapError(err, "match", id))
	}

	return r.dbMatchToModel(match), nil
}

// DeleteMatch deletes a match
func (r *Repository) DeleteMatch(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeleteMatch(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}
	return sqlutil.RequireAffected(n, "match", id)
}

// Helper function to convert database match to domain model
func (r *Repository) dbMatchToModel(match db.Match) *models.Match {
	return &models.Match{
		ID:         match.ID,
		LeagueID:   match.LeagueID,
		HomeTeamID: match.HomeTeamID,
		AwayTeamID: match.AwayTeamID,
		MatchDate:  sqlutil.DateOnly(match.MatchDate),
		MatchTime:  sqlutil.ClockTime(match.MatchTime),
		Status:     models.MatchStatus(match.Status),
		HomeScore:  sqlutil.FromSqlInt32(match.HomeScore),
		AwayScore:  sqlutil.FromSqlInt32(match.AwayScore),
		CreatedAt:  match.CreatedAt,
	}
}

func (r *Repository) dbMatchesToModels(matches []db.Match) []models.Match {
	result := make([]models.Match, len(matches))
	for i, match := range matches {
		result[i] = *r.dbMatchToModel(match)
	}
	return result
}
