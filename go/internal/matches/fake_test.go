package matches

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/leaguehub/go/internal/errs"
	"github.com/mcdev12/leaguehub/go/internal/models"
)

// FakeRepository is an in-memory MatchesRepository. It records every call
// and counts writes so tests can assert that rejected calls wrote nothing.
type FakeRepository struct {
	matches map[uuid.UUID]models.Match
	order   []uuid.UUID
	trace   []string
	writes  int

	SetOutcomeErr error
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{matches: map[uuid.UUID]models.Match{}}
}

func (r *FakeRepository) Trace() []string { return append([]string(nil), r.trace...) }

func (r *FakeRepository) Writes() int { return r.writes }

func (r *FakeRepository) All() []models.Match {
	out := make([]models.Match, 0, len(r.order))
	for _, id := range r.order {
		if m, ok := r.matches[id]; ok {
			out = append(out, m)
		}
	}
	return out
}

func (r *FakeRepository) CreateMatch(ctx context.Context, req NewMatch) (*models.Match, error) {
	r.trace = append(r.trace, "CreateMatch")
	r.writes++
	m := models.Match{
		ID:         uuid.New(),
		LeagueID:   req.LeagueID,
		HomeTeamID: req.HomeTeamID,
		AwayTeamID: req.AwayTeamID,
		MatchDate:  req.MatchDate,
		MatchTime:  req.MatchTime,
		Status:     models.MatchStatusScheduled,
		CreatedAt:  req.CreatedAt,
	}
	r.matches[m.ID] = m
	r.order = append(r.order, m.ID)
	return &m, nil
}

func (r *FakeRepository) GetMatch(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	r.trace = append(r.trace, "GetMatch")
	m, ok := r.matches[id]
	if !ok {
		return nil, errs.NotFound("match", id)
	}
	return &m, nil
}

func (r *FakeRepository) GetMatchesByLeague(ctx context.Context, leagueID uuid.UUID) ([]models.Match, error) {
	r.trace = append(r.trace, "GetMatchesByLeague")
	out := []models.Match{}
	for _, m := range r.All() {
		if m.LeagueID == leagueID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *FakeRepository) GetMatchesByLeagueAndStatus(ctx context.Context, leagueID uuid.UUID, status models.MatchStatus) ([]models.Match, error) {
	r.trace = append(r.trace, "GetMatchesByLeagueAndStatus")
	out := []models.Match{}
	for _, m := range r.All() {
		if m.LeagueID == leagueID && m.Status == status {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *FakeRepository) SetOutcome(ctx context.Context, id uuid.UUID, outcome Outcome) (*models.Match, error) {
	r.trace = append(r.trace, "SetOutcome")
	if r.SetOutcomeErr != nil {
		return nil, r.SetOutcomeErr
	}
	m, ok := r.matches[id]
	if !ok {
		return nil, errs.NotFound("match", id)
	}
	if (outcome.Status == models.MatchStatusCompleted) != (outcome.HomeScore != nil && outcome.AwayScore != nil) {
		return nil, errors.New("matches_scores_iff_completed violated")
	}
	r.writes++
	m.Status = outcome.Status
	m.HomeScore = outcome.HomeScore
	m.AwayScore = outcome.AwayScore
	r.matches[id] = m
	return &m, nil
}

func (r *FakeRepository) RescheduleMatch(ctx context.Context, id uuid.UUID, date time.Time, clock string) (*models.Match, error) {
	r.trace = append(r.trace, "RescheduleMatch")
	m, ok := r.matches[id]
	if !ok {
		return nil, errs.NotFound("match", id)
	}
	r.writes++
	m.MatchDate = date
	m.MatchTime = clock
	r.matches[id] = m
	return &m, nil
}

func (r *FakeRepository) DeleteMatch(ctx context.Context, id uuid.UUID) error {
	r.trace = append(r.trace, "DeleteMatch")
	if _, ok := r.matches[id]; !ok {
		return errs.NotFound("match", id)
	}
	r.writes++
	delete(r.matches, id)
	return nil
}

// FakeTeams serves teams from a map.
type FakeTeams map[uuid.UUID]models.Team

func (f FakeTeams) GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	t, ok := f[id]
	if !ok {
		return nil, errs.NotFound("team", id)
	}
	return &t, nil
}

// FakeMetrics records transitions as "from->to".
type FakeMetrics struct {
	Transitions []string
}

func (m *FakeMetrics) RecordMatchTransition(from, to models.MatchStatus) {
	m.Transitions = append(m.Transitions, string(from)+"->"+string(to))
}

var (
	_ MatchesRepository = (*FakeRepository)(nil)
	_ TeamsGetter       = FakeTeams(nil)
	_ Metrics           = (*FakeMetrics)(nil)
)
