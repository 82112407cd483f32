package leagues

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/mcdev12/leaguehub/go/internal/errs"
	"github.com/mcdev12/leaguehub/go/internal/models"
)

// FakeRepository is an in-memory LeaguesRepository. The *Func fields, when
// set, override the default behavior of the matching method.
type FakeRepository struct {
	leagues map[uuid.UUID]models.League
	trace   []string

	CreateLeagueFunc    func(ctx context.Context, req NewLeague) (*models.League, error)
	GetLeagueByCodeFunc func(ctx context.Context, code string) (*models.League, error)
}

func NewFakeRepository(seed ...models.League) *FakeRepository {
	r := &FakeRepository{leagues: map[uuid.UUID]models.League{}}
	for _, l := range seed {
		r.leagues[l.ID] = l
	}
	return r
}

func (r *FakeRepository) record(step string) { r.trace = append(r.trace, step) }

func (r *FakeRepository) Trace() []string {
	out := make([]string, len(r.trace))
	copy(out, r.trace)
	return out
}

func (r *FakeRepository) CreateLeague(ctx context.Context, req NewLeague) (*models.League, error) {
	r.record("CreateLeague")
	if r.CreateLeagueFunc != nil {
		return r.CreateLeagueFunc(ctx, req)
	}
	league := models.League{
		ID:        uuid.New(),
		Name:      req.Name,
		Sport:     req.Sport,
		Code:      req.Code,
		AdminID:   req.AdminID,
		CreatedAt: req.CreatedAt,
	}
	r.leagues[league.ID] = league
	return &league, nil
}

func (r *FakeRepository) GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error) {
	r.record("GetLeague")
	l, ok := r.leagues[id]
	if !ok {
		return nil, errs.NotFound("league", id)
	}
	return &l, nil
}

func (r *FakeRepository) GetLeagueByCode(ctx context.Context, code string) (*models.League, error) {
	r.record("GetLeagueByCode")
	if r.GetLeagueByCodeFunc != nil {
		return r.GetLeagueByCodeFunc(ctx, code)
	}
	for _, l := range r.leagues {
		if strings.EqualFold(l.Code, code) {
			return &l, nil
		}
	}
	return nil, errs.NotFound("league code", code)
}

func (r *FakeRepository) GetLeaguesByAdmin(ctx context.Context, adminID uuid.UUID) ([]models.LeagueSummary, error) {
	r.record("GetLeaguesByAdmin")
	out := []models.LeagueSummary{}
	for _, l := range r.leagues {
		if l.AdminID == adminID {
			out = append(out, models.LeagueSummary{League: l})
		}
	}
	return out, nil
}

func (r *FakeRepository) UpdateLeague(ctx context.Context, id uuid.UUID, req UpdateLeagueRequest) (*models.League, error) {
	r.record("UpdateLeague")
	l, ok := r.leagues[id]
	if !ok {
		return nil, errs.NotFound("league", id)
	}
	l.Name = req.Name
	l.Sport = req.Sport
	r.leagues[id] = l
	return &l, nil
}

func (r *FakeRepository) DeleteLeague(ctx context.Context, id uuid.UUID) error {
	r.record("DeleteLeague")
	if _, ok := r.leagues[id]; !ok {
		return errs.NotFound("league", id)
	}
	delete(r.leagues, id)
	return nil
}

var _ LeaguesRepository = (*FakeRepository)(nil)
