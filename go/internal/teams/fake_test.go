package teams

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/leaguehub/go/internal/errs"
	"github.com/mcdev12/leaguehub/go/internal/models"
)

// FakeRepository is an in-memory TeamsRepository that records call order.
type FakeRepository struct {
	teams map[uuid.UUID]models.Team
	order []uuid.UUID
	trace []string
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{teams: map[uuid.UUID]models.Team{}}
}

func (r *FakeRepository) Trace() []string { return append([]string(nil), r.trace...) }

func (r *FakeRepository) CreateTeam(ctx context.Context, req CreateTeamRequest, createdAt time.Time) (*models.Team, error) {
	r.trace = append(r.trace, "CreateTeam")
	team := models.Team{
		ID:        uuid.New(),
		LeagueID:  req.LeagueID,
		Name:      req.Name,
		LogoURL:   req.LogoURL,
		CreatedAt: createdAt,
	}
	r.teams[team.ID] = team
	r.order = append(r.order, team.ID)
	return &team, nil
}

func (r *FakeRepository) GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	r.trace = append(r.trace, "GetTeam")
	team, ok := r.teams[id]
	if !ok {
		return nil, errs.NotFound("team", id)
	}
	return &team, nil
}

func (r *FakeRepository) GetTeamsByLeague(ctx context.Context, leagueID uuid.UUID) ([]models.Team, error) {
	r.trace = append(r.trace, "GetTeamsByLeague")
	out := []models.Team{}
	for _, id := range r.order {
		if team, ok := r.teams[id]; ok && team.LeagueID == leagueID {
			out = append(out, team)
		}
	}
	return out, nil
}

func (r *FakeRepository) UpdateTeam(ctx context.Context, id uuid.UUID, req UpdateTeamRequest) (*models.Team, error) {
	r.trace = append(r.trace, "UpdateTeam")
	team, ok := r.teams[id]
	if !ok {
		return nil, errs.NotFound("team", id)
	}
	team.Name = req.Name
	team.LogoURL = req.LogoURL
	r.teams[id] = team
	return &team, nil
}

func (r *FakeRepository) DeleteTeam(ctx context.Context, id uuid.UUID) error {
	r.trace = append(r.trace, "DeleteTeam")
	if _, ok := r.teams[id]; !ok {
		return errs.NotFound("team", id)
	}
	delete(r.teams, id)
	return nil
}

// FakeLeagues answers GetLeague from a fixed set of league ids.
type FakeLeagues struct {
	IDs map[uuid.UUID]bool
}

func (f *FakeLeagues) GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error) {
	if !f.IDs[id] {
		return nil, errs.NotFound("league", id)
	}
	return &models.League{ID: id}, nil
}

var (
	_ TeamsRepository = (*FakeRepository)(nil)
	_ LeaguesGetter   = (*FakeLeagues)(nil)
)
