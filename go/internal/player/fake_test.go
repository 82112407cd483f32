package player

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/leaguehub/go/internal/errs"
	"github.com/mcdev12/leaguehub/go/internal/models"
)

// FakeRepository is an in-memory PlayerRepository.
type FakeRepository struct {
	players []models.Player
	writes  int
}

func (r *FakeRepository) CreatePlayer(ctx context.Context, req CreatePlayerRequest, createdAt time.Time) (*models.Player, error) {
	r.writes++
	p := models.Player{ID: uuid.New(), TeamID: req.TeamID, Name: req.Name, CreatedAt: createdAt}
	r.players = append(r.players, p)
	return &p, nil
}

func (r *FakeRepository) GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	for _, p := range r.players {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, errs.NotFound("player", id)
}

func (r *FakeRepository) GetPlayersByTeam(ctx context.Context, teamID uuid.UUID) ([]models.Player, error) {
	return r.GetPlayersByTeamIDs(ctx, []uuid.UUID{teamID})
}

func (r *FakeRepository) GetPlayersByTeamIDs(ctx context.Context, teamIDs []uuid.UUID) ([]models.Player, error) {
	wanted := map[uuid.UUID]bool{}
	for _, id := range teamIDs {
		wanted[id] = true
	}
	out := []models.Player{}
	for _, p := range r.players {
		if wanted[p.TeamID] {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *FakeRepository) GetPlayersByLeague(ctx context.Context, leagueID uuid.UUID) ([]models.Player, error) {
	return nil, nil
}

func (r *FakeRepository) UpdatePlayer(ctx context.Context, id uuid.UUID, name string) (*models.Player, error) {
	r.writes++
	for i := range r.players {
		if r.players[i].ID == id {
			r.players[i].Name = name
			p := r.players[i]
			return &p, nil
		}
	}
	return nil, errs.NotFound("player", id)
}

func (r *FakeRepository) DeletePlayer(ctx context.Context, id uuid.UUID) error {
	r.writes++
	for i := range r.players {
		if r.players[i].ID == id {
			r.players = append(r.players[:i], r.players[i+1:]...)
			return nil
		}
	}
	return errs.NotFound("player", id)
}

// FakeTeams knows a fixed set of team ids.
type FakeTeams map[uuid.UUID]bool

func (f FakeTeams) GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	if !f[id] {
		return nil, errs.NotFound("team", id)
	}
	return &models.Team{ID: id}, nil
}

var (
	_ PlayerRepository = (*FakeRepository)(nil)
	_ TeamApp          = FakeTeams(nil)
)
