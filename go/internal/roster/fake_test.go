package roster

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mcdev12/leaguehub/go/internal/errs"
	"github.com/mcdev12/leaguehub/go/internal/models"
)

// FakeStore serves leagues, teams and players from slices.
type FakeStore struct {
	Leagues []models.League
	Teams   []models.Team
	Players []models.Player

	PlayerLookups int
	PlayersErr    error
}

func (s *FakeStore) GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error) {
	for _, l := range s.Leagues {
		if l.ID == id {
			return &l, nil
		}
	}
	return nil, errs.NotFound("league", id)
}

func (s *FakeStore) GetTeamsByLeague(ctx context.Context, leagueID uuid.UUID) ([]models.Team, error) {
	out := []models.Team{}
	for _, t := range s.Teams {
		if t.LeagueID == leagueID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *FakeStore) GetPlayersByTeamIDs(ctx context.Context, teamIDs []uuid.UUID) ([]models.Player, error) {
	s.PlayerLookups++
	if s.PlayersErr != nil {
		return nil, s.PlayersErr
	}
	if len(teamIDs) == 0 {
		return nil, errors.New("empty team id list")
	}
	want := map[uuid.UUID]bool{}
	for _, id := range teamIDs {
		want[id] = true
	}
	out := []models.Player{}
	for _, p := range s.Players {
		if want[p.TeamID] {
			out = append(out, p)
		}
	}
	return out, nil
}

var (
	_ LeaguesRepository = (*FakeStore)(nil)
	_ TeamsRepository   = (*FakeStore)(nil)
	_ PlayersRepository = (*FakeStore)(nil)
)
