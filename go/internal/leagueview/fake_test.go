package leagueview

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mcdev12/leaguehub/go/internal/errs"
	"github.com/mcdev12/leaguehub/go/internal/leaguecode"
	"github.com/mcdev12/leaguehub/go/internal/models"
)

// FakeStore is an in-memory backing for every repository the view reads.
type FakeStore struct {
	Leagues []models.League
	Teams   []models.Team
	Players []models.Player
	Matches []models.Match

	MatchesErr error
}

func (s *FakeStore) GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error) {
	for _, l := range s.Leagues {
		if l.ID == id {
			return &l, nil
		}
	}
	return nil, errs.NotFound("league", id)
}

func (s *FakeStore) GetLeagueByCode(ctx context.Context, code string) (*models.League, error) {
	for _, l := range s.Leagues {
		if leaguecode.Normalize(l.Code) == code {
			return &l, nil
		}
	}
	return nil, errs.NotFound("league", code)
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
	if len(teamIDs) == 0 {
		return nil, errors.New("empty team id list")
	}
	out := []models.Player{}
	for _, p := range s.Players {
		for _, id := range teamIDs {
			if p.TeamID == id {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

func (s *FakeStore) GetMatchesByLeague(ctx context.Context, leagueID uuid.UUID) ([]models.Match, error) {
	if s.MatchesErr != nil {
		return nil, s.MatchesErr
	}
	out := []models.Match{}
	for _, m := range s.Matches {
		if m.LeagueID == leagueID {
			out = append(out, m)
		}
	}
	return out, nil
}

var (
	_ LeaguesRepository = (*FakeStore)(nil)
	_ TeamsRepository   = (*FakeStore)(nil)
	_ MatchesRepository = (*FakeStore)(nil)
)
