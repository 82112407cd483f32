package leagueview

import (
	"context"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/mcdev12/leaguehub/go/internal/apiv1"
	"github.com/mcdev12/leaguehub/go/internal/errs"
	"github.com/mcdev12/leaguehub/go/internal/models"
)

// ViewApp defines what the service layer needs from the league view application
type ViewApp interface {
	GetLeagueView(ctx context.Context, code string) (*View, error)
	GetStandings(ctx context.Context, leagueID uuid.UUID) ([]models.StandingsRow, error)
}

// Service implements the LeagueViewService RPC interface
type Service struct {
	app ViewApp
}

// NewService creates a new league view RPC service
func NewService(app ViewApp) *Service {
	return &Service{app: app}
}

var _ apiv1.LeagueViewServiceHandler = (*Service)(nil)

// GetLeagueView returns the public view of the league with the given code
func (s *Service) GetLeagueView(ctx context.Context, req *connect.Request[apiv1.GetLeagueViewRequest]) (*connect.Response[apiv1.GetLeagueViewResponse], error) {
	view, err := s.app.GetLeagueView(ctx, req.Msg.Code)
	if err != nil {
		return nil, errs.ToConnect(err)
	}

	return connect.NewResponse(&apiv1.GetLeagueViewResponse{
		League:    view.League,
		Teams:     view.Teams,
		Upcoming:  view.Upcoming,
		Completed: view.Completed,
		Standings: view.Standings,
	}), nil
}

// GetStandings returns a league's ranked standings
func (s *Service) GetStandings(ctx context.Context, req *connect.Request[apiv1.GetStandingsRequest]) (*connect.Response[apiv1.GetStandingsResponse], error) {
	leagueID, err := apiv1.ParseID("league_id", req.Msg.LeagueID)
	if err != nil {
		return nil, errs.ToConnect(err)
	}

	rows, err := s.app.GetStandings(ctx, leagueID)
	if err != nil {
		return nil, errs.ToConnect(err)
	}

	return connect.NewResponse(&apiv1.GetStandingsResponse{Standings: rows}), nil
}
