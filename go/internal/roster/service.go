package roster

import (
	"context"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/mcdev12/leaguehub/go/internal/apiv1"
	"github.com/mcdev12/leaguehub/go/internal/errs"
	"github.com/mcdev12/leaguehub/go/internal/models"
)

// RosterApp defines what the service layer needs from the roster application
type RosterApp interface {
	GetLeagueRoster(ctx context.Context, leagueID uuid.UUID) ([]models.TeamWithDetails, error)
}

// Service implements the RosterService RPC interface
type Service struct {
	app RosterApp
}

// NewService creates a new roster RPC service
func NewService(app RosterApp) *Service {
	return &Service{app: app}
}

var _ apiv1.RosterServiceHandler = (*Service)(nil)

// GetLeagueRoster returns the teams of a league with their players
func (s *Service) GetLeagueRoster(ctx context.Context, req *connect.Request[apiv1.GetLeagueRosterRequest]) (*connect.Response[apiv1.GetLeagueRosterResponse], error) {
	leagueID, err := apiv1.ParseID("league_id", req.Msg.LeagueID)
	if err != nil {
		return nil, errs.ToConnect(err)
	}

	teams, err := s.app.GetLeagueRoster(ctx, leagueID)
	if err != nil {
		return nil, errs.ToConnect(err)
	}

	return connect.NewResponse(&apiv1.GetLeagueRosterResponse{Teams: teams}), nil
}
