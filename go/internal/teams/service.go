package teams

import (
	"context"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/mcdev12/leaguehub/go/internal/apiv1"
	"github.com/mcdev12/leaguehub/go/internal/errs"
	"github.com/mcdev12/leaguehub/go/internal/models"
)

// TeamsApp defines what the service layer needs from the teams application
type TeamsApp interface {
	CreateTeam(ctx context.Context, req CreateTeamRequest) (*models.Team, error)
	GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error)
	GetTeamsByLeague(ctx context.Context, leagueID uuid.UUID) ([]models.Team, error)
	UpdateTeam(ctx context.Context, id uuid.UUID, req UpdateTeamRequest) (*models.Team, error)
	DeleteTeam(ctx context.Context, id uuid.UUID) error
}

// Service implements the TeamService RPC interface
type Service struct {
	app TeamsApp
}

// NewService creates a new teams RPC service
func NewService(app TeamsApp) *Service {
	return &Service{
		app: app,
	}
}

var _ apiv1.TeamServiceHandler = (*Service)(nil)

// CreateTeam creates a new team
func (s *Service) CreateTeam(ctx context.Context, req *connect.Request[apiv1.CreateTeamRequest]) (*connect.Response[apiv1.CreateTeamResponse], error) {
	leagueID, err := apiv1.ParseID("league_id", req.Msg.LeagueID)
	if err != nil {
		return nil, errs.ToConnect(err)
	}

	team, err := s.app.CreateTeam(ctx, CreateTeamRequest{
		LeagueID: leagueID,
		Name:     req.Msg.Name,
		LogoURL:  req.Msg.LogoURL,
	})
	if err != nil {
		return nil, errs.ToConnect(err)
	}

	return connect.NewResponse(&apiv1.CreateTeamResponse{Team: team}), nil
}

// GetTeam retrieves a team by ID
func (s *Service) GetTeam(ctx context.Context, req *connect.Request[apiv1.GetTeamRequest]) (*connect.Response[apiv1.GetTeamResponse], error) {
	id, err := apiv1.ParseID("id", req.Msg.ID)
	if err != nil {
		return nil, errs.ToConnect(err)
	}

	team, err := s.app.GetTeam(ctx, id)
	if err != nil {
		return nil, errs.ToConnect(err)
	}

	return connect.NewResponse(&apiv1.GetTeamResponse{Team: team}), nil
}

// GetTeamsByLeague lists a league's teams
func (s *Service) GetTeamsByLeague(ctx context.Context, req *connect.Request[apiv1.GetTeamsByLeagueRequest]) (*connect.Response[apiv1.GetTeamsByLeagueResponse], error) {
	leagueID, err := apiv1.ParseID("league_id", req.Msg.LeagueID)
	if err != nil {
		return nil, errs.ToConnect(err)
	}

	teams, err := s.app.GetTeamsByLeague(ctx, leagueID)
	if err != nil {
		return nil, errs.ToConnect(err)
	}

	return connect.NewResponse(&apiv1.GetTeamsByLeagueResponse{Teams: teams}), nil
}

// UpdateTeam updates an existing team
func (s *Service) UpdateTeam(ctx context.Context, req *connect.Request[apiv1.UpdateTeamRequest]) (*connect.Response[apiv1.UpdateTeamResponse], error) {
	id, err := apiv1.ParseID("id", req.Msg.ID)
	if err != nil {
		return nil, errs.ToConnect(err)
	}

	team, err := s.app.UpdateTeam(ctx, id, UpdateTeamRequest{
		Name:    req.Msg.Name,
		LogoURL: req.Msg.LogoURL,
	})
	if err != nil {
		return nil, errs.ToConnect(err)
	}

	return connect.NewResponse(&apiv1.UpdateTeamResponse{Team: team}), nil
}

// DeleteTeam deletes a team
func (s *Service) DeleteTeam(ctx context.Context, req *connect.Request[apiv1.DeleteTeamRequest]) (*connect.Response[apiv1.DeleteTeamResponse], error) {
	id, err := apiv1.ParseID("id", req.Msg.ID)
	if err != nil {
		return nil, errs.ToConnect(err)
	}

	if err := s.app.DeleteTeam(ctx, id); err != nil {
		return nil, errs.ToConnect(err)
	}

	return connect.NewResponse(&apiv1.DeleteTeamResponse{}), nil
}
