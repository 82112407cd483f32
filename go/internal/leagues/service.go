package leagues

import (
	"context"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/mcdev12/leaguehub/go/internal/apiv1"
	"github.com/mcdev12/leaguehub/go/internal/errs"
	"github.com/mcdev12/leaguehub/go/internal/models"
)

// LeaguesApp defines what the service layer needs from the leagues application
type LeaguesApp interface {
	CreateLeague(ctx context.Context, req CreateLeagueRequest) (*models.League, error)
	GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error)
	GetLeagueByCode(ctx context.Context, code string) (*models.League, error)
	GetLeaguesByAdmin(ctx context.Context, adminID uuid.UUID) ([]models.LeagueSummary, error)
	UpdateLeague(ctx context.Context, id uuid.UUID, req UpdateLeagueRequest) (*models.League, error)
	DeleteLeague(ctx context.Context, id, adminID uuid.UUID) error
}

// Service implements the LeagueService RPC interface
type Service struct {
	app LeaguesApp
}

// NewService creates a new leagues RPC service
func NewService(app LeaguesApp) *Service {
	return &Service{
		app: app,
	}
}

// Verify that Service implements the LeagueServiceHandler interface
var _ apiv1.LeagueServiceHandler = (*Service)(nil)

// CreateLeague creates a new league
func (s *Service) CreateLeague(ctx context.Context, req *connect.Request[apiv1.CreateLeagueRequest]) (*connect.Response[apiv1.CreateLeagueResponse], error) {
	adminID, err := apiv1.ParseID("admin_id", req.Msg.AdminID)
	if err != nil {
		return nil, errs.ToConnect(err)
	}

	league, err := s.app.CreateLeague(ctx, CreateLeagueRequest{
		Name:    req.Msg.Name,
		Sport:   models.Sport(req.Msg.SportType),
		AdminID: adminID,
	})
	if err != nil {
		return nil, errs.ToConnect(err)
	}

	return connect.NewResponse(&apiv1.CreateLeagueResponse{
		League: league,
	}), nil
}

// GetLeague retrieves a league by ID
func (s *Service) GetLeague(ctx context.Context, req *connect.Request[apiv1.GetLeagueRequest]) (*connect.Response[apiv1.GetLeagueResponse], error) {
	id, err := apiv1.ParseID("id", req.Msg.ID)
	if err != nil {
		return nil, errs.ToConnect(err)
	}

	league, err := s.app.GetLeague(ctx, id)
	if err != nil {
		return nil, errs.ToConnect(err)
	}

	return connect.NewResponse(&apiv1.GetLeagueResponse{
		League: league,
	}), nil
}

// GetLeagueByCode retrieves a league by its share code
func (s *Service) GetLeagueByCode(ctx context.Context, req *connect.Request[apiv1.GetLeagueByCodeRequest]) (*connect.Response[apiv1.GetLeagueByCodeResponse], error) {
	league, err := s.app.GetLeagueByCode(ctx, req.Msg.Code)
	if err != nil {
		return nil, errs.ToConnect(err)
	}

	return connect.NewResponse(&apiv1.GetLeagueByCodeResponse{
		League: league,
	}), nil
}

// GetLeaguesByAdmin retrieves the dashboard listing for an admin
func (s *Service) GetLeaguesByAdmin(ctx context.Context, req *connect.Request[apiv1.GetLeaguesByAdminRequest]) (*connect.Response[apiv1.GetLeaguesByAdminResponse], error) {
	adminID, err := apiv1.ParseID("admin_id", req.Msg.AdminID)
	if err != nil {
		return nil, errs.ToConnect(err)
	}

	leagues, err := s.app.GetLeaguesByAdmin(ctx, adminID)
	if err != nil {
		return nil, errs.ToConnect(err)
	}

	return connect.NewResponse(&apiv1.GetLeaguesByAdminResponse{
		Leagues: leagues,
	}), nil
}

// UpdateLeague updates an existing league
func (s *Service) UpdateLeague(ctx context.Context, req *connect.Request[apiv1.UpdateLeagueRequest]) (*connect.Response[apiv1.UpdateLeagueResponse], error) {
	id, err := apiv1.ParseID("id", req.Msg.ID)
	if err != nil {
		return nil, errs.ToConnect(err)
	}
	adminID, err := apiv1.ParseID("admin_id", req.Msg.AdminID)
	if err != nil {
		return nil, errs.ToConnect(err)
	}

	league, err := s.app.UpdateLeague(ctx, id, UpdateLeagueRequest{
		AdminID: adminID,
		Name:    req.Msg.Name,
		Sport:   models.Sport(req.Msg.SportType),
	})
	if err != nil {
		return nil, errs.ToConnect(err)
	}

	return connect.NewResponse(&apiv1.UpdateLeagueResponse{
		League: league,
	}), nil
}

// DeleteLeague deletes a league and everything it owns
func (s *Service) DeleteLeague(ctx context.Context, req *connect.Request[apiv1.DeleteLeagueRequest]) (*connect.Response[apiv1.DeleteLeagueResponse], error) {
	id, err := apiv1.ParseID("id", req.Msg.ID)
	if err != nil {
		return nil, errs.ToConnect(err)
	}
	adminID, err := apiv1.ParseID("admin_id", req.Msg.AdminID)
	if err != nil {
		return nil, errs.ToConnect(err)
	}

	if err := s.app.DeleteLeague(ctx, id, adminID); err != nil {
		return nil, errs.ToConnect(err)
	}

	return connect.NewResponse(&apiv1.DeleteLeagueResponse{}), nil
}
