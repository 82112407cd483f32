package player

import (
	"context"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/mcdev12/leaguehub/go/internal/apiv1"
	"github.com/mcdev12/leaguehub/go/internal/errs"
	"github.com/mcdev12/leaguehub/go/internal/models"
)

// PlayerApp defines what the service layer needs from the player application
type PlayerApp interface {
	CreatePlayer(ctx context.Context, req CreatePlayerRequest) (*models.Player, error)
	GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error)
	GetPlayersByTeam(ctx context.Context, teamID uuid.UUID) ([]models.Player, error)
	GetPlayersByLeague(ctx context.Context, leagueID uuid.UUID) ([]models.Player, error)
	UpdatePlayer(ctx context.Context, id uuid.UUID, name string) (*models.Player, error)
	DeletePlayer(ctx context.Context, id uuid.UUID) error
}

// Service implements the PlayerService RPC interface
type Service struct {
	app PlayerApp
}

// NewService creates a new player RPC service
func NewService(app PlayerApp) *Service {
	return &Service{app: app}
}

var _ apiv1.PlayerServiceHandler = (*Service)(nil)

// CreatePlayer creates a new player
func (s *Service) CreatePlayer(ctx context.Context, req *connect.Request[apiv1.CreatePlayerRequest]) (*connect.Response[apiv1.CreatePlayerResponse], error) {
	teamID, err := apiv1.ParseID("team_id", req.Msg.TeamID)
	if err != nil {
		return nil, errs.ToConnect(err)
	}

	player, err := s.app.CreatePlayer(ctx, CreatePlayerRequest{TeamID: teamID, Name: req.Msg.Name})
	if err != nil {
		return nil, errs.ToConnect(err)
	}

	return connect.NewResponse(&apiv1.CreatePlayerResponse{Player: player}), nil
}

// GetPlayer retrieves a player by ID
func (s *Service) GetPlayer(ctx context.Context, req *connect.Request[apiv1.GetPlayerRequest]) (*connect.Response[apiv1.GetPlayerResponse], error) {
	id, err := apiv1.ParseID("id", req.Msg.ID)
	if err != nil {
		return nil, errs.ToConnect(err)
	}

	player, err := s.app.GetPlayer(ctx, id)
	if err != nil {
		return nil, errs.ToConnect(err)
	}

	return connect.NewResponse(&apiv1.GetPlayerResponse{Player: player}), nil
}

// GetPlayersByTeam lists a team's players
func (s *Service) GetPlayersByTeam(ctx context.Context, req *connect.Request[apiv1.GetPlayersByTeamRequest]) (*connect.Response[apiv1.GetPlayersByTeamResponse], error) {
	teamID, err := apiv1.ParseID("team_id", req.Msg.TeamID)
	if err != nil {
		return nil, errs.ToConnect(err)
	}

	players, err := s.app.GetPlayersByTeam(ctx, teamID)
	if err != nil {
		return nil, errs.ToConnect(err)
	}

	return connect.NewResponse(&apiv1.GetPlayersByTeamResponse{Players: players}), nil
}

// GetPlayersByLeague lists every player of a league
func (s *Service) GetPlayersByLeague(ctx context.Context, req *connect.Request[apiv1.GetPlayersByLeagueRequest]) (*connect.Response[apiv1.GetPlayersByLeagueResponse], error) {
	leagueID, err := apiv1.ParseID("league_id", req.Msg.LeagueID)
	if err != nil {
		return nil, errs.ToConnect(err)
	}

	players, err := s.app.GetPlayersByLeague(ctx, leagueID)
	if err != nil {
		return nil, errs.ToConnect(err)
	}

	return connect.NewResponse(&apiv1.GetPlayersByLeagueResponse{Players: players}), nil
}

// UpdatePlayer renames a player
func (s *Service) UpdatePlayer(ctx context.Context, req *connect.Request[apiv1.UpdatePlayerRequest]) (*connect.Response[apiv1.UpdatePlayerResponse], error) {
	id, err := apiv1.ParseID("id", req.Msg.ID)
	if err != nil {
		return nil, errs.ToConnect(err)
	}

	player, err := s.app.UpdatePlayer(ctx, id, req.Msg.Name)
	if err != nil {
		return nil, errs.ToConnect(err)
	}

	return connect.NewResponse(&apiv1.UpdatePlayerResponse{Player: player}), nil
}

// DeletePlayer deletes a player
func (s *Service) DeletePlayer(ctx context.Context, req *connect.Request[apiv1.DeletePlayerRequest]) (*connect.Response[apiv1.DeletePlayerResponse], error) {
	id, err := apiv1.ParseID("id", req.Msg.ID)
	if err != nil {
		return nil, errs.ToConnect(err)
	}

	if err := s.app.DeletePlayer(ctx, id); err != nil {
		return nil, errs.ToConnect(err)
	}

	return connect.NewResponse(&apiv1.DeletePlayerResponse{}), nil
}
