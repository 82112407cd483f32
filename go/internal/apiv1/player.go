package apiv1

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
	"github.com/mcdev12/leaguehub/go/internal/models"
)

// PlayerServiceName is the fully-qualified name of the PlayerService.
const PlayerServiceName = "leaguehub.player.v1.PlayerService"

var (
	PlayerServiceCreatePlayerProcedure       = procedure(PlayerServiceName, "CreatePlayer")
	PlayerServiceGetPlayerProcedure          = procedure(PlayerServiceName, "GetPlayer")
	PlayerServiceGetPlayersByTeamProcedure   = procedure(PlayerServiceName, "GetPlayersByTeam")
	PlayerServiceGetPlayersByLeagueProcedure = procedure(PlayerServiceName, "GetPlayersByLeague")
	PlayerServiceUpdatePlayerProcedure       = procedure(PlayerServiceName, "UpdatePlayer")
	PlayerServiceDeletePlayerProcedure       = procedure(PlayerServiceName, "DeletePlayer")
)

type CreatePlayerRequest struct {
	TeamID string `json:"team_id"`
	Name   string `json:"name"`
}

type CreatePlayerResponse struct {
	Player *models.Player `json:"player"`
}

type GetPlayerRequest struct {
	ID string `json:"id"`
}

type GetPlayerResponse struct {
	Player *models.Player `json:"player"`
}

type GetPlayersByTeamRequest struct {
	TeamID string `json:"team_id"`
}

type GetPlayersByTeamResponse struct {
	Players []models.Player `json:"players"`
}

type GetPlayersByLeagueRequest struct {
	LeagueID string `json:"league_id"`
}

type GetPlayersByLeagueResponse struct {
	Players []models.Player `json:"players"`
}

type UpdatePlayerRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type UpdatePlayerResponse struct {
	Player *models.Player `json:"player"`
}

type DeletePlayerRequest struct {
	ID string `json:"id"`
}

type DeletePlayerResponse struct{}

// PlayerServiceHandler is implemented by the player service.
type PlayerServiceHandler interface {
	CreatePlayer(context.Context, *connect.Request[CreatePlayerRequest]) (*connect.Response[CreatePlayerResponse], error)
	GetPlayer(context.Context, *connect.Request[GetPlayerRequest]) (*connect.Response[GetPlayerResponse], error)
	GetPlayersByTeam(context.Context, *connect.Request[GetPlayersByTeamRequest]) (*connect.Response[GetPlayersByTeamResponse], error)
	GetPlayersByLeague(context.Context, *connect.Request[GetPlayersByLeagueRequest]) (*connect.Response[GetPlayersByLeagueResponse], error)
	UpdatePlayer(context.Context, *connect.Request[UpdatePlayerRequest]) (*connect.Response[UpdatePlayerResponse], error)
	DeletePlayer(context.Context, *connect.Request[DeletePlayerRequest]) (*connect.Response[DeletePlayerResponse], error)
}

// NewPlayerServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewPlayerServiceHandler(svc PlayerServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opt := handlerOptions(opts)
	return mount(PlayerServiceName, map[string]http.Handler{
		PlayerServiceCreatePlayerProcedure:       connect.NewUnaryHandler(PlayerServiceCreatePlayerProcedure, svc.CreatePlayer, opt),
		PlayerServiceGetPlayerProcedure:          connect.NewUnaryHandler(PlayerServiceGetPlayerProcedure, svc.GetPlayer, opt),
		PlayerServiceGetPlayersByTeamProcedure:   connect.NewUnaryHandler(PlayerServiceGetPlayersByTeamProcedure, svc.GetPlayersByTeam, opt),
		PlayerServiceGetPlayersByLeagueProcedure: connect.NewUnaryHandler(PlayerServiceGetPlayersByLeagueProcedure, svc.GetPlayersByLeague, opt),
		PlayerServiceUpdatePlayerProcedure:       connect.NewUnaryHandler(PlayerServiceUpdatePlayerProcedure, svc.UpdatePlayer, opt),
		PlayerServiceDeletePlayerProcedure:       connect.NewUnaryHandler(PlayerServiceDeletePlayerProcedure, svc.DeletePlayer, opt),
	})
}

// PlayerServiceClient calls a remote PlayerService.
type PlayerServiceClient struct {
	createPlayer       *connect.Client[CreatePlayerRequest, CreatePlayerResponse]
	getPlayer          *connect.Client[GetPlayerRequest, GetPlayerResponse]
	getPlayersByTeam   *connect.Client[GetPlayersByTeamRequest, GetPlayersByTeamResponse]
	getPlayersByLeague *connect.Client[GetPlayersByLeagueRequest, GetPlayersByLeagueResponse]
	updatePlayer       *connect.Client[UpdatePlayerRequest, UpdatePlayerResponse]
	deletePlayer       *connect.Client[DeletePlayerRequest, DeletePlayerResponse]
}

// NewPlayerServiceClient constructs a client for the PlayerService at url.
func NewPlayerServiceClient(httpClient connect.HTTPClient, url string, opts ...connect.ClientOption) *PlayerServiceClient {
	url = baseURL(url)
	opt := clientOptions(opts)
	return &PlayerServiceClient{
		createPlayer:       connect.NewClient[CreatePlayerRequest, CreatePlayerResponse](httpClient, url+PlayerServiceCreatePlayerProcedure, opt),
		getPlayer:          connect.NewClient[GetPlayerRequest, GetPlayerResponse](httpClient, url+PlayerServiceGetPlayerProcedure, opt),
		getPlayersByTeam:   connect.NewClient[GetPlayersByTeamRequest, GetPlayersByTeamResponse](httpClient, url+PlayerServiceGetPlayersByTeamProcedure, opt),
		getPlayersByLeague: connect.NewClient[GetPlayersByLeagueRequest, GetPlayersByLeagueResponse](httpClient, url+PlayerServiceGetPlayersByLeagueProcedure, opt),
		updatePlayer:       connect.NewClient[UpdatePlayerRequest, UpdatePlayerResponse](httpClient, url+PlayerServiceUpdatePlayerProcedure, opt),
		deletePlayer:       connect.NewClient[DeletePlayerRequest, DeletePlayerResponse](httpClient, url+PlayerServiceDeletePlayerProcedure, opt),
	}
}

func (c *PlayerServiceClient) CreatePlayer(ctx context.Context, req *connect.Request[CreatePlayerRequest]) (*connect.Response[CreatePlayerResponse], error) {
	return c.createPlayer.CallUnary(ctx, req)
}

func (c *PlayerServiceClient) GetPlayer(ctx context.Context, req *connect.Request[GetPlayerRequest]) (*connect.Response[GetPlayerResponse], error) {
	return c.getPlayer.CallUnary(ctx, req)
}

func (c *PlayerServiceClient) GetPlayersByTeam(ctx context.Context, req *connect.Request[GetPlayersByTeamRequest]) (*connect.Response[GetPlayersByTeamResponse], error) {
	return c.getPlayersByTeam.CallUnary(ctx, req)
}

func (c *PlayerServiceClient) GetPlayersByLeague(ctx context.Context, req *connect.Request[GetPlayersByLeagueRequest]) (*connect.Response[GetPlayersByLeagueResponse], error) {
	return c.getPlayersByLeague.CallUnary(ctx, req)
}

func (c *PlayerServiceClient) UpdatePlayer(ctx context.Context, req *connect.Request[UpdatePlayerRequest]) (*connect.Response[UpdatePlayerResponse], error) {
	return c.updatePlayer.CallUnary(ctx, req)
}

func (c *PlayerServiceClient) DeletePlayer(ctx context.Context, req *connect.Request[DeletePlayerRequest]) (*connect.Response[DeletePlayerResponse], error) {
	return c.deletePlayer.CallUnary(ctx, req)
}

var _ PlayerServiceHandler = (*PlayerServiceClient)(nil)
