package apiv1

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
	"github.com/mcdev12/leaguehub/go/internal/models"
)

// TeamServiceName is the fully-qualified name of the TeamService.
const TeamServiceName = "leaguehub.team.v1.TeamService"

var (
	TeamServiceCreateTeamProcedure       = procedure(TeamServiceName, "CreateTeam")
	TeamServiceGetTeamProcedure          = procedure(TeamServiceName, "GetTeam")
	TeamServiceGetTeamsByLeagueProcedure = procedure(TeamServiceName, "GetTeamsByLeague")
	TeamServiceUpdateTeamProcedure       = procedure(TeamServiceName, "UpdateTeam")
	TeamServiceDeleteTeamProcedure       = procedure(TeamServiceName, "DeleteTeam")
)

type CreateTeamRequest struct {
	LeagueID string  `json:"league_id"`
	Name     string  `json:"name"`
	LogoURL  *string `json:"logo_url,omitempty"`
}

type CreateTeamResponse struct {
	Team *models.Team `json:"team"`
}

type GetTeamRequest struct {
	ID string `json:"id"`
}

type GetTeamResponse struct {
	Team *models.Team `json:"team"`
}

type GetTeamsByLeagueRequest struct {
	LeagueID string `json:"league_id"`
}

type GetTeamsByLeagueResponse struct {
	Teams []models.Team `json:"teams"`
}

type UpdateTeamRequest struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	LogoURL *string `json:"logo_url,omitempty"`
}

type UpdateTeamResponse struct {
	Team *models.Team `json:"team"`
}

type DeleteTeamRequest struct {
	ID string `json:"id"`
}

type DeleteTeamResponse struct{}

// TeamServiceHandler is implemented by the teams service.
type TeamServiceHandler interface {
	CreateTeam(context.Context, *connect.Request[CreateTeamRequest]) (*connect.Response[CreateTeamResponse], error)
	GetTeam(context.Context, *connect.Request[GetTeamRequest]) (*connect.Response[GetTeamResponse], error)
	GetTeamsByLeague(context.Context, *connect.Request[GetTeamsByLeagueRequest]) (*connect.Response[GetTeamsByLeagueResponse], error)
	UpdateTeam(context.Context, *connect.Request[UpdateTeamRequest]) (*connect.Response[UpdateTeamResponse], error)
	DeleteTeam(context.Context, *connect.Request[DeleteTeamRequest]) (*connect.Response[DeleteTeamResponse], error)
}

// NewTeamServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewTeamServiceHandler(svc TeamServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opt := handlerOptions(opts)
	return mount(TeamServiceName, map[string]http.Handler{
		TeamServiceCreateTeamProcedure:       connect.NewUnaryHandler(TeamServiceCreateTeamProcedure, svc.CreateTeam, opt),
		TeamServiceGetTeamProcedure:          connect.NewUnaryHandler(TeamServiceGetTeamProcedure, svc.GetTeam, opt),
		TeamServiceGetTeamsByLeagueProcedure: connect.NewUnaryHandler(TeamServiceGetTeamsByLeagueProcedure, svc.GetTeamsByLeague, opt),
		TeamServiceUpdateTeamProcedure:       connect.NewUnaryHandler(TeamServiceUpdateTeamProcedure, svc.UpdateTeam, opt),
		TeamServiceDeleteTeamProcedure:       connect.NewUnaryHandler(TeamServiceDeleteTeamProcedure, svc.DeleteTeam, opt),
	})
}

// TeamServiceClient calls a remote TeamService.
type TeamServiceClient struct {
	createTeam       *connect.Client[CreateTeamRequest, CreateTeamResponse]
	getTeam          *connect.Client[GetTeamRequest, GetTeamResponse]
	getTeamsByLeague *connect.Client[GetTeamsByLeagueRequest, GetTeamsByLeagueResponse]
	updateTeam       *connect.Client[UpdateTeamRequest, UpdateTeamResponse]
	deleteTeam       *connect.Client[DeleteTeamRequest, DeleteTeamResponse]
}

// NewTeamServiceClient constructs a client for the TeamService at url.
func NewTeamServiceClient(httpClient connect.HTTPClient, url string, opts ...connect.ClientOption) *TeamServiceClient {
	url = baseURL(url)
	opt := clientOptions(opts)
	return &TeamServiceClient{
		createTeam:       connect.NewClient[CreateTeamRequest, CreateTeamResponse](httpClient, url+TeamServiceCreateTeamProcedure, opt),
		getTeam:          connect.NewClient[GetTeamRequest, GetTeamResponse](httpClient, url+TeamServiceGetTeamProcedure, opt),
		getTeamsByLeague: connect.NewClient[GetTeamsByLeagueRequest, GetTeamsByLeagueResponse](httpClient, url+TeamServiceGetTeamsByLeagueProcedure, opt),
		updateTeam:       connect.NewClient[UpdateTeamRequest, UpdateTeamResponse](httpClient, url+TeamServiceUpdateTeamProcedure, opt),
		deleteTeam:       connect.NewClient[DeleteTeamRequest, DeleteTeamResponse](httpClient, url+TeamServiceDeleteTeamProcedure, opt),
	}
}

func (c *TeamServiceClient) CreateTeam(ctx context.Context, req *connect.Request[CreateTeamRequest]) (*connect.Response[CreateTeamResponse], error) {
	return c.createTeam.CallUnary(ctx, req)
}

func (c *TeamServiceClient) GetTeam(ctx context.Context, req *connect.Request[GetTeamRequest]) (*connect.Response[GetTeamResponse], error) {
	return c.getTeam.CallUnary(ctx, req)
}

func (c *TeamServiceClient) GetTeamsByLeague(ctx context.Context, req *connect.Request[GetTeamsByLeagueRequest]) (*connect.Response[GetTeamsByLeagueResponse], error) {
	return c.getTeamsByLeague.CallUnary(ctx, req)
}

func (c *TeamServiceClient) UpdateTeam(ctx context.Context, req *connect.Request[UpdateTeamRequest]) (*connect.Response[UpdateTeamResponse], error) {
	return c.updateTeam.CallUnary(ctx, req)
}

func (c *TeamServiceClient) DeleteTeam(ctx context.Context, req *connect.Request[DeleteTeamRequest]) (*connect.Response[DeleteTeamResponse], error) {
	return c.deleteTeam.CallUnary(ctx, req)
}

var _ TeamServiceHandler = (*TeamServiceClient)(nil)
