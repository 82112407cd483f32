package apiv1

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
	"github.com/mcdev12/leaguehub/go/internal/models"
)

// LeagueViewServiceName is the fully-qualified name of the LeagueViewService.
const LeagueViewServiceName = "leaguehub.leagueview.v1.LeagueViewService"

var (
	LeagueViewServiceGetLeagueViewProcedure = procedure(LeagueViewServiceName, "GetLeagueView")
	LeagueViewServiceGetStandingsProcedure  = procedure(LeagueViewServiceName, "GetStandings")
)

// GetLeagueViewRequest looks a league up by its share code.
type GetLeagueViewRequest struct {
	Code string `json:"code"`
}

type GetLeagueViewResponse struct {
	League    *models.League              `json:"league"`
	Teams     []models.TeamWithDetails    `json:"teams"`
	Upcoming  []models.MatchWithTeamNames `json:"upcoming_matches"`
	Completed []models.MatchWithTeamNames `json:"completed_matches"`
	Standings []models.StandingsRow       `json:"standings"`
}

type GetStandingsRequest struct {
	LeagueID string `json:"league_id"`
}

type GetStandingsResponse struct {
	Standings []models.StandingsRow `json:"standings"`
}

// LeagueViewServiceHandler is implemented by the leagueview service.
type LeagueViewServiceHandler interface {
	GetLeagueView(context.Context, *connect.Request[GetLeagueViewRequest]) (*connect.Response[GetLeagueViewResponse], error)
	GetStandings(context.Context, *connect.Request[GetStandingsRequest]) (*connect.Response[GetStandingsResponse], error)
}

// NewLeagueViewServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewLeagueViewServiceHandler(svc LeagueViewServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opt := handlerOptions(opts)
	return mount(LeagueViewServiceName, map[string]http.Handler{
		LeagueViewServiceGetLeagueViewProcedure: connect.NewUnaryHandler(LeagueViewServiceGetLeagueViewProcedure, svc.GetLeagueView, opt),
		LeagueViewServiceGetStandingsProcedure:  connect.NewUnaryHandler(LeagueViewServiceGetStandingsProcedure, svc.GetStandings, opt),
	})
}

// LeagueViewServiceClient calls a remote LeagueViewService.
type LeagueViewServiceClient struct {
	getLeagueView *connect.Client[GetLeagueViewRequest, GetLeagueViewResponse]
	getStandings  *connect.Client[GetStandingsRequest, GetStandingsResponse]
}

// NewLeagueViewServiceClient constructs a client for the LeagueViewService at url.
func NewLeagueViewServiceClient(httpClient connect.HTTPClient, url string, opts ...connect.ClientOption) *LeagueViewServiceClient {
	url = baseURL(url)
	opt := clientOptions(opts)
	return &LeagueViewServiceClient{
		getLeagueView: connect.NewClient[GetLeagueViewRequest, GetLeagueViewResponse](httpClient, url+LeagueViewServiceGetLeagueViewProcedure, opt),
		getStandings:  connect.NewClient[GetStandingsRequest, GetStandingsResponse](httpClient, url+LeagueViewServiceGetStandingsProcedure, opt),
	}
}

func (c *LeagueViewServiceClient) GetLeagueView(ctx context.Context, req *connect.Request[GetLeagueViewRequest]) (*connect.Response[GetLeagueViewResponse], error) {
	return c.getLeagueView.CallUnary(ctx, req)
}

func (c *LeagueViewServiceClient) GetStandings(ctx context.Context, req *connect.Request[GetStandingsRequest]) (*connect.Response[GetStandingsResponse], error) {
	return c.getStandings.CallUnary(ctx, req)
}

var _ LeagueViewServiceHandler = (*LeagueViewServiceClient)(nil)
