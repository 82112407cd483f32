package apiv1

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
	"github.com/mcdev12/leaguehub/go/internal/models"
)

// RosterServiceName is the fully-qualified name of the RosterService.
const RosterServiceName = "leaguehub.roster.v1.RosterService"

var (
	RosterServiceGetLeagueRosterProcedure = procedure(RosterServiceName, "GetLeagueRoster")
)

type GetLeagueRosterRequest struct {
	LeagueID string `json:"league_id"`
}

type GetLeagueRosterResponse struct {
	Teams []models.TeamWithDetails `json:"teams"`
}

// RosterServiceHandler is implemented by the roster service.
type RosterServiceHandler interface {
	GetLeagueRoster(context.Context, *connect.Request[GetLeagueRosterRequest]) (*connect.Response[GetLeagueRosterResponse], error)
}

// NewRosterServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewRosterServiceHandler(svc RosterServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opt := handlerOptions(opts)
	return mount(RosterServiceName, map[string]http.Handler{
		RosterServiceGetLeagueRosterProcedure: connect.NewUnaryHandler(RosterServiceGetLeagueRosterProcedure, svc.GetLeagueRoster, opt),
	})
}

// RosterServiceClient calls a remote RosterService.
type RosterServiceClient struct {
	getLeagueRoster *connect.Client[GetLeagueRosterRequest, GetLeagueRosterResponse]
}

// NewRosterServiceClient constructs a client for the RosterService at url.
func NewRosterServiceClient(httpClient connect.HTTPClient, url string, opts ...connect.ClientOption) *RosterServiceClient {
	url = baseURL(url)
	opt := clientOptions(opts)
	return &RosterServiceClient{
		getLeagueRoster: connect.NewClient[GetLeagueRosterRequest, GetLeagueRosterResponse](httpClient, url+RosterServiceGetLeagueRosterProcedure, opt),
	}
}

func (c *RosterServiceClient) GetLeagueRoster(ctx context.Context, req *connect.Request[GetLeagueRosterRequest]) (*connect.Response[GetLeagueRosterResponse], error) {
	return c.getLeagueRoster.CallUnary(ctx, req)
}

var _ RosterServiceHandler = (*RosterServiceClient)(nil)
