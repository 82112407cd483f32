package apiv1

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
	"github.com/mcdev12/leaguehub/go/internal/models"
)

// LeagueServiceName is the fully-qualified name of the LeagueService.
const LeagueServiceName = "leaguehub.league.v1.LeagueService"

var (
	LeagueServiceCreateLeagueProcedure      = procedure(LeagueServiceName, "CreateLeague")
	LeagueServiceGetLeagueProcedure         = procedure(LeagueServiceName, "GetLeague")
	LeagueServiceGetLeagueByCodeProcedure   = procedure(LeagueServiceName, "GetLeagueByCode")
	LeagueServiceGetLeaguesByAdminProcedure = procedure(LeagueServiceName, "GetLeaguesByAdmin")
	LeagueServiceUpdateLeagueProcedure      = procedure(LeagueServiceName, "UpdateLeague")
	LeagueServiceDeleteLeagueProcedure      = procedure(LeagueServiceName, "DeleteLeague")
)

type CreateLeagueRequest struct {
	Name      string `json:"name"`
	SportType string `json:"sport_type"`
	AdminID   string `json:"admin_id"`
}

type CreateLeagueResponse struct {
	League *models.League `json:"league"`
}

type GetLeagueRequest struct {
	ID string `json:"id"`
}

type GetLeagueResponse struct {
	League *models.League `json:"league"`
}

type GetLeagueByCodeRequest struct {
	Code string `json:"code"`
}

type GetLeagueByCodeResponse struct {
	League *models.League `json:"league"`
}

type GetLeaguesByAdminRequest struct {
	AdminID string `json:"admin_id"`
}

type GetLeaguesByAdminResponse struct {
	Leagues []models.LeagueSummary `json:"leagues"`
}

type UpdateLeagueRequest struct {
	ID        string `json:"id"`
	AdminID   string `json:"admin_id"`
	Name      string `json:"name"`
	SportType string `json:"sport_type"`
}

type UpdateLeagueResponse struct {
	League *models.League `json:"league"`
}

type DeleteLeagueRequest struct {
	ID      string `json:"id"`
	AdminID string `json:"admin_id"`
}

type DeleteLeagueResponse struct{}

// LeagueServiceHandler is implemented by the leagues service.
type LeagueServiceHandler interface {
	CreateLeague(context.Context, *connect.Request[CreateLeagueRequest]) (*connect.Response[CreateLeagueResponse], error)
	GetLeague(context.Context, *connect.Request[GetLeagueRequest]) (*connect.Response[GetLeagueResponse], error)
	GetLeagueByCode(context.Context, *connect.Request[GetLeagueByCodeRequest]) (*connect.Response[GetLeagueByCodeResponse], error)
	GetLeaguesByAdmin(context.Context, *connect.Request[GetLeaguesByAdminRequest]) (*connect.Response[GetLeaguesByAdminResponse], error)
	UpdateLeague(context.Context, *connect.Request[UpdateLeagueRequest]) (*connect.Response[UpdateLeagueResponse], error)
	DeleteLeague(context.Context, *connect.Request[DeleteLeagueRequest]) (*connect.Response[DeleteLeagueResponse], error)
}

// NewLeagueServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewLeagueServiceHandler(svc LeagueServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opt := handlerOptions(opts)
	return mount(LeagueServiceName, map[string]http.Handler{
		LeagueServiceCreateLeagueProcedure:      connect.NewUnaryHandler(LeagueServiceCreateLeagueProcedure, svc.CreateLeague, opt),
		LeagueServiceGetLeagueProcedure:         connect.NewUnaryHandler(LeagueServiceGetLeagueProcedure, svc.GetLeague, opt),
		LeagueServiceGetLeagueByCodeProcedure:   connect.NewUnaryHandler(LeagueServiceGetLeagueByCodeProcedure, svc.GetLeagueByCode, opt),
		LeagueServiceGetLeaguesByAdminProcedure: connect.NewUnaryHandler(LeagueServiceGetLeaguesByAdminProcedure, svc.GetLeaguesByAdmin, opt),
		LeagueServiceUpdateLeagueProcedure:      connect.NewUnaryHandler(LeagueServiceUpdateLeagueProcedure, svc.UpdateLeague, opt),
		LeagueServiceDeleteLeagueProcedure:      connect.NewUnaryHandler(LeagueServiceDeleteLeagueProcedure, svc.DeleteLeague, opt),
	})
}

// LeagueServiceClient calls a remote LeagueService.
type LeagueServiceClient struct {
	createLeague      *connect.Client[CreateLeagueRequest, CreateLeagueResponse]
	getLeague         *connect.Client[GetLeagueRequest, GetLeagueResponse]
	getLeagueByCode   *connect.Client[GetLeagueByCodeRequest, GetLeagueByCodeResponse]
	getLeaguesByAdmin *connect.Client[GetLeaguesByAdminRequest, GetLeaguesByAdminResponse]
	updateLeague      *connect.Client[UpdateLeagueRequest, UpdateLeagueResponse]
	deleteLeague      *connect.Client[DeleteLeagueRequest, DeleteLeagueResponse]
}

// NewLeagueServiceClient constructs a client for the LeagueService at url.
func NewLeagueServiceClient(httpClient connect.HTTPClient, url string, opts ...connect.ClientOption) *LeagueServiceClient {
	url = baseURL(url)
	opt := clientOptions(opts)
	return &LeagueServiceClient{
		createLeague:      connect.NewClient[CreateLeagueRequest, CreateLeagueResponse](httpClient, url+LeagueServiceCreateLeagueProcedure, opt),
		getLeague:         connect.NewClient[GetLeagueRequest, GetLeagueResponse](httpClient, url+LeagueServiceGetLeagueProcedure, opt),
		getLeagueByCode:   connect.NewClient[GetLeagueByCodeRequest, GetLeagueByCodeResponse](httpClient, url+LeagueServiceGetLeagueByCodeProcedure, opt),
		getLeaguesByAdmin: connect.NewClient[GetLeaguesByAdminRequest, GetLeaguesByAdminResponse](httpClient, url+LeagueServiceGetLeaguesByAdminProcedure, opt),
		updateLeague:      connect.NewClient[UpdateLeagueRequest, UpdateLeagueResponse](httpClient, url+LeagueServiceUpdateLeagueProcedure, opt),
		deleteLeague:      connect.NewClient[DeleteLeagueRequest, DeleteLeagueResponse](httpClient, url+LeagueServiceDeleteLeagueProcedure, opt),
	}
}

func (c *LeagueServiceClient) CreateLeague(ctx context.Context, req *connect.Request[CreateLeagueRequest]) (*connect.Response[CreateLeagueResponse], error) {
	return c.createLeague.CallUnary(ctx, req)
}

func (c *LeagueServiceClient) GetLeague(ctx context.Context, req *connect.Request[GetLeagueRequest]) (*connect.Response[GetLeagueResponse], error) {
	return c.getLeague.CallUnary(ctx, req)
}

func (c *LeagueServiceClient) GetLeagueByCode(ctx context.Context, req *connect.Request[GetLeagueByCodeRequest]) (*connect.Response[GetLeagueByCodeResponse], error) {
	return c.getLeagueByCode.CallUnary(ctx, req)
}

func (c *LeagueServiceClient) GetLeaguesByAdmin(ctx context.Context, req *connect.Request[GetLeaguesByAdminRequest]) (*connect.Response[GetLeaguesByAdminResponse], error) {
	return c.getLeaguesByAdmin.CallUnary(ctx, req)
}

func (c *LeagueServiceClient) UpdateLeague(ctx context.Context, req *connect.Request[UpdateLeagueRequest]) (*connect.Response[UpdateLeagueResponse], error) {
	return c.updateLeague.CallUnary(ctx, req)
}

func (c *LeagueServiceClient) DeleteLeague(ctx context.Context, req *connect.Request[DeleteLeagueRequest]) (*connect.Response[DeleteLeagueResponse], error) {
	return c.deleteLeague.CallUnary(ctx, req)
}

var _ LeagueServiceHandler = (*LeagueServiceClient)(nil)
