package apiv1

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
	"github.com/mcdev12/leaguehub/go/internal/models"
)

// MatchServiceName is the fully-qualified name of the MatchService.
const MatchServiceName = "leaguehub.match.v1.MatchService"

var (
	MatchServiceScheduleMatchProcedure      = procedure(MatchServiceName, "ScheduleMatch")
	MatchServiceGetMatchProcedure           = procedure(MatchServiceName, "GetMatch")
	MatchServiceGetMatchesByLeagueProcedure = procedure(MatchServiceName, "GetMatchesByLeague")
	MatchServiceRecordResultProcedure       = procedure(MatchServiceName, "RecordResult")
	MatchServiceClearResultProcedure        = procedure(MatchServiceName, "ClearResult")
	MatchServiceCancelMatchProcedure        = procedure(MatchServiceName, "CancelMatch")
	MatchServiceRescheduleMatchProcedure    = procedure(MatchServiceName, "RescheduleMatch")
	MatchServiceDeleteMatchProcedure        = procedure(MatchServiceName, "DeleteMatch")
)

type ScheduleMatchRequest struct {
	LeagueID   string `json:"league_id"`
	HomeTeamID string `json:"home_team_id"`
	AwayTeamID string `json:"away_team_id"`
	MatchDate  string `json:"match_date"` // YYYY-MM-DD
	MatchTime  string `json:"match_time"` // HH:MM or HH:MM:SS
}

type ScheduleMatchResponse struct {
	Match *models.Match `json:"match"`
}

type GetMatchRequest struct {
	ID string `json:"id"`
}

type GetMatchResponse struct {
	Match *models.Match `json:"match"`
}

// GetMatchesByLeagueRequest lists a league's matches, optionally only those
// in the given status.
type GetMatchesByLeagueRequest struct {
	LeagueID string `json:"league_id"`
	Status   string `json:"status,omitempty"`
}

type GetMatchesByLeagueResponse struct {
	Matches []models.Match `json:"matches"`
}

// RecordResultRequest carries scores as entered, parsed server side.
type RecordResultRequest struct {
	ID        string `json:"id"`
	HomeScore string `json:"home_score"`
	AwayScore string `json:"away_score"`
}

type RecordResultResponse struct {
	Match *models.Match `json:"match"`
}

type ClearResultRequest struct {
	ID string `json:"id"`
}

type ClearResultResponse struct {
	Match *models.Match `json:"match"`
}

type CancelMatchRequest struct {
	ID string `json:"id"`
}

type CancelMatchResponse struct {
	Match *models.Match `json:"match"`
}

type RescheduleMatchRequest struct {
	ID        string `json:"id"`
	MatchDate string `json:"match_date"`
	MatchTime string `json:"match_time"`
}

type RescheduleMatchResponse struct {
	Match *models.Match `json:"match"`
}

type DeleteMatchRequest struct {
	ID string `json:"id"`
}

type DeleteMatchResponse struct{}

// MatchServiceHandler is implemented by the matches service.
type MatchServiceHandler interface {
	ScheduleMatch(context.Context, *connect.Request[ScheduleMatchRequest]) (*connect.Response[ScheduleMatchResponse], error)
	GetMatch(context.Context, *connect.Request[GetMatchRequest]) (*connect.Response[GetMatchResponse], error)
	GetMatchesByLeague(context.Context, *connect.Request[GetMatchesByLeagueRequest]) (*connect.Response[GetMatchesByLeagueResponse], error)
	RecordResult(context.Context, *connect.Request[RecordResultRequest]) (*connect.Response[RecordResultResponse], error)
	ClearResult(context.Context, *connect.Request[ClearResultRequest]) (*connect.Response[ClearResultResponse], error)
	CancelMatch(context.Context, *connect.Request[CancelMatchRequest]) (*connect.Response[CancelMatchResponse], error)
	RescheduleMatch(context.Context, *connect.Request[RescheduleMatchRequest]) (*connect.Response[RescheduleMatchResponse], error)
	DeleteMatch(context.Context, *connect.Request[DeleteMatchRequest]) (*connect.Response[DeleteMatchResponse], error)
}

// NewMatchServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewMatchServiceHandler(svc MatchServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opt := handlerOptions(opts)
	return mount(MatchServiceName, map[string]http.Handler{
		MatchServiceScheduleMatchProcedure:      connect.NewUnaryHandler(MatchServiceScheduleMatchProcedure, svc.ScheduleMatch, opt),
		MatchServiceGetMatchProcedure:           connect.NewUnaryHandler(MatchServiceGetMatchProcedure, svc.GetMatch, opt),
		MatchServiceGetMatchesByLeagueProcedure: connect.NewUnaryHandler(MatchServiceGetMatchesByLeagueProcedure, svc.GetMatchesByLeague, opt),
		MatchServiceRecordResultProcedure:       connect.NewUnaryHandler(MatchServiceRecordResultProcedure, svc.RecordResult, opt),
		MatchServiceClearResultProcedure:        connect.NewUnaryHandler(MatchServiceClearResultProcedure, svc.ClearResult, opt),
		MatchServiceCancelMatchProcedure:        connect.NewUnaryHandler(MatchServiceCancelMatchProcedure, svc.CancelMatch, opt),
		MatchServiceRescheduleMatchProcedure:    connect.NewUnaryHandler(MatchServiceRescheduleMatchProcedure, svc.RescheduleMatch, opt),
		MatchServiceDeleteMatchProcedure:        connect.NewUnaryHandler(MatchServiceDeleteMatchProcedure, svc.DeleteMatch, opt),
	})
}

// MatchServiceClient calls a remote MatchService.
type MatchServiceClient struct {
	scheduleMatch      *connect.Client[ScheduleMatchRequest, ScheduleMatchResponse]
	getMatch           *connect.Client[GetMatchRequest, GetMatchResponse]
	getMatchesByLeague *connect.Client[GetMatchesByLeagueRequest, GetMatchesByLeagueResponse]
	recordResult       *connect.Client[RecordResultRequest, RecordResultResponse]
	clearResult        *connect.Client[ClearResultRequest, ClearResultResponse]
	cancelMatch        *connect.Client[CancelMatchRequest, CancelMatchResponse]
	rescheduleMatch    *connect.Client[RescheduleMatchRequest, RescheduleMatchResponse]
	deleteMatch        *connect.Client[DeleteMatchRequest, DeleteMatchResponse]
}

// NewMatchServiceClient constructs a client for the MatchService at url.
func NewMatchServiceClient(httpClient connect.HTTPClient, url string, opts ...connect.ClientOption) *MatchServiceClient {
	url = baseURL(url)
	opt := clientOptions(opts)
	return &MatchServiceClient{
		scheduleMatch:      connect.NewClient[ScheduleMatchRequest, ScheduleMatchResponse](httpClient, url+MatchServiceScheduleMatchProcedure, opt),
		getMatch:           connect.NewClient[GetMatchRequest, GetMatchResponse](httpClient, url+MatchServiceGetMatchProcedure, opt),
		getMatchesByLeague: connect.NewClient[GetMatchesByLeagueRequest, GetMatchesByLeagueResponse](httpClient, url+MatchServiceGetMatchesByLeagueProcedure, opt),
		recordResult:       connect.NewClient[RecordResultRequest, RecordResultResponse](httpClient, url+MatchServiceRecordResultProcedure, opt),
		clearResult:        connect.NewClient[ClearResultRequest, ClearResultResponse](httpClient, url+MatchServiceClearResultProcedure, opt),
		cancelMatch:        connect.NewClient[CancelMatchRequest, CancelMatchResponse](httpClient, url+MatchServiceCancelMatchProcedure, opt),
		rescheduleMatch:    connect.NewClient[RescheduleMatchRequest, RescheduleMatchResponse](httpClient, url+MatchServiceRescheduleMatchProcedure, opt),
		deleteMatch:        connect.NewClient[DeleteMatchRequest, DeleteMatchResponse](httpClient, url+MatchServiceDeleteMatchProcedure, opt),
	}
}

func (c *MatchServiceClient) ScheduleMatch(ctx context.Context, req *connect.Request[ScheduleMatchRequest]) (*connect.Response[ScheduleMatchResponse], error) {
	return c.scheduleMatch.CallUnary(ctx, req)
}

func (c *MatchServiceClient) GetMatch(ctx context.Context, req *connect.Request[GetMatchRequest]) (*connect.Response[GetMatchResponse], error) {
	return c.getMatch.CallUnary(ctx, req)
}

func (c *MatchServiceClient) GetMatchesByLeague(ctx context.Context, req *connect.Request[GetMatchesByLeagueRequest]) (*connect.Response[GetMatchesByLeagueResponse], error) {
	return c.getMatchesByLeague.CallUnary(ctx, req)
}

func (c *MatchServiceClient) RecordResult(ctx context.Context, req *connect.Request[RecordResultRequest]) (*connect.Response[RecordResultResponse], error) {
	return c.recordResult.CallUnary(ctx, req)
}

func (c *MatchServiceClient) ClearResult(ctx context.Context, req *connect.Request[ClearResultRequest]) (*connect.Response[ClearResultResponse], error) {
	return c.clearResult.CallUnary(ctx, req)
}

func (c *MatchServiceClient) CancelMatch(ctx context.Context, req *connect.Request[CancelMatchRequest]) (*connect.Response[CancelMatchResponse], error) {
	return c.cancelMatch.CallUnary(ctx, req)
}

func (c *MatchServiceClient) RescheduleMatch(ctx context.Context, req *connect.Request[RescheduleMatchRequest]) (*connect.Response[RescheduleMatchResponse], error) {
	return c.rescheduleMatch.CallUnary(ctx, req)
}

func (c *MatchServiceClient) DeleteMatch(ctx context.Context, req *connect.Request[DeleteMatchRequest]) (*connect.Response[DeleteMatchResponse], error) {
	return c.deleteMatch.CallUnary(ctx, req)
}

var _ MatchServiceHandler = (*MatchServiceClient)(nil)
