package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"connectrpc.com/connect"
	"github.com/mcdev12/leaguehub/go/internal/apiv1"
	"github.com/mcdev12/leaguehub/go/internal/leaguecode"
	"github.com/mcdev12/leaguehub/go/internal/matches"
	"github.com/mcdev12/leaguehub/go/internal/models"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ leaguecode.Metrics = (*PrometheusMetrics)(nil)
	_ matches.Metrics    = (*PrometheusMetrics)(nil)
)

func TestCounters(t *testing.T) {
	m := NewPrometheusMetrics()

	m.RecordCodeGenerated()
	m.RecordCodeGenerated()
	m.RecordCodeCollision()
	m.RecordMatchTransition(models.MatchStatusScheduled, models.MatchStatusCompleted)
	m.RecordMatchTransition(models.MatchStatusScheduled, models.MatchStatusCompleted)
	m.RecordMatchTransition(models.MatchStatusCompleted, models.MatchStatusCancelled)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.codesGenerated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.codeCollisions))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.codesExhausted))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.matchTransitions.WithLabelValues("scheduled", "completed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.matchTransitions.WithLabelValues("completed", "cancelled")))
}

func TestHandler(t *testing.T) {
	m := NewPrometheusMetrics()
	m.RecordCodeExhausted()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "leaguehub_league_code_exhausted_total 1")
}

type stubRoster struct{ err error }

func (s stubRoster) GetLeagueRoster(ctx context.Context, req *connect.Request[apiv1.GetLeagueRosterRequest]) (*connect.Response[apiv1.GetLeagueRosterResponse], error) {
	if s.err != nil {
		return nil, s.err
	}
	return connect.NewResponse(&apiv1.GetLeagueRosterResponse{}), nil
}

func TestInterceptor(t *testing.T) {
	m := NewPrometheusMetrics()
	procedure := apiv1.RosterServiceGetLeagueRosterProcedure

	for _, svc := range []stubRoster{{}, {err: connect.NewError(connect.CodeNotFound, nil)}} {
		mux := http.NewServeMux()
		mux.Handle(apiv1.NewRosterServiceHandler(svc, connect.WithInterceptors(m.Interceptor())))
		server := httptest.NewServer(mux)
		client := apiv1.NewRosterServiceClient(server.Client(), server.URL)
		_, _ = client.GetLeagueRoster(context.Background(), connect.NewRequest(&apiv1.GetLeagueRosterRequest{}))
		server.Close()
	}

	assert.Equal(t, 1.0, testutil.ToFloat64(m.rpcRequests.WithLabelValues(procedure, "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rpcRequests.WithLabelValues(procedure, "not_found")))
}
