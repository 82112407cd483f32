package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/mcdev12/leaguehub/go/internal/config"
	"github.com/mcdev12/leaguehub/go/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestCodeCommand(t *testing.T) {
	var out bytes.Buffer
	app := &cli.App{Writer: &out, Commands: []*cli.Command{newCodeCommand()}}

	require.NoError(t, app.Run([]string{"leaguehub", "code", "--count", "3"}))

	lines := strings.Fields(out.String())
	require.Len(t, lines, 3)
	for _, code := range lines {
		assert.Regexp(t, regexp.MustCompile(`^[A-Z0-9]{6}$`), code)
	}
}

func TestServerRoutes(t *testing.T) {
	server := setupServer(config.Default(), &Services{}, metrics.NewPrometheusMetrics())
	assert.Equal(t, ":8080", server.Addr)

	for path, want := range map[string]int{
		"/health":  http.StatusOK,
		"/metrics": http.StatusOK,
		"/missing": http.StatusNotFound,
	} {
		rec := httptest.NewRecorder()
		server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, want, rec.Code, path)
	}
}
