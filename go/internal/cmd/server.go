package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"connectrpc.com/connect"
	"github.com/mcdev12/leaguehub/go/internal/apiv1"
	"github.com/mcdev12/leaguehub/go/internal/config"
	"github.com/mcdev12/leaguehub/go/internal/metrics"
	"github.com/mcdev12/leaguehub/go/internal/ratelimit"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// publicProcedures are reachable without an admin id and throttled per IP.
var publicProcedures = []string{
	apiv1.LeagueServiceGetLeagueByCodeProcedure,
	apiv1.LeagueViewServiceGetLeagueViewProcedure,
}

func setupServer(cfg *config.Config, services *Services, collector *metrics.PrometheusMetrics) *http.Server {
	mux := http.NewServeMux()

	// Setup CORS middleware
	c := cors.New(cors.Options{
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
		},
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedHeaders: []string{"*"},
	})

	limiter := ratelimit.NewIPRateLimiter(rate.Limit(cfg.RateLimit.PerSecond), cfg.RateLimit.Burst, nil)
	opts := []connect.HandlerOption{
		connect.WithInterceptors(
			collector.Interceptor(),
			ratelimit.Interceptor(limiter, publicProcedures...),
		),
	}

	registerServices(mux, services, opts)
	mux.Handle("/metrics", collector.Handler())
	setupHealthCheck(mux)

	return &http.Server{
		Addr:    cfg.Addr(),
		Handler: h2c.NewHandler(c.Handler(mux), &http2.Server{}),
	}
}

func registerServices(mux *http.ServeMux, services *Services, opts []connect.HandlerOption) {
	mux.Handle(apiv1.NewLeagueServiceHandler(services.Leagues, opts...))
	mux.Handle(apiv1.NewTeamServiceHandler(services.Teams, opts...))
	mux.Handle(apiv1.NewPlayerServiceHandler(services.Players, opts...))
	mux.Handle(apiv1.NewMatchServiceHandler(services.Matches, opts...))
	mux.Handle(apiv1.NewRosterServiceHandler(services.Roster, opts...))
	mux.Handle(apiv1.NewLeagueViewServiceHandler(services.LeagueView, opts...))
}

func setupHealthCheck(mux *http.ServeMux) {
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			log.Error().Err(err).Msg("failed to write health check response")
		}
	})
}

// runServer serves until ctx is cancelled, then drains connections within
// the configured shutdown timeout.
func runServer(ctx context.Context, cfg *config.Config, server *http.Server) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("addr", server.Addr).Msg("starting server")
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		log.Info().Msg("shutting down server")
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
		return nil
	})

	return g.Wait()
}
