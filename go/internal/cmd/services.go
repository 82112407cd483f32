package main

import (
	"database/sql"

	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/leaguehub/go/internal/config"
	"github.com/mcdev12/leaguehub/go/internal/leaguecode"
	"github.com/mcdev12/leaguehub/go/internal/leagues"
	leaguedb "github.com/mcdev12/leaguehub/go/internal/leagues/db"
	"github.com/mcdev12/leaguehub/go/internal/leagueview"
	"github.com/mcdev12/leaguehub/go/internal/matches"
	matchesdb "github.com/mcdev12/leaguehub/go/internal/matches/db"
	"github.com/mcdev12/leaguehub/go/internal/metrics"
	"github.com/mcdev12/leaguehub/go/internal/player"
	playerdb "github.com/mcdev12/leaguehub/go/internal/player/db"
	"github.com/mcdev12/leaguehub/go/internal/roster"
	"github.com/mcdev12/leaguehub/go/internal/teams"
	teamsdb "github.com/mcdev12/leaguehub/go/internal/teams/db"
)

type Services struct {
	Leagues    *leagues.Service
	Teams      *teams.Service
	Players    *player.Service
	Matches    *matches.Service
	Roster     *roster.Service
	LeagueView *leagueview.Service
}

func setupServices(database *sql.DB, cfg *config.Config, collector *metrics.PrometheusMetrics) *Services {
	// Wire up dependency injection chain
	// Database layer → Repository layer → App layer → Service layer
	clock := clockwork.NewRealClock()

	// Leagues
	leagueRepo := leagues.NewRepository(leaguedb.New(database), database)
	codes := leaguecode.NewGenerator(cfg.League.CodeAttempts, collector)
	leagueApp := leagues.NewApp(leagueRepo, codes, clock)

	// Teams
	teamsRepo := teams.NewRepository(teamsdb.New(database))
	teamsApp := teams.NewApp(teamsRepo, leagueApp, clock)

	// Players
	playerRepo := player.NewRepository(playerdb.New(database))
	playerApp := player.NewApp(playerRepo, teamsApp, clock)

	// Matches
	matchesRepo := matches.NewRepository(matchesdb.New(database))
	matchesApp := matches.NewApp(matchesRepo, teamsApp, clock, collector)

	// Roster and public view
	rosterApp := roster.NewApp(leagueRepo, teamsRepo, playerRepo)
	viewApp := leagueview.NewApp(leagueRepo, teamsRepo, matchesRepo, rosterApp)

	return &Services{
		Leagues:    leagues.NewService(leagueApp),
		Teams:      teams.NewService(teamsApp),
		Players:    player.NewService(playerApp),
		Matches:    matches.NewService(matchesApp),
		Roster:     roster.NewService(rosterApp),
		LeagueView: leagueview.NewService(viewApp),
	}
}
