package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mcdev12/leaguehub/go/internal/config"
	"github.com/mcdev12/leaguehub/go/internal/leaguecode"
	"github.com/mcdev12/leaguehub/go/internal/metrics"
	"github.com/mcdev12/leaguehub/go/internal/migrations"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "leaguehub",
		Usage: "league standings and match lifecycle server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "path to the YAML configuration file",
				EnvVars: []string{"LEAGUEHUB_CONFIG"},
			},
		},
		Commands: []*cli.Command{
			newServeCommand(),
			newMigrateCommand(),
			newCodeCommand(),
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.RunContext(ctx, os.Args); err != nil {
		log.Error().Err(err).Msg("leaguehub terminated with error")
		stop()
		os.Exit(1)
	}
}

func newServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the RPC server",
		Action: func(c *cli.Context) error {
			cfg, database, err := openDatabase(c)
			if err != nil {
				return err
			}
			defer database.Close()

			if err := migrations.Up(database); err != nil {
				return err
			}

			collector := metrics.NewPrometheusMetrics()
			services := setupServices(database, cfg, collector)
			server := setupServer(cfg, services, collector)
			return runServer(c.Context, cfg, server)
		},
	}
}

// openDatabase loads the configuration named by --config, configures logging
// and connects to Postgres.
func openDatabase(c *cli.Context) (*config.Config, *sql.DB, error) {
	cfg, err := loadConfig(c.String("config"))
	if err != nil {
		return nil, nil, err
	}
	setupLogger(cfg.Log)

	database, err := setupDatabase(c.Context, cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	return cfg, database, nil
}

func newMigrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "database migrations",
		Subcommands: []*cli.Command{
			{
				Name:  "up",
				Usage: "apply every pending migration",
				Action: func(c *cli.Context) error {
					_, database, err := openDatabase(c)
					if err != nil {
						return err
					}
					defer database.Close()
					return migrations.Up(database)
				},
			},
			{
				Name:  "down",
				Usage: "roll back migrations",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "steps", Value: 1, Usage: "number of migrations to roll back"},
				},
				Action: func(c *cli.Context) error {
					_, database, err := openDatabase(c)
					if err != nil {
						return err
					}
					defer database.Close()
					return migrations.Down(database, c.Int("steps"))
				},
			},
		},
	}
}

func newCodeCommand() *cli.Command {
	return &cli.Command{
		Name:  "code",
		Usage: "print freshly generated league codes",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "count", Value: 1, Usage: "how many codes to print"},
		},
		Action: func(c *cli.Context) error {
			for range c.Int("count") {
				code, err := leaguecode.Generate()
				if err != nil {
					return err
				}
				fmt.Fprintln(c.App.Writer, code)
			}
			return nil
		},
	}
}
