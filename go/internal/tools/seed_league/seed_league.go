package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mcdev12/leaguehub/go/internal/dbconfig"
	"github.com/mcdev12/leaguehub/go/internal/leaguecode"
	"github.com/mcdev12/leaguehub/go/internal/models"
)

type options struct {
	teams   int
	players int
	played  int
	seed    uint64
	adminID uuid.UUID
}

func main() {
	var (
		opts  options
		admin string
	)
	flag.IntVar(&opts.teams, "teams", 6, "number of teams")
	flag.IntVar(&opts.players, "players", 5, "players per team")
	flag.IntVar(&opts.played, "played", 2, "rounds already played")
	flag.Uint64Var(&opts.seed, "seed", 0, "random seed, 0 for a random one")
	flag.StringVar(&admin, "admin", "", "admin id, generated when empty")
	flag.Parse()

	opts.adminID = uuid.New()
	if admin != "" {
		id, err := uuid.Parse(admin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid admin id: %v\n", err)
			os.Exit(1)
		}
		opts.adminID = id
	}
	if opts.teams < 2 {
		fmt.Fprintln(os.Stderr, "need at least two teams")
		os.Exit(1)
	}

	cfg, err := dbconfig.NewConfigFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DSN())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	summary, err := seed(ctx, pool, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(summary)
}

func seed(ctx context.Context, pool *pgxpool.Pool, opts options) (string, error) {
	faker := gofakeit.New(opts.seed)

	tx, err := pool.Begin(ctx)
	if err != nil {
		return "", fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	code, err := leaguecode.Generate()
	if err != nil {
		return "", err
	}
	sport := models.Sports[faker.Number(0, len(models.Sports)-1)]
	name := fmt.Sprintf("%s %s League", faker.City(), sport)

	var leagueID uuid.UUID
	err = tx.QueryRow(ctx, `
        INSERT INTO leagues (name, sport_type, code, admin_id)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `, name, string(sport), code, opts.adminID).Scan(&leagueID)
	if err != nil {
		return "", fmt.Errorf("insert league: %w", err)
	}

	teamIDs := make([]uuid.UUID, opts.teams)
	for i := range teamIDs {
		teamName := fmt.Sprintf("%s %s", faker.City(), faker.Animal())
		if err := tx.QueryRow(ctx, `
            INSERT INTO teams (league_id, name) VALUES ($1, $2) RETURNING id
        `, leagueID, teamName).Scan(&teamIDs[i]); err != nil {
			return "", fmt.Errorf("insert team: %w", err)
		}
		for range opts.players {
			if _, err := tx.Exec(ctx, `
                INSERT INTO players (team_id, name) VALUES ($1, $2)
            `, teamIDs[i], faker.Name()); err != nil {
				return "", fmt.Errorf("insert player: %w", err)
			}
		}
	}

	rounds := roundRobin(opts.teams)
	start := time.Now().UTC().Truncate(24*time.Hour).AddDate(0, 0, -7*opts.played)
	var completed int
	for r, pairs := range rounds {
		date := start.AddDate(0, 0, 7*r)
		for _, p := range pairs {
			if err := insertMatch(ctx, tx, faker, leagueID, teamIDs[p[0]], teamIDs[p[1]], date, r < opts.played); err != nil {
				return "", err
			}
			if r < opts.played {
				completed++
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}

	return fmt.Sprintf(
		"League seed complete: %s (%s) code %s, %d teams, %d players, %d rounds, %d results",
		name, sport, code, opts.teams, opts.teams*opts.players, len(rounds), completed,
	), nil
}

func insertMatch(ctx context.Context, tx pgx.Tx, faker *gofakeit.Faker, leagueID, home, away uuid.UUID, date time.Time, played bool) error {
	clock := fmt.Sprintf("%02d:00:00", faker.Number(12, 20))
	if !played {
		_, err := tx.Exec(ctx, `
            INSERT INTO matches (league_id, home_team_id, away_team_id, match_date, match_time, status)
            VALUES ($1, $2, $3, $4, $5, 'scheduled')
        `, leagueID, home, away, date, clock)
		if err != nil {
			return fmt.Errorf("insert match: %w", err)
		}
		return nil
	}

	_, err := tx.Exec(ctx, `
        INSERT INTO matches (league_id, home_team_id, away_team_id, match_date, match_time, status, home_score, away_score)
        VALUES ($1, $2, $3, $4, $5, 'completed', $6, $7)
    `, leagueID, home, away, date, clock, faker.Number(0, 4), faker.Number(0, 4))
	if err != nil {
		return fmt.Errorf("insert result: %w", err)
	}
	return nil
}

// roundRobin pairs n teams with the circle method so every team meets every
// other team once. With an odd count one team rests each round.
func roundRobin(n int) [][][2]int {
	slots := make([]int, 0, n+1)
	for i := range n {
		slots = append(slots, i)
	}
	if n%2 == 1 {
		slots = append(slots, -1)
	}

	size := len(slots)
	rounds := make([][][2]int, 0, size-1)
	for r := 0; r < size-1; r++ {
		var pairs [][2]int
		for i := 0; i < size/2; i++ {
			home, away := slots[i], slots[size-1-i]
			if home < 0 || away < 0 {
				continue
			}
			if r%2 == 1 {
				home, away = away, home
			}
			pairs = append(pairs, [2]int{home, away})
		}
		rounds = append(rounds, pairs)

		// keep slot 0 fixed and rotate the rest clockwise
		last := slots[size-1]
		copy(slots[2:], slots[1:size-1])
		slots[1] = last
	}
	return rounds
}
