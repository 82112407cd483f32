package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

const matchColumns = `id, league_id, home_team_id, away_team_id, match_date, match_time, status, home_score, away_score, created_at`

func scanMatch(row interface{ Scan(...interface{}) error }) (Match, error) {
	var i Match
	err := row.Scan(
		&i.ID,
		&i.LeagueID,
		&i.HomeTeamID,
		&i.AwayTeamID,
		&i.MatchDate,
		&i.MatchTime,
		&i.Status,
		&i.HomeScore,
		&i.AwayScore,
		&i.CreatedAt,
	)
	return i, err
}

func collectMatches(rows *sql.Rows, err error) ([]Match, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Match{}
	for rows.Next() {
		i, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createMatch = `-- name: CreateMatch :one
INSERT INTO matches (league_id, home_team_id, away_team_id, match_date, match_time, status, created_at)
VALUES ($1, $2, $3, $4, $5, 'scheduled', $6)
RETURNING ` + matchColumns

type CreateMatchParams struct {
	LeagueID   uuid.UUID
	HomeTeamID uuid.UUID
	AwayTeamID uuid.UUID
	MatchDate  time.Time
	MatchTime  string
	CreatedAt  time.Time
}

func (q *Queries) CreateMatch(ctx context.Context, arg CreateMatchParams) (Match, error) {
	row := q.db.QueryRowContext(ctx, createMatch,
		arg.LeagueID,
		arg.HomeTeamID,
		arg.AwayTeamID,
		arg.MatchDate,
		arg.MatchTime,
		arg.CreatedAt,
	)
	return scanMatch(row)
}

const getMatch = `-- name: GetMatch :one
SELECT ` + matchColumns + ` FROM matches
WHERE id = $1`

func (q *Queries) GetMatch(ctx context.Context, id uuid.UUID) (Match, error) {
	row := q.db.QueryRowContext(ctx, getMatch, id)
	return scanMatch(row)
}

const getMatchesByLeague = `-- name: GetMatchesByLeague :many
SELECT ` + matchColumns + ` FROM matches
WHERE league_id = $1
ORDER BY match_date, match_time, created_at`

func (q *Queries) GetMatchesByLeague(ctx context.Context, leagueID uuid.UUID) ([]Match, error) {
	return collectMatches(q.db.QueryContext(ctx, getMatchesByLeague, leagueID))
}

const getMatchesByLeagueAndStatus = `-- name: GetMatchesByLeagueAndStatus :many
SELECT ` + matchColumns + ` FROM matches
WHERE league_id = $1 AND status = $2
ORDER BY match_date, match_time, created_at`

type GetMatchesByLeagueAndStatusParams struct {
	LeagueID uuid.UUID
	Status   string
}

func (q *Queries) GetMatchesByLeagueAndStatus(ctx context.Context, arg GetMatchesByLeagueAndStatusParams) ([]Match, error) {
	return collectMatches(q.db.QueryContext(ctx, getMatchesByLeagueAndStatus, arg.LeagueID, arg.Status))
}

const setMatchOutcome = `-- name: SetMatchOutcome :one
UPDATE matches
SET status = $2, home_score = $3, away_score = $4
WHERE id = $1
RETURNING ` + matchColumns

type SetMatchOutcomeParams struct {
	ID        uuid.UUID
	Status    string
	HomeScore sql.NullInt32
	AwayScore sql.NullInt32
}

func (q *Queries) SetMatchOutcome(ctx context.Context, arg SetMatchOutcomeParams) (Match, error) {
	row := q.db.QueryRowContext(ctx, setMatchOutcome,
		arg.ID,
		arg.Status,
		arg.HomeScore,
		arg.AwayScore,
	)
	return scanMatch(row)
}

const rescheduleMatch = `-- name: RescheduleMatch :one
UPDATE matches
SET match_date = $2, match_time = $3
WHERE id = $1
RETURNING ` + matchColumns

type RescheduleMatchParams struct {
	ID        uuid.UUID
	MatchDate time.Time
	MatchTime string
}

func (q *Queries) RescheduleMatch(ctx context.Context, arg RescheduleMatchParams) (Match, error) {
	row := q.db.QueryRowContext(ctx, rescheduleMatch, arg.ID, arg.MatchDate, arg.MatchTime)
	return scanMatch(row)
}

const deleteMatch = `-- name: DeleteMatch :execrows
DELETE FROM matches WHERE id = $1`

func (q *Queries) DeleteMatch(ctx context.Context, id uuid.UUID) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteMatch, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
