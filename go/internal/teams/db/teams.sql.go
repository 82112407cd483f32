package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

const teamColumns = `id, league_id, name, logo_url, created_at`

func scanTeam(row interface{ Scan(...interface{}) error }) (Team, error) {
	var i Team
	err := row.Scan(
		&i.ID,
		&i.LeagueID,
		&i.Name,
		&i.LogoUrl,
		&i.CreatedAt,
	)
	return i, err
}

const createTeam = `-- name: CreateTeam :one
INSERT INTO teams (league_id, name, logo_url, created_at)
VALUES ($1, $2, $3, $4)
RETURNING ` + teamColumns

type CreateTeamParams struct {
	LeagueID  uuid.UUID
	Name      string
	LogoUrl   sql.NullString
	CreatedAt time.Time
}

func (q *Queries) CreateTeam(ctx context.Context, arg CreateTeamParams) (Team, error) {
	row := q.db.QueryRowContext(ctx, createTeam,
		arg.LeagueID,
		arg.Name,
		arg.LogoUrl,
		arg.CreatedAt,
	)
	return scanTeam(row)
}

const getTeam = `-- name: GetTeam :one
SELECT ` + teamColumns + ` FROM teams
WHERE id = $1`

func (q *Queries) GetTeam(ctx context.Context, id uuid.UUID) (Team, error) {
	row := q.db.QueryRowContext(ctx, getTeam, id)
	return scanTeam(row)
}

const getTeamsByLeague = `-- name: GetTeamsByLeague :many
SELECT ` + teamColumns + ` FROM teams
WHERE league_id = $1
ORDER BY created_at, name`

func (q *Queries) GetTeamsByLeague(ctx context.Context, leagueID uuid.UUID) ([]Team, error) {
	rows, err := q.db.QueryContext(ctx, getTeamsByLeague, leagueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Team{}
	for rows.Next() {
		i, err := scanTeam(rows)
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

const updateTeam = `-- name: UpdateTeam :one
UPDATE teams
SET name = $2, logo_url = $3
WHERE id = $1
RETURNING ` + teamColumns

type UpdateTeamParams struct {
	ID      uuid.UUID
	Name    string
	LogoUrl sql.NullString
}

func (q *Queries) UpdateTeam(ctx context.Context, arg UpdateTeamParams) (Team, error) {
	row := q.db.QueryRowContext(ctx, updateTeam, arg.ID, arg.Name, arg.LogoUrl)
	return scanTeam(row)
}

const deleteTeam = `-- name: DeleteTeam :execrows
DELETE FROM teams WHERE id = $1`

func (q *Queries) DeleteTeam(ctx context.Context, id uuid.UUID) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteTeam, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
