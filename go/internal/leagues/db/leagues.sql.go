package db

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const leagueColumns = `id, name, sport_type, code, admin_id, created_at`

func scanLeague(row interface{ Scan(...interface{}) error }) (League, error) {
	var i League
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.SportType,
		&i.Code,
		&i.AdminID,
		&i.CreatedAt,
	)
	return i, err
}

const createLeague = `-- name: CreateLeague :one
INSERT INTO leagues (name, sport_type, code, admin_id, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + leagueColumns

type CreateLeagueParams struct {
	Name      string
	SportType string
	Code      string
	AdminID   uuid.UUID
	CreatedAt time.Time
}

func (q *Queries) CreateLeague(ctx context.Context, arg CreateLeagueParams) (League, error) {
	row := q.db.QueryRowContext(ctx, createLeague,
		arg.Name,
		arg.SportType,
		arg.Code,
		arg.AdminID,
		arg.CreatedAt,
	)
	return scanLeague(row)
}

const getLeague = `-- name: GetLeague :one
SELECT ` + leagueColumns + ` FROM leagues
WHERE id = $1`

func (q *Queries) GetLeague(ctx context.Context, id uuid.UUID) (League, error) {
	row := q.db.QueryRowContext(ctx, getLeague, id)
	return scanLeague(row)
}

const getLeagueByCode = `-- name: GetLeagueByCode :one
SELECT ` + leagueColumns + ` FROM leagues
WHERE upper(code) = upper($1)`

func (q *Queries) GetLeagueByCode(ctx context.Context, code string) (League, error) {
	row := q.db.QueryRowContext(ctx, getLeagueByCode, code)
	return scanLeague(row)
}

const getLeaguesByAdmin = `-- name: GetLeaguesByAdmin :many
SELECT l.id, l.name, l.sport_type, l.code, l.admin_id, l.created_at,
       (SELECT count(*) FROM teams t WHERE t.league_id = l.id) AS team_count,
       (SELECT count(*) FROM matches m WHERE m.league_id = l.id) AS match_count
FROM leagues l
WHERE l.admin_id = $1
ORDER BY l.created_at DESC`

type GetLeaguesByAdminRow struct {
	League
	TeamCount  int64
	MatchCount int64
}

func (q *Queries) GetLeaguesByAdmin(ctx context.Context, adminID uuid.UUID) ([]GetLeaguesByAdminRow, error) {
	rows, err := q.db.QueryContext(ctx, getLeaguesByAdmin, adminID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []GetLeaguesByAdminRow{}
	for rows.Next() {
		var i GetLeaguesByAdminRow
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.SportType,
			&i.Code,
			&i.AdminID,
			&i.CreatedAt,
			&i.TeamCount,
			&i.MatchCount,
		); err != nil {
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

const updateLeague = `-- name: UpdateLeague :one
UPDATE leagues
SET name = $2, sport_type = $3
WHERE id = $1
RETURNING ` + leagueColumns

type UpdateLeagueParams struct {
	ID        uuid.UUID
	Name      string
	SportType string
}

func (q *Queries) UpdateLeague(ctx context.Context, arg UpdateLeagueParams) (League, error) {
	row := q.db.QueryRowContext(ctx, updateLeague, arg.ID, arg.Name, arg.SportType)
	return scanLeague(row)
}

const deleteMatchesByLeague = `-- name: DeleteMatchesByLeague :exec
DELETE FROM matches WHERE league_id = $1`

func (q *Queries) DeleteMatchesByLeague(ctx context.Context, leagueID uuid.UUID) error {
	_, err := q.db.ExecContext(ctx, deleteMatchesByLeague, leagueID)
	return err
}

const deletePlayersByLeague = `-- name: DeletePlayersByLeague :exec
DELETE FROM players
WHERE team_id IN (SELECT id FROM teams WHERE league_id = $1)`

func (q *Queries) DeletePlayersByLeague(ctx context.Context, leagueID uuid.UUID) error {
	_, err := q.db.ExecContext(ctx, deletePlayersByLeague, leagueID)
	return err
}

const deleteTeamsByLeague = `-- name: DeleteTeamsByLeague :exec
DELETE FROM teams WHERE league_id = $1`

func (q *Queries) DeleteTeamsByLeague(ctx context.Context, leagueID uuid.UUID) error {
	_, err := q.db.ExecContext(ctx, deleteTeamsByLeague, leagueID)
	return err
}

const deleteLeague = `-- name: DeleteLeague :execrows
DELETE FROM leagues WHERE id = $1`

func (q *Queries) DeleteLeague(ctx context.Context, id uuid.UUID) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteLeague, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
