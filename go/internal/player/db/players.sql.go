package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const playerColumns = `id, team_id, name, created_at`

func scanPlayer(row interface{ Scan(...interface{}) error }) (Player, error) {
	var i Player
	err := row.Scan(
		&i.ID,
		&i.TeamID,
		&i.Name,
		&i.CreatedAt,
	)
	return i, err
}

func collectPlayers(rows *sql.Rows, err error) ([]Player, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Player{}
	for rows.Next() {
		i, err := scanPlayer(rows)
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

const createPlayer = `-- name: CreatePlayer :one
INSERT INTO players (team_id, name, created_at)
VALUES ($1, $2, $3)
RETURNING ` + playerColumns

type CreatePlayerParams struct {
	TeamID    uuid.UUID
	Name      string
	CreatedAt time.Time
}

func (q *Queries) CreatePlayer(ctx context.Context, arg CreatePlayerParams) (Player, error) {
	row := q.db.QueryRowContext(ctx, createPlayer, arg.TeamID, arg.Name, arg.CreatedAt)
	return scanPlayer(row)
}

const getPlayer = `-- name: GetPlayer :one
SELECT ` + playerColumns + ` FROM players
WHERE id = $1`

func (q *Queries) GetPlayer(ctx context.Context, id uuid.UUID) (Player, error) {
	row := q.db.QueryRowContext(ctx, getPlayer, id)
	return scanPlayer(row)
}

const getPlayersByTeam = `-- name: GetPlayersByTeam :many
SELECT ` + playerColumns + ` FROM players
WHERE team_id = $1
ORDER BY created_at, name`

func (q *Queries) GetPlayersByTeam(ctx context.Context, teamID uuid.UUID) ([]Player, error) {
	return collectPlayers(q.db.QueryContext(ctx, getPlayersByTeam, teamID))
}

const getPlayersByTeamIDs = `-- name: GetPlayersByTeamIDs :many
SELECT ` + playerColumns + ` FROM players
WHERE team_id = ANY($1::uuid[])
ORDER BY created_at, name`

func (q *Queries) GetPlayersByTeamIDs(ctx context.Context, teamIds []uuid.UUID) ([]Player, error) {
	ids := make([]string, len(teamIds))
	for i, id := range teamIds {
		ids[i] = id.String()
	}
	return collectPlayers(q.db.QueryContext(ctx, getPlayersByTeamIDs, pq.Array(ids)))
}

const getPlayersByLeague = `-- name: GetPlayersByLeague :many
SELECT p.id, p.team_id, p.name, p.created_at FROM players p
JOIN teams t ON t.id = p.team_id
WHERE t.league_id = $1
ORDER BY p.created_at, p.name`

func (q *Queries) GetPlayersByLeague(ctx context.Context, leagueID uuid.UUID) ([]Player, error) {
	return collectPlayers(q.db.QueryContext(ctx, getPlayersByLeague, leagueID))
}

const updatePlayer = `-- name: UpdatePlayer :one
UPDATE players
SET name = $2
WHERE id = $1
RETURNING ` + playerColumns

type UpdatePlayerParams struct {
	ID   uuid.UUID
	Name string
}

func (q *Queries) UpdatePlayer(ctx context.Context, arg UpdatePlayerParams) (Player, error) {
	row := q.db.QueryRowContext(ctx, updatePlayer, arg.ID, arg.Name)
	return scanPlayer(row)
}

const deletePlayer = `-- name: DeletePlayer :execrows
DELETE FROM players WHERE id = $1`

func (q *Queries) DeletePlayer(ctx context.Context, id uuid.UUID) (int64, error) {
	result, err := q.db.ExecContext(ctx, deletePlayer, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
