package db

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type Match struct {
	ID         uuid.UUID
	LeagueID   uuid.UUID
	HomeTeamID uuid.UUID
	AwayTeamID uuid.UUID
	MatchDate  time.Time
	MatchTime  time.Time
	Status     string
	HomeScore  sql.NullInt32
	AwayScore  sql.NullInt32
	CreatedAt  time.Time
}
