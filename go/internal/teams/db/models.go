package db

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type Team struct {
	ID        uuid.UUID
	LeagueID  uuid.UUID
	Name      string
	LogoUrl   sql.NullString
	CreatedAt time.Time
}
