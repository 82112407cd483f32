package db

import (
	"time"

	"github.com/google/uuid"
)

type Player struct {
	ID        uuid.UUID
	TeamID    uuid.UUID
	Name      string
	CreatedAt time.Time
}
