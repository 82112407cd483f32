package models

import (
	"time"

	"github.com/google/uuid"
)

// Player represents a named member of a team
type Player struct {
	ID        uuid.UUID `json:"id"`
	TeamID    uuid.UUID `json:"team_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
