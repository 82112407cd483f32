package db

import (
	"time"

	"github.com/google/uuid"
)

type League struct {
	ID        uuid.UUID
	Name      string
	SportType string
	Code      string
	AdminID   uuid.UUID
	CreatedAt time.Time
}
