package models

import (
	"time"

	"github.com/google/uuid"
)

// Team represents a roster container owned by a league
type Team struct {
	ID        uuid.UUID `json:"id"`
	LeagueID  uuid.UUID `json:"league_id"`
	Name      string    `json:"name"`
	LogoURL   *string   `json:"logo_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TeamWithDetails is a team together with its players and standings tallies
type TeamWithDetails struct {
	Team
	Players []Player `json:"players"`
	Played  int      `json:"played"`
	Wins    int      `json:"wins"`
	Draws   int      `json:"draws"`
	Losses  int      `json:"losses"`
	Points  int      `json:"points"`
}
