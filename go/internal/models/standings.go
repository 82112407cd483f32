package models

import "github.com/google/uuid"

// StandingsRow is the per-team aggregate derived from completed matches
type StandingsRow struct {
	TeamID   uuid.UUID `json:"team_id"`
	TeamName string    `json:"team_name"`
	Played   int       `json:"played"`
	Won      int       `json:"won"`
	Drawn    int       `json:"drawn"`
	Lost     int       `json:"lost"`
	Points   int       `json:"points"`
}
