package models

import (
	"time"

	"github.com/google/uuid"
)

// Sport represents the sport a league is played in
type Sport string

const (
	SportCricket   Sport = "Cricket"
	SportFootball  Sport = "Football"
	SportBadminton Sport = "Badminton"
)

// Sports lists every supported sport
var Sports = []Sport{SportCricket, SportFootball, SportBadminton}

// Valid reports whether s is one of the supported sports
func (s Sport) Valid() bool {
	switch s {
	case SportCricket, SportFootball, SportBadminton:
		return true
	default:
		return false
	}
}

// League represents a competition for one sport, shared by its code
type League struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Sport     Sport     `json:"sport_type"`
	Code      string    `json:"code"`
	AdminID   uuid.UUID `json:"admin_id"`
	CreatedAt time.Time `json:"created_at"`
}

// LeagueSummary is a league with the counts shown on an admin dashboard
type LeagueSummary struct {
	League
	TeamCount  int `json:"team_count"`
	MatchCount int `json:"match_count"`
}
