package models

import (
	"time"

	"github.com/google/uuid"
)

// MatchStatus represents where a match is in its lifecycle
type MatchStatus string

const (
	MatchStatusScheduled MatchStatus = "scheduled"
	MatchStatusCompleted MatchStatus = "completed"
	MatchStatusCancelled MatchStatus = "cancelled"
)

// Valid reports whether s is a known match status
func (s MatchStatus) Valid() bool {
	switch s {
	case MatchStatusScheduled, MatchStatusCompleted, MatchStatusCancelled:
		return true
	default:
		return false
	}
}

// Match represents a fixture between two teams of the same league.
// HomeScore and AwayScore are set if and only if Status is completed.
type Match struct {
	ID         uuid.UUID   `json:"id"`
	LeagueID   uuid.UUID   `json:"league_id"`
	HomeTeamID uuid.UUID   `json:"home_team_id"`
	AwayTeamID uuid.UUID   `json:"away_team_id"`
	MatchDate  time.Time   `json:"match_date"`
	MatchTime  string      `json:"match_time"` // HH:MM:SS
	Status     MatchStatus `json:"status"`
	HomeScore  *int        `json:"home_score"`
	AwayScore  *int        `json:"away_score"`
	CreatedAt  time.Time   `json:"created_at"`
}

// HasResult reports whether the match is completed with both scores present
func (m Match) HasResult() bool {
	return m.Status == MatchStatusCompleted && m.HomeScore != nil && m.AwayScore != nil
}

// Involves reports whether the team plays in the match
func (m Match) Involves(teamID uuid.UUID) bool {
	return m.HomeTeamID == teamID || m.AwayTeamID == teamID
}

// MatchWithTeamNames is a match with both team names resolved for display
type MatchWithTeamNames struct {
	Match
	HomeTeamName string `json:"home_team_name"`
	AwayTeamName string `json:"away_team_name"`
}
