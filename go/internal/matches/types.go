package matches

import (
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/leaguehub/go/internal/models"
)

// ScheduleMatchRequest represents the data needed to schedule a match.
// MatchDate is YYYY-MM-DD; MatchTime is HH:MM or HH:MM:SS.
type ScheduleMatchRequest struct {
	LeagueID   uuid.UUID `json:"league_id"`
	HomeTeamID uuid.UUID `json:"home_team_id"`
	AwayTeamID uuid.UUID `json:"away_team_id"`
	MatchDate  string    `json:"match_date"`
	MatchTime  string    `json:"match_time"`
}

// NewMatch is what the repository persists on schedule
type NewMatch struct {
	LeagueID   uuid.UUID
	HomeTeamID uuid.UUID
	AwayTeamID uuid.UUID
	MatchDate  time.Time
	MatchTime  string
	CreatedAt  time.Time
}

// Outcome is the status and score pair written in a single update.
// Scores are set only for completed matches.
type Outcome struct {
	Status    models.MatchStatus
	HomeScore *int
	AwayScore *int
}
