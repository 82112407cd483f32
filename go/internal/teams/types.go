package teams

import (
	"github.com/google/uuid"
)

// MinNameLength is the shortest accepted team name, after trimming.
const MinNameLength = 2

// CreateTeamRequest represents the data needed to create a new team
type CreateTeamRequest struct {
	LeagueID uuid.UUID `json:"league_id"`
	Name     string    `json:"name"`
	LogoURL  *string   `json:"logo_url,omitempty"`
}

// UpdateTeamRequest represents the data that can be updated for a team.
// A nil LogoURL removes the logo.
type UpdateTeamRequest struct {
	Name    string  `json:"name"`
	LogoURL *string `json:"logo_url,omitempty"`
}
