package leagues

import (
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/leaguehub/go/internal/models"
)

// MinNameLength is the shortest accepted league name, after trimming.
const MinNameLength = 3

// CreateLeagueRequest represents the data needed to create a new league
type CreateLeagueRequest struct {
	Name    string       `json:"name"`
	Sport   models.Sport `json:"sport_type"`
	AdminID uuid.UUID    `json:"admin_id"`
}

// UpdateLeagueRequest represents the data that can be updated for a league.
// AdminID identifies the caller and must match the league's admin.
type UpdateLeagueRequest struct {
	AdminID uuid.UUID    `json:"admin_id"`
	Name    string       `json:"name"`
	Sport   models.Sport `json:"sport_type"`
}

// NewLeague is what the repository persists on create
type NewLeague struct {
	Name      string
	Sport     models.Sport
	Code      string
	AdminID   uuid.UUID
	CreatedAt time.Time
}
