package roster

import (
	"github.com/google/uuid"
	"github.com/mcdev12/leaguehub/go/internal/models"
)

// GroupByTeam buckets players under their team id.
//
// Every id in teamIDs is present in the result, with an empty slice when no
// player references it. Players of teams not listed are dropped. Player order
// is preserved within each bucket.
func GroupByTeam(players []models.Player, teamIDs []uuid.UUID) map[uuid.UUID][]models.Player {
	grouped := make(map[uuid.UUID][]models.Player, len(teamIDs))
	for _, id := range teamIDs {
		grouped[id] = []models.Player{}
	}
	for _, p := range players {
		bucket, ok := grouped[p.TeamID]
		if !ok {
			continue
		}
		grouped[p.TeamID] = append(bucket, p)
	}
	return grouped
}
