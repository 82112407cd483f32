package standings

import (
	"cmp"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/mcdev12/leaguehub/go/internal/models"
)

// Rank returns a copy of rows ordered by points, highest first, then by team
// name. The input is left untouched.
func Rank(rows []models.StandingsRow) []models.StandingsRow {
	ranked := slices.Clone(rows)
	if ranked == nil {
		ranked = []models.StandingsRow{}
	}
	slices.SortStableFunc(ranked, func(a, b models.StandingsRow) int {
		if c := cmp.Compare(b.Points, a.Points); c != 0 {
			return c
		}
		return strings.Compare(strings.ToLower(a.TeamName), strings.ToLower(b.TeamName))
	})
	return ranked
}

// ApplyTo copies the tallies of rows onto the matching teams.
func ApplyTo(teams []models.TeamWithDetails, rows []models.StandingsRow) {
	byTeam := make(map[uuid.UUID]models.StandingsRow, len(rows))
	for _, row := range rows {
		byTeam[row.TeamID] = row
	}
	for i := range teams {
		row, ok := byTeam[teams[i].ID]
		if !ok {
			continue
		}
		teams[i].Played = row.Played
		teams[i].Wins = row.Won
		teams[i].Draws = row.Drawn
		teams[i].Losses = row.Lost
		teams[i].Points = row.Points
	}
}
