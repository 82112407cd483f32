// Package standings derives a league table from teams and their completed
// matches.
package standings

import (
	"github.com/mcdev12/leaguehub/go/internal/models"
)

// Points awarded per outcome.
const (
	PointsWin  = 3
	PointsDraw = 1
	PointsLoss = 0
)

// Compute tallies one row per team, in the order the teams are given.
//
// Only completed matches with both scores set count; anything else is
// skipped. Teams with no counted matches get a zero row.
func Compute(teams []models.Team, matches []models.Match) []models.StandingsRow {
	counted := make([]models.Match, 0, len(matches))
	for _, match := range matches {
		if match.HasResult() {
			counted = append(counted, match)
		}
	}

	rows := make([]models.StandingsRow, 0, len(teams))
	for _, team := range teams {
		row := models.StandingsRow{
			TeamID:   team.ID,
			TeamName: team.Name,
		}
		for _, match := range counted {
			switch team.ID {
			case match.HomeTeamID:
				tally(&row, *match.HomeScore, *match.AwayScore)
			case match.AwayTeamID:
				tally(&row, *match.AwayScore, *match.HomeScore)
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func tally(row *models.StandingsRow, own, opponent int) {
	switch {
	case own > opponent:
		row.Won++
		row.Points += PointsWin
	case own == opponent:
		row.Drawn++
		row.Points += PointsDraw
	default:
		row.Lost++
		row.Points += PointsLoss
	}
	row.Played++
}
