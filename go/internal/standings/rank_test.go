package standings

import (
	"testing"

	"github.com/google/uuid"
	"github.com/mcdev12/leaguehub/go/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestRank(t *testing.T) {
	rows := []models.StandingsRow{
		{TeamName: "Bravo", Points: 1},
		{TeamName: "Alpha", Points: 1},
		{TeamName: "Charlie", Points: 6},
		{TeamName: "delta", Points: 0},
	}

	ranked := Rank(rows)

	names := make([]string, 0, len(ranked))
	for _, row := range ranked {
		names = append(names, row.TeamName)
	}
	assert.Equal(t, []string{"Charlie", "Alpha", "Bravo", "delta"}, names)
	assert.Equal(t, "Bravo", rows[0].TeamName, "input must not be reordered")
}

func TestRankEmpty(t *testing.T) {
	assert.Equal(t, []models.StandingsRow{}, Rank(nil))
}

func TestApplyTo(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	teams := []models.TeamWithDetails{
		{Team: models.Team{ID: a, Name: "A"}},
		{Team: models.Team{ID: b, Name: "B"}},
	}
	rows := []models.StandingsRow{
		{TeamID: a, Played: 2, Won: 1, Drawn: 1, Points: 4},
	}

	ApplyTo(teams, rows)

	assert.Equal(t, 2, teams[0].Played)
	assert.Equal(t, 1, teams[0].Wins)
	assert.Equal(t, 1, teams[0].Draws)
	assert.Equal(t, 0, teams[0].Losses)
	assert.Equal(t, 4, teams[0].Points)
	assert.Zero(t, teams[1].Played)
}
