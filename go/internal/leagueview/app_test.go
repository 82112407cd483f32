package leagueview

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/mcdev12/leaguehub/go/internal/apiv1"
	"github.com/mcdev12/leaguehub/go/internal/errs"
	"github.com/mcdev12/leaguehub/go/internal/models"
	"github.com/mcdev12/leaguehub/go/internal/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

type leagueFixture struct {
	store   *FakeStore
	league  models.League
	a, b, c models.Team
	app     *App
}

// newLeagueFixture builds a three-team league where A beat B 2-1, B and C
// drew 0-0, C has an upcoming match against A, and a cancelled A-B match
// would have given B three points.
func newLeagueFixture() *leagueFixture {
	league := models.League{ID: uuid.New(), Name: "Park Football", Sport: models.SportFootball, Code: "PARK01"}
	a := models.Team{ID: uuid.New(), LeagueID: league.ID, Name: "Cedar"}
	b := models.Team{ID: uuid.New(), LeagueID: league.ID, Name: "Birch"}
	c := models.Team{ID: uuid.New(), LeagueID: league.ID, Name: "Alder"}
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	match := func(home, away models.Team, status models.MatchStatus, hs, as *int, offset int) models.Match {
		return models.Match{
			ID: uuid.New(), LeagueID: league.ID, HomeTeamID: home.ID, AwayTeamID: away.ID,
			MatchDate: day.AddDate(0, 0, offset), MatchTime: "18:00:00",
			Status: status, HomeScore: hs, AwayScore: as,
		}
	}

	store := &FakeStore{
		Leagues: []models.League{league},
		Teams:   []models.Team{a, b, c},
		Players: []models.Player{
			{ID: uuid.New(), TeamID: a.ID, Name: "Rui"},
			{ID: uuid.New(), TeamID: c.ID, Name: "Sofia"},
		},
		Matches: []models.Match{
			match(a, b, models.MatchStatusCompleted, intPtr(2), intPtr(1), 0),
			match(b, c, models.MatchStatusCompleted, intPtr(0), intPtr(0), 7),
			match(a, b, models.MatchStatusCancelled, nil, nil, 10),
			match(c, a, models.MatchStatusScheduled, nil, nil, 14),
		},
	}
	rosters := roster.NewApp(store, store, store)
	return &leagueFixture{
		store: store, league: league, a: a, b: b, c: c,
		app: NewApp(store, store, store, rosters),
	}
}

func TestGetLeagueView(t *testing.T) {
	f := newLeagueFixture()

	view, err := f.app.GetLeagueView(context.Background(), " park01 ")
	require.NoError(t, err)
	assert.Equal(t, f.league.ID, view.League.ID)

	require.Len(t, view.Teams, 3)
	cedar := view.Teams[0]
	assert.Equal(t, "Cedar", cedar.Name)
	assert.Len(t, cedar.Players, 1)
	assert.Equal(t, 1, cedar.Played)
	assert.Equal(t, 1, cedar.Wins)
	assert.Equal(t, 3, cedar.Points)
	assert.Empty(t, view.Teams[1].Players)
	assert.Equal(t, 1, view.Teams[1].Losses)

	require.Len(t, view.Upcoming, 1)
	assert.Equal(t, "Alder", view.Upcoming[0].HomeTeamName)
	assert.Equal(t, "Cedar", view.Upcoming[0].AwayTeamName)

	require.Len(t, view.Completed, 2)
	assert.Equal(t, "Cedar", view.Completed[0].HomeTeamName)
	assert.Equal(t, "Birch", view.Completed[0].AwayTeamName)

	var order []string
	var points []int
	for _, row := range view.Standings {
		order = append(order, row.TeamName)
		points = append(points, row.Points)
	}
	assert.Equal(t, []string{"Cedar", "Alder", "Birch"}, order)
	assert.Equal(t, []int{3, 1, 1}, points)
}

func TestGetLeagueViewEmptyLeague(t *testing.T) {
	league := models.League{ID: uuid.New(), Name: "Fresh", Code: "NEW123"}
	store := &FakeStore{Leagues: []models.League{league}}
	app := NewApp(store, store, store, roster.NewApp(store, store, store))

	view, err := app.GetLeagueView(context.Background(), "NEW123")
	require.NoError(t, err)
	assert.NotNil(t, view.Teams)
	assert.NotNil(t, view.Upcoming)
	assert.NotNil(t, view.Completed)
	assert.NotNil(t, view.Standings)
	assert.Empty(t, view.Standings)
}

func TestGetLeagueViewErrors(t *testing.T) {
	f := newLeagueFixture()
	ctx := context.Background()

	_, err := f.app.GetLeagueView(ctx, "PARK")
	assert.ErrorIs(t, err, errs.ErrValidation)
	assert.ErrorContains(t, err, "failed to resolve league code")

	_, err = f.app.GetLeagueView(ctx, "ZZZ999")
	assert.ErrorIs(t, err, errs.ErrNotFound)
	assert.ErrorContains(t, err, "failed to resolve league code")

	f.store.MatchesErr = errors.New("timeout")
	_, err = f.app.GetLeagueView(ctx, "PARK01")
	assert.ErrorContains(t, err, "failed to get matches")
}

func TestGetStandings(t *testing.T) {
	f := newLeagueFixture()
	ctx := context.Background()

	rows, err := f.app.GetStandings(ctx, f.league.ID)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, f.a.ID, rows[0].TeamID)

	_, err = f.app.GetStandings(ctx, uuid.Nil)
	assert.ErrorIs(t, err, errs.ErrValidation)

	_, err = f.app.GetStandings(ctx, uuid.New())
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestService(t *testing.T) {
	f := newLeagueFixture()
	mux := http.NewServeMux()
	mux.Handle(apiv1.NewLeagueViewServiceHandler(NewService(f.app)))
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	client := apiv1.NewLeagueViewServiceClient(server.Client(), server.URL)
	ctx := context.Background()

	resp, err := client.GetLeagueView(ctx, connect.NewRequest(&apiv1.GetLeagueViewRequest{Code: "park01"}))
	require.NoError(t, err)
	assert.Equal(t, f.league.Name, resp.Msg.League.Name)
	assert.Len(t, resp.Msg.Standings, 3)
	assert.Len(t, resp.Msg.Upcoming, 1)

	_, err = client.GetLeagueView(ctx, connect.NewRequest(&apiv1.GetLeagueViewRequest{Code: "!!"}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	_, err = client.GetLeagueView(ctx, connect.NewRequest(&apiv1.GetLeagueViewRequest{Code: "ABCDEF"}))
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))

	standingsResp, err := client.GetStandings(ctx, connect.NewRequest(&apiv1.GetStandingsRequest{LeagueID: f.league.ID.String()}))
	require.NoError(t, err)
	assert.Equal(t, "Cedar", standingsResp.Msg.Standings[0].TeamName)
}
