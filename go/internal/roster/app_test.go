package roster

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/mcdev12/leaguehub/go/internal/apiv1"
	"github.com/mcdev12/leaguehub/go/internal/errs"
	"github.com/mcdev12/leaguehub/go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRosterStore() (*FakeStore, models.League) {
	league := models.League{ID: uuid.New(), Name: "Sunday Badminton", Sport: models.SportBadminton, Code: "SHUTL3"}
	other := uuid.New()
	smash := models.Team{ID: uuid.New(), LeagueID: league.ID, Name: "Smash"}
	drop := models.Team{ID: uuid.New(), LeagueID: league.ID, Name: "Drop Shot"}
	elsewhere := models.Team{ID: uuid.New(), LeagueID: other, Name: "Elsewhere"}

	return &FakeStore{
		Leagues: []models.League{league},
		Teams:   []models.Team{smash, drop, elsewhere},
		Players: []models.Player{
			{ID: uuid.New(), TeamID: smash.ID, Name: "Ines"},
			{ID: uuid.New(), TeamID: elsewhere.ID, Name: "Olu"},
			{ID: uuid.New(), TeamID: smash.ID, Name: "Kai"},
		},
	}, league
}

func TestGetLeagueRoster(t *testing.T) {
	store, league := newRosterStore()
	app := NewApp(store, store, store)

	teams, err := app.GetLeagueRoster(context.Background(), league.ID)
	require.NoError(t, err)
	require.Len(t, teams, 2)

	assert.Equal(t, "Smash", teams[0].Name)
	require.Len(t, teams[0].Players, 2)
	assert.Equal(t, "Ines", teams[0].Players[0].Name)
	assert.Equal(t, "Kai", teams[0].Players[1].Name)

	assert.Equal(t, "Drop Shot", teams[1].Name)
	assert.NotNil(t, teams[1].Players)
	assert.Empty(t, teams[1].Players)
	assert.Zero(t, teams[1].Points)
}

func TestGetLeagueRosterEmptyLeague(t *testing.T) {
	league := models.League{ID: uuid.New(), Name: "New League"}
	store := &FakeStore{Leagues: []models.League{league}}

	teams, err := NewApp(store, store, store).GetLeagueRoster(context.Background(), league.ID)
	require.NoError(t, err)
	assert.NotNil(t, teams)
	assert.Empty(t, teams)
	assert.Zero(t, store.PlayerLookups, "no teams means no player query")
}

func TestGetLeagueRosterErrors(t *testing.T) {
	store, league := newRosterStore()
	app := NewApp(store, store, store)
	ctx := context.Background()

	_, err := app.GetLeagueRoster(ctx, uuid.Nil)
	assert.ErrorIs(t, err, errs.ErrValidation)

	_, err = app.GetLeagueRoster(ctx, uuid.New())
	assert.ErrorIs(t, err, errs.ErrNotFound)

	store.PlayersErr = errors.New("connection refused")
	_, err = app.GetLeagueRoster(ctx, league.ID)
	assert.ErrorContains(t, err, "failed to get players")
}

func TestServiceGetLeagueRoster(t *testing.T) {
	store, league := newRosterStore()
	mux := http.NewServeMux()
	mux.Handle(apiv1.NewRosterServiceHandler(NewService(NewApp(store, store, store))))
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	client := apiv1.NewRosterServiceClient(server.Client(), server.URL)
	ctx := context.Background()

	resp, err := client.GetLeagueRoster(ctx, connect.NewRequest(&apiv1.GetLeagueRosterRequest{LeagueID: league.ID.String()}))
	require.NoError(t, err)
	assert.Len(t, resp.Msg.Teams, 2)

	_, err = client.GetLeagueRoster(ctx, connect.NewRequest(&apiv1.GetLeagueRosterRequest{LeagueID: "nope"}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	_, err = client.GetLeagueRoster(ctx, connect.NewRequest(&apiv1.GetLeagueRosterRequest{LeagueID: uuid.NewString()}))
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))
}
