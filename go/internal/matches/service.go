package matches

import (
	"context"
	"strings"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/mcdev12/leaguehub/go/internal/apiv1"
	"github.com/mcdev12/leaguehub/go/internal/errs"
	"github.com/mcdev12/leaguehub/go/internal/models"
)

// MatchesApp defines what the service layer needs from the matches application
type MatchesApp interface {
	Schedule(ctx context.Context, req ScheduleMatchRequest) (*models.Match, error)
	GetMatch(ctx context.Context, id uuid.UUID) (*models.Match, error)
	GetMatchesByLeague(ctx context.Context, leagueID uuid.UUID) ([]models.Match, error)
	GetMatchesByLeagueAndStatus(ctx context.Context, leagueID uuid.UUID, status models.MatchStatus) ([]models.Match, error)
	RecordResult(ctx context.Context, id uuid.UUID, homeScore, awayScore *int) (*models.Match, error)
	ClearResult(ctx context.Context, id uuid.UUID) (*models.Match, error)
	Cancel(ctx context.Context, id uuid.UUID) (*models.Match, error)
	Reschedule(ctx context.Context, id uuid.UUID, matchDate, matchTime string) (*models.Match, error)
	DeleteMatch(ctx context.Context, id uuid.UUID) error
}

// Service implements the MatchService RPC interface
type Service struct {
	app MatchesApp
}

// NewService creates a new matches RPC service
func NewService(app MatchesApp) *Service {
	return &Service{app: app}
}

var _ apiv1.MatchServiceHandler = (*Service)(nil)

// ScheduleMatch schedules a match between two teams of a league
func (s *Service) ScheduleMatch(ctx context.Context, req *connect.Request[apiv1.ScheduleMatchRequest]) (*connect.Response[apiv1.ScheduleMatchResponse], error) {
	leagueID, err := apiv1.ParseID("league_id", req.Msg.LeagueID)
	if err != nil {
		return nil, errs.ToConnect(err)
	}
	homeID, err := apiv1.ParseID("home_team_id", req.Msg.HomeTeamID)
	if err != nil {
		return nil, errs.ToConnect(err)
	}
	awayID, err := apiv1.ParseID("away_team_id", req.Msg.AwayTeamID)
	if err != nil {
		return nil, errs.ToConnect(err)
	}

	match, err := s.app.Schedule(ctx, ScheduleMatchRequest{
		LeagueID:   leagueID,
		HomeTeamID: homeID,
		AwayTeamID: awayID,
		MatchDate:  req.Msg.MatchDate,
		MatchTime:  req.Msg.MatchTime,
	})
	if err != nil {
		return nil, errs.ToConnect(err)
	}

	return connect.NewResponse(&apiv1.ScheduleMatchResponse{Match: match}), nil
}

// GetMatch retrieves a match by ID
func (s *Service) GetMatch(ctx context.Context, req *connect.Request[apiv1.GetMatchRequest]) (*connect.Response[apiv1.GetMatchResponse], error) {
	id, err := apiv1.ParseID("id", req.Msg.ID)
	if err != nil {
		return nil, errs.ToConnect(err)
	}

	match, err := s.app.GetMatch(ctx, id)
	if err != nil {
		return nil, errs.ToConnect(err)
	}

	return connect.NewResponse(&apiv1.GetMatchResponse{Match: match}), nil
}

// GetMatchesByLeague lists a league's matches, optionally filtered by status
func (s *Service) GetMatchesByLeague(ctx context.Context, req *connect.Request[apiv1.GetMatchesByLeagueRequest]) (*connect.Response[apiv1.GetMatchesByLeagueResponse], error) {
	leagueID, err := apiv1.ParseID("league_id", req.Msg.LeagueID)
	if err != nil {
		return nil, errs.ToConnect(err)
	}

	var matches []models.Match
	if status := strings.TrimSpace(req.Msg.Status); status != "" {
		matches, err = s.app.GetMatchesByLeagueAndStatus(ctx, leagueID, models.MatchStatus(strings.ToLower(status)))
	} else {
		matches, err = s.app.GetMatchesByLeague(ctx, leagueID)
	}
	if err != nil {
		return nil, errs.ToConnect(err)
	}

	return connect.NewResponse(&apiv1.GetMatchesByLeagueResponse{Matches: matches}), nil
}

// RecordResult parses the entered scores and completes the match
func (s *Service) RecordResult(ctx context.Context, req *connect.Request[apiv1.RecordResultRequest]) (*connect.Response[apiv1.RecordResultResponse], error) {
	id, err := apiv1.ParseID("id", req.Msg.ID)
	if err != nil {
		return nil, errs.ToConnect(err)
	}
	home, err := ParseScore("home_score", req.Msg.HomeScore)
	if err != nil {
		return nil, errs.ToConnect(err)
	}
	away, err := ParseScore("away_score", req.Msg.AwayScore)
	if err != nil {
		return nil, errs.ToConnect(err)
	}

	match, err := s.app.RecordResult(ctx, id, home, away)
	if err != nil {
		return nil, errs.ToConnect(err)
	}

	return connect.NewResponse(&apiv1.RecordResultResponse{Match: match}), nil
}

// ClearResult returns a completed match to scheduled
func (s *Service) ClearResult(ctx context.Context, req *connect.Request[apiv1.ClearResultRequest]) (*connect.Response[apiv1.ClearResultResponse], error) {
	id, err := apiv1.ParseID("id", req.Msg.ID)
	if err != nil {
		return nil, errs.ToConnect(err)
	}

	match, err := s.app.ClearResult(ctx, id)
	if err != nil {
		return nil, errs.ToConnect(err)
	}

	return connect.NewResponse(&apiv1.ClearResultResponse{Match: match}), nil
}

// CancelMatch cancels a match
func (s *Service) CancelMatch(ctx context.Context, req *connect.Request[apiv1.CancelMatchRequest]) (*connect.Response[apiv1.CancelMatchResponse], error) {
	id, err := apiv1.ParseID("id", req.Msg.ID)
	if err != nil {
		return nil, errs.ToConnect(err)
	}

	match, err := s.app.Cancel(ctx, id)
	if err != nil {
		return nil, errs.ToConnect(err)
	}

	return connect.NewResponse(&apiv1.CancelMatchResponse{Match: match}), nil
}

// RescheduleMatch moves a match to a new date and time
func (s *Service) RescheduleMatch(ctx context.Context, req *connect.Request[apiv1.RescheduleMatchRequest]) (*connect.Response[apiv1.RescheduleMatchResponse], error) {
	id, err := apiv1.ParseID("id", req.Msg.ID)
	if err != nil {
		return nil, errs.ToConnect(err)
	}

	match, err := s.app.Reschedule(ctx, id, req.Msg.MatchDate, req.Msg.MatchTime)
	if err != nil {
		return nil, errs.ToConnect(err)
	}

	return connect.NewResponse(&apiv1.RescheduleMatchResponse{Match: match}), nil
}

// DeleteMatch deletes a match
func (s *Service) DeleteMatch(ctx context.Context, req *connect.Request[apiv1.DeleteMatchRequest]) (*connect.Response[apiv1.DeleteMatchResponse], error) {
	id, err := apiv1.ParseID("id", req.Msg.ID)
	if err != nil {
		return nil, errs.ToConnect(err)
	}

	if err := s.app.DeleteMatch(ctx, id); err != nil {
		return nil, errs.ToConnect(err)
	}

	return connect.NewResponse(&apiv1.DeleteMatchResponse{}), nil
}
