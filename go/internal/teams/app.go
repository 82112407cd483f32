package teams

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/leaguehub/go/internal/errs"
	"github.com/mcdev12/leaguehub/go/internal/models"
	"github.com/rs/zerolog/log"
)

// TeamsRepository defines what the app layer needs from the repository
type TeamsRepository interface {
	CreateTeam(ctx context.Context, req CreateTeamRequest, createdAt time.Time) (*models.Team, error)
	GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error)
	GetTeamsByLeague(ctx context.Context, leagueID uuid.UUID) ([]models.Team, error)
	UpdateTeam(ctx context.Context, id uuid.UUID, req UpdateTeamRequest) (*models.Team, error)
	DeleteTeam(ctx context.Context, id uuid.UUID) error
}

// LeaguesGetter resolves the league a team is created under
type LeaguesGetter interface {
	GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error)
}

// App handles teams business logic
type App struct {
	repo    TeamsRepository
	leagues LeaguesGetter
	clock   clockwork.Clock
}

// NewApp creates a new teams App
func NewApp(repo TeamsRepository, leagues LeaguesGetter, clock clockwork.Clock) *App {
	return &App{
		repo:    repo,
		leagues: leagues,
		clock:   clock,
	}
}

// CreateTeam creates a new team under an existing league
func (a *App) CreateTeam(ctx context.Context, req CreateTeamRequest) (*models.Team, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.LogoURL = normalizeLogo(req.LogoURL)
	if err := a.validateCreateTeamRequest(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := a.leagues.GetLeague(ctx, req.LeagueID); err != nil {
		return nil, fmt.Errorf("league not found: %w", err)
	}

	team, err := a.repo.CreateTeam(ctx, req, a.clock.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	log.Info().
		Str("team_id", team.ID.String()).
		Str("league_id", team.LeagueID.String()).
		Msg("created team")
	return team, nil
}

// GetTeam retrieves a team by ID
func (a *App) GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	team, err := a.repo.GetTeam(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}

// GetTeamsByLeague retrieves all teams of a league
func (a *App) GetTeamsByLeague(ctx context.Context, leagueID uuid.UUID) ([]models.Team, error) {
	teams, err := a.repo.GetTeamsByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to get teams by league: %w", err)
	}
	return teams, nil
}

// UpdateTeam renames a team or changes its logo
func (a *App) UpdateTeam(ctx context.Context, id uuid.UUID, req UpdateTeamRequest) (*models.Team, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.LogoURL = normalizeLogo(req.LogoURL)
	if err := validateName(req.Name); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validateLogoURL(req.LogoURL); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	team, err := a.repo.UpdateTeam(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	log.Info().Str("team_id", team.ID.String()).Msg("updated team")
	return team, nil
}

// DeleteTeam deletes a team with its players and matches
func (a *App) DeleteTeam(ctx context.Context, id uuid.UUID) error {
	if err := a.repo.DeleteTeam(ctx, id); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}

	log.Info().Str("team_id", id.String()).Msg("deleted team")
	return nil
}

// validateCreateTeamRequest validates create team request
func (a *App) validateCreateTeamRequest(req CreateTeamRequest) error {
	if req.LeagueID == uuid.Nil {
		return errs.Validation("league_id", "is required")
	}
	if err := validateName(req.Name); err != nil {
		return err
	}
	return validateLogoURL(req.LogoURL)
}

func validateName(name string) error {
	if name == "" {
		return errs.Validation("name", "is required")
	}
	if utf8.RuneCountInString(name) < MinNameLength {
		return errs.Validation("name", "must be at least %d characters", MinNameLength)
	}
	return nil
}

// validateLogoURL accepts a missing logo or an absolute http(s) URL
func validateLogoURL(logo *string) error {
	if logo == nil {
		return nil
	}
	u, err := url.Parse(*logo)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return errs.Validation("logo_url", "must be an absolute http(s) URL")
	}
	return nil
}

// normalizeLogo treats a blank logo as no logo
func normalizeLogo(logo *string) *string {
	if logo == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*logo)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
