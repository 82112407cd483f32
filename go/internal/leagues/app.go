package leagues

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/leaguehub/go/internal/errs"
	"github.com/mcdev12/leaguehub/go/internal/leaguecode"
	"github.com/mcdev12/leaguehub/go/internal/models"
	"github.com/rs/zerolog/log"
)

// LeaguesRepository defines what the app layer needs from the repository
type LeaguesRepository interface {
	CreateLeague(ctx context.Context, req NewLeague) (*models.League, error)
	GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error)
	GetLeagueByCode(ctx context.Context, code string) (*models.League, error)
	GetLeaguesByAdmin(ctx context.Context, adminID uuid.UUID) ([]models.LeagueSummary, error)
	UpdateLeague(ctx context.Context, id uuid.UUID, req UpdateLeagueRequest) (*models.League, error)
	DeleteLeague(ctx context.Context, id uuid.UUID) error
}

// App handles leagues business logic
type App struct {
	repo  LeaguesRepository
	codes *leaguecode.Generator
	clock clockwork.Clock
}

// NewApp creates a new leagues App
func NewApp(repo LeaguesRepository, codes *leaguecode.Generator, clock clockwork.Clock) *App {
	return &App{
		repo:  repo,
		codes: codes,
		clock: clock,
	}
}

// CreateLeague validates the request, allocates an unused share code and
// stores the league.
//
// A code taken between the availability check and the insert shows up as a
// conflict and costs one candidate from the generator's budget.
func (a *App) CreateLeague(ctx context.Context, req CreateLeagueRequest) (*models.League, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := a.validateCreateLeagueRequest(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var league *models.League
	_, err := a.codes.Claim(ctx, a.repo, func(code string) error {
		created, err := a.repo.CreateLeague(ctx, NewLeague{
			Name:      req.Name,
			Sport:     req.Sport,
			Code:      code,
			AdminID:   req.AdminID,
			CreatedAt: a.clock.Now().UTC(),
		})
		if err != nil {
			return err
		}
		league = created
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create league: %w", err)
	}

	log.Info().
		Str("league_id", league.ID.String()).
		Str("code", league.Code).
		Str("sport", string(league.Sport)).
		Msg("created league")
	return league, nil
}

// GetLeague retrieves a league by ID
func (a *App) GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error) {
	league, err := a.repo.GetLeague(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get league: %w", err)
	}
	return league, nil
}

// GetLeagueByCode resolves a share code, ignoring case and surrounding space
func (a *App) GetLeagueByCode(ctx context.Context, code string) (*models.League, error) {
	league, err := leaguecode.Resolve(ctx, a.repo, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get league by code: %w", err)
	}
	return league, nil
}

// GetLeaguesByAdmin lists the leagues an admin owns with team and match counts
func (a *App) GetLeaguesByAdmin(ctx context.Context, adminID uuid.UUID) ([]models.LeagueSummary, error) {
	if adminID == uuid.Nil {
		return nil, fmt.Errorf("validation failed: %w", errs.Validation("admin_id", "is required"))
	}

	leagues, err := a.repo.GetLeaguesByAdmin(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("failed to get leagues by admin: %w", err)
	}
	return leagues, nil
}

// UpdateLeague renames a league or changes its sport. Only the league's
// admin may do so.
func (a *App) UpdateLeague(ctx context.Context, id uuid.UUID, req UpdateLeagueRequest) (*models.League, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := a.validateUpdateLeagueRequest(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := a.requireAdmin(ctx, id, req.AdminID); err != nil {
		return nil, err
	}

	league, err := a.repo.UpdateLeague(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update league: %w", err)
	}

	log.Info().Str("league_id", league.ID.String()).Msg("updated league")
	return league, nil
}

// DeleteLeague deletes a league together with its teams, players and
// matches. Only the league's admin may do so.
func (a *App) DeleteLeague(ctx context.Context, id, adminID uuid.UUID) error {
	league, err := a.requireAdmin(ctx, id, adminID)
	if err != nil {
		return err
	}

	if err := a.repo.DeleteLeague(ctx, id); err != nil {
		return fmt.Errorf("failed to delete league: %w", err)
	}

	log.Info().Str("league_id", id.String()).Str("code", league.Code).Msg("deleted league")
	return nil
}

func (a *App) requireAdmin(ctx context.Context, id, adminID uuid.UUID) (*models.League, error) {
	league, err := a.repo.GetLeague(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("league not found: %w", err)
	}
	if league.AdminID != adminID {
		return nil, fmt.Errorf("league %s: %w", id, errs.ErrPermissionDenied)
	}
	return league, nil
}

// validateCreateLeagueRequest validates create league request
func (a *App) validateCreateLeagueRequest(req CreateLeagueRequest) error {
	if err := validateName(req.Name); err != nil {
		return err
	}
	if !req.Sport.Valid() {
		return errs.Validation("sport_type", "must be one of %v", models.Sports)
	}
	if req.AdminID == uuid.Nil {
		return errs.Validation("admin_id", "is required")
	}
	return nil
}

// validateUpdateLeagueRequest validates update league request
func (a *App) validateUpdateLeagueRequest(req UpdateLeagueRequest) error {
	if req.AdminID == uuid.Nil {
		return errs.Validation("admin_id", "is required")
	}
	if err := validateName(req.Name); err != nil {
		return err
	}
	if !req.Sport.Valid() {
		return errs.Validation("sport_type", "must be one of %v", models.Sports)
	}
	return nil
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
