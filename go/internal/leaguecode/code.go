// Package leaguecode generates and resolves the 6-character share codes that
// identify leagues publicly.
package leaguecode

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/mcdev12/leaguehub/go/internal/errs"
	"github.com/mcdev12/leaguehub/go/internal/models"
	"github.com/rs/zerolog/log"
)

const (
	// Alphabet is the set of characters a code is drawn from.
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// Length is the number of characters in a code.
	Length = 6

	// DefaultAttempts bounds how many candidates Allocate tries.
	DefaultAttempts = 10
)

var alphabetSize = big.NewInt(int64(len(Alphabet)))

// Store is the lookup the generator needs from league persistence.
type Store interface {
	GetLeagueByCode(ctx context.Context, code string) (*models.League, error)
}

// Metrics receives code allocation outcomes.
type Metrics interface {
	RecordCodeGenerated()
	RecordCodeCollision()
	RecordCodeExhausted()
}

type noopMetrics struct{}

func (noopMetrics) RecordCodeGenerated() {}
func (noopMetrics) RecordCodeCollision() {}
func (noopMetrics) RecordCodeExhausted() {}

// Generator allocates unused codes with a bounded retry budget.
type Generator struct {
	attempts int
	random   io.Reader
	metrics  Metrics
}

// NewGenerator creates a Generator. attempts <= 0 uses DefaultAttempts and a
// nil metrics collector records nothing.
func NewGenerator(attempts int, metrics Metrics) *Generator {
	if attempts <= 0 {
		attempts = DefaultAttempts
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &Generator{
		attempts: attempts,
		random:   rand.Reader,
		metrics:  metrics,
	}
}

// Attempts returns the retry budget.
func (g *Generator) Attempts() int {
	return g.attempts
}

// Generate returns a random code drawn uniformly from Alphabet.
func Generate() (string, error) {
	return generate(rand.Reader)
}

func generate(random io.Reader) (string, error) {
	var b strings.Builder
	b.Grow(Length)
	for i := 0; i < Length; i++ {
		n, err := rand.Int(random, alphabetSize)
		if err != nil {
			return "", fmt.Errorf("failed to read randomness: %w", err)
		}
		b.WriteByte(Alphabet[n.Int64()])
	}
	return b.String(), nil
}

// Normalize trims and upper-cases a code for storage and lookup.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Valid reports whether code, once normalized, is well formed.
func Valid(code string) bool {
	code = Normalize(code)
	if len(code) != Length {
		return false
	}
	for i := 0; i < len(code); i++ {
		if strings.IndexByte(Alphabet, code[i]) < 0 {
			return false
		}
	}
	return true
}

// IsAvailable reports whether no league currently holds code.
func IsAvailable(ctx context.Context, store Store, code string) (bool, error) {
	_, err := store.GetLeagueByCode(ctx, Normalize(code))
	if err == nil {
		return false, nil
	}
	if errors.Is(err, errs.ErrNotFound) {
		return true, nil
	}
	return false, fmt.Errorf("failed to check code availability: %w", err)
}

// Allocate generates candidates until one is unused or the retry budget is
// spent, in which case it returns errs.ErrCodeExhausted.
func (g *Generator) Allocate(ctx context.Context, store Store) (string, error) {
	return g.Claim(ctx, store, nil)
}

// Claim draws candidates until insert accepts an unused one. Candidates
// already held and those insert rejects with errs.ErrConflict share the one
// retry budget; once it is spent Claim returns errs.ErrCodeExhausted. Any
// other insert error is returned as is.
func (g *Generator) Claim(ctx context.Context, store Store, insert func(code string) error) (string, error) {
	for attempt := 1; attempt <= g.attempts; attempt++ {
		code, err := generate(g.random)
		if err != nil {
			return "", err
		}
		g.metrics.RecordCodeGenerated()

		available, err := IsAvailable(ctx, store, code)
		if err != nil {
			return "", err
		}
		if available && insert != nil {
			err = insert(code)
			if err != nil && !errors.Is(err, errs.ErrConflict) {
				return "", err
			}
			available = err == nil
		}
		if available {
			return code, nil
		}

		g.metrics.RecordCodeCollision()
		log.Debug().
			Str("code", code).
			Int("attempt", attempt).
			Msg("league code collision")
	}

	g.metrics.RecordCodeExhausted()
	log.Warn().
		Int("attempts", g.attempts).
		Msg("league code retry budget exhausted")
	return "", errs.ErrCodeExhausted
}

// Resolve looks up the league holding code, matching case-insensitively.
func Resolve(ctx context.Context, store Store, code string) (*models.League, error) {
	if !Valid(code) {
		return nil, errs.Validation("code", "must be %d characters from A-Z and 0-9", Length)
	}

	league, err := store.GetLeagueByCode(ctx, Normalize(code))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve league code: %w", err)
	}
	return league, nil
}
