package leaguecode

import (
	"context"

	"github.com/mcdev12/leaguehub/go/internal/errs"
	"github.com/mcdev12/leaguehub/go/internal/models"
)

// FakeStore records lookups and answers through GetLeagueByCodeFunc.
type FakeStore struct {
	lookups []string

	GetLeagueByCodeFunc func(ctx context.Context, code string) (*models.League, error)
}

func (f *FakeStore) GetLeagueByCode(ctx context.Context, code string) (*models.League, error) {
	f.lookups = append(f.lookups, code)
	if f.GetLeagueByCodeFunc != nil {
		return f.GetLeagueByCodeFunc(ctx, code)
	}
	return nil, errs.NotFound("league code", code)
}

func (f *FakeStore) Lookups() []string {
	out := make([]string, len(f.lookups))
	copy(out, f.lookups)
	return out
}

// FakeMetrics counts recorded events.
type FakeMetrics struct {
	Generated  int
	Collisions int
	Exhausted  int
}

func (m *FakeMetrics) RecordCodeGenerated() { m.Generated++ }
func (m *FakeMetrics) RecordCodeCollision() { m.Collisions++ }
func (m *FakeMetrics) RecordCodeExhausted() { m.Exhausted++ }

var (
	_ Store   = (*FakeStore)(nil)
	_ Metrics = (*FakeMetrics)(nil)
)
