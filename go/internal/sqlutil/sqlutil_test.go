package sqlutil

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/mcdev12/leaguehub/go/internal/errs"
	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	driverErr := errors.New("connection refused")

	tests := []struct {
		name    string
		err     error
		wantIs  error
		wantNil bool
	}{
		{name: "nil", err: nil, wantNil: true},
		{name: "no rows", err: sql.ErrNoRows, wantIs: errs.ErrNotFound},
		{name: "wrapped no rows", err: fmt.Errorf("scan: %w", sql.ErrNoRows), wantIs: errs.ErrNotFound},
		{name: "unique violation", err: &pq.Error{Code: "23505", Constraint: "leagues_code_upper_idx"}, wantIs: errs.ErrConflict},
		{name: "foreign key violation passes through", err: &pq.Error{Code: "23503"}},
		{name: "other", err: driverErr, wantIs: driverErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err, "league", "abc")
			if tt.wantNil {
				assert.NoError(t, got)
				return
			}
			if tt.wantIs != nil {
				assert.ErrorIs(t, got, tt.wantIs)
				return
			}
			assert.NotErrorIs(t, got, errs.ErrConflict)
			assert.NotErrorIs(t, got, errs.ErrNotFound)
		})
	}
}

func TestRequireAffected(t *testing.T) {
	assert.NoError(t, RequireAffected(1, "team", "t1"))
	assert.ErrorIs(t, RequireAffected(0, "team", "t1"), errs.ErrNotFound)
}

func TestNullConverters(t *testing.T) {
	assert.Nil(t, FromSqlInt32(ToSqlInt32(nil)))
	three := 3
	assert.Equal(t, &three, FromSqlInt32(ToSqlInt32(&three)))

	assert.Nil(t, FromSqlStringPtr(ToSqlString(nil)))
	logo := "https://example.com/logo.png"
	assert.Equal(t, &logo, FromSqlStringPtr(ToSqlString(&logo)))
}

func TestDateAndClock(t *testing.T) {
	in := time.Date(2024, 5, 17, 18, 30, 5, 0, time.FixedZone("X", 3600))
	assert.Equal(t, time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC), DateOnly(in))
	assert.Equal(t, "18:30:05", ClockTime(in))
}
