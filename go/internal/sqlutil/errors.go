package sqlutil

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/mcdev12/leaguehub/go/internal/errs"
)

const uniqueViolation = pq.ErrorCode("23505")

// MapError translates driver errors into the errs taxonomy.
// sql.ErrNoRows becomes a not-found error for kind/id and a unique violation
// becomes errs.ErrConflict. Other errors are returned unchanged.
func MapError(err error, kind string, id any) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return errs.NotFound(kind, id)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return fmt.Errorf("%s %s: %w", kind, pqErr.Constraint, errs.ErrConflict)
	}
	return err
}

// RequireAffected returns a not-found error when an exec touched no rows.
func RequireAffected(n int64, kind string, id any) error {
	if n == 0 {
		return errs.NotFound(kind, id)
	}
	return nil
}
