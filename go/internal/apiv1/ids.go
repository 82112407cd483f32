package apiv1

import (
	"strings"

	"github.com/google/uuid"
	"github.com/mcdev12/leaguehub/go/internal/errs"
)

// ParseID parses a required UUID request field.
func ParseID(field, value string) (uuid.UUID, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return uuid.Nil, errs.Validation(field, "is required")
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, errs.Validation(field, "must be a UUID")
	}
	return id, nil
}
