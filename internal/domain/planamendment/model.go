package planamendment

import (
	"errors"
	"strings"
	"time"
)

// Domain errors
var (
	ErrEmptyID = errors.New("id is required")
)

// Amendment is a state plan amendment record, deleted by exact id match.
type Amendment struct {
	ID        string
	State     string
	Title     string
	CreatedAt time.Time
}

// Validate checks that the Amendment has an identifier.
// PRE: Amendment struct is populated
// POST: Returns nil if valid, error otherwise
func (a *Amendment) Validate() error {
	if strings.TrimSpace(a.ID) == "" {
		return ErrEmptyID
	}
	return nil
}
