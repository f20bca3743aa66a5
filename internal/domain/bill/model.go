package bill

import (
	"errors"
	"strings"
	"time"
)

// Domain errors
var (
	ErrEmptyURL = errors.New("url is required")
)

// Bill is a tracked legislative bill record. The source URL is the
// identifier; deletion is by exact url match.
type Bill struct {
	URL       string
	State     string
	BillName  string
	CreatedAt time.Time
}

// Validate checks that the Bill has an identifier.
// PRE: Bill struct is populated
// POST: Returns nil if valid, error otherwise
func (b *Bill) Validate() error {
	if strings.TrimSpace(b.URL) == "" {
		return ErrEmptyURL
	}
	return nil
}
