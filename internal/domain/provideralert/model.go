package provideralert

import (
	"errors"
	"strings"
	"time"
)

// Domain errors
var (
	ErrEmptyID      = errors.New("id is required")
	ErrEmptySubject = errors.New("subject is required")
)

// Alert is a provider alert announcement. Body is markdown and is rendered
// on the admin dashboard.
type Alert struct {
	ID        string
	Subject   string
	Body      string
	State     string
	CreatedAt time.Time
}

// Validate checks that the Alert has the required fields.
// PRE: Alert struct is populated
// POST: Returns nil if valid, error otherwise
func (a *Alert) Validate() error {
	if strings.TrimSpace(a.ID) == "" {
		return ErrEmptyID
	}
	if strings.TrimSpace(a.Subject) == "" {
		return ErrEmptySubject
	}
	return nil
}
