package user

import (
	"errors"
	"strings"
	"time"
)

// Assignable role constants. A role update may only assign one of these;
// admin is a dashboard account role, not a product user role.
const (
	RoleUser                = "user"
	RoleSubscriptionManager = "subscription_manager"
)

// AssignableRoles contains the roles an admin may assign to a product user.
var AssignableRoles = []string{RoleUser, RoleSubscriptionManager}

// Domain errors
var (
	ErrEmptyEmail   = errors.New("email is required")
	ErrInvalidRole  = errors.New("role must be one of: user, subscription_manager")
	ErrUserNotFound = errors.New("user not found")
)

// User is a product user row. Role is the only mutable field exposed
// through the admin surface; updates are keyed by email equality.
type User struct {
	UserID    string
	Email     string
	Role      string
	UpdatedAt time.Time
}

// Validate checks that the User has a usable email and role.
// PRE: User struct is populated
// POST: Returns nil if valid, error otherwise
func (u *User) Validate() error {
	if strings.TrimSpace(u.Email) == "" {
		return ErrEmptyEmail
	}
	if !IsAssignableRole(u.Role) {
		return ErrInvalidRole
	}
	return nil
}

// IsAssignableRole returns true if role may be assigned via the admin surface.
func IsAssignableRole(role string) bool {
	for _, r := range AssignableRoles {
		if r == role {
			return true
		}
	}
	return false
}
