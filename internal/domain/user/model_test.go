package user_test

import (
	"errors"
	"testing"

	"ratedesk/internal/domain/user"
)

// TestIsAssignableRole tests the admin-assignable role set.
func TestIsAssignableRole(t *testing.T) {
	tests := []struct {
		role string
		want bool
	}{
		{role: "user", want: true},
		{role: "subscription_manager", want: true},
		{role: "admin", want: false},
		{role: "superuser", want: false},
		{role: "", want: false},
		{role: "User", want: false},
	}

	for _, tt := range tests {
		if got := user.IsAssignableRole(tt.role); got != tt.want {
			t.Errorf("IsAssignableRole(%q) = %v, want %v", tt.role, got, tt.want)
		}
	}
}

// TestUser_Validate tests field validation.
func TestUser_Validate(t *testing.T) {
	tests := []struct {
		name    string
		user    user.User
		wantErr error
	}{
		{name: "valid", user: user.User{UserID: "u1", Email: "a@b.com", Role: user.RoleUser}},
		{name: "missing email", user: user.User{UserID: "u1", Role: user.RoleUser}, wantErr: user.ErrEmptyEmail},
		{name: "admin not assignable", user: user.User{UserID: "u1", Email: "a@b.com", Role: "admin"}, wantErr: user.ErrInvalidRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := tt.user
			if err := u.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
