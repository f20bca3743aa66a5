package contact_test

import (
	"errors"
	"strings"
	"testing"

	"ratedesk/internal/domain/contact"
)

// TestMessage_Validate tests required-field validation with field-specific errors.
func TestMessage_Validate(t *testing.T) {
	valid := contact.Message{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Message:   "Hello",
	}

	tests := []struct {
		name    string
		mutate  func(m *contact.Message)
		wantErr error
	}{
		{name: "valid", mutate: func(m *contact.Message) {}, wantErr: nil},
		{name: "optional fields empty is fine", mutate: func(m *contact.Message) {
			m.Company = ""
			m.Title = ""
		}, wantErr: nil},
		{name: "missing first name", mutate: func(m *contact.Message) { m.FirstName = " " }, wantErr: contact.ErrEmptyFirstName},
		{name: "missing last name", mutate: func(m *contact.Message) { m.LastName = "" }, wantErr: contact.ErrEmptyLastName},
		{name: "missing email", mutate: func(m *contact.Message) { m.Email = "" }, wantErr: contact.ErrEmptyEmail},
		{name: "email without at sign", mutate: func(m *contact.Message) { m.Email = "not-an-email" }, wantErr: contact.ErrInvalidEmail},
		{name: "missing message", mutate: func(m *contact.Message) { m.Message = "\n  " }, wantErr: contact.ErrEmptyMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := valid
			tt.mutate(&m)
			if err := m.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestMessage_HTMLBody tests that user input is escaped and optional fields
// appear only when set.
func TestMessage_HTMLBody(t *testing.T) {
	m := contact.Message{
		FirstName: "<script>alert(1)</script>",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Company:   "Analytical Engines & Co",
		Message:   "line one\nline two",
	}

	body := m.HTMLBody()
	if strings.Contains(body, "<script>") {
		t.Error("script tag survived escaping")
	}
	if !strings.Contains(body, "&lt;script&gt;") {
		t.Error("escaped first name missing from body")
	}
	if !strings.Contains(body, "Analytical Engines &amp; Co") {
		t.Error("company not escaped and included")
	}
	if !strings.Contains(body, "line one<br>line two") {
		t.Error("newlines not converted to <br>")
	}
	if strings.Contains(body, "Title:") {
		t.Error("empty title rendered")
	}
}

// TestMessage_Subject tests the relay subject line.
func TestMessage_Subject(t *testing.T) {
	m := contact.Message{FirstName: "Ada", LastName: "Lovelace"}
	want := "New contact form submission from Ada Lovelace"
	if got := m.Subject(); got != want {
		t.Errorf("Subject() = %q, want %q", got, want)
	}
}
