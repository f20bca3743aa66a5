package contact

import (
	"errors"
	"html/template"
	"strings"
)

// Domain errors
var (
	ErrEmptyFirstName = errors.New("firstName is required")
	ErrEmptyLastName  = errors.New("lastName is required")
	ErrEmptyEmail     = errors.New("email is required")
	ErrInvalidEmail   = errors.New("email must contain '@'")
	ErrEmptyMessage   = errors.New("message is required")
)

// Message is a contact-form submission relayed to the site inbox.
type Message struct {
	FirstName string
	LastName  string
	Email     string
	Company   string
	Title     string
	Message   string
}

// Validate checks the required contact fields, returning a field-specific
// error for the first missing one.
// PRE: Message struct is populated from user input
// POST: Returns nil if valid, error otherwise
func (m *Message) Validate() error {
	if strings.TrimSpace(m.FirstName) == "" {
		return ErrEmptyFirstName
	}
	if strings.TrimSpace(m.LastName) == "" {
		return ErrEmptyLastName
	}
	if strings.TrimSpace(m.Email) == "" {
		return ErrEmptyEmail
	}
	if !strings.Contains(m.Email, "@") {
		return ErrInvalidEmail
	}
	if strings.TrimSpace(m.Message) == "" {
		return ErrEmptyMessage
	}
	return nil
}

// Subject returns the relay email subject line.
// INVARIANT: Message fields are not mutated
func (m *Message) Subject() string {
	return "New contact form submission from " + m.FirstName + " " + m.LastName
}

// HTMLBody renders the relay email body. Every user-supplied field is
// HTML-escaped before interpolation.
// INVARIANT: Message fields are not mutated
func (m *Message) HTMLBody() string {
	esc := template.HTMLEscapeString

	var b strings.Builder
	b.WriteString("<h2>New Contact Form Submission</h2>")
	b.WriteString("<p><strong>Name:</strong> " + esc(m.FirstName) + " " + esc(m.LastName) + "</p>")
	b.WriteString("<p><strong>Email:</strong> " + esc(m.Email) + "</p>")
	if m.Company != "" {
		b.WriteString("<p><strong>Company:</strong> " + esc(m.Company) + "</p>")
	}
	if m.Title != "" {
		b.WriteString("<p><strong>Title:</strong> " + esc(m.Title) + "</p>")
	}
	b.WriteString("<p><strong>Message:</strong></p>")
	b.WriteString("<p>" + strings.ReplaceAll(esc(m.Message), "\n", "<br>") + "</p>")
	return b.String()
}
