package orchestrators

import (
	"context"
	"fmt"
	"log/slog"

	emailAdapter "ratedesk/internal/adapters/email"
	"ratedesk/internal/domain/contact"
)

// SendContactEmailInput carries a contact-form submission.
type SendContactEmailInput struct {
	FirstName string
	LastName  string
	Email     string
	Company   string
	Title     string
	Message   string
}

// SendContactEmailDeps holds dependencies for SendContactEmail.
type SendContactEmailDeps struct {
	EmailSender emailAdapter.Sender
	FromAddress string
	ToAddress   string // site inbox receiving contact submissions
}

// ExecuteSendContactEmail validates the submission and relays it to the site
// inbox. The reply-to is set to the submitter so staff can answer directly.
// PRE: deps.EmailSender is configured
// POST: Email dispatched, or a validation/send error returned before any send
func ExecuteSendContactEmail(ctx context.Context, input SendContactEmailInput, deps SendContactEmailDeps) error {
	msg := contact.Message{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Company:   input.Company,
		Title:     input.Title,
		Message:   input.Message,
	}
	if err := msg.Validate(); err != nil {
		return err
	}

	req := emailAdapter.SendRequest{
		To:      []string{deps.ToAddress},
		From:    deps.FromAddress,
		Subject: msg.Subject(),
		HTML:    msg.HTMLBody(),
		ReplyTo: msg.Email,
	}
	if _, err := deps.EmailSender.Send(ctx, req); err != nil {
		return fmt.Errorf("send contact email: %w", err)
	}

	slog.Info("contact_event", "event", "contact_email_sent", "from", msg.Email)
	return nil
}
