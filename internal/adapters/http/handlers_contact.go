package web

import (
	"net/http"

	"ratedesk/internal/application/orchestrators"
)

// handleSendEmail handles POST /api/send-email, the public contact form.
// The legacy client posted here with fetch, so the contract is JSON in,
// JSON out, 405 for anything but POST.
func handleSendEmail(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var body struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
		Company   string `json:"company"`
		Title     string `json:"title"`
		Message   string `json:"message"`
	}
	if err := strictDecode(r, &body); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	input := orchestrators.SendContactEmailInput{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Email:     body.Email,
		Company:   body.Company,
		Title:     body.Title,
		Message:   body.Message,
	}
	deps := orchestrators.SendContactEmailDeps{
		EmailSender: emailSender,
		FromAddress: emailFromAddress,
		ToAddress:   contactToAddress,
	}

	if err := orchestrators.ExecuteSendContactEmail(r.Context(), input, deps); err != nil {
		if isValidationError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
