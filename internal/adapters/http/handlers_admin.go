package web

import (
	"errors"
	"net/http"
	"strings"

	"ratedesk/internal/adapters/billing"
	"ratedesk/internal/application/orchestrators"
)

// handleDeleteBill handles DELETE /api/admin/delete-bill.
// Deleting a url with no matching row still returns 200: the caller's goal
// (no such row) is met either way.
func handleDeleteBill(w http.ResponseWriter, r *http.Request) {
	if r.Method != "DELETE" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if _, ok := requireAdmin(w, r); !ok {
		return
	}

	var body struct {
		URL string `json:"url"`
	}
	if err := strictDecode(r, &body); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(body.URL) == "" {
		http.Error(w, "missing url", http.StatusBadRequest)
		return
	}

	if err := stores.BillStore.DeleteByURL(r.Context(), body.URL); err != nil {
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "bill deleted",
	})
}

// handleDeleteProviderAlert handles DELETE /api/admin/delete-provider-alert.
func handleDeleteProviderAlert(w http.ResponseWriter, r *http.Request) {
	if r.Method != "DELETE" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if _, ok := requireAdmin(w, r); !ok {
		return
	}

	var body struct {
		ID string `json:"id"`
	}
	if err := strictDecode(r, &body); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(body.ID) == "" {
		http.Error(w, "missing id", http.StatusBadRequest)
		return
	}

	if err := stores.ProviderAlertStore.DeleteByID(r.Context(), body.ID); err != nil {
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "provider alert deleted",
	})
}

// handleDeleteStatePlanAmendment handles DELETE /api/admin/delete-state-plan-amendment.
func handleDeleteStatePlanAmendment(w http.ResponseWriter, r *http.Request) {
	if r.Method != "DELETE" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if _, ok := requireAdmin(w, r); !ok {
		return
	}

	var body struct {
		ID string `json:"id"`
	}
	if err := strictDecode(r, &body); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(body.ID) == "" {
		http.Error(w, "missing id", http.StatusBadRequest)
		return
	}

	if err := stores.PlanAmendmentStore.DeleteByID(r.Context(), body.ID); err != nil {
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "state plan amendment deleted",
	})
}

// handleSubscriptionStatus handles GET /api/admin/subscription-status.
// Without ?email= it reports only whether the payments provider is
// configured; with ?email= it additionally looks the customer up.
func handleSubscriptionStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if _, ok := requireAdmin(w, r); !ok {
		return
	}

	resp := map[string]any{
		"configured": billingProvider.Configured(),
	}

	email := r.URL.Query().Get("email")
	if email != "" {
		if !billingProvider.Configured() {
			http.Error(w, "payments provider not configured", http.StatusBadRequest)
			return
		}
		info, err := orchestrators.ExecuteLookupSubscription(r.Context(), email, orchestrators.LookupSubscriptionDeps{
			Billing: billingProvider,
		})
		if err != nil {
			if errors.Is(err, billing.ErrNotFound) {
				resp["found"] = false
				writeJSON(w, http.StatusOK, resp)
				return
			}
			internalError(w, err)
			return
		}
		resp["found"] = true
		resp["customerId"] = info.CustomerID
		resp["subscriptionId"] = info.SubscriptionID
		resp["status"] = info.Status
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleTransferSubscription handles POST /api/admin/transfer-subscription.
func handleTransferSubscription(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if _, ok := requireAdmin(w, r); !ok {
		return
	}

	var body struct {
		Email                string `json:"email"`
		StripeCustomerID     string `json:"stripeCustomerId"`
		StripeSubscriptionID string `json:"stripeSubscriptionId"`
	}
	if err := strictDecode(r, &body); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	input := orchestrators.TransferSubscriptionInput{
		Email:                body.Email,
		StripeCustomerID:     body.StripeCustomerID,
		StripeSubscriptionID: body.StripeSubscriptionID,
	}
	deps := orchestrators.TransferSubscriptionDeps{
		SubscriptionStore: stores.SubscriptionStore,
	}

	transfer, err := orchestrators.ExecuteTransferSubscription(r.Context(), input, deps)
	if err != nil {
		if isValidationError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"transfer": map[string]any{
			"id":                   transfer.ID,
			"email":                transfer.Email,
			"stripeCustomerId":     transfer.StripeCustomerID,
			"stripeSubscriptionId": transfer.StripeSubscriptionID,
		},
	})
}
