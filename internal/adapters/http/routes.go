package web

import "net/http"

// registerRoutes attaches all application routes to the mux. Authorization
// is enforced inside each handler, not here: every mutating route calls
// requireAdmin before touching a store or service.
func registerRoutes(mux *http.ServeMux) {
	// Auth and dashboard
	mux.HandleFunc("/login", handleLogin)
	mux.HandleFunc("/logout", handleLogout)
	mux.HandleFunc("/dashboard", handleDashboard)

	// Record deletion (admin)
	mux.HandleFunc("/api/admin/delete-bill", handleDeleteBill)
	mux.HandleFunc("/api/admin/delete-provider-alert", handleDeleteProviderAlert)
	mux.HandleFunc("/api/admin/delete-state-plan-amendment", handleDeleteStatePlanAmendment)

	// Subscriptions (admin)
	mux.HandleFunc("/api/admin/subscription-status", handleSubscriptionStatus)
	mux.HandleFunc("/api/admin/transfer-subscription", handleTransferSubscription)

	// Documents (admin)
	mux.HandleFunc("/api/documents/create-folder", handleCreateFolder)
	mux.HandleFunc("/api/documents/delete", handleDeleteDocument)
	mux.HandleFunc("/api/documents/move", handleMoveDocument)
	mux.HandleFunc("/api/documents/rename", handleRenameDocument)
	mux.HandleFunc("/api/documents/upload", handleUploadDocument)

	// Users
	mux.HandleFunc("/api/update-user-role", handleUpdateUserRole)
	mux.HandleFunc("/api/users/me/role", handleMyRole)

	// Public contact form
	mux.HandleFunc("/api/send-email", handleSendEmail)
}
