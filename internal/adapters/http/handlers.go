package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gorilla/csrf"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"ratedesk/internal/adapters/http/middleware"
	contactDomain "ratedesk/internal/domain/contact"
	documentDomain "ratedesk/internal/domain/document"
	subscriptionDomain "ratedesk/internal/domain/subscription"
	userDomain "ratedesk/internal/domain/user"
)

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// internalError logs the real error and returns a generic message to the client.
// This prevents leaking internal details per OWASP A05.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// strictDecode decodes JSON from the request body, rejecting unknown fields.
func strictDecode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// writeJSON writes v as a JSON response body.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// requireAdmin enforces the admin-only access policy shared by every
// mutating route: 401 when there is no session, 403 when the session
// holds neither the admin role nor an allow-listed identity. It returns
// the session and true only when the caller may proceed. No handler may
// perform side effects before this check passes.
func requireAdmin(w http.ResponseWriter, r *http.Request) (middleware.Session, bool) {
	session, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		slog.Info("auth_event", "event", "unauthenticated_request", "path", r.URL.Path)
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return middleware.Session{}, false
	}
	if !isAdmin(session) {
		slog.Info("auth_event", "event", "forbidden_request", "path", r.URL.Path, "email", session.Email, "role", session.Role)
		http.Error(w, "admin access required", http.StatusForbidden)
		return middleware.Session{}, false
	}
	return session, true
}

// isAdmin reports whether a session carries admin privileges: either
// the admin role or membership in the configured allow-list.
func isAdmin(session middleware.Session) bool {
	if session.Role == "admin" {
		return true
	}
	return adminAllowList[strings.ToLower(session.Email)]
}

// validationErrors are domain errors caused by bad input; handlers map them
// to 400 instead of 500.
var validationErrors = []error{
	contactDomain.ErrEmptyFirstName,
	contactDomain.ErrEmptyLastName,
	contactDomain.ErrEmptyEmail,
	contactDomain.ErrInvalidEmail,
	contactDomain.ErrEmptyMessage,
	documentDomain.ErrEmptyPathname,
	documentDomain.ErrEmptyFolderName,
	documentDomain.ErrEmptyFileName,
	documentDomain.ErrInvalidName,
	documentDomain.ErrEscapesRoot,
	subscriptionDomain.ErrEmptyEmail,
	subscriptionDomain.ErrEmptyCustomerID,
	subscriptionDomain.ErrEmptySubscriptionID,
	userDomain.ErrEmptyEmail,
	userDomain.ErrInvalidRole,
}

// isValidationError reports whether err should surface as a 400.
func isValidationError(err error) bool {
	for _, sentinel := range validationErrors {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

const templatesDir = "internal/adapters/http/templates"

func renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, data any) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	role := ""
	email := ""
	if ok {
		role = sess.Role
		email = sess.Email
	}

	funcMap := template.FuncMap{
		"currentRole":  func() string { return role },
		"currentEmail": func() string { return email },
		"isLoggedIn":   func() bool { return role != "" },
		"csrfToken":    func() string { return csrf.Token(r) },
		"renderMarkdown": func(md string) template.HTML {
			var buf bytes.Buffer
			if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
				return template.HTML(template.HTMLEscapeString(md))
			}
			return template.HTML(buf.String())
		},
	}

	layoutPath := filepath.Join(templatesDir, "layout.html")
	pagePath := filepath.Join(templatesDir, templateName)
	tpl, err := template.New("layout.html").Funcs(funcMap).ParseFiles(layoutPath, pagePath)
	if err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tpl.Execute(w, data); err != nil {
		http.Error(w, "Render error: "+err.Error(), http.StatusInternalServerError)
		return
	}
}
