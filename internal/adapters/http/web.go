package web

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"ratedesk/internal/adapters/billing"
	"ratedesk/internal/adapters/blob"
	"ratedesk/internal/adapters/email"
	"ratedesk/internal/adapters/http/middleware"
	accountStore "ratedesk/internal/adapters/storage/account"
	billStore "ratedesk/internal/adapters/storage/bill"
	planAmendmentStore "ratedesk/internal/adapters/storage/planamendment"
	providerAlertStore "ratedesk/internal/adapters/storage/provideralert"
	subscriptionStore "ratedesk/internal/adapters/storage/subscription"
	userStore "ratedesk/internal/adapters/storage/user"
)

// Stores holds all storage dependencies.
type Stores struct {
	AccountStore       accountStore.Store
	BillStore          billStore.Store
	ProviderAlertStore providerAlertStore.Store
	PlanAmendmentStore planAmendmentStore.Store
	UserStore          userStore.Store
	SubscriptionStore  subscriptionStore.Store
}

// loadCSRFKey reads the CSRF secret from RATEDESK_CSRF_KEY (hex-encoded, 32 bytes).
// In production, the key MUST be set. In development, a random key is generated per startup.
func loadCSRFKey() []byte {
	if keyHex := os.Getenv("RATEDESK_CSRF_KEY"); keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			log.Fatal("RATEDESK_CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if os.Getenv("RATEDESK_ENV") == "production" {
		log.Fatal("RATEDESK_CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	log.Println("WARNING: using random CSRF key (sessions won't survive restart). Set RATEDESK_CSRF_KEY for production.")
	return key
}

// Global stores instance (set by NewMux)
var stores *Stores

// Global session store instance
var sessions *middleware.SessionStore

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// Global email sender instance (set by SetEmailSender)
var emailSender email.Sender

// Email configuration
var emailFromAddress string
var contactToAddress string

// Global blob store instance (set by SetBlobStore)
var blobStore blob.Store

// Global billing provider instance (set by SetBillingProvider)
var billingProvider billing.Provider

// Admin allow-list: lowercase emails granted admin regardless of account
// role. Populated from configuration by NewMux, never from handler literals.
var adminAllowList map[string]bool

// SetEmailSender sets the global email sender for the application. Contact
// relay replies go to the submitter, so there is no separate reply-to here.
func SetEmailSender(sender email.Sender, from, contactTo string) {
	emailSender = sender
	emailFromAddress = from
	contactToAddress = contactTo
}

// SetBlobStore sets the global blob store for document management.
func SetBlobStore(store blob.Store) {
	blobStore = store
}

// SetBillingProvider sets the global payments provider.
func SetBillingProvider(p billing.Provider) {
	billingProvider = p
}

// NewMux wires HTTP handlers for the app. adminEmails is the configured
// allow-list of identities granted admin.
func NewMux(staticDir string, s *Stores, adminEmails []string) http.Handler {
	stores = s
	sessions = middleware.NewSessionStore()
	middleware.SecureCookies = os.Getenv("RATEDESK_ENV") == "production"

	adminAllowList = make(map[string]bool, len(adminEmails))
	for _, e := range adminEmails {
		if e = strings.ToLower(strings.TrimSpace(e)); e != "" {
			adminAllowList[e] = true
		}
	}

	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(staticDir)))
	registerRoutes(mux)

	// CSRF key: 32-byte hex-encoded secret from env var
	csrfKey := loadCSRFKey()

	// Rate limiter: configurable requests per second per IP
	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	// Apply middleware: RequestLog -> RateLimit -> Auth -> CSRF -> SecurityHeaders -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey, []string{"localhost:8080", "127.0.0.1:8080"}),
		middleware.Auth(sessions),
		middleware.RateLimit(limiter),
		middleware.RequestLog,
	)
}
