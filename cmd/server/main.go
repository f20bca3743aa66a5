package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"ratedesk/internal/adapters/billing"
	"ratedesk/internal/adapters/blob"
	emailPkg "ratedesk/internal/adapters/email"
	web "ratedesk/internal/adapters/http"
	"ratedesk/internal/adapters/storage"
	accountStore "ratedesk/internal/adapters/storage/account"
	billStore "ratedesk/internal/adapters/storage/bill"
	planAmendmentStore "ratedesk/internal/adapters/storage/planamendment"
	providerAlertStore "ratedesk/internal/adapters/storage/provideralert"
	subscriptionStore "ratedesk/internal/adapters/storage/subscription"
	userStore "ratedesk/internal/adapters/storage/user"
	"ratedesk/internal/application/orchestrators"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// .env is optional; real deployments set env vars directly
	_ = godotenv.Load()

	// Initialize database with WAL mode, foreign keys, and busy timeout
	dbPath := envOrDefault("RATEDESK_DB_PATH", "ratedesk.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	// Connection pool settings for WAL mode
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	// Health check
	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}

	if err := storage.InitDB(db); err != nil {
		log.Fatalf("failed to initialize schema: %v", err)
	}

	log.Println("Database initialized successfully!")

	// Wrap DB with slow-query logging
	timedDB := storage.NewTimedDB(db)

	acctStore := accountStore.NewSQLiteStore(timedDB)
	stores := &web.Stores{
		AccountStore:       acctStore,
		BillStore:          billStore.NewSQLiteStore(timedDB),
		ProviderAlertStore: providerAlertStore.NewSQLiteStore(timedDB),
		PlanAmendmentStore: planAmendmentStore.NewSQLiteStore(timedDB),
		UserStore:          userStore.NewSQLiteStore(timedDB),
		SubscriptionStore:  subscriptionStore.NewSQLiteStore(timedDB),
	}

	// Seed default admin account if no accounts exist
	adminEmail := envOrDefault("RATEDESK_ADMIN_EMAIL", "admin@ratedesk.local")
	adminPassword := envOrDefault("RATEDESK_ADMIN_PASSWORD", "change me before prod")
	seedDeps := orchestrators.CreateAccountDeps{AccountStore: acctStore}
	if err := orchestrators.ExecuteSeedAdmin(context.Background(), seedDeps, adminEmail, adminPassword); err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}

	// Configure email sender
	resendKey := os.Getenv("RATEDESK_RESEND_KEY")
	emailFrom := envOrDefault("RATEDESK_EMAIL_FROM", "RateDesk <noreply@ratedesk.local>")
	contactTo := envOrDefault("RATEDESK_CONTACT_TO", "support@ratedesk.local")
	if resendKey != "" {
		web.SetEmailSender(emailPkg.NewResendSender(resendKey, emailFrom), emailFrom, contactTo)
		log.Println("Email sender configured (Resend)")
	} else {
		web.SetEmailSender(emailPkg.NewNoopSender(), emailFrom, contactTo)
		if os.Getenv("RATEDESK_ENV") == "production" {
			log.Println("WARNING: RATEDESK_RESEND_KEY is not set — email delivery is DISABLED in production")
		} else {
			log.Println("Email sender configured (noop — set RATEDESK_RESEND_KEY for real delivery)")
		}
	}

	// Configure blob storage for documents
	web.SetBlobStore(buildBlobStore())

	// Configure payments provider
	if stripeKey := os.Getenv("RATEDESK_STRIPE_KEY"); stripeKey != "" {
		web.SetBillingProvider(billing.NewStripeProvider(stripeKey))
		log.Println("Payments provider configured (Stripe)")
	} else {
		web.SetBillingProvider(billing.NewUnconfiguredProvider())
		log.Println("Payments provider not configured — set RATEDESK_STRIPE_KEY")
	}

	// Admin allow-list: comma-separated emails granted admin access
	adminEmails := splitCSV(os.Getenv("RATEDESK_ADMIN_EMAILS"))

	mux := web.NewMux("static", stores, adminEmails)

	// Start server
	addr := envOrDefault("RATEDESK_ADDR", ":8080")
	log.Printf("RateDesk %s starting on %s (env=%s)", version, addr, envOrDefault("RATEDESK_ENV", "development"))

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// buildBlobStore selects S3 when credentials are configured, otherwise an
// in-memory store suitable for development only.
func buildBlobStore() blob.Store {
	bucket := os.Getenv("RATEDESK_S3_BUCKET")
	baseURL := envOrDefault("RATEDESK_BLOB_BASE_URL", "http://localhost:8080/blobs")
	if bucket == "" {
		log.Println("Blob store configured (in-memory — set RATEDESK_S3_BUCKET for real storage)")
		return blob.NewMemoryStore(baseURL)
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(envOrDefault("RATEDESK_S3_REGION", "us-east-1")),
	}
	if access := os.Getenv("RATEDESK_S3_ACCESS_KEY"); access != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(access, os.Getenv("RATEDESK_S3_SECRET_KEY"), ""),
		))
	}
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		log.Fatalf("failed to load AWS config: %v", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		// S3-compatible stores (MinIO, R2) need an explicit endpoint
		if endpoint := os.Getenv("RATEDESK_S3_ENDPOINT"); endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	log.Printf("Blob store configured (S3 bucket %s)", bucket)
	return blob.NewS3Store(client, bucket, os.Getenv("RATEDESK_S3_PREFIX"), baseURL)
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
