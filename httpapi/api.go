package httpapi

import (
	"net/http"
	"strings"

	"github.com/rs/cors"
	"golang.org/x/sync/semaphore"
)

const (
	defaultMaxUploadSize = 10 << 20 // 10 MB
	defaultKeygenWorkers = 4
)

// Config holds transport settings
type Config struct {
	// Request body limit for /api/sign and /api/verify
	MaxUploadSize int64
	// Maximum number of concurrent key generations
	KeygenWorkers int64
	// Origins allowed to call /api/*; empty means any origin
	CORSOrigins []string
}

// DefaultConfig returns the settings used when no flags are given
func DefaultConfig() Config {
	return Config{
		MaxUploadSize: defaultMaxUploadSize,
		KeygenWorkers: defaultKeygenWorkers,
		CORSOrigins:   []string{"*"},
	}
}

// API serves the key generation, signing and verification endpoints
type API struct {
	maxUploadSize int64
	keygen        *semaphore.Weighted
}

// NewAPI creates handlers for the given config. Non-positive values fall back to defaults.
func NewAPI(cfg Config) *API {
	if cfg.MaxUploadSize <= 0 {
		cfg.MaxUploadSize = defaultMaxUploadSize
	}
	if cfg.KeygenWorkers <= 0 {
		cfg.KeygenWorkers = defaultKeygenWorkers
	}
	return &API{
		maxUploadSize: cfg.MaxUploadSize,
		keygen:        semaphore.NewWeighted(cfg.KeygenWorkers),
	}
}

// NewHandler builds the full router: /api/* routes behind CORS, health and docs,
// wrapped with request id, access log and panic recovery middleware.
func NewHandler(cfg Config) http.Handler {
	api := NewAPI(cfg)

	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{RequestIDHeader},
	})

	mux := http.NewServeMux()
	mux.Handle("/api/create-keys", c.Handler(http.HandlerFunc(api.HandleCreateKeys)))
	mux.Handle("/api/sign", c.Handler(http.HandlerFunc(api.HandleSign)))
	mux.Handle("/api/verify", c.Handler(http.HandlerFunc(api.HandleVerify)))
	mux.HandleFunc("/health", HandleHealth)
	mux.HandleFunc("/docs", HandleDocsUI)
	mux.HandleFunc("/docs/swagger.json", HandleDocsJSON)

	return WithRequestID(WithAccessLog(WithRecovery(mux)))
}

// ParseOrigins splits a comma separated origin list, dropping empty entries
func ParseOrigins(s string) []string {
	var origins []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
