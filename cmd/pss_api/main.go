package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/LdDl/rsapss-api/httpapi"
)

func main() {
	defaults := httpapi.DefaultConfig()

	var host string
	var port int
	var maxUpload int64
	var keygenWorkers int64
	var corsOrigins string
	var logLevel string
	var readHeaderTimeout time.Duration
	flag.StringVar(&host, "host", "0.0.0.0", "HTTP server host")
	flag.IntVar(&port, "port", 8080, "HTTP server port")
	flag.Int64Var(&maxUpload, "max-upload", defaults.MaxUploadSize, "Maximum request body size in bytes for /api/sign and /api/verify")
	flag.Int64Var(&keygenWorkers, "keygen-workers", defaults.KeygenWorkers, "Maximum number of concurrent key generations")
	flag.StringVar(&corsOrigins, "cors-origins", "*", "Comma separated list of origins allowed to call /api/*")
	flag.StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flag.DurationVar(&readHeaderTimeout, "read-header-timeout", 5*time.Second, "Timeout for reading request headers")
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "invalid -log-level %q: %v\n", logLevel, err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg := httpapi.Config{
		MaxUploadSize: maxUpload,
		KeygenWorkers: keygenWorkers,
		CORSOrigins:   httpapi.ParseOrigins(corsOrigins),
	}

	addr := fmt.Sprintf("%s:%d", host, port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           httpapi.NewHandler(cfg),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown failed", "error", err)
		}
	}()

	slog.Info("starting server",
		"host", host,
		"port", port,
		"max_upload", cfg.MaxUploadSize,
		"keygen_workers", cfg.KeygenWorkers,
		"cors_origins", cfg.CORSOrigins,
	)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
	slog.Info("done")
}

