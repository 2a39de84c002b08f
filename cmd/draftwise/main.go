// File path: cmd/draftwise/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/draftwise/draftwise/internal/api"
	"github.com/draftwise/draftwise/internal/common"
	"github.com/draftwise/draftwise/internal/identity"
	"github.com/draftwise/draftwise/internal/llm"
	"github.com/draftwise/draftwise/internal/record"
)

// shutdownTimeout bounds how long in-flight generation requests may run after
// a termination signal before the listener is torn down.
const shutdownTimeout = 10 * time.Second

func main() {
	logger := common.Logger()

	if err := godotenv.Load(); err != nil {
		logger.Warn("draftwise: .env file not loaded", "error", err)
	} else {
		logger.Info("draftwise: environment loaded from .env")
	}

	addr := flag.String("addr", ":8080", "listen address")
	dbPath := flag.String("db", defaultStorePath(), "path to the record database")
	flag.Parse()

	logger.Info("draftwise: startup initiated", "addr", *addr, "db", *dbPath)

	store, err := record.Open(*dbPath)
	if err != nil {
		logger.Error("draftwise: record store open failed", "error", err)
		fmt.Println("record store error:", err)
		os.Exit(1)
	}
	defer store.Close()

	provider := llm.NewProvider()
	logger.Info("draftwise: llm provider ready", "provider", provider.Name())

	server, err := api.NewServer(store, provider, identity.NewService(store))
	if err != nil {
		logger.Error("draftwise: server construction failed", "error", err)
		fmt.Println("server error:", err)
		os.Exit(1)
	}

	logger.Info("draftwise: server listening", "addr", *addr, "health", "/healthz")
	fmt.Printf("Serving on %s\n", *addr)
	reachable := *addr
	if strings.HasPrefix(reachable, ":") {
		reachable = "localhost" + reachable
	}
	logger.Info("draftwise: verify reachability", "suggestion", fmt.Sprintf("curl http://%s/healthz", reachable))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := serve(ctx, *addr, server); err != nil {
		logger.Error("draftwise: server stopped", "error", err)
		fmt.Println("server stopped:", err)
		os.Exit(1)
	}
	logger.Info("draftwise: shutdown complete")
}

// serve runs the HTTP server until it fails or ctx is cancelled, then drains
// in-flight requests for up to shutdownTimeout. A clean drain returns nil.
func serve(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{Addr: addr, Handler: handler}
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func defaultStorePath() string {
	if env := strings.TrimSpace(os.Getenv("DRAFTWISE_DB_PATH")); env != "" {
		return env
	}
	return filepath.Join("data", "drafts.db")
}
