package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/sync/errgroup"

	"github.com/mmynk/roomease/internal/assistant"
	"github.com/mmynk/roomease/internal/config"
	"github.com/mmynk/roomease/internal/household"
	"github.com/mmynk/roomease/internal/metrics"
	"github.com/mmynk/roomease/internal/middleware"
	"github.com/mmynk/roomease/internal/notify"
	"github.com/mmynk/roomease/internal/reminder"
	"github.com/mmynk/roomease/internal/service"
	"github.com/mmynk/roomease/internal/storage"
	"github.com/mmynk/roomease/internal/storage/memory"
	"github.com/mmynk/roomease/internal/storage/sqlite"
	"github.com/mmynk/roomease/pkg/logging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logging.Setup(cfg.LogLevel)
	if err := cfg.Validate(); err != nil {
		return err
	}

	kv, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer kv.Close()

	m := metrics.New()
	snapshots := storage.NewSnapshots(kv, storage.WithResultRecorder(m))
	defer snapshots.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	feed := notify.NewFeed(cfg.NotificationCapacity)
	h := household.New(snapshots.Load(ctx),
		household.WithObserver(snapshots),
		household.WithNotifier(notify.Multi{notify.LogNotifier{}, feed}),
	)
	m.RegisterSummary(h.Summary)

	reminders, err := reminder.New(cfg.ReminderSchedule, h, notify.Multi{notify.LogNotifier{}, feed},
		reminder.WithSentCounter(func(n int) { m.RemindersSent.Add(float64(n)) }),
	)
	if err != nil {
		return err
	}

	svc := service.NewHouseholdService(h, feed, assistant.New(assistant.WithDelay(cfg.AssistantDelay)))
	interceptors := connect.WithInterceptors(
		middleware.MetricsInterceptor(m),
		middleware.LoggingInterceptor(),
	)

	mux := http.NewServeMux()
	path, handler := service.NewHouseholdServiceHandler(svc, interceptors)
	mux.Handle(path, handler)
	mux.Handle("/metrics", m.Handler())
	if cfg.StaticPath != "" {
		static, err := staticHandler(cfg.StaticPath)
		if err != nil {
			return err
		}
		mux.Handle("/", static)
	}

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           h2c.NewHandler(middleware.Logging(middleware.CORS(mux)), &http2.Server{}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Connect server starting", "address", cfg.Addr, "url", fmt.Sprintf("http://%s", cfg.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		reminders.Start()
		<-gctx.Done()

		slog.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		reminders.Stop(shutdownCtx)
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		if err := snapshots.Flush(shutdownCtx); err != nil {
			slog.Warn("Pending saves not flushed", "error", err)
		}
		return nil
	})
	return g.Wait()
}

func openStore(cfg *config.Config) (storage.KV, error) {
	switch cfg.StoreBackend {
	case config.BackendMemory:
		slog.Warn("Using in-memory storage; changes are lost on exit")
		return memory.New(), nil
	default:
		store, err := sqlite.New(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize storage: %w", err)
		}
		slog.Info("Storage initialized", "database", cfg.DBPath)
		return store, nil
	}
}

// staticHandler serves a built UI bundle, falling back to index.html for
// unknown paths.
func staticHandler(staticPath string) (http.Handler, error) {
	staticDir, err := filepath.Abs(staticPath)
	if err != nil {
		return nil, fmt.Errorf("resolve static path: %w", err)
	}
	slog.Info("Serving static files", "path", staticDir)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/"+service.HouseholdServiceName) {
			http.NotFound(w, r)
			return
		}

		urlPath := r.URL.Path
		if urlPath == "/" {
			urlPath = "/index.html"
		}
		filePath := filepath.Join(staticDir, filepath.Clean(urlPath))
		if _, err := os.Stat(filePath); os.IsNotExist(err) {
			http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
			return
		}
		http.ServeFile(w, r, filePath)
	}), nil
}
