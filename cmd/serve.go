package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Krijovnick/ai-news/internal/metrics"
	"github.com/Krijovnick/ai-news/worker"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run scheduled digests until stopped",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		// Signal handling for systemd
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		store, closeStore, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeStore()

		job, err := newDigestJob(ctx, cfg, store, nil)
		if err != nil {
			return err
		}
		ws := []worker.Worker{&worker.DigestWorker{
			Job:        job,
			Times:      cfg.Schedule.Times,
			Timezone:   cfg.Schedule.Timezone,
			RunOnStart: cfg.Schedule.RunOnStart,
			Logger:     slog.Default(),
		}}
		if cfg.Monitoring.Enabled {
			ws = append(ws, &monitorServer{addr: cfg.Monitoring.Addr, status: metrics.Global})
		}
		slog.Info("starting", "sources", len(job.Sources), "times", cfg.Schedule.Times, "monitoring", cfg.Monitoring.Enabled)

		err = worker.NewManager(ws...).Start(ctx)
		slog.Info("stopped", "pid", os.Getpid())
		return err
	},
}

// monitorServer exposes /health and /metrics.
type monitorServer struct {
	addr   string
	status *metrics.Status
}

func (m *monitorServer) handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		snap := m.status.Snapshot()
		w.Header().Set("Content-Type", "application/json")
		if !snap.Healthy {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		_ = json.NewEncoder(w).Encode(snap)
	})
	return mux
}

func (m *monitorServer) Start(ctx context.Context) error {
	srv := &http.Server{Addr: m.addr, Handler: m.handler(), ReadHeaderTimeout: 5 * time.Second}
	errc := make(chan error, 1)
	go func() {
		slog.Info("monitoring listening", "addr", m.addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(sctx)
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
