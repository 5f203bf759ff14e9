package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/burenotti/go_fitness_tracker/internal/adapter/api"
	"github.com/burenotti/go_fitness_tracker/internal/adapter/packages"
	"github.com/burenotti/go_fitness_tracker/internal/app/messagebus"
	"github.com/burenotti/go_fitness_tracker/internal/app/tracker"
	"github.com/burenotti/go_fitness_tracker/internal/config"
	"github.com/spf13/cobra"
	"io"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"
)

type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	bus     *messagebus.MessageBus
	totals  *tracker.Totals
	tracker *tracker.Service
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var configPath, packagesPath string

	root := &cobra.Command{
		Use:           "tracker",
		Short:         "Fitness tracker workout reports",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReport(cmd.Context(), configPath, packagesPath, stdout, stderr)
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")

	report := &cobra.Command{
		Use:   "report",
		Short: "Print a report line for every package",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReport(cmd.Context(), configPath, packagesPath, stdout, stderr)
		},
	}
	report.Flags().StringVar(&packagesPath, "packages", "", "YAML file with packages, the built-in list is used when empty")
	root.Flags().AddFlagSet(report.Flags())

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Serve workout reports over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), configPath, stderr)
		},
	}

	root.AddCommand(report, serve)
	return root
}

func newApp(configPath string, stderr io.Writer) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	logger := initLogger(cfg, stderr)

	totals := tracker.NewTotals()
	bus := messagebus.New(logger)
	bus.Subscribe(totals)

	return &app{
		cfg:     cfg,
		logger:  logger,
		bus:     bus,
		totals:  totals,
		tracker: tracker.New(logger, bus),
	}, nil
}

func runReport(ctx context.Context, configPath, packagesPath string, stdout, stderr io.Writer) error {
	a, err := newApp(configPath, stderr)
	if err != nil {
		return err
	}
	defer a.bus.Close()

	if ctx == nil {
		ctx = context.Background()
	}

	if packagesPath == "" {
		packagesPath = a.cfg.Input.Packages
	}

	pkgs := packages.Default()
	if packagesPath != "" {
		if pkgs, err = packages.Load(packagesPath); err != nil {
			return err
		}
		a.logger.Debug("packages loaded", "path", packagesPath, "count", len(pkgs))
	}

	reports, err := a.tracker.ReportAll(ctx, pkgs)
	for _, r := range reports {
		if _, werr := fmt.Fprintln(stdout, r.Message()); werr != nil {
			return werr
		}
	}

	a.bus.Close()
	for _, t := range a.totals.Snapshot() {
		a.logger.Info("workout totals",
			"type", t.TrainingType,
			"workouts", t.Workouts,
			"duration", t.Duration,
			"distance", t.Distance,
			"calories", t.Calories,
		)
	}
	return err
}

func runServe(ctx context.Context, configPath string, stderr io.Writer) error {
	a, err := newApp(configPath, stderr)
	if err != nil {
		return err
	}
	defer a.bus.Close()

	if ctx == nil {
		ctx = context.Background()
	}

	server := api.NewServer(
		api.Addr(a.cfg.Server.Host, a.cfg.Server.Port),
		api.Logger(a.logger),
		api.Tracker(a.tracker),
		api.Totals(a.totals),
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.logger.Info("server starting", "host", a.cfg.Server.Host, "port", a.cfg.Server.Port)
	if err := serve(ctx, server, a.logger); err != nil {
		return err
	}
	a.logger.Info("server shutdown")
	return nil
}

type httpServer interface {
	Start() error
	Shutdown(ctx context.Context) error
}

// serve runs server until ctx is done or the server stops on its own.
// It returns only after Start has returned.
func serve(ctx context.Context, server httpServer, logger *slog.Logger) error {
	errCh := make(chan error, 1)

	go func() {
		defer close(errCh)
		errCh <- server.Start()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server was not shutdown gracefully", "error", err)
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server closed with unexpected error", "error", err)
			return err
		}
	}
	return nil
}

func initLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	var handler slog.Handler
	switch cfg.App.Env {
	case config.Production:
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			AddSource: false,
			Level:     slog.LevelInfo,
		})
	default:
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{
			AddSource: true,
			Level:     slog.LevelDebug,
		})
	}

	return slog.New(handler)
}
