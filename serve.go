package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/mdobak/go-xerrors"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/metric/global"

	"github.com/SergeyParamoshkin/forum/internal/forum"
	"github.com/SergeyParamoshkin/forum/internal/httpapi"
	"github.com/SergeyParamoshkin/forum/internal/server"
	"github.com/SergeyParamoshkin/forum/internal/store"
	"github.com/SergeyParamoshkin/forum/internal/telemetry"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the forum API server",
	Long: `Start the forum API server. Flags can also be set through the environment:
PORT, IS_TEST_MODE, or FORUM_<FLAG> (e.g. FORUM_DATA_FILE=/var/lib/forum.json).`,
	RunE: runServe,
}

func init() {
	addServeFlags(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync() // nolint
	sugar := logger.Sugar()

	exporter, err := telemetry.NewPrometheusExporter()
	if err != nil {
		sugar.Errorw("failed to initialize prometheus exporter", "error", err)

		return err
	}
	meter := global.Meter(ServiceName)

	st := store.New()
	telemetry.ObserveStore(meter, st)

	var saver httpapi.Saver
	if cfg.PersistenceEnabled() {
		persister := store.NewFilePersister(cfg.DataFile)
		if err := persister.Load(st); err != nil {
			sugar.Errorw("failed to load database", "file", cfg.DataFile, "stack", xerrors.Sprint(err))

			return err
		}
		sugar.Infow("database loaded", "file", cfg.DataFile, "stats", st.Stats())
		saver = persister
	}

	metrics := telemetry.NewMetrics(meter)
	defer metrics.Close()

	api := httpapi.NewRouter(httpapi.Config{
		Dispatcher: forum.NewDispatcher(forum.NewHandlers(st, sugar)),
		Store:      st,
		Saver:      saver,
		Metrics:    metrics,
		Logger:     sugar,
	})

	diag := chi.NewRouter()
	diag.Get("/metrics", exporter.ServeHTTP)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(cfg.Addr(), cfg.DiagAddr, api, diag, sugar).Run(ctx)
}
