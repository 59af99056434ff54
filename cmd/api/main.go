package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/rfm-dashboard/internal/application/report"
	"github.com/jhoicas/rfm-dashboard/internal/application/segmentation"
	infraai "github.com/jhoicas/rfm-dashboard/internal/infrastructure/ai"
	"github.com/jhoicas/rfm-dashboard/internal/infrastructure/csvsource"
	"github.com/jhoicas/rfm-dashboard/internal/infrastructure/datasource"
	infrapdf "github.com/jhoicas/rfm-dashboard/internal/infrastructure/pdf"
	"github.com/jhoicas/rfm-dashboard/internal/infrastructure/watch"
	infraxlsx "github.com/jhoicas/rfm-dashboard/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/rfm-dashboard/internal/interfaces/http"
	"github.com/jhoicas/rfm-dashboard/pkg/config"
	"github.com/jhoicas/rfm-dashboard/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("data_source", cfg.Data.Source).
		Msg("iniciando aplicación")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opened, err := datasource.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir fuente de datos")
	}
	defer opened.Close()

	// Sin dataset no hay dashboard: un fallo en la primera carga es fatal.
	store := segmentation.NewStore(opened.Source)
	ds, err := store.Reload(ctx)
	if err != nil {
		log.Fatal().Err(err).Str("source", opened.Source.Name()).Msg("carga inicial del dataset")
	}
	log.Info().Int("rows", ds.Len()).Str("source", ds.Source).Msg("dataset cargado")

	insightsUC := segmentation.NewInsightsUseCase(store, cfg.Insights.ChurnDays)
	narrator := infraai.NewNarrator(cfg.AI)
	if narrator != nil {
		log.Info().Str("provider", cfg.AI.Provider).Str("model", narrator.Model()).Msg("narrador IA habilitado")
	}
	exportUC := report.NewExportUseCase(
		store, insightsUC,
		infrapdf.NewMarotoReportGenerator(),
		infraxlsx.NewWorkbookGenerator(),
		csvsource.Encoder{},
		cfg.App.Name,
	)

	app := httpRouter.NewApp(cfg.App.Name, log)

	// Swagger UI en local: http://localhost:<port>/docs (se genera con `rfmctl docs`)
	if _, err := os.Stat(cfg.HTTP.DocsPath); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.DocsPath,
			Path:     "docs",
			Title:    "RFM Dashboard API",
		}))
	} else {
		log.Warn().Str("path", cfg.HTTP.DocsPath).Msg("swagger.json no encontrado, /docs deshabilitado")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		Store:             store,
		SidebarUC:         segmentation.NewSidebarUseCase(store),
		OverviewUC:        segmentation.NewOverviewUseCase(store),
		SegmentUC:         segmentation.NewSegmentUseCase(store),
		InsightsUC:        insightsUC,
		ExplorerUC:        segmentation.NewExplorerUseCase(store),
		NarrativeUC:       segmentation.NewNarrativeUseCase(insightsUC, narrator),
		ExportUC:          exportUC,
		ServiceName:       cfg.App.Name,
		TransactionsLabel: cfg.Insights.TransactionsLabel,
		JWTSecret:         cfg.JWT.Secret,
		Log:               log,
	})
	if cfg.JWT.Enabled() {
		log.Info().Msg("API protegida con JWT")
	} else {
		log.Warn().Msg("JWT_SECRET vacío: la API no exige token")
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP escuchando")
		return app.Listen(cfg.HTTP.Addr())
	})

	if cfg.Data.Watch && opened.WatchPath != "" {
		reloadLog := log.Component("watch")
		watcher := watch.New(opened.WatchPath, watch.DefaultDebounce, func(ctx context.Context) error {
			ds, err := store.Reload(ctx)
			if err != nil {
				return err
			}
			reloadLog.Info().Int("rows", ds.Len()).Msg("dataset recargado")
			return nil
		}, reloadLog)
		g.Go(func() error { return watcher.Run(gctx) })
	}

	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("señal de apagado recibida, cerrando servidor...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("aplicación finalizada con error")
		os.Exit(1)
	}
	log.Info().Msg("aplicación detenida")
}
