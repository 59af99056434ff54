package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/rfm-dashboard/internal/application/report"
	"github.com/jhoicas/rfm-dashboard/internal/application/segmentation"
	"github.com/jhoicas/rfm-dashboard/pkg/jwt"
	"github.com/jhoicas/rfm-dashboard/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Store             *segmentation.Store
	SidebarUC         *segmentation.SidebarUseCase
	OverviewUC        *segmentation.OverviewUseCase
	SegmentUC         *segmentation.SegmentUseCase
	InsightsUC        *segmentation.InsightsUseCase
	ExplorerUC        *segmentation.ExplorerUseCase
	NarrativeUC       *segmentation.NarrativeUseCase
	ExportUC          *report.ExportUseCase
	ServiceName       string
	TransactionsLabel string
	JWTSecret         string
	Log               *logger.Logger
}

// NewApp crea la aplicación Fiber con el motor de vistas, recover y el log de peticiones.
func NewApp(name string, log *logger.Logger) *fiber.App {
	if log == nil {
		log = logger.Nop()
	}
	app := fiber.New(fiber.Config{
		AppName:      name,
		Views:        NewViews(),
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // exportaciones PDF/XLSX
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(RequestLogger(log.Component("http")))
	return app
}

// Router registra páginas, API y health.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	datasetHandler := NewDatasetHandler(deps.Store, deps.ServiceName, log)
	app.Get("/health", datasetHandler.Health)

	// Páginas (públicas)
	pages := NewPageHandler(deps.SidebarUC, deps.OverviewUC, deps.SegmentUC, deps.InsightsUC, deps.ExplorerUC,
		deps.NarrativeUC.Enabled(), deps.JWTSecret != "", deps.TransactionsLabel)
	app.Get("/", pages.Index)
	app.Get("/overview", pages.Overview)
	app.Get("/segments", pages.Segments)
	app.Get("/insights", pages.Insights)
	app.Get("/explorer", pages.Explorer)

	// API (JWT opcional: sin JWT_SECRET no se exige token).
	// Los middlewares de rol van por ruta: un Group con el mismo prefijo los aplicaría a toda /api.
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))
	readers := RequireRole(jwt.RoleViewer, jwt.RoleAnalyst)
	analysts := RequireRole(jwt.RoleAnalyst)
	loaded := RequireDataset(deps.Store)

	segHandler := NewSegmentationHandler(deps.SidebarUC, deps.OverviewUC, deps.SegmentUC, deps.InsightsUC, deps.ExplorerUC, deps.NarrativeUC)
	api.Get("/sidebar", readers, loaded, segHandler.GetSidebar)
	api.Get("/overview", readers, loaded, segHandler.GetOverview)
	api.Get("/segments/:name", readers, loaded, segHandler.GetSegment)
	api.Get("/insights", readers, loaded, segHandler.GetInsights)
	api.Get("/explorer", readers, loaded, segHandler.GetExplorer)
	api.Post("/insights/narrative", readers, loaded, segHandler.PostNarrative)

	// Exportaciones y recarga (rol analyst)
	exportHandler := NewExportHandler(deps.ExportUC)
	api.Get("/exports/comparison.pdf", analysts, loaded, exportHandler.ComparisonPDF)
	api.Get("/exports/customers.xlsx", analysts, loaded, exportHandler.CustomersXLSX)
	api.Get("/exports/customers.csv", analysts, loaded, exportHandler.CustomersCSV)
	api.Post("/dataset/reload", analysts, datasetHandler.Reload)
}
