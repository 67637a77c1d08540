package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-console/internal/application/entitysync"
	"github.com/jhoicas/inventario-console/internal/application/ports"
	"github.com/jhoicas/inventario-console/internal/domain/entity"
	"github.com/jhoicas/inventario-console/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName             string
	APIBaseURL          string
	Registry            *entity.Registry
	Fetcher             *entitysync.Fetcher
	Mutator             *entitysync.Mutator
	Board               *entitysync.NoticeBoard
	Selectors           *entitysync.SaleSelectors
	Reports             ports.ReportGenerator
	DistinguishFailures bool
	Logger              *logger.Logger
}

// Router registra las rutas de la consola.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", NewHealthHandler(deps.AppName, deps.APIBaseURL).Health)

	console := NewConsoleHandler(deps)
	app.Get("/", console.Index)

	// Debe ir antes de /:kind/... para no interpretarse como tipo de entidad.
	app.Get("/sales/total", console.SaleTotal)

	app.Get("/:kind", console.Section)
	app.Post("/:kind", console.Create)
	app.Get("/:kind/list", console.ListFragment)
	app.Get("/:kind/report.pdf", console.Report)
	app.Get("/:kind/:id/delete", console.ConfirmDelete)
	app.Post("/:kind/:id/delete", console.Delete)
}
