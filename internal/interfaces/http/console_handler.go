package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/application/entitysync"
	"github.com/jhoicas/inventario-console/internal/application/ports"
	"github.com/jhoicas/inventario-console/internal/domain"
	"github.com/jhoicas/inventario-console/internal/domain/entity"
	"github.com/jhoicas/inventario-console/pkg/logger"
)

// ConsoleHandler sirve la consola web: una sección por tipo de entidad con su
// listado, formulario de alta y notificación. Las vistas son compartidas entre
// peticiones y se reemplazan completas en cada carga.
type ConsoleHandler struct {
	appName   string
	registry  *entity.Registry
	fetcher   *entitysync.Fetcher
	mutator   *entitysync.Mutator
	board     *entitysync.NoticeBoard
	selectors *entitysync.SaleSelectors
	reports   ports.ReportGenerator
	views     map[entity.Kind]*entitysync.ListView
	opts      []entitysync.Option
	log       *logger.Logger
}

// NewConsoleHandler construye el handler y una vista por cada tipo registrado.
func NewConsoleHandler(deps RouterDeps) *ConsoleHandler {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	h := &ConsoleHandler{
		appName:   deps.AppName,
		registry:  deps.Registry,
		fetcher:   deps.Fetcher,
		mutator:   deps.Mutator,
		board:     deps.Board,
		selectors: deps.Selectors,
		reports:   deps.Reports,
		views:     make(map[entity.Kind]*entitysync.ListView),
		opts:      []entitysync.Option{entitysync.WithFailureState(deps.DistinguishFailures)},
		log:       log.Named("console"),
	}
	for _, d := range h.registry.All() {
		h.views[d.Kind] = entitysync.NewListView()
	}
	return h
}

// controller arma el controlador del tipo para esta petición; la vista y el tablero son compartidos.
func (h *ConsoleHandler) controller(d *entity.Descriptor, confirmer ports.Confirmer) *entitysync.Controller {
	return entitysync.NewController(d, h.fetcher, h.mutator, entitysync.Bindings{
		View:      h.views[d.Kind],
		Notifier:  h.board,
		Confirmer: confirmer,
	}, h.opts...)
}

// answer confirmador con una respuesta ya dada por el usuario en la página de confirmación.
type answer bool

func (a answer) Confirm(string) bool { return bool(a) }

// ── Datos de plantilla ───────────────────────────────────────────────────────

type fieldView struct {
	entity.Field
	Value   string
	Options []dto.Option
}

type sectionView struct {
	Kind   entity.Kind
	Title  string
	Noun   string
	List   dto.ListSnapshot
	Fields []fieldView
	Notice *dto.Notification
}

type pageView struct {
	AppName  string
	Sections []sectionView
}

type confirmView struct {
	AppName string
	Kind    entity.Kind
	Title   string
	ID      string
	Prompt  string
}

func (h *ConsoleHandler) section(d *entity.Descriptor, form entity.FormValues) sectionView {
	var opts dto.SaleFormOptions
	if d.Kind == entity.KindSale {
		opts = h.selectors.Options()
	}
	fields := make([]fieldView, 0, len(d.Fields))
	for _, f := range d.Fields {
		fv := fieldView{Field: f, Value: form[f.Name]}
		if d.Kind == entity.KindSale {
			switch f.Name {
			case entity.SaleProduct:
				fv.Options = opts.Products
			case entity.SaleUser:
				fv.Options = opts.Users
			}
		}
		fields = append(fields, fv)
	}
	s := sectionView{
		Kind:   d.Kind,
		Title:  d.Title,
		Noun:   d.Noun,
		List:   h.views[d.Kind].Snapshot(),
		Fields: fields,
	}
	if n, ok := h.board.Current(d.Kind); ok {
		s.Notice = &n
	}
	return s
}

// ── Handlers ─────────────────────────────────────────────────────────────────

// Index carga las tres colecciones en paralelo y muestra todas las secciones.
// GET /
func (h *ConsoleHandler) Index(c *fiber.Ctx) error {
	ctx := c.UserContext()
	descs := h.registry.All()
	ctls := make([]*entitysync.Controller, 0, len(descs))
	for _, d := range descs {
		ctls = append(ctls, h.controller(d, nil))
	}
	entitysync.LoadAll(ctx, ctls...)
	h.selectors.Load(ctx)

	page := pageView{AppName: h.appName}
	for _, d := range descs {
		page.Sections = append(page.Sections, h.section(d, d.EmptyForm()))
	}
	return c.Status(fiber.StatusOK).Render("page", page)
}

// Section muestra la sección de un tipo.
// GET /:kind
func (h *ConsoleHandler) Section(c *fiber.Ctx) error {
	d, err := h.descriptor(c)
	if err != nil {
		return unknownEntity(c, err)
	}
	ctx := c.UserContext()
	h.controller(d, nil).Load(ctx)
	h.loadSelectors(ctx, d)
	return h.renderSection(c, fiber.StatusOK, d, d.EmptyForm())
}

// ListFragment devuelve solo el listado del tipo, recién cargado.
// GET /:kind/list
func (h *ConsoleHandler) ListFragment(c *fiber.Ctx) error {
	d, err := h.descriptor(c)
	if err != nil {
		return unknownEntity(c, err)
	}
	h.controller(d, nil).Load(c.UserContext())
	return c.Status(fiber.StatusOK).Render("list", h.views[d.Kind].Snapshot())
}

// Create envía el formulario del tipo a la API. Con éxito el controlador ya recargó
// el listado y la página se muestra con el formulario vacío; con error se conserva
// lo que el usuario escribió.
// POST /:kind
func (h *ConsoleHandler) Create(c *fiber.Ctx) error {
	d, err := h.descriptor(c)
	if err != nil {
		return unknownEntity(c, err)
	}
	ctx := c.UserContext()

	form := d.EmptyForm()
	for name := range form {
		form[name] = strings.TrimSpace(c.FormValue(name))
	}
	if d.Kind == entity.KindSale && form[entity.SaleTotal] == "" {
		form[entity.SaleTotal] = h.saleTotal(ctx, form[entity.SaleProduct], form[entity.SaleQuantity])
	}

	status := fiber.StatusOK
	if err := h.controller(d, nil).Create(ctx, form); err != nil {
		h.log.Warn().Err(err).Str("kind", string(d.Kind)).Msg("alta rechazada")
		status = fiber.StatusUnprocessableEntity
	}
	h.loadSelectors(ctx, d)
	return h.renderSection(c, status, d, form)
}

// ConfirmDelete muestra la confirmación previa a eliminar.
// GET /:kind/:id/delete
func (h *ConsoleHandler) ConfirmDelete(c *fiber.Ctx) error {
	d, err := h.descriptor(c)
	if err != nil {
		return unknownEntity(c, err)
	}
	id := c.Params("id")
	return c.Status(fiber.StatusOK).Render("confirm", confirmView{
		AppName: h.appName,
		Kind:    d.Kind,
		Title:   d.Title,
		ID:      id,
		Prompt:  d.ConfirmPrompt(id),
	})
}

// Delete elimina si el formulario de confirmación trae confirm=yes.
// POST /:kind/:id/delete
func (h *ConsoleHandler) Delete(c *fiber.Ctx) error {
	d, err := h.descriptor(c)
	if err != nil {
		return unknownEntity(c, err)
	}
	ctx := c.UserContext()
	id := c.Params("id")

	status := fiber.StatusOK
	err = h.controller(d, answer(c.FormValue("confirm") == "yes")).Delete(ctx, id)
	switch {
	case errors.Is(err, domain.ErrDeclined):
		h.log.Debug().Str("kind", string(d.Kind)).Str("id", id).Msg("eliminación cancelada")
	case err != nil:
		h.log.Warn().Err(err).Str("kind", string(d.Kind)).Str("id", id).Msg("eliminación rechazada")
		status = fiber.StatusBadGateway
	}
	h.loadSelectors(ctx, d)
	return h.renderSection(c, status, d, d.EmptyForm())
}

// Report godoc
// @Summary      Reporte PDF del listado
// @Description  Recarga la colección del tipo y la devuelve como PDF; una carga fallida produce el reporte vacío.
// @Tags         reports
// @Produce      application/pdf
// @Param        kind  path      string  true  "Tipo de entidad (users, products, sales o su singular)"
// @Success      200   {file}    file
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /{kind}/report.pdf [get]
func (h *ConsoleHandler) Report(c *fiber.Ctx) error {
	d, err := h.descriptor(c)
	if err != nil {
		return unknownEntity(c, err)
	}
	ctx := c.UserContext()
	h.controller(d, nil).Load(ctx)

	pdf, err := h.reports.GenerateListReport(ctx, h.views[d.Kind].Snapshot())
	if err != nil {
		h.log.Error().Err(err).Str("kind", string(d.Kind)).Msg("error al generar reporte")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "REPORT_FAILED", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+strings.Trim(d.CollectionPath, "/")+`.pdf"`)
	return c.Send(pdf)
}

// SaleTotal godoc
// @Summary      Total de una venta
// @Description  Precio x cantidad con el libro de precios de la última carga. Producto
//
//	desconocido o cantidad sin dígitos iniciales dan 0.00.
//
// @Tags         sales
// @Produce      json
// @Param        id_producto  query     string  false  "ID del producto"
// @Param        cantidad     query     string  false  "Cantidad; cuenta el entero inicial"
// @Success      200          {object}  dto.SaleTotalResponse
// @Router       /sales/total [get]
func (h *ConsoleHandler) SaleTotal(c *fiber.Ctx) error {
	pid := strings.TrimSpace(c.Query(entity.SaleProduct))
	qty := strings.TrimSpace(c.Query(entity.SaleQuantity))
	return c.JSON(dto.SaleTotalResponse{
		ProductID: pid,
		Quantity:  qty,
		Total:     h.saleTotal(c.UserContext(), pid, qty),
	})
}

// ── helpers ──────────────────────────────────────────────────────────────────

func (h *ConsoleHandler) descriptor(c *fiber.Ctx) (*entity.Descriptor, error) {
	return h.registry.Lookup(c.Params("kind"))
}

func (h *ConsoleHandler) loadSelectors(ctx context.Context, d *entity.Descriptor) {
	if d.Kind == entity.KindSale {
		h.selectors.Load(ctx)
	}
}

// saleTotal recarga los selectores si el producto aún no está en el libro de precios.
func (h *ConsoleHandler) saleTotal(ctx context.Context, productID, quantity string) string {
	book := h.selectors.Book()
	if _, ok := book.Price(productID); !ok && productID != "" {
		h.selectors.Load(ctx)
	}
	return book.Total(productID, quantity)
}

func (h *ConsoleHandler) renderSection(c *fiber.Ctx, status int, d *entity.Descriptor, form entity.FormValues) error {
	return c.Status(status).Render("page", pageView{
		AppName:  h.appName,
		Sections: []sectionView{h.section(d, form)},
	})
}

func unknownEntity(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "UNKNOWN_ENTITY", Message: err.Error()})
}
