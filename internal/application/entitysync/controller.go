package entitysync

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/application/ports"
	"github.com/jhoicas/inventario-console/internal/domain"
	"github.com/jhoicas/inventario-console/internal/domain/entity"
)

// Bindings destinos que el host inyecta en el controlador.
type Bindings struct {
	View      *ListView
	Notifier  ports.Notifier
	Confirmer ports.Confirmer
}

// Controller ciclo de vida de una colección en pantalla: carga, render, alta, baja
// y recarga completa tras cada mutación exitosa.
type Controller struct {
	desc     *entity.Descriptor
	fetcher  *Fetcher
	mutator  *Mutator
	renderer Renderer
	bind     Bindings

	distinguishFailures bool
}

// Option ajuste opcional del controlador.
type Option func(*Controller)

// WithFailureState muestra un estado de error en lugar de "sin registros"
// cuando la carga falla.
func WithFailureState(enabled bool) Option {
	return func(c *Controller) { c.distinguishFailures = enabled }
}

// NewController construye el controlador. Si bind.View es nil se crea una vista propia.
func NewController(d *entity.Descriptor, fetcher *Fetcher, mutator *Mutator, bind Bindings, opts ...Option) *Controller {
	if bind.View == nil {
		bind.View = NewListView()
	}
	c := &Controller{desc: d, fetcher: fetcher, mutator: mutator, bind: bind}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Descriptor tipo de entidad del controlador.
func (c *Controller) Descriptor() *entity.Descriptor { return c.desc }

// View destino de renderizado.
func (c *Controller) View() *ListView { return c.bind.View }

// Load muestra el estado de carga, obtiene la colección y la renderiza.
func (c *Controller) Load(ctx context.Context) entity.DisplayState {
	c.renderer.RenderState(c.bind.View, c.desc, entity.LoadingState())

	coll, err := c.fetcher.FetchDetailed(ctx, c.desc.CollectionPath)
	state := entity.StateFor(coll)
	if err != nil && c.distinguishFailures {
		state = entity.ErrorState("No se pudieron cargar los " + strings.ToLower(c.desc.Title) + ".")
	}
	c.renderer.RenderState(c.bind.View, c.desc, state)
	return state
}

// Create envía el formulario. Con 201 limpia el formulario, notifica y recarga una vez;
// con cualquier otro resultado notifica el error y deja el formulario intacto.
func (c *Controller) Create(ctx context.Context, form entity.FormValues) error {
	if err := c.mutator.Create(ctx, c.desc, form); err != nil {
		c.notify(CreateFailureText(c.desc, err), false)
		return err
	}
	form.Reset()
	c.notify(c.desc.CreatedMessage, true)
	c.Load(ctx)
	return nil
}

// Delete pide confirmación y elimina. Si el usuario no confirma devuelve
// domain.ErrDeclined sin llamar a la API.
func (c *Controller) Delete(ctx context.Context, id string) error {
	if c.bind.Confirmer == nil || !c.bind.Confirmer.Confirm(c.desc.ConfirmPrompt(id)) {
		return domain.ErrDeclined
	}
	err := c.mutator.Remove(ctx, c.desc, id, func() { c.Load(ctx) })
	if err != nil {
		c.notify(DeleteFailureText(err), false)
		return err
	}
	c.notify(DeletedMessage, true)
	return nil
}

func (c *Controller) notify(text string, success bool) {
	if c.bind.Notifier == nil {
		return
	}
	c.bind.Notifier.Notify(c.desc.Kind, dto.Notification{Text: text, Success: success})
}

// LoadAll carga varias colecciones en paralelo; cada vista se renderiza con su propio resultado.
func LoadAll(ctx context.Context, controllers ...*Controller) {
	g, gctx := errgroup.WithContext(ctx)
	for _, ctl := range controllers {
		ctl := ctl
		g.Go(func() error {
			ctl.Load(gctx)
			return nil
		})
	}
	_ = g.Wait()
}
