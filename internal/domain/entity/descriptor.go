package entity

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/jhoicas/inventario-console/internal/domain"
)

// Field campo del formulario de creación. Name es la clave enviada a la API.
type Field struct {
	Name     string
	Label    string
	Input    string // text, email, number, datetime-local, select, textarea
	Required bool
	Step     string
	ReadOnly bool
}

// FormValues valores de texto de un formulario de creación, por nombre de campo.
type FormValues map[string]string

// Reset deja el formulario vacío.
func (f FormValues) Reset() {
	for k := range f {
		delete(f, k)
	}
}

// Payload cuerpo JSON de una creación, ya con las conversiones de tipo aplicadas.
type Payload map[string]any

// Summary proyección legible de un registro para el listado.
type Summary struct {
	Headline string
	Details  []string
}

// Descriptor parametriza el controlador de sincronización para un tipo de entidad:
// rutas, campo identificador, proyección de resumen y reglas de conversión del payload.
type Descriptor struct {
	Kind           Kind
	Title          string // "Productos"
	Noun           string // "producto"
	CollectionPath string // plural: listado y creación
	ResourcePath   string // singular: eliminación
	IDField        string
	Placeholder    string
	LoadingText    string
	CreatedMessage string
	CreateFailed   string // prefijo del error de creación
	Fields         []Field

	summarize func(Record) Summary
	coerce    func(FormValues, time.Time) (Payload, error)
}

// IDOf identificador del registro como texto (vacío si falta).
func (d *Descriptor) IDOf(r Record) string {
	return r.Text(d.IDField)
}

// Summarize proyecta un registro a su resumen legible.
func (d *Descriptor) Summarize(r Record) Summary {
	if d.summarize == nil {
		return Summary{Headline: "ID: " + orNA(d.IDOf(r))}
	}
	return d.summarize(r)
}

// BuildPayload aplica las conversiones del tipo sobre los valores del formulario.
// now se usa para las fechas por defecto y como zona horaria local de las entradas.
func (d *Descriptor) BuildPayload(form FormValues, now time.Time) (Payload, error) {
	if d.coerce == nil {
		out := make(Payload, len(form))
		for k, v := range form {
			out[k] = v
		}
		return out, nil
	}
	return d.coerce(form, now)
}

// DeletePath ruta singular del recurso: /product/{id}.
func (d *Descriptor) DeletePath(id string) string {
	return strings.TrimRight(d.ResourcePath, "/") + "/" + url.PathEscape(strings.TrimSpace(id))
}

// ConfirmPrompt texto de la confirmación previa a eliminar.
func (d *Descriptor) ConfirmPrompt(id string) string {
	return fmt.Sprintf("¿Está seguro de eliminar %s con ID %s?", d.Noun, id)
}

// EmptyForm formulario vacío con todas las claves del tipo.
func (d *Descriptor) EmptyForm() FormValues {
	f := make(FormValues, len(d.Fields))
	for _, field := range d.Fields {
		f[field.Name] = ""
	}
	return f
}

// PayloadStyle estilo de claves del alta de usuarios.
type PayloadStyle string

const (
	PayloadStyleSnake       PayloadStyle = "snake"
	PayloadStyleCapitalized PayloadStyle = "capitalized"
)

// Options ajustes del registro de descriptores.
type Options struct {
	UserPayloadStyle PayloadStyle
}

// Registry descriptores disponibles, en el orden de la pantalla principal.
type Registry struct {
	ordered []*Descriptor
}

// NewRegistry construye el registro de usuarios, productos y ventas.
func NewRegistry(opts Options) *Registry {
	return &Registry{ordered: []*Descriptor{
		NewUserDescriptor(opts.UserPayloadStyle),
		NewProductDescriptor(),
		NewSaleDescriptor(),
	}}
}

// All devuelve los descriptores en orden.
func (r *Registry) All() []*Descriptor {
	return append([]*Descriptor(nil), r.ordered...)
}

// Get busca por Kind.
func (r *Registry) Get(kind Kind) (*Descriptor, bool) {
	for _, d := range r.ordered {
		if d.Kind == kind {
			return d, true
		}
	}
	return nil, false
}

// Lookup acepta el nombre singular o plural ("product", "products", "/products").
func (r *Registry) Lookup(name string) (*Descriptor, error) {
	key := strings.ToLower(strings.Trim(strings.TrimSpace(name), "/"))
	for _, d := range r.ordered {
		if key == string(d.Kind) || key == strings.Trim(d.CollectionPath, "/") {
			return d, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrUnknownEntity, name)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
