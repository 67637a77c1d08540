package dto

import "github.com/jhoicas/inventario-console/internal/domain/entity"

// DeleteControl control de eliminación de un ítem: lleva el ID y el tipo del registro.
type DeleteControl struct {
	ID   string
	Type entity.Kind
}

// ListItem ítem renderizado de un listado.
type ListItem struct {
	Headline string
	Details  []string
	Delete   DeleteControl
}

// ListSnapshot copia inmutable de un listado renderizado, lista para una salida
// (HTML, terminal o PDF).
type ListSnapshot struct {
	Kind    entity.Kind
	Title   string
	State   entity.StateKind
	Message string // placeholder, texto de carga o de error
	Items   []ListItem
}

// DeleteControls controles de eliminación en el orden del listado.
func (s ListSnapshot) DeleteControls() []DeleteControl {
	out := make([]DeleteControl, 0, len(s.Items))
	for _, it := range s.Items {
		out = append(out, it.Delete)
	}
	return out
}

// Notification mensaje de estado tras una operación.
type Notification struct {
	Text    string
	Success bool
}

// Option opción de un selector (valor enviado + etiqueta visible).
type Option struct {
	Value string
	Label string
}

// SaleFormOptions selectores del formulario de ventas.
type SaleFormOptions struct {
	Products []Option
	Users    []Option
}

// SaleTotalResponse total calculado de una venta (precio x cantidad).
type SaleTotalResponse struct {
	ProductID string `json:"id_producto"`
	Quantity  string `json:"cantidad"`
	Total     string `json:"total"`
}
