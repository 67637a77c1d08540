package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/domain/entity"
)

func TestRenderList(t *testing.T) {
	out := RenderList(dto.ListSnapshot{
		Kind:  entity.KindProduct,
		Title: "Productos",
		State: entity.StatePopulated,
		Items: []dto.ListItem{{
			Headline: "ID: 1 - Pan",
			Details:  []string{"Categoría: Panadería"},
			Delete:   dto.DeleteControl{ID: "1", Type: entity.KindProduct},
		}},
	})
	assert.Contains(t, out, "Productos")
	assert.Contains(t, out, "ID: 1 - Pan")
	assert.Contains(t, out, "Categoría: Panadería")
	assert.Contains(t, out, "1 registro(s)")

	empty := RenderList(dto.ListSnapshot{Title: "Ventas", State: entity.StateEmpty, Message: "No hay ventas registradas."})
	assert.Contains(t, empty, "No hay ventas registradas.")
	assert.NotContains(t, empty, "registro(s)")
}

func TestPromptConfirmer(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"s\n", true},
		{"Sí\n", true},
		{"yes\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		c := NewPromptConfirmer(strings.NewReader(tt.input), &out)
		assert.Equal(t, tt.want, c.Confirm("¿Está seguro?"), "entrada %q", tt.input)
		assert.Contains(t, out.String(), "¿Está seguro?")
	}
	assert.True(t, AlwaysConfirm{}.Confirm("x"))
}

func TestPrinterNotifier(t *testing.T) {
	var out bytes.Buffer
	n := NewPrinterNotifier(&out)
	n.Notify(entity.KindSale, dto.Notification{Text: "Venta creada", Success: true})
	assert.Contains(t, out.String(), "Venta creada")
	assert.Equal(t, "Venta creada", n.Last().Text)
}
