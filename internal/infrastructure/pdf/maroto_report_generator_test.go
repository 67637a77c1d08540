package pdf

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/domain/entity"
)

func TestGenerateListReport(t *testing.T) {
	gen := NewMarotoReportGenerator("http://localhost:8080")

	t.Run("con registros", func(t *testing.T) {
		out, err := gen.GenerateListReport(context.Background(), dto.ListSnapshot{
			Kind:  entity.KindProduct,
			Title: "Productos",
			State: entity.StatePopulated,
			Items: []dto.ListItem{{
				Headline: "ID: 1 - Pan",
				Details:  []string{"Categoría: Panadería", "Precio: $2.50 | Stock: 100"},
			}},
		})
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
	})

	t.Run("vacío", func(t *testing.T) {
		out, err := gen.GenerateListReport(context.Background(), dto.ListSnapshot{
			Title:   "Ventas",
			State:   entity.StateEmpty,
			Message: "No hay ventas registradas.",
		})
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
	})

	t.Run("contexto cancelado", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := gen.GenerateListReport(ctx, dto.ListSnapshot{Title: "Usuarios"})
		assert.ErrorIs(t, err, context.Canceled)
	})
}
