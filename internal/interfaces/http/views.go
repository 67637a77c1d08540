package http

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"

	"github.com/jhoicas/inventario-console/internal/domain/entity"
)

//go:embed views/*.html
var viewsFS embed.FS

// NewViews motor de plantillas de la consola sobre las vistas embebidas. Cada
// archivo se registra por su nombre sin extensión: page, section, list, confirm.
func NewViews() *html.Engine {
	sub, err := fs.Sub(viewsFS, "views")
	if err != nil {
		panic("vistas embebidas: " + err.Error())
	}
	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.AddFunc("populated", func(s entity.StateKind) bool { return s == entity.StatePopulated })
	engine.AddFunc("isSale", func(k entity.Kind) bool { return k == entity.KindSale })
	return engine
}
