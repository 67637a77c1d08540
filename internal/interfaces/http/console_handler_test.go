package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/application/entitysync"
	"github.com/jhoicas/inventario-console/internal/domain/entity"
	"github.com/jhoicas/inventario-console/internal/infrastructure/apiclient"
	infrapdf "github.com/jhoicas/inventario-console/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/inventario-console/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Backend simulado
// ──────────────────────────────────────────────────────────────────────────────

// fakeBackend API de inventario en memoria con contadores por ruta.
type fakeBackend struct {
	mu          sync.Mutex
	bodies      map[string]string
	createCode  int
	createBody  string
	deleteCode  int
	deleteBody  string
	gets        map[string]int
	posted      []map[string]any
	deletedPath []string
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		bodies: map[string]string{
			"/users":    `[{"id_usuario":7,"nombre_usuario":"Ana","email":"ana@x.co"}]`,
			"/products": `[{"id_producto":1,"nombre_producto":"Pan","categoria":"Panadería","precio":"2.50","stock":100}]`,
			"/sales":    `[]`,
		},
		createCode: http.StatusCreated,
		deleteCode: http.StatusNoContent,
		gets:       map[string]int{},
	}
}

func (b *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch r.Method {
	case http.MethodGet:
		b.gets[r.URL.Path]++
		body, ok := b.bodies[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	case http.MethodPost:
		var payload map[string]any
		_ = json.NewDecoder(r.Body).Decode(&payload)
		b.posted = append(b.posted, payload)
		w.WriteHeader(b.createCode)
		_, _ = io.WriteString(w, b.createBody)
	case http.MethodDelete:
		b.deletedPath = append(b.deletedPath, r.URL.Path)
		w.WriteHeader(b.deleteCode)
		_, _ = io.WriteString(w, b.deleteBody)
	}
}

func (b *fakeBackend) getCount(path string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.gets[path]
}

func buildConsoleApp(t *testing.T, backend *fakeBackend) *fiber.App {
	t.Helper()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	api := apiclient.New(apiclient.NewRESTClient(srv.URL, time.Second, nil), nil)
	registry := entity.NewRegistry(entity.Options{})
	fetcher := entitysync.NewFetcher(api, nil)
	products, _ := registry.Get(entity.KindProduct)
	users, _ := registry.Get(entity.KindUser)

	app := fiber.New(fiber.Config{Views: apphttp.NewViews()})
	apphttp.Router(app, apphttp.RouterDeps{
		AppName:    "consola-test",
		APIBaseURL: srv.URL,
		Registry:   registry,
		Fetcher:    fetcher,
		Mutator:    entitysync.NewMutator(api, nil),
		Board:      entitysync.NewNoticeBoard(time.Minute, nil),
		Selectors:  entitysync.NewSaleSelectors(fetcher, products, users, nil),
		Reports:    infrapdf.NewMarotoReportGenerator(srv.URL),
	})
	return app
}

func do(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, string) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func postForm(path string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestConsole_Health(t *testing.T) {
	app := buildConsoleApp(t, newFakeBackend())
	resp, body := do(t, app, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.HealthResponse
	require.NoError(t, json.Unmarshal([]byte(body), &out))
	assert.Equal(t, "ok", out.Status)
	assert.Equal(t, "consola-test", out.Service)
}

func TestConsole_ConfirmDeleteIsHTML(t *testing.T) {
	app := buildConsoleApp(t, newFakeBackend())
	resp, body := do(t, app, httptest.NewRequest(http.MethodGet, "/sale/3/delete", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, fiber.MIMETextHTMLCharsetUTF8, resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, body, `action="/sale/3/delete"`)
}

func TestConsole_IndexRendersAllSections(t *testing.T) {
	backend := newFakeBackend()
	app := buildConsoleApp(t, backend)

	resp, body := do(t, app, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "ID: 1 - Pan")
	assert.Contains(t, body, "ID: 7 - Ana")
	assert.Contains(t, body, "No hay ventas registradas.")
	assert.Contains(t, body, `href="/product/1/delete"`)
	assert.GreaterOrEqual(t, backend.getCount("/products"), 1)
}

func TestConsole_UnknownKind(t *testing.T) {
	app := buildConsoleApp(t, newFakeBackend())
	resp, body := do(t, app, httptest.NewRequest(http.MethodGet, "/warehouses", nil))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal([]byte(body), &out))
	assert.Equal(t, "UNKNOWN_ENTITY", out.Code)
}

func TestConsole_ListFragmentFailsToEmpty(t *testing.T) {
	backend := newFakeBackend()
	backend.bodies["/products"] = `{"error":"db caída"}`
	app := buildConsoleApp(t, backend)

	resp, body := do(t, app, httptest.NewRequest(http.MethodGet, "/products/list", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "No hay productos registrados.")
	assert.NotContains(t, body, "db caída")
}

func TestConsole_CreateProductReloadsOnce(t *testing.T) {
	backend := newFakeBackend()
	app := buildConsoleApp(t, backend)

	resp, body := do(t, app, postForm("/products", url.Values{
		"nombre_producto": {"Leche"},
		"precio":          {"3"},
		"stock":           {"10"},
	}))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Producto creado correctamente!")
	assert.Equal(t, 1, backend.getCount("/products"))
	require.Len(t, backend.posted, 1)
	assert.Equal(t, "3.00", backend.posted[0]["precio"])
	assert.EqualValues(t, 10, backend.posted[0]["stock"])
	assert.NotContains(t, body, `value="Leche"`)
}

func TestConsole_CreateFailureKeepsValues(t *testing.T) {
	backend := newFakeBackend()
	backend.createCode = http.StatusBadRequest
	backend.createBody = `{"message":"nombre duplicado"}`
	app := buildConsoleApp(t, backend)

	resp, body := do(t, app, postForm("/products", url.Values{
		"nombre_producto": {"Leche"},
		"precio":          {"3"},
		"stock":           {"10"},
	}))
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body, "Error al crear producto: nombre duplicado")
	assert.Contains(t, body, `value="Leche"`)
	assert.Zero(t, backend.getCount("/products"))
}

func TestConsole_CreateSaleFillsTotal(t *testing.T) {
	backend := newFakeBackend()
	app := buildConsoleApp(t, backend)

	resp, _ := do(t, app, postForm("/sales", url.Values{
		"id_producto": {"1"},
		"id_usuario":  {"7"},
		"cantidad":    {"3"},
		"fecha":       {"2025-10-25T15:04"},
	}))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, backend.posted, 1)
	assert.Equal(t, "7.50", backend.posted[0]["total"])
	assert.EqualValues(t, 3, backend.posted[0]["cantidad"])
}

func TestConsole_SaleTotal(t *testing.T) {
	app := buildConsoleApp(t, newFakeBackend())
	_, body := do(t, app, httptest.NewRequest(http.MethodGet, "/sales/total?id_producto=1&cantidad=4", nil))

	var out dto.SaleTotalResponse
	require.NoError(t, json.Unmarshal([]byte(body), &out))
	assert.Equal(t, "10.00", out.Total)
}

func TestConsole_DeleteFlow(t *testing.T) {
	t.Run("confirmación", func(t *testing.T) {
		app := buildConsoleApp(t, newFakeBackend())
		resp, body := do(t, app, httptest.NewRequest(http.MethodGet, "/product/5/delete", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, "¿Está seguro de eliminar producto con ID 5?")
	})

	t.Run("aceptar con 204", func(t *testing.T) {
		backend := newFakeBackend()
		app := buildConsoleApp(t, backend)
		resp, body := do(t, app, postForm("/product/5/delete", url.Values{"confirm": {"yes"}}))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, []string{"/product/5"}, backend.deletedPath)
		assert.Equal(t, 1, backend.getCount("/products"))
		assert.Contains(t, body, entitysync.DeletedMessage)
	})

	t.Run("cancelar no llama a la API", func(t *testing.T) {
		backend := newFakeBackend()
		app := buildConsoleApp(t, backend)
		resp, _ := do(t, app, postForm("/product/5/delete", url.Values{"confirm": {"no"}}))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Empty(t, backend.deletedPath)
	})

	t.Run("404 html", func(t *testing.T) {
		backend := newFakeBackend()
		backend.deleteCode = http.StatusNotFound
		backend.deleteBody = "<html><body><h1>404 Not Found</h1></body></html>"
		app := buildConsoleApp(t, backend)
		resp, body := do(t, app, postForm("/product/5/delete", url.Values{"confirm": {"yes"}}))
		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
		assert.Contains(t, body, "Error 404: La ruta de la API no se encontró. Verifique el servidor.")
		assert.NotContains(t, body, "<h1>404 Not Found</h1>")
	})
}

func TestConsole_ReportPDF(t *testing.T) {
	app := buildConsoleApp(t, newFakeBackend())
	resp, body := do(t, app, httptest.NewRequest(http.MethodGet, "/products/report.pdf", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.True(t, strings.HasPrefix(body, "%PDF"))
}
