package apiclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-console/internal/domain"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(NewRESTClient(srv.URL+"/", time.Second, nil), nil)
}

func TestClient_List(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/products", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.NotEmpty(t, r.Header.Get(requestIDHeader))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id_producto":1}]`))
	})

	body, err := c.List(context.Background(), "/products")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id_producto":1}]`, string(body))
}

func TestClient_ListStatusError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "caído", http.StatusServiceUnavailable)
	})

	_, err := c.List(context.Background(), "/users")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStatusMismatch)
	var se *domain.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "list", se.Op)
	assert.Equal(t, http.StatusServiceUnavailable, se.Status)
}

func TestClient_CreateSendsJSON(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var got map[string]any
		require.NoError(t, json.Unmarshal(raw, &got))
		assert.Equal(t, "2.50", got["precio"])
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id_producto":9}`))
	})

	resp, err := c.Create(context.Background(), "/products", map[string]any{"precio": "2.50"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.Status)
	assert.Equal(t, `{"id_producto":9}`, resp.Body)
}

func TestClient_DeleteReturnsRawStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/product/5", r.URL.Path)
		w.Header().Set("Content-Type", "text/html; charset=ISO-8859-1")
		w.WriteHeader(http.StatusNotFound)
		// "Página" en Latin-1
		_, _ = w.Write([]byte("<h1>P\xe1gina 404</h1>"))
	})

	resp, err := c.Delete(context.Background(), "/product/5")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.Status)
	assert.Equal(t, "<h1>Página 404</h1>", resp.Body)
}

func TestClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := New(NewRESTClient(url, time.Second, nil), nil)
	_, err := c.List(context.Background(), "/sales")
	assert.ErrorIs(t, err, domain.ErrTransport)
}

func TestDecoderFor(t *testing.T) {
	assert.Nil(t, decoderFor(""))
	assert.Nil(t, decoderFor("application/json; charset=utf-8"))
	assert.NotNil(t, decoderFor("text/plain; charset=windows-1252"))
	assert.Nil(t, decoderFor(";;;"))
}
