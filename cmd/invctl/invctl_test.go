package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeAPI(t *testing.T, deletes *[]string) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/products":
			_, _ = io.WriteString(w, `[{"id_producto":1,"nombre_producto":"Pan","categoria":"Panadería","precio":"2.50","stock":100}]`)
		case r.Method == http.MethodGet:
			_, _ = io.WriteString(w, `[]`)
		case r.Method == http.MethodDelete:
			*deletes = append(*deletes, r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

func run(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestList(t *testing.T) {
	url := fakeAPI(t, new([]string))
	out := run(t, "", "list", "products", "--api", url)
	assert.Contains(t, out, "ID: 1 - Pan")
	assert.Contains(t, out, "Precio: $2.50 | Stock: 100")
}

func TestDeleteDeclined(t *testing.T) {
	var deletes []string
	url := fakeAPI(t, &deletes)
	out := run(t, "n\n", "delete", "product", "5", "--api", url)
	assert.Contains(t, out, "Cancelado.")
	assert.Empty(t, deletes)
}

func TestDeleteConfirmed(t *testing.T) {
	var deletes []string
	url := fakeAPI(t, &deletes)
	out := run(t, "s\n", "delete", "product", "5", "--api", url)
	assert.Equal(t, []string{"/product/5"}, deletes)
	assert.Contains(t, out, "Eliminación exitosa.")
}

func TestTotal(t *testing.T) {
	url := fakeAPI(t, new([]string))
	out := run(t, "", "total", "-p", "1", "-q", "3", "--api", url)
	assert.Equal(t, "7.50", strings.TrimSpace(out))
}
