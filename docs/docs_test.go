package docs_test

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"

	"github.com/jhoicas/inventario-console/docs"
)

type openAPIDoc struct {
	Info struct {
		Title string `json:"title"`
	} `json:"info"`
	BasePath    string                     `json:"basePath"`
	Paths       map[string]json.RawMessage `json:"paths"`
	Definitions map[string]json.RawMessage `json:"definitions"`
}

func keys(m map[string]json.RawMessage) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestSwaggerJSON_DocumentaEndpointsJSON(t *testing.T) {
	raw, err := os.ReadFile("swagger.json")
	require.NoError(t, err)

	var file openAPIDoc
	require.NoError(t, json.Unmarshal(raw, &file))
	assert.Equal(t, "Inventario Console", file.Info.Title)
	assert.Equal(t, "/", file.BasePath)
	assert.ElementsMatch(t, []string{"/health", "/sales/total", "/{kind}/report.pdf"}, keys(file.Paths))
	assert.ElementsMatch(t, []string{"dto.ErrorResponse", "dto.HealthResponse", "dto.SaleTotalResponse"}, keys(file.Definitions))
}

func TestSwaggerInfo_CoincideConArchivo(t *testing.T) {
	registered, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var fromInfo, fromFile openAPIDoc
	require.NoError(t, json.Unmarshal([]byte(registered), &fromInfo))
	raw, err := os.ReadFile("swagger.json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &fromFile))

	assert.Equal(t, fromFile.Info.Title, fromInfo.Info.Title)
	assert.ElementsMatch(t, keys(fromFile.Paths), keys(fromInfo.Paths))
	for path, op := range fromFile.Paths {
		assert.JSONEq(t, string(op), string(fromInfo.Paths[path]), path)
	}
}
