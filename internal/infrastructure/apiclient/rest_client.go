package apiclient

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// RESTClient envuelve http.Client con la URL base de la API.
type RESTClient struct {
	baseURL string
	client  *http.Client
}

// NewRESTClient construye el cliente. Un client nil usa uno propio con el timeout dado.
func NewRESTClient(baseURL string, timeout time.Duration, client *http.Client) *RESTClient {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		trimmed = "http://localhost:8080"
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}
	return &RESTClient{baseURL: trimmed, client: client}
}

// BaseURL dirección base sin "/" final.
func (c *RESTClient) BaseURL() string { return c.baseURL }

// NewRequest arma la petición contra baseURL + endpoint.
func (c *RESTClient) NewRequest(ctx context.Context, method, endpoint string, body io.Reader) (*http.Request, error) {
	url := c.baseURL + "/" + strings.TrimLeft(endpoint, "/")
	return http.NewRequestWithContext(ctx, method, url, body)
}

func (c *RESTClient) Do(req *http.Request) (*http.Response, error) {
	return c.client.Do(req)
}
