package coda

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"zenith-dashboard/internal/platform/httpclient"
	"zenith-dashboard/internal/ports/tables"
)

const (
	DefaultBaseURL = "https://coda.io/apis/v1"

	// DefaultRevalidate es la ventana en la que se reusa una respuesta cacheada.
	DefaultRevalidate = 600 * time.Second
)

// Credentials se cargan una vez al arrancar y se inyectan aquí.
type Credentials struct {
	APIToken string
	DocID    string
}

// Missing devuelve los nombres de los valores requeridos que faltan.
func (c Credentials) Missing() []string {
	var out []string
	if strings.TrimSpace(c.APIToken) == "" {
		out = append(out, "api_token")
	}
	if strings.TrimSpace(c.DocID) == "" {
		out = append(out, "doc_id")
	}
	return out
}

type Config struct {
	Credentials Credentials
	BaseURL     string
	Timeout     time.Duration

	// Revalidate: 0 => DefaultRevalidate, negativo => sin cache.
	Revalidate time.Duration

	// Transport opcional (tests).
	Transport http.RoundTripper
}

// Client lee filas de tablas de un doc de Coda.
type Client struct {
	creds Credentials
	http  *httpclient.Client
}

func NewClient(cfg Config) (*Client, error) {
	ttl := cfg.Revalidate
	if ttl == 0 {
		ttl = DefaultRevalidate
	}

	tr := cfg.Transport
	if ttl > 0 {
		tr = httpclient.NewCacheTransport(cfg.Transport, ttl)
	}

	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = DefaultBaseURL
	}
	hc, err := httpclient.NewWithTransport(cfg.Timeout, tr).WithBaseURL(base)
	if err != nil {
		return nil, err
	}

	return &Client{
		creds: Credentials{
			APIToken: strings.TrimSpace(cfg.Credentials.APIToken),
			DocID:    strings.TrimSpace(cfg.Credentials.DocID),
		},
		http: hc,
	}, nil
}

func (c *Client) IsConfigured() bool {
	return c != nil && len(c.creds.Missing()) == 0
}

type listRowsResponse struct {
	Items         []tables.Row `json:"items"`
	NextPageToken string       `json:"nextPageToken,omitempty"`
}

// ListRows implementa tables.Reader contra
// GET /docs/{docId}/tables/{table}/rows?useColumnNames=true&limit=N.
// Sin credenciales no toca la red.
func (c *Client) ListRows(ctx context.Context, table string, limit int) ([]tables.Row, error) {
	if c == nil {
		return nil, tables.ErrNotConfigured
	}
	if missing := c.creds.Missing(); len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %s", tables.ErrNotConfigured, strings.Join(missing, ", "))
	}
	table = strings.TrimSpace(table)
	if table == "" {
		return nil, errors.New("coda: table required")
	}

	path := fmt.Sprintf("/docs/%s/tables/%s/rows", url.PathEscape(c.creds.DocID), url.PathEscape(table))
	q := url.Values{}
	q.Set("useColumnNames", "true")
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var out listRowsResponse
	err := c.http.GetJSON(ctx, path, q, map[string]string{
		"Authorization": "Bearer " + c.creds.APIToken,
	}, &out)
	if err != nil {
		var he *httpclient.HTTPError
		if errors.As(err, &he) && (he.StatusCode == http.StatusUnauthorized || he.StatusCode == http.StatusForbidden) {
			return nil, fmt.Errorf("%w: %w", tables.ErrUnauthorized, err)
		}
		return nil, fmt.Errorf("%w: %w", tables.ErrUpstream, err)
	}

	return out.Items, nil
}
