// Package catalog fetches the product list from the upstream product API.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/singleflight"

	"github.com/Ayushgupta208019/Voice-Assistent-Shopping/internal/domain"
)

// ErrUnavailable wraps every fetch failure: transport errors, non-2xx
// responses and malformed bodies.
var ErrUnavailable = errors.New("catalog unavailable")

// Client is the narrow port on the upstream catalog. The catalog is fetched
// fresh per voice command; there is no local cache.
type Client interface {
	FetchAll(ctx context.Context) ([]domain.Product, error)
}

// HTTPClient fetches products over HTTPS with a bounded timeout. Concurrent
// identical fetches are collapsed with singleflight, so staleness stays
// within one in-flight request.
type HTTPClient struct {
	url    string
	client *http.Client
	sfg    singleflight.Group
}

func NewHTTPClient(url string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		url: url,
		client: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

type productsBody struct {
	Products []domain.Product `json:"products"`
}

func (c *HTTPClient) FetchAll(ctx context.Context) ([]domain.Product, error) {
	v, err, _ := c.sfg.Do(c.url, func() (interface{}, error) {
		return c.fetch(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Product), nil
}

func (c *HTTPClient) fetch(ctx context.Context) ([]domain.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode)
	}

	var body productsBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decoding products: %v", ErrUnavailable, err)
	}
	return body.Products, nil
}
