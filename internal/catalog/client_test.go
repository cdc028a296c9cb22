package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchAll_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"products":[
			{"id":1,"title":"Red Running Shoes","price":49.99},
			{"id":2,"title":"Blue Jacket","price":89.50,"category":"clothes"}
		]}`))
	}))
	t.Cleanup(srv.Close)

	client := NewHTTPClient(srv.URL, 5*time.Second)
	products, err := client.FetchAll(context.Background())
	require.NoError(t, err)

	require.Len(t, products, 2)
	assert.Equal(t, int64(1), products[0].ID)
	assert.Equal(t, "Red Running Shoes", products[0].Title)
	assert.Equal(t, 49.99, products[0].Price)
	// Extra fields in the payload are ignored.
	assert.Equal(t, "Blue Jacket", products[1].Title)
}

func TestFetchAll_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	client := NewHTTPClient(srv.URL, 5*time.Second)
	_, err := client.FetchAll(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Contains(t, err.Error(), "500")
}

func TestFetchAll_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	t.Cleanup(srv.Close)

	client := NewHTTPClient(srv.URL, 5*time.Second)
	_, err := client.FetchAll(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestFetchAll_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listens anymore

	client := NewHTTPClient(srv.URL, time.Second)
	_, err := client.FetchAll(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}
