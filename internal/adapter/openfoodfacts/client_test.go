package openfoodfacts_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"caltrack/internal/adapter/openfoodfacts"
)

func newClient(t *testing.T, h http.HandlerFunc, timeout time.Duration) *openfoodfacts.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return openfoodfacts.New(openfoodfacts.Config{
		BaseURL:   srv.URL,
		Timeout:   timeout,
		PageSize:  2,
		UserAgent: "caltrack-test/1.0",
	}, log)
}

func TestSearch_Success(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("search_terms") != "oat milk" || q.Get("page") != "3" || q.Get("page_size") != "2" || q.Get("json") != "1" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		if r.Header.Get("User-Agent") != "caltrack-test/1.0" {
			t.Errorf("unexpected user agent %q", r.Header.Get("User-Agent"))
		}
		_, _ = io.WriteString(w, `{"count": 41, "products": [
			{"code": "1", "product_name": "Oat Drink", "nutriments": {"energy-kcal_100g": 46}},
			{"code": "2"}
		]}`)
	}, time.Second)

	res := c.Search(context.Background(), "oat milk", 3)
	if res.Count != 41 || res.Page != 3 || res.PageSize != 2 {
		t.Fatalf("unexpected paging: %+v", res)
	}
	if len(res.Products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(res.Products))
	}
	if res.Products[0].CaloriesPer100g != 46 || res.Products[1].ServingSize != "100g" {
		t.Errorf("products not normalised: %+v", res.Products)
	}
}

func TestSearch_PageDefaultsToOne(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") != "1" {
			t.Errorf("expected page=1, got %s", r.URL.Query().Get("page"))
		}
		_, _ = io.WriteString(w, `{"count": 0, "products": []}`)
	}, time.Second)

	if res := c.Search(context.Background(), "x", 0); res.Page != 1 {
		t.Fatalf("expected page 1, got %d", res.Page)
	}
}

func TestSearch_UpstreamFailuresAreEmpty(t *testing.T) {
	tests := []struct {
		name string
		h    http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}},
		{"malformed json", func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"products": [`)
		}},
		{"timeout", func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
			_, _ = io.WriteString(w, `{"count": 1, "products": [{"code": "1"}]}`)
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := newClient(t, tc.h, 50*time.Millisecond)
			res := c.Search(context.Background(), "apple", 1)
			if res.Count != 0 || len(res.Products) != 0 {
				t.Fatalf("expected empty result, got %+v", res)
			}
			if res.Products == nil {
				t.Fatal("products should be an empty list, not nil")
			}
		})
	}
}

func TestLookup(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/product/4000417025005":
			_, _ = io.WriteString(w, `{"status": 1, "product": {"code": "4000417025005", "product_name": "Haferflocken"}}`)
		case "/product/000":
			_, _ = io.WriteString(w, `{"status": 0, "status_verbose": "product not found"}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}, time.Second)

	got, ok := c.Lookup(context.Background(), "4000417025005")
	if !ok {
		t.Fatal("expected product")
	}
	if got.Name != "Haferflocken" || got.ServingSize != "100g" {
		t.Errorf("unexpected product: %+v", got)
	}

	if _, ok := c.Lookup(context.Background(), "000"); ok {
		t.Error("status 0 should be not found")
	}
	if _, ok := c.Lookup(context.Background(), "999"); ok {
		t.Error("404 should be not found")
	}
}

func TestLookup_TimeoutIsNotFound(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = io.WriteString(w, `{"status": 1, "product": {}}`)
	}, 50*time.Millisecond)

	if _, ok := c.Lookup(context.Background(), "123"); ok {
		t.Fatal("timed out lookup should be not found")
	}
}
