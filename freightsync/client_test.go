package freightsync

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testClient(t *testing.T, baseURL string) *freightClient {
	t.Helper()
	limiter := make(chan time.Time, 64)
	for i := 0; i < 64; i++ {
		limiter <- time.Now()
	}
	return &freightClient{
		baseURL:   baseURL,
		apiKey:    "test-key",
		apiKeyHdr: "X-API-Key",
		http:      &http.Client{Timeout: 5 * time.Second},
		limiter:   limiter,
	}
}

func TestFetchAllPagination(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-API-Key") != "test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		cursor := r.URL.Query().Get("cursor")
		w.Header().Set("Content-Type", "application/json")
		switch cursor {
		case "":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"data":        []map[string]string{{"referance": "SHP-1"}, {"referance": "SHP-2"}},
				"next_cursor": "page2",
			})
		case "page2":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"data":        []map[string]string{{"referance": "SHP-3"}},
				"next_cursor": "",
			})
		default:
			w.WriteHeader(http.StatusBadRequest)
		}
	}))
	defer srv.Close()

	c := testClient(t, srv.URL)
	records, err := c.fetchAll(context.Background(), "/v1/shipments")
	if err != nil {
		t.Fatalf("fetchAll: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records across pages, got %d", len(records))
	}
}

func TestFetchAllStopsWhenCursorMissing(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Header().Set("Content-Type", "application/json")
		// Final page of some deployments: has_more still true, no cursor.
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data":     []map[string]string{{"referance": "SHP-1"}, {"referance": "SHP-2"}},
			"has_more": true,
		})
	}))
	defer srv.Close()

	c := testClient(t, srv.URL)
	records, err := c.fetchAll(context.Background(), "/v1/shipments")
	if err != nil {
		t.Fatalf("fetchAll: %v", err)
	}
	if requests != 1 {
		t.Fatalf("expected a single request without a cursor to follow, got %d", requests)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
}

func TestFetchAllStopsWhenCursorStalls(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Header().Set("Content-Type", "application/json")
		// Broken upstream: same cursor echoed back on every page.
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data":        []map[string]string{{"referance": "SHP-1"}},
			"next_cursor": "stuck",
			"has_more":    true,
		})
	}))
	defer srv.Close()

	c := testClient(t, srv.URL)
	records, err := c.fetchAll(context.Background(), "/v1/shipments")
	if err != nil {
		t.Fatalf("fetchAll: %v", err)
	}
	if requests != 2 {
		t.Fatalf("expected pagination to stop once the cursor stalled, got %d requests", requests)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
}

func TestFetchAllLegacyItemsShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		hasMore := false
		json.NewEncoder(w).Encode(map[string]interface{}{
			"items":    []map[string]string{{"code": "C1"}},
			"has_more": &hasMore,
		})
	}))
	defer srv.Close()

	c := testClient(t, srv.URL)
	records, err := c.fetchAll(context.Background(), "/v1/accounts")
	if err != nil {
		t.Fatalf("fetchAll: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record from legacy shape, got %d", len(records))
	}
}

func TestGetListNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := testClient(t, srv.URL)
	if _, err := c.fetchAll(context.Background(), "/v1/shipments"); err == nil {
		t.Fatal("expected error on non-200 status")
	}
}
