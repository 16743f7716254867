//go:build unit || e2e

package fakebackend

import (
	"encoding/json"
	"io"
	"maps"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
)

// Request is one call the fake received
type Request struct {
	Method string
	Path   string
	Body   map[string]any
}

// Backend is an in-memory reservas REST API
type Backend struct {
	*httptest.Server

	mu       sync.Mutex
	items    []map[string]any
	nextID   int64
	failures map[string]int
	requests []Request
}

func New(t *testing.T, items ...map[string]any) *Backend {
	t.Helper()

	b := &Backend{nextID: 1, failures: make(map[string]int)}
	for _, it := range items {
		b.items = append(b.items, it)
		if id, ok := toInt64(it["id"]); ok && id >= b.nextID {
			b.nextID = id + 1
		}
	}
	b.Server = httptest.NewServer(http.HandlerFunc(b.serve))
	t.Cleanup(b.Close)
	return b
}

// BaseURL is the collection URL the client is configured with
func (b *Backend) BaseURL() string {
	return b.URL + "/reservas"
}

// FailNext makes the next request with method answer with status
func (b *Backend) FailNext(method string, status int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures[method] = status
}

func (b *Backend) Requests() []Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Request(nil), b.requests...)
}

func (b *Backend) Items() []map[string]any {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]map[string]any(nil), b.items...)
}

func (b *Backend) serve(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var body map[string]any
	if raw, _ := io.ReadAll(r.Body); len(raw) > 0 {
		_ = json.Unmarshal(raw, &body)
	}
	if body == nil {
		body = map[string]any{}
	}
	b.requests = append(b.requests, Request{Method: r.Method, Path: r.URL.Path, Body: maps.Clone(body)})

	if status, ok := b.failures[r.Method]; ok {
		delete(b.failures, r.Method)
		w.WriteHeader(status)
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/reservas")
	switch {
	case rest == "" && r.Method == http.MethodGet:
		writeJSON(w, http.StatusOK, b.items)
	case rest == "" && r.Method == http.MethodPost:
		body["id"] = b.nextID
		b.nextID++
		b.items = append(b.items, body)
		writeJSON(w, http.StatusCreated, body)
	case strings.HasPrefix(rest, "/"):
		id, err := strconv.ParseInt(strings.TrimPrefix(rest, "/"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		b.serveItem(w, r.Method, id, body)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (b *Backend) serveItem(w http.ResponseWriter, method string, id int64, body map[string]any) {
	idx := -1
	for i, it := range b.items {
		if v, ok := toInt64(it["id"]); ok && v == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	switch method {
	case http.MethodPut:
		body["id"] = id
		b.items[idx] = body
		writeJSON(w, http.StatusOK, body)
	case http.MethodDelete:
		b.items = append(b.items[:idx], b.items[idx+1:]...)
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		return int64(n), true
	default:
		return 0, false
	}
}
