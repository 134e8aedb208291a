package proxy_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/JaimeStill/mirofish/internal/proxy"
	"github.com/JaimeStill/mirofish/pkg/handlers"
	"github.com/JaimeStill/mirofish/pkg/routes"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestProxy_RestoresMountPrefix(t *testing.T) {
	var gotPath, gotQuery, gotForwarded string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotForwarded = r.Header.Get("X-Forwarded-Host")
		w.Write([]byte("upstream"))
	}))
	defer upstream.Close()

	target, _ := url.Parse(upstream.URL)
	p := proxy.New(target, proxy.Options{MountPrefix: "/api", Timeout: 5 * time.Second}, discardLogger())

	req := httptest.NewRequest(http.MethodGet, "http://app.example/graph/project/p1?full=1", nil)
	w := httptest.NewRecorder()

	p.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if gotPath != "/api/graph/project/p1" {
		t.Errorf("upstream path = %q, want %q", gotPath, "/api/graph/project/p1")
	}
	if gotQuery != "full=1" {
		t.Errorf("upstream query = %q, want %q", gotQuery, "full=1")
	}
	if gotForwarded != "app.example" {
		t.Errorf("X-Forwarded-Host = %q, want %q", gotForwarded, "app.example")
	}
	if w.Body.String() != "upstream" {
		t.Errorf("body = %q, want %q", w.Body.String(), "upstream")
	}
}

func TestProxy_UpstreamDown(t *testing.T) {
	upstream := httptest.NewServer(http.NotFoundHandler())
	target, _ := url.Parse(upstream.URL)
	upstream.Close()

	p := proxy.New(target, proxy.Options{MountPrefix: "/api", Timeout: time.Second}, discardLogger())

	req := httptest.NewRequest(http.MethodPost, "/simulation/start", strings.NewReader(`{}`))
	w := httptest.NewRecorder()

	p.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadGateway)
	}

	var body handlers.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.Contains(body.Error, "upstream unavailable") {
		t.Errorf("error = %q, want upstream unavailable", body.Error)
	}
}

func TestProxy_BreakerOpens(t *testing.T) {
	upstream := httptest.NewServer(http.NotFoundHandler())
	target, _ := url.Parse(upstream.URL)
	upstream.Close()

	p := proxy.New(target, proxy.Options{
		MountPrefix:     "/api",
		Timeout:         time.Second,
		BreakerFailures: 2,
		BreakerTimeout:  time.Minute,
	}, discardLogger())

	want := []int{http.StatusBadGateway, http.StatusBadGateway, http.StatusServiceUnavailable}
	for i, status := range want {
		req := httptest.NewRequest(http.MethodGet, "/graph/project/p1", nil)
		w := httptest.NewRecorder()

		p.ServeHTTP(w, req)

		if w.Code != status {
			t.Errorf("request %d status = %d, want %d", i+1, w.Code, status)
		}
	}
}

func TestProxy_BreakerIgnoresUpstreamErrors(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer upstream.Close()

	target, _ := url.Parse(upstream.URL)
	p := proxy.New(target, proxy.Options{
		MountPrefix:     "/api",
		Timeout:         time.Second,
		BreakerFailures: 1,
		BreakerTimeout:  time.Minute,
	}, discardLogger())

	for i := range 3 {
		req := httptest.NewRequest(http.MethodGet, "/report/r1", nil)
		w := httptest.NewRecorder()

		p.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("request %d status = %d, want %d", i+1, w.Code, http.StatusInternalServerError)
		}
	}
}

func TestRoutes_ForwardsPrefixes(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("proxied " + r.Method + " " + r.URL.Path))
	})

	mux := http.NewServeMux()
	routes.Register(mux, proxy.Routes(handler, "/graph", "/report"))

	tests := []struct {
		method string
		path   string
		want   string
	}{
		{http.MethodGet, "/graph", "proxied GET /graph"},
		{http.MethodPost, "/graph/build", "proxied POST /graph/build"},
		{http.MethodDelete, "/report/r1", "proxied DELETE /report/r1"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Body.String() != tt.want {
				t.Errorf("body = %q, want %q", w.Body.String(), tt.want)
			}
		})
	}

	req := httptest.NewRequest(http.MethodGet, "/simulation/s1", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("unlisted prefix status = %d, want %d", w.Code, http.StatusNotFound)
	}
}
