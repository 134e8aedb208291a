package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/mirofish/pkg/middleware"
)

func TestLogger_LogsRequest(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	wrapped := middleware.Logger(logger)(handler)

	req := httptest.NewRequest(http.MethodGet, "/process/p1?tab=graph", nil)
	wrapped.ServeHTTP(httptest.NewRecorder(), req)

	logOutput := buf.String()

	checks := []string{"request", "GET", "/process/p1?tab=graph", "status=418", "duration"}
	for _, want := range checks {
		if !strings.Contains(logOutput, want) {
			t.Errorf("log should contain %q, got %s", want, logOutput)
		}
	}
}

func TestLogger_DefaultsStatusOK(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	wrapped := middleware.Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("response"))
	}))

	w := httptest.NewRecorder()
	wrapped.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(buf.String(), "status=200") {
		t.Errorf("log should contain status=200, got %s", buf.String())
	}
	if !strings.Contains(buf.String(), "bytes=8") {
		t.Errorf("log should contain bytes=8, got %s", buf.String())
	}
}

func TestLogger_IncludesRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	wrapped := middleware.RequestID()(middleware.Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})))

	w := httptest.NewRecorder()
	wrapped.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	id := w.Header().Get(middleware.RequestIDHeader)
	if id == "" {
		t.Fatal("response should carry a request id")
	}
	if !strings.Contains(buf.String(), "request_id="+id) {
		t.Errorf("log should contain request_id=%s, got %s", id, buf.String())
	}
}
