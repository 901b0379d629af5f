package api_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jrazmi/taskboard/app/taskboard/api"
	"github.com/jrazmi/taskboard/app/taskboard/config"
	"github.com/jrazmi/taskboard/bridge/scaffolding/mid"
	"github.com/jrazmi/taskboard/infrastructure/web"
	"github.com/jrazmi/taskboard/sdk/logger"
)

func newHandler(check api.StatusChecker) http.Handler {
	log := logger.NewDiscard()
	wh := web.NewWebHandler(web.WithGlobalMiddleware(mid.Errors(log), mid.Panics()))
	api.AddHandlers(wh, config.Taskboard{Build: "test", Logger: log}, check)
	return wh
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name  string
		check api.StatusChecker
		code  int
		body  string
	}{
		{
			name:  "ready",
			check: func(context.Context) error { return nil },
			code:  http.StatusOK,
			body:  `{"code":"ok","message":"test"}`,
		},
		{
			name:  "database down",
			check: func(context.Context) error { return errors.New("dial tcp: refused") },
			code:  http.StatusInternalServerError,
			body:  `{"code":"internal","message":"Internal Server Error"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newHandler(tt.check).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			if rec.Code != tt.code || rec.Body.String() != tt.body {
				t.Errorf("got %d %s, want %d %s", rec.Code, rec.Body, tt.code, tt.body)
			}
		})
	}
}

func TestRoutesRegistered(t *testing.T) {
	h := newHandler(func(context.Context) error { return nil })

	for _, path := range []string{"/projects/x", "/tasks/x", "/comments/x", "/attachments/x"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("GET %s = %d, want 400 for a non-integer id", path, rec.Code)
		}
	}
}
