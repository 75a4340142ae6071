package router

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	apphttp "dhl_location_finder/internal/http"
	"dhl_location_finder/platform/config"
	"dhl_location_finder/platform/httpkit"
	"dhl_location_finder/platform/logger"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

type adminStub struct{}

func (adminStub) Name() string { return "stub" }

func (adminStub) RegisterRoutes(ctx *apphttp.RouterContext) {
	ok := func(c *gin.Context) { c.String(http.StatusOK, "ok") }
	ctx.Admin.GET("/stub", ok)
	ctx.AdminPages.GET("/stub", ok)
	ctx.Pages.GET("/stub", ok)
}

func newEngine(cfg *config.Config, health apphttp.HealthChecker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return New(&apphttp.App{
		Config:  cfg,
		Logger:  logger.Discard(),
		Health:  health,
		Modules: []apphttp.Module{adminStub{}},
	})
}

func get(engine *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestReadinessReflectsSettingsStore(t *testing.T) {
	healthy := newEngine(&config.Config{}, pingFunc(func(context.Context) error { return nil }))
	if rec := get(healthy, httptest.NewRequest(http.MethodGet, "/api/ready", nil)); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	down := newEngine(&config.Config{}, pingFunc(func(context.Context) error { return errors.New("down") }))
	if rec := get(down, httptest.NewRequest(http.MethodGet, "/api/ready", nil)); rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

func TestRequestIDIsEchoed(t *testing.T) {
	engine := newEngine(&config.Config{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(httpkit.RequestIDHeader, "req-123")
	rec := get(engine, req)
	if got := rec.Header().Get(httpkit.RequestIDHeader); got != "req-123" {
		t.Fatalf("expected request id echoed, got %q", got)
	}

	rec = get(engine, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if rec.Header().Get(httpkit.RequestIDHeader) == "" {
		t.Fatalf("expected generated request id")
	}
}

func TestAdminRoutesRequireBasicAuthWhenConfigured(t *testing.T) {
	engine := newEngine(&config.Config{AdminUsername: "admin", AdminPassword: "s3cret"}, nil)

	for _, path := range []string{"/api/v1/admin/stub", "/admin/stub"} {
		if rec := get(engine, httptest.NewRequest(http.MethodGet, path, nil)); rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", path, rec.Code)
		}

		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.SetBasicAuth("admin", "s3cret")
		if rec := get(engine, req); rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200 with credentials, got %d", path, rec.Code)
		}
	}

	if rec := get(engine, httptest.NewRequest(http.MethodGet, "/stub", nil)); rec.Code != http.StatusOK {
		t.Fatalf("public page should not require auth, got %d", rec.Code)
	}
}

func TestAdminRoutesOpenWithoutCredentials(t *testing.T) {
	engine := newEngine(&config.Config{}, nil)

	if rec := get(engine, httptest.NewRequest(http.MethodGet, "/api/v1/admin/stub", nil)); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestPreflightAnsweredForAPIRoutes(t *testing.T) {
	engine := newEngine(&config.Config{CORSOrigins: []string{"http://localhost:4200"}}, nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/admin/stub", nil)
	req.Header.Set("Origin", "http://localhost:4200")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	rec := get(engine, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for preflight, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:4200" {
		t.Fatalf("expected allowed origin header, got %q", got)
	}
}

func TestPagesHaveNoCORSHeaders(t *testing.T) {
	engine := newEngine(&config.Config{CORSOrigins: []string{"http://localhost:4200"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/stub", nil)
	req.Header.Set("Origin", "http://localhost:4200")
	rec := get(engine, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected no CORS headers on pages, got %q", got)
	}
}
