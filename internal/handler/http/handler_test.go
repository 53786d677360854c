package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ivolkov/accountdesk/internal/service"
	"github.com/ivolkov/accountdesk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_ReturnsNonNil(t *testing.T) {
	h := newTestHandler(t, nil, nil)

	require.NotNil(t, h)
	assert.NotEmpty(t, h.templates, "templates must be parsed at construction")
}

func TestNewHandler_ParsesEveryPage(t *testing.T) {
	h := newTestHandler(t, nil, nil)

	for _, page := range pageTemplates {
		assert.Contains(t, h.templates, page)
	}
}

// ─────────────────────────────────────────────
// Init — route registration
// ─────────────────────────────────────────────

// routeCase describes a single expected route.
type routeCase struct {
	method string
	path   string
}

// expectedRoutes lists every route that Init() must register.
var expectedRoutes = []routeCase{
	{http.MethodGet, "/"},
	{http.MethodGet, "/register"},
	{http.MethodPost, "/register"},
	{http.MethodGet, "/login"},
	{http.MethodPost, "/login"},
	{http.MethodGet, "/logout"},
	// protected (the session gate will redirect, not 404/405)
	{http.MethodGet, "/profile"},
	{http.MethodGet, "/update/u-1"},
	{http.MethodPost, "/update/u-1"},
}

func TestInit_RegistersAllRoutes(t *testing.T) {
	// only the public POST handlers reach a service with an empty body
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{}, service.ErrInvalidCredentials
		},
		logoutFn: func(_ context.Context, _ string) error { return nil },
	}
	router := newTestHandler(t, auth, nil).Init()

	for _, tc := range expectedRoutes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			// A registered route returns anything except 404 (not found) or
			// 405 (method not allowed). Protected routes redirect to /login;
			// that still proves the route exists.
			assert.NotEqual(t, http.StatusNotFound, rec.Code,
				"route not found: %s %s", tc.method, tc.path)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code,
				"method not allowed: %s %s", tc.method, tc.path)
		})
	}
}

func TestInit_UnknownRouteRendersNotFoundPage(t *testing.T) {
	router := newTestHandler(t, nil, nil).Init()

	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Page Not Found")
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	router := newTestHandler(t, nil, nil).Init()

	// DELETE / is not registered — only GET is.
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
