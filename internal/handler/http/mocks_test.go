package http

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/ivolkov/accountdesk/internal/config"
	"github.com/ivolkov/accountdesk/internal/logger"
	"github.com/ivolkov/accountdesk/internal/service"
	"github.com/ivolkov/accountdesk/models"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn     func(ctx context.Context, input service.RegisterInput) (models.User, error)
	loginFn        func(ctx context.Context, email, password string) (models.User, error)
	openSessionFn  func(ctx context.Context, user models.User) (models.Session, error)
	authenticateFn func(ctx context.Context, token string) (models.User, error)
	logoutFn       func(ctx context.Context, token string) error
}

func (m *mockAuthService) Register(ctx context.Context, input service.RegisterInput) (models.User, error) {
	return m.registerFn(ctx, input)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	return m.loginFn(ctx, email, password)
}

func (m *mockAuthService) OpenSession(ctx context.Context, user models.User) (models.Session, error) {
	return m.openSessionFn(ctx, user)
}

func (m *mockAuthService) Authenticate(ctx context.Context, token string) (models.User, error) {
	return m.authenticateFn(ctx, token)
}

func (m *mockAuthService) Logout(ctx context.Context, token string) error {
	return m.logoutFn(ctx, token)
}

// ─────────────────────────────────────────────
// Mock ProfileService
// ─────────────────────────────────────────────

type mockProfileService struct {
	profileFn       func(ctx context.Context, id string) (models.User, error)
	updateProfileFn func(ctx context.Context, callerID, targetID, name, email string) error
}

func (m *mockProfileService) Profile(ctx context.Context, id string) (models.User, error) {
	return m.profileFn(ctx, id)
}

func (m *mockProfileService) UpdateProfile(ctx context.Context, callerID, targetID, name, email string) error {
	return m.updateProfileFn(ctx, callerID, targetID, name, email)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler with the given service mocks. Nil mocks
// are fine for tests that never reach the corresponding service.
func newTestHandler(t *testing.T, auth service.AuthService, profile service.ProfileService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService:    auth,
		ProfileService: profile,
	}
	cfg := config.Server{HTTPAddress: ":0", RequestTimeout: time.Second}
	return NewHandler(svcs, cfg, logger.Nop())
}

// formBody encodes form fields as an application/x-www-form-urlencoded body.
func formBody(fields map[string]string) *strings.Reader {
	values := url.Values{}
	for k, v := range fields {
		values.Set(k, v)
	}
	return strings.NewReader(values.Encode())
}

// withFormHeader marks the request body as a URL-encoded form.
func withFormHeader(r *http.Request) *http.Request {
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

// sessionFor attaches a session cookie with the given token.
func sessionFor(r *http.Request, token string) *http.Request {
	r.AddCookie(&http.Cookie{Name: sessionCookie, Value: token})
	return r
}

// ann is a convenience fixture used across multiple tests.
var ann = models.User{
	ID:    "u-ann",
	Name:  "Ann",
	Email: "ann@example.com",
}
