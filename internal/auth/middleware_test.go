package auth_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/bistro-service/internal/api/http"
	"github.com/spec-kit/bistro-service/internal/auth"
	"github.com/spec-kit/bistro-service/internal/domain"
	"github.com/spec-kit/bistro-service/internal/observability"
)

type MockUserRepo struct{ mock.Mock }

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if v := args.Get(0); v != nil {
		return v.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockUserRepo) UpdateRole(ctx context.Context, id string, role domain.Role) (int64, error) {
	args := m.Called(ctx, id, role)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockUserRepo) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func newTestApp(t *testing.T, users *MockUserRepo) (*fiber.App, *auth.TokenManager) {
	t.Helper()

	tokens := auth.NewTokenManager("test-secret", 60)
	mw := auth.NewMiddleware(tokens, users)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 0)

	app.Get("/guarded", mw.RequireAuth, func(c *fiber.Ctx) error {
		claims, _ := auth.ClaimsFromContext(c)
		return c.JSON(fiber.Map{"email": claims.Email})
	})
	app.Post("/admin-only", mw.RequireAuth, mw.RequireAdmin, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	app.Get("/self/:email", mw.RequireAuth, func(c *fiber.Ctx) error {
		if err := auth.RequireSelf(c, c.Params("email")); err != nil {
			return err
		}
		return c.JSON(fiber.Map{"ok": true})
	})

	return app, tokens
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string) (int, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	body := map[string]any{}
	_ = json.Unmarshal(raw, &body)
	return resp.StatusCode, body
}

func TestRequireAuthMissingToken(t *testing.T) {
	users := &MockUserRepo{}
	app, _ := newTestApp(t, users)

	status, body := doRequest(t, app, http.MethodGet, "/guarded", "")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "unauthorized access", body["message"])
	// authorization failures short-circuit before any persistence call
	users.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
}

func TestRequireAuthGarbageToken(t *testing.T) {
	users := &MockUserRepo{}
	app, _ := newTestApp(t, users)

	status, body := doRequest(t, app, http.MethodGet, "/guarded", "garbage")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "unauthorized access", body["message"])
}

func TestRequireAuthValidToken(t *testing.T) {
	users := &MockUserRepo{}
	app, tokens := newTestApp(t, users)

	token, _, err := tokens.Generate("alice@example.com")
	require.NoError(t, err)

	status, body := doRequest(t, app, http.MethodGet, "/guarded", token)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "alice@example.com", body["email"])
}

func TestRequireAdminForbidsRegularUser(t *testing.T) {
	users := &MockUserRepo{}
	users.On("GetByEmail", mock.Anything, "bob@example.com").
		Return(&domain.User{Email: "bob@example.com", Role: domain.RoleRegular}, nil)
	app, tokens := newTestApp(t, users)

	token, _, err := tokens.Generate("bob@example.com")
	require.NoError(t, err)

	status, body := doRequest(t, app, http.MethodPost, "/admin-only", token)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "forbidden access", body["message"])
}

func TestRequireAdminForbidsUnknownUser(t *testing.T) {
	users := &MockUserRepo{}
	users.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, pgx.ErrNoRows)
	app, tokens := newTestApp(t, users)

	token, _, err := tokens.Generate("ghost@example.com")
	require.NoError(t, err)

	status, _ := doRequest(t, app, http.MethodPost, "/admin-only", token)
	assert.Equal(t, http.StatusForbidden, status)
}

func TestRequireAdminResolvesRoleFromStore(t *testing.T) {
	// The role is re-read on every call: a promotion takes effect for
	// the same token, with no re-login.
	users := &MockUserRepo{}
	users.On("GetByEmail", mock.Anything, "carol@example.com").
		Return(&domain.User{Email: "carol@example.com", Role: domain.RoleRegular}, nil).Once()
	users.On("GetByEmail", mock.Anything, "carol@example.com").
		Return(&domain.User{Email: "carol@example.com", Role: domain.RoleAdmin}, nil)
	app, tokens := newTestApp(t, users)

	token, _, err := tokens.Generate("carol@example.com")
	require.NoError(t, err)

	status, _ := doRequest(t, app, http.MethodPost, "/admin-only", token)
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = doRequest(t, app, http.MethodPost, "/admin-only", token)
	assert.Equal(t, http.StatusOK, status)
}

func TestRequireSelfRejectsOtherEmail(t *testing.T) {
	users := &MockUserRepo{}
	app, tokens := newTestApp(t, users)

	token, _, err := tokens.Generate("alice@example.com")
	require.NoError(t, err)

	status, body := doRequest(t, app, http.MethodGet, "/self/bob@example.com", token)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "forbidden access", body["message"])

	status, _ = doRequest(t, app, http.MethodGet, "/self/alice@example.com", token)
	assert.Equal(t, http.StatusOK, status)
}
