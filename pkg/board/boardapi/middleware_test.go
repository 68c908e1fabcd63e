package boardapi

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentgate/talentgate/pkg/board/boardsrv"
	"github.com/talentgate/talentgate/pkg/errx"
	"github.com/talentgate/talentgate/pkg/hrclient"
	"github.com/talentgate/talentgate/pkg/kernel"
	"github.com/talentgate/talentgate/pkg/session"
)

func testApp(t *testing.T, store session.Store) *fiber.App {
	t.Helper()

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := errx.AsError(err); ok {
				return c.Status(e.HTTPStatus).JSON(fiber.Map{"error": e.Message, "code": e.Code})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})

	upstream := hrclient.New("http://localhost:1", time.Second)
	gate := NewAuthGate(boardsrv.NewAuthService(upstream, store, time.Hour))

	api := app.Group("/api/v1")
	api.Get("/open", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	api.Get("/me", gate.Authenticate(), func(c *fiber.Ctx) error {
		principal, _ := PrincipalFrom(c)
		return c.JSON(principal)
	})
	api.Post("/admin-only", gate.Authenticate(), RequireRole(kernel.RoleAdmin, kernel.RoleHRManager),
		func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })

	return app
}

func seedSession(t *testing.T, store session.Store, id string, claims jwt.MapClaims) {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("whatever"))
	require.NoError(t, err)

	require.NoError(t, store.Set(context.Background(), session.Session{
		ID:          id,
		AccessToken: signed,
		ExpiresAt:   time.Now().Add(time.Hour),
		CreatedAt:   time.Now(),
	}))
}

func TestAuthGateRejectsMissingSession(t *testing.T) {
	app := testApp(t, session.NewMemoryStore())

	req := httptest.NewRequest("GET", "/api/v1/me", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthGateRejectsUnknownSession(t *testing.T) {
	app := testApp(t, session.NewMemoryStore())

	req := httptest.NewRequest("GET", "/api/v1/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-session")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthGateAdmitsLiveSession(t *testing.T) {
	store := session.NewMemoryStore()
	seedSession(t, store, "sess-1", jwt.MapClaims{"sub": "acc-1", "roles": []any{"EMPLOYEE"}})
	app := testApp(t, store)

	req := httptest.NewRequest("GET", "/api/v1/me", nil)
	req.Header.Set("Authorization", "Bearer sess-1")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRoleForbidsMissingRole(t *testing.T) {
	store := session.NewMemoryStore()
	seedSession(t, store, "sess-2", jwt.MapClaims{"sub": "acc-2", "roles": []any{"EMPLOYEE"}})
	app := testApp(t, store)

	req := httptest.NewRequest("POST", "/api/v1/admin-only", nil)
	req.Header.Set("Authorization", "Bearer sess-2")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireRoleAdmitsAnyAllowedRole(t *testing.T) {
	store := session.NewMemoryStore()
	seedSession(t, store, "sess-3", jwt.MapClaims{"sub": "acc-3", "roles": []any{"HR_MANAGER"}})
	app := testApp(t, store)

	req := httptest.NewRequest("POST", "/api/v1/admin-only", nil)
	req.Header.Set("Authorization", "Bearer sess-3")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestExpiredSessionIsRejected(t *testing.T) {
	store := session.NewMemoryStore()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "acc-4"})
	signed, err := token.SignedString([]byte("whatever"))
	require.NoError(t, err)

	require.NoError(t, store.Set(context.Background(), session.Session{
		ID:          "sess-old",
		AccessToken: signed,
		ExpiresAt:   time.Now().Add(-time.Minute),
	}))
	app := testApp(t, store)

	req := httptest.NewRequest("GET", "/api/v1/me", nil)
	req.Header.Set("Authorization", "Bearer sess-old")
	resp, err2 := app.Test(req)
	require.NoError(t, err2)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
