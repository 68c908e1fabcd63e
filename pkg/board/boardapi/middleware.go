// Package boardapi expone el dashboard por HTTP: handlers fiber por recurso,
// autenticación por sesión opaca y gating de roles sobre los claims
// decodificados del token.
package boardapi

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/talentgate/talentgate/pkg/board/boardsrv"
	"github.com/talentgate/talentgate/pkg/errx"
	"github.com/talentgate/talentgate/pkg/hrclient"
	"github.com/talentgate/talentgate/pkg/kernel"
	"github.com/talentgate/talentgate/pkg/session"
)

const (
	localsSession   = "tg_session"
	localsPrincipal = "tg_principal"
)

var gateErrors = errx.NewRegistry("GATE")

var (
	CodeUnauthenticated = gateErrors.Register("UNAUTHENTICATED", errx.TypeAuthentication, http.StatusUnauthorized, "Sign in required")
	CodeForbidden       = gateErrors.Register("FORBIDDEN", errx.TypeAuthorization, http.StatusForbidden, "Insufficient role for this action")
)

// AuthGate resuelve el ID de sesión del header Authorization contra el
// session store y deja la sesión, el principal y el token upstream listos
// para los handlers
type AuthGate struct {
	auth *boardsrv.AuthService
}

func NewAuthGate(auth *boardsrv.AuthService) *AuthGate {
	return &AuthGate{auth: auth}
}

// Authenticate corta con 401 si no hay sesión viva detrás del bearer
func (g *AuthGate) Authenticate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := bearerToken(c)
		if sessionID == "" {
			return gateErrors.New(CodeUnauthenticated).WithDetail("hint", "sign in at /api/v1/auth/sign-in")
		}

		sess, principal, err := g.auth.Resolve(c.UserContext(), sessionID)
		if err != nil {
			return err
		}

		c.Locals(localsSession, sess)
		c.Locals(localsPrincipal, principal)
		c.SetUserContext(hrclient.WithToken(c.UserContext(), sess.AccessToken))
		return c.Next()
	}
}

// RequireRole corta con 403 salvo que el principal tenga alguno de los roles.
// Es gating de vista: el backend re-verifica cada operación con el token
// real, así que un claim adulterado no habilita nada en el upstream.
func RequireRole(roles ...kernel.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFrom(c)
		if !ok {
			return gateErrors.New(CodeUnauthenticated)
		}
		if !principal.Roles.Intersects(roles...) {
			return gateErrors.New(CodeForbidden).WithDetail("required", roles)
		}
		return c.Next()
	}
}

// PrincipalFrom saca el principal que dejó el AuthGate
func PrincipalFrom(c *fiber.Ctx) (*kernel.Principal, bool) {
	principal, ok := c.Locals(localsPrincipal).(*kernel.Principal)
	return principal, ok
}

// SessionFrom saca la sesión que dejó el AuthGate
func SessionFrom(c *fiber.Ctx) (*session.Session, bool) {
	sess, ok := c.Locals(localsSession).(*session.Session)
	return sess, ok
}

func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return ""
}
