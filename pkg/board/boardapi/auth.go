package boardapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/talentgate/talentgate/pkg/board/boardsrv"
	"github.com/talentgate/talentgate/pkg/hrclient"
)

type AuthHandlers struct {
	service *boardsrv.AuthService
}

func NewAuthHandlers(service *boardsrv.AuthService) *AuthHandlers {
	return &AuthHandlers{service: service}
}

func (h *AuthHandlers) RegisterRoutes(router fiber.Router, gate *AuthGate) {
	auth := router.Group("/auth")

	auth.Post("/sign-in", h.SignIn)
	auth.Post("/sign-up", h.SignUp)
	auth.Post("/verify-email", h.VerifyEmail)
	auth.Post("/forgot-password", h.ForgotPassword)
	auth.Post("/reset-password", h.ResetPassword)
	auth.Post("/sign-out", gate.Authenticate(), h.SignOut)
	auth.Put("/password", gate.Authenticate(), h.ChangePassword)
	auth.Get("/me", gate.Authenticate(), h.Me)
}

func (h *AuthHandlers) SignIn(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	result, err := h.service.SignIn(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(result)
}

func (h *AuthHandlers) SignUp(c *fiber.Ctx) error {
	var req hrclient.SignUpRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := h.service.SignUp(c.UserContext(), req); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Account registered, check your email for the verification code"})
}

func (h *AuthHandlers) VerifyEmail(c *fiber.Ctx) error {
	var req hrclient.VerifyEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := h.service.VerifyEmail(c.UserContext(), req); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Email verified"})
}

func (h *AuthHandlers) ForgotPassword(c *fiber.Ctx) error {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := h.service.RequestPasswordReset(c.UserContext(), req.Email); err != nil {
		return err
	}
	// Misma respuesta exista o no la cuenta
	return c.JSON(fiber.Map{"message": "If the account exists, a reset email was sent"})
}

func (h *AuthHandlers) ResetPassword(c *fiber.Ctx) error {
	var req hrclient.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := h.service.ResetPassword(c.UserContext(), req); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Password reset"})
}

func (h *AuthHandlers) ChangePassword(c *fiber.Ctx) error {
	sess, ok := SessionFrom(c)
	if !ok {
		return gateErrors.New(CodeUnauthenticated)
	}

	var req hrclient.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := h.service.ChangePassword(c.UserContext(), sess.ID, req); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Password changed, sign in again"})
}

func (h *AuthHandlers) SignOut(c *fiber.Ctx) error {
	sess, ok := SessionFrom(c)
	if !ok {
		return gateErrors.New(CodeUnauthenticated)
	}

	if err := h.service.SignOut(c.UserContext(), sess.ID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Signed out"})
}

// Me devuelve el principal decodificado del token de la sesión
func (h *AuthHandlers) Me(c *fiber.Ctx) error {
	principal, ok := PrincipalFrom(c)
	if !ok {
		return gateErrors.New(CodeUnauthenticated)
	}
	return c.JSON(principal)
}
