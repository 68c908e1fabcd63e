package boardapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/talentgate/talentgate/pkg/board/boardsrv"
	"github.com/talentgate/talentgate/pkg/hr"
	"github.com/talentgate/talentgate/pkg/kernel"
)

type OnboardHandlers struct {
	service *boardsrv.OnboardingService
}

func NewOnboardHandlers(service *boardsrv.OnboardingService) *OnboardHandlers {
	return &OnboardHandlers{service: service}
}

func (h *OnboardHandlers) RegisterRoutes(router fiber.Router, gate *AuthGate) {
	onboards := router.Group("/onboards", gate.Authenticate())
	admin := RequireRole(kernel.RoleAdmin, kernel.RoleHRManager)

	onboards.Get("/", h.List)
	onboards.Get("/:id", h.Get)
	onboards.Post("/", admin, h.Create)
	onboards.Put("/:id/status", admin, h.Transition)
}

func (h *OnboardHandlers) List(c *fiber.Ctx) error {
	var q boardsrv.OnboardQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid query parameters"})
	}

	page, err := h.service.List(c.UserContext(), q)
	if err != nil {
		return err
	}
	return c.JSON(page)
}

func (h *OnboardHandlers) Get(c *fiber.Ctx) error {
	onboard, err := h.service.Get(c.UserContext(), kernel.OnboardID(c.Params("id")))
	if err != nil {
		return err
	}
	return c.JSON(onboard)
}

func (h *OnboardHandlers) Create(c *fiber.Ctx) error {
	var req hr.CreateOnboardRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	id, result, err := h.service.Create(c.UserContext(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":       id,
		"warnings": result.WarningMessages(),
	})
}

func (h *OnboardHandlers) Transition(c *fiber.Ctx) error {
	var req struct {
		Status hr.OnboardStatus `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := h.service.Transition(c.UserContext(), kernel.OnboardID(c.Params("id")), req.Status); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Onboarding status updated"})
}
