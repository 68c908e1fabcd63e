package boardapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/talentgate/talentgate/pkg/board/boardsrv"
	"github.com/talentgate/talentgate/pkg/hr"
	"github.com/talentgate/talentgate/pkg/kernel"
)

type TemplateHandlers struct {
	service *boardsrv.TemplateService
}

func NewTemplateHandlers(service *boardsrv.TemplateService) *TemplateHandlers {
	return &TemplateHandlers{service: service}
}

func (h *TemplateHandlers) RegisterRoutes(router fiber.Router, gate *AuthGate) {
	templates := router.Group("/templates", gate.Authenticate())
	admin := RequireRole(kernel.RoleAdmin, kernel.RoleHRManager)

	templates.Get("/", h.List)
	templates.Get("/:id", h.Get)
	templates.Post("/", admin, h.Create)
	templates.Put("/:id", admin, h.Update)
	templates.Delete("/:id", admin, h.Delete)
	templates.Post("/send", admin, h.Send)
}

func (h *TemplateHandlers) List(c *fiber.Ctx) error {
	var q boardsrv.ListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid query parameters"})
	}

	page, err := h.service.List(c.UserContext(), q)
	if err != nil {
		return err
	}
	return c.JSON(page)
}

func (h *TemplateHandlers) Get(c *fiber.Ctx) error {
	template, err := h.service.Get(c.UserContext(), kernel.TemplateID(c.Params("id")))
	if err != nil {
		return err
	}
	return c.JSON(template)
}

func (h *TemplateHandlers) Create(c *fiber.Ctx) error {
	var req hr.SaveTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	id, err := h.service.Create(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

func (h *TemplateHandlers) Update(c *fiber.Ctx) error {
	var req hr.SaveTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := h.service.Update(c.UserContext(), kernel.TemplateID(c.Params("id")), req); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Template updated"})
}

func (h *TemplateHandlers) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), kernel.TemplateID(c.Params("id"))); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Template deleted"})
}

func (h *TemplateHandlers) Send(c *fiber.Ctx) error {
	var req hr.SendMailRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := h.service.Send(c.UserContext(), req); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Mail sent"})
}
