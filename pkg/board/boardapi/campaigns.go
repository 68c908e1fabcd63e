package boardapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/talentgate/talentgate/pkg/board/boardsrv"
	"github.com/talentgate/talentgate/pkg/hr"
	"github.com/talentgate/talentgate/pkg/kernel"
)

type CampaignHandlers struct {
	service *boardsrv.CampaignService
}

func NewCampaignHandlers(service *boardsrv.CampaignService) *CampaignHandlers {
	return &CampaignHandlers{service: service}
}

func (h *CampaignHandlers) RegisterRoutes(router fiber.Router, gate *AuthGate) {
	campaigns := router.Group("/campaigns", gate.Authenticate())
	admin := RequireRole(kernel.RoleAdmin, kernel.RoleHRManager)

	campaigns.Get("/", h.List)
	campaigns.Get("/:id", h.Get)
	campaigns.Post("/", admin, h.Create)
	campaigns.Put("/:id", admin, h.Update)
	campaigns.Delete("/:id", admin, h.Delete)
	campaigns.Get("/:id/positions", h.Positions)
	campaigns.Post("/:id/positions", admin, h.AddPosition)
}

func (h *CampaignHandlers) List(c *fiber.Ctx) error {
	var q boardsrv.CampaignQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid query parameters"})
	}

	page, err := h.service.List(c.UserContext(), q)
	if err != nil {
		return err
	}
	return c.JSON(page)
}

func (h *CampaignHandlers) Get(c *fiber.Ctx) error {
	view, err := h.service.Get(c.UserContext(), kernel.CampaignID(c.Params("id")))
	if err != nil {
		return err
	}
	return c.JSON(view)
}

func (h *CampaignHandlers) Create(c *fiber.Ctx) error {
	var req hr.CreateCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	id, err := h.service.Create(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

func (h *CampaignHandlers) Update(c *fiber.Ctx) error {
	var req hr.CreateCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := h.service.Update(c.UserContext(), kernel.CampaignID(c.Params("id")), req); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Campaign updated"})
}

func (h *CampaignHandlers) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), kernel.CampaignID(c.Params("id"))); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Campaign deleted"})
}

func (h *CampaignHandlers) Positions(c *fiber.Ctx) error {
	positions, err := h.service.Positions(c.UserContext(), kernel.CampaignID(c.Params("id")))
	if err != nil {
		return err
	}
	return c.JSON(positions)
}

func (h *CampaignHandlers) AddPosition(c *fiber.Ctx) error {
	var req hr.CreatePositionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	id, err := h.service.AddPosition(c.UserContext(), kernel.CampaignID(c.Params("id")), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}
