package boardapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/talentgate/talentgate/pkg/board/boardsrv"
	"github.com/talentgate/talentgate/pkg/hr"
	"github.com/talentgate/talentgate/pkg/kernel"
)

type DepartmentHandlers struct {
	service *boardsrv.DepartmentService
}

func NewDepartmentHandlers(service *boardsrv.DepartmentService) *DepartmentHandlers {
	return &DepartmentHandlers{service: service}
}

func (h *DepartmentHandlers) RegisterRoutes(router fiber.Router, gate *AuthGate) {
	departments := router.Group("/departments", gate.Authenticate())
	admin := RequireRole(kernel.RoleAdmin, kernel.RoleHRManager)

	departments.Get("/", h.List)
	departments.Get("/:id", h.Get)
	departments.Post("/", admin, h.Create)
	departments.Put("/:id", admin, h.Update)
	departments.Delete("/:id", admin, h.Delete)
}

func (h *DepartmentHandlers) List(c *fiber.Ctx) error {
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

func (h *DepartmentHandlers) Get(c *fiber.Ctx) error {
	department, err := h.service.Get(c.UserContext(), kernel.DepartmentID(c.Params("id")))
	if err != nil {
		return err
	}
	return c.JSON(department)
}

func (h *DepartmentHandlers) Create(c *fiber.Ctx) error {
	var req hr.CreateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	id, err := h.service.Create(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

func (h *DepartmentHandlers) Update(c *fiber.Ctx) error {
	var req hr.UpdateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := h.service.Update(c.UserContext(), kernel.DepartmentID(c.Params("id")), req); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Department updated"})
}

func (h *DepartmentHandlers) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), kernel.DepartmentID(c.Params("id"))); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Department deleted"})
}
