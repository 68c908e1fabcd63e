package boardapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/talentgate/talentgate/pkg/board/boardsrv"
	"github.com/talentgate/talentgate/pkg/hr"
	"github.com/talentgate/talentgate/pkg/kernel"
)

type AccountHandlers struct {
	service *boardsrv.AccountService
}

func NewAccountHandlers(service *boardsrv.AccountService) *AccountHandlers {
	return &AccountHandlers{service: service}
}

func (h *AccountHandlers) RegisterRoutes(router fiber.Router, gate *AuthGate) {
	accounts := router.Group("/accounts", gate.Authenticate())
	admin := RequireRole(kernel.RoleAdmin, kernel.RoleHRManager)

	accounts.Get("/", h.Directory)
	accounts.Get("/:id", h.Get)
	accounts.Post("/", admin, h.Create)
	accounts.Put("/:id", admin, h.Update)
	accounts.Delete("/:id", admin, h.Delete)
	accounts.Put("/:id/department", admin, h.AssignDepartment)
}

func (h *AccountHandlers) Directory(c *fiber.Ctx) error {
	var q boardsrv.DirectoryQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid query parameters"})
	}

	page, err := h.service.Directory(c.UserContext(), q)
	if err != nil {
		return err
	}
	return c.JSON(page)
}

func (h *AccountHandlers) Get(c *fiber.Ctx) error {
	account, err := h.service.Get(c.UserContext(), kernel.AccountID(c.Params("id")))
	if err != nil {
		return err
	}
	return c.JSON(account)
}

func (h *AccountHandlers) Create(c *fiber.Ctx) error {
	var req hr.CreateAccountRequest
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

func (h *AccountHandlers) Update(c *fiber.Ctx) error {
	var req hr.UpdateAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := h.service.Update(c.UserContext(), kernel.AccountID(c.Params("id")), req); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Account updated"})
}

func (h *AccountHandlers) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), kernel.AccountID(c.Params("id"))); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Account deleted"})
}

func (h *AccountHandlers) AssignDepartment(c *fiber.Ctx) error {
	var req struct {
		DepartmentID kernel.DepartmentID `json:"departmentId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := h.service.AssignDepartment(c.UserContext(), kernel.AccountID(c.Params("id")), req.DepartmentID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Department assigned"})
}
