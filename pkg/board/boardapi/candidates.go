package boardapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/talentgate/talentgate/pkg/board/boardsrv"
	"github.com/talentgate/talentgate/pkg/hr"
	"github.com/talentgate/talentgate/pkg/kernel"
)

type CandidateHandlers struct {
	service *boardsrv.CandidateService
}

func NewCandidateHandlers(service *boardsrv.CandidateService) *CandidateHandlers {
	return &CandidateHandlers{service: service}
}

func (h *CandidateHandlers) RegisterRoutes(router fiber.Router, gate *AuthGate) {
	candidates := router.Group("/candidates", gate.Authenticate())
	recruiter := RequireRole(kernel.RoleAdmin, kernel.RoleHRManager, kernel.RoleRecruiter)

	candidates.Get("/", h.List)
	candidates.Get("/:id", h.Get)
	candidates.Post("/", recruiter, h.Create)
	candidates.Put("/:id/status", recruiter, h.ChangeStatus)
	candidates.Get("/:id/pipeline", h.Pipeline)
}

func (h *CandidateHandlers) List(c *fiber.Ctx) error {
	// 0 es Pending, así que el "sin filtro" es -1
	q := boardsrv.CandidateQuery{Status: -1}
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid query parameters"})
	}

	page, err := h.service.List(c.UserContext(), q)
	if err != nil {
		return err
	}
	return c.JSON(page)
}

func (h *CandidateHandlers) Get(c *fiber.Ctx) error {
	applicant, err := h.service.Get(c.UserContext(), kernel.ApplicantID(c.Params("id")))
	if err != nil {
		return err
	}
	return c.JSON(applicant)
}

func (h *CandidateHandlers) Create(c *fiber.Ctx) error {
	var req hr.CreateApplicantRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	id, err := h.service.Create(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

func (h *CandidateHandlers) ChangeStatus(c *fiber.Ctx) error {
	var req hr.ChangeApplicantStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := h.service.ChangeStatus(c.UserContext(), kernel.ApplicantID(c.Params("id")), req.Status); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Status updated"})
}

func (h *CandidateHandlers) Pipeline(c *fiber.Ctx) error {
	view, err := h.service.Pipeline(c.UserContext(), kernel.ApplicantID(c.Params("id")))
	if err != nil {
		return err
	}
	return c.JSON(view)
}
