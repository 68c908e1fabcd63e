package boardapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/talentgate/talentgate/pkg/board/boardsrv"
	"github.com/talentgate/talentgate/pkg/hr"
	"github.com/talentgate/talentgate/pkg/kernel"
)

type InterviewHandlers struct {
	service *boardsrv.InterviewService
}

func NewInterviewHandlers(service *boardsrv.InterviewService) *InterviewHandlers {
	return &InterviewHandlers{service: service}
}

func (h *InterviewHandlers) RegisterRoutes(router fiber.Router, gate *AuthGate) {
	interviews := router.Group("/interviews", gate.Authenticate())
	admin := RequireRole(kernel.RoleAdmin, kernel.RoleHRManager)
	staff := RequireRole(kernel.RoleAdmin, kernel.RoleHRManager, kernel.RoleRecruiter, kernel.RoleInterviewer)

	interviews.Get("/processes", h.ListProcesses)
	interviews.Get("/processes/:id", h.GetProcess)
	interviews.Post("/processes", admin, h.CreateProcess)
	interviews.Delete("/processes/:id", admin, h.DeleteProcess)

	interviews.Get("/schedules", h.Schedules)
	interviews.Post("/schedules", staff, h.Book)
	interviews.Get("/schedules/:id/outcome", h.Outcome)
	interviews.Post("/schedules/:id/outcome", staff, h.RecordOutcome)
}

func (h *InterviewHandlers) ListProcesses(c *fiber.Ctx) error {
	processes, err := h.service.ListProcesses(c.UserContext(), kernel.DepartmentID(c.Query("departmentId")))
	if err != nil {
		return err
	}
	return c.JSON(processes)
}

func (h *InterviewHandlers) GetProcess(c *fiber.Ctx) error {
	process, err := h.service.GetProcess(c.UserContext(), kernel.ProcessID(c.Params("id")))
	if err != nil {
		return err
	}
	return c.JSON(process)
}

func (h *InterviewHandlers) CreateProcess(c *fiber.Ctx) error {
	var req hr.CreateProcessRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	id, err := h.service.CreateProcess(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

func (h *InterviewHandlers) DeleteProcess(c *fiber.Ctx) error {
	if err := h.service.DeleteProcess(c.UserContext(), kernel.ProcessID(c.Params("id"))); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Interview process deleted"})
}

func (h *InterviewHandlers) Schedules(c *fiber.Ctx) error {
	applicantID := kernel.ApplicantID(c.Query("applicantId"))
	if applicantID.IsZero() {
		return hr.ErrScheduleInvalid().WithDetail("applicantId", "required")
	}

	schedules, err := h.service.Schedules(c.UserContext(), applicantID)
	if err != nil {
		return err
	}
	return c.JSON(schedules)
}

func (h *InterviewHandlers) Book(c *fiber.Ctx) error {
	var req hr.BookScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	id, err := h.service.Book(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

func (h *InterviewHandlers) Outcome(c *fiber.Ctx) error {
	outcome, err := h.service.Outcome(c.UserContext(), kernel.ScheduleID(c.Params("id")))
	if err != nil {
		return err
	}
	return c.JSON(outcome)
}

func (h *InterviewHandlers) RecordOutcome(c *fiber.Ctx) error {
	var req hr.RecordOutcomeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := h.service.RecordOutcome(c.UserContext(), kernel.ScheduleID(c.Params("id")), req); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Outcome recorded"})
}
