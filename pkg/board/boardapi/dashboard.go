package boardapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/talentgate/talentgate/pkg/board/boardsrv"
	"github.com/talentgate/talentgate/pkg/fetch"
)

type DashboardHandlers struct {
	service *boardsrv.DashboardService
}

func NewDashboardHandlers(service *boardsrv.DashboardService) *DashboardHandlers {
	return &DashboardHandlers{service: service}
}

func (h *DashboardHandlers) RegisterRoutes(router fiber.Router, gate *AuthGate) {
	dashboard := router.Group("/dashboard", gate.Authenticate())

	dashboard.Get("/stats", h.Stats)
}

// Stats sirve los agregados del home. Una carga superseded por un refresh
// más nuevo responde 204: el cliente descarta sin mostrar error.
func (h *DashboardHandlers) Stats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.UserContext())
	if err != nil {
		if fetch.Superseded(err) {
			return c.SendStatus(fiber.StatusNoContent)
		}
		return err
	}
	return c.JSON(stats)
}
