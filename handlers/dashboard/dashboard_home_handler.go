package handlers

import (
	"vaccinehub.app/configs/configslog"
	"vaccinehub.app/pkg/flashmessages"
	"vaccinehub.app/pkg/renderer"
	"vaccinehub.app/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type HomeHandler struct {
	appointmentService services.IAppointmentService
}

func NewHomeHandler() *HomeHandler {
	return NewHomeHandlerWithService(services.NewAppointmentService())
}

func NewHomeHandlerWithService(appointmentService services.IAppointmentService) *HomeHandler {
	return &HomeHandler{appointmentService: appointmentService}
}

// HomePage randevu, envanter ve personel sayaçlarını gösterir.
func (h *HomeHandler) HomePage(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)
	counts, err := h.appointmentService.GetDashboardCounts(c.UserContext())

	renderData := fiber.Map{
		"Title":  "Dashboard",
		"Counts": counts,
	}
	renderer.SetFlashMessages(renderData, flashData)
	if err != nil {
		configslog.Log.Error("Dashboard - HomePage Error", zap.Error(err))
		renderData["Counts"] = &services.DashboardCounts{}
		renderData[renderer.FlashErrorKeyView] = "Dashboard counts could not be loaded."
	}
	return renderer.Render(c, "dashboard/home", "layouts/dashboard_layout", renderData)
}
