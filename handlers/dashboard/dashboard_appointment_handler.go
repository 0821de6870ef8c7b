package handlers

import (
	"errors"

	"vaccinehub.app/configs/configslog"
	"vaccinehub.app/models"
	"vaccinehub.app/pkg/flashmessages"
	"vaccinehub.app/pkg/queryparams"
	"vaccinehub.app/pkg/renderer"
	"vaccinehub.app/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const appointmentsPath = "/dashboard/appointments"

// AppointmentHandler personelin randevuları yönettiği ekranlar.
type AppointmentHandler struct {
	service services.IAppointmentService
}

func NewAppointmentHandler() *AppointmentHandler {
	return NewAppointmentHandlerWithService(services.NewAppointmentService())
}

func NewAppointmentHandlerWithService(service services.IAppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

// ListAppointments kayıt numarası / hasta adı araması ve durum filtresiyle listeler.
func (h *AppointmentHandler) ListAppointments(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)
	params := queryparams.DefaultListParams("created_at")
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.DefaultListParams("created_at")
	}
	params.Validate()

	paginatedResult, err := h.service.GetAllAppointmentsPaginated(c.UserContext(), params)

	renderData := fiber.Map{
		"Title":    "Appointments",
		"Result":   paginatedResult,
		"Params":   params,
		"Statuses": models.AppointmentStatuses,
	}
	renderer.SetFlashMessages(renderData, flashData)

	if err != nil {
		renderData[renderer.FlashErrorKeyView] = "Appointments could not be listed."
		renderData["Result"] = &queryparams.PaginatedResult{Data: []models.Appointment{}, Meta: queryparams.PaginationMeta{}}
		configslog.Log.Error("Dashboard - ListAppointments Error", zap.Error(err))
	}
	return renderer.Render(c, "dashboard/appointments/list", "layouts/dashboard_layout", renderData)
}

// ShowAppointment randevuyu hasta ve aşı bilgisiyle gösterir.
func (h *AppointmentHandler) ShowAppointment(c *fiber.Ctx) error {
	id := c.Params("id")
	appointment, err := h.service.GetAppointmentByID(c.UserContext(), id)
	if err != nil {
		errMsg := "Appointment not found."
		if !errors.Is(err, services.ErrAppointmentNotFound) {
			errMsg = "Appointment could not be loaded."
			configslog.Log.Error("Dashboard - ShowAppointment Error", zap.String("id", id), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
		return c.Redirect(appointmentsPath)
	}

	flashData, _ := flashmessages.GetFlashMessages(c)
	renderData := fiber.Map{
		"Title":       "Appointment " + appointment.RegNo,
		"Appointment": appointment,
		"Statuses":    models.AppointmentStatuses,
	}
	renderer.SetFlashMessages(renderData, flashData)
	return renderer.Render(c, "dashboard/appointments/show", "layouts/dashboard_layout", renderData)
}

// UpdateAppointmentStatus POST /dashboard/appointments/update/:id
func (h *AppointmentHandler) UpdateAppointmentStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	showPath := appointmentsPath + "/" + id
	status := models.AppointmentStatus(c.FormValue("status"))

	if err := h.service.UpdateAppointmentStatus(c.UserContext(), id, status); err != nil {
		if errors.Is(err, services.ErrAppointmentNotFound) {
			_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
			return c.Redirect(appointmentsPath, fiber.StatusSeeOther)
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect(showPath, fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Appointment status updated.")
	return c.Redirect(showPath, fiber.StatusFound)
}

// DeleteAppointment randevuyu soft delete ile siler.
func (h *AppointmentHandler) DeleteAppointment(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeleteAppointment(c.UserContext(), id); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Appointment deleted.")
	}
	return c.Redirect(appointmentsPath, fiber.StatusSeeOther)
}
