package handlers

import (
	"errors"
	"fmt"

	"vaccinehub.app/configs/configslog"
	"vaccinehub.app/models"
	"vaccinehub.app/pkg/flashmessages"
	"vaccinehub.app/pkg/renderer"
	"vaccinehub.app/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const appointmentFormPath = "/appointment-form"

// AppointmentFormHandler vatandaşların doldurduğu çok bölümlü randevu formu.
type AppointmentFormHandler struct {
	appointmentService services.IAppointmentService
	vaccineService     services.IVaccineService
}

func NewAppointmentFormHandler() *AppointmentFormHandler {
	return NewAppointmentFormHandlerWithServices(services.NewAppointmentService(), services.NewVaccineService())
}

func NewAppointmentFormHandlerWithServices(appointmentService services.IAppointmentService, vaccineService services.IVaccineService) *AppointmentFormHandler {
	return &AppointmentFormHandler{appointmentService: appointmentService, vaccineService: vaccineService}
}

// ShowForm GET /appointment-form
func (h *AppointmentFormHandler) ShowForm(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)

	vaccines, err := h.vaccineService.ListEnabledVaccines(c.UserContext())
	renderData := fiber.Map{
		"Title":    "Book a Vaccination Appointment",
		"Vaccines": vaccines,
		"FormData": flashmessages.GetFlashFormData(c),
		"Genders":  []string{"male", "female", "other"},
	}
	renderer.SetFlashMessages(renderData, flashData)
	if err != nil {
		renderData["Vaccines"] = []models.Vaccine{}
		renderData[renderer.FlashErrorKeyView] = "Vaccine types could not be loaded."
	}
	return renderer.Render(c, "public/appointment_form", "layouts/public_layout", renderData)
}

// SubmitForm POST /appointment-form
func (h *AppointmentFormHandler) SubmitForm(c *fiber.Ctx) error {
	var req services.CreateAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Invalid form data.")
		return c.Redirect(appointmentFormPath, fiber.StatusSeeOther)
	}

	appointment, err := h.appointmentService.CreateAppointment(c.UserContext(), req)
	if err != nil {
		errMsg := services.ErrAppointmentCreationFailed.Error()
		if errors.Is(err, services.ErrAppInvalidInput) {
			errMsg = err.Error()
		} else if !errors.Is(err, services.ErrAppointmentCreationFailed) {
			configslog.Log.Error("Public - SubmitForm Error", zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
		_ = flashmessages.SetFlashFormData(c, req)
		return c.Redirect(appointmentFormPath, fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey,
		fmt.Sprintf("Appointment booked. Your registration number is %s.", appointment.RegNo))
	return c.Redirect(appointmentFormPath, fiber.StatusFound)
}
