package handlers

import (
	"errors"

	"vaccinehub.app/configs/configslog"
	"vaccinehub.app/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AppointmentHandler struct {
	service services.IAppointmentService
}

func NewAppointmentHandler() *AppointmentHandler {
	return NewAppointmentHandlerWithService(services.NewAppointmentService())
}

func NewAppointmentHandlerWithService(service services.IAppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

// CreateAppointment POST /api/appointments. JSON veya form gövdesi kabul eder.
func (h *AppointmentHandler) CreateAppointment(c *fiber.Ctx) error {
	var req services.CreateAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	appointment, err := h.service.CreateAppointment(c.UserContext(), req)
	if err != nil {
		if errors.Is(err, services.ErrAppInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
		}
		if !errors.Is(err, services.ErrAppointmentCreationFailed) {
			configslog.Log.Error("API - CreateAppointment Error", zap.Error(err))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   services.ErrAppointmentCreationFailed.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"error":   nil,
		"regNo":   appointment.RegNo,
	})
}
