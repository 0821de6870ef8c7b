package handlers

import (
	"errors"

	"vaccinehub.app/services"

	"github.com/gofiber/fiber/v2"
)

type verifyRequest struct {
	Code string `json:"code" form:"code"`
}

type vaccineOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

type VaccineHandler struct {
	service services.IVaccineService
}

func NewVaccineHandler() *VaccineHandler {
	return NewVaccineHandlerWithService(services.NewVaccineService())
}

func NewVaccineHandlerWithService(service services.IVaccineService) *VaccineHandler {
	return &VaccineHandler{service: service}
}

// VerifyQuery GET /api/vaccines/verify?code=...
func (h *VaccineHandler) VerifyQuery(c *fiber.Ctx) error {
	return h.verify(c, c.Query("code"))
}

// VerifyBody POST /api/vaccines/verify {"code": "..."}
func (h *VaccineHandler) VerifyBody(c *fiber.Ctx) error {
	var req verifyRequest
	if len(c.Body()) > 0 {
		if err := c.App().Config().JSONDecoder(c.Body(), &req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body", "vaccine": nil})
		}
	}
	return h.verify(c, req.Code)
}

func (h *VaccineHandler) verify(c *fiber.Ctx, code string) error {
	vaccine, err := h.service.VerifyVaccine(c.UserContext(), code)
	if err != nil {
		status := fiber.StatusInternalServerError
		msg := services.ErrVaccineVerifyFailed.Error()
		switch {
		case errors.Is(err, services.ErrVaccineCodeRequired):
			status, msg = fiber.StatusBadRequest, err.Error()
		case errors.Is(err, services.ErrVaccineNotFound):
			status, msg = fiber.StatusNotFound, err.Error()
		}
		return c.Status(status).JSON(fiber.Map{"error": msg, "vaccine": nil})
	}
	return c.JSON(fiber.Map{"error": nil, "vaccine": vaccine})
}

// ListEnabled GET /api/vaccines. Formdaki aşı türü seçenekleri.
func (h *VaccineHandler) ListEnabled(c *fiber.Ctx) error {
	vaccines, err := h.service.ListEnabledVaccines(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load vaccines", "data": []vaccineOption{}})
	}
	options := make([]vaccineOption, 0, len(vaccines))
	for _, v := range vaccines {
		options = append(options, vaccineOption{ID: v.ID, Name: v.Name, Code: v.Code})
	}
	return c.JSON(fiber.Map{"data": options})
}
