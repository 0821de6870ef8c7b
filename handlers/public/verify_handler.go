package handlers

import (
	"errors"

	"vaccinehub.app/pkg/renderer"
	"vaccinehub.app/services"

	"github.com/gofiber/fiber/v2"
)

type VerifyHandler struct {
	service services.IVaccineService
}

func NewVerifyHandler() *VerifyHandler {
	return NewVerifyHandlerWithService(services.NewVaccineService())
}

func NewVerifyHandlerWithService(service services.IVaccineService) *VerifyHandler {
	return &VerifyHandler{service: service}
}

// ShowVerify GET /verify-vaccine; ?code= verilmişse sonucu da gösterir.
func (h *VerifyHandler) ShowVerify(c *fiber.Ctx) error {
	code := c.Query("code")
	renderData := fiber.Map{
		"Title": "Verify a Vaccine",
		"Code":  code,
	}
	if code == "" {
		return renderer.Render(c, "public/verify_vaccine", "layouts/public_layout", renderData)
	}

	status := fiber.StatusOK
	vaccine, err := h.service.VerifyVaccine(c.UserContext(), code)
	switch {
	case err == nil:
		renderData["Vaccine"] = vaccine
	case errors.Is(err, services.ErrVaccineNotFound):
		status = fiber.StatusNotFound
		renderData[renderer.FlashErrorKeyView] = err.Error()
	case errors.Is(err, services.ErrVaccineCodeRequired):
		status = fiber.StatusBadRequest
		renderData[renderer.FlashErrorKeyView] = err.Error()
	default:
		status = fiber.StatusInternalServerError
		renderData[renderer.FlashErrorKeyView] = services.ErrVaccineVerifyFailed.Error()
	}
	return renderer.Render(c, "public/verify_vaccine", "layouts/public_layout", renderData, status)
}
