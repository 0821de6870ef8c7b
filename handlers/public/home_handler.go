package handlers

import (
	"vaccinehub.app/pkg/renderer"

	"github.com/gofiber/fiber/v2"
)

type HomeHandler struct{}

func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// HomePage randevu formuna ve aşı doğrulama sayfasına bağlantı veren açılış sayfası.
func (h *HomeHandler) HomePage(c *fiber.Ctx) error {
	return renderer.Render(c, "public/home", "layouts/public_layout", fiber.Map{
		"Title": "VaccineHub",
	})
}
