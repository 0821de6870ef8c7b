package renderer

import (
	"net/http"

	"vaccinehub.app/pkg/flashmessages"

	"github.com/gofiber/fiber/v2"
)

// View içinde flash mesajlarının okunduğu anahtarlar
const (
	FlashSuccessKeyView = "Success"
	FlashErrorKeyView   = "Error"
)

// Render view'ı layout ile birlikte render eder. Status verilmezse 200 kullanılır.
func Render(c *fiber.Ctx, view, layout string, data fiber.Map, status ...int) error {
	code := http.StatusOK
	if len(status) > 0 {
		code = status[0]
	}
	if data == nil {
		data = fiber.Map{}
	}
	if _, ok := data["CsrfToken"]; !ok {
		data["CsrfToken"] = c.Locals("csrf")
	}
	data["CurrentPath"] = c.Path()
	if layout == "" {
		return c.Status(code).Render(view, data)
	}
	return c.Status(code).Render(view, data, layout)
}

// SetFlashMessages flash mesajlarını view verisine ekler.
func SetFlashMessages(data fiber.Map, msgs flashmessages.FlashMessages) {
	if msgs.Success != "" {
		data[FlashSuccessKeyView] = msgs.Success
	}
	if msgs.Error != "" {
		data[FlashErrorKeyView] = msgs.Error
	}
}
