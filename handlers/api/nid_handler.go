package handlers

import (
	"errors"

	"vaccinehub.app/configs/configslog"
	"vaccinehub.app/pkg/nidregistry"
	"vaccinehub.app/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	msgProvideNIDQuery = "Please provide a valid NID number"
	msgProvideNIDBody  = "Please provide a valid NID number in the request body"
	msgNIDDigits       = "NID must be 10, 13, or 17 digits"
)

type nidRequest struct {
	NID string `json:"nid"`
}

// NIDHandler randevu formunun otomatik doldurma için kullandığı NID sorgu uç noktaları.
type NIDHandler struct {
	service services.INIDService
}

func NewNIDHandler() *NIDHandler {
	return NewNIDHandlerWithService(services.NewNIDService())
}

func NewNIDHandlerWithService(service services.INIDService) *NIDHandler {
	return &NIDHandler{service: service}
}

// LookupQuery GET /api/nid?nid=...
func (h *NIDHandler) LookupQuery(c *fiber.Ctx) error {
	return h.lookup(c, c.Query("nid"), msgProvideNIDQuery)
}

// LookupBody POST /api/nid {"nid": "..."}
func (h *NIDHandler) LookupBody(c *fiber.Ctx) error {
	var req nidRequest
	if len(c.Body()) > 0 {
		if err := c.App().Config().JSONDecoder(c.Body(), &req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "Invalid request body",
				"message": msgProvideNIDBody,
			})
		}
	}
	return h.lookup(c, req.NID, msgProvideNIDBody)
}

func (h *NIDHandler) lookup(c *fiber.Ctx, nid, requiredMessage string) error {
	profile, err := h.service.Lookup(c.UserContext(), nid)
	if err != nil {
		switch {
		case errors.Is(err, nidregistry.ErrNIDRequired):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
				"message": requiredMessage,
			})
		case errors.Is(err, nidregistry.ErrInvalidFormat):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
				"message": msgNIDDigits,
			})
		}
		configslog.Log.Error("NID sorgusu başarısız", zap.String("nid", nid), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Internal server error",
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"success": true, "data": profile})
}
