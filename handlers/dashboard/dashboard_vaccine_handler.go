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

const vaccinesPath = "/dashboard/vaccines"

// VaccineHandler aşı envanteri (katalog) yönetimi.
type VaccineHandler struct {
	service services.IVaccineService
}

func NewVaccineHandler() *VaccineHandler {
	return NewVaccineHandlerWithService(services.NewVaccineService())
}

func NewVaccineHandlerWithService(service services.IVaccineService) *VaccineHandler {
	return &VaccineHandler{service: service}
}

func checkboxValue(c *fiber.Ctx, key string) bool {
	v := c.FormValue(key, "false")
	return v == "true" || v == "on"
}

func parseVaccineForm(c *fiber.Ctx) (services.VaccineInput, error) {
	var in services.VaccineInput
	if err := c.BodyParser(&in); err != nil {
		return in, err
	}
	in.IsEnabled = checkboxValue(c, "is_enabled")
	return in, nil
}

func (h *VaccineHandler) ListVaccines(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)
	params := queryparams.DefaultListParams("created_at")
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.DefaultListParams("created_at")
	}
	params.Validate()

	paginatedResult, err := h.service.GetAllVaccinesPaginated(c.UserContext(), params)
	renderData := fiber.Map{
		"Title":  "Inventory",
		"Result": paginatedResult,
		"Params": params,
	}
	renderer.SetFlashMessages(renderData, flashData)
	if err != nil {
		renderData[renderer.FlashErrorKeyView] = "Vaccines could not be listed."
		renderData["Result"] = &queryparams.PaginatedResult{Data: []models.Vaccine{}, Meta: queryparams.PaginationMeta{}}
		configslog.Log.Error("Dashboard - ListVaccines Error", zap.Error(err))
	}
	return renderer.Render(c, "dashboard/vaccines/list", "layouts/dashboard_layout", renderData)
}

func (h *VaccineHandler) ShowCreateVaccine(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)
	renderData := fiber.Map{
		"Title":    "New Vaccine",
		"FormData": flashmessages.GetFlashFormData(c),
	}
	renderer.SetFlashMessages(renderData, flashData)
	return renderer.Render(c, "dashboard/vaccines/create", "layouts/dashboard_layout", renderData)
}

func (h *VaccineHandler) CreateVaccine(c *fiber.Ctx) error {
	createPath := vaccinesPath + "/create"
	in, err := parseVaccineForm(c)
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Invalid form data.")
		return c.Redirect(createPath, fiber.StatusSeeOther)
	}

	if _, err := h.service.CreateVaccine(c.UserContext(), in); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		_ = flashmessages.SetFlashFormData(c, in)
		return c.Redirect(createPath, fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Vaccine created.")
	return c.Redirect(vaccinesPath, fiber.StatusFound)
}

func (h *VaccineHandler) ShowUpdateVaccine(c *fiber.Ctx) error {
	id := c.Params("id")
	vaccine, err := h.service.GetVaccineByID(c.UserContext(), id)
	if err != nil {
		errMsg := "Vaccine not found."
		if !errors.Is(err, services.ErrVaccineNotFound) {
			errMsg = "Vaccine could not be loaded."
			configslog.Log.Error("Dashboard - ShowUpdateVaccine Error", zap.String("id", id), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
		return c.Redirect(vaccinesPath)
	}

	flashData, _ := flashmessages.GetFlashMessages(c)
	renderData := fiber.Map{
		"Title":    "Edit Vaccine",
		"Vaccine":  vaccine,
		"FormData": flashmessages.GetFlashFormData(c),
	}
	renderer.SetFlashMessages(renderData, flashData)
	return renderer.Render(c, "dashboard/vaccines/update", "layouts/dashboard_layout", renderData)
}

func (h *VaccineHandler) UpdateVaccine(c *fiber.Ctx) error {
	id := c.Params("id")
	updatePath := vaccinesPath + "/update/" + id
	in, err := parseVaccineForm(c)
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Invalid form data.")
		return c.Redirect(updatePath, fiber.StatusSeeOther)
	}

	if err := h.service.UpdateVaccine(c.UserContext(), id, in); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		if errors.Is(err, services.ErrVaccineNotFound) {
			return c.Redirect(vaccinesPath, fiber.StatusSeeOther)
		}
		_ = flashmessages.SetFlashFormData(c, in)
		return c.Redirect(updatePath, fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Vaccine updated.")
	return c.Redirect(updatePath, fiber.StatusFound)
}

// DeleteVaccine randevularda kullanılan aşıyı silmez, hatayı flash ile bildirir.
func (h *VaccineHandler) DeleteVaccine(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeleteVaccine(c.UserContext(), id); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Vaccine deleted.")
	}
	return c.Redirect(vaccinesPath, fiber.StatusSeeOther)
}
