package handlers

import (
	"vaccinehub.app/configs/configslog"
	"vaccinehub.app/models"
	"vaccinehub.app/pkg/flashmessages"
	"vaccinehub.app/pkg/queryparams"
	"vaccinehub.app/pkg/renderer"
	"vaccinehub.app/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const staffPath = "/dashboard/staff"

type StaffHandler struct {
	service services.IStaffService
}

func NewStaffHandler() *StaffHandler {
	return NewStaffHandlerWithService(services.NewStaffService())
}

func NewStaffHandlerWithService(service services.IStaffService) *StaffHandler {
	return &StaffHandler{service: service}
}

func (h *StaffHandler) ListStaff(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)
	params := queryparams.DefaultListParams("created_at")
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.DefaultListParams("created_at")
	}
	params.Validate()

	paginatedResult, err := h.service.GetAllStaffPaginated(c.UserContext(), params)
	renderData := fiber.Map{
		"Title":  "Staff",
		"Result": paginatedResult,
		"Params": params,
	}
	renderer.SetFlashMessages(renderData, flashData)
	if err != nil {
		renderData[renderer.FlashErrorKeyView] = "Staff could not be listed."
		renderData["Result"] = &queryparams.PaginatedResult{Data: []models.Staff{}, Meta: queryparams.PaginationMeta{}}
		configslog.Log.Error("Dashboard - ListStaff Error", zap.Error(err))
	}
	return renderer.Render(c, "dashboard/staff/list", "layouts/dashboard_layout", renderData)
}

func (h *StaffHandler) ShowCreateStaff(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)
	renderData := fiber.Map{
		"Title":    "New Staff Member",
		"Roles":    models.StaffRoles,
		"FormData": flashmessages.GetFlashFormData(c),
	}
	renderer.SetFlashMessages(renderData, flashData)
	return renderer.Render(c, "dashboard/staff/create", "layouts/dashboard_layout", renderData)
}

func (h *StaffHandler) CreateStaff(c *fiber.Ctx) error {
	createPath := staffPath + "/create"
	var in services.StaffInput
	if err := c.BodyParser(&in); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Invalid form data.")
		return c.Redirect(createPath, fiber.StatusSeeOther)
	}
	in.IsActive = checkboxValue(c, "is_active")

	if _, err := h.service.CreateStaff(c.UserContext(), in); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		// Şifre form verisine geri yazılmaz
		in.Password = ""
		_ = flashmessages.SetFlashFormData(c, in)
		return c.Redirect(createPath, fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Staff member created.")
	return c.Redirect(staffPath, fiber.StatusFound)
}

// ToggleStaffActive POST /dashboard/staff/toggle/:id
func (h *StaffHandler) ToggleStaffActive(c *fiber.Ctx) error {
	staff, err := h.service.ToggleStaffActive(c.UserContext(), c.Params("id"))
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect(staffPath, fiber.StatusSeeOther)
	}
	msg := "Staff member deactivated."
	if staff.IsActive {
		msg = "Staff member activated."
	}
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, msg)
	return c.Redirect(staffPath, fiber.StatusSeeOther)
}

func (h *StaffHandler) DeleteStaff(c *fiber.Ctx) error {
	if err := h.service.DeleteStaff(c.UserContext(), c.Params("id")); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Staff member deleted.")
	}
	return c.Redirect(staffPath, fiber.StatusSeeOther)
}
