package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"vaccinehub.app/configs"
	"vaccinehub.app/database/testdb"
	"vaccinehub.app/models"
	"vaccinehub.app/services"
	"vaccinehub.app/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := testdb.Open(t)

	app := fiber.New(fiber.Config{Views: html.New("../../views", ".html")})
	store := configs.SetupSession()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(utils.SessionStoreKey, store)
		return c.Next()
	})

	appointmentService := services.NewAppointmentServiceWithDB(db)
	home := NewHomeHandlerWithService(appointmentService)
	appointments := NewAppointmentHandlerWithService(appointmentService)
	vaccines := NewVaccineHandlerWithService(services.NewVaccineServiceWithDB(db))
	staff := NewStaffHandlerWithService(services.NewStaffServiceWithDB(db))

	g := app.Group("/dashboard")
	g.Get("/", home.HomePage)
	g.Get("/appointments", appointments.ListAppointments)
	g.Get("/appointments/:id", appointments.ShowAppointment)
	g.Post("/appointments/update/:id", appointments.UpdateAppointmentStatus)
	g.Post("/appointments/delete/:id", appointments.DeleteAppointment)
	g.Get("/vaccines", vaccines.ListVaccines)
	g.Get("/vaccines/create", vaccines.ShowCreateVaccine)
	g.Post("/vaccines/create", vaccines.CreateVaccine)
	g.Get("/vaccines/update/:id", vaccines.ShowUpdateVaccine)
	g.Post("/vaccines/update/:id", vaccines.UpdateVaccine)
	g.Post("/vaccines/delete/:id", vaccines.DeleteVaccine)
	g.Get("/staff", staff.ListStaff)
	g.Get("/staff/create", staff.ShowCreateStaff)
	g.Post("/staff/create", staff.CreateStaff)
	g.Post("/staff/toggle/:id", staff.ToggleStaffActive)
	g.Post("/staff/delete/:id", staff.DeleteStaff)
	return app, db
}

func get(t *testing.T, app *fiber.App, target string, cookies ...*http.Cookie) (*http.Response, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func postForm(t *testing.T, app *fiber.App, target string, form url.Values) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", fiber.MIMEApplicationForm)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func bookAppointment(t *testing.T, db *gorm.DB) (*models.Vaccine, *models.Appointment) {
	t.Helper()
	vaccine := &models.Vaccine{Code: models.VaccineCodeCovid19, Name: "COVID-19", DosesRequired: 2, IsEnabled: true}
	require.NoError(t, db.Create(vaccine).Error)

	appointment, err := services.NewAppointmentServiceWithDB(db).CreateAppointment(context.Background(), services.CreateAppointmentRequest{
		Name: "Fatima Hossain", DOB: "1990-01-31", Gender: "female",
		FathersName: "Karim Hossain", MothersName: "Nasrin Akter",
		Email: "fatima@example.com", Phone: "01712345678",
		AddressLine1: "House 1, Road 2", City: "Dhaka", State: "Dhaka", Zip: "1212", Country: "Bangladesh",
		VaccinationType: vaccine.ID, NationalID: "12345678901234567",
	})
	require.NoError(t, err)
	return vaccine, appointment
}

func TestDashboardHome(t *testing.T) {
	app, db := newTestApp(t)
	bookAppointment(t, db)

	resp, body := get(t, app, "/dashboard/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "<strong>1</strong> appointments")
	assert.Contains(t, body, "<strong>1</strong> pending")
	assert.Contains(t, body, "<strong>0</strong> staff members")
}

func TestAppointmentsListShowAndStatus(t *testing.T) {
	app, db := newTestApp(t)
	_, appointment := bookAppointment(t, db)

	_, body := get(t, app, "/dashboard/appointments?name=fatima")
	assert.Contains(t, body, appointment.RegNo)
	assert.Contains(t, body, "Fatima Hossain")

	_, body = get(t, app, "/dashboard/appointments?status=completed")
	assert.Contains(t, body, "No appointments found.")

	resp, body := get(t, app, "/dashboard/appointments/"+appointment.ID)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "12345678901234567")
	assert.Contains(t, body, "Birth certificate")

	resp = postForm(t, app, "/dashboard/appointments/update/"+appointment.ID, url.Values{"status": {"confirmed"}})
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	_, body = get(t, app, resp.Header.Get("Location"), resp.Cookies()...)
	assert.Contains(t, body, "Appointment status updated.")

	resp = postForm(t, app, "/dashboard/appointments/update/"+appointment.ID, url.Values{"status": {"lost"}})
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	_, body = get(t, app, resp.Header.Get("Location"), resp.Cookies()...)
	assert.Contains(t, body, "Invalid appointment status")

	resp = postForm(t, app, "/dashboard/appointments/delete/"+appointment.ID, nil)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	_, body = get(t, app, "/dashboard/appointments", resp.Cookies()...)
	assert.Contains(t, body, "Appointment deleted.")
	assert.NotContains(t, body, appointment.RegNo)
}

func TestVaccineInventory(t *testing.T) {
	app, db := newTestApp(t)

	resp := postForm(t, app, "/dashboard/vaccines/create", url.Values{
		"code": {"HEPB"}, "name": {"Hepatitis B"}, "doses_required": {"3"}, "stock_quantity": {"25"}, "is_enabled": {"on"},
	})
	assert.Equal(t, http.StatusFound, resp.StatusCode)

	var vaccine models.Vaccine
	require.NoError(t, db.Where("code = ?", "HEPB").First(&vaccine).Error)
	assert.True(t, vaccine.IsEnabled)
	assert.Equal(t, 3, vaccine.DosesRequired)

	resp = postForm(t, app, "/dashboard/vaccines/update/"+vaccine.ID, url.Values{
		"code": {"HEPB"}, "name": {"Hepatitis B"}, "doses_required": {"3"}, "stock_quantity": {"10"},
	})
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	require.NoError(t, db.First(&vaccine, "id = ?", vaccine.ID).Error)
	assert.False(t, vaccine.IsEnabled)
	assert.Equal(t, 10, vaccine.StockQuantity)

	resp = postForm(t, app, "/dashboard/vaccines/create", url.Values{"name": {"No code"}, "doses_required": {"1"}})
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	_, body := get(t, app, "/dashboard/vaccines/create", resp.Cookies()...)
	assert.Contains(t, body, "Vaccine code is required")
	assert.Contains(t, body, `value="No code"`)

	_, body = get(t, app, "/dashboard/vaccines?name=hepat")
	assert.Contains(t, body, "Hepatitis B")
}

func TestVaccineDeleteRefusedWhileReferenced(t *testing.T) {
	app, db := newTestApp(t)
	vaccine, _ := bookAppointment(t, db)

	resp := postForm(t, app, "/dashboard/vaccines/delete/"+vaccine.ID, nil)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	_, body := get(t, app, "/dashboard/vaccines", resp.Cookies()...)
	assert.Contains(t, body, "cannot be deleted")
	assert.Contains(t, body, "COVID-19")
}

func TestStaffManagement(t *testing.T) {
	app, db := newTestApp(t)

	resp := postForm(t, app, "/dashboard/staff/create", url.Values{
		"name": {"Nusrat Jahan"}, "email": {"nusrat@example.com"}, "password": {"secret1"}, "role": {"vaccinator"}, "is_active": {"on"},
	})
	assert.Equal(t, http.StatusFound, resp.StatusCode)

	var staff models.Staff
	require.NoError(t, db.Where("email = ?", "nusrat@example.com").First(&staff).Error)
	assert.True(t, staff.IsActive)
	assert.Equal(t, models.StaffRoleVaccinator, staff.Role)

	resp = postForm(t, app, "/dashboard/staff/create", url.Values{
		"name": {"Short"}, "email": {"short@example.com"}, "password": {"123"},
	})
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	_, body := get(t, app, "/dashboard/staff/create", resp.Cookies()...)
	assert.Contains(t, body, "Password must be at least 6 characters")

	resp = postForm(t, app, "/dashboard/staff/toggle/"+staff.ID, nil)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.NoError(t, db.First(&staff, "id = ?", staff.ID).Error)
	assert.False(t, staff.IsActive)

	resp = postForm(t, app, "/dashboard/staff/delete/"+staff.ID, nil)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	var count int64
	require.NoError(t, db.Unscoped().Model(&models.Staff{}).Count(&count).Error)
	assert.Zero(t, count)
}
