package routes

import (
	handlers "vaccinehub.app/handlers/dashboard"

	"github.com/gofiber/fiber/v2"
)

// registerDashboardRoutes /dashboard altındaki personel ekranlarını tanımlar.
func registerDashboardRoutes(app *fiber.App) {
	homeHandler := handlers.NewHomeHandler()
	appointmentHandler := handlers.NewAppointmentHandler()
	vaccineHandler := handlers.NewVaccineHandler()
	staffHandler := handlers.NewStaffHandler()

	dashboardGroup := app.Group("/dashboard")

	// --- Ana Sayfa ---
	dashboardGroup.Get("/", homeHandler.HomePage)

	// --- Randevular ---
	dashboardGroup.Get("/appointments", appointmentHandler.ListAppointments)                    // GET /dashboard/appointments
	dashboardGroup.Get("/appointments/:id", appointmentHandler.ShowAppointment)                 // GET /dashboard/appointments/{id}
	dashboardGroup.Post("/appointments/update/:id", appointmentHandler.UpdateAppointmentStatus) // POST /dashboard/appointments/update/{id}
	dashboardGroup.Post("/appointments/delete/:id", appointmentHandler.DeleteAppointment)       // POST /dashboard/appointments/delete/{id}
	dashboardGroup.Delete("/appointments/delete/:id", appointmentHandler.DeleteAppointment)     // DELETE /dashboard/appointments/delete/{id}

	// --- Envanter ---
	dashboardGroup.Get("/vaccines", vaccineHandler.ListVaccines)
	dashboardGroup.Get("/vaccines/create", vaccineHandler.ShowCreateVaccine)
	dashboardGroup.Post("/vaccines/create", vaccineHandler.CreateVaccine)
	dashboardGroup.Get("/vaccines/update/:id", vaccineHandler.ShowUpdateVaccine)
	dashboardGroup.Post("/vaccines/update/:id", vaccineHandler.UpdateVaccine)
	dashboardGroup.Post("/vaccines/delete/:id", vaccineHandler.DeleteVaccine)
	dashboardGroup.Delete("/vaccines/delete/:id", vaccineHandler.DeleteVaccine)

	// --- Personel ---
	dashboardGroup.Get("/staff", staffHandler.ListStaff)
	dashboardGroup.Get("/staff/create", staffHandler.ShowCreateStaff)
	dashboardGroup.Post("/staff/create", staffHandler.CreateStaff)
	dashboardGroup.Post("/staff/toggle/:id", staffHandler.ToggleStaffActive)
	dashboardGroup.Post("/staff/delete/:id", staffHandler.DeleteStaff)
	dashboardGroup.Delete("/staff/delete/:id", staffHandler.DeleteStaff)
}
