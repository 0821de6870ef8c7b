package routes

import (
	handlers "vaccinehub.app/handlers/api"

	"github.com/gofiber/fiber/v2"
)

// registerAPIRoutes formun JavaScript tarafından çağrılan JSON uç noktaları.
func registerAPIRoutes(app *fiber.App) {
	nidHandler := handlers.NewNIDHandler()
	appointmentHandler := handlers.NewAppointmentHandler()
	vaccineHandler := handlers.NewVaccineHandler()

	api := app.Group("/api")

	api.Get("/nid", nidHandler.LookupQuery) // GET /api/nid?nid=...
	api.Post("/nid", nidHandler.LookupBody) // POST /api/nid
	api.Post("/appointments", appointmentHandler.CreateAppointment)
	api.Get("/vaccines", vaccineHandler.ListEnabled)
	api.Get("/vaccines/verify", vaccineHandler.VerifyQuery)
	api.Post("/vaccines/verify", vaccineHandler.VerifyBody)
}
