package routes

import (
	handlers "vaccinehub.app/handlers/public"

	"github.com/gofiber/fiber/v2"
)

// registerPublicRoutes vatandaşa açık sayfaları tanımlar.
func registerPublicRoutes(app *fiber.App) {
	homeHandler := handlers.NewHomeHandler()
	formHandler := handlers.NewAppointmentFormHandler()
	verifyHandler := handlers.NewVerifyHandler()

	app.Get("/", homeHandler.HomePage)
	app.Get("/appointment-form", formHandler.ShowForm)
	app.Post("/appointment-form", formHandler.SubmitForm)
	app.Get("/verify-vaccine", verifyHandler.ShowVerify)
}
