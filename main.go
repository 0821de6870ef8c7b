package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vaccinehub.app/configs"
	"vaccinehub.app/configs/configsdatabase"
	"vaccinehub.app/configs/configslog"
	"vaccinehub.app/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"
)

func main() {
	cfg, err := configs.Load()
	if err != nil {
		panic(err)
	}
	configslog.InitLogger()
	defer configslog.SyncLogger()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	engine := html.New(cfg.ViewsDir, ".html")
	engine.Reload(!cfg.IsProduction())

	app := fiber.New(fiber.Config{
		AppName:      "VaccineHub",
		Views:        engine,
		ErrorHandler: errorHandler,
	})
	routes.SetupRoutes(app)

	go func() {
		configslog.SLog.Infof("Sunucu başlatılıyor: %s", cfg.Addr())
		if err := app.Listen(cfg.Addr()); err != nil {
			configslog.Log.Fatal("Sunucu hatası", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	configslog.SLog.Info("Sunucu kapatılıyor...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		configslog.Log.Error("Sunucu düzgün kapatılamadı", zap.Error(err))
	}
	configslog.SLog.Info("Sunucu durdu.")
}

// errorHandler yakalanmamış handler hatalarını JSON veya 500 sayfası olarak döndürür.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}
	if code >= fiber.StatusInternalServerError {
		configslog.Log.Error("İstek işlenemedi", zap.String("path", c.Path()), zap.Error(err))
	}

	if c.Accepts("application/json", "text/html") == "application/json" {
		return c.Status(code).JSON(fiber.Map{"error": err.Error()})
	}
	if code == fiber.StatusNotFound {
		return c.Status(code).Render("errors/404", fiber.Map{"Title": "Page Not Found"}, "layouts/error_layout")
	}
	return c.Status(code).Render("errors/500", fiber.Map{"Title": "Something Went Wrong"}, "layouts/error_layout")
}
