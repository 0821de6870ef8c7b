package configs

import (
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"
)

// SetupSession flash mesajları ve form verisi için cookie tabanlı session store oluşturur.
func SetupSession() *session.Store {
	expiration := 24 * time.Hour
	secure := false
	if cfg, err := Load(); err == nil {
		if cfg.SessionExpiration > 0 {
			expiration = cfg.SessionExpiration
		}
		secure = cfg.IsProduction()
	}

	return session.New(session.Config{
		Expiration:     expiration,
		KeyLookup:      "cookie:vaccinehub_session",
		CookieHTTPOnly: true,
		CookieSecure:   secure,
		CookieSameSite: "Lax",
	})
}
