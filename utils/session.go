package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// SessionStoreKey session store'un fiber Locals içindeki anahtarıdır.
const SessionStoreKey = "session_store"

var ErrSessionStoreMissing = errors.New("session store bulunamadı")

// SessionStart istek için session'ı açar. Store router tarafından Locals'a konur.
func SessionStart(c *fiber.Ctx) (*session.Session, error) {
	store, ok := c.Locals(SessionStoreKey).(*session.Store)
	if !ok || store == nil {
		return nil, ErrSessionStoreMissing
	}
	return store.Get(c)
}
