package flashmessages

import (
	"encoding/json"

	"vaccinehub.app/configs/configslog"
	"vaccinehub.app/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	FlashSuccessKey  = "flash_success"
	FlashErrorKey    = "flash_error"
	flashFormDataKey = "flash_form_data"
)

// FlashMessages bir sonraki isteğe taşınan tek seferlik mesajlardır.
type FlashMessages struct {
	Success string
	Error   string
}

// SetFlashMessage mesajı session'a yazar; bir sonraki okumada silinir.
func SetFlashMessage(c *fiber.Ctx, key, message string) error {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return err
	}
	sess.Set(key, message)
	return sess.Save()
}

// GetFlashMessages mesajları okur ve session'dan temizler.
func GetFlashMessages(c *fiber.Ctx) (FlashMessages, error) {
	var msgs FlashMessages
	sess, err := utils.SessionStart(c)
	if err != nil {
		return msgs, err
	}

	if v, ok := sess.Get(FlashSuccessKey).(string); ok {
		msgs.Success = v
		sess.Delete(FlashSuccessKey)
	}
	if v, ok := sess.Get(FlashErrorKey).(string); ok {
		msgs.Error = v
		sess.Delete(FlashErrorKey)
	}
	if msgs.Success == "" && msgs.Error == "" {
		return msgs, nil
	}
	return msgs, sess.Save()
}

// SetFlashFormData hatalı gönderilen formun verisini JSON olarak saklar,
// böylece yönlendirme sonrası form yeniden doldurulabilir.
func SetFlashFormData(c *fiber.Ctx, data any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	sess, err := utils.SessionStart(c)
	if err != nil {
		return err
	}
	sess.Set(flashFormDataKey, string(raw))
	return sess.Save()
}

// GetFlashFormData saklanan form verisini okur ve temizler. Veri yoksa boş map döner.
func GetFlashFormData(c *fiber.Ctx) map[string]any {
	data := map[string]any{}
	sess, err := utils.SessionStart(c)
	if err != nil {
		return data
	}
	raw, ok := sess.Get(flashFormDataKey).(string)
	if !ok || raw == "" {
		return data
	}
	sess.Delete(flashFormDataKey)
	if err := sess.Save(); err != nil {
		configslog.Log.Warn("Flash form verisi temizlenemedi", zap.Error(err))
	}
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		configslog.Log.Warn("Flash form verisi çözümlenemedi", zap.Error(err))
		return map[string]any{}
	}
	return data
}
