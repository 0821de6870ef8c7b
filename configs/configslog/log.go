package configslog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log yapılandırılmış (structured) loglama için, SLog printf tarzı mesajlar için kullanılır.
// InitLogger çağrılana kadar ikisi de no-op logger'dır.
var (
	Log  *zap.Logger        = zap.NewNop()
	SLog *zap.SugaredLogger = Log.Sugar()
)

// InitLogger APP_ENV değerine göre development veya production logger kurar.
func InitLogger() {
	var cfg zap.Config
	if os.Getenv("APP_ENV") == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build(zap.AddCaller())
	if err != nil {
		panic("zap logger başlatılamadı: " + err.Error())
	}
	Log = logger
	SLog = logger.Sugar()
}

// SyncLogger tamponlanmış log kayıtlarını yazar. main içinde defer ile çağrılır.
func SyncLogger() {
	if Log == nil {
		return
	}
	_ = Log.Sync()
}
