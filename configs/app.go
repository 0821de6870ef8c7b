package configs

import (
	"fmt"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// AppConfig uygulamanın ortam değişkenlerinden okunan ayarlarıdır.
type AppConfig struct {
	Env  string `mapstructure:"APP_ENV"`
	Host string `mapstructure:"APP_HOST"`
	Port string `mapstructure:"APP_PORT"`

	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`
	DBSSLMode  string `mapstructure:"DB_SSLMODE"`
	DBTimeZone string `mapstructure:"DB_TIMEZONE"`

	NIDLookupDelay    time.Duration `mapstructure:"NID_LOOKUP_DELAY"`
	SessionExpiration time.Duration `mapstructure:"SESSION_EXPIRATION"`
	ViewsDir          string        `mapstructure:"VIEWS_DIR"`
}

var (
	appConfig *AppConfig
	loadOnce  sync.Once
	loadErr   error
)

var configKeys = []string{
	"APP_ENV", "APP_HOST", "APP_PORT",
	"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE", "DB_TIMEZONE",
	"NID_LOOKUP_DELAY", "SESSION_EXPIRATION", "VIEWS_DIR",
}

// Load .env dosyasını (varsa) yükler ve ayarları varsayılanlarla birlikte çözer.
// İlk çağrıdan sonra aynı sonucu döndürür.
func Load() (*AppConfig, error) {
	loadOnce.Do(func() {
		// .env yoksa sorun değil, ortam değişkenleri kullanılır
		_ = godotenv.Load()
		appConfig, loadErr = load(viper.New())
	})
	return appConfig, loadErr
}

func load(v *viper.Viper) (*AppConfig, error) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_HOST", "0.0.0.0")
	v.SetDefault("APP_PORT", "3000")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "vaccinehub")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_TIMEZONE", "UTC")
	v.SetDefault("NID_LOOKUP_DELAY", "500ms")
	v.SetDefault("SESSION_EXPIRATION", "24h")
	v.SetDefault("VIEWS_DIR", "./views")

	v.AutomaticEnv()
	for _, key := range configKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	cfg := &AppConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.NIDLookupDelay < 0 {
		return nil, fmt.Errorf("NID_LOOKUP_DELAY negatif olamaz: %s", cfg.NIDLookupDelay)
	}
	return cfg, nil
}

// Get yüklenmiş ayarları döndürür, yüklenmemişse Load çağırır.
// Ayarlar okunamazsa panic eder; main başlangıçta Load hatasını zaten kontrol eder.
func Get() *AppConfig {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// DSN PostgreSQL bağlantı cümlesini üretir.
func (c *AppConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode, c.DBTimeZone,
	)
}

// Addr sunucunun dinleyeceği adresi döndürür.
func (c *AppConfig) Addr() string {
	return c.Host + ":" + c.Port
}

func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}
