package config

import (
	"flag"
	"regexp"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// Server-side settings
	DatabaseDSN string        `env:"DATABASE_URI"`
	AuthSecret  string        `env:"AUTH_SECRET"`
	TokenTTL    time.Duration `env:"TOKEN_TTL"` // 0 — токены без срока действия

	SingleShareLink bool `env:"SINGLE_SHARE_LINK" envDefault:"true"`
	OwnerOnlyDelete bool `env:"OWNER_ONLY_DELETE" envDefault:"true"`

	RedisAddr     string        `env:"REDIS_ADDR"`
	ShareCacheTTL time.Duration `env:"SHARE_CACHE_TTL" envDefault:"10m"`

	PublicRPS   float64 `env:"PUBLIC_RPS" envDefault:"5"`
	PublicBurst int     `env:"PUBLIC_BURST" envDefault:"20"`
	// TrustProxy — брать IP клиента из X-Forwarded-For/X-Real-IP (только за своим прокси)
	TrustProxy bool `env:"TRUST_PROXY"`

	LogLevel string `env:"LOG_LEVEL"`
	LogFile  string `env:"LOG_FILE"`

	// Shared settings
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`

	// Client-side settings
	ServerURL string `env:"-"`
	TokenFile string `env:"TOKEN_FILE"`
	Version   bool   `env:"-"` // show client version and exit (flag only)
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags работают ТОЛЬКО если переменные из env не заданы
	// Server flags
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД (postgres://... или file:...)")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "секрет для подписи JWT")
	flag.DurationVar(&cfg.TokenTTL, "token-ttl", cfg.TokenTTL, "время жизни токена сессии (0 — без срока)")
	flag.BoolVar(&cfg.SingleShareLink, "single-share-link", cfg.SingleShareLink, "не более одной публичной ссылки на пользователя")
	flag.BoolVar(&cfg.OwnerOnlyDelete, "owner-only-delete", cfg.OwnerOnlyDelete, "удалять контент может только владелец")
	flag.StringVar(&cfg.RedisAddr, "redis", cfg.RedisAddr, "адрес Redis для кеша публичных ссылок")
	flag.BoolVar(&cfg.TrustProxy, "trust-proxy", cfg.TrustProxy, "доверять заголовкам X-Forwarded-For/X-Real-IP")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "уровень логирования (debug|info|warn|error)")
	flag.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "файл для логов с ротацией")
	// Shared/client flags
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "base URL of the LinkKeeper server (host:port)")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS (client: prefer https scheme for BaseURL)")
	// Client flags
	flag.StringVar(&cfg.TokenFile, "token-file", cfg.TokenFile, "path to auth token file (client)")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show client version and exit")

	flag.Parse()

	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.AuthSecret == "" {
		cfg.AuthSecret = "dev-secret-key"
	}
	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = "file:linkkeeper.db"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.TokenTTL < 0 {
		cfg.TokenTTL = 0
	}
	if cfg.PublicRPS <= 0 {
		cfg.PublicRPS = 5
	}
	if cfg.PublicBurst <= 0 {
		cfg.PublicBurst = 20
	}
	// validate BaseURL: must be in "address:port" (no scheme, no path). Otherwise use default.
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = "localhost:3000"
	}

	if cfg.EnableHTTPS {
		cfg.ServerURL = "https://" + cfg.BaseURL
	} else {
		cfg.ServerURL = "http://" + cfg.BaseURL
	}
}
