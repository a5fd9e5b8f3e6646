// config предоставляет структуру конфигурации портала фонда
// и функции загрузки из YAML/ENV с предсказуемым приоритетом.
package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — корневая конфигурация сервиса.
// Приоритет источников:
//  1. явный путь, переданный в MustLoad/Load;
//  2. переменная окружения CONFIG_PATH;
//  3. файл ./local.yaml из рабочей директории;
//  4. переменные окружения.
type Config struct {
	Env      string        `yaml:"env" env:"ENV" env-default:"local"`
	HTTP     HTTPConfig    `yaml:"http"`
	DB       DBConfig      `yaml:"db"`
	S3       S3Config      `yaml:"s3"`
	Redis    RedisConfig   `yaml:"redis"`
	Auth     AuthConfig    `yaml:"auth"`
	Session  SessionConfig `yaml:"session"`
	Site     SiteConfig    `yaml:"site"`
	Timeouts TimeoutConfig `yaml:"timeouts"`
}

// TimeoutConfig — таймауты сервиса.
type TimeoutConfig struct {
	Service time.Duration `yaml:"service" env:"SERVICE" env-default:"10s"`
}

// HTTPConfig — сетевые настройки HTTP-сервера.
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string { return net.JoinHostPort(h.Host, h.Port) }

// DBConfig — настройки подключения к базе данных.
type DBConfig struct {
	URL string `yaml:"url" env:"DATABASE_URL" env-required:"true"`
}

// S3Config — объектное хранилище для логотипов партнёров и прочих медиа.
type S3Config struct {
	Endpoint     string `yaml:"endpoint"      env:"S3_ENDPOINT"      env-default:"http://localhost:9000"`
	RootUser     string `yaml:"root_user"     env:"S3_ROOT_USER"`
	RootPassword string `yaml:"root_password" env:"S3_ROOT_PASSWORD"`
	Region       string `yaml:"region"        env:"S3_REGION"        env-default:"us-east-1"`
	// PartnersBucket — бакет с логотипами партнёров.
	PartnersBucket string `yaml:"partners_bucket" env:"S3_PARTNERS_BUCKET" env-default:"partners"`
	// PublicBaseURL — CDN/прокси перед бакетами; если пусто, используется endpoint.
	PublicBaseURL string `yaml:"public_base_url" env:"S3_PUBLIC_BASE_URL"`
	// Presign — бакеты приватные, отдаём presigned GET вместо публичной ссылки.
	Presign    bool          `yaml:"presign"     env:"S3_PRESIGN"     env-default:"false"`
	PresignTTL time.Duration `yaml:"presign_ttl" env:"S3_PRESIGN_TTL" env-default:"1h"`
}

// RedisConfig — хранилище отозванных сессий.
type RedisConfig struct {
	URL    string `yaml:"url"    env:"REDIS_URL" env-required:"true"`
	Prefix string `yaml:"prefix" env:"REDIS_PREFIX" env-default:"portal:revoked:"`
}

// AuthConfig содержит параметры выпуска и валидации сессионных токенов.
type AuthConfig struct {
	JWTSecret  string        `yaml:"jwt_secret"  env:"JWT_SECRET" env-required:"true"`
	SessionTTL time.Duration `yaml:"session_ttl" env:"SESSION_TTL" env-default:"12h"`
	Issuer     string        `yaml:"issuer"      env:"ISSUER" env-default:"foundation-portal"`
	Audience   []string      `yaml:"audience"    env:"AUDIENCE" env-default:"portal-web"`
}

// SessionConfig — параметры cookie-сессии.
type SessionConfig struct {
	CookieName string `yaml:"cookie_name" env:"SESSION_COOKIE" env-default:"portal_session"`
	Secret     string `yaml:"secret"      env:"SESSION_SECRET" env-required:"true"`
	Secure     bool   `yaml:"secure"      env:"SESSION_SECURE" env-default:"false"`
}

// SiteConfig — параметры витрины.
type SiteConfig struct {
	// NewsLimit — сколько новостей показывает главная.
	NewsLimit int32 `yaml:"news_limit" env:"NEWS_LIMIT" env-default:"6"`
	// PlaceholderImage — обложка новости без изображений.
	PlaceholderImage string `yaml:"placeholder_image" env:"PLACEHOLDER_IMAGE" env-default:"/static/placeholder.svg"`
	// SliderInterval — период автопрокрутки слайдера.
	SliderInterval time.Duration `yaml:"slider_interval" env:"SLIDER_INTERVAL" env-default:"5s"`
	// LoginPath — куда гейт отправляет неавторизованных.
	LoginPath string `yaml:"login_path" env:"LOGIN_PATH" env-default:"/login"`
}

// MustLoad — обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}

	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
func Load(path string) (*Config, error) {
	var cfg Config

	tryRead := func(p string) (*Config, error) {
		if p == "" {
			return nil, fmt.Errorf("empty config path")
		}

		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file %q stat failed: %w", p, err)
		}

		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}

		return &cfg, nil
	}

	var (
		c   *Config
		err error
	)

	switch {
	// 1) Явный путь.
	case path != "":
		c, err = tryRead(path)
	// 2) CONFIG_PATH.
	case os.Getenv("CONFIG_PATH") != "":
		c, err = tryRead(os.Getenv("CONFIG_PATH"))
	// 3) ./local.yaml.
	case fileExists("local.yaml"):
		if rerr := cleanenv.ReadConfig("local.yaml", &cfg); rerr != nil {
			return nil, fmt.Errorf("failed to read local.yaml: %w", rerr)
		}
		c = &cfg
	// 4) Только ENV.
	default:
		if rerr := cleanenv.ReadEnv(&cfg); rerr != nil {
			return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", rerr)
		}
		c = &cfg
	}

	if err != nil {
		return nil, err
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	return c, nil
}

func fileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}

// validate — базовая валидация значений.
func (c *Config) validate() error {
	if c.DB.URL == "" {
		return fmt.Errorf("db.url is required")
	}
	if c.Redis.URL == "" {
		return fmt.Errorf("redis.url is required")
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret is required")
	}
	if c.Auth.SessionTTL <= 0 {
		return fmt.Errorf("auth.session_ttl must be > 0")
	}
	// securecookie требует ключ не короче 32 байт для HMAC.
	if len(c.Session.Secret) < 32 {
		return fmt.Errorf("session.secret must be at least 32 bytes")
	}
	if c.Site.NewsLimit <= 0 {
		return fmt.Errorf("site.news_limit must be > 0")
	}
	if c.Site.SliderInterval < 100*time.Millisecond {
		return fmt.Errorf("site.slider_interval must be at least 100ms")
	}
	if c.S3.PartnersBucket == "" {
		return fmt.Errorf("s3.partners_bucket is required")
	}
	return nil
}
