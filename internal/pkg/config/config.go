package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (secrets, keys), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	Backend  BackendConfig
	Session  SessionConfig
	Cookie   CookieConfig
	CSRF     CSRFConfig
	Calendar CalendarConfig
	Auth     AuthConfig
	CORS     CORSConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port            string        `envconfig:"PORT" default:"3000"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

type BackendConfig struct {
	BaseURL string `envconfig:"RESERVAS_API_URL" default:"http://localhost:8080/reservas"`
	// zero disables the client timeout
	Timeout time.Duration `envconfig:"RESERVAS_API_TIMEOUT" default:"0s"`
}

type SessionConfig struct {
	Secret        string        `envconfig:"SESSION_SECRET" required:"true"`
	IdleTTL       time.Duration `envconfig:"SESSION_IDLE_TTL" default:"12h"`
	SweepSchedule string        `envconfig:"SESSION_SWEEP_SCHEDULE" default:"@every 1m"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type CSRFConfig struct {
	Enabled bool   `envconfig:"CSRF_ENABLED" default:"true"`
	Key     string `envconfig:"CSRF_KEY" default:""`
}

type CalendarConfig struct {
	TimeZone             string        `envconfig:"CALENDAR_TIMEZONE" default:"America/Sao_Paulo"`
	WeekStart            string        `envconfig:"CALENDAR_WEEK_START" default:"sunday"`
	NotificationDuration time.Duration `envconfig:"NOTIFICATION_DURATION" default:"3s"`
}

// Basic Auth stays disabled while User or PasswordHash is empty
type AuthConfig struct {
	User         string `envconfig:"UI_USER" default:""`
	PasswordHash string `envconfig:"UI_PASSWORD_HASH" default:""`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,X-CSRF-Token"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-CSRF-Token"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Sao_Paulo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-10800"` // -3*60*60
}

func (c AuthConfig) Enabled() bool {
	return c.User != "" && c.PasswordHash != ""
}

func (c CalendarConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid CALENDAR_TIMEZONE %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

func LoadConfig() (Config, error) {
	// a missing .env is fine, the real environment still applies
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.CSRF.Enabled && len(cfg.CSRF.Key) != 32 {
		return Config{}, fmt.Errorf("CSRF_KEY must be exactly 32 bytes, got %d", len(cfg.CSRF.Key))
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:            "8889", // Test port
			ShutdownTimeout: time.Second,
		},
		Backend: BackendConfig{
			BaseURL: "http://localhost:18080/reservas",
		},
		Session: SessionConfig{
			Secret:        "test-session-secret",
			IdleTTL:       time.Hour,
			SweepSchedule: "@every 1m",
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		CORS: CORSConfig{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-CSRF-Token"},
			ExposeHeaders:    []string{"Content-Length", "X-CSRF-Token"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		},
		CSRF: CSRFConfig{
			Enabled: false,
			Key:     "0123456789abcdef0123456789abcdef",
		},
		Calendar: CalendarConfig{
			TimeZone:             "America/Sao_Paulo",
			WeekStart:            "sunday",
			NotificationDuration: 3 * time.Second,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/Sao_Paulo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -10800,
		},
	}
}
