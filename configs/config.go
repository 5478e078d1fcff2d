package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Host            string
	Port            string
	DBDriver        string
	DBSource        string
	DBMaxOpenConns  int
	DBMaxIdleConns  int
	JWTSecret       string
	JWTTTL          time.Duration
	RazorpayKeyID   string
	RazorpaySecret  string
	WebhookSecret   string
	LogLevel        string
	LogFormat       string
	CORSOrigins     []string
	ShutdownTimeout time.Duration
}

// NewViper returns a viper instance reading the environment, with the
// defaults every key falls back to. Commands bind their flags onto it.
func NewViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", "3000")
	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DATABASE_URL", "canteen.db")
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_TTL", "168h")
	v.SetDefault("RAZORPAY_KEY_ID", "")
	v.SetDefault("RAZORPAY_KEY_SECRET", "")
	v.SetDefault("RAZORPAY_WEBHOOK_SECRET", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	return v
}

// LoadConfig reads .env (if there is one) and then the environment.
// Secrets may be empty: the features that need them refuse to run instead.
func LoadConfig(v *viper.Viper) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("could not read .env file", "error", err)
	}
	if v == nil {
		v = NewViper()
	}

	cfg := &Config{
		Host:            v.GetString("HOST"),
		Port:            v.GetString("PORT"),
		DBDriver:        strings.ToLower(v.GetString("DB_DRIVER")),
		DBSource:        v.GetString("DATABASE_URL"),
		DBMaxOpenConns:  v.GetInt("DB_MAX_OPEN_CONNS"),
		DBMaxIdleConns:  v.GetInt("DB_MAX_IDLE_CONNS"),
		JWTSecret:       v.GetString("JWT_SECRET"),
		JWTTTL:          v.GetDuration("JWT_TTL"),
		RazorpayKeyID:   v.GetString("RAZORPAY_KEY_ID"),
		RazorpaySecret:  v.GetString("RAZORPAY_KEY_SECRET"),
		WebhookSecret:   v.GetString("RAZORPAY_WEBHOOK_SECRET"),
		LogLevel:        strings.ToLower(v.GetString("LOG_LEVEL")),
		LogFormat:       strings.ToLower(v.GetString("LOG_FORMAT")),
		CORSOrigins:     splitList(v.GetString("CORS_ORIGINS")),
		ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT is required")
	}
	switch c.DBDriver {
	case DriverSQLite, DriverPostgres, DriverMySQL:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (sqlite, postgres or mysql)", c.DBDriver)
	}
	if c.DBSource == "" {
		return errors.New("DATABASE_URL is required")
	}
	if _, ok := logLevels[c.LogLevel]; !ok {
		return fmt.Errorf("invalid LOG_LEVEL %q (debug, info, warn or error)", c.LogLevel)
	}
	if c.JWTTTL <= 0 {
		return errors.New("JWT_TTL must be positive")
	}
	return nil
}

func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
