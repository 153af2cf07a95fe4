package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// Service-specific requirements (JWT secret for identity, upstream URLs for the others)
// are checked by Config.Validate at bootstrap.
// -----------------------------------------------------------------------------

type Config struct {
	Server      ServerConfig
	DB          DBConfig
	CORS        CORSConfig
	Log         LogConfig
	JWT         JWTConfig
	Upstream    UpstreamConfig
	Ledger      LedgerConfig
	Propagation PropagationConfig
}

type ServerConfig struct {
	Port            string        `envconfig:"PORT" required:"true"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

type DBConfig struct {
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER" required:"true"`
	Password    string `envconfig:"DB_PASSWORD" required:"true"`
	DBName      string `envconfig:"DB_NAME" required:"true"`
	SSLMode     string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone    string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns    int32  `envconfig:"DB_MAX_CONNS" default:"20"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret           string        `envconfig:"JWT_SECRET"`
	Duration         time.Duration `envconfig:"JWT_DURATION" default:"168h"`
	AllowAdminSignup bool          `envconfig:"AUTH_ALLOW_ADMIN_SIGNUP" default:"false"`
}

type UpstreamConfig struct {
	IdentityURL    string        `envconfig:"IDENTITY_URL" default:"http://localhost:8001/api/auth"`
	LedgerURL      string        `envconfig:"LEDGER_URL" default:"http://localhost:8002/api/users"`
	PricingURL     string        `envconfig:"PRICING_URL" default:"http://localhost:8003/api/pricing"`
	Timeout        time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"5s"`
	VerifyCacheTTL time.Duration `envconfig:"IDENTITY_VERIFY_CACHE_TTL" default:"30s"`
}

type LedgerConfig struct {
	StrictTransitions bool `envconfig:"LEDGER_STRICT_TRANSITIONS" default:"false"`
}

type PropagationConfig struct {
	Enabled       bool          `envconfig:"PROPAGATION_ENABLED" default:"true"`
	Interval      time.Duration `envconfig:"PROPAGATION_INTERVAL" default:"15s"`
	BatchSize     int           `envconfig:"PROPAGATION_BATCH_SIZE" default:"50"`
	MaxAttempts   int           `envconfig:"PROPAGATION_MAX_ATTEMPTS" default:"20"`
	RatePerSecond float64       `envconfig:"PROPAGATION_RATE_PER_SECOND" default:"20"`
	ServiceToken  string        `envconfig:"PROPAGATION_SERVICE_TOKEN"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

// Validate checks the settings a given service cannot start without.
func (c Config) Validate(service string) error {
	switch service {
	case "identity":
		if c.JWT.Secret == "" {
			return fmt.Errorf("%s: JWT_SECRET is required", service)
		}
		if c.JWT.Duration <= 0 {
			return fmt.Errorf("%s: JWT_DURATION must be positive", service)
		}
	case "ledger":
		if c.Upstream.IdentityURL == "" || c.Upstream.PricingURL == "" {
			return fmt.Errorf("%s: IDENTITY_URL and PRICING_URL are required", service)
		}
	case "pricing":
		if c.Upstream.IdentityURL == "" {
			return fmt.Errorf("%s: IDENTITY_URL is required", service)
		}
	case "coordinator":
		if c.Upstream.IdentityURL == "" || c.Upstream.LedgerURL == "" {
			return fmt.Errorf("%s: IDENTITY_URL and LEDGER_URL are required", service)
		}
		if c.Propagation.MaxAttempts <= 0 || c.Propagation.BatchSize <= 0 {
			return fmt.Errorf("%s: PROPAGATION_MAX_ATTEMPTS and PROPAGATION_BATCH_SIZE must be positive", service)
		}
		if c.Propagation.Enabled && c.Propagation.ServiceToken == "" {
			return fmt.Errorf("%s: PROPAGATION_SERVICE_TOKEN is required while PROPAGATION_ENABLED is set", service)
		}
	default:
		return fmt.Errorf("unknown service %q", service)
	}
	if c.Upstream.Timeout <= 0 {
		return fmt.Errorf("%s: UPSTREAM_TIMEOUT must be positive", service)
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:            "8889", // Test port
			ShutdownTimeout: time.Second,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: 7 * 24 * time.Hour,
		},
		Upstream: UpstreamConfig{
			IdentityURL: "http://identity.test/api/auth",
			LedgerURL:   "http://ledger.test/api/users",
			PricingURL:  "http://pricing.test/api/pricing",
			Timeout:     time.Second,
		},
		Propagation: PropagationConfig{
			Enabled:       false,
			Interval:      time.Second,
			BatchSize:     10,
			MaxAttempts:   3,
			RatePerSecond: 100,
		},
	}
}
