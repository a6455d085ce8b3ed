package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/kelseyhightower/envconfig"
)

// Secrets and connection settings are required; everything else has a default
// that works for local development.

type Config struct {
	Server    ServerConfig
	App       AppConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Cookie    CookieConfig
	Reward    RewardConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port              string        `envconfig:"PORT" required:"true"`
	ReadHeaderTimeout time.Duration `envconfig:"SERVER_READ_HEADER_TIMEOUT" default:"10s"`
	ShutdownTimeout   time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"15s"`
}

// AppConfig holds values used to build links handed out to respondents.
type AppConfig struct {
	BaseURL string `envconfig:"APP_BASE_URL" default:"http://localhost:3000"`
}

type DBConfig struct {
	Host            string        `envconfig:"DB_HOST" default:"localhost"`
	Port            string        `envconfig:"DB_PORT" default:"5432"`
	User            string        `envconfig:"DB_USER" required:"true"`
	Password        string        `envconfig:"DB_PASSWORD" required:"true"`
	DBName          string        `envconfig:"DB_NAME" required:"true"`
	SSLMode         string        `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone        string        `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns        int32         `envconfig:"DB_MAX_CONNS" default:"20"`
	MinConns        int32         `envconfig:"DB_MIN_CONNS" default:"2"`
	MaxConnLifetime time.Duration `envconfig:"DB_MAX_CONN_LIFETIME" default:"1h"`
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
	Secret               string        `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenDuration  time.Duration `envconfig:"JWT_ACCESS_TOKEN_DURATION" default:"15m"`
	RefreshTokenDuration time.Duration `envconfig:"JWT_REFRESH_TOKEN_DURATION" default:"168h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

// RewardConfig decides which completed responses earn a discount code and what it looks like.
type RewardConfig struct {
	QualifyingTypes []string      `envconfig:"REWARD_QUALIFYING_TYPES" default:"DIRECT_SMS"`
	DiscountType    string        `envconfig:"REWARD_DISCOUNT_TYPE" default:"PERCENTAGE"`
	DiscountValue   string        `envconfig:"REWARD_DISCOUNT_VALUE" default:"10"`
	Validity        time.Duration `envconfig:"REWARD_VALIDITY" default:"720h"`
	CodePrefix      string        `envconfig:"REWARD_CODE_PREFIX" default:"SAVE"`
	CodeLength      int           `envconfig:"REWARD_CODE_LENGTH" default:"8"`
}

type RateLimitConfig struct {
	PublicRequestsPerMinute int           `envconfig:"RATE_LIMIT_PUBLIC_RPM" default:"30"`
	PublicBurst             int           `envconfig:"RATE_LIMIT_PUBLIC_BURST" default:"10"`
	VisitorTTL              time.Duration `envconfig:"RATE_LIMIT_VISITOR_TTL" default:"5m"`
	// RedisAddr shares the counters across replicas. Empty keeps them in process.
	RedisAddr     string `envconfig:"RATE_LIMIT_REDIS_ADDR" default:""`
	RedisPassword string `envconfig:"RATE_LIMIT_REDIS_PASSWORD" default:""`
	RedisDB       int    `envconfig:"RATE_LIMIT_REDIS_DB" default:"0"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// minSecretLength keeps HS256 keys out of guessable territory.
const minSecretLength = 16

// maxCodeLength mirrors discount.MaxCodeLength.
const maxCodeLength = 32

func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, errors.Wrap(err, "process env config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings that envconfig accepts but the app cannot run with.
func (c Config) Validate() error {
	if len(c.JWT.Secret) < minSecretLength {
		return errors.Newf("JWT_SECRET must be at least %d characters", minSecretLength)
	}
	if c.JWT.AccessTokenDuration <= 0 || c.JWT.RefreshTokenDuration <= 0 {
		return errors.New("JWT token durations must be positive")
	}
	if c.JWT.RefreshTokenDuration < c.JWT.AccessTokenDuration {
		return errors.New("JWT_REFRESH_TOKEN_DURATION must not be shorter than the access token")
	}
	if u, err := url.Parse(c.App.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return errors.Newf("APP_BASE_URL %q is not an absolute URL", c.App.BaseURL)
	}
	if c.Reward.CodeLength <= 0 || c.Reward.CodeLength > maxCodeLength {
		return errors.Newf("REWARD_CODE_LENGTH must be between 1 and %d", maxCodeLength)
	}
	if c.RateLimit.PublicRequestsPerMinute <= 0 || c.RateLimit.PublicBurst <= 0 {
		return errors.New("public rate limit must be positive")
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:              "8889",
			ReadHeaderTimeout: time.Second,
			ShutdownTimeout:   time.Second,
		},
		App: AppConfig{
			BaseURL: "http://localhost:3000",
		},
		DB: DBConfig{
			Host:            "localhost",
			Port:            "15433",
			User:            "test",
			Password:        "test",
			DBName:          "test_db",
			SSLMode:         "disable",
			TimeZone:        "UTC",
			MaxConns:        10,
			MinConns:        1,
			MaxConnLifetime: time.Hour,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		},
		Log: LogConfig{
			Level:          "error",
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:               "test-secret-key-for-feedbackpro",
			AccessTokenDuration:  15 * time.Minute,
			RefreshTokenDuration: 24 * time.Hour,
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Reward: RewardConfig{
			QualifyingTypes: []string{"DIRECT_SMS"},
			DiscountType:    "PERCENTAGE",
			DiscountValue:   "10",
			Validity:        30 * 24 * time.Hour,
			CodePrefix:      "SAVE",
			CodeLength:      8,
		},
		RateLimit: RateLimitConfig{
			PublicRequestsPerMinute: 600,
			PublicBurst:             100,
			VisitorTTL:              time.Minute,
		},
	}
}
