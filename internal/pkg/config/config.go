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
// - empty optional: Third-party credentials. Absent values select the documented fallback.
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	Mongo   MongoConfig
	CORS    CORSConfig
	Cookie  CookieConfig
	Log     LogConfig
	JWT     JWTConfig
	Google  GoogleConfig
	Payment PaymentConfig
	Catalog CatalogConfig
	Redis   RedisConfig
}

type ServerConfig struct {
	Port            string        `envconfig:"PORT" required:"true"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

type MongoConfig struct {
	URI            string        `envconfig:"MONGODB_URI" required:"true"`
	Database       string        `envconfig:"MONGODB_DATABASE" default:"hotel_booking"`
	ConnectTimeout time.Duration `envconfig:"MONGODB_CONNECT_TIMEOUT" default:"10s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:5173,http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAMESITE" default:"Lax"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Kolkata"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"19800"` // 5.5*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"1h"`
}

type GoogleConfig struct {
	ClientID string `envconfig:"GOOGLE_CLIENT_ID" default:""`
}

type PaymentConfig struct {
	RazorpayKeyID     string `envconfig:"RAZORPAY_KEY_ID" default:""`
	RazorpayKeySecret string `envconfig:"RAZORPAY_KEY_SECRET" default:""`
	Currency          string `envconfig:"PAYMENT_CURRENCY" default:"INR"`
}

func (c PaymentConfig) RazorpayEnabled() bool {
	return c.RazorpayKeyID != "" && c.RazorpayKeySecret != ""
}

type CatalogConfig struct {
	Provider            string        `envconfig:"CATALOG_PROVIDER" default:"auto"`
	AmadeusClientID     string        `envconfig:"AMADEUS_CLIENT_ID" default:""`
	AmadeusClientSecret string        `envconfig:"AMADEUS_CLIENT_SECRET" default:""`
	AmadeusBaseURL      string        `envconfig:"AMADEUS_BASE_URL" default:"https://test.api.amadeus.com"`
	Timeout             time.Duration `envconfig:"OUTBOUND_TIMEOUT" default:"10s"`
	RateLimit           int           `envconfig:"CATALOG_RATE_LIMIT" default:"5"`
	CacheTTL            time.Duration `envconfig:"CATALOG_CACHE_TTL" default:"10m"`
}

func (c CatalogConfig) AmadeusEnabled() bool {
	return c.AmadeusClientID != "" && c.AmadeusClientSecret != "" &&
		c.AmadeusClientID != "placeholder"
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:""`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:            "8889", // Test port
			ShutdownTimeout: 5 * time.Second,
		},
		Mongo: MongoConfig{
			URI:            "mongodb://localhost:27018",
			Database:       "hotel_booking_test",
			ConnectTimeout: 10 * time.Second,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:5173"},
			AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Kolkata",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 19800,
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key-for-hotel-booking",
			Duration: "1h",
		},
		Payment: PaymentConfig{
			Currency: "INR",
		},
		Catalog: CatalogConfig{
			Provider:       "static",
			AmadeusBaseURL: "http://localhost:0",
			Timeout:        2 * time.Second,
			RateLimit:      100,
			CacheTTL:       time.Minute,
		},
	}
}
