package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"golang.org/x/crypto/bcrypt"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server     ServerConfig
	DB         DBConfig
	CORS       CORSConfig
	Log        LogConfig
	JWT        JWTConfig
	Admin      AdminConfig
	Stripe     StripeConfig
	Storage    StorageConfig
	ImageGen   ImageGenConfig
	Generation GenerationConfig
	Automation AutomationConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
	// Base URL used for payment success/cancel redirects and placeholder images.
	PublicBaseURL string `envconfig:"PUBLIC_BASE_URL" default:"http://localhost:3000"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"America/New_York"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Automation-Secret"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/New_York"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-18000"` // -5*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// Single back-office operator; there is no user table.
type AdminConfig struct {
	Email        string `envconfig:"ADMIN_EMAIL" required:"true"`
	PasswordHash string `envconfig:"ADMIN_PASSWORD_HASH" required:"true"`
}

type StripeConfig struct {
	SecretKey     string `envconfig:"STRIPE_SECRET_KEY" required:"true"`
	WebhookSecret string `envconfig:"STRIPE_WEBHOOK_SECRET" required:"true"`
	// Flat per-unit price until real per-product pricing lands.
	UnitAmountCents int64  `envconfig:"STRIPE_UNIT_AMOUNT_CENTS" default:"2500"`
	Currency        string `envconfig:"STRIPE_CURRENCY" default:"usd"`
}

type StorageConfig struct {
	Bucket          string `envconfig:"GCS_BUCKET" required:"true"`
	CredentialsFile string `envconfig:"GCS_CREDENTIALS_FILE" default:""`
}

type ImageGenConfig struct {
	APIKey  string `envconfig:"OPENAI_API_KEY" default:""`
	BaseURL string `envconfig:"OPENAI_BASE_URL" default:"https://api.openai.com"`
	Model   string `envconfig:"OPENAI_IMAGE_MODEL" default:"gpt-image-1"`
	Size    string `envconfig:"OPENAI_IMAGE_SIZE" default:"1024x1024"`
	Timeout string `envconfig:"OPENAI_TIMEOUT" default:"180s"`
}

type GenerationConfig struct {
	DailyCap     int    `envconfig:"DAILY_CAP" default:"10"`
	DailyTZ      string `envconfig:"DAILY_TZ" default:"America/New_York"`
	MockMode     bool   `envconfig:"MOCK_MODE" default:"false"`
	MockImageURL string `envconfig:"MOCK_IMAGE_URL" default:""`
}

type AutomationConfig struct {
	SharedSecret string `envconfig:"AUTOMATION_SHARED_SECRET" required:"true"`
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

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:          "8889", // Test port
			PublicBaseURL: "http://localhost:8889",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "America/New_York",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/New_York",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -18000,
		},
		JWT: JWTConfig{
			Secret:   "test-jwt-secret",
			Duration: "24h",
		},
		Admin: AdminConfig{
			Email:        "admin@example.com",
			PasswordHash: testPasswordHash(),
		},
		Stripe: StripeConfig{
			SecretKey:       "sk_test_dummy",
			WebhookSecret:   "whsec_test_dummy",
			UnitAmountCents: 2500,
			Currency:        "usd",
		},
		Storage: StorageConfig{
			Bucket: "test-bucket",
		},
		Generation: GenerationConfig{
			DailyCap: 10,
			DailyTZ:  "America/New_York",
			MockMode: true,
		},
		Automation: AutomationConfig{
			SharedSecret: "test-automation-secret",
		},
	}
}

// TestAdminPassword is the plaintext behind NewTestConfig's admin hash.
const TestAdminPassword = "password123"

func testPasswordHash() string {
	hash, err := bcrypt.GenerateFromPassword([]byte(TestAdminPassword), bcrypt.MinCost)
	if err != nil {
		panic("failed to hash test admin password: " + err.Error())
	}
	return string(hash)
}
