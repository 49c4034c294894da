package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const defaultSessionSecret = "your-session-secret-change-in-production"

// maxDefaultDuration is one week of minutes
const maxDefaultDuration = 10080

// Config holds application configuration
type Config struct {
	Server   ServerConfig
	Gemini   GeminiConfig
	Session  SessionConfig
	Redis    RedisConfig
	Database DatabaseConfig
	Storage  StorageConfig
	Upload   UploadConfig
	Log      LogConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string   `envconfig:"PORT" default:"8080"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
}

// GeminiConfig holds Gemini API configuration
type GeminiConfig struct {
	APIKey  string        `envconfig:"GEMINI_API_KEY"`
	Model   string        `envconfig:"GEMINI_MODEL" default:"gemini-3-flash-preview"`
	BaseURL string        `envconfig:"GEMINI_BASE_URL"`
	Timeout time.Duration `envconfig:"GEMINI_TIMEOUT" default:"90s"`
}

// SessionConfig holds anonymous session configuration
type SessionConfig struct {
	Secret          string        `envconfig:"SESSION_SECRET" default:"your-session-secret-change-in-production"`
	TTL             time.Duration `envconfig:"SESSION_TTL" default:"24h"`
	Store           string        `envconfig:"SESSION_STORE" default:"memory"` // "memory" or "redis"
	CookieName      string        `envconfig:"SESSION_COOKIE_NAME" default:"agenda_session"`
	SecureCookie    bool          `envconfig:"SESSION_SECURE_COOKIE" default:"false"`
	DefaultDuration int           `envconfig:"SESSION_DEFAULT_DURATION" default:"60"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// DatabaseConfig holds database configuration for the generation audit log
type DatabaseConfig struct {
	Enabled     bool   `envconfig:"DB_ENABLED" default:"false"`
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER" default:"postgres"`
	Password    string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name        string `envconfig:"DB_NAME" default:"agendacraft"`
	SSLMode     string `envconfig:"DB_SSLMODE" default:"disable"`
	MaxConns    int    `envconfig:"DB_MAX_CONNS" default:"10"`
	MinConns    int    `envconfig:"DB_MIN_CONNS" default:"2"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"false"`
}

// StorageConfig holds storage configuration for archiving uploaded documents
type StorageConfig struct {
	Enabled         bool   `envconfig:"STORAGE_ENABLED" default:"false"`
	Endpoint        string `envconfig:"STORAGE_ENDPOINT" default:"localhost:9000"`
	AccessKeyID     string `envconfig:"STORAGE_ACCESS_KEY" default:"minioadmin"`
	SecretAccessKey string `envconfig:"STORAGE_SECRET_KEY" default:"minioadmin"`
	BucketName      string `envconfig:"STORAGE_BUCKET" default:"agendacraft"`
	UseSSL          bool   `envconfig:"STORAGE_USE_SSL" default:"false"`
}

// UploadConfig holds upload limits
type UploadConfig struct {
	MaxBytes int64 `envconfig:"UPLOAD_MAX_BYTES" default:"10485760"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

// sections lists every config section; keys carry their full names so
// envconfig never falls back to an unprefixed variable such as PORT
func (c *Config) sections() []interface{} {
	return []interface{}{
		&c.Server,
		&c.Gemini,
		&c.Session,
		&c.Redis,
		&c.Database,
		&c.Storage,
		&c.Upload,
		&c.Log,
	}
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	cfg, err := FromEnv()
	if err != nil {
		return nil, err
	}

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// FromEnv populates a Config from the process environment without validating it
func FromEnv() (*Config, error) {
	cfg := &Config{}
	for _, section := range cfg.sections() {
		if err := envconfig.Process("", section); err != nil {
			return nil, fmt.Errorf("failed to process config: %w", err)
		}
	}
	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Gemini.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}
	if c.Session.Store != "memory" && c.Session.Store != "redis" {
		return fmt.Errorf("SESSION_STORE must be \"memory\" or \"redis\", got %q", c.Session.Store)
	}
	if c.Session.DefaultDuration < 1 || c.Session.DefaultDuration > maxDefaultDuration {
		return fmt.Errorf("SESSION_DEFAULT_DURATION must be between 1 and %d minutes", maxDefaultDuration)
	}
	if c.Upload.MaxBytes <= 0 {
		return fmt.Errorf("UPLOAD_MAX_BYTES must be positive")
	}
	if c.IsProduction() && c.Session.Secret == defaultSessionSecret {
		return fmt.Errorf("SESSION_SECRET must be set in production")
	}
	return nil
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// GetBodyLimit renders the upload cap in the format echo's BodyLimit middleware expects
func (c *Config) GetBodyLimit() string {
	return fmt.Sprintf("%dB", c.Upload.MaxBytes)
}
