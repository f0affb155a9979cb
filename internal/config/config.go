package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	API      APIConfig      `yaml:"api"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Admin    AdminConfig    `yaml:"admin"`
	Claude   ClaudeConfig   `yaml:"claude"`
	Stripe   StripeConfig   `yaml:"stripe"`
	Limits   LimitsConfig   `yaml:"limits"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// APIConfig holds routing-level settings.
type APIConfig struct {
	PathPrefix    string `yaml:"path_prefix"     env:"API_PATH_PREFIX"     env-default:"/api/v1"`
	AuthRateLimit int    `yaml:"auth_rate_limit" env:"API_AUTH_RATE_LIMIT" env-default:"30"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	MigrateOnStart  bool          `yaml:"migrate_on_start"   env:"DATABASE_MIGRATE_ON_START"   env-default:"true"`
}

// AuthConfig holds token signing and Google OAuth settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	TokenTTL       time.Duration `yaml:"token_ttl"        env:"AUTH_TOKEN_TTL"        env-default:"168h"`
	GoogleClientID string        `yaml:"google_client_id" env:"AUTH_GOOGLE_CLIENT_ID"`
}

// AdminConfig holds the admin allowlist.
type AdminConfig struct {
	// Emails is a comma-separated list of administrator email addresses.
	Emails string `yaml:"emails" env:"ADMIN_EMAILS"`
}

// ClaudeConfig holds settings for the external generative model.
type ClaudeConfig struct {
	APIKey      string  `yaml:"api_key"     env:"CLAUDE_API_KEY"     env-required:"true"`
	Model       string  `yaml:"model"       env:"CLAUDE_MODEL"       env-default:"claude-3-7-sonnet-latest"`
	MaxTokens   int64   `yaml:"max_tokens"  env:"CLAUDE_MAX_TOKENS"  env-default:"4000"`
	Temperature float64 `yaml:"temperature" env:"CLAUDE_TEMPERATURE" env-default:"0.7"`
}

// StripeConfig holds payment provider settings.
type StripeConfig struct {
	APIKey        string `yaml:"api_key"        env:"STRIPE_API_KEY"`
	WebhookSecret string `yaml:"webhook_secret" env:"STRIPE_WEBHOOK_SECRET" env-required:"true"`
}

// LimitsConfig holds free-tier quotas.
type LimitsConfig struct {
	MaxFreePrompts      int `yaml:"max_free_prompts"      env:"LIMITS_MAX_FREE_PROMPTS"      env-default:"10"`
	MaxFreeImprovements int `yaml:"max_free_improvements" env:"LIMITS_MAX_FREE_IMPROVEMENTS" env-default:"3"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,Stripe-Signature"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// AllowedEmails returns the admin allowlist as a lookup set. Emails are
// lowercased and trimmed. The set is built once at startup and treated as
// immutable afterwards.
func (c AdminConfig) AllowedEmails() map[string]struct{} {
	set := make(map[string]struct{})
	for _, e := range strings.Split(c.Emails, ",") {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			set[e] = struct{}{}
		}
	}
	return set
}
