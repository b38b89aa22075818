package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	DB      DBConfig
	JWT     JWTConfig
	Log     LogConfig
	CORS    CORSConfig
	Company CompanyConfig
	Billing BillingConfig
	GitHub  GitHubConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret             string        `mapstructure:"secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_expiry"`
	Issuer             string        `mapstructure:"issuer"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// CompanyConfig is the issuing company's letterhead, printed in the
// header block of exported invoices.
type CompanyConfig struct {
	Name    string `mapstructure:"name"`
	Address string `mapstructure:"address"`
	Phone   string `mapstructure:"phone"`
	Email   string `mapstructure:"email"`
	Website string `mapstructure:"website"`
}

// BillingConfig holds invoice calculation settings.
type BillingConfig struct {
	// AllowNegativeBase lets a fixed discount exceed the subtotal instead
	// of clamping it. Off by default.
	AllowNegativeBase bool `mapstructure:"allow_negative_base"`
	// DefaultTaxRate is the tax percentage applied when a creation request
	// omits one.
	DefaultTaxRate float64 `mapstructure:"default_tax_rate"`
}

// GitHubConfig holds issue-sync settings. Token has no default and must
// be supplied at runtime; it is never written to logs.
type GitHubConfig struct {
	Owner string `mapstructure:"owner"`
	Repo  string `mapstructure:"repo"`
	Token string `mapstructure:"token"`
}

// Load reads configuration from environment variables with the TECHINVOICE_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("TECHINVOICE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "techinvoice")
	v.SetDefault("db.password", "techinvoice_secret")
	v.SetDefault("db.name", "techinvoice_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "techinvoice")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Company letterhead defaults
	v.SetDefault("company.name", "TechInvoice Solutions")
	v.SetDefault("company.address", "123 Tech Street, Silicon Valley, CA 94000")
	v.SetDefault("company.phone", "+1 (555) 123-4567")
	v.SetDefault("company.email", "contact@techinvoice.com")
	v.SetDefault("company.website", "www.techinvoice.com")

	// Billing defaults
	v.SetDefault("billing.allow_negative_base", false)
	v.SetDefault("billing.default_tax_rate", 10.0)

	// GitHub defaults: owner/repo only. The token deliberately has no default.
	v.SetDefault("github.owner", "")
	v.SetDefault("github.repo", "")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                 "TECHINVOICE_SERVER_PORT",
		"server.read_timeout":         "TECHINVOICE_SERVER_READ_TIMEOUT",
		"server.write_timeout":        "TECHINVOICE_SERVER_WRITE_TIMEOUT",
		"server.environment":          "TECHINVOICE_SERVER_ENVIRONMENT",
		"db.host":                     "TECHINVOICE_DB_HOST",
		"db.port":                     "TECHINVOICE_DB_PORT",
		"db.user":                     "TECHINVOICE_DB_USER",
		"db.password":                 "TECHINVOICE_DB_PASSWORD",
		"db.name":                     "TECHINVOICE_DB_NAME",
		"db.sslmode":                  "TECHINVOICE_DB_SSLMODE",
		"db.max_open":                 "TECHINVOICE_DB_MAX_OPEN",
		"db.max_idle":                 "TECHINVOICE_DB_MAX_IDLE",
		"jwt.secret":                  "TECHINVOICE_JWT_SECRET",
		"jwt.access_expiry":           "TECHINVOICE_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":          "TECHINVOICE_JWT_REFRESH_EXPIRY",
		"jwt.issuer":                  "TECHINVOICE_JWT_ISSUER",
		"log.level":                   "TECHINVOICE_LOG_LEVEL",
		"log.format":                  "TECHINVOICE_LOG_FORMAT",
		"cors.allowed_origins":        "TECHINVOICE_CORS_ALLOWED_ORIGINS",
		"company.name":                "TECHINVOICE_COMPANY_NAME",
		"company.address":             "TECHINVOICE_COMPANY_ADDRESS",
		"company.phone":               "TECHINVOICE_COMPANY_PHONE",
		"company.email":               "TECHINVOICE_COMPANY_EMAIL",
		"company.website":             "TECHINVOICE_COMPANY_WEBSITE",
		"billing.allow_negative_base": "TECHINVOICE_BILLING_ALLOW_NEGATIVE_BASE",
		"billing.default_tax_rate":    "TECHINVOICE_BILLING_DEFAULT_TAX_RATE",
		"github.owner":                "TECHINVOICE_GITHUB_OWNER",
		"github.repo":                 "TECHINVOICE_GITHUB_REPO",
		"github.token":                "TECHINVOICE_GITHUB_TOKEN",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if TECHINVOICE_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("TECHINVOICE_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:             v.GetString("jwt.secret"),
		AccessTokenExpiry:  v.GetDuration("jwt.access_expiry"),
		RefreshTokenExpiry: v.GetDuration("jwt.refresh_expiry"),
		Issuer:             v.GetString("jwt.issuer"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.Company = CompanyConfig{
		Name:    v.GetString("company.name"),
		Address: v.GetString("company.address"),
		Phone:   v.GetString("company.phone"),
		Email:   v.GetString("company.email"),
		Website: v.GetString("company.website"),
	}

	cfg.Billing = BillingConfig{
		AllowNegativeBase: v.GetBool("billing.allow_negative_base"),
		DefaultTaxRate:    v.GetFloat64("billing.default_tax_rate"),
	}

	cfg.GitHub = GitHubConfig{
		Owner: v.GetString("github.owner"),
		Repo:  v.GetString("github.repo"),
		Token: v.GetString("github.token"),
	}

	return cfg, nil
}
