package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Gemini    GeminiConfig    `mapstructure:"gemini"`
	Mail      MailConfig      `mapstructure:"mail"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Sources   SourcesConfig   `mapstructure:"sources"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// DatabaseConfig holds database connection configuration. The sqlite driver
// is the default and only needs Path; the mysql driver uses the host fields.
type DatabaseConfig struct {
	Driver   string `mapstructure:"driver"`
	Path     string `mapstructure:"path"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
}

// GeminiConfig holds the generative-text API configuration
type GeminiConfig struct {
	APIKey   string        `mapstructure:"api_key"`
	Model    string        `mapstructure:"model"`
	Endpoint string        `mapstructure:"endpoint"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// MailConfig holds delivery configuration. Mode selects between plain SMTP
// submission and the Gmail API.
type MailConfig struct {
	Mode      string `mapstructure:"mode"`
	Sender    string `mapstructure:"sender"`
	Recipient string `mapstructure:"recipient"`

	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`

	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	RefreshToken string `mapstructure:"refresh_token"`
	UserEmail    string `mapstructure:"user_email"`
}

// SchedulerConfig holds scheduler and run-level configuration
type SchedulerConfig struct {
	IntervalHours int           `mapstructure:"interval_hours"`
	RetentionDays int           `mapstructure:"retention_days"`
	MaxRetries    int           `mapstructure:"max_retries"`
	HTTPTimeout   time.Duration `mapstructure:"http_timeout"`
}

// SourcesConfig holds content source configuration
type SourcesConfig struct {
	CatalogEnabled bool   `mapstructure:"catalog_enabled"`
	APIURL         string `mapstructure:"api_url"`
}

// RetentionWindow returns the retention window as a duration.
func (c *SchedulerConfig) RetentionWindow() time.Duration {
	return time.Duration(c.RetentionDays) * 24 * time.Hour
}

// LoadConfig loads configuration from environment variables and config file
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set defaults
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Environment variables override config file
	viper.AutomaticEnv()

	// Bind environment variables
	bindEnvVars()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")

	viper.SetDefault("database.driver", "sqlite")
	viper.SetDefault("database.path", "scholarships.db")
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 3306)

	viper.SetDefault("gemini.model", "gemini-pro")
	viper.SetDefault("gemini.endpoint", "https://generativelanguage.googleapis.com/v1beta")
	viper.SetDefault("gemini.timeout", "60s")

	viper.SetDefault("mail.mode", "smtp")
	viper.SetDefault("mail.smtp_host", "smtp.gmail.com")
	viper.SetDefault("mail.smtp_port", 587)

	viper.SetDefault("scheduler.interval_hours", 24)
	viper.SetDefault("scheduler.retention_days", 7)
	viper.SetDefault("scheduler.max_retries", 5)
	viper.SetDefault("scheduler.http_timeout", "30s")

	viper.SetDefault("sources.catalog_enabled", true)
}

// bindEnvVars binds environment variables to configuration keys
func bindEnvVars() {
	// Server
	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("server.read_timeout", "SERVER_READ_TIMEOUT")
	viper.BindEnv("server.write_timeout", "SERVER_WRITE_TIMEOUT")

	// Database
	viper.BindEnv("database.driver", "DB_DRIVER")
	viper.BindEnv("database.path", "DB_PATH")
	viper.BindEnv("database.host", "DB_HOST")
	viper.BindEnv("database.port", "DB_PORT")
	viper.BindEnv("database.user", "DB_USER")
	viper.BindEnv("database.password", "DB_PASSWORD")
	viper.BindEnv("database.dbname", "DB_NAME")

	// Gemini
	viper.BindEnv("gemini.api_key", "GOOGLE_API_KEY")
	viper.BindEnv("gemini.model", "GEMINI_MODEL")
	viper.BindEnv("gemini.endpoint", "GEMINI_ENDPOINT")

	// Mail
	viper.BindEnv("mail.mode", "MAIL_MODE")
	viper.BindEnv("mail.sender", "EMAIL_ADDRESS")
	viper.BindEnv("mail.recipient", "RECIPIENT_EMAIL")
	viper.BindEnv("mail.smtp_host", "SMTP_HOST")
	viper.BindEnv("mail.smtp_port", "SMTP_PORT")
	viper.BindEnv("mail.smtp_user", "SMTP_USER")
	viper.BindEnv("mail.smtp_password", "EMAIL_PASSWORD")
	viper.BindEnv("mail.client_id", "GMAIL_CLIENT_ID")
	viper.BindEnv("mail.client_secret", "GMAIL_CLIENT_SECRET")
	viper.BindEnv("mail.refresh_token", "GMAIL_REFRESH_TOKEN")
	viper.BindEnv("mail.user_email", "GMAIL_USER_EMAIL")

	// Scheduler
	viper.BindEnv("scheduler.interval_hours", "SCHEDULER_INTERVAL_HOURS")
	viper.BindEnv("scheduler.retention_days", "SCHEDULER_RETENTION_DAYS")
	viper.BindEnv("scheduler.max_retries", "SCHEDULER_MAX_RETRIES")
	viper.BindEnv("scheduler.http_timeout", "SCHEDULER_HTTP_TIMEOUT")

	// Sources
	viper.BindEnv("sources.catalog_enabled", "SOURCES_CATALOG_ENABLED")
	viper.BindEnv("sources.api_url", "SOURCES_API_URL")
}

// GetDSN returns the mysql connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.User, c.Password, c.Host, c.Port, c.DBName)
}

// Validate validates the configuration. A missing credential or recipient is
// a fatal configuration error, not a runtime-degraded mode.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	switch c.Database.Driver {
	case "sqlite":
		if c.Database.Path == "" {
			return fmt.Errorf("database path is required for sqlite")
		}
	case "mysql":
		if c.Database.Host == "" || c.Database.User == "" || c.Database.DBName == "" {
			return fmt.Errorf("database host, user, and dbname are required for mysql")
		}
	default:
		return fmt.Errorf("unknown database driver: %q (valid: sqlite, mysql)", c.Database.Driver)
	}

	if c.Gemini.APIKey == "" {
		return fmt.Errorf("Gemini API key is required")
	}

	if c.Mail.Recipient == "" {
		return fmt.Errorf("mail recipient is required")
	}

	switch c.Mail.Mode {
	case "smtp":
		if c.Mail.Sender == "" || c.Mail.SMTPPassword == "" {
			return fmt.Errorf("SMTP sender and password are required when mail mode is smtp")
		}
	case "gmail":
		if c.Mail.ClientID == "" || c.Mail.ClientSecret == "" || c.Mail.RefreshToken == "" {
			return fmt.Errorf("Gmail OAuth2 credentials are required when mail mode is gmail")
		}
	default:
		return fmt.Errorf("unknown mail mode: %q (valid: smtp, gmail)", c.Mail.Mode)
	}

	if c.Scheduler.IntervalHours <= 0 {
		return fmt.Errorf("scheduler interval must be greater than 0")
	}
	if c.Scheduler.RetentionDays <= 0 {
		return fmt.Errorf("retention window must be greater than 0")
	}

	return nil
}
