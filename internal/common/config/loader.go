// internal/common/config/loader.go
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func Load() (*Config, error) {
	loadEnvFile()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath(".")

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}
	viper.SetConfigName(fmt.Sprintf("config.%s", env))
	_ = viper.MergeInConfig() // ignore error if not found

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	overrideFromEnv(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// LoadFromFile loads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	loadEnvFile()

	viper.SetConfigFile(path)
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	overrideFromEnv(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func loadEnvFile() {
	for _, path := range []string{".env", "../.env", "../../.env"} {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

// overrideFromEnv keeps secrets out of the yaml files. The env names match the
// ones the deployment already uses.
func overrideFromEnv(cfg *Config) {
	setIfEmpty := func(dst *string, envKey string) {
		if *dst == "" {
			if val := os.Getenv(envKey); val != "" {
				*dst = val
			}
		}
	}

	setIfEmpty(&cfg.Google.CredentialsJSON, "GOOGLE_CREDENTIALS")
	setIfEmpty(&cfg.Google.DriveFolderID, "DRIVE_FOLDER_ID")
	setIfEmpty(&cfg.Store.Sheets.SpreadsheetID, "SHEET_ID")

	setIfEmpty(&cfg.Razorpay.KeyID, "RAZORPAY_KEY_ID")
	setIfEmpty(&cfg.Razorpay.KeySecret, "RAZORPAY_SECRET")

	setIfEmpty(&cfg.Mail.SMTP.Username, "ZOHO_EMAIL")
	setIfEmpty(&cfg.Mail.SMTP.Password, "ZOHO_APP_PASSWORD")
	setIfEmpty(&cfg.Notifications.FromAddress, "ZOHO_EMAIL")

	setIfEmpty(&cfg.Store.Postgres.User, "DB_USER")
	setIfEmpty(&cfg.Store.Postgres.Password, "DB_PASSWORD")
}

// applyDefaults sets default values for optional configuration fields.
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "agentpi-backend"
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 5000
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}

	if cfg.Store.Backend == "" {
		cfg.Store.Backend = "sheets"
	}
	if cfg.Store.Postgres.MaxConnections == 0 {
		cfg.Store.Postgres.MaxConnections = 25
	}
	if cfg.Store.Postgres.MaxIdle == 0 {
		cfg.Store.Postgres.MaxIdle = 5
	}
	if cfg.Store.Postgres.SSLMode == "" {
		cfg.Store.Postgres.SSLMode = "disable"
	}

	if cfg.Mail.Provider == "" {
		cfg.Mail.Provider = "smtp"
	}
	if cfg.Mail.SMTP.Host == "" {
		cfg.Mail.SMTP.Host = "smtp.zoho.in"
	}
	if cfg.Mail.SMTP.Port == 0 {
		cfg.Mail.SMTP.Port = 465
	}
	if cfg.Mail.SES.Region == "" {
		cfg.Mail.SES.Region = "ap-south-1"
	}

	if cfg.Notifications.FromName == "" {
		cfg.Notifications.FromName = "AgentPi"
	}
	if len(cfg.Notifications.ScreeningCC) == 0 {
		cfg.Notifications.ScreeningCC = []string{"hr@agentpi.in"}
	}
	if len(cfg.Notifications.PaymentCC) == 0 {
		cfg.Notifications.PaymentCC = []string{"hr@agentpi.in", "rohit.rajbhar@agentpi.in"}
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
}

// validateConfig validates critical configuration fields.
func validateConfig(cfg *Config) error {
	switch cfg.Store.Backend {
	case "sheets":
		if cfg.Store.Sheets.SpreadsheetID == "" {
			return fmt.Errorf("store.sheets.spreadsheet_id is required for the sheets backend")
		}
		if cfg.Google.CredentialsJSON == "" {
			return fmt.Errorf("google.credentials_json is required for the sheets backend")
		}
	case "postgres":
		if cfg.Store.Postgres.Host == "" {
			return fmt.Errorf("store.postgres.host is required for the postgres backend")
		}
		if cfg.Store.Postgres.Database == "" {
			return fmt.Errorf("store.postgres.database is required for the postgres backend")
		}
	case "redis":
		if cfg.Store.Redis.Address == "" {
			return fmt.Errorf("store.redis.address is required for the redis backend")
		}
	case "memory":
		// nothing to validate
	default:
		return fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}

	if cfg.Razorpay.KeySecret == "" {
		return fmt.Errorf("razorpay.key_secret is required")
	}

	switch cfg.Mail.Provider {
	case "smtp":
		if cfg.Mail.SMTP.Host == "" {
			return fmt.Errorf("mail.smtp.host is required for the smtp provider")
		}
	case "ses":
		if cfg.Mail.SES.Region == "" {
			return fmt.Errorf("mail.ses.region is required for the ses provider")
		}
	default:
		return fmt.Errorf("unknown mail provider %q", cfg.Mail.Provider)
	}

	if cfg.Notifications.FromAddress == "" {
		return fmt.Errorf("notifications.from_address is required")
	}

	return nil
}

// GetDuration converts seconds from config to time.Duration.
func GetDuration(seconds int) time.Duration {
	return time.Duration(seconds) * time.Second
}
