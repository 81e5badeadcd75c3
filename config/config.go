package config

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

type Config struct {
	ServerPort  string `mapstructure:"PORT"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	DbHost      string `mapstructure:"DB_HOST"`
	DbPort      string `mapstructure:"DB_PORT"`
	DbUser      string `mapstructure:"DB_USER"`
	DbPassword  string `mapstructure:"DB_PASSWORD"`
	DbName      string `mapstructure:"DB_NAME"`

	JWTSecret string `mapstructure:"JWT_SECRET"`

	// Prices are stored in NLe; USDRate is NLe per USD.
	DefaultCurrency string `mapstructure:"DEFAULT_CURRENCY"`
	USDRate         string `mapstructure:"USD_RATE"`

	SMTPHost string `mapstructure:"SMTP_HOST"`
	SMTPPort string `mapstructure:"SMTP_PORT"`
	SMTPUser string `mapstructure:"SMTP_USER"`
	SMTPPass string `mapstructure:"SMTP_PASS"`
	SMTPFrom string `mapstructure:"SMTP_FROM"`

	TwilioAccountSID   string `mapstructure:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken    string `mapstructure:"TWILIO_AUTH_TOKEN"`
	TwilioWhatsAppFrom string `mapstructure:"TWILIO_WHATSAPP_FROM"`

	AdminEmail    string `mapstructure:"ADMIN_EMAIL"`
	AdminWhatsApp string `mapstructure:"ADMIN_WHATSAPP"`

	CORSOrigins  string `mapstructure:"CORS_ORIGINS"`
	SupportEmail string `mapstructure:"SUPPORT_EMAIL"`
	SupportPhone string `mapstructure:"SUPPORT_PHONE"`
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	// .env is optional; environment variables alone are enough.
	_ = viper.ReadInConfig()

	for _, key := range []string{
		"PORT", "DATABASE_URL", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
		"JWT_SECRET", "DEFAULT_CURRENCY", "USD_RATE",
		"SMTP_HOST", "SMTP_PORT", "SMTP_USER", "SMTP_PASS", "SMTP_FROM",
		"TWILIO_ACCOUNT_SID", "TWILIO_AUTH_TOKEN", "TWILIO_WHATSAPP_FROM",
		"ADMIN_EMAIL", "ADMIN_WHATSAPP", "CORS_ORIGINS", "SUPPORT_EMAIL", "SUPPORT_PHONE",
	} {
		_ = viper.BindEnv(key)
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.DefaultCurrency == "" {
		cfg.DefaultCurrency = "NLE"
	}
	if cfg.USDRate == "" {
		cfg.USDRate = "22.50"
	}
	return cfg, nil
}

// DSN builds the postgres connection string, preferring DATABASE_URL.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DbHost, c.DbUser, c.DbPassword, c.DbName, c.DbPort,
	)
}

// Rate parses USD_RATE, falling back to 1 if it is unusable.
func (c *Config) Rate() decimal.Decimal {
	rate, err := decimal.NewFromString(c.USDRate)
	if err != nil || rate.IsZero() {
		return decimal.NewFromInt(1)
	}
	return rate
}

// SMTPEnabled reports whether the mail side channel is configured.
func (c *Config) SMTPEnabled() bool {
	return c.SMTPHost != "" && c.SMTPFrom != ""
}

// WhatsAppEnabled reports whether the Twilio side channel is configured.
func (c *Config) WhatsAppEnabled() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != "" && c.TwilioWhatsAppFrom != ""
}
