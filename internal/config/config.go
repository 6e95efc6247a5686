package config

import (
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	MongoDB  MongoDBConfig
	JWT      JWTConfig
	Payment  PaymentConfig
	Mail     MailConfig
	LogLevel string
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port         string
	AllowedHosts []string
}

// MongoDBConfig holds MongoDB-specific configuration
type MongoDBConfig struct {
	URI      string
	Database string
}

// JWTConfig holds JWT-specific configuration
type JWTConfig struct {
	Secret    string
	ExpiresIn int // seconds
}

// PaymentConfig holds registration fee and payment provider configuration.
// Amounts are in minor currency units (paise for INR).
type PaymentConfig struct {
	Currency   string
	SoloAmount int64
	DuoAmount  int64
	TeamAmount int64
	Provider   PaymentProviderConfig
}

// PaymentProviderConfig holds the payment provider API credentials
type PaymentProviderConfig struct {
	BaseURL   string
	KeyID     string
	KeySecret string
	MockAPI   bool
}

// MailConfig holds the outbound mail gateway configuration
type MailConfig struct {
	BaseURL  string
	APIKey   string
	Sender   string
	MockMail bool
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	// Set defaults
	setDefaults()

	// Read configuration
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file is not found, we'll use environment variables
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	// Unmarshal configuration
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// setDefaults sets default values for configuration
func setDefaults() {
	viper.SetDefault("Server.Port", "4000")
	viper.SetDefault("Server.AllowedHosts", []string{"localhost:3000"})
	viper.SetDefault("MongoDB.URI", "mongodb://localhost:27017")
	viper.SetDefault("MongoDB.Database", "hackbits")
	viper.SetDefault("JWT.ExpiresIn", 24*60*60) // 24 hours
	viper.SetDefault("LogLevel", "info")
	viper.SetDefault("Payment.Currency", "INR")
	viper.SetDefault("Payment.SoloAmount", 50000)  // ₹500
	viper.SetDefault("Payment.DuoAmount", 80000)   // ₹800
	viper.SetDefault("Payment.TeamAmount", 120000) // ₹1200
	viper.SetDefault("Payment.Provider.MockAPI", true)
	viper.SetDefault("Mail.Sender", "tickets@hackbits.tech")
	viper.SetDefault("Mail.MockMail", true)
}

// AmountFor returns the registration fee for a team size in minor units.
// Unknown sizes fall back to the team rate.
func (c PaymentConfig) AmountFor(size string) int64 {
	switch size {
	case "Solo":
		return c.SoloAmount
	case "Duo":
		return c.DuoAmount
	default:
		return c.TeamAmount
	}
}
