package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from an app.env file or environment variables.
type Config struct {
	ServerAddress   string        `mapstructure:"SERVER_ADDRESS"`
	DataFile        string        `mapstructure:"DATA_FILE"`
	AdminUser       string        `mapstructure:"ADMIN_USER"`
	AdminPassword   string        `mapstructure:"ADMIN_PASSWORD"`
	SessionSecret   string        `mapstructure:"SESSION_SECRET"`
	SessionDuration time.Duration `mapstructure:"SESSION_DURATION"`
	Environment     string        `mapstructure:"ENVIRONMENT"`
	BaseURL         string        `mapstructure:"BASE_URL"`
	ContactEmail    string        `mapstructure:"CONTACT_EMAIL"`
}

// LoadConfig reads configuration from an env file in the given path,
// with environment variables taking precedence.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	if config.SessionDuration == 0 {
		config.SessionDuration = time.Hour
	}
	return
}

// IsProduction reports whether the app runs in production mode, which
// turns on the secure cookie flag and hides error details.
func (c Config) IsProduction() bool {
	return c.Environment == "production"
}
