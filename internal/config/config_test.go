package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	// Define test environment variables
	const (
		ServerAddress   = "test_server_address"
		DataFile        = "test_data_file"
		AdminUser       = "test_admin_user"
		AdminPassword   = "test_admin_password"
		SessionSecret   = "test_session_secret"
		SessionDuration = "30m"
		Environment     = "production"
		BaseURL         = "https://example.com"
		ContactEmail    = "test@example.com"
	)

	// Set the environment variables for testing
	setEnvVariables(t, map[string]string{
		"SERVER_ADDRESS":   ServerAddress,
		"DATA_FILE":        DataFile,
		"ADMIN_USER":       AdminUser,
		"ADMIN_PASSWORD":   AdminPassword,
		"SESSION_SECRET":   SessionSecret,
		"SESSION_DURATION": SessionDuration,
		"ENVIRONMENT":      Environment,
		"BASE_URL":         BaseURL,
		"CONTACT_EMAIL":    ContactEmail,
	})

	// Load the config
	config, err := LoadConfig("../../.")
	require.NoError(t, err)

	// require that the loaded configuration matches the environment variables
	require.Equal(t, ServerAddress, config.ServerAddress)
	require.Equal(t, DataFile, config.DataFile)
	require.Equal(t, AdminUser, config.AdminUser)
	require.Equal(t, AdminPassword, config.AdminPassword)
	require.Equal(t, SessionSecret, config.SessionSecret)
	require.Equal(t, Environment, config.Environment)
	require.Equal(t, BaseURL, config.BaseURL)
	require.Equal(t, ContactEmail, config.ContactEmail)
	require.True(t, config.IsProduction())

	expectedSessionDuration, _ := time.ParseDuration(SessionDuration)
	require.Equal(t, expectedSessionDuration, config.SessionDuration)

	// Reset the environment variables after the test
	resetEnvVariables()
}

func TestLoadConfigDefaultSessionDuration(t *testing.T) {
	setEnvVariables(t, map[string]string{
		"SESSION_DURATION": "0",
	})

	config, err := LoadConfig("../../.")
	require.NoError(t, err)
	require.Equal(t, time.Hour, config.SessionDuration)

	resetEnvVariables()
}

// Helper function to set environment variables for testing
func setEnvVariables(t *testing.T, envVars map[string]string) {
	for key, value := range envVars {
		err := viper.BindEnv(key)
		require.NoError(t, err)
		viper.Set(key, value)
	}
}

// Helper function to reset environment variables after testing
func resetEnvVariables() {
	viper.Reset()
}
