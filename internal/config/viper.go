package config

import (
	"fmt"
	"strings"

	"pricecat/internal/logging"

	"github.com/spf13/viper"
)

// InitConfig initializes the Viper configuration
func InitConfig() error {
	// Set config name and type
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Add config search paths
	viper.AddConfigPath(".") // Current directory only

	// Set environment variable prefix
	viper.SetEnvPrefix("PRICECAT")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults for all configuration values
	viper.SetDefault("aws.profile", "")
	viper.SetDefault("aws.region", "us-east-1")
	viper.SetDefault("app.log_format", "text")
	viper.SetDefault("app.log_level", "INFO")
	viper.SetDefault("output.pretty", false)
	viper.SetDefault("output.strict_exit", false)

	// Try to read config file but don't error if not found
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Only return error if it's not a missing config file
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is okay, we'll use defaults and env vars
	} else {
		logging.Debug("Loaded config file", map[string]interface{}{
			"path": viper.ConfigFileUsed(),
		})
	}

	return nil
}

// SetConfigFile sets a custom config file path and reloads the configuration
func SetConfigFile(configFile string) error {
	viper.SetConfigFile(configFile)

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading config file %s: %w", configFile, err)
	}

	logging.Debug("Loaded config file", map[string]interface{}{
		"path": viper.ConfigFileUsed(),
	})
	return nil
}

// Apply copies the resolved viper values into the global config
// instance. Flag bindings must be registered before calling this.
func Apply() {
	Config.Profile = viper.GetString("aws.profile")
	Config.Region = viper.GetString("aws.region")
	Config.LogFormat = viper.GetString("app.log_format")
	Config.Pretty = viper.GetBool("output.pretty")
	Config.StrictExit = viper.GetBool("output.strict_exit")
}
