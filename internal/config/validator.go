package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ValidateConfig validates configuration values and returns an error if any are invalid.
// This function should be called after viper has loaded the configuration.
func ValidateConfig() error {
	var errors []string

	if strings.TrimSpace(viper.GetString("genome_file")) == "" {
		errors = append(errors, "genome_file must not be empty")
	}

	if viper.IsSet("iterations") {
		if n := viper.GetInt("iterations"); n <= 0 {
			errors = append(errors, fmt.Sprintf("iterations must be positive, got: %d", n))
		}
	}

	// Zero disables the cap.
	if viper.IsSet("record_limit") {
		if n := viper.GetInt("record_limit"); n < 0 {
			errors = append(errors, fmt.Sprintf("record_limit must not be negative, got: %d", n))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}
