package config

import (
	"fmt"

	"patterns/internal/render"
	"patterns/pkg/logging"
)

// GetDefaultConfig returns the configuration that reproduces the classic demo output.
func GetDefaultConfig() PatternsConfig {
	return PatternsConfig{
		GlobalSettings: GlobalSettings{
			LogLevel: "info",
			Output:   string(render.FormatText),
		},
		Adapter: AdapterConfig{
			TimeFormat: "2006-01-02 15:04:05",
		},
		Bridge: BridgeConfig{
			UserMessage:  "Welcome aboard!",
			AlertMessage: "CPU temperature high!",
		},
	}
}

// Validate reports the first invalid setting.
func (c PatternsConfig) Validate() error {
	if _, err := logging.ParseLevel(c.GlobalSettings.LogLevel); err != nil {
		return fmt.Errorf("globalSettings.logLevel: %w", err)
	}
	if _, err := render.ParseFormat(c.GlobalSettings.Output); err != nil {
		return fmt.Errorf("globalSettings.output: %w", err)
	}
	return nil
}
