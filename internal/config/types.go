package config

// PatternsConfig is the top-level configuration structure for patterns.
type PatternsConfig struct {
	GlobalSettings GlobalSettings `yaml:"globalSettings"`
	Adapter        AdapterConfig  `yaml:"adapter"`
	Bridge         BridgeConfig   `yaml:"bridge"`
}

// GlobalSettings apply to every command.
type GlobalSettings struct {
	LogLevel string `yaml:"logLevel,omitempty"` // debug, info, warn, error
	Output   string `yaml:"output,omitempty"`   // text, yaml, styled
}

// AdapterConfig tunes the adapter demo.
type AdapterConfig struct {
	// TimeFormat is a Go reference-time layout.
	TimeFormat string `yaml:"timeFormat,omitempty"`
}

// BridgeConfig holds the contents sent by the bridge demo.
type BridgeConfig struct {
	UserMessage  string `yaml:"userMessage,omitempty"`
	AlertMessage string `yaml:"alertMessage,omitempty"`
}
