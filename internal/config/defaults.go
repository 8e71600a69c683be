package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Storage: StorageConfig{
			Path: "~/.t2048/scores.db",
		},
		Display: DisplayConfig{
			TickRate:   60,
			SlideTicks: 8, // ~133ms at 60fps
			PopTicks:   6,
		},
		Server: ServerConfig{
			Address:     ":2048",
			HostKeyPath: ".ssh/t2048_ed25519",
			IdleMinutes: 30,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
