// Package config handles configuration for the worldmesh tools.
package config

// Config holds all tool settings.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Export  ExportConfig  `yaml:"export"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// ExportConfig holds glTF export settings.
type ExportConfig struct {
	Binary    bool   `yaml:"binary"`    // Write .glb instead of .gltf
	Generator string `yaml:"generator"` // Generator string stamped into the asset
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Export: ExportConfig{
			Binary:    false,
			Generator: "worldmesh",
		},
	}
}
