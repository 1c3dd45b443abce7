package config

import "github.com/bianoble/restamp/internal/resolve"

// Config represents the optional restamp.yaml file. Every field has a
// built-in default; command-line flags override whatever is loaded.
type Config struct {
	// Format is the strftime template rendered into the new file name.
	Format string `yaml:"format"`
	// Mode selects the date source: "auto", "exif", or "modified".
	Mode   string `yaml:"mode" validate:"omitempty,oneof=auto exif modified"`
	Logger Logger `yaml:"logger"`
}

// Logger holds the diagnostic logging configuration.
type Logger struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `yaml:"format" validate:"omitempty,oneof=text json logfmt"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Format: resolve.DefaultFormat,
		Mode:   "auto",
		Logger: Logger{Level: "info", Format: "text"},
	}
}
