package logger

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum level: debug, info, warn, error.
	Level string `mapstructure:"level" default:"info"`
	// Format is the encoding: console or json.
	Format string `mapstructure:"format" default:"console"`
	// Dir, when set, also writes logs to a dated file (yyyy-mm-dd.log) in this directory.
	Dir string `mapstructure:"dir" default:""`
}
