package options

import (
	"fmt"

	"github.com/spf13/pflag"
)

// LogOptions configures logging output.
type LogOptions struct {
	// Level is the minimum log level: debug, info, warn or error.
	Level string `json:"level" mapstructure:"level"`

	// Path is the log file path. Logs always go to stderr too.
	Path string `json:"path" mapstructure:"path"`
}

// NewLogOptions creates a LogOptions with defaults.
func NewLogOptions() *LogOptions {
	return &LogOptions{
		Level: "info",
		Path:  "logs/taskmind.log",
	}
}

// Validate checks the LogOptions for correctness.
func (o *LogOptions) Validate() []error {
	var errs []error

	switch o.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("invalid log level %q, must be one of debug, info, warn, error", o.Level))
	}

	return errs
}

// AddFlags adds the LogOptions flags to the given flag set.
func (o *LogOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Level, "log.level", o.Level, "Minimum log level: debug, info, warn or error.")
	fs.StringVar(&o.Path, "log.path", o.Path, "Log file path.")
}
