package types

import "errors"

// Config holds the resolved settings the CLI uses to open a phone book.
type Config struct {
	File     string `json:"file" yaml:"file,omitempty"`
	LogLevel string `json:"log_level" yaml:"log_level,omitempty"`
}

// Defaults applied when neither flags, config.yaml nor the environment
// provide a value.
const (
	DefaultFile     = "phonebook.json"
	DefaultLogLevel = LogLevelWarn
)

// Log levels accepted in config.yaml.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// Config validation errors.
var (
	ErrFileEmpty       = errors.New("data file must not be empty")
	ErrLogLevelUnknown = errors.New("unknown log level")
)

// knownLogLevels lists the levels that Validate accepts.
var knownLogLevels = map[string]bool{
	LogLevelDebug: true,
	LogLevelInfo:  true,
	LogLevelWarn:  true,
	LogLevelError: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure. An empty LogLevel is valid and means
// DefaultLogLevel.
func (c Config) Validate() error {
	if c.File == "" {
		return ErrFileEmpty
	}
	if c.LogLevel != "" && !knownLogLevels[c.LogLevel] {
		return ErrLogLevelUnknown
	}
	return nil
}
