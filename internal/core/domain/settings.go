package domain

const unknownDescription = "Unknown"

// LogFormat selects the slog handler used for run logs.
type LogFormat string

// Available log formats.
const (
	// LogFormatText writes key=value records.
	LogFormatText LogFormat = "text"

	// LogFormatJSON writes one JSON object per record.
	LogFormatJSON LogFormat = "json"
)

// IsValid returns true if the log format is recognised.
func (f LogFormat) IsValid() bool {
	return f == LogFormatText || f == LogFormatJSON
}

// String returns the string representation.
func (f LogFormat) String() string {
	return string(f)
}

// LogLevel is the minimum level of records written to the log.
type LogLevel string

// Available log levels.
const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// IsValid returns true if the log level is recognised.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (l LogLevel) String() string {
	return string(l)
}

// InputFormat selects how an input stream is split into events.
type InputFormat string

// Available input formats.
const (
	// InputFormatText reads one event per line.
	InputFormatText InputFormat = "text"

	// InputFormatJSON reads a JSON array of event strings.
	InputFormatJSON InputFormat = "json"
)

// IsValid returns true if the input format is recognised.
func (f InputFormat) IsValid() bool {
	return f == InputFormatText || f == InputFormatJSON
}

// String returns the string representation.
func (f InputFormat) String() string {
	return string(f)
}

// Description returns a human-readable description of the format.
func (f InputFormat) Description() string {
	switch f {
	case InputFormatText:
		return "Text (one command per line)"
	case InputFormatJSON:
		return "JSON (array of command strings)"
	default:
		return unknownDescription
	}
}

// LogSettings configures run logging.
type LogSettings struct {
	Level  LogLevel
	Format LogFormat
}

// OutputSettings configures how the summary is written.
type OutputSettings struct {
	// Color styles the summary when writing to a terminal.
	Color bool
}

// InputSettings configures how input is read.
type InputSettings struct {
	Format InputFormat
}

// Settings holds all application settings.
type Settings struct {
	Log    LogSettings
	Output OutputSettings
	Input  InputSettings
}

// DefaultSettings returns settings with sensible defaults.
func DefaultSettings() Settings {
	return Settings{
		Log: LogSettings{
			Level:  LogLevelInfo,
			Format: LogFormatText,
		},
		Output: OutputSettings{
			Color: false,
		},
		Input: InputSettings{
			Format: InputFormatText,
		},
	}
}
