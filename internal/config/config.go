package config

import (
	"path/filepath"
	"unicode/utf8"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultDataFile is the file analyzed when no path is given.
	// It is resolved relative to the current directory.
	DefaultDataFile = "elden_ring_weapon.csv"

	// DefaultLimit is the N of every top-N section.
	DefaultLimit = 5

	// DefaultDelimiter separates fields in the data file.
	DefaultDelimiter = ','

	// DefaultEngine answers the report queries in memory.
	DefaultEngine = EngineMemory

	// DefaultLogFormat writes key=value log lines.
	DefaultLogFormat = LogFormatText

	// AppName is the application name used for XDG directory paths.
	AppName = "weaponstats"
)

// Query engine names. They mirror the names accepted by stats.New.
const (
	EngineMemory = "memory"
	EngineSQLite = "sqlite"
)

// Report format names accepted in the config file.
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

// Log output formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config holds all configuration options for weaponstats.
// It is populated from the config file and CLI flags and passed through
// the application rather than kept in global state.
type Config struct {
	// DataFile is the path of the delimited weapon file.
	DataFile string

	// Delimiter separates fields in the data file.
	Delimiter rune

	// Limit is the number of entries in each top-N section.
	Limit int

	// Engine selects the query engine ("memory" or "sqlite").
	Engine string

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// LogFormat selects the stderr log encoding ("text" or "json").
	LogFormat string

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches the locations listed in FindConfigFile.
	ConfigFilePath string

	// JSONReport enables JSON report output instead of the text report.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output instead of the text report.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		DataFile:  DefaultDataFile,
		Delimiter: DefaultDelimiter,
		Limit:     DefaultLimit,
		Engine:    DefaultEngine,
		LogFormat: DefaultLogFormat,
	}
}

// XDGConfigDir returns the XDG config directory for weaponstats.
// On Linux: ~/.config/weaponstats
// On macOS: ~/Library/Application Support/weaponstats
// On Windows: %APPDATA%\weaponstats
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Format returns the selected report format name.
func (c *Config) Format() string {
	switch {
	case c.JSONReport:
		return FormatJSON
	case c.MarkdownReport:
		return FormatMarkdown
	default:
		return FormatText
	}
}

// Apply copies the values set in the config file into c.
// Zero values in f leave c unchanged.
func (c *Config) Apply(f *File) error {
	if f == nil {
		return nil
	}

	if f.Data != "" {
		c.DataFile = f.Data
	}
	if f.Limit != 0 {
		c.Limit = f.Limit
	}
	if f.Engine != "" {
		c.Engine = f.Engine
	}
	if f.LogFormat != "" {
		c.LogFormat = f.LogFormat
	}
	if f.Delimiter != "" {
		r, err := ParseDelimiter(f.Delimiter)
		if err != nil {
			return err
		}
		c.Delimiter = r
	}

	switch f.Format {
	case "":
	case FormatText:
		c.JSONReport, c.MarkdownReport = false, false
	case FormatJSON:
		c.JSONReport, c.MarkdownReport = true, false
	case FormatMarkdown:
		c.JSONReport, c.MarkdownReport = false, true
	default:
		return ErrUnknownFormat
	}

	return nil
}

// ParseDelimiter converts a one-character string into a delimiter rune.
// The escape `\t` is accepted for tab-separated files.
func ParseDelimiter(s string) (rune, error) {
	if s == `\t` {
		return '\t', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, ErrInvalidDelimiter
	}
	r, _ := utf8.DecodeRuneInString(s)
	if !validDelimiter(r) {
		return 0, ErrInvalidDelimiter
	}
	return r, nil
}

// validDelimiter applies the same rules encoding/csv uses for Reader.Comma.
func validDelimiter(r rune) bool {
	return r != 0 && r != '"' && r != '\r' && r != '\n' && r != utf8.RuneError && utf8.ValidRune(r)
}

// Validate checks if the configuration is valid.
// It returns the first problem found as one of the sentinel errors.
func (c *Config) Validate() error {
	if c.DataFile == "" {
		return ErrNoDataFile
	}

	if c.Limit <= 0 {
		return ErrInvalidLimit
	}

	if !validDelimiter(c.Delimiter) {
		return ErrInvalidDelimiter
	}

	if c.Engine != EngineMemory && c.Engine != EngineSQLite {
		return ErrUnknownEngine
	}

	if c.LogFormat != LogFormatText && c.LogFormat != LogFormatJSON {
		return ErrUnknownLogFormat
	}

	// JSONReport and MarkdownReport are mutually exclusive
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	return nil
}
