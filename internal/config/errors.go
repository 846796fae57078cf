package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
var (
	// ErrNoDataFile is returned when the data file path is empty.
	ErrNoDataFile = errors.New("no data file specified")

	// ErrInvalidLimit is returned when the top-N limit is not positive.
	ErrInvalidLimit = errors.New("invalid limit: must be positive")

	// ErrInvalidDelimiter is returned when the delimiter cannot separate CSV fields.
	// encoding/csv rejects quotes, carriage returns, newlines and the
	// Unicode replacement character.
	ErrInvalidDelimiter = errors.New("invalid delimiter: must be a single character other than quote or newline")

	// ErrUnknownEngine is returned when the query engine name is not supported.
	ErrUnknownEngine = errors.New("unknown engine: must be memory or sqlite")

	// ErrUnknownFormat is returned when the report format in the config file
	// is not supported.
	ErrUnknownFormat = errors.New("unknown format: must be text, json or markdown")

	// ErrUnknownLogFormat is returned when the log format is neither text nor json.
	ErrUnknownLogFormat = errors.New("unknown log format: must be text or json")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")
)
