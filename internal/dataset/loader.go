package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultDelimiter is the field separator of the weapon table.
const DefaultDelimiter = ','

// StdinPath is the data path that reads the table from standard input.
const StdinPath = "-"

// loader holds the options of a single Load call.
type loader struct {
	delimiter rune
	logger    *slog.Logger
}

// LoadOption configures Load.
type LoadOption func(*loader)

// WithDelimiter sets the field separator. The default is a comma.
func WithDelimiter(r rune) LoadOption {
	return func(l *loader) {
		l.delimiter = r
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) LoadOption {
	return func(l *loader) {
		l.logger = logger
	}
}

// newLoader applies opts over the defaults.
func newLoader(opts []LoadOption) *loader {
	l := &loader{delimiter: DefaultDelimiter}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = slog.Default()
	}
	return l
}

// Load reads the delimited file at path into a Table.
//
// A missing file yields *NotFoundError. Every other failure, including an
// empty file or a row wider than the header, yields *GeneralError. Rows
// shorter than the header are padded with empty cells, and stray quotes
// inside unquoted fields are kept as text.
func Load(path string, opts ...LoadOption) (*Table, error) {
	l := newLoader(opts)

	f, err := os.Open(path) //nolint:gosec // User-provided data path is intentional
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, &GeneralError{Op: "load", Err: err}
	}
	defer f.Close()

	t, err := l.read(f)
	if err != nil {
		return nil, &GeneralError{Op: "load", Err: err}
	}

	l.logger.Debug("data file loaded",
		"path", path,
		"columns", len(t.Columns),
		"rows", t.Len(),
	)
	return t, nil
}

// Parse reads a table from r. It is Load without the file handling.
func Parse(r io.Reader, opts ...LoadOption) (*Table, error) {
	l := newLoader(opts)

	t, err := l.read(r)
	if err != nil {
		return nil, &GeneralError{Op: "load", Err: err}
	}

	l.logger.Debug("data stream parsed",
		"columns", len(t.Columns),
		"rows", t.Len(),
	)
	return t, nil
}

// read parses the header row and all records.
// A leading byte order mark is consumed so it never sticks to the first header.
func (l *loader) read(r io.Reader) (*Table, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	cr := csv.NewReader(decoded)
	cr.Comma = l.delimiter
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	t := newTable(header)
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		line, _ := cr.FieldPos(0)
		switch {
		case len(record) > len(header):
			return nil, fmt.Errorf("%w: line %d has %d fields, header has %d",
				ErrTooManyFields, line, len(record), len(header))
		case len(record) < len(header):
			l.logger.Debug("padding short record",
				"line", line,
				"fields", len(record),
				"record", strings.Join(record, string(l.delimiter)),
			)
			record = append(record, make([]string, len(header)-len(record))...)
		}
		t.Rows = append(t.Rows, record)
	}

	return t, nil
}

// occurrenceName returns the addressable name of the nth occurrence of header.
func occurrenceName(header string, n int) string {
	if n <= 1 {
		return header
	}
	return header + "." + strconv.Itoa(n-1)
}
