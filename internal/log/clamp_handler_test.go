package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

// TestClamp tests string truncation.
func TestClamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{
			name: "short string unchanged",
			in:   "Dagger",
			max:  10,
			want: "Dagger",
		},
		{
			name: "exact length unchanged",
			in:   "Claymore",
			max:  8,
			want: "Claymore",
		},
		{
			name: "long string truncated",
			in:   "Ruins Greatsword",
			max:  5,
			want: "Ruins...(11 more)",
		},
		{
			name: "counts runes not bytes",
			in:   "ÉpéeÉpée",
			max:  4,
			want: "Épée...(4 more)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Clamp(tt.in, tt.max); got != tt.want {
				t.Errorf("Clamp(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}

// TestClampHandler_ClampsStrings tests that long string attributes are clamped.
func TestClampHandler_ClampsStrings(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := NewClampHandler(slog.NewTextHandler(&buf, nil), 10)
	logger := slog.New(handler)

	logger.Info("row", "record", strings.Repeat("x", 50), "line", 7)

	output := buf.String()
	if strings.Contains(output, strings.Repeat("x", 11)) {
		t.Errorf("expected record to be clamped, got %q", output)
	}
	if !strings.Contains(output, "(40 more)") {
		t.Errorf("expected truncation marker, got %q", output)
	}
	if !strings.Contains(output, "line=7") {
		t.Errorf("expected non-string attribute to pass through, got %q", output)
	}
}

// TestClampHandler_LogLevels tests the verbose switch.
func TestClampHandler_LogLevels(t *testing.T) {
	t.Parallel()

	t.Run("non-verbose hides debug and info", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewLogger(&buf, false)
		logger.Debug("debug message")
		logger.Info("info message")
		logger.Warn("warn message")

		output := buf.String()
		if strings.Contains(output, "debug message") || strings.Contains(output, "info message") {
			t.Errorf("expected debug and info to be filtered, got %q", output)
		}
		if !strings.Contains(output, "warn message") {
			t.Errorf("expected warn message, got %q", output)
		}
	})

	t.Run("verbose shows debug", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewLogger(&buf, true)
		logger.Debug("debug message")

		if !strings.Contains(buf.String(), "debug message") {
			t.Errorf("expected debug message, got %q", buf.String())
		}
	})
}

// TestClampHandler_WithAttrs tests that attributes added with With are clamped.
func TestClampHandler_WithAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewClampHandler(slog.NewTextHandler(&buf, nil), 4))
	logger.With("file", "elden_ring_weapon.csv").Info("loading")

	if !strings.Contains(buf.String(), `file="elde...(17 more)"`) {
		t.Errorf("expected clamped With attribute, got %q", buf.String())
	}
}

// TestClampHandler_WithGroup tests that grouped attributes are clamped.
func TestClampHandler_WithGroup(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewClampHandler(slog.NewTextHandler(&buf, nil), 3))
	logger.WithGroup("row").Info("parsed", slog.Group("weapon", "name", "Claymore"))

	if !strings.Contains(buf.String(), `row.weapon.name="Cla...(5 more)"`) {
		t.Errorf("expected clamped group attribute, got %q", buf.String())
	}
}

// TestNewJSONLogger tests the JSON logger.
func TestNewJSONLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, false)
	logger.Warn("wide row", "record", strings.Repeat("a", DefaultMaxValueLen+5))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", buf.String(), err)
	}
	record, ok := entry["record"].(string)
	if !ok {
		t.Fatalf("expected record string, got %T", entry["record"])
	}
	if !strings.HasSuffix(record, "...(5 more)") {
		t.Errorf("expected clamped record, got %q", record)
	}
}

// TestNewClampHandler_Defaults tests nil handler and non-positive max.
func TestNewClampHandler_Defaults(t *testing.T) {
	t.Parallel()

	h := NewClampHandler(nil, 0)
	if h.handler == nil {
		t.Error("expected default handler")
	}
	if h.max != DefaultMaxValueLen {
		t.Errorf("expected max %d, got %d", DefaultMaxValueLen, h.max)
	}
}
