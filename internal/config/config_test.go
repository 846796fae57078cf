package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// TestNewConfig verifies that NewConfig returns a Config with all expected default values.
// Changes to defaults should make this test fail.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	t.Run("default DataFile is elden_ring_weapon.csv", func(t *testing.T) {
		t.Parallel()
		if cfg.DataFile != "elden_ring_weapon.csv" {
			t.Errorf("expected DataFile to be 'elden_ring_weapon.csv', got '%s'", cfg.DataFile)
		}
	})

	t.Run("default Limit is 5", func(t *testing.T) {
		t.Parallel()
		if cfg.Limit != 5 {
			t.Errorf("expected Limit to be 5, got %d", cfg.Limit)
		}
	})

	t.Run("default Delimiter is comma", func(t *testing.T) {
		t.Parallel()
		if cfg.Delimiter != ',' {
			t.Errorf("expected Delimiter to be ',', got %q", cfg.Delimiter)
		}
	})

	t.Run("default Engine is memory", func(t *testing.T) {
		t.Parallel()
		if cfg.Engine != EngineMemory {
			t.Errorf("expected Engine to be memory, got %q", cfg.Engine)
		}
	})

	t.Run("default format is text", func(t *testing.T) {
		t.Parallel()
		if cfg.Format() != FormatText {
			t.Errorf("expected text format, got %q", cfg.Format())
		}
	})

	t.Run("default LogFormat is text", func(t *testing.T) {
		t.Parallel()
		if cfg.LogFormat != LogFormatText {
			t.Errorf("expected text log format, got %q", cfg.LogFormat)
		}
	})

	t.Run("defaults are valid", func(t *testing.T) {
		t.Parallel()
		if err := cfg.Validate(); err != nil {
			t.Errorf("expected default config to be valid, got %v", err)
		}
	})
}

// TestConfigValidate tests the Validate method with various configurations.
// Each test case is designed to test one specific validation rule.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr error
	}{
		{
			name:    "valid config returns nil",
			modify:  func(*Config) {},
			wantErr: nil,
		},
		{
			name:    "empty data file",
			modify:  func(c *Config) { c.DataFile = "" },
			wantErr: ErrNoDataFile,
		},
		{
			name:    "zero limit",
			modify:  func(c *Config) { c.Limit = 0 },
			wantErr: ErrInvalidLimit,
		},
		{
			name:    "negative limit",
			modify:  func(c *Config) { c.Limit = -3 },
			wantErr: ErrInvalidLimit,
		},
		{
			name:    "quote delimiter",
			modify:  func(c *Config) { c.Delimiter = '"' },
			wantErr: ErrInvalidDelimiter,
		},
		{
			name:    "newline delimiter",
			modify:  func(c *Config) { c.Delimiter = '\n' },
			wantErr: ErrInvalidDelimiter,
		},
		{
			name:    "tab delimiter",
			modify:  func(c *Config) { c.Delimiter = '\t' },
			wantErr: nil,
		},
		{
			name:    "sqlite engine",
			modify:  func(c *Config) { c.Engine = EngineSQLite },
			wantErr: nil,
		},
		{
			name:    "unknown engine",
			modify:  func(c *Config) { c.Engine = "duckdb" },
			wantErr: ErrUnknownEngine,
		},
		{
			name:    "json log format",
			modify:  func(c *Config) { c.LogFormat = LogFormatJSON },
			wantErr: nil,
		},
		{
			name:    "unknown log format",
			modify:  func(c *Config) { c.LogFormat = "logfmt" },
			wantErr: ErrUnknownLogFormat,
		},
		{
			name: "json and markdown together",
			modify: func(c *Config) {
				c.JSONReport = true
				c.MarkdownReport = true
			},
			wantErr: ErrConflictingReportFormats,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := NewConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestParseDelimiter tests conversion of config file delimiters.
func TestParseDelimiter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    rune
		wantErr bool
	}{
		{in: ",", want: ','},
		{in: ";", want: ';'},
		{in: "|", want: '|'},
		{in: `\t`, want: '\t'},
		{in: "\t", want: '\t'},
		{in: "", wantErr: true},
		{in: ",,", wantErr: true},
		{in: `"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := ParseDelimiter(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDelimiter) {
					t.Errorf("expected ErrInvalidDelimiter, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseDelimiter(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// TestConfigApply tests merging config file values into a Config.
func TestConfigApply(t *testing.T) {
	t.Parallel()

	t.Run("nil file leaves config unchanged", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		if err := cfg.Apply(nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if *cfg != *NewConfig() {
			t.Errorf("expected defaults, got %+v", cfg)
		}
	})

	t.Run("copies set fields", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		err := cfg.Apply(&File{
			Data:      "weapons.tsv",
			Delimiter: `\t`,
			Limit:     10,
			Engine:    EngineSQLite,
			Format:    FormatMarkdown,
			LogFormat: LogFormatJSON,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.DataFile != "weapons.tsv" {
			t.Errorf("expected DataFile weapons.tsv, got %q", cfg.DataFile)
		}
		if cfg.Delimiter != '\t' {
			t.Errorf("expected tab delimiter, got %q", cfg.Delimiter)
		}
		if cfg.Limit != 10 {
			t.Errorf("expected Limit 10, got %d", cfg.Limit)
		}
		if cfg.Engine != EngineSQLite {
			t.Errorf("expected sqlite engine, got %q", cfg.Engine)
		}
		if cfg.Format() != FormatMarkdown {
			t.Errorf("expected markdown format, got %q", cfg.Format())
		}
		if cfg.LogFormat != LogFormatJSON {
			t.Errorf("expected json log format, got %q", cfg.LogFormat)
		}
	})

	t.Run("zero fields keep defaults", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		if err := cfg.Apply(&File{Limit: 3}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Limit != 3 {
			t.Errorf("expected Limit 3, got %d", cfg.Limit)
		}
		if cfg.DataFile != DefaultDataFile {
			t.Errorf("expected default DataFile, got %q", cfg.DataFile)
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		if err := cfg.Apply(&File{Format: "html"}); !errors.Is(err, ErrUnknownFormat) {
			t.Errorf("expected ErrUnknownFormat, got %v", err)
		}
	})

	t.Run("invalid delimiter", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		if err := cfg.Apply(&File{Delimiter: "::"}); !errors.Is(err, ErrInvalidDelimiter) {
			t.Errorf("expected ErrInvalidDelimiter, got %v", err)
		}
	})
}

// TestLoadConfigFile tests the LoadConfigFile function.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("returns ErrConfigNotFound for non-existent file", func(t *testing.T) {
		t.Parallel()

		cfg, err := LoadConfigFile("/nonexistent/path/.weaponstats")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("expected ErrConfigNotFound, got: %v", err)
		}
		if cfg != nil {
			t.Error("expected nil config when file not found")
		}
	})

	t.Run("loads valid YAML config", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), ".weaponstats")
		content := `data: data/weapons.csv
delimiter: ";"
limit: 8
engine: sqlite
format: json
log_format: json
`
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		cfg, err := LoadConfigFile(configPath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := File{
			Data:      "data/weapons.csv",
			Delimiter: ";",
			Limit:     8,
			Engine:    "sqlite",
			Format:    "json",
			LogFormat: "json",
		}
		if *cfg != want {
			t.Errorf("expected %+v, got %+v", want, *cfg)
		}
	})

	t.Run("returns error for invalid YAML", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), ".weaponstats")
		if err := os.WriteFile(configPath, []byte(`invalid: yaml: content: [}`), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		if _, err := LoadConfigFile(configPath); err == nil {
			t.Error("expected error for invalid YAML")
		}
	})
}

// TestFindConfigFile tests the FindConfigFile function.
func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("returns explicit path if exists", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), "custom.yaml")
		if err := os.WriteFile(configPath, []byte("limit: 3"), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		if result := FindConfigFile(configPath); result != configPath {
			t.Errorf("expected %q, got %q", configPath, result)
		}
	})

	t.Run("returns empty for non-existent explicit path", func(t *testing.T) {
		t.Parallel()

		if result := FindConfigFile("/nonexistent/path/config.yaml"); result != "" {
			t.Errorf("expected empty string, got %q", result)
		}
	})
}

// TestXDGConfigDir tests the XDG config directory.
func TestXDGConfigDir(t *testing.T) {
	t.Parallel()

	dir := XDGConfigDir()
	if filepath.Base(dir) != AppName {
		t.Errorf("expected XDG config dir to end with %q, got %q", AppName, dir)
	}
}

func TestGlobalConfigFile(t *testing.T) {
	t.Parallel()

	path := GlobalConfigFile()
	if filepath.Base(path) != GlobalConfigName {
		t.Errorf("expected %q file name, got %q", GlobalConfigName, path)
	}
	if filepath.Dir(path) != XDGConfigDir() {
		t.Errorf("expected file in %q, got %q", XDGConfigDir(), path)
	}
}
