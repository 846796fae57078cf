// Package config provides configuration structures and utilities for weaponstats.
// It defines the data file, parsing, query engine and report format options,
// and loads the optional .weaponstats YAML file.
package config
