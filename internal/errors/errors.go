// Package apperrors provides domain-specific error types for wordpass.
// These error types include contextual information to aid debugging and error reporting.
package apperrors

import "fmt"

// ConfigurationError represents configuration-related errors.
// It includes the configuration file path and specific key that caused the error.
type ConfigurationError struct {
	ConfigPath string // Path to the configuration file, empty when none was used
	Key        string // Configuration key that caused the error
	Err        error  // Underlying error
}

// Error implements the error interface for ConfigurationError.
func (e *ConfigurationError) Error() string {
	source := e.ConfigPath
	if source == "" {
		source = "(defaults/environment/flags)"
	}
	if e.Key != "" {
		return fmt.Sprintf("configuration error in %s (key: %s): %v", source, e.Key, e.Err)
	}
	return fmt.Sprintf("configuration error in %s: %v", source, e.Err)
}

// Unwrap returns the underlying error for error wrapping chains.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// DictionaryError represents a word list that could not be read.
type DictionaryError struct {
	Path string // Path given with --dictionary
	Err  error  // Underlying I/O error
}

// Error implements the error interface for DictionaryError.
func (e *DictionaryError) Error() string {
	return fmt.Sprintf("failed to read dictionary %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error for error wrapping chains.
func (e *DictionaryError) Unwrap() error {
	return e.Err
}

// SampleError reports a word count the dictionary cannot satisfy.
type SampleError struct {
	Requested int
	Available int
}

// Error implements the error interface for SampleError.
func (e *SampleError) Error() string {
	if e.Requested < 0 {
		return fmt.Sprintf("cannot select %d words: count must not be negative", e.Requested)
	}
	return fmt.Sprintf("cannot select %d distinct words from a dictionary of %d", e.Requested, e.Available)
}
