package errors

import (
	"fmt"
	"time"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeNetwork represents network-related errors
	ErrorTypeNetwork ErrorType = "network"
	// ErrorTypeParsing represents HTML parsing errors
	ErrorTypeParsing ErrorType = "parsing"
	// ErrorTypeConfiguration represents configuration errors
	ErrorTypeConfiguration ErrorType = "configuration"
	// ErrorTypeValidation represents validation errors
	ErrorTypeValidation ErrorType = "validation"
	// ErrorTypePublisher represents publisher-related errors
	ErrorTypePublisher ErrorType = "publisher"
)

// WatcherError represents a watcher-specific error
type WatcherError struct {
	Type    ErrorType
	Brand   string
	Message string
	Err     error
	Time    time.Time
}

// Error implements the error interface
func (e *WatcherError) Error() string {
	if e.Brand == "" {
		if e.Err != nil {
			return fmt.Sprintf("[%s] %s - %v", e.Type, e.Message, e.Err)
		}
		return fmt.Sprintf("[%s] %s", e.Type, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %s - %v", e.Type, e.Brand, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Type, e.Brand, e.Message)
}

// Unwrap returns the underlying error
func (e *WatcherError) Unwrap() error {
	return e.Err
}

// IsFatal returns true if the error should abort the whole run.
// Only configuration errors are fatal; per-brand failures fold into
// error records.
func (e *WatcherError) IsFatal() bool {
	return e.Type == ErrorTypeConfiguration
}

// New creates a new WatcherError
func New(errType ErrorType, brand, message string, err error) *WatcherError {
	return &WatcherError{
		Type:    errType,
		Brand:   brand,
		Message: message,
		Err:     err,
		Time:    time.Now(),
	}
}

// NewNetwork creates a new network error
func NewNetwork(brand, message string, err error) *WatcherError {
	return New(ErrorTypeNetwork, brand, message, err)
}

// NewParsing creates a new parsing error
func NewParsing(brand, message string, err error) *WatcherError {
	return New(ErrorTypeParsing, brand, message, err)
}

// NewConfiguration creates a new configuration error
func NewConfiguration(message string, err error) *WatcherError {
	return New(ErrorTypeConfiguration, "", message, err)
}

// NewValidation creates a new validation error
func NewValidation(brand, message string) *WatcherError {
	return New(ErrorTypeValidation, brand, message, nil)
}

// NewPublisher creates a new publisher error
func NewPublisher(brand, message string, err error) *WatcherError {
	return New(ErrorTypePublisher, brand, message, err)
}
