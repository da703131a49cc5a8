package entity

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	// Session errors
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionBusy     = errors.New("estimation is in progress")
	ErrNoResult        = errors.New("estimation result not available")

	// Validation errors
	ErrInvalidParameter  = errors.New("invalid parameter")
	ErrUnsupportedFormat = errors.New("unsupported format")

	// Estimation service errors
	ErrMissingCredential = errors.New("estimation service API key is not set")
)

// User facing messages
const (
	MsgValidationFailed = "Будь ласка, заповніть обов'язкові поля: місцезнаходження, площа та кількість кімнат."
	MsgResponseParse    = "Не вдалося обробити відповідь від сервісу. Спробуйте уточнити ваш запит."
	MsgServiceFailure   = "Не вдалося отримати оцінку. Будь ласка, спробуйте ще раз пізніше."
)

// UserError is an error that carries a message safe to show to the user
type UserError interface {
	error
	UserMessage() string
}

// ValidationError is returned when required form fields are missing or invalid
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %v", e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

func (e *ValidationError) UserMessage() string { return MsgValidationFailed }

// ConfigurationError is returned when the estimation service cannot be constructed
type ConfigurationError struct {
	Err error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %v", e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// ResponseParseError is returned when the service payload is malformed or incomplete
type ResponseParseError struct {
	Payload string
	Err     error
}

func (e *ResponseParseError) Error() string {
	return fmt.Sprintf("parse estimation response: %v", e.Err)
}

func (e *ResponseParseError) Unwrap() error { return e.Err }

func (e *ResponseParseError) UserMessage() string { return MsgResponseParse }

// ServiceError is returned for any failure reaching or using the estimation service
type ServiceError struct {
	Err error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("estimation service: %v", e.Err)
}

func (e *ServiceError) Unwrap() error { return e.Err }

func (e *ServiceError) UserMessage() string { return MsgServiceFailure }

// UserMessage returns the message to show for err.
// Errors without a user message map to the generic retry-later message.
func UserMessage(err error) string {
	var ue UserError
	if errors.As(err, &ue) {
		return ue.UserMessage()
	}
	return MsgServiceFailure
}
