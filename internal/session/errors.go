package session

import (
	"fmt"

	"github.com/crispai/interview-assistant/internal/notify"
)

// ErrCode is a typed error code enum for consistent validation error
// identification across the candidate flow.
type ErrCode string

const (
	ErrUnsupportedResume ErrCode = "UNSUPPORTED_RESUME_TYPE"
	ErrResumeTooLarge    ErrCode = "RESUME_TOO_LARGE"
	ErrResumeUnreadable  ErrCode = "RESUME_UNREADABLE"
	ErrMissingFields     ErrCode = "MISSING_FIELDS"
	ErrAnswerRequired    ErrCode = "ANSWER_REQUIRED"
	ErrSessionPaused     ErrCode = "SESSION_PAUSED"
	ErrInvalidPhase      ErrCode = "INVALID_PHASE"
)

// Title returns the short user-facing headline for a given error code.
func Title(code ErrCode) string {
	switch code {
	case ErrUnsupportedResume, ErrResumeTooLarge, ErrResumeUnreadable:
		return "Invalid file type"
	case ErrMissingFields:
		return "Missing information"
	case ErrAnswerRequired:
		return "Answer required"
	case ErrSessionPaused:
		return "Interview paused"
	default:
		return "Invalid action"
	}
}

// Message returns a human-readable description for a given error code.
func Message(code ErrCode) string {
	switch code {
	case ErrUnsupportedResume:
		return "Please upload a PDF or DOCX file."
	case ErrResumeTooLarge:
		return "The uploaded file exceeds the size limit."
	case ErrResumeUnreadable:
		return "The uploaded file could not be read."
	case ErrMissingFields:
		return "Please fill in all required fields."
	case ErrAnswerRequired:
		return "Please provide an answer before submitting."
	case ErrSessionPaused:
		return "Resume the interview before continuing."
	case ErrInvalidPhase:
		return "This action is not available right now."
	default:
		return "An unexpected error occurred."
	}
}

// ValidationError is the single error taxonomy of the candidate flow. Every
// occurrence is locally recoverable: the session stays on its current step
// and the user is re-prompted.
type ValidationError struct {
	Code   ErrCode
	Fields map[string]string // optional field name → message detail
}

// NewValidationError builds a ValidationError for the given code.
func NewValidationError(code ErrCode) *ValidationError {
	return &ValidationError{Code: code}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("%s: %s (%d field(s))", e.Code, Message(e.Code), len(e.Fields))
	}
	return fmt.Sprintf("%s: %s", e.Code, Message(e.Code))
}

// Notification projects the error into a user-facing notification.
func (e *ValidationError) Notification() notify.Notification {
	return notify.Notification{
		Title:       Title(e.Code),
		Description: Message(e.Code),
		Severity:    notify.SeverityError,
	}
}
