package newsroom

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCredential means no model API key is configured.
	ErrMissingCredential = errors.New("newsroom: model credential not configured")
	// ErrNoContent means the model answered without any text.
	ErrNoContent = errors.New("newsroom: no content generated")
	// ErrBusy means a generation is already in flight for the session.
	ErrBusy = errors.New("newsroom: generation already in progress")
	// ErrNoResult means the operation needs an analysis result first.
	ErrNoResult = errors.New("newsroom: no analysis result")
	// ErrIndexOutOfRange means an interview index does not exist.
	ErrIndexOutOfRange = errors.New("newsroom: interview index out of range")
	// ErrUnknownField means a form field name is not recognised.
	ErrUnknownField = errors.New("newsroom: unknown field")
	// ErrIntervieweeNotFound means no interviewee has the given id.
	ErrIntervieweeNotFound = errors.New("newsroom: interviewee not found")
)

// ParseError wraps a model response that is not valid JSON or does not match
// the expected schema.
type ParseError struct {
	Target string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("newsroom: parse %s response: %v", e.Target, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
