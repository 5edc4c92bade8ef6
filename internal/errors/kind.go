package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind classifies a failure independently of its message text
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindDomainRule
	KindPersistence
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindDomainRule:
		return "domain_rule_violation"
	case KindPersistence:
		return "persistence_failure"
	case KindValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// Error is a tagged failure returned by services. Callers branch on Kind or Code,
// never on Message.
type Error struct {
	Kind    Kind
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the status code mapped from the error code
func (e *Error) HTTPStatus() int {
	return GetHTTPStatus(e.Code)
}

// NotFound builds a KindNotFound error. An empty message falls back to the code default.
func NotFound(code ErrorCode, message string) *Error {
	return newError(KindNotFound, code, message, nil)
}

// DomainRule builds a KindDomainRule error
func DomainRule(code ErrorCode, message string) *Error {
	return newError(KindDomainRule, code, message, nil)
}

// Validation builds a KindValidation error with the general validation code
func Validation(message string) *Error {
	return newError(KindValidation, ValidationGeneral, message, nil)
}

// Persistence wraps a store failure
func Persistence(err error) *Error {
	return newError(KindPersistence, SystemDatabaseError, "", err)
}

// AsError extracts an *Error from err's chain
func AsError(err error) (*Error, bool) {
	var e *Error
	if stderrors.As(err, &e) {
		return e, true
	}
	return nil, false
}

func newError(kind Kind, code ErrorCode, message string, err error) *Error {
	if message == "" {
		message = GetErrorMessage(code)
	}
	return &Error{Kind: kind, Code: code, Message: message, Err: err}
}
