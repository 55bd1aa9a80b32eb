package auth

import (
	"errors"
	"fmt"
)

const (
	MsgCredentialsRequired = "Email and password are required"
	MsgInvalidEmail        = "Please enter a valid email address"
	MsgInvalidCredentials  = "Invalid email or password"
	MsgUnexpected          = "An unexpected error occurred. Please try again."
)

// ErrAuthenticationFailure is returned when no credential matches. It never
// says which of the two fields was wrong.
var ErrAuthenticationFailure = errors.New(MsgInvalidCredentials)

// ValidationError reports input rejected before any lookup took place.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// UnexpectedError wraps anything else that went wrong during a check.
type UnexpectedError struct {
	Err error
}

func (e *UnexpectedError) Error() string {
	return fmt.Sprintf("%s (%v)", MsgUnexpected, e.Err)
}

func (e *UnexpectedError) Unwrap() error {
	return e.Err
}

// UserMessage maps any error returned by Verify to the text shown to users.
func UserMessage(err error) string {
	var vErr *ValidationError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &vErr):
		return vErr.Message
	case errors.Is(err, ErrAuthenticationFailure):
		return MsgInvalidCredentials
	default:
		return MsgUnexpected
	}
}
