// Package auth holds the mock credential check used by the login flow.
//
// The credential set is compiled in and read-only: there is no signup,
// password change or persistence. Verification waits for a configurable
// latency so the UI behaves like it would against a real backend.
package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// UserProfile is what a successful login exposes about the account.
type UserProfile struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type credential struct {
	id          string
	email       string
	password    string
	displayName string
}

var validUsers = []credential{
	{id: "1", email: "user@example.com", password: "password123", displayName: "Demo User"},
	{id: "2", email: "admin@example.com", password: "admin123", displayName: "Admin User"},
}

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Verifier checks email/password pairs against the static credential set.
type Verifier struct {
	latency time.Duration
	users   []credential
}

func NewVerifier(latency time.Duration) *Verifier {
	if latency < 0 {
		latency = 0
	}
	return &Verifier{latency: latency, users: validUsers}
}

// IsValidEmail reports whether s looks like local@domain.tld.
func IsValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// Verify performs a single, non-retried credential check.
//
// Errors are one of *ValidationError, ErrAuthenticationFailure or
// *UnexpectedError. If ctx ends during the simulated latency the result is
// dropped and the context error is returned wrapped in *UnexpectedError.
func (v *Verifier) Verify(ctx context.Context, email, password string) (profile *UserProfile, err error) {
	if email == "" || password == "" {
		return nil, &ValidationError{Message: MsgCredentialsRequired}
	}
	if !IsValidEmail(email) {
		return nil, &ValidationError{Message: MsgInvalidEmail}
	}

	defer func() {
		if r := recover(); r != nil {
			profile = nil
			err = &UnexpectedError{Err: fmt.Errorf("panic during credential check: %v", r)}
		}
	}()

	if err := v.wait(ctx); err != nil {
		return nil, &UnexpectedError{Err: err}
	}

	for _, u := range v.users {
		if strings.EqualFold(u.email, email) &&
			subtle.ConstantTimeCompare([]byte(u.password), []byte(password)) == 1 {
			return &UserProfile{ID: u.id, Email: u.email, Name: u.displayName}, nil
		}
	}

	return nil, ErrAuthenticationFailure
}

func (v *Verifier) wait(ctx context.Context) error {
	if v.latency == 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(v.latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Users lists the public side of the credential set, in declaration order.
func (v *Verifier) Users() []UserProfile {
	out := make([]UserProfile, 0, len(v.users))
	for _, u := range v.users {
		out = append(out, UserProfile{ID: u.id, Email: u.email, Name: u.displayName})
	}
	return out
}

// DemoPassword returns the password of a listed account; the login page and
// the CLI print it as a hint.
func (v *Verifier) DemoPassword(email string) (string, bool) {
	for _, u := range v.users {
		if strings.EqualFold(u.email, email) {
			return u.password, true
		}
	}
	return "", false
}
