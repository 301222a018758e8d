package auth

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const MinPasswordLength = 6

var (
	ErrMissingField     = errors.New("all fields are required")
	ErrMissingName      = errors.New("full name is required")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	ErrPasswordMismatch = errors.New("password confirmation does not match")
	ErrInvalidEmail     = errors.New("invalid email format")
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Form is the sign-in / sign-up form. ConfirmPassword and FullName are only
// read when registering.
type Form struct {
	Email           string
	Password        string
	ConfirmPassword string
	FullName        string
}

func ValidateLogin(f Form) error {
	return validate(f, false)
}

func ValidateRegister(f Form) error {
	return validate(f, true)
}

func validate(f Form, register bool) error {
	var missing []string
	if f.Email == "" {
		missing = append(missing, "email")
	}
	if f.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrMissingField, strings.Join(missing, ", "))
	}
	if register {
		if strings.TrimSpace(f.FullName) == "" {
			return fmt.Errorf("%w: missing full name", ErrMissingName)
		}
		if n := utf8.RuneCountInString(f.Password); n < MinPasswordLength {
			return fmt.Errorf("%w: got %d", ErrPasswordTooShort, n)
		}
		if f.Password != f.ConfirmPassword {
			return fmt.Errorf("%w: confirm password", ErrPasswordMismatch)
		}
	}
	if !emailRegex.MatchString(f.Email) {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, f.Email)
	}
	return nil
}
