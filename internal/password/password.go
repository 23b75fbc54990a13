// Package password checks account passwords before they are hashed.
package password

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	passwordvalidator "github.com/wagslane/go-password-validator"
)

const (
	MinLength      = 8
	MaxLength      = 128
	MinEntropyBits = 50

	// attribute parts shorter than this are ignored
	minAttributeLength = 3
)

var (
	ErrTooShort         = fmt.Errorf("password must be at least %d characters long", MinLength)
	ErrTooLong          = fmt.Errorf("password must be at most %d characters long", MaxLength)
	ErrEntirelyNumeric  = errors.New("password must not be entirely numeric")
	ErrSimilarToAccount = errors.New("password is too similar to the account details")
	ErrTooWeak          = errors.New("password is too weak")
)

// Validate reports whether pw is acceptable for an account described by
// attributes, typically the username, email, first and last name.
func Validate(pw string, attributes ...string) error {
	n := utf8.RuneCountInString(pw)
	switch {
	case n < MinLength:
		return ErrTooShort
	case n > MaxLength:
		return ErrTooLong
	case strings.IndexFunc(pw, func(r rune) bool { return !unicode.IsDigit(r) }) < 0:
		return ErrEntirelyNumeric
	}

	lower := strings.ToLower(pw)
	for _, attr := range attributes {
		for _, part := range attributeParts(attr) {
			if strings.Contains(lower, part) {
				return ErrSimilarToAccount
			}
		}
	}

	if err := passwordvalidator.Validate(pw, MinEntropyBits); err != nil {
		return errors.Join(ErrTooWeak, err)
	}
	return nil
}

// attributeParts splits an attribute on common separators so that a dotted
// username is matched piecewise. Only the local part of an email counts.
func attributeParts(attr string) []string {
	if local, _, ok := strings.Cut(attr, "@"); ok {
		attr = local
	}
	fields := strings.FieldsFunc(strings.ToLower(attr), func(r rune) bool {
		return r == '.' || r == '_' || r == '-' || r == '+' || unicode.IsSpace(r)
	})
	parts := fields[:0]
	for _, f := range fields {
		if utf8.RuneCountInString(f) >= minAttributeLength {
			parts = append(parts, f)
		}
	}
	return parts
}
