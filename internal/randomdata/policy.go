package randomdata

import (
	"errors"
	"fmt"
	"strings"
)

// PasswordPolicy describes what the registration form accepts. Keep it in sync with
// the shop: a password the form rejects fails silently as a validation message.
type PasswordPolicy struct {
	MinLength     int
	MaxLength     int
	RequireUpper  bool
	RequireDigit  bool
	RequireSymbol bool
}

// DefaultPasswordPolicy fits inside the shop's 4-20 character rule.
var DefaultPasswordPolicy = PasswordPolicy{
	MinLength:    8,
	MaxLength:    20,
	RequireUpper: true,
	RequireDigit: true,
}

// Policy violations
var (
	ErrPasswordLength = errors.New("password length out of range")
	ErrPasswordClass  = errors.New("password missing required character class")
)

// Validate reports the first rule s breaks.
func (p PasswordPolicy) Validate(s string) error {
	if len(s) < p.MinLength || (p.MaxLength > 0 && len(s) > p.MaxLength) {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrPasswordLength, len(s), p.MinLength, p.MaxLength)
	}
	if !strings.ContainsAny(s, lowerChars) {
		return fmt.Errorf("%w: lower-case letter", ErrPasswordClass)
	}
	if p.RequireUpper && !strings.ContainsAny(s, upperChars) {
		return fmt.Errorf("%w: upper-case letter", ErrPasswordClass)
	}
	if p.RequireDigit && !strings.ContainsAny(s, digitChars) {
		return fmt.Errorf("%w: digit", ErrPasswordClass)
	}
	if p.RequireSymbol && !strings.ContainsAny(s, symbolChars) {
		return fmt.Errorf("%w: symbol", ErrPasswordClass)
	}
	return nil
}

// length picks the generated length: a couple of characters above the minimum,
// capped at the maximum.
func (p PasswordPolicy) length() int {
	n := p.MinLength + 4
	if n < 4 {
		n = 4
	}
	if p.MaxLength > 0 && n > p.MaxLength {
		n = p.MaxLength
	}
	return n
}
