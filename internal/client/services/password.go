package services

import (
	"fmt"
	"strings"
	"unicode"
)

const passwordMinLength = 8

const passwordSpecialChars = `!@#$%^&*(),.?":{}|<>`

// ValidatePassword enforces the account password policy: at least 8
// characters with one uppercase letter, one lowercase letter, one digit
// and one special character.
func ValidatePassword(password string) error {
	if len(password) < passwordMinLength {
		return fmt.Errorf("%w: password must be at least %d characters long", ErrValidation, passwordMinLength)
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(passwordSpecialChars, r):
			hasSpecial = true
		}
	}

	switch {
	case !hasUpper:
		return fmt.Errorf("%w: password must contain an uppercase letter", ErrValidation)
	case !hasLower:
		return fmt.Errorf("%w: password must contain a lowercase letter", ErrValidation)
	case !hasDigit:
		return fmt.Errorf("%w: password must contain a digit", ErrValidation)
	case !hasSpecial:
		return fmt.Errorf("%w: password must contain a special character", ErrValidation)
	}
	return nil
}
