package valueobjects

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	MinPasswordLength = 8
	// bcrypt ignores input beyond 72 bytes
	MaxPasswordBytes = 72
)

// Password is a plaintext password that passed the password policy.
type Password struct {
	value string
}

// NewPassword validates plainPassword against the policy. username, when not
// empty, must not appear inside the password.
func NewPassword(plainPassword, username string) (*Password, error) {
	if err := validatePassword(plainPassword, username); err != nil {
		return nil, err
	}
	return &Password{value: plainPassword}, nil
}

func (p *Password) String() string {
	return p.value
}

func validatePassword(password, username string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLength)
	}

	if len(password) > MaxPasswordBytes {
		return fmt.Errorf("password must not exceed %d bytes", MaxPasswordBytes)
	}

	if isAllDigits(password) {
		return fmt.Errorf("password cannot be entirely numeric")
	}

	if username != "" && strings.Contains(strings.ToLower(password), strings.ToLower(username)) {
		return fmt.Errorf("password is too similar to the username")
	}

	return nil
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
