package valueobjects

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// MaxUsernameLength is counted in characters after normalization.
const MaxUsernameLength = 150

// usernameRegex allows unicode letters and digits plus @ . + - _
var usernameRegex = regexp.MustCompile(`^[\p{L}\p{N}@.+\-_]+$`)

// Username is a login handle. Values are NFKC-normalized so visually
// identical compatibility forms map to the same account.
type Username struct {
	value string
}

// NewUsername normalizes and validates a raw username.
func NewUsername(value string) (*Username, error) {
	normalized := NormalizeUsername(value)

	if normalized == "" {
		return nil, fmt.Errorf("username cannot be empty")
	}

	if utf8.RuneCountInString(normalized) > MaxUsernameLength {
		return nil, fmt.Errorf("username cannot exceed %d characters", MaxUsernameLength)
	}

	if !usernameRegex.MatchString(normalized) {
		return nil, fmt.Errorf("username may contain only letters, digits and @/./+/-/_ characters")
	}

	return &Username{value: normalized}, nil
}

// NormalizeUsername applies the same normalization as NewUsername without
// validating. Lookups by username use it so that sign-in matches sign-up.
func NormalizeUsername(value string) string {
	return norm.NFKC.String(strings.TrimSpace(value))
}

func (u *Username) String() string {
	return u.value
}

func (u *Username) Equals(other *Username) bool {
	if u == nil || other == nil {
		return u == other
	}
	return u.value == other.value
}
