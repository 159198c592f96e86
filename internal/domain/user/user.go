package user

import (
	"fmt"
	"time"

	vo "litreview/internal/domain/user/valueobjects"
	"litreview/internal/shared/biztime"
)

// User is a registered account. Profile data stays minimal: a username and
// the bcrypt hash of the password.
type User struct {
	id           uint
	username     *vo.Username
	passwordHash string
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser creates a user that has not been persisted yet.
func NewUser(username *vo.Username, passwordHash string) (*User, error) {
	if username == nil {
		return nil, fmt.Errorf("username is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	now := biztime.NowUTC()
	return &User{
		username:     username,
		passwordHash: passwordHash,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructUser rebuilds a user from persistence.
func ReconstructUser(id uint, username string, passwordHash string, createdAt, updatedAt time.Time) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}

	name, err := vo.NewUsername(username)
	if err != nil {
		return nil, fmt.Errorf("invalid stored username: %w", err)
	}

	return &User{
		id:           id,
		username:     name,
		passwordHash: passwordHash,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Username() string {
	return u.username.String()
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// SetPasswordHash replaces the stored hash after a password change.
func (u *User) SetPasswordHash(hash string) error {
	if hash == "" {
		return fmt.Errorf("password hash is required")
	}
	u.passwordHash = hash
	u.updatedAt = biztime.NowUTC()
	return nil
}
