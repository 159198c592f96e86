package user

import "context"

// Repository resolves and stores users. Lookups that find nothing return a
// not-found AppError.
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	// GetByUsername matches the normalized username exactly.
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByIDs(ctx context.Context, ids []uint) ([]*User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	UpdatePassword(ctx context.Context, u *User) error
	List(ctx context.Context, filter ListFilter) ([]*User, int64, error)
}

// ListFilter narrows a user listing. Search matches a username substring.
type ListFilter struct {
	Search    string
	ExcludeID uint
	Page      int
	PageSize  int
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}
