package user

import "context"

// Lookup resolves accounts for the login and session flows.
type Lookup interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id int) (*User, error)
}

// Repository adds the case-insensitive e-mail check that gym onboarding and
// the admin bootstrap rely on.
type Repository interface {
	Lookup
	EmailExists(ctx context.Context, email string) (bool, error)
}

var _ Repository = (*PostgresRepository)(nil)
