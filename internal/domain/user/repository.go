package user

import "context"

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmailAndCompany(ctx context.Context, email, companyID string) (*User, error)
}
