package users

import "errors"

// ErrUserNotFound is returned by repositories when no user matches
var ErrUserNotFound = errors.New("user not found")

type UserRepo interface {
	Upsert(user *User) error
	GetByEmail(email string) (*User, error)
	GetByName(name string) (*User, error)
	List() ([]*User, error)
}
