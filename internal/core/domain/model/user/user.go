package user

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not created through
	// the NewUser factory method.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")
)

// User is the read model of an authenticated person as resolved by the
// identity collaborator. The core never creates or mutates users; it only
// reads identity, email, and role to make authorization and notification
// decisions.
type User struct {
	id    kernel.UUID
	email string
	role  Role

	isConstructed bool
}

// NewUser creates a validated User read model.
// The id must be a valid UUID, the email non-empty, and the role a member of
// the closed role set.
func NewUser(id kernel.UUID, email string, role Role) (User, error) {
	u := User{isConstructed: true}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setRole(role),
	); err != nil {
		return User{}, err
	}

	return u, nil
}

// Validate ensures the User instance was properly constructed through NewUser.
func (u User) Validate() error {
	if !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user's unique identifier.
func (u User) ID() kernel.UUID {
	return u.id
}

// Email returns the user's notification address.
func (u User) Email() string {
	return u.email
}

// Role returns the user's role.
func (u User) Role() Role {
	return u.role
}

// IsStaff reports whether the user holds a staff role.
func (u User) IsStaff() bool {
	return u.role.IsStaff()
}

// Owns reports whether the user is the owning customer of the given customer id.
func (u User) Owns(customerID kernel.UUID) bool {
	return u.id.IsEqual(customerID)
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("email")
	}
	u.email = email
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
