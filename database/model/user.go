// Package model defines the gorm entities persisted by the marketplace.
package model

import "time"

// Roles assignable to a user account.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is a person with platform access. PasswordHash is set only for
// accounts using direct login; an admin without a hash cannot log in.
type User struct {
	Id              string    `json:"id" gorm:"primaryKey"`
	Email           string    `json:"email" gorm:"uniqueIndex;not null"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	ProfileImageURL string    `json:"profileImageUrl"`
	Role            string    `json:"role" gorm:"not null;default:user"`
	PasswordHash    string    `json:"-" gorm:"column:password_hash"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// IsAdmin reports whether the account currently holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
