package entity

import "time"

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// ValidRole reports whether r is one of the two known roles. Anything else,
// including the empty string, falls back to RoleUser at registration.
func ValidRole(r string) bool {
	return r == string(RoleUser) || r == string(RoleAdmin)
}

type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	Password       string    `json:"-"`
	ProfilePicture string    `json:"profilePicture"`
	Role           UserRole  `json:"role"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
