package entity

import "time"

// Role tags a User with its capability set. Role-specific behavior is
// dispatched by switching on this value rather than by subtyping.
type Role string

const (
	RolePatient      Role = "patient"
	RolePractitioner Role = "practitioner"
	RoleAdmin        Role = "admin"
)

// User is the common identity record shared by all three roles.
// PasswordHash is a bcrypt digest, never the plaintext secret.
type User struct {
	ID           int64     `json:"id"`
	Role         Role      `json:"role"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"password_hash"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	CreatedAt    time.Time `json:"created_at"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// IsPatient checks if the user holds the patient role
func (u *User) IsPatient() bool {
	return u.Role == RolePatient
}

// IsPractitioner checks if the user holds the practitioner role
func (u *User) IsPractitioner() bool {
	return u.Role == RolePractitioner
}

// IsAdmin checks if the user holds the administrator role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
