package domain

import "time"

const (
	RoleAdmin  = "Admin"
	RoleLawyer = "Lawyer"
	RoleUser   = "User"
)

// Roles lists every role a token may carry.
var Roles = []string{RoleAdmin, RoleLawyer, RoleUser}

// User models an authenticated actor in the system.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

// Claims is the identity carried by a verified bearer token.
type Claims struct {
	UserID    int64
	Username  string
	Email     string
	Role      string
	ExpiresAt time.Time
}
