package entity

import (
	"time"
)

// User is the aggregate root for the account domain.
// PasswordHash holds a 60-byte bcrypt digest and must never leave the
// backend; anything exposed over HTTP or embedded in a token goes
// through SafeUser instead.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SafeUser is the projection of a User that is safe to embed in a
// session token or return to a client: id, username, email and nothing
// else. Constructed fresh on every login/restore via ToSafeUser.
type SafeUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// ToSafeUser maps a User to its safe projection.
func (u *User) ToSafeUser() SafeUser {
	return SafeUser{ID: u.ID, Username: u.Username, Email: u.Email}
}
