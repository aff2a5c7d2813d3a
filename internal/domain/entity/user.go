package entity

import "time"

// User is the core identity record. It is keyed internally by an
// autoincrement ID and externally by the identity provider's opaque OpenID;
// the row is upserted on every sign-in.
type User struct {
	ID          uint
	OpenID      string // Opaque ID supplied by the external identity provider.
	Name        string
	Email       string
	LoginMethod string
	Role        Role
	AccessLevel AccessLevel

	// Profile fields, mutable by the owner only.
	Phone              string
	Address            string
	Bio                string
	PictureURL         string
	EmailNotifications bool
	OrderUpdates       bool

	LastSignedIn time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
