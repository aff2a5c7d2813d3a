// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleUser indicates a regular user role.
	RoleUser Role = "user"
	// RoleAdmin indicates an administrator role.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// AccessLevel gates content visibility for a user.
type AccessLevel string

const (
	// AccessFree is the default level for anonymous-grade content.
	AccessFree AccessLevel = "free"
	// AccessLogin unlocks content restricted to signed-in users.
	AccessLogin AccessLevel = "login"
	// AccessPremium unlocks premium knowledge content.
	AccessPremium AccessLevel = "premium"
)

// String returns the string representation of the AccessLevel.
func (a AccessLevel) String() string {
	return string(a)
}

// IsValid checks if the AccessLevel is a valid value.
func (a AccessLevel) IsValid() bool {
	switch a {
	case AccessFree, AccessLogin, AccessPremium:
		return true
	default:
		return false
	}
}
