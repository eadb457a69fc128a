package domain

import "time"

// User represents an account that can own leads. Authentication happens
// upstream; the import engine only resolves users for owner assignment.
type User struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	Email     string    `json:"email"`
	Active    bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// Identity is the authenticated caller, as established by the identity
// middleware from trusted gateway headers.
type Identity struct {
	TenantID string
	UserID   string
	Roles    []string
}

// IsAdmin reports whether the identity carries the admin role.
func (i Identity) IsAdmin() bool {
	for _, r := range i.Roles {
		if r == "admin" {
			return true
		}
	}
	return false
}
