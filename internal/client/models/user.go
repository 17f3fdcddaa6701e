// Package models defines the data structures exchanged between the admin
// CLI and the site backend.
package models

// UserProfile is a denormalized copy of the authenticated principal, stored
// alongside the session token for display purposes only. It is never used
// for authorization decisions; those belong to the server.
type UserProfile struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}
