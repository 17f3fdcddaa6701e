// Package models contains database-facing entities for the server side.
package models

import "time"

// User is an admin account row.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}
