package domain

import "time"

// UserStatus represents lifecycle states for a dashboard account.
type UserStatus string

const (
	UserStatusActive    UserStatus = "ACTIVE"
	UserStatusSuspended UserStatus = "SUSPENDED"
)

// User is an analyst account with access to the dashboard. Users own no
// incidents; the incident collection is shared and replaced wholesale.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Status       UserStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
