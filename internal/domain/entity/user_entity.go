package entity

import (
	"time"
)

// User is the aggregate root for the identity domain.
// Passwords are stored as bcrypt hashes in Password field and must never
// leave the service layer in API payloads.
//
// OTP and OTPExpiry mirror the code held in the ephemeral cache. The cache is
// the source of truth for verification; these fields are an audit copy only.
type User struct {
	ID              string
	Email           string
	Password        string
	Name            string
	ProfilePicture  string
	IsEmailVerified bool
	OTP             string
	OTPExpiry       *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Public returns the fields safe to expose in API responses.
func (u *User) Public() map[string]any {
	return map[string]any{
		"id":              u.ID,
		"email":           u.Email,
		"name":            u.Name,
		"profile_picture": u.ProfilePicture,
		"email_verified":  u.IsEmailVerified,
		"created_at":      u.CreatedAt,
		"updated_at":      u.UpdatedAt,
	}
}
