package models

import (
	"time"
)

// UserIdentity is a local user record bound to a provider-issued identity
type UserIdentity struct {
	ID          int64     `json:"id" db:"id"`
	ExternalID  string    `json:"external_id" db:"external_id"`
	Email       string    `json:"email,omitempty" db:"email"`
	DisplayName string    `json:"display_name" db:"display_name"`
	AccessToken string    `json:"-" db:"access_token"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// HasAccessToken reports whether a bearer credential is stored for the user
func (u *UserIdentity) HasAccessToken() bool {
	return u != nil && u.AccessToken != ""
}
