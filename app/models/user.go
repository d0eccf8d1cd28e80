package models

import "time"

// Validate checks if the user meets all validation requirements.
func (u *User) Validate() error {
	return validate.Struct(u)
}

// BeforeCreate sets up any necessary fields before creation.
func (u *User) BeforeCreate() {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
}
