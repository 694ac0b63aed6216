package model

import (
	"time"
)

type User struct {
	UserID string `json:"user_id,omitempty" db:"user_id"`

	// AuthID is the identifier issued by the external auth provider.
	AuthID string `json:"auth_id,omitempty" db:"auth_id"`

	FirstName *string `json:"first_name,omitempty" db:"first_name"`
	LastName  *string `json:"last_name,omitempty" db:"last_name"`
	Email     *string `json:"email,omitempty" db:"email"`

	CreatedAt *time.Time `json:"created_at,omitempty" db:"created_at"`
}
