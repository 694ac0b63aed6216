package model

import (
	"time"
)

type Category struct {
	CategoryID string     `json:"category_id,omitempty" db:"category_id"`
	Name       string     `json:"name" db:"name"`
	CreatedAt  *time.Time `json:"created_at,omitempty" db:"created_at"`
}
