package model

import (
	"time"
)

type Event struct {
	EventID       string     `json:"event_id,omitempty" db:"event_id"`
	Title         *string    `json:"title,omitempty" db:"title"`
	Description   *string    `json:"description,omitempty" db:"description"`
	Location      *string    `json:"location,omitempty" db:"location"`
	ImageURL      *string    `json:"image_url,omitempty" db:"image_url"`
	StartDateTime *time.Time `json:"start_date_time,omitempty" db:"start_date_time"`
	EndDateTime   *time.Time `json:"end_date_time,omitempty" db:"end_date_time"`
	Price         *string    `json:"price,omitempty" db:"price"`
	IsFree        bool       `json:"is_free" db:"is_free"`
	URL           *string    `json:"url,omitempty" db:"url"`
	CategoryID    *string    `json:"category_id,omitempty" db:"category_id"`
	OrganizerID   *string    `json:"organizer_id,omitempty" db:"organizer_id"`
	CreatedAt     *time.Time `json:"created_at,omitempty" db:"created_at"`
}

type CategoryRef struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

type OrganizerRef struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// EventWithDetails is the read projection handed to listing views. Category
// and Organizer are always present, defaulted to empty shapes when the join
// came back null.
type EventWithDetails struct {
	Event
	Category  CategoryRef  `json:"category"`
	Organizer OrganizerRef `json:"organizer"`
}

type EventPage struct {
	Data       []EventWithDetails `json:"data"`
	TotalPages int64              `json:"total_pages"`
}
