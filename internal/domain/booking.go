package domain

import "time"

// Booking assigns one user to one room. Existence of the row is its only state.
type Booking struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	RoomID    int64     `json:"roomId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Room *Room `json:"Room,omitempty"`
}
