package domain

import "time"

type Room struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	HotelID   int64     `json:"hotelId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HasVacancy reports whether a room with the given number of occupants can take one more.
func (r *Room) HasVacancy(occupants int) bool {
	return occupants < r.Capacity
}

type RoomOccupancy struct {
	Room
	BookedCount int `json:"bookedCount"`
}
