package repository

import (
	"context"

	"github.com/Domenick1991/roombooking/internal/domain"
)

type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	ListByHotel(ctx context.Context, hotelID int64) ([]domain.RoomOccupancy, error)
}

type PGRoomRepository struct {
	db DB
}

func NewRoomRepository(db DB) RoomRepository {
	return &PGRoomRepository{db: db}
}

func (r *PGRoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name, capacity, hotel_id, created_at, updated_at FROM rooms WHERE id=$1`, id)
	var room domain.Room
	if err := row.Scan(&room.ID, &room.Name, &room.Capacity, &room.HotelID, &room.CreatedAt, &room.UpdatedAt); err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return &room, nil
}

func (r *PGRoomRepository) ListByHotel(ctx context.Context, hotelID int64) ([]domain.RoomOccupancy, error) {
	rows, err := r.db.Query(ctx, `SELECT r.id, r.name, r.capacity, r.hotel_id, r.created_at, r.updated_at, COUNT(b.id)
		FROM rooms r LEFT JOIN bookings b ON b.room_id = r.id
		WHERE r.hotel_id=$1
		GROUP BY r.id
		ORDER BY r.id`, hotelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rooms := make([]domain.RoomOccupancy, 0)
	for rows.Next() {
		var ro domain.RoomOccupancy
		if err := rows.Scan(&ro.ID, &ro.Name, &ro.Capacity, &ro.HotelID, &ro.CreatedAt, &ro.UpdatedAt, &ro.BookedCount); err != nil {
			return nil, err
		}
		rooms = append(rooms, ro)
	}
	return rooms, rows.Err()
}

var _ RoomRepository = (*PGRoomRepository)(nil)
