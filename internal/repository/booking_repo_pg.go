package repository

import (
	"context"

	"github.com/Domenick1991/roombooking/internal/domain"
)

// BookingRepository returns (nil, nil) when a lookup finds nothing.
type BookingRepository interface {
	FindByUserID(ctx context.Context, userID int64) (*domain.Booking, error)
	FindByRoomID(ctx context.Context, roomID int64) ([]domain.Booking, error)
	FindByID(ctx context.Context, id int64) (*domain.Booking, error)
	Create(ctx context.Context, userID, roomID int64) (int64, error)
	Update(ctx context.Context, bookingID, roomID int64) (int64, error)
}

type PGBookingRepository struct {
	db DB
}

func NewBookingRepository(db DB) BookingRepository {
	return &PGBookingRepository{db: db}
}

func (r *PGBookingRepository) FindByUserID(ctx context.Context, userID int64) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT b.id, b.user_id, b.room_id, b.created_at, b.updated_at,
		r.id, r.name, r.capacity, r.hotel_id, r.created_at, r.updated_at
		FROM bookings b JOIN rooms r ON r.id = b.room_id
		WHERE b.user_id=$1`, userID)
	var b domain.Booking
	var room domain.Room
	if err := row.Scan(&b.ID, &b.UserID, &b.RoomID, &b.CreatedAt, &b.UpdatedAt,
		&room.ID, &room.Name, &room.Capacity, &room.HotelID, &room.CreatedAt, &room.UpdatedAt); err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	b.Room = &room
	return &b, nil
}

func (r *PGBookingRepository) FindByRoomID(ctx context.Context, roomID int64) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT id, user_id, room_id, created_at, updated_at FROM bookings WHERE room_id=$1 ORDER BY id`, roomID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.UserID, &b.RoomID, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *PGBookingRepository) FindByID(ctx context.Context, id int64) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT id, user_id, room_id, created_at, updated_at FROM bookings WHERE id=$1`, id)
	var b domain.Booking
	if err := row.Scan(&b.ID, &b.UserID, &b.RoomID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (r *PGBookingRepository) Create(ctx context.Context, userID, roomID int64) (int64, error) {
	var id int64
	if err := r.db.QueryRow(ctx, `INSERT INTO bookings (user_id, room_id) VALUES ($1, $2) RETURNING id`, userID, roomID).Scan(&id); err != nil {
		return 0, mapWriteError(err)
	}
	return id, nil
}

func (r *PGBookingRepository) Update(ctx context.Context, bookingID, roomID int64) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `UPDATE bookings SET room_id=$1, updated_at=now() WHERE id=$2 RETURNING id`, roomID, bookingID).Scan(&id)
	if err != nil {
		if isNoRows(err) {
			return 0, domain.ErrNotFound
		}
		return 0, mapWriteError(err)
	}
	return id, nil
}

var _ BookingRepository = (*PGBookingRepository)(nil)
