package repository

import (
	"context"

	"github.com/Domenick1991/roombooking/internal/domain"
)

type TicketRepository interface {
	FindByEnrollmentID(ctx context.Context, enrollmentID int64) (*domain.Ticket, error)
}

type PGTicketRepository struct {
	db DB
}

func NewTicketRepository(db DB) TicketRepository {
	return &PGTicketRepository{db: db}
}

func (r *PGTicketRepository) FindByEnrollmentID(ctx context.Context, enrollmentID int64) (*domain.Ticket, error) {
	row := r.db.QueryRow(ctx, `SELECT t.id, t.enrollment_id, t.ticket_type_id, t.status, t.created_at, t.updated_at,
		tt.id, tt.name, tt.price_cents, tt.is_remote, tt.includes_hotel
		FROM tickets t JOIN ticket_types tt ON tt.id = t.ticket_type_id
		WHERE t.enrollment_id=$1`, enrollmentID)
	var t domain.Ticket
	if err := row.Scan(&t.ID, &t.EnrollmentID, &t.TicketTypeID, &t.Status, &t.CreatedAt, &t.UpdatedAt,
		&t.TicketType.ID, &t.TicketType.Name, &t.TicketType.PriceCents, &t.TicketType.IsRemote, &t.TicketType.IncludesHotel); err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

var _ TicketRepository = (*PGTicketRepository)(nil)
