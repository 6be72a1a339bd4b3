package repository

import (
	"context"

	"github.com/Domenick1991/roombooking/internal/domain"
)

type EnrollmentRepository interface {
	FindWithAddressByUserID(ctx context.Context, userID int64) (*domain.Enrollment, error)
}

type PGEnrollmentRepository struct {
	db DB
}

func NewEnrollmentRepository(db DB) EnrollmentRepository {
	return &PGEnrollmentRepository{db: db}
}

func (r *PGEnrollmentRepository) FindWithAddressByUserID(ctx context.Context, userID int64) (*domain.Enrollment, error) {
	row := r.db.QueryRow(ctx, `SELECT e.id, e.user_id, e.name, e.cpf, e.birthday, e.phone, e.created_at, e.updated_at,
		a.id, a.cep, a.street, a.city, a.state, a.number, a.neighborhood, a.address_detail
		FROM enrollments e LEFT JOIN addresses a ON a.enrollment_id = e.id
		WHERE e.user_id=$1`, userID)

	var e domain.Enrollment
	var (
		addrID                                         *int64
		cep, street, city, state, number, neighborhood *string
		detail                                         *string
	)
	if err := row.Scan(&e.ID, &e.UserID, &e.Name, &e.CPF, &e.Birthday, &e.Phone, &e.CreatedAt, &e.UpdatedAt,
		&addrID, &cep, &street, &city, &state, &number, &neighborhood, &detail); err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	if addrID != nil {
		e.Address = &domain.Address{
			ID:            *addrID,
			CEP:           deref(cep),
			Street:        deref(street),
			City:          deref(city),
			State:         deref(state),
			Number:        deref(number),
			Neighborhood:  deref(neighborhood),
			AddressDetail: deref(detail),
		}
	}
	return &e, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

var _ EnrollmentRepository = (*PGEnrollmentRepository)(nil)
