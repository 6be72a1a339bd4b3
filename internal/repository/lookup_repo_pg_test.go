package repository

import (
	"context"
	"testing"
	"time"

	"github.com/Domenick1991/roombooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var enrollmentColumns = []string{
	"id", "user_id", "name", "cpf", "birthday", "phone", "created_at", "updated_at",
	"id", "cep", "street", "city", "state", "number", "neighborhood", "address_detail",
}

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

func TestEnrollmentRepository_FindWithAddressByUserID(t *testing.T) {
	db := newMockDB(t)
	repo := NewEnrollmentRepository(db)
	birthday := time.Date(1990, 1, 2, 0, 0, 0, 0, time.UTC)

	db.ExpectQuery(`FROM enrollments e LEFT JOIN addresses a`).WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows(enrollmentColumns).AddRow(
			int64(11), int64(1), "Ana", "123.456.789-00", birthday, "5511999990000", createdAt, updatedAt,
			int64Ptr(3), strPtr("01001-000"), strPtr("Praca da Se"), strPtr("Sao Paulo"), strPtr("SP"),
			strPtr("100"), strPtr("Se"), (*string)(nil)))

	enrollment, err := repo.FindWithAddressByUserID(context.Background(), 1)

	require.NoError(t, err)
	require.NotNil(t, enrollment)
	assert.Equal(t, int64(11), enrollment.ID)
	assert.Equal(t, "Ana", enrollment.Name)
	assert.Equal(t, birthday, enrollment.Birthday)
	require.NotNil(t, enrollment.Address)
	assert.Equal(t, domain.Address{
		ID: 3, CEP: "01001-000", Street: "Praca da Se", City: "Sao Paulo", State: "SP", Number: "100", Neighborhood: "Se",
	}, *enrollment.Address)
}

func TestEnrollmentRepository_FindWithAddressByUserID_NoAddress(t *testing.T) {
	db := newMockDB(t)
	repo := NewEnrollmentRepository(db)

	db.ExpectQuery(`FROM enrollments e LEFT JOIN addresses a`).WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows(enrollmentColumns).AddRow(
			int64(11), int64(1), "Ana", "123.456.789-00", createdAt, "5511999990000", createdAt, updatedAt,
			(*int64)(nil), (*string)(nil), (*string)(nil), (*string)(nil), (*string)(nil),
			(*string)(nil), (*string)(nil), (*string)(nil)))

	enrollment, err := repo.FindWithAddressByUserID(context.Background(), 1)

	require.NoError(t, err)
	require.NotNil(t, enrollment)
	assert.Nil(t, enrollment.Address)
}

func TestEnrollmentRepository_FindWithAddressByUserID_NotFound(t *testing.T) {
	db := newMockDB(t)
	repo := NewEnrollmentRepository(db)

	db.ExpectQuery(`FROM enrollments e`).WithArgs(int64(1)).WillReturnError(pgx.ErrNoRows)

	enrollment, err := repo.FindWithAddressByUserID(context.Background(), 1)

	assert.NoError(t, err)
	assert.Nil(t, enrollment)
}

func TestTicketRepository_FindByEnrollmentID(t *testing.T) {
	db := newMockDB(t)
	repo := NewTicketRepository(db)

	db.ExpectQuery(`FROM tickets t JOIN ticket_types tt ON tt.id = t.ticket_type_id`).WithArgs(int64(11)).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "enrollment_id", "ticket_type_id", "status", "created_at", "updated_at",
			"id", "name", "price_cents", "is_remote", "includes_hotel",
		}).AddRow(int64(21), int64(11), int64(31), domain.TicketStatusPaid, createdAt, updatedAt,
			int64(31), "Presencial + Hotel", int64(60000), false, true))

	ticket, err := repo.FindByEnrollmentID(context.Background(), 11)

	require.NoError(t, err)
	require.NotNil(t, ticket)
	assert.Equal(t, domain.TicketStatusPaid, ticket.Status)
	assert.Equal(t, domain.TicketType{ID: 31, Name: "Presencial + Hotel", PriceCents: 60000, IsRemote: false, IncludesHotel: true}, ticket.TicketType)
	assert.True(t, ticket.EntitlesToHotel())
}

func TestTicketRepository_FindByEnrollmentID_NotFound(t *testing.T) {
	db := newMockDB(t)
	repo := NewTicketRepository(db)

	db.ExpectQuery(`FROM tickets t`).WithArgs(int64(11)).WillReturnError(pgx.ErrNoRows)

	ticket, err := repo.FindByEnrollmentID(context.Background(), 11)

	assert.NoError(t, err)
	assert.Nil(t, ticket)
}
