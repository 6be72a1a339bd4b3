package repository

import (
	"errors"
	"fmt"

	"github.com/Domenick1991/roombooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// mapWriteError turns constraint violations on bookings into domain errors.
func mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		return fmt.Errorf("%w: user already has a booking", domain.ErrForbidden)
	case pgForeignKeyViolation:
		return fmt.Errorf("%w: room does not exist", domain.ErrNotFound)
	default:
		return err
	}
}
