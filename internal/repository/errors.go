package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
)

// ErrNotFound is returned when an id (or email) does not resolve to a row.
var ErrNotFound = errors.New("record not found")

// wrapNotFound converts pgx's no-rows sentinel into ErrNotFound so callers
// never depend on the driver.
func wrapNotFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
