package controllers

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres error codes the write boundary translates into structured
// 400 responses instead of raw storage errors.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func isPgError(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
