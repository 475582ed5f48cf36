package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	PgErrUniqueViolation      = "23505"
	PgErrSerializationFailure = "40001"
)

// ErrUnavailable marks infrastructure failures: timeouts, lost connections,
// serialization aborts. Callers may retry; business conflicts never wear
// this error.
var ErrUnavailable = errors.New("store unavailable")

func IsPgErrorWithCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}

// WrapTransient folds store-level failures into ErrUnavailable and leaves
// everything else untouched.
func WrapTransient(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) ||
		pgconn.Timeout(err) ||
		IsPgErrorWithCode(err, PgErrSerializationFailure) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return err
}
