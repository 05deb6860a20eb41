package repository

import (
	"errors"

	"github.com/lib/pq"
)

type sqlStateError interface {
	SQLState() string
}

// pgErrorName returns the SQLSTATE condition name of a postgres error, or ""
// when err carries none.
func pgErrorName(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code.Name()
	}
	var stateErr sqlStateError
	if errors.As(err, &stateErr) {
		return pq.ErrorCode(stateErr.SQLState()).Name()
	}
	return ""
}

func isForeignKeyViolation(err error) bool {
	return pgErrorName(err) == "foreign_key_violation"
}
