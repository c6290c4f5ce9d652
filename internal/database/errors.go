package database

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

var (
	ErrNotFound         = errors.New("record not found")
	ErrNoActiveNumbers  = errors.New("group has no active numbers")
	ErrGroupInactive    = errors.New("group is inactive")
	ErrUnknownDimension = errors.New("unknown dimension")

	// ErrSelectionConflict means the select-and-touch transaction could not
	// take its lock in time or was aborted by the server; it is safe to retry.
	ErrSelectionConflict = errors.New("selection conflict")

	// ErrConflict is a unique constraint violation (duplicate slug or phone).
	ErrConflict = errors.New("record already exists")

	// ErrInUse is a foreign key violation, e.g. deleting a number that has clicks.
	ErrInUse = errors.New("record is referenced by other records")
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeSerializationFail   = "40001"
	codeDeadlockDetected    = "40P01"
	codeLockNotAvailable    = "55P03"
)

// classify maps driver errors onto the package sentinels. Context errors
// are passed through untouched so callers can tell cancellation apart.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	switch pqErr.Code {
	case codeUniqueViolation:
		return errors.Join(ErrConflict, err)
	case codeForeignKeyViolation:
		return errors.Join(ErrInUse, err)
	case codeSerializationFail, codeDeadlockDetected, codeLockNotAvailable:
		return errors.Join(ErrSelectionConflict, err)
	}
	return err
}
