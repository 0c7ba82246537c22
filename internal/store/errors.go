package store

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound       = errors.New("store: not found")
	ErrDuplicate      = errors.New("store: duplicate key")
	ErrOverlap        = errors.New("store: exclusion violation")
	ErrForeignKey     = errors.New("store: foreign key violation")
	ErrCheckViolation = errors.New("store: check violation")
)

// SQLSTATE codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	codeUniqueViolation    = "23505"
	codeExclusionViolation = "23P01"
	codeForeignKey         = "23503"
	codeCheckViolation     = "23514"
)

// translate maps driver errors onto the package sentinels, keeping the
// original error in the chain.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return errors.Join(ErrDuplicate, err)
		case codeExclusionViolation:
			return errors.Join(ErrOverlap, err)
		case codeForeignKey:
			return errors.Join(ErrForeignKey, err)
		case codeCheckViolation:
			return errors.Join(ErrCheckViolation, err)
		}
	}
	return err
}
