package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

var (
	ErrInvalidIdentifier = errors.New("repository: invalid identifier")
	ErrUnknownProcedure  = errors.New("repository: unknown procedure")
	ErrMissingParam      = errors.New("repository: missing parameter")
	ErrParamType         = errors.New("repository: wrong parameter type")
)

// ErrorDetails is what the database reported about a failed statement.
type ErrorDetails struct {
	Code       string
	Table      string
	Column     string
	Constraint string
	Message    string
}

// Describe extracts the postgres error fields from err, if it carries any.
func Describe(err error) (ErrorDetails, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return ErrorDetails{}, false
	}
	return ErrorDetails{
		Code:       pgErr.Code,
		Table:      pgErr.TableName,
		Column:     pgErr.ColumnName,
		Constraint: pgErr.ConstraintName,
		Message:    pgErr.Message,
	}, true
}

func (d ErrorDetails) MarshalZerologObject(e *zerolog.Event) {
	e.Str("code", d.Code).
		Str("table", d.Table).
		Str("column", d.Column).
		Str("constraint", d.Constraint).
		Str("message", d.Message)
}
