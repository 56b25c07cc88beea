package repository

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestResultCountOrZero(t *testing.T) {
	assert.Zero(t, Result{}.CountOrZero())
	n := int64(12)
	assert.Equal(t, int64(12), Result{Count: &n}.CountOrZero())
}

func TestParams(t *testing.T) {
	p := Params{"query": "acme", "page": 2, "offset": float64(12), "big": int64(7), "half": 1.5}

	s, err := p.String("query")
	require.NoError(t, err)
	assert.Equal(t, "acme", s)

	_, err = p.String("missing")
	assert.ErrorIs(t, err, ErrMissingParam)
	_, err = p.String("page")
	assert.ErrorIs(t, err, ErrParamType)

	for name, want := range map[string]int{"page": 2, "offset": 12, "big": 7} {
		n, err := p.Int(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, n, name)
	}
	_, err = p.Int("half")
	assert.ErrorIs(t, err, ErrParamType)
	_, err = p.Int("query")
	assert.ErrorIs(t, err, ErrParamType)
	_, err = p.Int("missing")
	assert.ErrorIs(t, err, ErrMissingParam)
}

func TestRegistry(t *testing.T) {
	r := DefaultRegistry()
	for _, name := range []string{ProcSumAmountByStatus, ProcInvoicesGetFiltered, ProcInvoicesGetPages, ProcCustomersGetFiltered} {
		_, ok := r.Lookup(name)
		assert.True(t, ok, name)
	}

	_, ok := r.Lookup("revenue_by_year")
	assert.False(t, ok)

	proc := func(tx *gorm.DB, _ Params) (*gorm.DB, error) { return tx.Table("revenue"), nil }
	require.NoError(t, r.Register("revenue_by_year", proc))
	_, ok = r.Lookup("revenue_by_year")
	assert.True(t, ok)

	assert.ErrorIs(t, r.Register("drop table", proc), ErrInvalidIdentifier)
	assert.Error(t, r.Register("nil_proc", nil))
}

func TestDescribe(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23505",
		Message:        "duplicate key value violates unique constraint",
		TableName:      "users",
		ConstraintName: "idx_users_email",
	}

	details, ok := Describe(errors.Join(errors.New("insert user"), pgErr))
	require.True(t, ok)
	assert.Equal(t, "23505", details.Code)
	assert.Equal(t, "users", details.Table)
	assert.Equal(t, "idx_users_email", details.Constraint)

	_, ok = Describe(errors.New("connection refused"))
	assert.False(t, ok)
}
