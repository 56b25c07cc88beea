package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryBuilderDoesNotShareState(t *testing.T) {
	base := From("invoices").Select("id", "amount")
	byDate := base.Order("date", Descending).Limit(5)
	byAmount := base.Order("amount", Ascending)

	assert.Empty(t, base.Orders)
	assert.Zero(t, base.RowLimit)
	require.Len(t, byDate.Orders, 1)
	require.Len(t, byAmount.Orders, 1)
	assert.Equal(t, "date", byDate.Orders[0].Column)
	assert.Equal(t, "amount", byAmount.Orders[0].Column)
	assert.Equal(t, 5, byDate.RowLimit)
}

func TestQueryBuilderFields(t *testing.T) {
	q := From("invoices").
		Select("invoices.id", "customers.name").
		Join("customers", "customer_id", "id").
		Eq("invoices.status", "paid").
		ILike("customers.email", "%@acme.com").
		Count(CountExact).
		Head()

	assert.Equal(t, "invoices", q.Table)
	assert.Equal(t, []string{"invoices.id", "customers.name"}, q.Columns)
	assert.Equal(t, []Join{{Table: "customers", LocalColumn: "customer_id", ForeignColumn: "id"}}, q.Joins)
	assert.Equal(t, []Filter{
		{Column: "invoices.status", Op: OpEq, Value: "paid"},
		{Column: "customers.email", Op: OpILike, Value: "%@acme.com"},
	}, q.Filters)
	assert.Equal(t, CountExact, q.CountMode)
	assert.True(t, q.HeadOnly)
	assert.NoError(t, q.Validate())
}

func TestQueryValidate(t *testing.T) {
	tests := []struct {
		name string
		q    Query
	}{
		{"empty table", From("")},
		{"qualified table", From("public.invoices")},
		{"injected table", From("invoices; DROP TABLE users")},
		{"bad column", From("invoices").Select("id, amount")},
		{"bad join table", From("invoices").Join("customers c", "customer_id", "id")},
		{"bad join column", From("invoices").Join("customers", "customer_id", "1id")},
		{"bad filter column", From("users").Eq("email = 'x' OR 1", 1)},
		{"bad order column", From("revenue").Order("month desc", Ascending)},
		{"negative limit", From("revenue").Limit(-1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.q.Validate())
		})
	}
}

func TestQueryValidateAcceptsStars(t *testing.T) {
	assert.NoError(t, From("invoices").Select("*").Validate())
	assert.NoError(t, From("invoices").Select("invoices.*", "customers.name").Validate())
	assert.ErrorIs(t, From("invoices").Select("invoices.**").Validate(), ErrInvalidIdentifier)
}

func TestContainsPattern(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", "%%"},
		{"acme", "%acme%"},
		{"100%", `%100\%%`},
		{"a_b", `%a\_b%`},
		{`c:\tmp`, `%c:\\tmp%`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ContainsPattern(tt.in), tt.in)
	}
}
