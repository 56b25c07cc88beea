package models

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoiceStatusValid(t *testing.T) {
	assert.True(t, InvoiceStatusPaid.Valid())
	assert.True(t, InvoiceStatusPending.Valid())
	assert.False(t, InvoiceStatus("overdue").Valid())
	assert.False(t, InvoiceStatus("").Valid())
}

func TestUserJSONOmitsPassword(t *testing.T) {
	u := User{ID: uuid.New(), Name: "User", Email: "user@nextmail.com", Password: "$2a$10$hash"}
	b, err := json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "hash")
	assert.NotContains(t, string(b), "password")
	assert.Contains(t, string(b), `"email":"user@nextmail.com"`)
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "invoices", Invoice{}.TableName())
	assert.Equal(t, "customers", Customer{}.TableName())
	assert.Equal(t, "revenue", Revenue{}.TableName())
	assert.Equal(t, "users", User{}.TableName())
}

func TestCardDataJSON(t *testing.T) {
	b, err := json.Marshal(CardData{NumberOfInvoices: 2, NumberOfCustomers: 1, TotalPaidInvoices: "$1.00", TotalPendingInvoices: "$0.00"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"numberOfInvoices":2,"numberOfCustomers":1,"totalPaidInvoices":"$1.00","totalPendingInvoices":"$0.00"}`, string(b))
}
