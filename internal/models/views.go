package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// LatestInvoiceRaw is a row of the invoices/customers join before formatting.
type LatestInvoiceRaw struct {
	ID       uuid.UUID `gorm:"column:id"`
	Amount   int64     `gorm:"column:amount"`
	Name     string    `gorm:"column:name"`
	Email    string    `gorm:"column:email"`
	ImageURL string    `gorm:"column:image_url"`
}

type LatestInvoice struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	ImageURL string    `json:"image_url"`
	Amount   string    `json:"amount"`
}

type CardData struct {
	NumberOfInvoices     int64  `json:"numberOfInvoices"`
	NumberOfCustomers    int64  `json:"numberOfCustomers"`
	TotalPaidInvoices    string `json:"totalPaidInvoices"`
	TotalPendingInvoices string `json:"totalPendingInvoices"`
}

// StatusTotals is the first row of sum_amount_by_status. Nil means the store
// returned no value for that status.
type StatusTotals struct {
	Paid    *int64 `gorm:"column:paid" json:"paid"`
	Pending *int64 `gorm:"column:pending" json:"pending"`
}

type InvoicesTable struct {
	ID         uuid.UUID      `gorm:"column:id" json:"id"`
	CustomerID uuid.UUID      `gorm:"column:customer_id" json:"customer_id"`
	Name       string         `gorm:"column:name" json:"name"`
	Email      string         `gorm:"column:email" json:"email"`
	ImageURL   string         `gorm:"column:image_url" json:"image_url"`
	Date       datatypes.Date `gorm:"column:date" json:"date"`
	Amount     int64          `gorm:"column:amount" json:"amount"`
	Status     InvoiceStatus  `gorm:"column:status" json:"status"`
}

type InvoiceCount struct {
	Count int64 `gorm:"column:count" json:"count"`
}

// InvoiceForm feeds the edit form, so Amount is in dollars.
type InvoiceForm struct {
	ID         uuid.UUID     `json:"id"`
	CustomerID uuid.UUID     `json:"customer_id"`
	Amount     float64       `json:"amount"`
	Status     InvoiceStatus `json:"status"`
}

type CustomerField struct {
	ID   uuid.UUID `gorm:"column:id" json:"id"`
	Name string    `gorm:"column:name" json:"name"`
}

type CustomersTableType struct {
	ID            uuid.UUID `gorm:"column:id"`
	Name          string    `gorm:"column:name"`
	Email         string    `gorm:"column:email"`
	ImageURL      string    `gorm:"column:image_url"`
	TotalInvoices int64     `gorm:"column:total_invoices"`
	TotalPending  int64     `gorm:"column:total_pending"`
	TotalPaid     int64     `gorm:"column:total_paid"`
}

type FormattedCustomersTable struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	ImageURL      string    `json:"image_url"`
	TotalInvoices int64     `json:"total_invoices"`
	TotalPending  string    `json:"total_pending"`
	TotalPaid     string    `json:"total_paid"`
}
