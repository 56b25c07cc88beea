package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)

func (s InvoiceStatus) Valid() bool {
	return s == InvoiceStatusPending || s == InvoiceStatusPaid
}

// Invoice amounts are stored in cents.
type Invoice struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerID uuid.UUID      `gorm:"type:uuid;index" json:"customer_id"`
	Amount     int64          `json:"amount"`
	Status     InvoiceStatus  `gorm:"index" json:"status"`
	Date       datatypes.Date `gorm:"index" json:"date"`
}

func (Invoice) TableName() string { return "invoices" }
