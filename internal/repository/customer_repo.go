package repository

import (
	"invoice-dashboard-backend/internal/models"

	"gorm.io/gorm"
)

// customersGetFiltered lists customers matching the text by name or email,
// with invoice totals. Customers without invoices are kept with zero totals.
func customersGetFiltered(tx *gorm.DB, params Params) (*gorm.DB, error) {
	query, err := params.String(ParamQuery)
	if err != nil {
		return nil, err
	}
	pattern := ContainsPattern(query)

	return tx.Table("customers").
		Select(
			"customers.id, customers.name, customers.email, customers.image_url, "+
				"COUNT(invoices.id) AS total_invoices, "+
				"COALESCE(SUM(CASE WHEN invoices.status = ? THEN invoices.amount ELSE 0 END), 0) AS total_pending, "+
				"COALESCE(SUM(CASE WHEN invoices.status = ? THEN invoices.amount ELSE 0 END), 0) AS total_paid",
			string(models.InvoiceStatusPending), string(models.InvoiceStatusPaid),
		).
		Joins("LEFT JOIN invoices ON customers.id = invoices.customer_id").
		Where("customers.name ILIKE ? OR customers.email ILIKE ?", pattern, pattern).
		Group("customers.id, customers.name, customers.email, customers.image_url").
		Order("customers.name ASC"), nil
}
