package repository

import (
	"database/sql"
	"fmt"

	"invoice-dashboard-backend/internal/models"

	"gorm.io/gorm"
)

// sumAmountByStatus returns one row {paid, pending}. Sums are NULL when there
// are no invoices.
func sumAmountByStatus(tx *gorm.DB, _ Params) (*gorm.DB, error) {
	return tx.Table("invoices").Select(
		"SUM(CASE WHEN status = ? THEN amount ELSE 0 END) AS paid, "+
			"SUM(CASE WHEN status = ? THEN amount ELSE 0 END) AS pending",
		string(models.InvoiceStatusPaid), string(models.InvoiceStatusPending),
	), nil
}

// searchInvoices joins customers and matches the text against every column
// shown in the invoices table.
func searchInvoices(tx *gorm.DB, text string) *gorm.DB {
	return tx.Table("invoices").
		Joins("JOIN customers ON invoices.customer_id = customers.id").
		Where(
			"customers.name ILIKE @query OR customers.email ILIKE @query OR "+
				"invoices.amount::text ILIKE @query OR invoices.date::text ILIKE @query OR "+
				"invoices.status ILIKE @query",
			sql.Named("query", ContainsPattern(text)),
		)
}

func invoicesGetFiltered(tx *gorm.DB, params Params) (*gorm.DB, error) {
	query, err := params.String(ParamQuery)
	if err != nil {
		return nil, err
	}
	offset, err := params.Int(ParamOffsetAmount)
	if err != nil {
		return nil, err
	}
	perPage, err := params.Int(ParamItemsPerPage)
	if err != nil {
		return nil, err
	}
	if offset < 0 || perPage < 1 {
		return nil, fmt.Errorf("%w: offset %d, items per page %d", ErrParamType, offset, perPage)
	}

	return searchInvoices(tx, query).
		Select("invoices.id, invoices.customer_id, customers.name, customers.email, " +
			"customers.image_url, invoices.date, invoices.amount, invoices.status").
		Order("invoices.date DESC").
		Limit(perPage).
		Offset(offset), nil
}

func invoicesGetPages(tx *gorm.DB, params Params) (*gorm.DB, error) {
	query, err := params.String(ParamQuery)
	if err != nil {
		return nil, err
	}
	return searchInvoices(tx, query).Select("COUNT(*) AS count"), nil
}
