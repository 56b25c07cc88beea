// Package dashboard holds the read operations behind the invoice dashboard:
// revenue chart, latest invoices, summary cards, the invoices and customers
// tables and the invoice edit form.
//
// Every operation reports failure as an *errs.DataFetchError carrying a fixed
// message. An empty result is not a failure.
package dashboard

import (
	"context"

	"invoice-dashboard-backend/internal/errs"
	"invoice-dashboard-backend/internal/format"
	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	msgRevenue          = "Failed to fetch revenue data."
	msgLatestInvoices   = "Failed to fetch the latest invoices."
	msgCardData         = "Failed to fetch card data."
	msgFilteredInvoices = "Failed to fetch invoices."
	msgInvoicesPages    = "Failed to fetch total number of invoices."
	msgInvoice          = "Failed to fetch invoice."
	msgCustomers        = "Failed to fetch all customers."
	msgCustomersTable   = "Failed to fetch customer table."
)

type Service struct {
	store repository.Store
	log   zerolog.Logger
}

func NewService(store repository.Store, log zerolog.Logger) *Service {
	return &Service{
		store: store,
		log:   log.With().Str("service", "dashboard").Logger(),
	}
}

// fail logs the store error and hides it behind the fixed message.
func (s *Service) fail(op, message string, err error) error {
	ev := s.log.Error().Err(err).Str("op", op)
	if details, ok := repository.Describe(err); ok {
		ev = ev.Object("db", details)
	}
	ev.Msg(message)
	return errs.NewDataFetchError(op, message, err)
}

func (s *Service) FetchRevenue(ctx context.Context) ([]models.Revenue, error) {
	var rows []models.Revenue
	if _, err := s.store.Select(ctx, repository.From("revenue"), &rows); err != nil {
		return nil, s.fail("FetchRevenue", msgRevenue, err)
	}
	if rows == nil {
		rows = []models.Revenue{}
	}
	return rows, nil
}

func (s *Service) FetchLatestInvoices(ctx context.Context) ([]models.LatestInvoice, error) {
	q := repository.From("invoices").
		Select("invoices.id", "invoices.amount", "customers.name", "customers.email", "customers.image_url").
		Join("customers", "customer_id", "id").
		Order("invoices.date", repository.Descending).
		Limit(LatestInvoicesLimit)

	var raw []models.LatestInvoiceRaw
	if _, err := s.store.Select(ctx, q, &raw); err != nil {
		return nil, s.fail("FetchLatestInvoices", msgLatestInvoices, err)
	}

	latest := make([]models.LatestInvoice, 0, len(raw))
	for _, inv := range raw {
		latest = append(latest, models.LatestInvoice{
			ID:       inv.ID,
			Name:     inv.Name,
			Email:    inv.Email,
			ImageURL: inv.ImageURL,
			Amount:   format.Currency(inv.Amount),
		})
	}
	return latest, nil
}

// FetchCardData runs the three summary reads concurrently. If any of them
// fails the whole call fails.
func (s *Service) FetchCardData(ctx context.Context) (models.CardData, error) {
	var (
		invoiceCount  int64
		customerCount int64
		totals        []models.StatusTotals
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res, err := s.store.Select(gctx, repository.From("invoices").Count(repository.CountExact).Head(), nil)
		if err != nil {
			return err
		}
		invoiceCount = res.CountOrZero()
		return nil
	})
	g.Go(func() error {
		res, err := s.store.Select(gctx, repository.From("customers").Count(repository.CountExact).Head(), nil)
		if err != nil {
			return err
		}
		customerCount = res.CountOrZero()
		return nil
	})
	g.Go(func() error {
		return s.store.RPC(gctx, repository.ProcSumAmountByStatus, nil, &totals)
	})

	if err := g.Wait(); err != nil {
		return models.CardData{}, s.fail("FetchCardData", msgCardData, err)
	}

	var sums models.StatusTotals
	if len(totals) > 0 {
		sums = totals[0]
	}
	return models.CardData{
		NumberOfInvoices:     invoiceCount,
		NumberOfCustomers:    customerCount,
		TotalPaidInvoices:    format.CurrencyPtr(sums.Paid),
		TotalPendingInvoices: format.CurrencyPtr(sums.Pending),
	}, nil
}

// FetchFilteredInvoices returns one page of invoices matching query.
func (s *Service) FetchFilteredInvoices(ctx context.Context, query string, currentPage int) ([]models.InvoicesTable, error) {
	params := repository.Params{
		repository.ParamQuery:        query,
		repository.ParamOffsetAmount: Offset(currentPage),
		repository.ParamItemsPerPage: ItemsPerPage,
	}

	var rows []models.InvoicesTable
	if err := s.store.RPC(ctx, repository.ProcInvoicesGetFiltered, params, &rows); err != nil {
		return nil, s.fail("FetchFilteredInvoices", msgFilteredInvoices, err)
	}
	if rows == nil {
		rows = []models.InvoicesTable{}
	}
	return rows, nil
}

// FetchInvoicesPages returns how many pages the invoices matching query fill.
func (s *Service) FetchInvoicesPages(ctx context.Context, query string) (int, error) {
	var rows []models.InvoiceCount
	params := repository.Params{repository.ParamQuery: query}
	if err := s.store.RPC(ctx, repository.ProcInvoicesGetPages, params, &rows); err != nil {
		return 0, s.fail("FetchInvoicesPages", msgInvoicesPages, err)
	}

	var count int64
	if len(rows) > 0 {
		count = rows[0].Count
	}
	return TotalPages(count), nil
}

// FetchInvoiceByID returns the invoice as the edit form expects it, with the
// amount in dollars. A nil form without error means there is no such invoice.
func (s *Service) FetchInvoiceByID(ctx context.Context, id string) (*models.InvoiceForm, error) {
	invoiceID, err := uuid.Parse(id)
	if err != nil {
		s.log.Debug().Str("op", "FetchInvoiceByID").Str("id", id).Msg("malformed invoice id")
		return nil, nil
	}

	q := repository.From("invoices").
		Select("id", "customer_id", "amount", "status").
		Eq("id", invoiceID).
		Limit(1)

	var rows []models.Invoice
	if _, err := s.store.Select(ctx, q, &rows); err != nil {
		return nil, s.fail("FetchInvoiceByID", msgInvoice, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	inv := rows[0]
	return &models.InvoiceForm{
		ID:         inv.ID,
		CustomerID: inv.CustomerID,
		Amount:     format.Dollars(inv.Amount),
		Status:     inv.Status,
	}, nil
}

// FetchCustomers lists every customer by name for the invoice form select.
func (s *Service) FetchCustomers(ctx context.Context) ([]models.CustomerField, error) {
	q := repository.From("customers").
		Select("id", "name").
		Order("name", repository.Ascending)

	var rows []models.CustomerField
	if _, err := s.store.Select(ctx, q, &rows); err != nil {
		return nil, s.fail("FetchCustomers", msgCustomers, err)
	}
	if rows == nil {
		rows = []models.CustomerField{}
	}
	return rows, nil
}

func (s *Service) FetchFilteredCustomers(ctx context.Context, query string) ([]models.FormattedCustomersTable, error) {
	var rows []models.CustomersTableType
	params := repository.Params{repository.ParamQuery: query}
	if err := s.store.RPC(ctx, repository.ProcCustomersGetFiltered, params, &rows); err != nil {
		return nil, s.fail("FetchFilteredCustomers", msgCustomersTable, err)
	}

	customers := make([]models.FormattedCustomersTable, 0, len(rows))
	for _, c := range rows {
		customers = append(customers, models.FormattedCustomersTable{
			ID:            c.ID,
			Name:          c.Name,
			Email:         c.Email,
			ImageURL:      c.ImageURL,
			TotalInvoices: c.TotalInvoices,
			TotalPending:  format.Currency(c.TotalPending),
			TotalPaid:     format.Currency(c.TotalPaid),
		})
	}
	return customers, nil
}

// Ping reports whether the store is reachable.
func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}
