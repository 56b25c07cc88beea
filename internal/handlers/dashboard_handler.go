package handler

import (
	"context"
	"net/http"
	"strconv"

	"invoice-dashboard-backend/internal/errs"
	"invoice-dashboard-backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DashboardService is implemented by *dashboard.Service.
type DashboardService interface {
	FetchRevenue(ctx context.Context) ([]models.Revenue, error)
	FetchLatestInvoices(ctx context.Context) ([]models.LatestInvoice, error)
	FetchCardData(ctx context.Context) (models.CardData, error)
	FetchFilteredInvoices(ctx context.Context, query string, currentPage int) ([]models.InvoicesTable, error)
	FetchInvoicesPages(ctx context.Context, query string) (int, error)
	FetchInvoiceByID(ctx context.Context, id string) (*models.InvoiceForm, error)
	FetchCustomers(ctx context.Context) ([]models.CustomerField, error)
	FetchFilteredCustomers(ctx context.Context, query string) ([]models.FormattedCustomersTable, error)
	Ping(ctx context.Context) error
}

type DashboardHandler struct {
	service DashboardService
}

func NewDashboardHandler(s DashboardService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

// respondError renders err as an errs.HTTPError and records it for the
// request logger.
func respondError(c *gin.Context, err error) {
	httpErr := errs.FromError(err)
	_ = c.Error(err)
	c.AbortWithStatusJSON(httpErr.Status, httpErr)
}

func (h *DashboardHandler) Health(c *gin.Context) {
	if err := h.service.Ping(c.Request.Context()); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *DashboardHandler) GetRevenue(c *gin.Context) {
	revenue, err := h.service.FetchRevenue(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": revenue})
}

func (h *DashboardHandler) GetLatestInvoices(c *gin.Context) {
	invoices, err := h.service.FetchLatestInvoices(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": invoices})
}

func (h *DashboardHandler) GetCardData(c *gin.Context) {
	cards, err := h.service.FetchCardData(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": cards})
}

// ListInvoices serves /invoices?query=&page=. page defaults to 1.
func (h *DashboardHandler) ListInvoices(c *gin.Context) {
	page := 1
	if raw := c.Query("page"); raw != "" {
		p, err := strconv.Atoi(raw)
		if err != nil {
			respondError(c, errs.NewBadRequestError("invalid page", []errs.FieldError{
				{Field: "page", Error: "must be a number"},
			}))
			return
		}
		page = p
	}

	invoices, err := h.service.FetchFilteredInvoices(c.Request.Context(), c.Query("query"), page)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": invoices, "page": page})
}

func (h *DashboardHandler) GetInvoicesPages(c *gin.Context) {
	pages, err := h.service.FetchInvoicesPages(c.Request.Context(), c.Query("query"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total_pages": pages})
}

func (h *DashboardHandler) GetInvoice(c *gin.Context) {
	invoiceID := c.Param("id")
	if _, err := uuid.Parse(invoiceID); err != nil {
		respondError(c, errs.NewBadRequestError("invalid invoice ID", nil))
		return
	}

	invoice, err := h.service.FetchInvoiceByID(c.Request.Context(), invoiceID)
	if err != nil {
		respondError(c, err)
		return
	}
	if invoice == nil {
		respondError(c, errs.NewNotFoundError("invoice not found"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": invoice})
}

func (h *DashboardHandler) ListCustomers(c *gin.Context) {
	customers, err := h.service.FetchCustomers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": customers})
}

func (h *DashboardHandler) GetCustomersTable(c *gin.Context) {
	customers, err := h.service.FetchFilteredCustomers(c.Request.Context(), c.Query("query"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": customers})
}
