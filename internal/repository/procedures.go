package repository

// Procedure names understood by the dashboard.
const (
	ProcSumAmountByStatus    = "sum_amount_by_status"
	ProcInvoicesGetFiltered  = "invoices_get_filtered"
	ProcInvoicesGetPages     = "invoices_get_pages"
	ProcCustomersGetFiltered = "customers_get_filtered"
)

// Parameter names used by the procedures above.
const (
	ParamQuery        = "query"
	ParamOffsetAmount = "offset_amount"
	ParamItemsPerPage = "items_per_page"
)

var builtinProcedures = map[string]Procedure{
	ProcSumAmountByStatus:    sumAmountByStatus,
	ProcInvoicesGetFiltered:  invoicesGetFiltered,
	ProcInvoicesGetPages:     invoicesGetPages,
	ProcCustomersGetFiltered: customersGetFiltered,
}
