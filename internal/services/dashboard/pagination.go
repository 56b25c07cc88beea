package dashboard

// ItemsPerPage is the page size of the invoices table.
const ItemsPerPage = 6

// LatestInvoicesLimit caps the latest invoices list.
const LatestInvoicesLimit = 5

// Offset returns the number of rows to skip for a 1-based page. Pages below 1
// are treated as the first page.
func Offset(page int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * ItemsPerPage
}

// TotalPages is ceil(count / ItemsPerPage).
func TotalPages(count int64) int {
	if count <= 0 {
		return 0
	}
	return int((count + ItemsPerPage - 1) / ItemsPerPage)
}
