package feed

// Page is one slice of a merged feed. Number is the page actually served,
// which may differ from the one requested.
type Page struct {
	Items       []Item
	Number      int
	Size        int
	Total       int
	TotalPages  int
	HasNext     bool
	HasPrevious bool
}

// Paginate slices items into pages of pageSize and returns the requested
// page. Requests below 1 or past the end get the last page. An empty
// sequence still has one empty page.
func Paginate(items []Item, requested, pageSize int) Page {
	if pageSize < 1 {
		pageSize = 1
	}

	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}

	number := ClampPage(requested, totalPages)

	start := (number - 1) * pageSize
	end := start + pageSize
	if end > total {
		end = total
	}

	pageItems := make([]Item, 0, end-start)
	pageItems = append(pageItems, items[start:end]...)

	return Page{
		Items:       pageItems,
		Number:      number,
		Size:        pageSize,
		Total:       total,
		TotalPages:  totalPages,
		HasNext:     number < totalPages,
		HasPrevious: number > 1,
	}
}

// ClampPage maps any requested page number onto [1, totalPages]. Numbers
// outside that range, zero and negatives included, land on the last page.
func ClampPage(requested, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if requested < 1 || requested > totalPages {
		return totalPages
	}
	return requested
}
