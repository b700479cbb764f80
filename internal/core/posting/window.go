package posting

// PerPage is the client-side page size for the combined listing window
const PerPage = 12

// Window is one client-side page cut from a larger fetched list
type Window struct {
	Posts      []Post `json:"posts"      yaml:"posts"`
	Page       int    `json:"page"       yaml:"page"`
	TotalPages int    `json:"totalPages" yaml:"totalPages"`
	Total      int    `json:"total"      yaml:"total"`
}

// Paginate cuts a 1-based page of size perPage out of all.
// TotalPages is ceil(len/perPage) but never below 1; an out-of-range page resets to 1.
func Paginate(all []Post, page, perPage int) Window {
	if perPage <= 0 {
		perPage = PerPage
	}
	total := len(all)
	pages := (total + perPage - 1) / perPage
	if pages < 1 {
		pages = 1
	}
	if page < 1 || page > pages {
		page = 1
	}
	start := (page - 1) * perPage
	end := min(start+perPage, total)
	items := []Post{}
	if start < end {
		items = append(items, all[start:end]...)
	}
	return Window{Posts: items, Page: page, TotalPages: pages, Total: total}
}
