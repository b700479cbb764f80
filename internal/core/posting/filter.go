package posting

import (
	"strings"

	"internhasha/internal/core/query"
)

// Filter is the listing filter. Page is 0-based as on the wire.
type Filter struct {
	Page     int      `json:"page"     validate:"min=0"`
	Order    Order    `json:"order"    validate:"omitempty,oneof=0 1"`
	Roles    []string `json:"roles"`
	Domains  []string `json:"domains"`
	IsActive bool     `json:"isActive"`
}

// Query builds the listing query string.
// Empty lists and a false IsActive are left out so the server applies "all".
func (f Filter) Query() string {
	order := f.Order
	if order == "" {
		order = OrderLatest
	}
	params := []query.Param{
		query.P("page", f.Page),
		query.P("order", string(order)),
	}
	if roles := SplitList(f.Roles...); len(roles) > 0 {
		params = append(params, query.P("roles", roles))
	}
	if domains := SplitList(f.Domains...); len(domains) > 0 {
		params = append(params, query.P("domains", domains))
	}
	if f.IsActive {
		params = append(params, query.P("isActive", true))
	}
	return query.Encode(params...)
}

// WithPage returns a copy pointed at page
func (f Filter) WithPage(page int) Filter {
	f.Page = page
	return f
}

// SplitList flattens comma separated entries, trimming and dropping blanks
func SplitList(in ...string) []string {
	var out []string
	for _, s := range in {
		for part := range strings.SplitSeq(s, ",") {
			if v := strings.TrimSpace(part); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}
