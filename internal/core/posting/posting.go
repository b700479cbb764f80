// Package posting holds the canonical internship posting types shared by the
// normalizer, the services and both front ends
package posting

// Post is the canonical posting record.
// Only the normalizer builds these; the one local mutation is IsBookmarked.
type Post struct {
	ID                string  `json:"id"                          yaml:"id"`
	CompanyName       string  `json:"companyName"                 yaml:"companyName"`
	PositionTitle     string  `json:"positionTitle"               yaml:"positionTitle"`
	Domain            string  `json:"domain"                      yaml:"domain"`
	Slogan            *string `json:"slogan,omitempty"            yaml:"slogan,omitempty"`
	HeadCount         *int    `json:"headCount,omitempty"         yaml:"headCount,omitempty"`
	EmploymentEndDate *string `json:"employmentEndDate,omitempty" yaml:"employmentEndDate,omitempty"`
	IsBookmarked      *bool   `json:"isBookmarked,omitempty"      yaml:"isBookmarked,omitempty"`
}

// Bookmarked reports the flag, treating absent as false
func (p Post) Bookmarked() bool { return p.IsBookmarked != nil && *p.IsBookmarked }

// WithBookmark returns a copy with the flag set
func (p Post) WithBookmark(on bool) Post {
	p.IsBookmarked = &on
	return p
}

// Paginator carries the last page number, always >= 1 when present
type Paginator struct {
	LastPage int `json:"lastPage" yaml:"lastPage"`
}

// Page is one listing response: the posts plus an optional paginator.
// Paginator is nil when upstream gave none and no posts were found.
type Page struct {
	Posts     []Post     `json:"posts"               yaml:"posts"`
	Paginator *Paginator `json:"paginator,omitempty" yaml:"paginator,omitempty"`
}

// LastPage returns the paginator value or 1
func (p Page) LastPage() int {
	if p.Paginator == nil || p.Paginator.LastPage < 1 {
		return 1
	}
	return p.Paginator.LastPage
}

// User is the projection of the "me" response
type User struct {
	ID    string `json:"id,omitempty"    yaml:"id,omitempty"`
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
	Name  string `json:"name,omitempty"  yaml:"name,omitempty"`
}

// DefaultDisplayName is shown when the server gives no name and no email
const DefaultDisplayName = "사용자"
