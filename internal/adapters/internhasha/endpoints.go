package internhasha

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	perr "internhasha/internal/platform/errors"
)

// Credentials is the login body
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is the shape returned by login and signup; Token may be empty
type TokenResponse struct {
	Token string `json:"token,omitempty"`
}

// SignupInfo is the nested part of the structured signup body
type SignupInfo struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	SuccessCode string `json:"successCode,omitempty"`
}

// StructuredSignup is the preferred signup body
type StructuredSignup struct {
	AuthType string     `json:"authType"`
	Info     SignupInfo `json:"info"`
}

// FlatSignup is the legacy signup body
type FlatSignup struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Me is the "me" response. ID arrives as a number or a string and is kept as text.
type Me struct {
	ID       string `json:"id,omitempty"`
	Email    string `json:"email,omitempty"`
	Name     string `json:"name,omitempty"`
	RealName string `json:"realName,omitempty"`
	UserRole string `json:"userRole,omitempty"`
}

// meFrom resolves the user fields with type checks; anything else is absent
func meFrom(obj map[string]any) Me {
	str := func(k string) string {
		s, _ := obj[k].(string)
		return s
	}
	m := Me{Email: str("email"), Name: str("name"), RealName: str("realName"), UserRole: str("userRole")}
	switch id := obj["id"].(type) {
	case json.Number:
		m.ID = id.String()
	case string:
		m.ID = id
	}
	return m
}

// ApplicantProfile is the applicant profile as sent and received
type ApplicantProfile struct {
	EnrollYear   int      `json:"enrollYear"             yaml:"enrollYear"`
	Department   string   `json:"department"             yaml:"department"`
	Positions    []string `json:"positions"              yaml:"positions,omitempty"`
	Slogan       string   `json:"slogan"                 yaml:"slogan,omitempty"`
	Explanation  string   `json:"explanation"            yaml:"explanation,omitempty"`
	Stacks       []string `json:"stacks"                 yaml:"stacks,omitempty"`
	ImageKey     string   `json:"imageKey"               yaml:"imageKey,omitempty"`
	CvKey        string   `json:"cvKey"                  yaml:"cvKey"`
	PortfolioKey string   `json:"portfolioKey"           yaml:"portfolioKey,omitempty"`
	Links        []Link   `json:"links"                  yaml:"links,omitempty"`
	Name         string   `json:"name,omitempty"         yaml:"name,omitempty"`
	Email        string   `json:"email,omitempty"        yaml:"email,omitempty"`
}

// Link is a labelled url on the applicant profile
type Link struct {
	Description string `json:"description" yaml:"description"`
	Link        string `json:"link"        yaml:"link"`
}

// ApplicantNotFound is the domain code for "no profile yet"
const ApplicantNotFound = "APPLICANT_002"

type mailBody struct {
	Email   string `json:"email,omitempty"`
	SnuMail string `json:"snuMail,omitempty"`
	Code    string `json:"code,omitempty"`
}

// SuccessCode is the mail validation result
type SuccessCode struct {
	SuccessCode string `json:"successCode"`
}

// Login posts credentials and returns the token if the server sent one
func (c *Client) Login(ctx context.Context, cred Credentials) (TokenResponse, error) {
	var out TokenResponse
	r, err := c.Request(ctx, "/api/auth/user/session", RequestOptions{Method: http.MethodPost, Body: cred})
	if err != nil {
		return out, err
	}
	r.Decode(&out)
	return out, nil
}

// CreateUser posts one signup body (structured or flat)
func (c *Client) CreateUser(ctx context.Context, body any) (TokenResponse, error) {
	var out TokenResponse
	r, err := c.Request(ctx, "/api/auth/user", RequestOptions{Method: http.MethodPost, Body: body})
	if err != nil {
		return out, err
	}
	r.Decode(&out)
	return out, nil
}

// Logout deletes the server session
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.Request(ctx, "/api/auth/user/session", RequestOptions{Method: http.MethodDelete})
	return err
}

// Me fetches the current user
func (c *Client) Me(ctx context.Context) (Me, error) {
	r, err := c.Request(ctx, "/api/auth/me", RequestOptions{})
	if err != nil {
		return Me{}, err
	}
	return meFrom(r.Object()), nil
}

// ApplicantMe fetches the applicant profile; callers check DomainCode for ApplicantNotFound
func (c *Client) ApplicantMe(ctx context.Context) (ApplicantProfile, error) {
	var out ApplicantProfile
	r, err := c.Request(ctx, "/api/applicant/me", RequestOptions{})
	if err != nil {
		return out, err
	}
	r.Decode(&out)
	return out, nil
}

// PutApplicantMe upserts the applicant profile
func (c *Client) PutApplicantMe(ctx context.Context, p ApplicantProfile) error {
	_, err := c.Request(ctx, "/api/applicant/me", RequestOptions{Method: http.MethodPut, Body: p})
	return err
}

// Posts fetches one raw postings page; query is already encoded (no leading '?')
func (c *Client) Posts(ctx context.Context, query string) (*Response, error) {
	path := "/api/post"
	if query != "" {
		path += "?" + query
	}
	return c.Request(ctx, path, RequestOptions{})
}

// Bookmarks fetches the raw bookmark list
func (c *Client) Bookmarks(ctx context.Context) (*Response, error) {
	return c.Request(ctx, "/api/post/bookmarks", RequestOptions{})
}

// AddBookmark bookmarks post id
func (c *Client) AddBookmark(ctx context.Context, id string) error {
	return c.bookmark(ctx, http.MethodPost, id)
}

// RemoveBookmark removes the bookmark on post id
func (c *Client) RemoveBookmark(ctx context.Context, id string) error {
	return c.bookmark(ctx, http.MethodDelete, id)
}

func (c *Client) bookmark(ctx context.Context, method, id string) error {
	if id == "" {
		return perr.InvalidArgf("post id is required")
	}
	_, err := c.Request(ctx, "/api/post/"+url.PathEscape(id)+"/bookmark", RequestOptions{Method: method})
	return err
}

// MailCheck asks whether snuMail is already registered
func (c *Client) MailCheck(ctx context.Context, snuMail string) error {
	_, err := c.Request(ctx, "/api/auth/mail", RequestOptions{Method: http.MethodPost, Body: mailBody{Email: snuMail}})
	return err
}

// MailVerify sends a verification code to snuMail
func (c *Client) MailVerify(ctx context.Context, snuMail string) error {
	_, err := c.Request(ctx, "/api/auth/mail/verify", RequestOptions{Method: http.MethodPost, Body: mailBody{SnuMail: snuMail}})
	return err
}

// MailValidate exchanges a verification code for a signup success code
func (c *Client) MailValidate(ctx context.Context, snuMail, code string) (SuccessCode, error) {
	var out SuccessCode
	r, err := c.Request(ctx, "/api/auth/mail/validate", RequestOptions{
		Method: http.MethodPost,
		Body:   mailBody{SnuMail: snuMail, Code: code},
	})
	if err != nil {
		return out, err
	}
	r.Decode(&out)
	return out, nil
}

// Ping checks that the API host answers at all. Any HTTP status counts as
// reachable; only transport failures and aborts are reported.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.Request(ctx, "/", RequestOptions{Method: http.MethodHead})
	if err != nil && (IsTransport(err) || IsAborted(err)) {
		return err
	}
	return nil
}
