// Package http provides http transport for postings and bookmarks
package http

import (
	stdhttp "net/http"

	"internhasha/internal/core/posting"
	"internhasha/internal/modkit/httpkit"
	"internhasha/internal/platform/net/http/bind"
	"internhasha/internal/services/posts/domain"

	"github.com/go-chi/chi/v5"
)

// Register mounts the public listing routes
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/", h.list)
	httpkit.Get(r, "/window", h.window)
}

// RegisterBookmarks mounts the session gated bookmark routes.
// r is expected to sit behind the auth gate
func RegisterBookmarks(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.Post(r, "/{id}/bookmark", h.add)
	httpkit.Delete(r, "/{id}/bookmark", h.remove)
}

// RegisterBookmarkList mounts GET / for the bookmark list
func RegisterBookmarkList(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/", h.bookmarks)
}

type handlers struct{ svc domain.ServicePort }

// listInput reads the listing filter from the query string
func listInput(r *stdhttp.Request) (domain.ListInput, error) {
	page, err := bind.QueryInt(r, "page", 0)
	if err != nil {
		return domain.ListInput{}, err
	}
	active, err := bind.QueryBool(r, "isActive")
	if err != nil {
		return domain.ListInput{}, err
	}
	return domain.ListInput{
		Page:     page,
		Order:    r.URL.Query().Get("order"),
		Roles:    bind.QueryList(r, "roles"),
		Domains:  bind.QueryList(r, "domains"),
		IsActive: active,
	}, nil
}

// swagger:route GET /posts Posts list
// @Summary List one page of posts; upstream failures degrade to an empty page
// @Tags posts
// @Produce json
// @Param page query int false "0-based server page"
// @Param order query int false "1 = deadline order"
// @Param roles query []string false "position filter"
// @Param domains query []string false "domain filter"
// @Param isActive query bool false "only open postings"
// @Success 200 {object} posting.Page "ok"
// @Router /posts [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	in, err := listInput(r)
	if err != nil {
		return nil, err
	}
	return h.svc.List(r.Context(), in.Filter())
}

// swagger:route GET /posts/window Posts window
// @Summary First two server pages paginated at 12 per page
// @Tags posts
// @Produce json
// @Param view query int false "1-based client page"
// @Success 200 {object} posting.Window "ok"
// @Router /posts/window [get]
func (h *handlers) window(r *stdhttp.Request) (any, error) {
	in, err := listInput(r)
	if err != nil {
		return nil, err
	}
	view, err := bind.QueryInt(r, "view", 1)
	if err != nil {
		return nil, err
	}
	return h.svc.Window(r.Context(), in.Filter(), view)
}

// swagger:route GET /bookmarks Posts bookmarks
// @Summary Bookmarked posts
// @Tags posts
// @Produce json
// @Success 200 {array} posting.Post "ok"
// @Failure 401 {object} httpkit.Envelope "login required"
// @Router /bookmarks [get]
func (h *handlers) bookmarks(r *stdhttp.Request) (any, error) {
	posts, err := h.svc.Bookmarks(r.Context())
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []posting.Post{}
	}
	return posts, nil
}

// swagger:route POST /posts/{id}/bookmark Posts bookmarkAdd
// @Summary Bookmark a post
// @Tags posts
// @Param id path string true "post id"
// @Success 204 "no content"
// @Failure 401 {object} httpkit.Envelope "login required"
// @Router /posts/{id}/bookmark [post]
func (h *handlers) add(r *stdhttp.Request) (any, error) {
	if err := h.svc.Add(r.Context(), chi.URLParam(r, "id")); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}

// swagger:route DELETE /posts/{id}/bookmark Posts bookmarkRemove
// @Summary Remove a bookmark
// @Tags posts
// @Param id path string true "post id"
// @Success 204 "no content"
// @Failure 401 {object} httpkit.Envelope "login required"
// @Router /posts/{id}/bookmark [delete]
func (h *handlers) remove(r *stdhttp.Request) (any, error) {
	if err := h.svc.Remove(r.Context(), chi.URLParam(r, "id")); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}
