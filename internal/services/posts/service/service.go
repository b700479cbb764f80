// Package service implements listing, the combined two-page window and
// bookmarks on top of the REST client and the response normalizer
package service

import (
	"context"
	"slices"

	"internhasha/internal/adapters/internhasha"
	"internhasha/internal/core/normalize"
	"internhasha/internal/core/posting"
	perr "internhasha/internal/platform/errors"
	"internhasha/internal/platform/logger"
	"internhasha/internal/platform/validate"
	"internhasha/internal/services/posts/domain"
	"internhasha/internal/session"

	"golang.org/x/sync/errgroup"
)

// Service is the postings contract
type Service interface{ domain.ServicePort }

// Svc implements Service
type Svc struct {
	api    domain.API
	tokens session.TokenSource
}

// New creates the postings service. tokens gates bookmark mutations.
func New(api domain.API, tokens session.TokenSource) *Svc {
	if api == nil {
		panic("posts.Service requires a non nil API")
	}
	if tokens == nil {
		panic("posts.Service requires a non nil token source")
	}
	return &Svc{api: api, tokens: tokens}
}

// List fetches one server page. Failures other than cancellation degrade to an
// empty page and are only logged.
func (s *Svc) List(ctx context.Context, f posting.Filter) (posting.Page, error) {
	if err := validate.Check(f); err != nil {
		return posting.Page{}, err
	}
	pg, err := s.fetch(ctx, f)
	if err == nil {
		return pg, nil
	}
	if internhasha.IsAborted(err) {
		return posting.Page{}, err
	}
	logger.C(ctx).Warn().Err(err).Int("page", f.Page).Msg("listing failed, showing empty page")
	return posting.Page{Posts: []posting.Post{}}, nil
}

// Window fetches server pages 0 and 1 concurrently with the same filter,
// concatenates them and cuts 1-based page view out of the result
func (s *Svc) Window(ctx context.Context, f posting.Filter, view int) (posting.Window, error) {
	if err := validate.Check(f); err != nil {
		return posting.Window{}, err
	}
	var pages [2]posting.Page
	g, gctx := errgroup.WithContext(ctx)
	for i := range pages {
		g.Go(func() error {
			pg, err := s.fetch(gctx, f.WithPage(i))
			if err != nil {
				return err
			}
			pages[i] = pg
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return posting.Window{}, err
	}
	all := slices.Concat(pages[0].Posts, pages[1].Posts)
	return posting.Paginate(all, view, posting.PerPage), nil
}

// Bookmarks returns the bookmarked posts. On failure it returns an empty slice
// together with the error.
func (s *Svc) Bookmarks(ctx context.Context) ([]posting.Post, error) {
	r, err := s.api.Bookmarks(ctx)
	if err != nil {
		return []posting.Post{}, err
	}
	return pageOf(r).Posts, nil
}

// Toggle flips the bookmark on p and returns the updated post. The flag only
// changes once the server accepted the call.
func (s *Svc) Toggle(ctx context.Context, p posting.Post) (posting.Post, error) {
	on := p.Bookmarked()
	var err error
	if on {
		err = s.Remove(ctx, p.ID)
	} else {
		err = s.Add(ctx, p.ID)
	}
	if err != nil {
		return p, err
	}
	return p.WithBookmark(!on), nil
}

// Add bookmarks post id; requires a session
func (s *Svc) Add(ctx context.Context, id string) error {
	if err := s.requireSession(); err != nil {
		return err
	}
	return s.api.AddBookmark(ctx, id)
}

// Remove drops the bookmark on post id; requires a session
func (s *Svc) Remove(ctx context.Context, id string) error {
	if err := s.requireSession(); err != nil {
		return err
	}
	return s.api.RemoveBookmark(ctx, id)
}

func (s *Svc) requireSession() error {
	tok, err := s.tokens.Token()
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnknown, "read session token")
	}
	if tok == "" {
		return perr.Unauthorizedf("login required to bookmark posts")
	}
	return nil
}

func (s *Svc) fetch(ctx context.Context, f posting.Filter) (posting.Page, error) {
	r, err := s.api.Posts(ctx, f.Query())
	if err != nil {
		return posting.Page{}, err
	}
	return pageOf(r), nil
}

// pageOf normalizes a successful response; non-JSON bodies read as malformed
func pageOf(r *internhasha.Response) posting.Page {
	if r == nil || !r.IsJSON {
		return normalize.Page(nil)
	}
	return normalize.Page(r.JSON)
}
