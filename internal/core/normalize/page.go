package normalize

import (
	"internhasha/internal/core/posting"
	"internhasha/internal/platform/logger"
)

// PageBytes normalizes a raw listing response body
func PageBytes(raw []byte) posting.Page {
	return fromEnvelope(Decode(raw))
}

// Page normalizes an already decoded listing payload (nil is treated as malformed)
func Page(v any) posting.Page {
	return fromEnvelope(Detect(v))
}

func fromEnvelope(env Envelope) posting.Page {
	logger.Named("normalize").Debug().
		Str("shape", env.Shape.String()).
		Int("records", len(env.List)).
		Msg("listing shape detected")

	switch env.Shape {
	case ShapeMalformed:
		return posting.Page{Posts: []posting.Post{}, Paginator: &posting.Paginator{LastPage: 1}}
	case ShapeBareArray:
		return posting.Page{Posts: Posts(env.List), Paginator: &posting.Paginator{LastPage: 1}}
	}

	posts := Posts(env.List)
	pg := Paginator(env.Root)
	if pg == nil {
		pg = Paginator(env.Data)
	}
	if pg == nil && len(posts) > 0 {
		pg = &posting.Paginator{LastPage: 1}
	}
	return posting.Page{Posts: posts, Paginator: pg}
}

// Paginator looks for the last page on one object, first numeric match wins:
// paginator.lastPage, paginator.totalPages, paginator.totalPage,
// (pageInfo or else pagination).totalPages, then totalPages.
// Values below 1 are raised to 1.
func Paginator(r map[string]any) *posting.Paginator {
	if r == nil {
		return nil
	}
	pag := record(r["paginator"])
	info, ok := r["pageInfo"]
	if !ok || info == nil {
		info = r["pagination"]
	}
	pageInfo := record(info)

	cands := []struct {
		obj map[string]any
		key string
	}{
		{pag, "lastPage"},
		{pag, "totalPages"},
		{pag, "totalPage"},
		{pageInfo, "totalPages"},
		{r, "totalPages"},
	}
	for _, c := range cands {
		if n, ok := number(c.obj[c.key]); ok {
			return &posting.Paginator{LastPage: max(n, 1)}
		}
	}
	return nil
}
