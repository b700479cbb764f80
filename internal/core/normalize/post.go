package normalize

import (
	"encoding/json"
	"math"

	"internhasha/internal/core/posting"
)

// Post maps one raw record. ok is false when no id resolves; such records
// cannot be addressed for bookmarks and are dropped from lists.
func Post(raw any) (posting.Post, bool) {
	r := record(raw)
	company := record(r["company"])

	id := firstString(r, "id", "postId", "uuid")
	if id == nil || *id == "" {
		return posting.Post{}, false
	}

	p := posting.Post{
		ID:                *id,
		CompanyName:       deref(firstString(r, "companyName"), firstString(company, "name")),
		PositionTitle:     deref(firstString(r, "positionTitle", "title")),
		Domain:            deref(firstString(r, "domain", "companyDomain"), firstString(company, "domain")),
		Slogan:            firstString(r, "slogan", "subtitle"),
		HeadCount:         firstInt(r, "headCount", "recruitmentNumber"),
		EmploymentEndDate: firstString(r, "employmentEndDate", "endDate", "deadline"),
		IsBookmarked:      firstBool(r, "isBookmarked", "bookmarked", "isScrapped"),
	}
	return p, true
}

// Posts maps a list, dropping records without an id. Never nil.
func Posts(list []any) []posting.Post {
	out := make([]posting.Post, 0, len(list))
	for _, raw := range list {
		if p, ok := Post(raw); ok {
			out = append(out, p)
		}
	}
	return out
}

func firstString(r map[string]any, keys ...string) *string {
	for _, k := range keys {
		if s, ok := r[k].(string); ok {
			s = Text(s)
			return &s
		}
	}
	return nil
}

func firstBool(r map[string]any, keys ...string) *bool {
	for _, k := range keys {
		if b, ok := r[k].(bool); ok {
			return &b
		}
	}
	return nil
}

func firstInt(r map[string]any, keys ...string) *int {
	for _, k := range keys {
		if n, ok := number(r[k]); ok {
			return &n
		}
	}
	return nil
}

// number accepts finite JSON numbers and truncates toward zero
func number(v any) (int, bool) {
	var f float64
	switch t := v.(type) {
	case json.Number:
		x, err := t.Float64()
		if err != nil {
			return 0, false
		}
		f = x
	case float64:
		f = t
	case int:
		return t, true
	case int64:
		f = float64(t)
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

// deref returns the first non-nil candidate, or ""
func deref(cands ...*string) string {
	for _, c := range cands {
		if c != nil {
			return *c
		}
	}
	return ""
}
