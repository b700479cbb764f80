package posting

import (
	"strings"
	"testing"
	"time"
)

func TestFilterQuery_Example(t *testing.T) {
	f := Filter{Roles: []string{"FRONT", "BACKEND"}, Domains: []string{}, IsActive: true, Page: 0, Order: OrderLatest}
	if got := f.Query(); got != "page=0&order=0&roles=FRONT&roles=BACKEND&isActive=true" {
		t.Fatalf("Query = %q", got)
	}
}

func TestFilterQuery_OmitsEmptyAndInactive(t *testing.T) {
	got := Filter{Page: 3, Order: OrderDeadline}.Query()
	if got != "page=3&order=1" {
		t.Fatalf("Query = %q", got)
	}
	for _, k := range []string{"roles=", "domains=", "isActive"} {
		if strings.Contains(got, k) {
			t.Fatalf("unexpected %q in %q", k, got)
		}
	}
}

func TestFilterQuery_DefaultOrderAndCommaLists(t *testing.T) {
	got := Filter{Roles: []string{"FRONT, BACKEND", " ", "APP"}, Domains: []string{"FINTECH,,B2B"}}.Query()
	want := "page=0&order=0&roles=FRONT&roles=BACKEND&roles=APP&domains=FINTECH&domains=B2B"
	if got != want {
		t.Fatalf("Query = %q, want %q", got, want)
	}
}

func TestFilterWithPage_DoesNotMutate(t *testing.T) {
	f := Filter{Page: 0}
	g := f.WithPage(1)
	if f.Page != 0 || g.Page != 1 {
		t.Fatalf("WithPage mutated: %d %d", f.Page, g.Page)
	}
}

func TestEnums(t *testing.T) {
	if PositionFront.DisplayName() != "프론트엔드" || DomainHealthtech.DisplayName() != "헬스케어" {
		t.Fatalf("display names mismatch")
	}
	if Position("CHEF").DisplayName() != "CHEF" || Position("CHEF").Valid() {
		t.Fatalf("unknown position handling")
	}
	if p, ok := ParsePosition(" backend "); !ok || p != PositionBackend {
		t.Fatalf("ParsePosition = %q %v", p, ok)
	}
	if d, ok := ParseDomain("b2b"); !ok || d != DomainB2B {
		t.Fatalf("ParseDomain = %q %v", d, ok)
	}
	if ParseOrder("deadline") != OrderDeadline || ParseOrder("1") != OrderDeadline || ParseOrder("x") != OrderLatest {
		t.Fatalf("ParseOrder mismatch")
	}
	n := 0
	for _, g := range PositionGroups() {
		n += len(g.Positions)
	}
	if n != len(Positions) {
		t.Fatalf("groups cover %d of %d positions", n, len(Positions))
	}
}

func mkPosts(n int) []Post {
	out := make([]Post, n)
	for i := range out {
		out[i] = Post{ID: string(rune('a' + i%26))}
	}
	return out
}

func TestPaginate(t *testing.T) {
	cases := []struct {
		name      string
		n, page   int
		wantPage  int
		wantPages int
		wantLen   int
	}{
		{"empty", 0, 1, 1, 1, 0},
		{"exact", 12, 1, 1, 1, 12},
		{"second partial", 20, 2, 2, 2, 8},
		{"out of range resets", 20, 5, 1, 2, 12},
		{"zero resets", 20, 0, 1, 2, 12},
		{"three pages", 25, 3, 3, 3, 1},
	}
	for _, c := range cases {
		w := Paginate(mkPosts(c.n), c.page, PerPage)
		if w.Page != c.wantPage || w.TotalPages != c.wantPages || len(w.Posts) != c.wantLen || w.Total != c.n {
			t.Fatalf("%s: got page=%d pages=%d len=%d total=%d", c.name, w.Page, w.TotalPages, len(w.Posts), w.Total)
		}
	}
	if w := Paginate(nil, 1, 0); w.Posts == nil {
		t.Fatalf("posts should be an empty slice, not nil")
	}
}

func sp(s string) *string { return &s }

func TestDeadlineStatus(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		in   *string
		want string
	}{
		{nil, StatusRolling},
		{sp("  "), StatusRolling},
		{sp("not a date"), StatusRolling},
		{sp("2025-03-08"), StatusClosed},
		{sp("2025-03-10"), StatusDDay},
		{sp("2025-03-11"), "D-1"},
		{sp("2025-03-13T00:00:00Z"), "D-3"},
		{sp("2025-03-20T12:00:00"), "D-10"},
	}
	for _, c := range cases {
		if got := DeadlineStatus(c.in, now); got != c.want {
			in := "<nil>"
			if c.in != nil {
				in = *c.in
			}
			t.Fatalf("DeadlineStatus(%q) = %q, want %q", in, got, c.want)
		}
	}
}

func TestProfileLabels(t *testing.T) {
	if got := DepartmentLabel("컴퓨터공학부, 경영학과 ,"); got != "컴퓨터공학부 · 경영학과(복수전공)" {
		t.Fatalf("DepartmentLabel = %q", got)
	}
	if got := DepartmentLabel("수학과"); got != "수학과" {
		t.Fatalf("DepartmentLabel single = %q", got)
	}
	if CohortLabel(2023) != "23학번" || CohortLabel(1999) != "99학번" {
		t.Fatalf("CohortLabel mismatch")
	}
}

func TestPostBookmarkHelpers(t *testing.T) {
	p := Post{ID: "x"}
	if p.Bookmarked() {
		t.Fatalf("absent flag should read false")
	}
	q := p.WithBookmark(true)
	if !q.Bookmarked() || p.IsBookmarked != nil {
		t.Fatalf("WithBookmark should copy")
	}
	if (Page{}).LastPage() != 1 || (Page{Paginator: &Paginator{LastPage: 4}}).LastPage() != 4 {
		t.Fatalf("Page.LastPage mismatch")
	}
}
