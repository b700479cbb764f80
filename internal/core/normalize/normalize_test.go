package normalize

import (
	"encoding/json"
	"reflect"
	"testing"

	"internhasha/internal/core/posting"
)

const records = `[
  {"id":"p1","companyName":"Waffle","positionTitle":"FE","domain":"FINTECH","headCount":2,"isBookmarked":true},
  {"postId":"p2","company":{"name":"Studio","domain":"B2B"},"title":"BE","recruitmentNumber":1,"deadline":"2025-01-01","bookmarked":false},
  {"companyName":"no id"},
  {"uuid":"p3","companyDomain":"EDUCATION","subtitle":"hello","endDate":"2025-02-02","isScrapped":true}
]`

func TestPage_ShapeEquivalence(t *testing.T) {
	shapes := map[string]string{
		"posts":        `{"posts":` + records + `}`,
		"data.posts":   `{"data":{"posts":` + records + `}}`,
		"content":      `{"content":` + records + `}`,
		"data.content": `{"data":{"content":` + records + `}}`,
		"items":        `{"items":` + records + `}`,
		"bare":         records,
	}
	var want []posting.Post
	for name, body := range shapes {
		got := PageBytes([]byte(body)).Posts
		if len(got) != 3 {
			t.Fatalf("%s: got %d posts", name, len(got))
		}
		if want == nil {
			want = got
			continue
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("%s: posts differ\n got %+v\nwant %+v", name, got, want)
		}
	}
}

func TestDecode_ShapeTags(t *testing.T) {
	cases := map[string]Shape{
		`{"posts":[]}`:                ShapePosts,
		`{"data":{"posts":[]}}`:       ShapeDataPosts,
		`{"content":[]}`:              ShapeContent,
		`{"data":{"content":[]}}`:     ShapeDataContent,
		`{"items":[]}`:                ShapeItems,
		`[]`:                          ShapeBareArray,
		`{}`:                          ShapeEmptyObject,
		`{"posts":"nope","x":1}`:      ShapeUnknown,
		`42`:                          ShapeMalformed,
		`null`:                        ShapeMalformed,
		`{"posts":[`:                  ShapeMalformed,
		``:                            ShapeMalformed,
		`{"posts":[]} {"posts":[]}`:   ShapeMalformed,
		`{"posts":[],"content":[{}]}`: ShapePosts,
	}
	for in, want := range cases {
		if got := Decode([]byte(in)).Shape; got != want {
			t.Fatalf("Decode(%q) = %s, want %s", in, got, want)
		}
	}
	if Shape(99).String() != "invalid" {
		t.Fatalf("out of range shape should be invalid")
	}
}

func TestPost_FieldFallbacks(t *testing.T) {
	var list []any
	if err := json.Unmarshal([]byte(records), &list); err != nil {
		t.Fatal(err)
	}
	ps := Posts(list)

	p1, p2, p3 := ps[0], ps[1], ps[2]
	if p1.ID != "p1" || p1.CompanyName != "Waffle" || *p1.HeadCount != 2 || !p1.Bookmarked() {
		t.Fatalf("p1 = %+v", p1)
	}
	if p1.Slogan != nil || p1.EmploymentEndDate != nil {
		t.Fatalf("p1 optional fields should be absent")
	}
	if p2.ID != "p2" || p2.CompanyName != "Studio" || p2.Domain != "B2B" || p2.PositionTitle != "BE" {
		t.Fatalf("p2 = %+v", p2)
	}
	if *p2.HeadCount != 1 || *p2.EmploymentEndDate != "2025-01-01" || p2.IsBookmarked == nil || *p2.IsBookmarked {
		t.Fatalf("p2 optional = %+v", p2)
	}
	if p3.ID != "p3" || p3.Domain != "EDUCATION" || *p3.Slogan != "hello" || *p3.EmploymentEndDate != "2025-02-02" || !p3.Bookmarked() {
		t.Fatalf("p3 = %+v", p3)
	}
}

func TestPost_WrongTypesTreatedAsAbsent(t *testing.T) {
	p, ok := Post(map[string]any{
		"id":           "x",
		"companyName":  7,
		"company":      map[string]any{"name": "Fallback"},
		"headCount":    "3",
		"isBookmarked": "true",
		"bookmarked":   true,
	})
	if !ok {
		t.Fatalf("expected ok")
	}
	if p.CompanyName != "Fallback" {
		t.Fatalf("company %q", p.CompanyName)
	}
	if p.HeadCount != nil {
		t.Fatalf("string head count accepted: %d", *p.HeadCount)
	}
	if p.IsBookmarked == nil || !*p.IsBookmarked {
		t.Fatalf("bookmark flag %v", p.IsBookmarked)
	}
}

func TestPost_IDlessDiscarded(t *testing.T) {
	for _, raw := range []any{
		map[string]any{"companyName": "x"},
		map[string]any{"id": 12},
		map[string]any{"id": ""},
		"string record",
		nil,
	} {
		if _, ok := Post(raw); ok {
			t.Fatalf("Post(%v) should be discarded", raw)
		}
	}
	if got := PageBytes([]byte(`{"posts":[{"title":"a"},{"title":"b"}]}`)); len(got.Posts) != 0 || got.Paginator != nil {
		t.Fatalf("all id-less: %+v", got)
	}
}

func TestPaginator_Variants(t *testing.T) {
	cases := map[string]int{
		`{"posts":[],"paginator":{"lastPage":4}}`:                    4,
		`{"posts":[],"paginator":{"totalPages":5}}`:                  5,
		`{"posts":[],"totalPages":5}`:                                5,
		`{"posts":[],"paginator":{"totalPage":6}}`:                   6,
		`{"posts":[],"pageInfo":{"totalPages":7}}`:                   7,
		`{"posts":[],"pagination":{"totalPages":8}}`:                 8,
		`{"data":{"posts":[],"paginator":{"lastPage":9}}}`:           9,
		`{"posts":[],"paginator":{"lastPage":2,"totalPages":3}}`:     2,
		`{"posts":[],"paginator":{"lastPage":0}}`:                    1,
		`{"posts":[],"paginator":{"lastPage":"3"},"totalPages":3.0}`: 3,
	}
	for in, want := range cases {
		got := PageBytes([]byte(in))
		if got.Paginator == nil || got.Paginator.LastPage != want {
			t.Fatalf("%s: got %+v, want %d", in, got.Paginator, want)
		}
	}
}

func TestPaginator_PageInfoShadowsPagination(t *testing.T) {
	got := PageBytes([]byte(`{"posts":[{"id":"a"}],"pageInfo":{},"pagination":{"totalPages":3}}`))
	if got.Paginator == nil || got.Paginator.LastPage != 1 {
		t.Fatalf("pageInfo present should shadow pagination, got %+v", got.Paginator)
	}
}

func TestPaginator_Defaults(t *testing.T) {
	if got := PageBytes([]byte(`{"posts":[]}`)); got.Paginator != nil {
		t.Fatalf("zero posts, no paginator: want nil, got %+v", got.Paginator)
	}
	if got := PageBytes([]byte(`{"posts":[{"id":"a"}]}`)); got.Paginator == nil || got.Paginator.LastPage != 1 {
		t.Fatalf("one post, no paginator: want 1, got %+v", got.Paginator)
	}
	if got := PageBytes([]byte(`{}`)); len(got.Posts) != 0 || got.Paginator != nil || got.Posts == nil {
		t.Fatalf("empty object: %+v", got)
	}
}

func TestPage_NeverFails(t *testing.T) {
	for _, in := range []string{`not json`, `"str"`, `123`, `true`, `null`, ``} {
		got := PageBytes([]byte(in))
		if got.Posts == nil || len(got.Posts) != 0 || got.Paginator == nil || got.Paginator.LastPage != 1 {
			t.Fatalf("%q: got %+v", in, got)
		}
	}
	if got := Page(nil); len(got.Posts) != 0 || got.LastPage() != 1 {
		t.Fatalf("nil payload: %+v", got)
	}
	if got := PageBytes([]byte(`[]`)); got.Paginator == nil || got.Paginator.LastPage != 1 {
		t.Fatalf("bare empty array: %+v", got)
	}
}

func TestPage_DecodedValueMatchesBytes(t *testing.T) {
	body := `{"content":[{"id":"a","headCount":3}],"totalPages":2}`
	var v any
	if err := json.Unmarshal([]byte(body), &v); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(Page(v), PageBytes([]byte(body))) {
		t.Fatalf("Page and PageBytes disagree")
	}
}

func TestText_NFC(t *testing.T) {
	decomposed := "\u1100\u1161"
	if got := Text(decomposed); got != "\uac00" {
		t.Fatalf("Text = %q", got)
	}
	if got := Text("a\x00b\tc\n"); got != "ab\tc\n" {
		t.Fatalf("Text controls = %q", got)
	}
	if got := Text(string([]byte{'o', 0xff, 'k'})); got != "ok" {
		t.Fatalf("Text invalid utf8 = %q", got)
	}
	p, _ := Post(map[string]any{"id": "x", "companyName": "\u1112\u1161\u11ab"})
	if p.CompanyName != "\ud55c" {
		t.Fatalf("company not composed: %q", p.CompanyName)
	}
}

func TestNumber(t *testing.T) {
	if n, ok := number(json.Number("5.9")); !ok || n != 5 {
		t.Fatalf("json.Number: %d %v", n, ok)
	}
	if _, ok := number(json.Number("1e400")); ok {
		t.Fatalf("overflow should be rejected")
	}
	if n, ok := number(float64(3)); !ok || n != 3 {
		t.Fatalf("float64: %d %v", n, ok)
	}
	if _, ok := number("3"); ok {
		t.Fatalf("string should be rejected")
	}
}
