package posting

import "strings"

// Position is a job role category
type Position string

// Positions
const (
	PositionFront     Position = "FRONT"
	PositionApp       Position = "APP"
	PositionBackend   Position = "BACKEND"
	PositionData      Position = "DATA"
	PositionOthers    Position = "OTHERS"
	PositionDesign    Position = "DESIGN"
	PositionPlanner   Position = "PLANNER"
	PositionMarketing Position = "MARKETING"
)

// Domain is a company business domain
type Domain string

// Domains
const (
	DomainFintech    Domain = "FINTECH"
	DomainHealthtech Domain = "HEALTHTECH"
	DomainEducation  Domain = "EDUCATION"
	DomainEcommerce  Domain = "ECOMMERCE"
	DomainFoodtech   Domain = "FOODTECH"
	DomainMobility   Domain = "MOBILITY"
	DomainContents   Domain = "CONTENTS"
	DomainB2B        Domain = "B2B"
	DomainOthers     Domain = "OTHERS"
)

// Order is the listing sort key as sent on the wire
type Order string

// Orders
const (
	OrderLatest   Order = "0"
	OrderDeadline Order = "1"
)

// Positions lists every position in display order
var Positions = []Position{
	PositionFront, PositionApp, PositionBackend, PositionData, PositionOthers,
	PositionDesign, PositionPlanner, PositionMarketing,
}

// Domains lists every domain in display order
var Domains = []Domain{
	DomainFintech, DomainHealthtech, DomainEducation, DomainEcommerce, DomainFoodtech,
	DomainMobility, DomainContents, DomainB2B, DomainOthers,
}

var positionNames = map[Position]string{
	PositionFront:     "프론트엔드",
	PositionApp:       "앱",
	PositionBackend:   "백엔드",
	PositionData:      "데이터",
	PositionOthers:    "기타 개발",
	PositionDesign:    "디자인",
	PositionPlanner:   "기획",
	PositionMarketing: "마케팅",
}

var domainNames = map[Domain]string{
	DomainFintech:    "핀테크",
	DomainHealthtech: "헬스케어",
	DomainEducation:  "교육",
	DomainEcommerce:  "이커머스",
	DomainFoodtech:   "푸드테크",
	DomainMobility:   "모빌리티",
	DomainContents:   "콘텐츠",
	DomainB2B:        "B2B",
	DomainOthers:     "기타",
}

// PositionGroup is a named bundle of positions used by filter pickers
type PositionGroup struct {
	Name      string
	Positions []Position
}

// PositionGroups returns the picker groups in display order
func PositionGroups() []PositionGroup {
	return []PositionGroup{
		{Name: "개발", Positions: []Position{PositionFront, PositionApp, PositionBackend, PositionData, PositionOthers}},
		{Name: "디자인", Positions: []Position{PositionDesign}},
		{Name: "기획", Positions: []Position{PositionPlanner}},
		{Name: "마케팅", Positions: []Position{PositionMarketing}},
	}
}

// DisplayName returns the korean label, or the raw value when unknown
func (p Position) DisplayName() string {
	if s, ok := positionNames[p]; ok {
		return s
	}
	return string(p)
}

// Valid reports whether p is a known position
func (p Position) Valid() bool {
	_, ok := positionNames[p]
	return ok
}

// DisplayName returns the korean label, or the raw value when unknown
func (d Domain) DisplayName() string {
	if s, ok := domainNames[d]; ok {
		return s
	}
	return string(d)
}

// Valid reports whether d is a known domain
func (d Domain) Valid() bool {
	_, ok := domainNames[d]
	return ok
}

// ParsePosition accepts any case and surrounding space
func ParsePosition(s string) (Position, bool) {
	p := Position(strings.ToUpper(strings.TrimSpace(s)))
	return p, p.Valid()
}

// ParseDomain accepts any case and surrounding space
func ParseDomain(s string) (Domain, bool) {
	d := Domain(strings.ToUpper(strings.TrimSpace(s)))
	return d, d.Valid()
}

// ParseOrder maps "0"/"latest" and "1"/"deadline"; anything else is latest
func ParseOrder(s string) Order {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "deadline":
		return OrderDeadline
	}
	return OrderLatest
}
