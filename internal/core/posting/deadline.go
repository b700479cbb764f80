package posting

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Deadline labels
const (
	StatusRolling = "상시모집"
	StatusClosed  = "마감"
	StatusDDay    = "D-Day"
)

var deadlineLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDeadline parses the ISO-ish dates seen upstream; date-only values are UTC midnight
func ParseDeadline(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, l := range deadlineLayouts {
		if t, err := time.Parse(l, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DeadlineStatus labels a posting deadline relative to now.
// Blank or unparseable is rolling, otherwise days = ceil((deadline-now)/24h):
// negative is closed, zero is D-Day, else D-n.
func DeadlineStatus(end *string, now time.Time) string {
	if end == nil {
		return StatusRolling
	}
	t, ok := ParseDeadline(*end)
	if !ok {
		return StatusRolling
	}
	days := int(math.Ceil(t.Sub(now).Hours() / 24))
	switch {
	case days < 0:
		return StatusClosed
	case days == 0:
		return StatusDDay
	}
	return fmt.Sprintf("D-%d", days)
}

// DepartmentLabel renders "main · second(복수전공) · ..." from the comma-joined department
func DepartmentLabel(department string) string {
	parts := SplitList(department)
	for i := 1; i < len(parts); i++ {
		parts[i] += "(복수전공)"
	}
	return strings.Join(parts, " · ")
}

// CohortLabel renders the two-digit cohort, e.g. 2023 -> "23학번"
func CohortLabel(enrollYear int) string {
	y := enrollYear - 1900
	if enrollYear >= 2000 {
		y = enrollYear - 2000
	}
	return strconv.Itoa(y) + "학번"
}
