package shared

import "strings"

// DateLayout is the calendar-date format used on documents and exports.
const DateLayout = "2006-01-02"

// ContainsFold reports whether s contains substr, ignoring case.
// An empty substr matches everything.
func ContainsFold(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
