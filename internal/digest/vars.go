package digest

import (
	"strings"
	"time"
)

// ExpandVars performs placeholder substitutions in label strings.
//
// Supported variables:
// - {.CurrentDate} => e.g. "02 January 2006" (UTC)
func ExpandVars(s string, now time.Time) string {
	if strings.TrimSpace(s) == "" {
		return s
	}
	date := now.UTC().Format("02 January 2006")
	return strings.ReplaceAll(s, "{.CurrentDate}", date)
}
