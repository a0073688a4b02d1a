package youtube

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	hoursRe   = regexp.MustCompile(`(\d+)H`)
	minutesRe = regexp.MustCompile(`(\d+)M`)
	secondsRe = regexp.MustCompile(`(\d+)S`)
)

// ParseDuration converts an ISO-8601 video duration such as PT1H2M3S to
// seconds. Day components are ignored; malformed input yields 0.
func ParseDuration(s string) int {
	_, t, ok := strings.Cut(s, "T")
	if !ok {
		return 0
	}
	return component(hoursRe, t)*3600 + component(minutesRe, t)*60 + component(secondsRe, t)
}

func component(re *regexp.Regexp, s string) int {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	n, _ := strconv.Atoi(m[1])
	return n
}
