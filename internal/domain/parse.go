package domain

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// durationPattern matches ISO-8601-style durations of the form PT[nH][nM].
// Both groups are optional so "PT2H", "PT45M" and "PT2H30M" all match.
var durationPattern = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?$`)

// ParseDurationMinutes converts a duration string such as "PT2H30M" into
// total minutes. Absent components count as zero; malformed input yields 0,
// never an error.
func ParseDurationMinutes(s string) int {
	m := durationPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0
	}
	hours, _ := strconv.Atoi(m[1])
	mins, _ := strconv.Atoi(m[2])
	return hours*60 + mins
}

// ParseDecimalOrZero converts a decimal string such as "123.45" into a
// float64. Empty or non-numeric input yields exactly 0, never an error or
// NaN. This is the single coercion path for every price string in the
// system.
func ParseDecimalOrZero(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
