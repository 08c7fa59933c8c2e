// Package format converts YouTube API duration and timestamp values to display forms.
package format

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// JST is the fixed display offset for all rendered timestamps.
var JST = time.FixedZone("JST", 9*60*60)

// isoDurationRegex matches YouTube content durations of the form PT[nH][nM][nS].
// Every group is optional; a token matching none of them renders as zero.
var isoDurationRegex = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

// FormatISODuration renders an ISO-8601-like duration token as H:MM:SS.
// Malformed or empty tokens render as "0:00:00". Overflowing minutes and
// seconds are normalised, so "PT90S" renders as "0:01:30".
func FormatISODuration(token string) string {
	m := isoDurationRegex.FindStringSubmatch(token)
	if m == nil {
		return "0:00:00"
	}

	total := atoi(m[1])*3600 + atoi(m[2])*60 + atoi(m[3])
	return fmt.Sprintf("%d:%02d:%02d", total/3600, total/60%60, total%60)
}

// atoi converts a captured digit group, treating an absent group as zero.
func atoi(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// FormatJST renders an instant as "YYYY/MM/DD HH:MM:SS" in the fixed +9 offset.
func FormatJST(t time.Time) string {
	return t.In(JST).Format("2006/01/02 15:04:05")
}

// RunDate renders an instant as a "YYYYMMDD" run identifier in the fixed +9 offset.
func RunDate(t time.Time) string {
	return t.In(JST).Format("20060102")
}
