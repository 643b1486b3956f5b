// Package eradate resolves the Reiwa-era date printed on the first page of
// a daily report to an ISO calendar date.
package eradate

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Reiwa year 1 is 2019.
const reiwaOffset = 2018

// Matches 令和7年1月15日 with arbitrary whitespace between tokens.
var reiwaDateRegex = regexp.MustCompile(`令和\s*(\d+)\s*年\s*(\d+)\s*月\s*(\d+)\s*日`)

// Resolve extracts the report date from first-page text and returns it as
// YYYY-MM-DD. When no date pattern is found (or the text is empty) it falls
// back to today's date; a missing date is a designed default, not an error.
func Resolve(firstPageText string) string {
	m := reiwaDateRegex.FindStringSubmatch(firstPageText)
	if m == nil {
		return time.Now().Format("2006-01-02")
	}

	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])

	return fmt.Sprintf("%d-%02d-%02d", year+reiwaOffset, month, day)
}
