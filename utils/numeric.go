package utils

import (
	"strconv"
	"strings"
)

// SafeInt converts locale-formatted numeric text from a report cell to an
// integer. Thousands-separator commas, spaces, and interior newlines are
// stripped and a single leading "-" is honored. Empty or non-numeric input
// yields 0; this function never fails, malformed cells degrade to zero.
func SafeInt(value string) int {
	cleaned := strings.NewReplacer(",", "", " ", "", "\n", "").Replace(strings.TrimSpace(value))
	if cleaned == "" {
		return 0
	}

	negative := false
	if strings.HasPrefix(cleaned, "-") {
		negative = true
		cleaned = cleaned[1:]
	}
	if !isDigits(cleaned) {
		return 0
	}

	n, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0
	}
	if negative {
		return -n
	}
	return n
}

// SafeText flattens a possibly multi-line cell into a single line: lines are
// trimmed, empties dropped, and the rest joined with single spaces.
func SafeText(value string) string {
	return strings.Join(SplitLines(value), " ")
}

// SplitLines returns the trimmed non-empty lines of a cell.
func SplitLines(value string) []string {
	if value == "" {
		return nil
	}
	var lines []string
	for _, line := range strings.Split(value, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// isDigits reports whether s is a non-empty run of ASCII decimal digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// isNumericCellLine reports whether a single cell line holds a plain
// unsigned amount once commas and spaces are removed. Used to pick the
// amount out of cells like "30%\n1,500" where a ratio label shares the box.
func isNumericCellLine(line string) bool {
	cleaned := strings.NewReplacer(",", "", " ", "").Replace(line)
	return isDigits(cleaned)
}
