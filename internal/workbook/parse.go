package workbook

import (
	"strconv"
	"strings"
	"time"
)

// parseFloatOr parses a string as a float64, returning def if parsing fails
// or the cell is empty.
func parseFloatOr(s string, def float64) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return v
}

// parseIntOr parses a string as an integer, returning def if parsing fails.
// Counts exported from numeric columns may carry a ".0" suffix.
func parseIntOr(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSuffix(s, ".0")
	v, err := strconv.Atoi(s)
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return def
		}
		return int(f)
	}
	return v
}

// dateLayouts are the textual date formats seen across the sheets.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01-02-06",
	"1/2/06",
	"1/2/2006",
	"02-01-2006",
	"2-Jan-06",
	time.RFC3339,
}

// excelEpoch is day zero of the xlsx serial date system.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// parseDate parses a date cell. It tries the known textual layouts, then an
// xlsx serial number. Unparseable or empty cells return the zero time;
// callers exclude such rows from date-dependent aggregates.
func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 0 {
		days := int(serial)
		frac := serial - float64(days)
		return excelEpoch.AddDate(0, 0, days).Add(time.Duration(frac * 24 * float64(time.Hour)))
	}
	return time.Time{}
}

// headerIndex builds a normalized column name -> index map from a header row.
// Names are trimmed and lowercased so "phone" and "Phone" resolve the same.
func headerIndex(header []string) map[string]int {
	m := make(map[string]int, len(header))
	for i, col := range header {
		key := strings.ToLower(strings.TrimSpace(col))
		if key == "" {
			continue
		}
		if _, seen := m[key]; !seen {
			m[key] = i
		}
	}
	return m
}

// cell gets a column value by normalized name, or "" when the column is
// missing from the sheet or the row is short.
func cell(record []string, colIdx map[string]int, name string) string {
	idx, ok := colIdx[strings.ToLower(strings.TrimSpace(name))]
	if !ok || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

// hasColumn reports whether the sheet header contains the named column.
func hasColumn(colIdx map[string]int, name string) bool {
	_, ok := colIdx[strings.ToLower(strings.TrimSpace(name))]
	return ok
}
