package workbook

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFloatOr(t *testing.T) {
	assert.InDelta(t, 1499.5, parseFloatOr("1499.5", 0), 0.001)
	assert.InDelta(t, 45000, parseFloatOr(" 45,000 ", 0), 0.001)
	assert.InDelta(t, -1, parseFloatOr("", -1), 0.001)
	assert.InDelta(t, 0, parseFloatOr("n/a", 0), 0.001)
}

func TestParseIntOr(t *testing.T) {
	assert.Equal(t, 120, parseIntOr("120", 0))
	assert.Equal(t, 120, parseIntOr("120.0", 0))
	assert.Equal(t, 1200, parseIntOr("1,200", 0))
	assert.Equal(t, 7, parseIntOr("", 7))
	assert.Equal(t, 0, parseIntOr("xx", 0))
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{"iso", "2024-03-05", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
		{"iso with time", "2024-03-05 13:30:00", time.Date(2024, 3, 5, 13, 30, 0, 0, time.UTC)},
		{"slash", "3/5/2024", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
		{"serial", "45356", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
		{"empty", "", time.Time{}},
		{"garbage", "soon", time.Time{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseDate(tt.in))
		})
	}
}

func TestHeaderIndex(t *testing.T) {
	idx := headerIndex([]string{" Phone ", "Amount", "", "phone"})
	assert.Equal(t, 0, idx["phone"], "first occurrence wins")
	assert.Equal(t, 1, idx["amount"])
	assert.Len(t, idx, 2)
}

func TestCell(t *testing.T) {
	idx := headerIndex([]string{"Phone", "Amount"})
	row := []string{" 919000000001 ", "29999"}
	assert.Equal(t, "919000000001", cell(row, idx, "phone"))
	assert.Equal(t, "29999", cell(row, idx, "Amount"))
	assert.Equal(t, "", cell(row, idx, "Missing"))
	assert.Equal(t, "", cell([]string{"only"}, idx, "Amount"), "short row")
}
