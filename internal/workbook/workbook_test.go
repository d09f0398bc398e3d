package workbook

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/novasignals/growth-cli/internal/config"
	"github.com/novasignals/growth-cli/internal/identity"
	"github.com/novasignals/growth-cli/internal/model"
)

func createTestXLSX(t *testing.T, sheets map[string][][]string) string {
	t.Helper()
	f := xlsx.NewFile()
	for name, rows := range sheets {
		sheet, err := f.AddSheet(name)
		require.NoError(t, err)
		for _, rowData := range rows {
			row := sheet.AddRow()
			for _, cellData := range rowData {
				c := row.AddCell()
				c.SetString(cellData)
			}
		}
	}
	path := filepath.Join(t.TempDir(), "test.xlsx")
	require.NoError(t, f.Save(path))
	return path
}

func testWorkbookConfig(path string) config.WorkbookConfig {
	return config.WorkbookConfig{
		Path:          path,
		FunnelSheet:   "COC",
		LifetimeSheet: "Enrollments",
		MonthlySheet:  "Monthly",
		PodcastSheet:  "Podcast",
		CampaignSheet: "Campaign",
	}
}

func fullTestSheets() map[string][][]string {
	return map[string][][]string{
		"COC": {
			{"DATE", "Alloted to", "Phone", "Total Sales", "Revenue", "peakAttendance", "pitchAttendance"},
			{"2024-03-01", "asha", "919000000001.0", "3", "45000", "120", "60"},
			{"2024-03-02", "", "919000000002", "1", "15000", "80", "30"},
		},
		"Enrollments": {
			{"Phone", "Amount", "PaymentDate"},
			{"919000000001.0", "29999", "2024-03-05"},
			{"919000000009", "29999", "not-a-date"},
		},
		"Monthly": {
			{"Phone", "Amount", "Current subscription status", "Date"},
			{"919000000003", "1499", "Active", "2024-02-10"},
			{"919000000004", "1499", "cancelled", "2024-01-12"},
		},
		"Podcast": {
			{"Phone", "subscription_date", "subscription_status"},
			{"919000000005", "2024-02-01", "active"},
		},
		"Campaign": {
			{"phone"},
			{"919000000001"},
			{"919000000006"},
		},
	}
}

func TestLoad(t *testing.T) {
	path := createTestXLSX(t, fullTestSheets())
	src, err := Load(testWorkbookConfig(path))
	require.NoError(t, err)

	require.Len(t, src.Funnel, 2)
	assert.Equal(t, "asha", src.Funnel[0].TeamMember)
	assert.Equal(t, identity.Phone("919000000001"), src.Funnel[0].Phone)
	assert.Equal(t, 3, src.Funnel[0].TotalSales)
	assert.InDelta(t, 45000, src.Funnel[0].Revenue, 0.001)
	assert.Equal(t, 120, src.Funnel[0].PeakAttendance)
	assert.Equal(t, 60, src.Funnel[0].PitchAttendance)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), src.Funnel[0].Date)

	require.Len(t, src.Lifetime, 2)
	assert.Equal(t, identity.Phone("919000000001"), src.Lifetime[0].Phone)
	assert.InDelta(t, 29999, src.Lifetime[0].Amount, 0.001)
	assert.True(t, src.Lifetime[1].PaymentDate.IsZero(), "unparseable date loads as zero time")

	require.Len(t, src.Monthly, 2)
	assert.Equal(t, model.StatusActive, src.Monthly[0].Status, "status is case-insensitive")
	assert.Equal(t, model.StatusCancelled, src.Monthly[1].Status)

	require.Len(t, src.Podcast, 1)
	assert.Equal(t, model.StatusActive, src.Podcast[0].Status)

	// Lowercase "phone" header resolves on the campaign sheet.
	require.Len(t, src.Campaign, 2)
	assert.Equal(t, identity.Phone("919000000001"), src.Campaign[0].Phone)
}

func TestLoadMissingCampaignSheet(t *testing.T) {
	sheets := fullTestSheets()
	delete(sheets, "Campaign")
	path := createTestXLSX(t, sheets)

	src, err := Load(testWorkbookConfig(path))
	require.NoError(t, err, "missing campaign sheet is not fatal")
	assert.Empty(t, src.Campaign)
}

func TestLoadMissingRequiredSheet(t *testing.T) {
	sheets := fullTestSheets()
	delete(sheets, "Enrollments")
	path := createTestXLSX(t, sheets)

	_, err := Load(testWorkbookConfig(path))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLoadMissingWorkbook(t *testing.T) {
	_, err := Load(testWorkbookConfig(filepath.Join(t.TempDir(), "missing.xlsx")))
	require.Error(t, err)
}

func TestLoadFunnelWithoutAttributionColumns(t *testing.T) {
	sheets := fullTestSheets()
	sheets["COC"] = [][]string{
		{"DATE", "Total Sales", "Revenue", "peakAttendance", "pitchAttendance"},
		{"2024-03-01", "2", "30000", "100", "40"},
	}
	path := createTestXLSX(t, sheets)

	src, err := Load(testWorkbookConfig(path))
	require.NoError(t, err, "missing join columns degrade, not fail")
	require.Len(t, src.Funnel, 1)
	assert.Empty(t, src.Funnel[0].TeamMember)
	assert.False(t, src.Funnel[0].Phone.Present())
	assert.Equal(t, 2, src.Funnel[0].TotalSales)
}

func TestLoadSkipsBlankRows(t *testing.T) {
	sheets := fullTestSheets()
	sheets["Enrollments"] = append(sheets["Enrollments"], []string{"", "", ""})
	path := createTestXLSX(t, sheets)

	src, err := Load(testWorkbookConfig(path))
	require.NoError(t, err)
	assert.Len(t, src.Lifetime, 2)
}
