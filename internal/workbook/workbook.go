// Package workbook loads the growth workbook into typed source records.
// It is a thin parsing layer: every decision about joining, deduplication,
// and derived numbers lives in the metrics packages.
package workbook

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
	"go.uber.org/zap"

	"github.com/novasignals/growth-cli/internal/config"
	"github.com/novasignals/growth-cli/internal/identity"
	"github.com/novasignals/growth-cli/internal/model"
)

// Load opens the workbook at cfg.Path and parses all five source sheets.
//
// The campaign sheet is optional: when missing, the campaign source loads
// empty and downstream percentages report zero. Every other sheet is
// required.
func Load(cfg config.WorkbookConfig) (*model.Sources, error) {
	f, err := xlsx.OpenFile(cfg.Path)
	if err != nil {
		return nil, eris.Wrapf(err, "workbook: open %s", cfg.Path)
	}

	src := &model.Sources{}

	if src.Funnel, err = loadFunnel(f, cfg.FunnelSheet); err != nil {
		return nil, err
	}
	if src.Lifetime, err = loadLifetime(f, cfg.LifetimeSheet); err != nil {
		return nil, err
	}
	if src.Monthly, err = loadMonthly(f, cfg.MonthlySheet); err != nil {
		return nil, err
	}
	if src.Podcast, err = loadPodcast(f, cfg.PodcastSheet); err != nil {
		return nil, err
	}

	src.Campaign, err = loadCampaign(f, cfg.CampaignSheet)
	if err != nil {
		zap.L().Warn("workbook: campaign sheet unavailable, proceeding with empty lead set",
			zap.String("sheet", cfg.CampaignSheet),
			zap.Error(err),
		)
		src.Campaign = nil
	}

	zap.L().Info("workbook: loaded all sources",
		zap.String("path", cfg.Path),
		zap.Int("funnel_rows", len(src.Funnel)),
		zap.Int("lifetime_rows", len(src.Lifetime)),
		zap.Int("monthly_rows", len(src.Monthly)),
		zap.Int("podcast_rows", len(src.Podcast)),
		zap.Int("campaign_rows", len(src.Campaign)),
	)

	return src, nil
}

// sheetRows returns the header map and data rows of a named sheet.
func sheetRows(f *xlsx.File, name string) (map[string]int, [][]string, error) {
	sheet, ok := f.Sheet[name]
	if !ok {
		return nil, nil, eris.Errorf("workbook: sheet %q not found", name)
	}

	var header map[string]int
	var rows [][]string
	for i, row := range sheet.Rows {
		cells := rowToStrings(row)
		if i == 0 {
			header = headerIndex(cells)
			continue
		}
		if emptyRow(cells) {
			continue
		}
		rows = append(rows, cells)
	}
	if header == nil {
		header = map[string]int{}
	}
	return header, rows, nil
}

func rowToStrings(row *xlsx.Row) []string {
	cells := make([]string, len(row.Cells))
	for j, c := range row.Cells {
		cells[j] = c.String()
	}
	return cells
}

func emptyRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func loadFunnel(f *xlsx.File, name string) ([]model.FunnelRecord, error) {
	header, rows, err := sheetRows(f, name)
	if err != nil {
		return nil, err
	}

	// Attribution degrades to zero mapped when these are absent; the funnel
	// totals themselves still load.
	if !hasColumn(header, "Alloted to") || !hasColumn(header, "Phone") {
		zap.L().Warn("workbook: funnel sheet missing assignment or phone column, attribution will be empty",
			zap.String("sheet", name))
	}

	records := make([]model.FunnelRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, model.FunnelRecord{
			Date:            parseDate(cell(row, header, "DATE")),
			TeamMember:      cell(row, header, "Alloted to"),
			Phone:           identity.Normalize(cell(row, header, "Phone")),
			TotalSales:      parseIntOr(cell(row, header, "Total Sales"), 0),
			Revenue:         parseFloatOr(cell(row, header, "Revenue"), 0),
			PeakAttendance:  parseIntOr(cell(row, header, "peakAttendance"), 0),
			PitchAttendance: parseIntOr(cell(row, header, "pitchAttendance"), 0),
		})
	}
	return records, nil
}

func loadLifetime(f *xlsx.File, name string) ([]model.LifetimeEnrollment, error) {
	header, rows, err := sheetRows(f, name)
	if err != nil {
		return nil, err
	}

	records := make([]model.LifetimeEnrollment, 0, len(rows))
	for _, row := range rows {
		records = append(records, model.LifetimeEnrollment{
			Phone:       identity.Normalize(cell(row, header, "Phone")),
			Amount:      parseFloatOr(cell(row, header, "Amount"), 0),
			PaymentDate: parseDate(cell(row, header, "PaymentDate")),
		})
	}
	return records, nil
}

func loadMonthly(f *xlsx.File, name string) ([]model.MonthlySubscription, error) {
	header, rows, err := sheetRows(f, name)
	if err != nil {
		return nil, err
	}

	records := make([]model.MonthlySubscription, 0, len(rows))
	for _, row := range rows {
		records = append(records, model.MonthlySubscription{
			Phone:  identity.Normalize(cell(row, header, "Phone")),
			Amount: parseFloatOr(cell(row, header, "Amount"), 0),
			Status: parseStatus(cell(row, header, "Current subscription status")),
			Date:   parseDate(cell(row, header, "Date")),
		})
	}
	return records, nil
}

func loadPodcast(f *xlsx.File, name string) ([]model.PodcastSubscriber, error) {
	header, rows, err := sheetRows(f, name)
	if err != nil {
		return nil, err
	}

	records := make([]model.PodcastSubscriber, 0, len(rows))
	for _, row := range rows {
		records = append(records, model.PodcastSubscriber{
			Phone:            identity.Normalize(cell(row, header, "Phone")),
			SubscriptionDate: parseDate(cell(row, header, "subscription_date")),
			Status:           parseStatus(cell(row, header, "subscription_status")),
		})
	}
	return records, nil
}

// loadCampaign reads the campaign-lead sheet. The phone column appears as
// "phone" on some exports and "Phone" on others; headerIndex normalizes
// both to the same key.
func loadCampaign(f *xlsx.File, name string) ([]model.CampaignLead, error) {
	header, rows, err := sheetRows(f, name)
	if err != nil {
		return nil, err
	}

	records := make([]model.CampaignLead, 0, len(rows))
	for _, row := range rows {
		records = append(records, model.CampaignLead{
			Phone: identity.Normalize(cell(row, header, "Phone")),
		})
	}
	return records, nil
}

// parseStatus lowercases and trims a status cell. Unknown statuses pass
// through as-is: only "active" has special meaning downstream.
func parseStatus(s string) model.SubscriptionStatus {
	return model.SubscriptionStatus(strings.ToLower(strings.TrimSpace(s)))
}
