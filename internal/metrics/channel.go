// Package metrics is the reconciliation-and-aggregation core. It consumes
// already-parsed source records and derives per-channel aggregates,
// cross-source reconciliations, and the combined snapshot.
//
// Every ratio in this package is defined as 0.0 when its denominator is
// zero; no computation faults on empty input.
package metrics

import (
	"sort"

	"github.com/novasignals/growth-cli/internal/model"
)

// pct returns n/d as a percentage, 0.0 when d is zero.
func pct(n, d float64) float64 {
	if d == 0 {
		return 0.0
	}
	return n / d * 100
}

// ratio returns n/d, 0.0 when d is zero.
func ratio(n, d float64) float64 {
	if d == 0 {
		return 0.0
	}
	return n / d
}

// BuildAllTime aggregates the lifetime-enrollment channel.
func BuildAllTime(recs []model.LifetimeEnrollment) model.AllTimeMetrics {
	var revenue float64
	for _, r := range recs {
		revenue += r.Amount
	}
	count := len(recs)
	return model.AllTimeMetrics{
		Count:          count,
		Revenue:        revenue,
		AvgPayment:     ratio(revenue, float64(count)),
		RevenuePerUser: ratio(revenue, float64(count)),
	}
}

// BuildMonthly aggregates the monthly-subscription channel, including the
// calendar-month trend series. MRR is the sum of amounts on active-status
// rows. Rows with a zero date are excluded from the trend buckets only.
func BuildMonthly(recs []model.MonthlySubscription) model.MonthlyMetrics {
	var (
		active    int
		revenue   float64
		activeMRR float64
		byStatus  = map[string]float64{}
		buckets   = map[string]*model.MonthBucket{}
	)

	for _, r := range recs {
		revenue += r.Amount
		byStatus[string(r.Status)] += r.Amount
		if r.Status == model.StatusActive {
			active++
			activeMRR += r.Amount
		}
		if !r.Date.IsZero() {
			month := r.Date.Format("2006-01")
			b, ok := buckets[month]
			if !ok {
				b = &model.MonthBucket{Month: month}
				buckets[month] = b
			}
			b.Revenue += r.Amount
			b.Count++
		}
	}

	trends := make([]model.MonthBucket, 0, len(buckets))
	for _, b := range buckets {
		b.AvgValue = ratio(b.Revenue, float64(b.Count))
		trends = append(trends, *b)
	}
	sort.Slice(trends, func(i, j int) bool { return trends[i].Month < trends[j].Month })

	total := len(recs)
	cancelled := total - active
	churn := pct(float64(cancelled), float64(total))

	m := model.MonthlyMetrics{
		Total:           total,
		Active:          active,
		Cancelled:       cancelled,
		Revenue:         revenue,
		AvgPayment:      ratio(revenue, float64(total)),
		MRR:             activeMRR,
		RevenuePerUser:  ratio(revenue, float64(total)),
		ChurnRate:       churn,
		RevenueByStatus: byStatus,
		Trends:          trends,
	}
	// Retention is defined as the complement so the two always sum to 100
	// on non-empty input.
	if total > 0 {
		m.RetentionRate = 100 - churn
	}
	return m
}

// BuildPodcast aggregates the podcast channel. The sheet records no per-row
// amount; MRR is active subscribers times the fixed unit price.
func BuildPodcast(recs []model.PodcastSubscriber, unitPrice float64) model.PodcastMetrics {
	var active, cancelled int
	for _, r := range recs {
		switch r.Status {
		case model.StatusActive:
			active++
		case model.StatusCancelled:
			cancelled++
		}
	}
	total := len(recs)
	return model.PodcastMetrics{
		Total:     total,
		Active:    active,
		Cancelled: cancelled,
		MRR:       float64(active) * unitPrice,
		Retention: pct(float64(active), float64(total)),
	}
}

// BuildFunnel aggregates the sales-funnel log across all events.
func BuildFunnel(recs []model.FunnelRecord) model.FunnelMetrics {
	var (
		revenue     float64
		sales       int
		peak, pitch int
	)
	for _, r := range recs {
		revenue += r.Revenue
		sales += r.TotalSales
		peak += r.PeakAttendance
		pitch += r.PitchAttendance
	}
	return model.FunnelMetrics{
		Revenue:          revenue,
		Sales:            sales,
		Peak:             peak,
		Pitch:            pitch,
		ConversionRate:   pct(float64(sales), float64(peak)),
		ShowUpRate:       pct(float64(pitch), float64(peak)),
		SalesPerAttendee: ratio(float64(sales), float64(peak)),
	}
}
