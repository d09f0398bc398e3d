package metrics

import "github.com/novasignals/growth-cli/internal/model"

// BuildTAM combines the per-channel aggregates into the paying-user count,
// the corrected total addressable market, and the derived revenue figures.
//
// PayingUsers is a straight sum of the three revenue channels' record
// counts. A person active in two channels is counted twice here; whether
// that is the intended business definition of TAM or an unaddressed
// double-count is a stakeholder question, and the figure is preserved
// as-is rather than deduplicated.
//
// The corrected TAM adds only the pure (unconverted) campaign leads:
// converted campaign customers already exist inside the lifetime count, so
// a person who is both a lead and a purchaser contributes exactly once.
// TAM >= PayingUsers always, with equality iff there are no pure leads.
func BuildTAM(
	allTime model.AllTimeMetrics,
	monthly model.MonthlyMetrics,
	podcast model.PodcastMetrics,
	funnel model.FunnelMetrics,
	campaign model.CampaignMetrics,
) (model.CombinedMetrics, model.RevenueMetrics) {
	payingUsers := allTime.Count + monthly.Total + podcast.Total
	combinedRevenue := allTime.Revenue + monthly.Revenue + podcast.MRR

	combined := model.CombinedMetrics{
		PayingUsers:     payingUsers,
		Revenue:         combinedRevenue,
		ActiveRecurring: monthly.Active + podcast.Active,
	}

	arr := monthly.MRR * 12
	revenue := model.RevenueMetrics{
		RevenuePerCustomer: ratio(combinedRevenue, float64(payingUsers)),
		RevenuePerAttendee: ratio(combinedRevenue, float64(funnel.Peak)),
		ARR:                arr,
		ARRPercentage:      pct(arr, combinedRevenue),
		MRR:                monthly.MRR,
		AverageLTV:         allTime.AvgPayment,
		TAM:                payingUsers + campaign.PureLeads,
	}

	return combined, revenue
}
