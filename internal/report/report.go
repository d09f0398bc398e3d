// Package report renders a metrics snapshot as a plain-text summary.
package report

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/novasignals/growth-cli/internal/model"
)

const rule = "================================================================================"

// Render formats the snapshot as a fixed-width text report.
func Render(snap *model.Snapshot) string {
	// Grouped thousands for counts and amounts, matching the dashboard.
	p := message.NewPrinter(language.English)

	var b strings.Builder
	section := func(title string) {
		b.WriteString(rule + "\n" + title + "\n" + rule + "\n\n")
	}
	line := func(label, value string) {
		fmt.Fprintf(&b, "%-32s%s\n", label+":", value)
	}
	count := func(label string, v int) {
		line(label, p.Sprintf("%d", v))
	}
	amount := func(label string, v float64) {
		line(label, p.Sprintf("₹%.2f", v))
	}
	percent := func(label string, v float64) {
		line(label, fmt.Sprintf("%.1f%%", v))
	}

	b.WriteString(rule + "\n")
	b.WriteString("NOVASIGNALS GROWTH REPORT\n")
	b.WriteString(rule + "\n\n")
	line("Generated", snap.GeneratedAt.Format("January 2, 2006 at 3:04 PM"))
	line("Run ID", snap.RunID)
	b.WriteString("\n")

	section("TOTAL ADDRESSABLE MARKET (TAM)")
	count("Current Paying Users", snap.Combined.PayingUsers)
	count("+ Pure Leads (Not Converted)", snap.PremiumCampaign.PureLeads)
	count("= Total Addressable Market", snap.Revenue.TAM)
	b.WriteString("\n")

	section("SALES FUNNEL PERFORMANCE")
	count("Peak Attendance", snap.Funnel.Peak)
	count("Pitch Attendance", snap.Funnel.Pitch)
	percent("Show-up Rate", snap.Funnel.ShowUpRate)
	count("Total Sales", snap.Funnel.Sales)
	percent("Conversion Rate", snap.Funnel.ConversionRate)
	amount("Funnel Revenue", snap.Funnel.Revenue)
	b.WriteString("\n")

	section("MONTHLY RECURRING REVENUE")
	count("Total Subscriptions", snap.Monthly.Total)
	count("Active Subscriptions", snap.Monthly.Active)
	count("Cancelled Subscriptions", snap.Monthly.Cancelled)
	amount("Active MRR", snap.Monthly.MRR)
	amount("Annual Run Rate (ARR)", snap.Revenue.ARR)
	amount("Avg Subscription Value", snap.Monthly.AvgPayment)
	percent("Churn Rate", snap.Monthly.ChurnRate)
	percent("Retention Rate", snap.Monthly.RetentionRate)
	b.WriteString("\n")

	section("PREMIUM CAMPAIGN - UNIQUE MARKET")
	count("Total Leads", snap.PremiumCampaign.TotalLeads)
	count("Converted Customers", snap.PremiumCampaign.Customers)
	count("Pure Leads (Not Converted)", snap.PremiumCampaign.PureLeads)
	percent("Conversion Rate", snap.PremiumCampaign.ConversionRate)
	percent("Lead Quality", snap.PremiumCampaign.Quality)
	amount("Converted Revenue", snap.PremiumCampaign.Revenue)
	count("Unique Market", snap.PremiumCampaign.UniqueMarket)
	b.WriteString("\n")

	section("TEAM PERFORMANCE")
	count("Total Team Members", snap.TeamPerformance.TotalMembers)
	if snap.TeamPerformance.TotalMembers > 0 {
		line("Top Performer", snap.TeamPerformance.TopPerformer)
		b.WriteString("\nTOP PERFORMERS:\n")
		for i, m := range snap.TeamPerformance.Members {
			if i == 5 {
				break
			}
			p.Fprintf(&b, "  %-15s | Sales: %4d | Revenue: ₹%.0f | Conv: %.1f%%\n",
				m.Name, m.Sales, m.Revenue, m.ConversionRate)
		}
	} else {
		b.WriteString("  No team performance data available\n")
	}
	b.WriteString("\n")

	section("TEAM ENROLLMENT ATTRIBUTION")
	count("Mapped Enrollments", snap.TeamEnrollments.TotalMapped)
	count("Unmapped Enrollments", snap.TeamEnrollments.TotalUnmapped)
	percent("Mapping Coverage", snap.TeamEnrollments.MappingCoverage)
	if len(snap.TeamEnrollments.Members) > 0 {
		b.WriteString("\nTOP ENROLLMENT CONTRIBUTORS:\n")
		for i, m := range snap.TeamEnrollments.Members {
			if i == 10 {
				break
			}
			p.Fprintf(&b, "  %-15s | Enrollments: %4d | Revenue: ₹%.0f\n",
				m.Name, m.Count, m.Revenue)
		}
	} else {
		b.WriteString("  No enrollment attribution data available\n")
	}
	b.WriteString("\n")

	section("USER ACTIVITY & ENGAGEMENT")
	count("Active (7d)", snap.Activity.Active7d)
	count("Active (30d)", snap.Activity.Active30d)
	count("Dormant (90d+)", snap.Activity.Dormant)
	count("Churn Risk (30d+)", snap.Activity.ChurnRisk30d)
	percent("Engagement Rate", snap.Activity.EngagementRate)
	line("Most Recent Payment", formatDate(snap.Activity.MostRecentDate))
	b.WriteString("\n")

	section("REVENUE SUMMARY")
	amount("Total Revenue", snap.Combined.Revenue)
	amount("Revenue per Customer", snap.Revenue.RevenuePerCustomer)
	amount("ARR", snap.Revenue.ARR)
	amount("MRR", snap.Revenue.MRR)
	amount("Average LTV", snap.Revenue.AverageLTV)
	b.WriteString("\n" + rule + "\n")

	return b.String()
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Format("2006-01-02")
}
