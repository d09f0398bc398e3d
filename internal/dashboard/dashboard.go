// Package dashboard renders a metrics snapshot as a self-contained HTML
// page with Plotly charts (Plotly itself loads from its CDN).
package dashboard

import (
	"bytes"
	"encoding/json"
	"html/template"

	"github.com/rotisserie/eris"

	"github.com/novasignals/growth-cli/internal/model"
)

// view is the template payload: the snapshot plus pre-marshalled chart data.
type view struct {
	Snap *model.Snapshot

	FunnelChart template.JS
	TrendChart  template.JS
	TeamChart   template.JS
}

// Render produces the dashboard HTML for a snapshot.
func Render(snap *model.Snapshot) ([]byte, error) {
	if snap == nil {
		return nil, eris.New("dashboard: nil snapshot")
	}

	v := view{Snap: snap}

	var err error
	if v.FunnelChart, err = chartJSON(funnelChart(snap)); err != nil {
		return nil, err
	}
	if v.TrendChart, err = chartJSON(trendChart(snap)); err != nil {
		return nil, err
	}
	if v.TeamChart, err = chartJSON(teamChart(snap)); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := page.Execute(&buf, v); err != nil {
		return nil, eris.Wrap(err, "dashboard: execute template")
	}
	return buf.Bytes(), nil
}

func chartJSON(traces []map[string]any) (template.JS, error) {
	raw, err := json.Marshal(traces)
	if err != nil {
		return "", eris.Wrap(err, "dashboard: marshal chart data")
	}
	return template.JS(raw), nil
}

// funnelChart shows the three-stage conversion sequence.
func funnelChart(snap *model.Snapshot) []map[string]any {
	return []map[string]any{{
		"type": "funnel",
		"y":    []string{"Peak Attendance", "Pitch Attendance", "Total Sales"},
		"x":    []int{snap.Funnel.Peak, snap.Funnel.Pitch, snap.Funnel.Sales},
	}}
}

// trendChart plots monthly revenue as a line and subscription counts as bars.
func trendChart(snap *model.Snapshot) []map[string]any {
	months := make([]string, 0, len(snap.Monthly.Trends))
	revenue := make([]float64, 0, len(snap.Monthly.Trends))
	counts := make([]int, 0, len(snap.Monthly.Trends))
	for _, b := range snap.Monthly.Trends {
		months = append(months, b.Month)
		revenue = append(revenue, b.Revenue)
		counts = append(counts, b.Count)
	}
	return []map[string]any{
		{
			"type": "scatter",
			"mode": "lines+markers",
			"name": "Revenue",
			"x":    months,
			"y":    revenue,
		},
		{
			"type":  "bar",
			"name":  "Subscription Count",
			"x":     months,
			"y":     counts,
			"yaxis": "y2",
		},
	}
}

// teamChart compares revenue across the top ten team members.
func teamChart(snap *model.Snapshot) []map[string]any {
	members := snap.TeamPerformance.Members
	if len(members) > 10 {
		members = members[:10]
	}
	names := make([]string, 0, len(members))
	revenue := make([]float64, 0, len(members))
	for _, m := range members {
		names = append(names, m.Name)
		revenue = append(revenue, m.Revenue)
	}
	return []map[string]any{{
		"type": "bar",
		"name": "Revenue",
		"x":    names,
		"y":    revenue,
	}}
}

var page = template.Must(template.New("dashboard").Parse(pageHTML))

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>NovaSignals Growth Dashboard</title>
<script src="https://cdn.plot.ly/plotly-2.27.0.min.js"></script>
<style>
body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; background: #f4f5fb; color: #333; padding: 20px; }
.container { max-width: 1400px; margin: 0 auto; background: white; border-radius: 12px; padding: 32px; box-shadow: 0 4px 20px rgba(0,0,0,0.08); }
h1 { color: #667eea; }
h2 { color: #667eea; margin: 36px 0 16px; border-bottom: 2px solid #e0e0e0; padding-bottom: 8px; }
.grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(260px, 1fr)); gap: 20px; }
.card { border: 1px solid #e0e0e0; border-radius: 10px; padding: 20px; }
.card .value { font-size: 2em; font-weight: 700; color: #667eea; margin: 8px 0; }
.card .label { color: #666; }
.tam { background: linear-gradient(135deg, #4facfe 0%, #00f2fe 100%); color: white; border-radius: 10px; padding: 24px; }
.tam .value { font-size: 2em; font-weight: 700; }
table { width: 100%; border-collapse: collapse; margin: 16px 0; }
th { background: #667eea; color: white; padding: 10px; text-align: left; }
td { padding: 8px 10px; border-bottom: 1px solid #e0e0e0; }
footer { margin-top: 40px; color: #666; text-align: center; }
</style>
</head>
<body>
<div class="container">
<h1>NovaSignals Growth Dashboard</h1>
<p>Generated {{.Snap.GeneratedAt.Format "January 2, 2006 at 3:04 PM"}} · run {{.Snap.RunID}}</p>

<h2>Total Addressable Market</h2>
<div class="grid">
  <div class="tam"><div class="label">Current Paying Users</div><div class="value">{{.Snap.Combined.PayingUsers}}</div></div>
  <div class="tam"><div class="label">+ Pure Leads (Not Converted)</div><div class="value">{{.Snap.PremiumCampaign.PureLeads}}</div></div>
  <div class="tam"><div class="label">= Total Addressable Market</div><div class="value">{{.Snap.Revenue.TAM}}</div></div>
</div>

<h2>Sales Funnel</h2>
<div class="grid">
  <div class="card"><div class="label">Peak Attendance</div><div class="value">{{.Snap.Funnel.Peak}}</div></div>
  <div class="card"><div class="label">Show-up Rate</div><div class="value">{{printf "%.1f%%" .Snap.Funnel.ShowUpRate}}</div></div>
  <div class="card"><div class="label">Conversion Rate</div><div class="value">{{printf "%.1f%%" .Snap.Funnel.ConversionRate}}</div><div class="label">Sales: {{.Snap.Funnel.Sales}}</div></div>
</div>
<div id="funnel_chart"></div>

<h2>Monthly Recurring Revenue</h2>
<div class="grid">
  <div class="card"><div class="label">Active MRR</div><div class="value">₹{{printf "%.0f" .Snap.Monthly.MRR}}</div><div class="label">ARR: ₹{{printf "%.0f" .Snap.Revenue.ARR}}</div></div>
  <div class="card"><div class="label">Active Subscriptions</div><div class="value">{{.Snap.Monthly.Active}}</div><div class="label">of {{.Snap.Monthly.Total}} total</div></div>
  <div class="card"><div class="label">Churn Rate</div><div class="value">{{printf "%.1f%%" .Snap.Monthly.ChurnRate}}</div><div class="label">Retention: {{printf "%.1f%%" .Snap.Monthly.RetentionRate}}</div></div>
</div>
<div id="trend_chart"></div>

<h2>Premium Campaign</h2>
<div class="grid">
  <div class="card"><div class="label">Total Leads</div><div class="value">{{.Snap.PremiumCampaign.TotalLeads}}</div><div class="label">Quality: {{printf "%.1f%%" .Snap.PremiumCampaign.Quality}}</div></div>
  <div class="card"><div class="label">Converted Customers</div><div class="value">{{.Snap.PremiumCampaign.Customers}}</div><div class="label">Conversion: {{printf "%.1f%%" .Snap.PremiumCampaign.ConversionRate}}</div></div>
  <div class="card"><div class="label">Pure Leads (Not Converted)</div><div class="value">{{.Snap.PremiumCampaign.PureLeads}}</div><div class="label">Unique market: {{.Snap.PremiumCampaign.UniqueMarket}}</div></div>
</div>

<h2>Team Performance</h2>
<div id="team_chart"></div>
{{if .Snap.TeamPerformance.Members}}
<table>
<thead><tr><th>Team Member</th><th>Total Sales</th><th>Revenue</th><th>Conversion Rate</th><th>Revenue/Sale</th></tr></thead>
<tbody>
{{range .Snap.TeamPerformance.Members}}
<tr><td>{{.Name}}</td><td>{{.Sales}}</td><td>₹{{printf "%.0f" .Revenue}}</td><td>{{printf "%.1f%%" .ConversionRate}}</td><td>₹{{printf "%.0f" .RevenuePerSale}}</td></tr>
{{end}}
</tbody>
</table>
{{else}}<p>No team performance data available</p>{{end}}

<h2>Team Enrollment Attribution</h2>
<p>Mapped {{.Snap.TeamEnrollments.TotalMapped}} of {{.Snap.AllTime.Count}} enrollments ({{printf "%.1f%%" .Snap.TeamEnrollments.MappingCoverage}} coverage)</p>
{{if .Snap.TeamEnrollments.Members}}
<table>
<thead><tr><th>Team Member</th><th>Enrollments</th><th>Total Revenue</th><th>Avg Revenue</th></tr></thead>
<tbody>
{{range .Snap.TeamEnrollments.Members}}
<tr><td>{{.Name}}</td><td>{{.Count}}</td><td>₹{{printf "%.0f" .Revenue}}</td><td>₹{{printf "%.0f" .AvgRevenue}}</td></tr>
{{end}}
</tbody>
</table>
{{else}}<p>No enrollment attribution data available</p>{{end}}

<h2>User Activity</h2>
<div class="grid">
  <div class="card"><div class="label">Active (30d)</div><div class="value">{{.Snap.Activity.Active30d}}</div><div class="label">Engagement: {{printf "%.1f%%" .Snap.Activity.EngagementRate}}</div></div>
  <div class="card"><div class="label">Dormant (90d+)</div><div class="value">{{.Snap.Activity.Dormant}}</div><div class="label">Churn risk (30d+): {{.Snap.Activity.ChurnRisk30d}}</div></div>
  <div class="card"><div class="label">Revenue per Customer</div><div class="value">₹{{printf "%.0f" .Snap.Revenue.RevenuePerCustomer}}</div><div class="label">Combined: ₹{{printf "%.0f" .Snap.Combined.Revenue}}</div></div>
</div>

<footer>NovaSignals Growth Analytics</footer>
</div>
<script>
Plotly.newPlot('funnel_chart', {{.FunnelChart}}, {title: 'Sales Funnel Analysis', height: 400});
Plotly.newPlot('trend_chart', {{.TrendChart}}, {title: 'Monthly Recurring Revenue Trend', height: 400, yaxis2: {overlaying: 'y', side: 'right'}});
Plotly.newPlot('team_chart', {{.TeamChart}}, {title: 'Revenue by Team Member', height: 400});
</script>
</body>
</html>
`
