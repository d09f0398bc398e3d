package model

import "time"

// Snapshot is the single immutable output of a metrics run. External
// renderers key into the JSON field names directly; renaming a field or
// changing its unit is a breaking change to that boundary.
type Snapshot struct {
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`

	AllTime         AllTimeMetrics     `json:"all_time"`
	Monthly         MonthlyMetrics     `json:"monthly"`
	Podcast         PodcastMetrics     `json:"podcast"`
	PremiumCampaign CampaignMetrics    `json:"premium_campaign"`
	Funnel          FunnelMetrics      `json:"funnel"`
	Combined        CombinedMetrics    `json:"combined"`
	Revenue         RevenueMetrics     `json:"revenue_metrics"`
	TeamEnrollments AttributionMetrics `json:"team_enrollments"`
	TeamPerformance TeamMetrics        `json:"team_performance"`
	Activity        ActivityMetrics    `json:"activity"`
}

// AllTimeMetrics aggregates the lifetime-enrollment channel.
type AllTimeMetrics struct {
	Count          int     `json:"count"`
	Revenue        float64 `json:"revenue"`
	AvgPayment     float64 `json:"avg_payment"`
	RevenuePerUser float64 `json:"revenue_per_user"`
}

// MonthlyMetrics aggregates the monthly-subscription channel.
type MonthlyMetrics struct {
	Total           int                `json:"total"`
	Active          int                `json:"active"`
	Cancelled       int                `json:"cancelled"`
	Revenue         float64            `json:"revenue"`
	AvgPayment      float64            `json:"avg_payment"`
	MRR             float64            `json:"mrr"` // sum of amounts on active rows
	RevenuePerUser  float64            `json:"revenue_per_user"`
	ChurnRate       float64            `json:"churn_rate"`     // percent
	RetentionRate   float64            `json:"retention_rate"` // percent
	RevenueByStatus map[string]float64 `json:"revenue_by_status"`
	Trends          []MonthBucket      `json:"trends"`
}

// MonthBucket is one calendar-month trend point for the monthly channel.
type MonthBucket struct {
	Month    string  `json:"month"` // YYYY-MM
	Revenue  float64 `json:"revenue"`
	Count    int     `json:"count"`
	AvgValue float64 `json:"avg_value"`
}

// PodcastMetrics aggregates the podcast-subscription channel.
type PodcastMetrics struct {
	Total     int     `json:"total"`
	Active    int     `json:"active"`
	Cancelled int     `json:"cancelled"`
	MRR       float64 `json:"mrr"`       // active count x fixed unit price
	Retention float64 `json:"retention"` // percent
}

// CampaignMetrics reconciles campaign leads against lifetime purchasers.
type CampaignMetrics struct {
	TotalLeads     int       `json:"total_leads"`
	UniquePhones   int       `json:"unique_phones"`
	Quality        float64   `json:"quality"` // percent, distinct/rows
	Customers      int       `json:"customers"`
	PureLeads      int       `json:"pure_leads"`
	ConversionRate float64   `json:"conversion_rate"` // percent
	Revenue        float64   `json:"revenue"`
	AvgRevenue     float64   `json:"avg_revenue"`
	Percentage     float64   `json:"percentage"`  // percent of all-time count
	RecentDate     time.Time `json:"recent_date"` // zero when no conversions
	UniqueMarket   int       `json:"unique_market"`
}

// FunnelMetrics aggregates the sales-funnel log.
type FunnelMetrics struct {
	Revenue          float64 `json:"revenue"`
	Sales            int     `json:"sales"`
	Peak             int     `json:"peak"`
	Pitch            int     `json:"pitch"`
	ConversionRate   float64 `json:"conversion_rate"` // percent
	ShowUpRate       float64 `json:"show_up_rate"`    // percent
	SalesPerAttendee float64 `json:"sales_per_attendee"`
}

// CombinedMetrics joins the revenue channels.
type CombinedMetrics struct {
	PayingUsers     int     `json:"paying_users"`
	Revenue         float64 `json:"revenue"`
	ActiveRecurring int     `json:"active_recurring"`
}

// RevenueMetrics holds derived revenue figures including the corrected TAM.
type RevenueMetrics struct {
	RevenuePerCustomer float64 `json:"revenue_per_customer"`
	RevenuePerAttendee float64 `json:"revenue_per_attendee"`
	ARR                float64 `json:"arr"`
	ARRPercentage      float64 `json:"arr_percentage"` // percent of combined revenue
	MRR                float64 `json:"mrr"`
	AverageLTV         float64 `json:"average_ltv"`
	TAM                int     `json:"total_addressable_market"`
}

// AttributionMetrics maps lifetime enrollments to the team members who
// sourced them.
type AttributionMetrics struct {
	TotalMapped     int                 `json:"total_mapped_enrollments"`
	TotalUnmapped   int                 `json:"total_unmapped_enrollments"`
	MappingCoverage float64             `json:"mapping_coverage"` // percent
	Members         []MemberEnrollments `json:"members"`
}

// MemberEnrollments is one team member's attributed-enrollment rollup.
type MemberEnrollments struct {
	Name       string  `json:"name"`
	Count      int     `json:"enrollment_count"`
	Revenue    float64 `json:"total_revenue"`
	AvgRevenue float64 `json:"avg_revenue"`
}

// TeamMetrics aggregates funnel performance per team member.
type TeamMetrics struct {
	Members      []MemberPerformance `json:"members"` // sorted by revenue desc
	TopPerformer string              `json:"top_performer"`
	TopRevenue   float64             `json:"top_revenue"`
	TopSales     int                 `json:"top_sales"`
	TotalMembers int                 `json:"total_team_members"`
}

// MemberPerformance is one team member's funnel rollup.
type MemberPerformance struct {
	Name           string  `json:"name"`
	Sales          int     `json:"total_sales"`
	Revenue        float64 `json:"revenue"`
	Peak           int     `json:"peak_attendance"`
	Pitch          int     `json:"pitch_attendance"`
	ConversionRate float64 `json:"conversion_rate"` // percent
	RevenuePerSale float64 `json:"revenue_per_sale"`
}

// ActivityMetrics buckets lifetime purchases by recency.
type ActivityMetrics struct {
	Active7d        int       `json:"active_7d"`
	Active30d       int       `json:"active_30d"`
	Active90d       int       `json:"active_90d"`
	Dormant         int       `json:"dormant"`
	ChurnRisk14d    int       `json:"churn_risk_14d"`
	ChurnRisk30d    int       `json:"churn_risk_30d"`
	AvgDaysInactive float64   `json:"avg_days_inactive"`
	EngagementRate  float64   `json:"engagement_rate"` // percent
	TotalUsers      int       `json:"total_users"`
	MostRecentDate  time.Time `json:"most_recent_date"` // zero when no dated rows
}
