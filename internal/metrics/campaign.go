package metrics

import (
	"time"

	"github.com/novasignals/growth-cli/internal/identity"
	"github.com/novasignals/growth-cli/internal/model"
)

// BuildCampaign reconciles the campaign-lead phone set against the
// lifetime-payment phone set.
//
// converted = leads ∩ paid, pureLeads = leads − paid: disjoint by
// construction, and together they equal the full lead phone set
// (UniqueMarket == UniquePhones always). Records with an absent phone
// never participate in either set.
func BuildCampaign(leads []model.CampaignLead, lifetime []model.LifetimeEnrollment) model.CampaignMetrics {
	leadPhones := make(map[identity.Phone]struct{})
	for _, l := range leads {
		if l.Phone.Present() {
			leadPhones[l.Phone] = struct{}{}
		}
	}

	paidPhones := make(map[identity.Phone]struct{})
	for _, e := range lifetime {
		if e.Phone.Present() {
			paidPhones[e.Phone] = struct{}{}
		}
	}

	converted := make(map[identity.Phone]struct{})
	pure := 0
	for p := range leadPhones {
		if _, ok := paidPhones[p]; ok {
			converted[p] = struct{}{}
		} else {
			pure++
		}
	}

	// Converted-customer revenue comes from the lifetime rows, so a person
	// with several purchases contributes every transaction.
	var (
		revenue    float64
		rows       int
		recentDate time.Time
	)
	for _, e := range lifetime {
		if _, ok := converted[e.Phone]; !ok {
			continue
		}
		revenue += e.Amount
		rows++
		if e.PaymentDate.After(recentDate) {
			recentDate = e.PaymentDate
		}
	}

	customers := len(converted)
	unique := len(leadPhones)

	return model.CampaignMetrics{
		TotalLeads:     len(leads),
		UniquePhones:   unique,
		Quality:        pct(float64(unique), float64(len(leads))),
		Customers:      customers,
		PureLeads:      pure,
		ConversionRate: pct(float64(customers), float64(unique)),
		Revenue:        revenue,
		AvgRevenue:     ratio(revenue, float64(rows)),
		Percentage:     pct(float64(customers), float64(len(lifetime))),
		RecentDate:     recentDate,
		UniqueMarket:   customers + pure,
	}
}
