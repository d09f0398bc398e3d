package metrics

import (
	"sort"

	"go.uber.org/zap"

	"github.com/novasignals/growth-cli/internal/identity"
	"github.com/novasignals/growth-cli/internal/model"
)

// BuildPhoneIndex builds the phone-to-team-member mapping from funnel
// records that carry both a non-absent assignment and a non-absent phone.
//
// Tie-break policy: when multiple funnel records share a phone, the first
// one in load order wins and later conflicting assignments are dropped
// silently. This mirrors the funnel log's first-touch attribution and is
// not an error condition.
func BuildPhoneIndex(funnel []model.FunnelRecord) map[identity.Phone]string {
	index := make(map[identity.Phone]string)
	dropped := 0
	for _, r := range funnel {
		if r.TeamMember == "" || !r.Phone.Present() {
			continue
		}
		if _, seen := index[r.Phone]; seen {
			dropped++
			continue
		}
		index[r.Phone] = r.TeamMember
	}
	if dropped > 0 {
		zap.L().Debug("attribution: conflicting phone assignments dropped",
			zap.Int("dropped", dropped),
			zap.Int("mapped_phones", len(index)),
		)
	}
	return index
}

// BuildAttribution maps every lifetime enrollment to the team member who
// sourced it, via the funnel phone index. Enrollments whose phone is absent
// or unknown to the index count as unmapped.
func BuildAttribution(funnel []model.FunnelRecord, lifetime []model.LifetimeEnrollment) model.AttributionMetrics {
	index := BuildPhoneIndex(funnel)

	type rollup struct {
		count   int
		revenue float64
	}
	perMember := make(map[string]*rollup)

	mapped := 0
	for _, e := range lifetime {
		member, ok := "", false
		if e.Phone.Present() {
			member, ok = index[e.Phone]
		}
		if !ok {
			continue
		}
		mapped++
		r := perMember[member]
		if r == nil {
			r = &rollup{}
			perMember[member] = r
		}
		r.count++
		r.revenue += e.Amount
	}

	members := make([]model.MemberEnrollments, 0, len(perMember))
	for name, r := range perMember {
		members = append(members, model.MemberEnrollments{
			Name:       name,
			Count:      r.count,
			Revenue:    r.revenue,
			AvgRevenue: ratio(r.revenue, float64(r.count)),
		})
	}
	sort.Slice(members, func(i, j int) bool {
		if members[i].Revenue != members[j].Revenue {
			return members[i].Revenue > members[j].Revenue
		}
		return members[i].Name < members[j].Name
	})

	total := len(lifetime)
	return model.AttributionMetrics{
		TotalMapped:     mapped,
		TotalUnmapped:   total - mapped,
		MappingCoverage: pct(float64(mapped), float64(total)),
		Members:         members,
	}
}

// BuildTeamPerformance aggregates funnel outcomes per assigned team member.
// This is distinct from enrollment attribution: it reads sales, revenue,
// and attendance straight off the funnel log, grouped by assignee.
func BuildTeamPerformance(funnel []model.FunnelRecord) model.TeamMetrics {
	type rollup struct {
		sales   int
		revenue float64
		peak    int
		pitch   int
	}
	perMember := make(map[string]*rollup)

	for _, r := range funnel {
		if r.TeamMember == "" {
			continue
		}
		m := perMember[r.TeamMember]
		if m == nil {
			m = &rollup{}
			perMember[r.TeamMember] = m
		}
		m.sales += r.TotalSales
		m.revenue += r.Revenue
		m.peak += r.PeakAttendance
		m.pitch += r.PitchAttendance
	}

	members := make([]model.MemberPerformance, 0, len(perMember))
	for name, m := range perMember {
		members = append(members, model.MemberPerformance{
			Name:           name,
			Sales:          m.sales,
			Revenue:        m.revenue,
			Peak:           m.peak,
			Pitch:          m.pitch,
			ConversionRate: pct(float64(m.sales), float64(m.peak)),
			RevenuePerSale: ratio(m.revenue, float64(m.sales)),
		})
	}
	sort.Slice(members, func(i, j int) bool {
		if members[i].Revenue != members[j].Revenue {
			return members[i].Revenue > members[j].Revenue
		}
		return members[i].Name < members[j].Name
	})

	tm := model.TeamMetrics{
		Members:      members,
		TotalMembers: len(members),
	}
	if len(members) > 0 {
		tm.TopPerformer = members[0].Name
		tm.TopRevenue = members[0].Revenue
		tm.TopSales = members[0].Sales
	}
	return tm
}
