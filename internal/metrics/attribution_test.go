package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novasignals/growth-cli/internal/identity"
	"github.com/novasignals/growth-cli/internal/model"
)

func TestBuildPhoneIndexFirstSeenWins(t *testing.T) {
	funnel := []model.FunnelRecord{
		{TeamMember: "asha", Phone: "911"},
		{TeamMember: "ravi", Phone: "911"}, // conflicting later assignment
		{TeamMember: "ravi", Phone: "912"},
		{TeamMember: "", Phone: "913"},    // unassigned: skipped
		{TeamMember: "meena", Phone: ""},  // absent phone: skipped
	}
	index := BuildPhoneIndex(funnel)
	assert.Equal(t, map[identity.Phone]string{"911": "asha", "912": "ravi"}, index)
}

func TestBuildAttribution(t *testing.T) {
	funnel := []model.FunnelRecord{
		{TeamMember: "asha", Phone: "911"},
		{TeamMember: "ravi", Phone: "912"},
	}
	lifetime := []model.LifetimeEnrollment{
		{Phone: "911", Amount: 30000},
		{Phone: "911", Amount: 10000},
		{Phone: "912", Amount: 25000},
		{Phone: "999", Amount: 5000}, // unknown phone
		{Phone: "", Amount: 5000},    // absent phone
	}

	m := BuildAttribution(funnel, lifetime)
	assert.Equal(t, 3, m.TotalMapped)
	assert.Equal(t, 2, m.TotalUnmapped)
	assert.InDelta(t, 60, m.MappingCoverage, 0.001)

	require.Len(t, m.Members, 2)
	// Sorted descending by revenue.
	assert.Equal(t, "asha", m.Members[0].Name)
	assert.Equal(t, 2, m.Members[0].Count)
	assert.InDelta(t, 40000, m.Members[0].Revenue, 0.001)
	assert.InDelta(t, 20000, m.Members[0].AvgRevenue, 0.001)
	assert.Equal(t, "ravi", m.Members[1].Name)
	assert.InDelta(t, 25000, m.Members[1].Revenue, 0.001)
}

func TestBuildAttributionRevenuePartition(t *testing.T) {
	// Property: per-member mapped revenue sums to total mapped revenue.
	funnel := []model.FunnelRecord{
		{TeamMember: "a", Phone: "1"},
		{TeamMember: "b", Phone: "2"},
		{TeamMember: "c", Phone: "3"},
	}
	lifetime := []model.LifetimeEnrollment{
		{Phone: "1", Amount: 100},
		{Phone: "2", Amount: 200},
		{Phone: "2", Amount: 300},
		{Phone: "3", Amount: 50},
		{Phone: "4", Amount: 999}, // unmapped, excluded from partition
	}

	m := BuildAttribution(funnel, lifetime)
	var sum float64
	for _, mem := range m.Members {
		sum += mem.Revenue
	}
	assert.InDelta(t, 650, sum, 0.001)
}

func TestBuildAttributionNoJoinData(t *testing.T) {
	// No assignment/phone data: zero mapped, 100% unmapped, no failure.
	lifetime := []model.LifetimeEnrollment{{Phone: "911", Amount: 100}}
	m := BuildAttribution(nil, lifetime)
	assert.Equal(t, 0, m.TotalMapped)
	assert.Equal(t, 1, m.TotalUnmapped)
	assert.Zero(t, m.MappingCoverage)
	assert.Empty(t, m.Members)
}

func TestBuildAttributionEmptyLifetime(t *testing.T) {
	m := BuildAttribution(nil, nil)
	assert.Zero(t, m.MappingCoverage, "0.0 when total is 0")
}

func TestBuildTeamPerformance(t *testing.T) {
	funnel := []model.FunnelRecord{
		{TeamMember: "asha", TotalSales: 3, Revenue: 45000, PeakAttendance: 100, PitchAttendance: 50},
		{TeamMember: "asha", TotalSales: 2, Revenue: 30000, PeakAttendance: 100, PitchAttendance: 60},
		{TeamMember: "ravi", TotalSales: 4, Revenue: 60000, PeakAttendance: 80, PitchAttendance: 40},
		{TeamMember: "", TotalSales: 9, Revenue: 99999, PeakAttendance: 10, PitchAttendance: 5},
	}

	m := BuildTeamPerformance(funnel)
	assert.Equal(t, 2, m.TotalMembers)
	require.Len(t, m.Members, 2)

	assert.Equal(t, "asha", m.Members[0].Name)
	assert.InDelta(t, 75000, m.Members[0].Revenue, 0.001)
	assert.Equal(t, 5, m.Members[0].Sales)
	assert.Equal(t, 200, m.Members[0].Peak)
	assert.InDelta(t, 2.5, m.Members[0].ConversionRate, 0.001)
	assert.InDelta(t, 15000, m.Members[0].RevenuePerSale, 0.001)

	assert.Equal(t, "asha", m.TopPerformer)
	assert.InDelta(t, 75000, m.TopRevenue, 0.001)
	assert.Equal(t, 5, m.TopSales)
}

func TestBuildTeamPerformanceZeroDenominators(t *testing.T) {
	funnel := []model.FunnelRecord{
		{TeamMember: "asha", TotalSales: 0, Revenue: 0, PeakAttendance: 0},
	}
	m := BuildTeamPerformance(funnel)
	require.Len(t, m.Members, 1)
	assert.Zero(t, m.Members[0].ConversionRate)
	assert.Zero(t, m.Members[0].RevenuePerSale)
}

func TestBuildTeamPerformanceEmpty(t *testing.T) {
	m := BuildTeamPerformance(nil)
	assert.Equal(t, 0, m.TotalMembers)
	assert.Empty(t, m.TopPerformer)
}
