package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/novasignals/growth-cli/internal/model"
)

func TestBuildActivity(t *testing.T) {
	now := day(2024, 6, 1)
	recs := []model.LifetimeEnrollment{
		{Amount: 1, PaymentDate: now.AddDate(0, 0, -3)},   // 3 days
		{Amount: 1, PaymentDate: now.AddDate(0, 0, -7)},   // 7 days: <=7 inclusive
		{Amount: 1, PaymentDate: now.AddDate(0, 0, -20)},  // 20 days
		{Amount: 1, PaymentDate: now.AddDate(0, 0, -90)},  // 90 days: <=90 inclusive
		{Amount: 1, PaymentDate: now.AddDate(0, 0, -200)}, // dormant
	}
	m := BuildActivity(recs, now)

	assert.Equal(t, 2, m.Active7d)
	assert.Equal(t, 3, m.Active30d)
	assert.Equal(t, 4, m.Active90d)
	assert.Equal(t, 1, m.Dormant)
	assert.Equal(t, 3, m.ChurnRisk14d) // 20, 90, 200
	assert.Equal(t, 2, m.ChurnRisk30d) // 90, 200
	assert.Equal(t, 5, m.TotalUsers)
	assert.InDelta(t, (3+7+20+90+200)/5.0, m.AvgDaysInactive, 0.001)
	assert.InDelta(t, 60, m.EngagementRate, 0.001)
	assert.Equal(t, now.AddDate(0, 0, -3), m.MostRecentDate)
}

func TestBuildActivityBoundaries(t *testing.T) {
	// Lower bound inclusive, upper bound exclusive: exactly 7/30/90 days
	// belong to the active buckets; one day more does not.
	now := day(2024, 6, 1)
	at := func(days int) []model.LifetimeEnrollment {
		return []model.LifetimeEnrollment{{PaymentDate: now.AddDate(0, 0, -days)}}
	}

	assert.Equal(t, 1, BuildActivity(at(7), now).Active7d)
	assert.Equal(t, 0, BuildActivity(at(8), now).Active7d)
	assert.Equal(t, 1, BuildActivity(at(30), now).Active30d)
	assert.Equal(t, 0, BuildActivity(at(31), now).Active30d)
	assert.Equal(t, 1, BuildActivity(at(90), now).Active90d)
	assert.Equal(t, 0, BuildActivity(at(90), now).Dormant)
	assert.Equal(t, 1, BuildActivity(at(91), now).Dormant)
	assert.Equal(t, 0, BuildActivity(at(14), now).ChurnRisk14d)
	assert.Equal(t, 1, BuildActivity(at(15), now).ChurnRisk14d)
}

func TestBuildActivityExcludesUndatedRows(t *testing.T) {
	now := day(2024, 6, 1)
	recs := []model.LifetimeEnrollment{
		{PaymentDate: now.AddDate(0, 0, -5)},
		{}, // missing date: no bucket, not dormant, excluded from mean
	}
	m := BuildActivity(recs, now)
	assert.Equal(t, 2, m.TotalUsers)
	assert.Equal(t, 1, m.Active7d)
	assert.Equal(t, 0, m.Dormant)
	assert.InDelta(t, 5, m.AvgDaysInactive, 0.001)
	assert.InDelta(t, 50, m.EngagementRate, 0.001)
}

func TestBuildActivityEmpty(t *testing.T) {
	m := BuildActivity(nil, time.Now())
	assert.Zero(t, m.TotalUsers)
	assert.Zero(t, m.EngagementRate)
	assert.Zero(t, m.AvgDaysInactive)
	assert.True(t, m.MostRecentDate.IsZero())
}
