package metrics

import (
	"time"

	"github.com/novasignals/growth-cli/internal/model"
)

// BuildActivity buckets lifetime enrollments by days since purchase,
// relative to now. Bucket bounds are inclusive on the lower side and
// exclusive on the upper (<=7, <=30, <=90, >90).
//
// Records with a zero payment date are excluded from every bucket and from
// the mean-days computation, not counted as dormant; they still count
// toward TotalUsers.
func BuildActivity(recs []model.LifetimeEnrollment, now time.Time) model.ActivityMetrics {
	m := model.ActivityMetrics{TotalUsers: len(recs)}

	var (
		daysSum float64
		dated   int
	)
	for _, r := range recs {
		if r.PaymentDate.IsZero() {
			continue
		}
		days := int(now.Sub(r.PaymentDate).Hours() / 24)
		dated++
		daysSum += float64(days)

		if r.PaymentDate.After(m.MostRecentDate) {
			m.MostRecentDate = r.PaymentDate
		}

		if days <= 7 {
			m.Active7d++
		}
		if days <= 30 {
			m.Active30d++
		}
		if days <= 90 {
			m.Active90d++
		} else {
			m.Dormant++
		}
		if days > 14 {
			m.ChurnRisk14d++
		}
		if days > 30 {
			m.ChurnRisk30d++
		}
	}

	m.AvgDaysInactive = ratio(daysSum, float64(dated))
	m.EngagementRate = pct(float64(m.Active30d), float64(m.TotalUsers))
	return m
}
