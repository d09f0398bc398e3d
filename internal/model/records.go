// Package model defines the typed source records consumed by the metrics
// engine and the snapshot hierarchy it produces.
package model

import (
	"time"

	"github.com/novasignals/growth-cli/internal/identity"
)

// SubscriptionStatus is the recorded state of a recurring subscription.
type SubscriptionStatus string

const (
	StatusActive    SubscriptionStatus = "active"
	StatusCancelled SubscriptionStatus = "cancelled"
)

// LifetimeEnrollment is one lifetime/2yr plan purchase transaction.
// The same phone may appear on multiple purchases.
type LifetimeEnrollment struct {
	Phone       identity.Phone `json:"phone"`
	Amount      float64        `json:"amount"`
	PaymentDate time.Time      `json:"payment_date"` // zero when unparseable
}

// MonthlySubscription is one monthly subscription payment record.
type MonthlySubscription struct {
	Phone  identity.Phone     `json:"phone"`
	Amount float64            `json:"amount"`
	Status SubscriptionStatus `json:"status"`
	Date   time.Time          `json:"date"` // zero when unparseable
}

// PodcastSubscriber is one podcast subscription record. Revenue per active
// subscriber is a fixed unit price, not a recorded amount.
type PodcastSubscriber struct {
	Phone            identity.Phone     `json:"phone"`
	SubscriptionDate time.Time          `json:"subscription_date"`
	Status           SubscriptionStatus `json:"status"`
}

// CampaignLead is one marketing-campaign lead row. Leads represent outreach,
// not revenue.
type CampaignLead struct {
	Phone identity.Phone `json:"phone"`
}

// FunnelRecord is one sales-funnel event/day from the funnel log.
type FunnelRecord struct {
	Date            time.Time      `json:"date"`
	TeamMember      string         `json:"team_member"` // empty when unassigned
	Phone           identity.Phone `json:"phone"`
	TotalSales      int            `json:"total_sales"`
	Revenue         float64        `json:"revenue"`
	PeakAttendance  int            `json:"peak_attendance"`
	PitchAttendance int            `json:"pitch_attendance"`
}

// Sources is the full static snapshot of input records, already parsed.
// Nothing mutates it after load.
type Sources struct {
	Funnel   []FunnelRecord
	Lifetime []LifetimeEnrollment
	Monthly  []MonthlySubscription
	Podcast  []PodcastSubscriber
	Campaign []CampaignLead
}
