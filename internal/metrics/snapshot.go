package metrics

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/novasignals/growth-cli/internal/model"
)

// Options configures a snapshot build.
type Options struct {
	// PodcastUnitPrice is the fixed monthly price per active podcast
	// subscriber.
	PodcastUnitPrice float64
	// Now anchors the recency classification. Zero means time.Now().
	Now time.Time
}

// BuildSnapshot runs the full pipeline over a static source snapshot and
// assembles the immutable result.
//
// The per-channel aggregations, campaign reconciliation, attribution, and
// activity classification share no state, so they fan out on an errgroup;
// the TAM join runs once all of them complete. Correctness does not depend
// on the concurrency.
func BuildSnapshot(ctx context.Context, src *model.Sources, opts Options) (*model.Snapshot, error) {
	if src == nil {
		return nil, eris.New("metrics: nil sources")
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	snap := &model.Snapshot{
		RunID:       uuid.NewString(),
		GeneratedAt: now,
	}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		snap.AllTime = BuildAllTime(src.Lifetime)
		return nil
	})
	g.Go(func() error {
		snap.Monthly = BuildMonthly(src.Monthly)
		return nil
	})
	g.Go(func() error {
		snap.Podcast = BuildPodcast(src.Podcast, opts.PodcastUnitPrice)
		return nil
	})
	g.Go(func() error {
		snap.Funnel = BuildFunnel(src.Funnel)
		return nil
	})
	g.Go(func() error {
		snap.PremiumCampaign = BuildCampaign(src.Campaign, src.Lifetime)
		return nil
	})
	g.Go(func() error {
		snap.TeamEnrollments = BuildAttribution(src.Funnel, src.Lifetime)
		return nil
	})
	g.Go(func() error {
		snap.TeamPerformance = BuildTeamPerformance(src.Funnel)
		return nil
	})
	g.Go(func() error {
		snap.Activity = BuildActivity(src.Lifetime, now)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, eris.Wrap(err, "metrics: build stages")
	}
	if err := ctx.Err(); err != nil {
		return nil, eris.Wrap(err, "metrics: build snapshot")
	}

	snap.Combined, snap.Revenue = BuildTAM(snap.AllTime, snap.Monthly, snap.Podcast, snap.Funnel, snap.PremiumCampaign)

	zap.L().Info("metrics: snapshot built",
		zap.String("run_id", snap.RunID),
		zap.Int("paying_users", snap.Combined.PayingUsers),
		zap.Int("tam", snap.Revenue.TAM),
		zap.Int("converted_customers", snap.PremiumCampaign.Customers),
		zap.Int("pure_leads", snap.PremiumCampaign.PureLeads),
		zap.Float64("active_mrr", snap.Monthly.MRR),
	)

	return snap, nil
}
