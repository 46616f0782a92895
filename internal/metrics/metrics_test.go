package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistration(t *testing.T) {
	// Verify all metrics are registered without conflicts
	// This test ensures no duplicate metric names

	collectors := []prometheus.Collector{
		VotesAppliedTotal,
		VoteRejectionsTotal,
		AssetOperationsTotal,
		OrphanedAssetsTotal,
		SauceOperationsTotal,
	}

	for _, c := range collectors {
		assert.NotNil(t, c)
	}
}

func TestVoteCounterLabels(t *testing.T) {
	// Labeled children must be creatable for every operation we emit.
	for _, op := range []string{"add_like", "remove_like", "add_dislike", "remove_dislike"} {
		assert.NotPanics(t, func() {
			VotesAppliedTotal.WithLabelValues(op).Add(0)
		})
	}
}
