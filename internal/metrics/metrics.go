// Package metrics declares the Prometheus collectors for the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Vote metrics
var (
	// VotesAppliedTotal tracks successfully applied vote operations
	VotesAppliedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "votes_applied_total",
			Help: "Total vote operations applied, by operation",
		},
		[]string{"operation"},
	)

	// VoteRejectionsTotal tracks votes rejected by the decision table or the
	// store-level precondition
	VoteRejectionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "vote_rejections_total",
			Help: "Total vote requests rejected as not allowed in current state",
		},
	)
)

// Asset metrics
var (
	// AssetOperationsTotal tracks image file operations by operation and status
	AssetOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "asset_operations_total",
			Help: "Total image file operations by operation (save/remove) and status",
		},
		[]string{"operation", "status"},
	)

	// OrphanedAssetsTotal tracks stored files left behind after a failed
	// record mutation (logged, never fatal)
	OrphanedAssetsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "orphaned_assets_total",
			Help: "Total image files orphaned by failed record mutations",
		},
	)
)

// Sauce metrics
var (
	// SauceOperationsTotal tracks sauce CRUD operations
	SauceOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sauce_operations_total",
			Help: "Total sauce operations by operation (create/update/delete)",
		},
		[]string{"operation"},
	)
)
