// File: metrics.go
// Role: Package-level prometheus instrumentation for the ownership layer.

package nhood

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager label values.
const (
	managerPtr = "ptr"
	managerMap = "map"
)

var (
	recordsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "galois_nhood_records_created_total",
		Help: "Ownership records created, by manager variant",
	}, []string{"manager"})

	claimConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "galois_nhood_claim_conflicts_total",
		Help: "Failed claim attempts (contention, resolved by the scheduler)",
	})

	managerResets = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "galois_nhood_manager_resets_total",
		Help: "Phase-boundary manager resets, by manager variant",
	}, []string{"manager"})
)
