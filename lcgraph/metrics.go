// File: metrics.go
// Role: Package-level prometheus instrumentation for the graph layer.

package lcgraph

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Layout label values.
const (
	layoutCSR         = "csr"
	layoutInline      = "inline"
	layoutLinear      = "linear"
	layoutDistributed = "distributed"
	layoutInOut       = "inout"
)

var (
	loadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "galois_lcgraph_loads_total",
		Help: "Completed local-computation-graph loads, by layout",
	}, []string{"layout"})

	writeIntents = promauto.NewCounter(prometheus.CounterOpts{
		Name: "galois_lcgraph_write_intents_total",
		Help: "Accesses performed under the WriteIntent policy",
	})
)
