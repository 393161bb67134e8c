// Package metrics exposes the Prometheus instrumentation for the ledger.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Mutations counts store mutations by operation name.
	Mutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chitfund_store_mutations_total",
		Help: "Number of store mutations, labelled by operation.",
	}, []string{"op"})

	// SyncAttempts counts cloud sync attempts by direction and result.
	SyncAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chitfund_sync_attempts_total",
		Help: "Number of cloud sync attempts, labelled by direction (push/pull) and result (ok/error).",
	}, []string{"direction", "result"})

	// Dirty is 1 while local mutations have not been confirmed pushed to the
	// remote store.
	Dirty = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "chitfund_store_dirty",
		Help: "Whether the store holds mutations not yet pushed to the remote store.",
	})
)

// SetDirty records the dirty flag as a 0/1 gauge.
func SetDirty(dirty bool) {
	if dirty {
		Dirty.Set(1)
	} else {
		Dirty.Set(0)
	}
}
