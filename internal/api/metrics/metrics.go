// Package metrics defines and registers all custom Prometheus metrics for
// the reservation admin service. It is the single source of truth for metric
// names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hoteladmin"

// ReservationsSubmittedTotal counts reservation submissions that the gateway
// accepted.
// Label:
//   - operation: "create" or "update"
var ReservationsSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reservations_submitted_total",
		Help:      "Total number of reservation submissions accepted by the gateway.",
	},
	[]string{"operation"},
)

// ReservationsDeletedTotal counts confirmed deletes that the gateway accepted.
var ReservationsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reservations_deleted_total",
		Help:      "Total number of reservations deleted after confirmation.",
	},
)

// GatewayErrorsTotal counts failed gateway calls by error kind.
// Label:
//   - kind: "transport", "validation" or "unexpected"
var GatewayErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gateway_errors_total",
		Help:      "Total number of failed gateway calls, by error kind.",
	},
	[]string{"kind"},
)

// DocumentsGeneratedTotal counts rendered PDF downloads.
// Label:
//   - kind: "voucher" (single reservation) or "report" (full list)
var DocumentsGeneratedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "documents_generated_total",
		Help:      "Total number of PDF documents generated, by kind.",
	},
	[]string{"kind"},
)

// TypeaheadLookupsTotal counts typeahead inputs.
// Label:
//   - result: "issued" (lookup sent to the gateway) or "gated" (below the
//     length threshold, cleared locally)
var TypeaheadLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "typeahead_lookups_total",
		Help:      "Total number of typeahead inputs, by whether a lookup was issued.",
	},
	[]string{"result"},
)
