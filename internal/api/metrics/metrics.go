// Package metrics defines and registers all custom Prometheus metrics for the
// Selva Nails API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at init time;
// the router exposes them on GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "selva"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts successfully registered accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered.",
	},
)

// CatalogWritesTotal counts mutations across the resource collections.
// Labels:
//   - resource: "product", "service", "blog", "testimonial"
//   - op: "create", "update", "delete"
var CatalogWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_writes_total",
		Help:      "Total number of catalog mutations, by resource and operation.",
	},
	[]string{"resource", "op"},
)

// CartOpsTotal counts cart mutations.
// Label:
//   - op: "add" or "remove"
var CartOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cart_ops_total",
		Help:      "Total number of cart operations, by operation.",
	},
	[]string{"op"},
)

// PostViewsTotal counts blog post detail reads (each read increments the
// stored view counter by one).
var PostViewsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "post_views_total",
		Help:      "Total number of blog post views recorded.",
	},
)

// TestimonialApprovalsTotal counts approval transitions.
var TestimonialApprovalsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "testimonial_approvals_total",
		Help:      "Total number of testimonials approved.",
	},
)

// PushDeliveriesTotal counts push delivery attempts made by the dispatcher
// workers.
// Label:
//   - result: "delivered" or "failed"
var PushDeliveriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "push_deliveries_total",
		Help:      "Total number of push notification deliveries, by result.",
	},
	[]string{"result"},
)
