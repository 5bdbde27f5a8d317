// Package metrics defines and registers all custom Prometheus metrics for the
// label service. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default Prometheus registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "labels"

// ── Label metrics ─────────────────────────────────────────────────────────────

// LabelsGeneratedTotal counts label documents built successfully.
// Labels:
//   - courier: courier key (e.g. "royal-mail")
//   - layout: layout key (e.g. "royal-mail-tracked24")
var LabelsGeneratedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "generated_total",
		Help:      "Total number of labels generated, by courier and layout.",
	},
	[]string{"courier", "layout"},
)

// LabelsRenderFailuresTotal counts barcodes that could not be drawn during export.
// Label:
//   - symbology: "datamatrix", "code128" or "qr"
var LabelsRenderFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "render_failures_total",
		Help:      "Total number of barcode render failures during export.",
	},
	[]string{"symbology"},
)

// LabelsExportedBytes observes the size of exported artifacts.
// Label:
//   - format: "png" or "pdf"
var LabelsExportedBytes = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "exported_bytes",
		Help:      "Size of exported label files in bytes.",
		Buckets:   prometheus.ExponentialBuckets(4096, 2, 10), // 4 KiB … 2 MiB
	},
	[]string{"format"},
)

// LabelsBatchSize observes the number of jobs per batch request.
var LabelsBatchSize = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "batch_size",
		Help:      "Number of labels requested per batch.",
		Buckets:   []float64{1, 5, 10, 25, 50, 100},
	},
)

// ── Template metrics ──────────────────────────────────────────────────────────

// TemplatesOperationsTotal counts template store operations.
// Labels:
//   - op: "save", "load", "delete", "list" or "apply"
//   - result: "ok", "not_found" or "error"
var TemplatesOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "templates",
		Name:      "operations_total",
		Help:      "Total number of template operations, by operation and result.",
	},
	[]string{"op", "result"},
)
