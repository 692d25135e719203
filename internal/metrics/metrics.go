package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ResultOK       = "ok"
	ResultRejected = "rejected"
	ResultError    = "error"
)

var (
	activeSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "wizard_sessions_active",
			Help: "Current number of open wizard sessions",
		},
	)

	// OperationsTotal 各 wizard 操作依結果計數
	OperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wizard_operations_total",
			Help: "Total wizard operations by outcome",
		},
		[]string{"operation", "result"},
	)

	submissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wizard_submissions_total",
			Help: "Draft saves and publishes handed to the submission gateway",
		},
		[]string{"kind", "result"},
	)

	listingIngest = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "listing_ingest_duration_seconds",
			Help:    "Time spent turning a publish request into a listing",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"result"},
	)
)

// SessionOpened / SessionClosed 追蹤目前 session 數
func SessionOpened() { activeSessions.Inc() }
func SessionClosed() { activeSessions.Dec() }

// TrackOperation 記錄一次 wizard 操作
func TrackOperation(operation, result string) {
	OperationsTotal.WithLabelValues(operation, result).Inc()
}

// TrackSubmission 記錄 save_draft / publish
func TrackSubmission(kind, result string) {
	submissions.WithLabelValues(kind, result).Inc()
}

// TrackIngest 記錄 listing 寫入耗時
func TrackIngest(result string, d time.Duration) {
	listingIngest.WithLabelValues(result).Observe(d.Seconds())
}

// Result 依 error 與是否生效決定 label
func Result(applied bool, err error) string {
	switch {
	case err != nil:
		return ResultError
	case !applied:
		return ResultRejected
	}
	return ResultOK
}
