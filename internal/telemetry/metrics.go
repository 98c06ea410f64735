package telemetry

import (
	"errors"
	"log/slog"
	"net/http"

	"algolab/internal/algorithms"
	"algolab/internal/benchmark"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder exports benchmark measurements as Prometheus metrics. It
// implements benchmark.Observer.
type Recorder struct {
	registry *prometheus.Registry

	KernelDuration *prometheus.HistogramVec
	RowsTotal      prometheus.Counter
	RunProgress    prometheus.Gauge
	RunsFailed     prometheus.Counter
	Estimated      prometheus.Counter
}

var _ benchmark.Observer = (*Recorder)(nil)

// NewRecorder creates the collectors on a private registry.
func NewRecorder() *Recorder {
	r := &Recorder{registry: prometheus.NewRegistry()}

	r.KernelDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "algolab_kernel_duration_ms",
			Help:    "Mean kernel execution time per benchmark row in milliseconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 12),
		},
		[]string{"kernel"},
	)

	r.RowsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "algolab_rows_total",
			Help: "Total number of benchmark rows completed",
		},
	)

	r.RunProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "algolab_run_progress_percent",
			Help: "Completion percentage of the current benchmark run",
		},
	)

	r.RunsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "algolab_runs_failed_total",
			Help: "Total number of benchmark runs aborted by an error",
		},
	)

	r.Estimated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "algolab_recursive_estimates_total",
			Help: "Rows whose recursive timing was extrapolated",
		},
	)

	r.registry.MustRegister(
		r.KernelDuration,
		r.RowsTotal,
		r.RunProgress,
		r.RunsFailed,
		r.Estimated,
	)
	return r
}

func (r *Recorder) ObserveKernel(kind algorithms.Kind, dataSize int, ms float64) {
	r.KernelDuration.WithLabelValues(kind.String()).Observe(ms)
}

func (r *Recorder) RowCompleted(row benchmark.ResultRow, percent float64) {
	r.RowsTotal.Inc()
	r.RunProgress.Set(percent)
	if row.RecursiveEstimated {
		r.Estimated.Inc()
	}
}

func (r *Recorder) RunFailed(err error) {
	r.RunsFailed.Inc()
	r.RunProgress.Set(0)
}

// Handler serves the recorder's registry.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// StartMetricsServer serves /metrics on addr in the background. The
// returned server can be shut down by the caller.
func StartMetricsServer(addr string, r *Recorder) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", r.Handler())

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		slog.Info("Starting metrics server", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Metrics server stopped", "error", err)
		}
	}()
	return srv
}
