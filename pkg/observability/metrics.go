package observability

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records pipeline events as Prometheus metrics. It implements both
// [PipelineHooks] and [OutputHooks] and keeps its own registry, so a run can
// dump its metrics to a node_exporter textfile without serving HTTP.
type Metrics struct {
	registry *prometheus.Registry

	StageDuration *prometheus.GaugeVec
	StageRuns     *prometheus.CounterVec
	StageFailures *prometheus.CounterVec
	Outputs       *prometheus.CounterVec
	LastRun       prometheus.Gauge
}

// NewMetrics creates metrics under namespace, for example "contribnet".
func NewMetrics(namespace string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		StageDuration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Duration of the last run of each pipeline stage.",
		}, []string{"stage"}),
		StageRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stage_runs_total",
			Help:      "Pipeline stages started.",
		}, []string{"stage"}),
		StageFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stage_failures_total",
			Help:      "Pipeline stages that returned an error.",
		}, []string{"stage"}),
		Outputs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outputs_written_total",
			Help:      "Result files written, by kind.",
		}, []string{"kind"}),
		LastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time at which the last stage completed.",
		}),
	}
	m.registry.MustRegister(m.StageDuration, m.StageRuns, m.StageFailures, m.Outputs, m.LastRun)
	return m
}

func (m *Metrics) OnStageStart(_ context.Context, _, stage string) {
	m.StageRuns.WithLabelValues(stage).Inc()
}

func (m *Metrics) OnStageComplete(_ context.Context, _, stage string, d time.Duration, err error) {
	m.StageDuration.WithLabelValues(stage).Set(d.Seconds())
	if err != nil {
		m.StageFailures.WithLabelValues(stage).Inc()
	}
	m.LastRun.SetToCurrentTime()
}

func (m *Metrics) OnOutputWritten(_ context.Context, _, kind, _ string) {
	m.Outputs.WithLabelValues(kind).Inc()
}

// Registry returns the registry holding m's collectors.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// WriteTextfile writes the current metrics to path in the Prometheus text
// format. The file is replaced atomically.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
