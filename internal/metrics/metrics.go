// Package metrics exports the outcome of a check run in the Prometheus text
// format, for the node_exporter textfile collector.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/thoreinstein/sysdoc/internal/doctor"
	"github.com/thoreinstein/sysdoc/internal/errors"
	"github.com/thoreinstein/sysdoc/internal/result"
)

// Exporter holds the gauges of a single run in a private registry.
type Exporter struct {
	reg *prometheus.Registry

	checkIssue      *prometheus.GaugeVec
	checkPriority   *prometheus.GaugeVec
	overallIssue    prometheus.Gauge
	overallPriority prometheus.Gauge
	runStats        *prometheus.GaugeVec
	duration        prometheus.Gauge
	lastRun         prometheus.Gauge
}

// New creates an Exporter with its own registry.
func New() *Exporter {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Exporter{
		reg: reg,
		checkIssue: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "sysdoc_check_issue",
				Help: "Issue state of each check (0=NO, 1=MAYBE, 2=YES); the worst wins when a check repeats",
			},
			[]string{"check", "data"},
		),
		checkPriority: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "sysdoc_check_priority",
				Help: "Priority of each check (0=DEBUG through 6=EMERGENCY); the highest wins when a check repeats",
			},
			[]string{"check", "data"},
		),
		overallIssue: factory.NewGauge(prometheus.GaugeOpts{
			Name: "sysdoc_overall_issue",
			Help: "Aggregated issue state of the run (0=NO, 1=MAYBE, 2=YES)",
		}),
		overallPriority: factory.NewGauge(prometheus.GaugeOpts{
			Name: "sysdoc_overall_priority",
			Help: "Aggregated priority of the run",
		}),
		runStats: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "sysdoc_run_events",
				Help: "Counts of pairs, results, evaluations and failures in the run",
			},
			[]string{"event"},
		),
		duration: factory.NewGauge(prometheus.GaugeOpts{
			Name: "sysdoc_run_duration_seconds",
			Help: "Wall time of the check run",
		}),
		lastRun: factory.NewGauge(prometheus.GaugeOpts{
			Name: "sysdoc_last_run_timestamp_seconds",
			Help: "Unix time the check run finished",
		}),
	}
}

// Record sets the gauges from a finished run. Outcomes sharing a check and
// data name collapse into one series holding the worst value.
func (e *Exporter) Record(root *result.Result, outcomes []doctor.Outcome, stats doctor.Stats, elapsed time.Duration) {
	type key struct{ check, data string }
	worst := make(map[key]*result.Result, len(outcomes))
	var order []key
	for _, o := range outcomes {
		if o.Result == nil {
			continue
		}
		k := key{o.Check, o.Data}
		w, ok := worst[k]
		if !ok {
			worst[k] = result.New("", "", o.Result.Priority, o.Result.Issue)
			order = append(order, k)
			continue
		}
		w.Issue = max(w.Issue, o.Result.Issue)
		w.Priority = max(w.Priority, o.Result.Priority)
	}
	for _, k := range order {
		e.checkIssue.WithLabelValues(k.check, k.data).Set(float64(worst[k].Issue))
		e.checkPriority.WithLabelValues(k.check, k.data).Set(float64(worst[k].Priority))
	}

	if root != nil {
		e.overallIssue.Set(float64(root.Issue))
		e.overallPriority.Set(float64(root.Priority))
	}

	e.runStats.WithLabelValues("pairs").Set(float64(stats.Pairs))
	e.runStats.WithLabelValues("results").Set(float64(stats.Results))
	e.runStats.WithLabelValues("evaluations").Set(float64(stats.Evaluations))
	e.runStats.WithLabelValues("evaluation_failures").Set(float64(stats.EvaluationFailures))
	e.runStats.WithLabelValues("disabled").Set(float64(stats.Disabled))
	e.runStats.WithLabelValues("check_errors").Set(float64(stats.CheckErrors))
	e.runStats.WithLabelValues("serialization_failures").Set(float64(stats.SerializationFailures))

	e.duration.Set(elapsed.Seconds())
	e.lastRun.SetToCurrentTime()
}

// Gatherer exposes the registry.
func (e *Exporter) Gatherer() prometheus.Gatherer {
	return e.reg
}

// WriteTextfile writes the gauges to path, replacing it atomically.
func (e *Exporter) WriteTextfile(path string) error {
	return errors.Wrapf(prometheus.WriteToTextfile(path, e.reg), "writing metrics to %s", path)
}
