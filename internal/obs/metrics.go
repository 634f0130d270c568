package obs

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ReportMetrics groups Prometheus collectors describing report runs.
type ReportMetrics struct {
	Runs             *prometheus.CounterVec
	Customers        prometheus.Counter
	OrphanCustomers  prometheus.Counter
	RecordsLoaded    *prometheus.GaugeVec
	DurationMillisec prometheus.Histogram
}

// NewReportMetrics registers and returns report collectors on reg, falling
// back to the default registerer.
func NewReportMetrics(namespace string, reg prometheus.Registerer) *ReportMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &ReportMetrics{
		Runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "report_runs_total",
			Help:      "Count of report runs by outcome.",
		}, []string{"result"}),
		Customers: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "report_customers_total",
			Help:      "Number of customer statements rendered.",
		}),
		OrphanCustomers: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "report_orphan_customers_total",
			Help:      "Aggregated customer ids without a customer record.",
		}),
		RecordsLoaded: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "report_records_loaded",
			Help:      "Records loaded in the last run by collection.",
		}, []string{"collection"}),
		DurationMillisec: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "report_duration_ms",
			Help:      "Report generation latency in milliseconds.",
			Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
		}),
	}

	mustRegisterCollector(reg, m.Runs, func(existing prometheus.Collector) {
		if v, ok := existing.(*prometheus.CounterVec); ok {
			m.Runs = v
		}
	})
	mustRegisterCollector(reg, m.Customers, func(existing prometheus.Collector) {
		if v, ok := existing.(prometheus.Counter); ok {
			m.Customers = v
		}
	})
	mustRegisterCollector(reg, m.OrphanCustomers, func(existing prometheus.Collector) {
		if v, ok := existing.(prometheus.Counter); ok {
			m.OrphanCustomers = v
		}
	})
	mustRegisterCollector(reg, m.RecordsLoaded, func(existing prometheus.Collector) {
		if v, ok := existing.(*prometheus.GaugeVec); ok {
			m.RecordsLoaded = v
		}
	})
	mustRegisterCollector(reg, m.DurationMillisec, func(existing prometheus.Collector) {
		if v, ok := existing.(prometheus.Histogram); ok {
			m.DurationMillisec = v
		}
	})
	return m
}

// ObserveRun records the outcome and latency of a run. Safe on a nil receiver.
func (m *ReportMetrics) ObserveRun(err error, d time.Duration) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.Runs.WithLabelValues(result).Inc()
	m.DurationMillisec.Observe(DurationMillis(d))
}

// SetLoaded records the size of a loaded collection. Safe on a nil receiver.
func (m *ReportMetrics) SetLoaded(collection string, n int) {
	if m == nil {
		return
	}
	m.RecordsLoaded.WithLabelValues(collection).Set(float64(n))
}

// AddCustomers counts rendered statements. Safe on a nil receiver.
func (m *ReportMetrics) AddCustomers(n int) {
	if m == nil {
		return
	}
	m.Customers.Add(float64(n))
}

// AddOrphans counts aggregated ids that had no customer record. Safe on a nil receiver.
func (m *ReportMetrics) AddOrphans(n int) {
	if m == nil {
		return
	}
	m.OrphanCustomers.Add(float64(n))
}

// WriteTextfile dumps every metric gathered by g to path in the Prometheus
// text format, for pickup by a node exporter textfile collector.
func WriteTextfile(g prometheus.Gatherer, path string) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}

// DurationMillis converts a duration to milliseconds for metric observation.
func DurationMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func mustRegisterCollector(reg prometheus.Registerer, collector prometheus.Collector, reuse func(prometheus.Collector)) {
	if err := reg.Register(collector); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if reuse != nil {
				reuse(are.ExistingCollector)
			}
			return
		}
		panic(fmt.Errorf("register report metric: %w", err))
	}
}
