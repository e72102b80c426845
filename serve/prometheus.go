// Copyright © 2025 The Gotheme Project.

package serve

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/zosmac/gotheme/theme"
)

type (
	// prometheusCollector complies with the Prometheus Collector interface.
	prometheusCollector struct {
		src Source
	}
)

var (
	// descs of the metrics collected.
	darkDesc = prometheus.NewDesc(
		"gotheme_dark",
		"1 if the surface is dark",
		[]string{"surface"}, nil,
	)
	autoDesc = prometheus.NewDesc(
		"gotheme_auto",
		"1 if the surface follows its night window",
		[]string{"surface"}, nil,
	)
	transitionsDesc = prometheus.NewDesc(
		"gotheme_transitions_total",
		"appearance changes written to the surface",
		[]string{"surface"}, nil,
	)
	writeErrorsDesc = prometheus.NewDesc(
		"gotheme_write_errors_total",
		"failed writes of the surface appearance",
		[]string{"surface"}, nil,
	)
	ticksDesc = prometheus.NewDesc(
		"gotheme_ticks_total",
		"reconcile steps taken",
		nil, nil,
	)
	saveErrorsDesc = prometheus.NewDesc(
		"gotheme_save_errors_total",
		"failed saves of the configuration",
		nil, nil,
	)
)

// Describe returns metric descriptions for prometheusCollector.
// This is irrelevant as Collect() uses prometheus.MustNewConstMetric
func (c *prometheusCollector) Describe(ch chan<- *prometheus.Desc) {
}

// Collect returns the current state of all metrics to Prometheus.
func (c *prometheusCollector) Collect(ch chan<- prometheus.Metric) {
	st := c.src.Current()
	ch <- prometheus.MustNewConstMetric(ticksDesc, prometheus.CounterValue, float64(st.Ticks))
	ch <- prometheus.MustNewConstMetric(saveErrorsDesc, prometheus.CounterValue, float64(st.SaveErrors))
	for _, name := range theme.Surfaces.ValidValues() {
		surface := theme.Surface(name)
		s, ok := st.Surfaces[surface]
		if !ok {
			continue
		}
		ch <- prometheus.MustNewConstMetric(darkDesc, prometheus.GaugeValue, gauge(s.Appearance.Dark), string(surface))
		ch <- prometheus.MustNewConstMetric(autoDesc, prometheus.GaugeValue, gauge(s.Auto), string(surface))
		ch <- prometheus.MustNewConstMetric(transitionsDesc, prometheus.CounterValue, float64(s.Transitions), string(surface))
		ch <- prometheus.MustNewConstMetric(writeErrorsDesc, prometheus.CounterValue, float64(s.WriteErrors), string(surface))
	}
}

func gauge(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
