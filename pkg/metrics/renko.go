package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var DatasetLoadsMetrics = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "renkochart_dataset_loads_total",
		Help: "number of dataset loads by source and result",
	}, []string{"source", "result"})

var ChartRendersMetrics = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "renkochart_chart_renders_total",
		Help: "number of rendered charts by kind and result",
	}, []string{"kind", "result"})

var ChartRenderDurationMetrics = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "renkochart_chart_render_duration_seconds",
		Help:    "chart render duration",
		Buckets: prometheus.DefBuckets,
	}, []string{"kind"})

var BricksMetrics = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "renkochart_bricks",
		Help: "number of bricks of the last decomposed dataset",
	}, []string{"dataset"})

var NavigationMetrics = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "renkochart_navigations_total",
		Help: "number of navigation actions",
	}, []string{"action"})

func result(err error) string {
	if err != nil {
		return "error"
	}

	return "ok"
}

func ObserveLoad(source string, err error) {
	DatasetLoadsMetrics.With(prometheus.Labels{"source": source, "result": result(err)}).Inc()
}

func ObserveRender(kind string, startTime time.Time, err error) {
	ChartRendersMetrics.With(prometheus.Labels{"kind": kind, "result": result(err)}).Inc()
	ChartRenderDurationMetrics.With(prometheus.Labels{"kind": kind}).Observe(time.Since(startTime).Seconds())
}

func init() {
	prometheus.MustRegister(
		DatasetLoadsMetrics,
		ChartRendersMetrics,
		ChartRenderDurationMetrics,
		BricksMetrics,
		NavigationMetrics,
	)
}
