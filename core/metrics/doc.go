// Package metrics defines the sinks that observe planning runs. Sinks such
// as the Prometheus and log sinks live in infra/metrics and register
// themselves with RegisterMetricsSink; NewMetricsSink builds a MultiSink when
// several are configured.
package metrics
