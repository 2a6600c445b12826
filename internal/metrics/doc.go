// Package metrics records configurator run metrics.
//
// Components receive a Recorder and default to NoopRecorder, so metrics are
// opt-in without nil checks at call sites. The CLI swaps in a
// PrometheusRecorder when --metrics-file is set and writes the registry in
// the node_exporter textfile format once the run finishes, which suits a
// one-shot process that is never scraped directly.
package metrics
