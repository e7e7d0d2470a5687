// Package infra holds the technical adapters behind the core interfaces:
// the zerolog logger and the metrics sinks.
package infra
