/*
Package observability turns engine lifecycle events into metrics.

A Collector exposes Prometheus counters and histograms fed by domain.Hooks;
Combine fans one event out to several hook sets, e.g. debug logging and metrics.
*/
package observability
