/*
Package monitoring provides scan and bulk operation metrics.

# Overview

Metrics are registered on a private Prometheus registry so that a process
can hold more than one collector and tests never collide on the global one.
The command line tool exports them with WriteTextfile, in the format read by
the node_exporter textfile collector.

# Metrics

- wildcard_scans_total{mode,status}
- wildcard_scan_duration_seconds{mode}
- wildcard_entries_matched_total{mode}
- wildcard_entries_excluded_total
- wildcard_directories_listed_total
- wildcard_literal_probes_total
- wildcard_unreadable_directories_total
- wildcard_bulk_operations_total{op,status}
- wildcard_delete_failures_total

# Usage

	metrics := monitoring.NewMetrics()

	timer := monitoring.NewTimer(metrics, monitoring.ModeGlob)
	// ... scan ...
	timer.Stop("success", monitoring.WalkStats{Matched: 12})

	_ = metrics.WriteTextfile("/var/lib/node_exporter/wildcard.prom")
*/
package monitoring
