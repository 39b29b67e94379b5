package loggedin

import (
	"hit-reports/internal/shared/metrics"
)

// metricLoggedInUsers tracks the authoritative current state per host: the
// Total of the segment most recently appended for that host today.
var metricLoggedInUsers = metrics.NewGaugeVec(
	metrics.GaugeOpts{
		Namespace: metrics.Namespace,
		Subsystem: metrics.SubReports,
		Name:      "logged_in_users",
	},
	[]string{"host"},
)
