package events

import "time"

// ReportEvent carries one freshly generated report to the push boundary.
// Providers publish an event per host they produced a report for; the stream
// dispatcher relays it to every subscriber registered for that host.
//
// Payload is the provider's report serialized as JSON, opaque to the stream
// layer.
type ReportEvent struct {
	Host      string    `json:"host"`
	Provider  string    `json:"provider"`
	Generated time.Time `json:"generated"`
	Payload   []byte    `json:"payload"`
}
