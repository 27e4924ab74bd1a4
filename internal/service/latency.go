package service

import "time"

// Latency is the simulated-network-delay strategy injected into the service
// layer. Tests use NoLatency; the server scales the defaults via config.
type Latency interface {
	Sleep(op string)
}

// operationDelay fixes the per-operation simulated latency. Connect is the
// slowest mutation short of generation because it models an OAuth round trip.
var operationDelay = map[string]time.Duration{
	"webapps.list":   300 * time.Millisecond,
	"webapps.get":    200 * time.Millisecond,
	"webapps.create": 500 * time.Millisecond,
	"webapps.update": 400 * time.Millisecond,
	"webapps.delete": 300 * time.Millisecond,

	"platforms.list":       300 * time.Millisecond,
	"platforms.get":        200 * time.Millisecond,
	"platforms.connect":    1000 * time.Millisecond,
	"platforms.disconnect": 500 * time.Millisecond,

	"content.list":          300 * time.Millisecond,
	"content.listPending":   300 * time.Millisecond,
	"content.get":           200 * time.Millisecond,
	"content.approve":       400 * time.Millisecond,
	"content.reject":        400 * time.Millisecond,
	"content.approveAll":    600 * time.Millisecond,
	"content.updateCaption": 300 * time.Millisecond,
	"content.generate":      2000 * time.Millisecond,

	"analytics.summary":       400 * time.Millisecond,
	"analytics.platformStats": 300 * time.Millisecond,
}

type scaledLatency struct {
	scale float64
}

// NewLatency returns the default delay table scaled by the given factor.
// A scale of 0 disables all delays.
func NewLatency(scale float64) Latency {
	return scaledLatency{scale: scale}
}

// NoLatency returns a strategy that never sleeps.
func NoLatency() Latency {
	return scaledLatency{scale: 0}
}

// Sleep blocks for the operation's simulated latency. The wait is a plain
// timer on purpose: an in-flight operation cannot be canceled, the mutation
// after the delay always applies.
func (l scaledLatency) Sleep(op string) {
	d := operationDelay[op]
	if d <= 0 || l.scale <= 0 {
		return
	}
	time.Sleep(time.Duration(float64(d) * l.scale))
}
