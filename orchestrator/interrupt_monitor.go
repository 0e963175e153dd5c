package orchestrator

import (
	"os"
)

// InterruptMonitor turns a signal delivery into a sticky flag. The
// executor and the per-device machine both poll it; without the latch
// whichever poll drained the channel would hide the stop request from
// the other.
type InterruptMonitor struct {
	signals <-chan os.Signal
	seen    bool
}

func NewInterruptMonitor(signals <-chan os.Signal) *InterruptMonitor {
	return &InterruptMonitor{signals: signals}
}

func (m *InterruptMonitor) Interrupted() bool {
	if m.seen {
		return true
	}

	select {
	case <-m.signals:
		m.seen = true
	default:
	}

	return m.seen
}
