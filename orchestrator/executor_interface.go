package orchestrator

import (
	"github.com/cloudfoundry/hot-resize/devices"
)

// Executor runs one whole batch. A non-nil error means a process-wide
// precondition failed and no device was touched; otherwise every
// attempted device has an entry in the BatchResult.
type Executor interface {
	Execute(specs []devices.DeviceSpec) (BatchResult, error)
}
