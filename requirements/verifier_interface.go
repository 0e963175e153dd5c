package requirements

import (
	"github.com/cloudfoundry/hot-resize/devices"
	"github.com/cloudfoundry/hot-resize/topology"
)

// Verifier checks that every external tool the batch will shell out to
// is present before the first mutating action runs.
type Verifier interface {
	Verify(specs []devices.DeviceSpec, topologies []topology.Topology) error
}
