package orchestrator

import (
	"github.com/cloudfoundry/hot-resize/devices"
	"github.com/cloudfoundry/hot-resize/topology"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . DeviceOrchestrator

// DeviceOrchestrator drives one device through the resize machine.
// Failures are folded into the returned result rather than escaping as
// errors; one device must never abort the batch.
type DeviceOrchestrator interface {
	Orchestrate(spec devices.DeviceSpec, topo topology.Topology) OperationResult
}
