package topology

import (
	"github.com/cloudfoundry/hot-resize/devices"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . Resolver

// Resolver maps a device descriptor to its physical chain. Resolution
// only queries block-device metadata; it never mutates anything.
type Resolver interface {
	Resolve(spec devices.DeviceSpec) (Topology, error)
}
