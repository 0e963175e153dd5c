package fakes

import (
	"github.com/cloudfoundry/hot-resize/devices"
	"github.com/cloudfoundry/hot-resize/topology"
)

type FakeVerifier struct {
	VerifySpecs      []devices.DeviceSpec
	VerifyTopologies []topology.Topology
	VerifyErr        error

	VerifyCallCount int
}

func (v *FakeVerifier) Verify(specs []devices.DeviceSpec, topologies []topology.Topology) error {
	v.VerifyCallCount++
	v.VerifySpecs = specs
	v.VerifyTopologies = topologies
	return v.VerifyErr
}
