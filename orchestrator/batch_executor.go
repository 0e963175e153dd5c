package orchestrator

import (
	"code.cloudfoundry.org/clock"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"

	"github.com/cloudfoundry/hot-resize/devices"
	"github.com/cloudfoundry/hot-resize/requirements"
	"github.com/cloudfoundry/hot-resize/topology"
)

type batchExecutor struct {
	resolver     topology.Resolver
	verifier     requirements.Verifier
	orchestrator DeviceOrchestrator
	interrupt    *InterruptMonitor
	timeService  clock.Clock
	logger       boshlog.Logger
	logTag       string
}

func NewBatchExecutor(
	resolver topology.Resolver,
	verifier requirements.Verifier,
	orchestrator DeviceOrchestrator,
	interrupt *InterruptMonitor,
	timeService clock.Clock,
	logger boshlog.Logger,
) Executor {
	return batchExecutor{
		resolver:     resolver,
		verifier:     verifier,
		orchestrator: orchestrator,
		interrupt:    interrupt,
		timeService:  timeService,
		logger:       logger,
		logTag:       "BatchExecutor",
	}
}

func (e batchExecutor) Execute(specs []devices.DeviceSpec) (BatchResult, error) {
	batchResult := BatchResult{
		TotalDevices: len(specs),
		StartedAt:    e.timeService.Now(),
	}

	// Resolution is read-only, so it can run for the whole batch before
	// the tool gate. That way the gate covers cryptsetup for any LUKS
	// layer that resolution just uncovered.
	topologies := make([]topology.Topology, len(specs))
	topologyErrs := make([]error, len(specs))
	resolved := []topology.Topology{}

	for i, spec := range specs {
		topo, err := e.resolver.Resolve(spec)
		if err != nil {
			e.logger.Error(e.logTag, "Resolving '%s': %s", spec.Device, err.Error())
			topologyErrs[i] = err
			continue
		}

		topologies[i] = topo
		resolved = append(resolved, topo)
	}

	err := e.verifier.Verify(specs, resolved)
	if err != nil {
		return BatchResult{}, err
	}

	for i, spec := range specs {
		if e.interrupt.Interrupted() {
			e.logger.Info(e.logTag, "Interrupted, stopping after %d of %d devices", len(batchResult.Results), len(specs))
			batchResult.Interrupted = true
			break
		}

		if topologyErrs[i] != nil {
			batchResult.Results = append(batchResult.Results, failedResolution(spec, topologyErrs[i]))
			continue
		}

		e.logger.Info(e.logTag, "Resizing '%s' mounted at '%s'", spec.Device, spec.MountPoint)

		deviceStart := e.timeService.Now()
		opResult := e.orchestrator.Orchestrate(spec, topologies[i])
		opResult.Duration = e.timeService.Since(deviceStart)

		batchResult.Results = append(batchResult.Results, opResult)
	}

	batchResult.FinishedAt = e.timeService.Now()

	return batchResult, nil
}

func failedResolution(spec devices.DeviceSpec, err error) OperationResult {
	return OperationResult{
		Device:     spec.Device,
		MountPoint: spec.MountPoint,
		States:     []State{StatePending, StateFailed},
		Status:     OperationFailed,
		Error:      err,
	}
}
