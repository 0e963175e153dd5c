package orchestrator

import (
	"errors"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"

	"github.com/cloudfoundry/hot-resize/devices"
	boshdisk "github.com/cloudfoundry/hot-resize/disk"
	resizeerr "github.com/cloudfoundry/hot-resize/errors"
	"github.com/cloudfoundry/hot-resize/topology"
)

type deviceOrchestrator struct {
	diskManager boshdisk.Manager
	interrupt   *InterruptMonitor
	dryRun      bool
	skipVerify  bool
	logger      boshlog.Logger
	logTag      string
}

func NewDeviceOrchestrator(
	diskManager boshdisk.Manager,
	interrupt *InterruptMonitor,
	dryRun bool,
	skipVerify bool,
	logger boshlog.Logger,
) DeviceOrchestrator {
	return deviceOrchestrator{
		diskManager: diskManager,
		interrupt:   interrupt,
		dryRun:      dryRun,
		skipVerify:  skipVerify,
		logger:      logger,
		logTag:      "DeviceOrchestrator",
	}
}

func (o deviceOrchestrator) Orchestrate(spec devices.DeviceSpec, topo topology.Topology) OperationResult {
	result := OperationResult{
		Device:     spec.Device,
		MountPoint: spec.MountPoint,
		States:     []State{StatePending},
	}

	// The batch-wide tool gate passed before any orchestration began.
	result.advance(StateToolsVerified)

	plan := BuildPlan(topo, o.skipVerify)

	// The reference size for Verify must be taken before anything
	// mutates. A failed probe fails the device while it is still
	// untouched.
	sizeBefore := uint64(0)
	if plan.HasVerify() && !o.dryRun {
		size, err := o.diskManager.GetFileSystemSizer().GetFileSystemSizeInBytes(spec.MountPoint)
		if err != nil {
			probeStep := Step{Action: ActionVerify, Target: spec.MountPoint}
			return o.fail(result, probeStep, bosherr.WrapErrorf(err, "Probing size of '%s' before resizing", spec.MountPoint))
		}
		sizeBefore = size
	}

	for _, step := range plan.Steps {
		if o.interrupt.Interrupted() {
			return o.fail(result, step, bosherr.Error("Interrupted before completion"))
		}

		outcome, err := o.runStep(step, topo, sizeBefore)
		if err != nil {
			return o.fail(result, step, err)
		}

		result.Steps = append(result.Steps, outcome)
		result.advance(step.Action.postState())
	}

	result.advance(StateDone)

	if o.dryRun {
		result.Status = OperationSkippedDryRun
	} else {
		result.Status = OperationSuccess
	}

	return result
}

func (o deviceOrchestrator) runStep(step Step, topo topology.Topology, sizeBefore uint64) (StepOutcome, error) {
	switch step.Action {
	case ActionGrowPartition:
		return o.growPartition(step, topo)
	case ActionResizeLuks:
		return o.resizeLuks(step, topo)
	case ActionResizeFilesystem:
		return o.resizeFilesystem(step, topo)
	case ActionVerify:
		return o.verify(step, sizeBefore)
	}

	return StepOutcome{}, bosherr.Errorf("Unknown action '%s'", step.Action)
}

func (o deviceOrchestrator) growPartition(step Step, topo topology.Topology) (StepOutcome, error) {
	if topo.Partition.OnWholeDisk() {
		o.logger.Info(o.logTag, "Filesystem sits directly on '%s', no partition boundary to grow", topo.Partition.Path)
		return StepOutcome{Step: step, Status: StepSkipped}, nil
	}

	if o.dryRun {
		return o.simulate(step), nil
	}

	changed, err := o.diskManager.GetPartitionGrower().Grow(topo.Partition.ParentDiskPath, topo.Partition.Number)
	if err != nil {
		return StepOutcome{}, err
	}

	if !changed {
		o.logger.Info(o.logTag, "Partition %d on '%s' already fills the disk", topo.Partition.Number, topo.Partition.ParentDiskPath)
	}

	return StepOutcome{Step: step, Status: StepDone}, nil
}

func (o deviceOrchestrator) resizeLuks(step Step, topo topology.Topology) (StepOutcome, error) {
	if o.dryRun {
		return o.simulate(step), nil
	}

	err := o.diskManager.GetLuksResizer().Resize(topo.Luks.MappedPath)
	if err != nil {
		return StepOutcome{}, err
	}

	return StepOutcome{Step: step, Status: StepDone}, nil
}

func (o deviceOrchestrator) resizeFilesystem(step Step, topo topology.Topology) (StepOutcome, error) {
	if o.dryRun {
		return o.simulate(step), nil
	}

	resizer, err := o.diskManager.GetFileSystemResizer(topo.Filesystem.Kind)
	if err != nil {
		return StepOutcome{}, err
	}

	err = resizer.Resize(topo.Filesystem.DevicePath, topo.Filesystem.MountPoint)
	if err != nil {
		return StepOutcome{}, err
	}

	return StepOutcome{Step: step, Status: StepDone}, nil
}

func (o deviceOrchestrator) verify(step Step, sizeBefore uint64) (StepOutcome, error) {
	if o.dryRun {
		// Nothing changed, so there is nothing to measure. The state
		// still advances to keep the dry-run trace identical.
		return o.simulate(step), nil
	}

	sizeAfter, err := o.diskManager.GetFileSystemSizer().GetFileSystemSizeInBytes(step.Target)
	if err != nil {
		return StepOutcome{}, bosherr.WrapErrorf(err, "Probing size of '%s' after resizing", step.Target)
	}

	if sizeAfter < sizeBefore {
		return StepOutcome{}, resizeerr.VerificationError{MountPoint: step.Target, Before: sizeBefore, After: sizeAfter}
	}

	o.logger.Debug(o.logTag, "Filesystem at '%s' went from %d to %d bytes", step.Target, sizeBefore, sizeAfter)

	return StepOutcome{Step: step, Status: StepDone}, nil
}

func (o deviceOrchestrator) simulate(step Step) StepOutcome {
	if step.Command != "" {
		o.logger.Info(o.logTag, "Dry run, would execute: %s", step.Command)
	}

	return StepOutcome{Step: step, Status: StepSimulated}
}

func (o deviceOrchestrator) fail(result OperationResult, step Step, err error) OperationResult {
	o.logger.Error(o.logTag, "Device '%s' failed at %s: %s", result.Device, step.Action, err.Error())

	result.Steps = append(result.Steps, StepOutcome{Step: step, Status: StepFailed, Stderr: stderrOf(err)})
	result.advance(StateFailed)
	result.Status = OperationFailed
	result.Error = err

	return result
}

func stderrOf(err error) string {
	var execErr resizeerr.ExecutionError
	if errors.As(err, &execErr) {
		return execErr.Stderr
	}

	return ""
}
