package orchestrator

// State is one position in the per-device resize machine. A device
// moves strictly forward; StateFailed is terminal and reachable from
// any transition.
type State string

const (
	StatePending           State = "pending"
	StateToolsVerified     State = "tools-verified"
	StatePartitionGrown    State = "partition-grown"
	StateLuksResized       State = "luks-resized"
	StateFilesystemResized State = "filesystem-resized"
	StateVerified          State = "verified"
	StateDone              State = "done"
	StateFailed            State = "failed"
)

type Action string

const (
	ActionGrowPartition    Action = "grow-partition"
	ActionResizeLuks       Action = "resize-luks"
	ActionResizeFilesystem Action = "resize-filesystem"
	ActionVerify           Action = "verify"
)

func (a Action) postState() State {
	switch a {
	case ActionGrowPartition:
		return StatePartitionGrown
	case ActionResizeLuks:
		return StateLuksResized
	case ActionResizeFilesystem:
		return StateFilesystemResized
	case ActionVerify:
		return StateVerified
	}

	return StateFailed
}

type StepStatus string

const (
	StepDone      StepStatus = "done"
	StepSimulated StepStatus = "simulated"
	StepSkipped   StepStatus = "skipped"
	StepFailed    StepStatus = "failed"
)

type OperationStatus string

const (
	OperationSuccess       OperationStatus = "success"
	OperationFailed        OperationStatus = "failed"
	OperationSkippedDryRun OperationStatus = "dry-run"
)
