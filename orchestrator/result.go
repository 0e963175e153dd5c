package orchestrator

import (
	"time"
)

type StepOutcome struct {
	Step   Step
	Status StepStatus
	Stderr string
}

// OperationResult is the complete record of one device's run: the state
// trace, per-step outcomes, and the error that stopped the machine, if
// any.
type OperationResult struct {
	Device     string
	MountPoint string
	States     []State
	Steps      []StepOutcome
	Status     OperationStatus
	Error      error
	Duration   time.Duration
}

func (r *OperationResult) advance(state State) {
	r.States = append(r.States, state)
}

func (r OperationResult) FinalState() State {
	if len(r.States) == 0 {
		return StatePending
	}

	return r.States[len(r.States)-1]
}

// BatchResult aggregates one run. Results holds an entry per attempted
// device in input order; on interrupt the remaining devices never get
// one.
type BatchResult struct {
	Results      []OperationResult
	TotalDevices int
	StartedAt    time.Time
	FinishedAt   time.Time
	Interrupted  bool
}

// AllDone is the exit code predicate: true only when every requested
// device ran its machine to completion.
func (r BatchResult) AllDone() bool {
	if r.Interrupted || len(r.Results) < r.TotalDevices {
		return false
	}

	for _, result := range r.Results {
		if result.Status == OperationFailed {
			return false
		}
	}

	return true
}
