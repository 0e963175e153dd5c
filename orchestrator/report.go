package orchestrator

import (
	"fmt"
	"strings"
)

// RenderReport formats one batch outcome for the operator. Process-wide
// failures never reach this point; the caller reports those as a single
// "no devices were modified" notice.
func RenderReport(result BatchResult) string {
	var out strings.Builder

	completed := 0
	for _, opResult := range result.Results {
		if opResult.Status != OperationFailed {
			completed++
		}
	}

	fmt.Fprintf(&out, "Resize report: %d of %d device(s) completed in %s\n",
		completed, result.TotalDevices, result.FinishedAt.Sub(result.StartedAt))

	for _, opResult := range result.Results {
		renderOperation(&out, opResult)
	}

	if result.Interrupted {
		fmt.Fprintf(&out, "Interrupted: %d device(s) not attempted\n",
			result.TotalDevices-len(result.Results))
	}

	return out.String()
}

func renderOperation(out *strings.Builder, result OperationResult) {
	switch result.Status {
	case OperationFailed:
		fmt.Fprintf(out, "  %s (%s) failed: %s\n", result.Device, result.MountPoint, result.Error.Error())
	case OperationSkippedDryRun:
		fmt.Fprintf(out, "  %s (%s) dry-run, nothing modified\n", result.Device, result.MountPoint)
	default:
		fmt.Fprintf(out, "  %s (%s) done in %s\n", result.Device, result.MountPoint, result.Duration)
	}

	for _, outcome := range result.Steps {
		fmt.Fprintf(out, "    %-18s %s\n", string(outcome.Step.Action)+":", outcome.Status)

		if outcome.Stderr != "" {
			fmt.Fprintf(out, "      stderr: %s\n", strings.TrimSpace(outcome.Stderr))
		}
	}
}
