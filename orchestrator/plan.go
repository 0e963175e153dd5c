package orchestrator

import (
	"fmt"

	"github.com/cloudfoundry/hot-resize/devices"
	"github.com/cloudfoundry/hot-resize/topology"
)

// Step is one planned action for one device. Command is the
// human-readable form used for dry-run logging and the report; the
// actual invocation goes through the disk package seams.
type Step struct {
	Action  Action
	Target  string
	Command string
}

type Plan struct {
	Steps []Step
}

// BuildPlan lays out the steps for one device in the only valid order:
// partition boundary first, then the crypt layer, then the filesystem,
// then the size check.
func BuildPlan(topo topology.Topology, skipVerify bool) Plan {
	growStep := Step{Action: ActionGrowPartition, Target: topo.Partition.Path}
	if !topo.Partition.OnWholeDisk() {
		growStep.Command = fmt.Sprintf("growpart %s %d", topo.Partition.ParentDiskPath, topo.Partition.Number)
	}

	steps := []Step{growStep}

	if topo.HasLuks() {
		steps = append(steps, Step{
			Action:  ActionResizeLuks,
			Target:  topo.Luks.MappedPath,
			Command: fmt.Sprintf("cryptsetup resize %s", topo.Luks.MappedPath),
		})
	}

	steps = append(steps, Step{
		Action:  ActionResizeFilesystem,
		Target:  topo.Filesystem.DevicePath,
		Command: filesystemResizeCommand(topo.Filesystem),
	})

	if !skipVerify {
		steps = append(steps, Step{Action: ActionVerify, Target: topo.Filesystem.MountPoint})
	}

	return Plan{Steps: steps}
}

func (p Plan) HasVerify() bool {
	for _, step := range p.Steps {
		if step.Action == ActionVerify {
			return true
		}
	}

	return false
}

func filesystemResizeCommand(fs topology.Filesystem) string {
	switch fs.Kind {
	case devices.FSTypeExt4:
		return fmt.Sprintf("resize2fs -f %s", fs.DevicePath)
	case devices.FSTypeXFS:
		return fmt.Sprintf("xfs_growfs -d %s", fs.MountPoint)
	case devices.FSTypeBtrfs:
		return fmt.Sprintf("btrfs filesystem resize max %s", fs.MountPoint)
	}

	return ""
}
