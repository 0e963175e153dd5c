package disk

import (
	"strconv"
	"strings"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"

	resizeerr "github.com/cloudfoundry/hot-resize/errors"
)

const growpartNoChangeExitStatus = 2

type growpartPartitionGrower struct {
	cmdRunner boshsys.CmdRunner
	logger    boshlog.Logger
	logTag    string
}

func NewGrowpartPartitionGrower(cmdRunner boshsys.CmdRunner, logger boshlog.Logger) PartitionGrower {
	return growpartPartitionGrower{
		cmdRunner: cmdRunner,
		logger:    logger,
		logTag:    "GrowpartPartitionGrower",
	}
}

func (g growpartPartitionGrower) Grow(diskPath string, partitionNumber int) (bool, error) {
	stdout, stderr, exitStatus, err := g.cmdRunner.RunCommand(
		"growpart", diskPath, strconv.Itoa(partitionNumber),
	)

	if isNoChange(stdout, stderr, exitStatus) {
		g.logger.Info(g.logTag, "Partition %d on '%s' is already at maximum size", partitionNumber, diskPath)
		return false, nil
	}

	if err != nil {
		return false, resizeerr.ExecutionError{Tool: "growpart", ExitStatus: exitStatus, Stderr: stderr}
	}

	g.logger.Info(g.logTag, "Grew partition %d on '%s'", partitionNumber, diskPath)
	return true, nil
}

// growpart reports an already-maximal partition with exit status 2 and a
// NOCHANGE diagnostic. The diagnostic text is not stable across versions,
// so both signals are interpreted here and nowhere else.
func isNoChange(stdout, stderr string, exitStatus int) bool {
	if exitStatus == growpartNoChangeExitStatus {
		return true
	}

	return strings.Contains(stdout, "NOCHANGE") || strings.Contains(stderr, "NOCHANGE")
}
