package disk

import (
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"

	resizeerr "github.com/cloudfoundry/hot-resize/errors"
)

type ext4FileSystemResizer struct {
	cmdRunner boshsys.CmdRunner
	logger    boshlog.Logger
	logTag    string
}

func NewExt4FileSystemResizer(cmdRunner boshsys.CmdRunner, logger boshlog.Logger) FileSystemResizer {
	return ext4FileSystemResizer{
		cmdRunner: cmdRunner,
		logger:    logger,
		logTag:    "Ext4FileSystemResizer",
	}
}

// resize2fs operates on the block device hosting the filesystem and
// grows to fill it when no explicit size is given.
func (r ext4FileSystemResizer) Resize(devicePath, mountPoint string) error {
	_, stderr, exitStatus, err := r.cmdRunner.RunCommand("resize2fs", "-f", devicePath)
	if err != nil {
		return resizeerr.ExecutionError{Tool: "resize2fs", ExitStatus: exitStatus, Stderr: stderr}
	}

	r.logger.Info(r.logTag, "Resized ext4 filesystem on '%s'", devicePath)
	return nil
}
