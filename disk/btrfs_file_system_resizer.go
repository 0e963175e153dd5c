package disk

import (
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"

	resizeerr "github.com/cloudfoundry/hot-resize/errors"
)

type btrfsFileSystemResizer struct {
	cmdRunner boshsys.CmdRunner
	logger    boshlog.Logger
	logTag    string
}

func NewBtrfsFileSystemResizer(cmdRunner boshsys.CmdRunner, logger boshlog.Logger) FileSystemResizer {
	return btrfsFileSystemResizer{
		cmdRunner: cmdRunner,
		logger:    logger,
		logTag:    "BtrfsFileSystemResizer",
	}
}

func (r btrfsFileSystemResizer) Resize(devicePath, mountPoint string) error {
	_, stderr, exitStatus, err := r.cmdRunner.RunCommand("btrfs", "filesystem", "resize", "max", mountPoint)
	if err != nil {
		return resizeerr.ExecutionError{Tool: "btrfs", ExitStatus: exitStatus, Stderr: stderr}
	}

	r.logger.Info(r.logTag, "Resized btrfs filesystem at '%s'", mountPoint)
	return nil
}
