package disk

import (
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"

	resizeerr "github.com/cloudfoundry/hot-resize/errors"
)

type xfsFileSystemResizer struct {
	cmdRunner boshsys.CmdRunner
	logger    boshlog.Logger
	logTag    string
}

func NewXfsFileSystemResizer(cmdRunner boshsys.CmdRunner, logger boshlog.Logger) FileSystemResizer {
	return xfsFileSystemResizer{
		cmdRunner: cmdRunner,
		logger:    logger,
		logTag:    "XfsFileSystemResizer",
	}
}

// xfs tooling addresses the mount point, not the block device.
func (r xfsFileSystemResizer) Resize(devicePath, mountPoint string) error {
	_, stderr, exitStatus, err := r.cmdRunner.RunCommand("xfs_growfs", "-d", mountPoint)
	if err != nil {
		return resizeerr.ExecutionError{Tool: "xfs_growfs", ExitStatus: exitStatus, Stderr: stderr}
	}

	r.logger.Info(r.logTag, "Resized xfs filesystem at '%s'", mountPoint)
	return nil
}
