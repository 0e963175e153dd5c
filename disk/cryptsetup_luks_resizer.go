package disk

import (
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"

	resizeerr "github.com/cloudfoundry/hot-resize/errors"
)

type cryptsetupLuksResizer struct {
	cmdRunner boshsys.CmdRunner
	logger    boshlog.Logger
	logTag    string
}

func NewCryptsetupLuksResizer(cmdRunner boshsys.CmdRunner, logger boshlog.Logger) LuksResizer {
	return cryptsetupLuksResizer{
		cmdRunner: cmdRunner,
		logger:    logger,
		logTag:    "CryptsetupLuksResizer",
	}
}

func (r cryptsetupLuksResizer) Resize(mappedPath string) error {
	_, stderr, exitStatus, err := r.cmdRunner.RunCommand("cryptsetup", "resize", mappedPath)
	if err != nil {
		return resizeerr.ExecutionError{Tool: "cryptsetup", ExitStatus: exitStatus, Stderr: stderr}
	}

	r.logger.Info(r.logTag, "Resized LUKS mapping '%s'", mappedPath)
	return nil
}
