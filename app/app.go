package app

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"code.cloudfoundry.org/clock"
	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"

	"github.com/cloudfoundry/hot-resize/devices"
	boshdisk "github.com/cloudfoundry/hot-resize/disk"
	resizeerr "github.com/cloudfoundry/hot-resize/errors"
	boshorc "github.com/cloudfoundry/hot-resize/orchestrator"
	"github.com/cloudfoundry/hot-resize/requirements"
	"github.com/cloudfoundry/hot-resize/topology"
)

type App interface {
	Setup(args []string) error
	Run() error
}

type app struct {
	logger    boshlog.Logger
	fs        boshsys.FileSystem
	cmdRunner boshsys.CmdRunner
	euid      int
	out       io.Writer
	logTag    string

	specs    []devices.DeviceSpec
	executor boshorc.Executor
}

// New builds the application. The effective uid is passed in rather
// than read here so the privilege check stays a pure decision.
func New(logger boshlog.Logger, fs boshsys.FileSystem, cmdRunner boshsys.CmdRunner, euid int, out io.Writer) App {
	return &app{
		logger:    logger,
		fs:        fs,
		cmdRunner: cmdRunner,
		euid:      euid,
		out:       out,
		logTag:    "App",
	}
}

func (a *app) Setup(args []string) error {
	opts, err := ParseOptions(args)
	if err != nil {
		return resizeerr.ValidationError{Reason: err.Error()}
	}

	if !opts.NoRootCheck && a.euid != 0 {
		return resizeerr.PermissionError{}
	}

	batchJSON, err := a.batchJSON(opts)
	if err != nil {
		return err
	}

	a.specs, err = devices.ParseBatch([]byte(batchJSON))
	if err != nil {
		return err
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	interrupt := boshorc.NewInterruptMonitor(signals)

	diskManager := boshdisk.NewLinuxDiskManager(a.logger, a.cmdRunner, a.fs)
	resolver := topology.NewLsblkResolver(a.fs, a.cmdRunner, diskManager.GetMountsSearcher(), a.logger)
	verifier := requirements.NewToolVerifier(a.cmdRunner, a.logger)
	deviceOrchestrator := boshorc.NewDeviceOrchestrator(diskManager, interrupt, opts.DryRun, opts.SkipVerify, a.logger)

	a.executor = boshorc.NewBatchExecutor(
		resolver,
		verifier,
		deviceOrchestrator,
		interrupt,
		clock.NewClock(),
		a.logger,
	)

	return nil
}

func (a *app) Run() error {
	batchResult, err := a.executor.Execute(a.specs)
	if err != nil {
		fmt.Fprintf(a.out, "Failed before modifying anything: %s\nNo devices were modified.\n", err.Error())
		return err
	}

	fmt.Fprint(a.out, boshorc.RenderReport(batchResult))

	if !batchResult.AllDone() {
		return bosherr.Errorf("%d of %d devices did not complete", incompleteCount(batchResult), batchResult.TotalDevices)
	}

	return nil
}

func (a *app) batchJSON(opts Options) (string, error) {
	switch {
	case opts.DevicesJSON != "" && opts.DevicesFile != "":
		return "", resizeerr.ValidationError{Reason: "use either --devices or --devices-file, not both"}
	case opts.DevicesJSON != "":
		return opts.DevicesJSON, nil
	case opts.DevicesFile != "":
		contents, err := a.fs.ReadFileString(opts.DevicesFile)
		if err != nil {
			return "", resizeerr.ValidationError{Reason: fmt.Sprintf("reading devices file: %s", err.Error())}
		}
		return contents, nil
	default:
		return "", resizeerr.ValidationError{Reason: "one of --devices or --devices-file is required"}
	}
}

func incompleteCount(batchResult boshorc.BatchResult) int {
	count := batchResult.TotalDevices - len(batchResult.Results)
	for _, result := range batchResult.Results {
		if result.Status == boshorc.OperationFailed {
			count++
		}
	}
	return count
}
