package topology

import (
	"regexp"
	"strconv"
	"strings"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"

	"github.com/cloudfoundry/hot-resize/devices"
	boshdisk "github.com/cloudfoundry/hot-resize/disk"
	resizeerr "github.com/cloudfoundry/hot-resize/errors"
)

var lsblkPairPattern = regexp.MustCompile(`([A-Z]+)="([^"]*)"`)

type lsblkResolver struct {
	fs             boshsys.FileSystem
	cmdRunner      boshsys.CmdRunner
	mountsSearcher boshdisk.MountsSearcher
	logger         boshlog.Logger
	logTag         string
}

func NewLsblkResolver(
	fs boshsys.FileSystem,
	cmdRunner boshsys.CmdRunner,
	mountsSearcher boshdisk.MountsSearcher,
	logger boshlog.Logger,
) Resolver {
	return lsblkResolver{
		fs:             fs,
		cmdRunner:      cmdRunner,
		mountsSearcher: mountsSearcher,
		logger:         logger,
		logTag:         "LsblkResolver",
	}
}

func (r lsblkResolver) Resolve(spec devices.DeviceSpec) (Topology, error) {
	topo, err := r.resolve(spec)
	if err != nil {
		return Topology{}, resizeerr.TopologyError{Device: spec.Device, Cause: err}
	}

	r.logger.Debug(r.logTag, "Resolved '%s': partition %+v, luks %v", spec.Device, topo.Partition, topo.HasLuks())
	return topo, nil
}

func (r lsblkResolver) resolve(spec devices.DeviceSpec) (Topology, error) {
	if !r.fs.FileExists(spec.Device) {
		return Topology{}, bosherr.Errorf("device '%s' does not exist", spec.Device)
	}

	devicePath, err := r.canonicalPath(spec.Device)
	if err != nil {
		return Topology{}, err
	}

	backingPath, err := r.backingDevice(spec.MountPoint)
	if err != nil {
		return Topology{}, err
	}

	topo := Topology{
		Partition: Partition{Path: devicePath},
		Filesystem: Filesystem{
			Kind:       spec.FSType,
			DevicePath: devicePath,
			MountPoint: spec.MountPoint,
		},
	}

	if backingPath != devicePath {
		luks, err := r.resolveLuksLayer(devicePath, backingPath)
		if err != nil {
			return Topology{}, err
		}

		topo.Luks = &luks
		topo.Filesystem.DevicePath = luks.MappedPath
	}

	parentDiskPath, partitionNumber, err := r.partitionPlacement(devicePath)
	if err != nil {
		return Topology{}, err
	}

	topo.Partition.ParentDiskPath = parentDiskPath
	topo.Partition.Number = partitionNumber

	return topo, nil
}

func (r lsblkResolver) canonicalPath(path string) (string, error) {
	stdout, _, _, err := r.cmdRunner.RunCommand("readlink", "-f", path)
	if err != nil {
		return "", bosherr.WrapErrorf(err, "Canonicalizing '%s'", path)
	}

	return strings.TrimSpace(stdout), nil
}

func (r lsblkResolver) backingDevice(mountPoint string) (string, error) {
	mounts, err := r.mountsSearcher.SearchMounts()
	if err != nil {
		return "", bosherr.WrapError(err, "Searching mounts")
	}

	// The last entry wins: a later mount shadows an earlier one on the
	// same mount point.
	backing := ""
	for _, mount := range mounts {
		if mount.MountPoint == mountPoint {
			backing = mount.PartitionPath
		}
	}

	if backing == "" {
		return "", bosherr.Errorf("mount point '%s' is not mounted", mountPoint)
	}

	return r.canonicalPath(backing)
}

// The mount point turned out to be backed by something other than the
// descriptor device. That is only acceptable for a dm-crypt mapping
// sitting directly on the device; anything else, including a second
// level of indirection, fails resolution.
func (r lsblkResolver) resolveLuksLayer(devicePath, backingPath string) (LuksLayer, error) {
	pairs, err := r.lsblkPairs(backingPath, "NAME,TYPE,PKNAME")
	if err != nil {
		return LuksLayer{}, err
	}

	if pairs["TYPE"] != "crypt" {
		return LuksLayer{}, bosherr.Errorf(
			"mount point is backed by '%s' (type '%s'), which is neither the device nor a crypt mapping over it",
			backingPath, pairs["TYPE"],
		)
	}

	if pairs["PKNAME"] == "" || "/dev/"+pairs["PKNAME"] != devicePath {
		return LuksLayer{}, bosherr.Errorf(
			"crypt mapping '%s' sits on '/dev/%s', not on '%s'",
			pairs["NAME"], pairs["PKNAME"], devicePath,
		)
	}

	return LuksLayer{
		ContainerPath: devicePath,
		MappedName:    pairs["NAME"],
		MappedPath:    "/dev/mapper/" + pairs["NAME"],
	}, nil
}

func (r lsblkResolver) partitionPlacement(devicePath string) (string, int, error) {
	pairs, err := r.lsblkPairs(devicePath, "PKNAME,NAME,PARTN")
	if err != nil {
		return "", 0, err
	}

	// A device with no parent holds its filesystem directly; there is no
	// partition boundary to grow.
	if pairs["PKNAME"] == "" && pairs["PARTN"] == "" {
		return "", 0, nil
	}

	if pairs["PARTN"] == "" {
		return "", 0, bosherr.Errorf(
			"device '%s' sits on '/dev/%s' but is not a partition of it",
			devicePath, pairs["PKNAME"],
		)
	}

	partitionNumber, err := strconv.Atoi(pairs["PARTN"])
	if err != nil {
		return "", 0, bosherr.WrapErrorf(err, "Parsing partition number '%s'", pairs["PARTN"])
	}

	return "/dev/" + pairs["PKNAME"], partitionNumber, nil
}

func (r lsblkResolver) lsblkPairs(devicePath, columns string) (map[string]string, error) {
	stdout, _, _, err := r.cmdRunner.RunCommand("lsblk", "--nodeps", "-Pno", columns, devicePath)
	if err != nil {
		return nil, bosherr.WrapErrorf(err, "Querying block device '%s'", devicePath)
	}

	line := strings.TrimSpace(stdout)
	if idx := strings.IndexByte(line, '\n'); idx != -1 {
		line = line[:idx]
	}

	pairs := map[string]string{}
	for _, match := range lsblkPairPattern.FindAllStringSubmatch(line, -1) {
		pairs[match[1]] = match[2]
	}

	if len(pairs) == 0 {
		return nil, bosherr.Errorf("Unexpected lsblk output for '%s': %q", devicePath, stdout)
	}

	return pairs, nil
}
