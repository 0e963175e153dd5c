package topology

import (
	"github.com/cloudfoundry/hot-resize/devices"
)

// Partition locates the descriptor device on its parent disk. A device
// carrying a filesystem directly, with no partition table entry, has an
// empty ParentDiskPath and a zero Number.
type Partition struct {
	Path           string
	ParentDiskPath string
	Number         int
}

func (p Partition) OnWholeDisk() bool {
	return p.ParentDiskPath == ""
}

// LuksLayer is the single dm-crypt indirection allowed between the
// partition and the filesystem.
type LuksLayer struct {
	ContainerPath string
	MappedName    string
	MappedPath    string
}

type Filesystem struct {
	Kind       devices.FSType
	DevicePath string
	MountPoint string
}

// Topology is the resolved chain disk -> partition -> [luks] ->
// filesystem for one device. Computed once per device per run.
type Topology struct {
	Partition  Partition
	Luks       *LuksLayer
	Filesystem Filesystem
}

func (t Topology) HasLuks() bool {
	return t.Luks != nil
}
