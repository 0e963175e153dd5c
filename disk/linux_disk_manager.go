package disk

import (
	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"

	"github.com/cloudfoundry/hot-resize/devices"
)

type Manager interface {
	GetMountsSearcher() MountsSearcher
	GetPartitionGrower() PartitionGrower
	GetLuksResizer() LuksResizer
	GetFileSystemResizer(fsType devices.FSType) (FileSystemResizer, error)
	GetFileSystemSizer() FileSystemSizer
}

type linuxDiskManager struct {
	mountsSearcher  MountsSearcher
	partitionGrower PartitionGrower
	luksResizer     LuksResizer
	ext4Resizer     FileSystemResizer
	xfsResizer      FileSystemResizer
	btrfsResizer    FileSystemResizer
	fileSystemSizer FileSystemSizer

	logger boshlog.Logger
}

func NewLinuxDiskManager(
	logger boshlog.Logger,
	runner boshsys.CmdRunner,
	fs boshsys.FileSystem,
) Manager {
	return linuxDiskManager{
		mountsSearcher:  NewProcMountsSearcher(fs),
		partitionGrower: NewGrowpartPartitionGrower(runner, logger),
		luksResizer:     NewCryptsetupLuksResizer(runner, logger),
		ext4Resizer:     NewExt4FileSystemResizer(runner, logger),
		xfsResizer:      NewXfsFileSystemResizer(runner, logger),
		btrfsResizer:    NewBtrfsFileSystemResizer(runner, logger),
		fileSystemSizer: NewSigarFileSystemSizer(),
		logger:          logger,
	}
}

func (m linuxDiskManager) GetMountsSearcher() MountsSearcher   { return m.mountsSearcher }
func (m linuxDiskManager) GetPartitionGrower() PartitionGrower { return m.partitionGrower }
func (m linuxDiskManager) GetLuksResizer() LuksResizer         { return m.luksResizer }
func (m linuxDiskManager) GetFileSystemSizer() FileSystemSizer { return m.fileSystemSizer }

// The filesystem kind set is closed and validated at parse time, so any
// other value here is a programming error.
func (m linuxDiskManager) GetFileSystemResizer(fsType devices.FSType) (FileSystemResizer, error) {
	switch fsType {
	case devices.FSTypeExt4:
		return m.ext4Resizer, nil
	case devices.FSTypeXFS:
		return m.xfsResizer, nil
	case devices.FSTypeBtrfs:
		return m.btrfsResizer, nil
	default:
		return nil, bosherr.Errorf("No resizer for filesystem type '%s'", fsType)
	}
}
