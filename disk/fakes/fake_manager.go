package fakes

import (
	"github.com/cloudfoundry/hot-resize/devices"
	boshdisk "github.com/cloudfoundry/hot-resize/disk"
)

type FakeDiskManager struct {
	FakeMountsSearcher  *FakeMountsSearcher
	FakePartitionGrower *FakePartitionGrower
	FakeLuksResizer     *FakeLuksResizer
	FakeExt4Resizer     *FakeFileSystemResizer
	FakeXfsResizer      *FakeFileSystemResizer
	FakeBtrfsResizer    *FakeFileSystemResizer
	FakeFileSystemSizer *FakeFileSystemSizer

	GetFileSystemResizerErr error
}

func NewFakeDiskManager() *FakeDiskManager {
	return &FakeDiskManager{
		FakeMountsSearcher:  &FakeMountsSearcher{},
		FakePartitionGrower: NewFakePartitionGrower(),
		FakeLuksResizer:     &FakeLuksResizer{},
		FakeExt4Resizer:     &FakeFileSystemResizer{},
		FakeXfsResizer:      &FakeFileSystemResizer{},
		FakeBtrfsResizer:    &FakeFileSystemResizer{},
		FakeFileSystemSizer: NewFakeFileSystemSizer(),
	}
}

func (m *FakeDiskManager) GetMountsSearcher() boshdisk.MountsSearcher {
	return m.FakeMountsSearcher
}

func (m *FakeDiskManager) GetPartitionGrower() boshdisk.PartitionGrower {
	return m.FakePartitionGrower
}

func (m *FakeDiskManager) GetLuksResizer() boshdisk.LuksResizer {
	return m.FakeLuksResizer
}

func (m *FakeDiskManager) GetFileSystemSizer() boshdisk.FileSystemSizer {
	return m.FakeFileSystemSizer
}

func (m *FakeDiskManager) GetFileSystemResizer(fsType devices.FSType) (boshdisk.FileSystemResizer, error) {
	if m.GetFileSystemResizerErr != nil {
		return nil, m.GetFileSystemResizerErr
	}

	switch fsType {
	case devices.FSTypeXFS:
		return m.FakeXfsResizer, nil
	case devices.FSTypeBtrfs:
		return m.FakeBtrfsResizer, nil
	default:
		return m.FakeExt4Resizer, nil
	}
}
