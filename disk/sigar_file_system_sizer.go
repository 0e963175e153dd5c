package disk

import (
	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	sigar "github.com/cloudfoundry/gosigar"
)

type sigarFileSystemSizer struct{}

func NewSigarFileSystemSizer() FileSystemSizer {
	return sigarFileSystemSizer{}
}

func (s sigarFileSystemSizer) GetFileSystemSizeInBytes(mountPoint string) (uint64, error) {
	usage := sigar.FileSystemUsage{}

	err := usage.Get(mountPoint)
	if err != nil {
		return 0, bosherr.WrapErrorf(err, "Getting filesystem usage for '%s'", mountPoint)
	}

	// sigar reports kilobytes
	return usage.Total * 1024, nil
}
