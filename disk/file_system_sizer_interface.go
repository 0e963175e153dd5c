package disk

type FileSystemSizer interface {
	GetFileSystemSizeInBytes(mountPoint string) (uint64, error)
}
