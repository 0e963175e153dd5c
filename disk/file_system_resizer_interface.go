package disk

// FileSystemResizer grows a mounted filesystem to fill the layer hosting
// it. All implementations take the online path only; the filesystem must
// stay mounted throughout.
type FileSystemResizer interface {
	Resize(devicePath, mountPoint string) error
}
