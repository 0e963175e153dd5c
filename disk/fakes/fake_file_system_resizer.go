package fakes

type FakeResizeInput struct {
	DevicePath string
	MountPoint string
}

type FakeFileSystemResizer struct {
	ResizeInputs []FakeResizeInput
	ResizeErr    error
}

func (r *FakeFileSystemResizer) Resize(devicePath, mountPoint string) error {
	r.ResizeInputs = append(r.ResizeInputs, FakeResizeInput{
		DevicePath: devicePath,
		MountPoint: mountPoint,
	})
	return r.ResizeErr
}
