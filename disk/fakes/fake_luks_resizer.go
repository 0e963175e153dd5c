package fakes

type FakeLuksResizer struct {
	ResizeMappedPaths []string
	ResizeErr         error
}

func (r *FakeLuksResizer) Resize(mappedPath string) error {
	r.ResizeMappedPaths = append(r.ResizeMappedPaths, mappedPath)
	return r.ResizeErr
}
