package fakes

type FakeFileSystemSizer struct {
	// Sizes are returned per mount point in call order, so a test can
	// script distinct before/after probes.
	Sizes      map[string][]uint64
	GetSizeErr error

	GetSizeMountPoints []string
}

func NewFakeFileSystemSizer() *FakeFileSystemSizer {
	return &FakeFileSystemSizer{Sizes: map[string][]uint64{}}
}

func (s *FakeFileSystemSizer) GetFileSystemSizeInBytes(mountPoint string) (uint64, error) {
	s.GetSizeMountPoints = append(s.GetSizeMountPoints, mountPoint)

	if s.GetSizeErr != nil {
		return 0, s.GetSizeErr
	}

	sizes := s.Sizes[mountPoint]
	if len(sizes) == 0 {
		return 0, nil
	}

	size := sizes[0]
	if len(sizes) > 1 {
		s.Sizes[mountPoint] = sizes[1:]
	}
	return size, nil
}
