package fakes

import (
	boshdisk "github.com/cloudfoundry/hot-resize/disk"
)

type FakeMountsSearcher struct {
	SearchMountsMounts []boshdisk.Mount
	SearchMountsErr    error

	SearchMountsCallCount int
}

func (s *FakeMountsSearcher) SearchMounts() ([]boshdisk.Mount, error) {
	s.SearchMountsCallCount++
	return s.SearchMountsMounts, s.SearchMountsErr
}
