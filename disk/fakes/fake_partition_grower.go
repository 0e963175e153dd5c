package fakes

type FakeGrowInput struct {
	DiskPath        string
	PartitionNumber int
}

type FakePartitionGrower struct {
	GrowInputs  []FakeGrowInput
	GrowChanged bool
	GrowErr     error
}

func NewFakePartitionGrower() *FakePartitionGrower {
	return &FakePartitionGrower{GrowChanged: true}
}

func (g *FakePartitionGrower) Grow(diskPath string, partitionNumber int) (bool, error) {
	g.GrowInputs = append(g.GrowInputs, FakeGrowInput{
		DiskPath:        diskPath,
		PartitionNumber: partitionNumber,
	})
	return g.GrowChanged, g.GrowErr
}
