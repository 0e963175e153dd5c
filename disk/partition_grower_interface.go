package disk

// PartitionGrower extends a partition's boundary to consume newly
// available space on its parent disk, without touching filesystem
// contents. Growing a partition that is already at maximum size is
// success, not an error.
type PartitionGrower interface {
	Grow(diskPath string, partitionNumber int) (changed bool, err error)
}
