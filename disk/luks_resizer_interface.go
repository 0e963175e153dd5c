package disk

// LuksResizer grows an open dm-crypt mapping to fill its container. The
// container must already be unlocked; nothing here ever unlocks one.
type LuksResizer interface {
	Resize(mappedPath string) error
}
