package devices

import (
	"encoding/json"
	"fmt"
	"strings"

	resizeerr "github.com/cloudfoundry/hot-resize/errors"
)

type FSType string

const (
	FSTypeExt4  FSType = "ext4"
	FSTypeXFS   FSType = "xfs"
	FSTypeBtrfs FSType = "btrfs"
)

// DeviceSpec describes one storage stack to grow. Specs are immutable
// once parsed; the order of the input array is the processing order.
type DeviceSpec struct {
	Device     string `json:"device"`
	FSType     FSType `json:"fs_type"`
	MountPoint string `json:"mount_point"`
}

// ParseBatch decodes and validates the JSON device array. Any defect in
// the input fails the whole batch before anything else happens.
func ParseBatch(input []byte) ([]DeviceSpec, error) {
	var specs []DeviceSpec

	err := json.Unmarshal(input, &specs)
	if err != nil {
		return nil, resizeerr.ValidationError{Reason: fmt.Sprintf("parsing devices JSON: %s", err.Error())}
	}

	if len(specs) == 0 {
		return nil, resizeerr.ValidationError{Reason: "devices array is empty"}
	}

	for i := range specs {
		specs[i].FSType = FSType(strings.ToLower(string(specs[i].FSType)))

		err := specs[i].validate()
		if err != nil {
			return nil, resizeerr.ValidationError{Reason: fmt.Sprintf("devices[%d]: %s", i, err.Error())}
		}
	}

	return specs, nil
}

func (s DeviceSpec) validate() error {
	if s.Device == "" {
		return fmt.Errorf("'device' is required")
	}

	if s.MountPoint == "" {
		return fmt.Errorf("'mount_point' is required")
	}

	switch s.FSType {
	case FSTypeExt4, FSTypeXFS, FSTypeBtrfs:
		return nil
	case "":
		return fmt.Errorf("'fs_type' is required")
	default:
		return fmt.Errorf("'fs_type' must be one of ext4, xfs, btrfs, got '%s'", s.FSType)
	}
}
