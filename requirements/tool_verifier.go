package requirements

import (
	"sort"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"

	"github.com/cloudfoundry/hot-resize/devices"
	resizeerr "github.com/cloudfoundry/hot-resize/errors"
	"github.com/cloudfoundry/hot-resize/topology"
)

type toolVerifier struct {
	cmdRunner boshsys.CmdRunner
	logger    boshlog.Logger
	logTag    string
}

func NewToolVerifier(cmdRunner boshsys.CmdRunner, logger boshlog.Logger) Verifier {
	return toolVerifier{
		cmdRunner: cmdRunner,
		logger:    logger,
		logTag:    "ToolVerifier",
	}
}

// Verify reports every missing tool at once rather than failing on the
// first one, so a single run tells the operator everything to install.
func (v toolVerifier) Verify(specs []devices.DeviceSpec, topologies []topology.Topology) error {
	required := v.requiredTools(specs, topologies)
	v.logger.Debug(v.logTag, "Required tools: %v", required)

	missing := []string{}
	for _, tool := range required {
		if !v.cmdRunner.CommandExists(tool) {
			missing = append(missing, tool)
		}
	}

	if len(missing) > 0 {
		return resizeerr.MissingToolError{Tools: missing}
	}

	return nil
}

func (v toolVerifier) requiredTools(specs []devices.DeviceSpec, topologies []topology.Topology) []string {
	required := map[string]bool{
		"lsblk":    true,
		"growpart": true,
	}

	for _, spec := range specs {
		switch spec.FSType {
		case devices.FSTypeExt4:
			required["resize2fs"] = true
		case devices.FSTypeXFS:
			required["xfs_growfs"] = true
		case devices.FSTypeBtrfs:
			required["btrfs"] = true
		}
	}

	for _, topo := range topologies {
		if topo.HasLuks() {
			required["cryptsetup"] = true
		}
	}

	tools := make([]string, 0, len(required))
	for tool := range required {
		tools = append(tools, tool)
	}
	sort.Strings(tools)

	return tools
}
