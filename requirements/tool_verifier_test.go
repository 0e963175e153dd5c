package requirements_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	fakesys "github.com/cloudfoundry/bosh-utils/system/fakes"

	"github.com/cloudfoundry/hot-resize/devices"
	resizeerr "github.com/cloudfoundry/hot-resize/errors"
	. "github.com/cloudfoundry/hot-resize/requirements"
	"github.com/cloudfoundry/hot-resize/topology"
)

var _ = Describe("toolVerifier", func() {
	var (
		fakeCmdRunner *fakesys.FakeCmdRunner
		verifier      Verifier
	)

	BeforeEach(func() {
		fakeCmdRunner = fakesys.NewFakeCmdRunner()
		logger := boshlog.NewLogger(boshlog.LevelNone)
		verifier = NewToolVerifier(fakeCmdRunner, logger)
	})

	ext4Spec := devices.DeviceSpec{Device: "/dev/vda1", FSType: devices.FSTypeExt4, MountPoint: "/"}
	xfsSpec := devices.DeviceSpec{Device: "/dev/vdb1", FSType: devices.FSTypeXFS, MountPoint: "/data"}
	btrfsSpec := devices.DeviceSpec{Device: "/dev/vdc1", FSType: devices.FSTypeBtrfs, MountPoint: "/srv"}

	luksTopology := topology.Topology{
		Partition: topology.Partition{Path: "/dev/vdb1", ParentDiskPath: "/dev/vdb", Number: 1},
		Luks: &topology.LuksLayer{
			ContainerPath: "/dev/vdb1",
			MappedName:    "cryptdata",
			MappedPath:    "/dev/mapper/cryptdata",
		},
		Filesystem: topology.Filesystem{Kind: devices.FSTypeXFS, DevicePath: "/dev/mapper/cryptdata", MountPoint: "/data"},
	}

	Context("when every required tool is on the PATH", func() {
		BeforeEach(func() {
			fakeCmdRunner.AvailableCommands["lsblk"] = true
			fakeCmdRunner.AvailableCommands["growpart"] = true
			fakeCmdRunner.AvailableCommands["resize2fs"] = true
		})

		It("passes", func() {
			err := verifier.Verify([]devices.DeviceSpec{ext4Spec}, []topology.Topology{})
			Expect(err).ToNot(HaveOccurred())
		})

		It("does not require tools for absent filesystem types", func() {
			fakeCmdRunner.AvailableCommands["resize2fs"] = false
			fakeCmdRunner.AvailableCommands["xfs_growfs"] = true

			err := verifier.Verify([]devices.DeviceSpec{xfsSpec}, []topology.Topology{})
			Expect(err).ToNot(HaveOccurred())
		})

		It("does not require cryptsetup without a LUKS layer", func() {
			err := verifier.Verify([]devices.DeviceSpec{ext4Spec}, []topology.Topology{
				{
					Partition:  topology.Partition{Path: "/dev/vda1", ParentDiskPath: "/dev/vda", Number: 1},
					Filesystem: topology.Filesystem{Kind: devices.FSTypeExt4, DevicePath: "/dev/vda1", MountPoint: "/"},
				},
			})
			Expect(err).ToNot(HaveOccurred())
		})
	})

	Context("when a LUKS layer was resolved", func() {
		BeforeEach(func() {
			fakeCmdRunner.AvailableCommands["lsblk"] = true
			fakeCmdRunner.AvailableCommands["growpart"] = true
			fakeCmdRunner.AvailableCommands["xfs_growfs"] = true
		})

		It("requires cryptsetup", func() {
			err := verifier.Verify([]devices.DeviceSpec{xfsSpec}, []topology.Topology{luksTopology})
			Expect(err).To(HaveOccurred())

			missingErr, ok := err.(resizeerr.MissingToolError)
			Expect(ok).To(BeTrue())
			Expect(missingErr.Tools).To(Equal([]string{"cryptsetup"}))
		})

		It("passes once cryptsetup is present", func() {
			fakeCmdRunner.AvailableCommands["cryptsetup"] = true

			err := verifier.Verify([]devices.DeviceSpec{xfsSpec}, []topology.Topology{luksTopology})
			Expect(err).ToNot(HaveOccurred())
		})
	})

	Context("when nothing is on the PATH", func() {
		It("lists every missing tool in sorted order", func() {
			err := verifier.Verify(
				[]devices.DeviceSpec{ext4Spec, xfsSpec, btrfsSpec},
				[]topology.Topology{luksTopology},
			)
			Expect(err).To(HaveOccurred())

			missingErr, ok := err.(resizeerr.MissingToolError)
			Expect(ok).To(BeTrue())
			Expect(missingErr.Tools).To(Equal([]string{
				"btrfs", "cryptsetup", "growpart", "lsblk", "resize2fs", "xfs_growfs",
			}))
			Expect(err.Error()).To(Equal(
				"Missing required tools: btrfs, cryptsetup, growpart, lsblk, resize2fs, xfs_growfs",
			))
		})
	})
})
