package disk_test

import (
	"errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	fakesys "github.com/cloudfoundry/bosh-utils/system/fakes"

	. "github.com/cloudfoundry/hot-resize/disk"
	resizeerr "github.com/cloudfoundry/hot-resize/errors"
)

var _ = Describe("growpartPartitionGrower", func() {
	var (
		fakeCmdRunner *fakesys.FakeCmdRunner
		grower        PartitionGrower
	)

	BeforeEach(func() {
		fakeCmdRunner = fakesys.NewFakeCmdRunner()
		logger := boshlog.NewLogger(boshlog.LevelNone)
		grower = NewGrowpartPartitionGrower(fakeCmdRunner, logger)
	})

	Describe("Grow", func() {
		It("invokes growpart with the disk path and partition number", func() {
			fakeCmdRunner.AddCmdResult(
				"growpart /dev/vda 1",
				fakesys.FakeCmdResult{Stdout: "CHANGED: partition=1 start=2048 old: size=41940992 end=41943040 new: size=83883999 end=83886047"},
			)

			changed, err := grower.Grow("/dev/vda", 1)
			Expect(err).ToNot(HaveOccurred())
			Expect(changed).To(BeTrue())
			Expect(fakeCmdRunner.RunCommands).To(Equal([][]string{
				{"growpart", "/dev/vda", "1"},
			}))
		})

		Context("when the partition is already at maximum size", func() {
			It("treats exit status 2 as success", func() {
				fakeCmdRunner.AddCmdResult(
					"growpart /dev/vda 1",
					fakesys.FakeCmdResult{
						Stdout:     "NOCHANGE: partition 1 is size 83883999. it cannot be grown",
						ExitStatus: 2,
						Error:      errors.New("exit status 2"),
					},
				)

				changed, err := grower.Grow("/dev/vda", 1)
				Expect(err).ToNot(HaveOccurred())
				Expect(changed).To(BeFalse())
			})

			It("treats a NOCHANGE diagnostic as success regardless of exit status", func() {
				fakeCmdRunner.AddCmdResult(
					"growpart /dev/nvme0n1 3",
					fakesys.FakeCmdResult{
						Stdout:     "NOCHANGE: partition 3 is size 524288. it cannot be grown",
						ExitStatus: 1,
						Error:      errors.New("exit status 1"),
					},
				)

				changed, err := grower.Grow("/dev/nvme0n1", 3)
				Expect(err).ToNot(HaveOccurred())
				Expect(changed).To(BeFalse())
			})
		})

		Context("when growpart fails", func() {
			It("returns an execution error carrying the captured stderr", func() {
				fakeCmdRunner.AddCmdResult(
					"growpart /dev/vda 1",
					fakesys.FakeCmdResult{
						Stderr:     "FAILED: partition-number must be a number",
						ExitStatus: 1,
						Error:      errors.New("exit status 1"),
					},
				)

				_, err := grower.Grow("/dev/vda", 1)
				Expect(err).To(HaveOccurred())

				var execErr resizeerr.ExecutionError
				Expect(errors.As(err, &execErr)).To(BeTrue())
				Expect(execErr.Tool).To(Equal("growpart"))
				Expect(execErr.ExitStatus).To(Equal(1))
				Expect(execErr.Stderr).To(ContainSubstring("FAILED"))
			})
		})
	})
})
