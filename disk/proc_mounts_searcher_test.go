package disk_test

import (
	"errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	fakesys "github.com/cloudfoundry/bosh-utils/system/fakes"

	. "github.com/cloudfoundry/hot-resize/disk"
)

var _ = Describe("procMountsSearcher", func() {
	var (
		fs       *fakesys.FakeFileSystem
		searcher MountsSearcher
	)

	BeforeEach(func() {
		fs = fakesys.NewFakeFileSystem()
		searcher = NewProcMountsSearcher(fs)
	})

	Describe("SearchMounts", func() {
		Context("when reading /proc/mounts succeeds", func() {
			BeforeEach(func() {
				err := fs.WriteFileString("/proc/mounts", `none /proc proc rw,nosuid,nodev,noexec 0 0
/dev/vda1 / ext4 rw,relatime,data=ordered 0 0
/dev/mapper/cryptdata /data ext4 rw,relatime 0 0

/dev/vdb1 /mount\040with\040space xfs rw 0 0
malformed-line
`)
				Expect(err).ToNot(HaveOccurred())
			})

			It("returns mounts from /proc/mounts", func() {
				mounts, err := searcher.SearchMounts()
				Expect(err).ToNot(HaveOccurred())
				Expect(mounts).To(Equal([]Mount{
					{PartitionPath: "none", MountPoint: "/proc"},
					{PartitionPath: "/dev/vda1", MountPoint: "/"},
					{PartitionPath: "/dev/mapper/cryptdata", MountPoint: "/data"},
					{PartitionPath: "/dev/vdb1", MountPoint: "/mount with space"},
				}))
			})
		})

		Context("when reading /proc/mounts fails", func() {
			BeforeEach(func() {
				fs.WriteFileString("/proc/mounts", "") //nolint:errcheck
				fs.ReadFileError = errors.New("fake-read-err")
			})

			It("returns error", func() {
				_, err := searcher.SearchMounts()
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("Reading /proc/mounts"))
			})
		})
	})
})
