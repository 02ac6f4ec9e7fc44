package dotminecraft_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-skalski/mcdirs/internal/directory"
	"github.com/smykla-skalski/mcdirs/internal/dotminecraft"
	"github.com/smykla-skalski/mcdirs/internal/resolve"
)

var (
	_ resolve.RootProvider            = (*dotminecraft.Installation)(nil)
	_ resolve.ProfileDirectoryFactory = (*dotminecraft.Installation)(nil)
	_ resolve.VersionDirectoryFactory = (*dotminecraft.Installation)(nil)
	_ resolve.VersionList             = (*dotminecraft.VersionList)(nil)
)

var _ = Describe("Installation", func() {
	var (
		root string
		inst *dotminecraft.Installation
	)

	BeforeEach(func() {
		root = filepath.Join(GinkgoT().TempDir(), ".minecraft")
		inst = dotminecraft.NewInstallation(root)
	})

	It("should expose the root and its well-known paths", func() {
		Expect(inst.DefaultRootPath()).To(Equal(root))
		Expect(inst.VersionsDir()).To(Equal(filepath.Join(root, "versions")))
		Expect(inst.LibrariesDir()).To(Equal(filepath.Join(root, "libraries")))
		Expect(inst.LauncherProfilesFile()).To(Equal(filepath.Join(root, "launcher_profiles.json")))
	})

	It("should keep UNC roots verbatim", func() {
		unc := dotminecraft.NewInstallation(`\\server\share\.minecraft`)

		Expect(unc.DefaultRootPath()).To(Equal(`\\server\share\.minecraft`))
	})

	It("should require the libraries directory to be valid", func() {
		Expect(inst.IsValid()).To(BeFalse())

		Expect(os.MkdirAll(root, 0o700)).To(Succeed())
		Expect(inst.IsValid()).To(BeFalse())

		Expect(os.MkdirAll(inst.LibrariesDir(), 0o700)).To(Succeed())
		Expect(inst.IsValid()).To(BeTrue())
	})

	It("should not treat a libraries file as a directory", func() {
		Expect(os.MkdirAll(root, 0o700)).To(Succeed())
		Expect(os.WriteFile(inst.LibrariesDir(), nil, 0o600)).To(Succeed())

		Expect(inst.IsValid()).To(BeFalse())
	})

	It("should create profile directories for arbitrary paths", func() {
		d := inst.CreateProfileDirectory("/srv/modded")

		Expect(d).To(BeAssignableToTypeOf(&directory.ProfileDirectory{}))
		Expect(d.Path()).To(Equal("/srv/modded"))
	})

	It("should create version directories inside the versions directory", func() {
		installVersion(root, "1.20.4", "release", "2023-12-07T12:56:20+00:00", true)

		d := inst.CreateVersionDirectory("1.20.4")

		Expect(d.Path()).To(Equal(filepath.Join(root, "versions", "1.20.4")))
		Expect(d.IsValid()).To(BeTrue())
		Expect(inst.CreateVersionDirectory("1.8.9").IsValid()).To(BeFalse())
	})
})
