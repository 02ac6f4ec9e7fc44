package resolve_test

import (
	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/smykla-skalski/mcdirs/internal/directory"
	"github.com/smykla-skalski/mcdirs/internal/resolve"
	"github.com/smykla-skalski/mcdirs/pkg/logger"
	"github.com/smykla-skalski/mcdirs/pkg/profile"
)

var _ = Describe("VersionResolver", func() {
	var (
		ctrl     *gomock.Controller
		factory  *resolve.MockVersionDirectoryFactory
		list     *resolve.MockVersionList
		resolver *resolve.VersionResolver
	)

	dir := func(path string, valid bool) *directory.MockDirectory {
		d := directory.NewMockDirectory(ctrl)
		d.EXPECT().Path().Return(path).AnyTimes()
		d.EXPECT().IsValid().Return(valid).AnyTimes()

		return d
	}

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		factory = resolve.NewMockVersionDirectoryFactory(ctrl)
		list = resolve.NewMockVersionList(ctrl)
		resolver = resolve.NewVersionResolver(factory, list, logger.NewNoOpLogger())
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("with an explicit version id", func() {
		It("should return the directory for that id when valid", func() {
			factory.EXPECT().CreateVersionDirectory("1.20.4").Return(dir("/v/1.20.4", true))

			result, err := resolver.Resolve(profile.New("Pinned", profile.WithLastVersionID("1.20.4")))

			Expect(err).NotTo(HaveOccurred())
			Expect(result.Path()).To(Equal("/v/1.20.4"))
		})

		It("should fail without scanning when the id is not installed", func() {
			factory.EXPECT().CreateVersionDirectory("b1.7.3").Return(dir("/v/b1.7.3", false))
			list.EXPECT().FirstValidForType(gomock.Any()).Times(0)

			result, err := resolver.Resolve(profile.New("Retro",
				profile.WithLastVersionID("b1.7.3"),
				profile.WithAllowedReleaseTypes(profile.ReleaseTypeOldBeta, profile.ReleaseTypeRelease),
			))

			Expect(result).To(BeNil())
			Expect(err).To(MatchError(resolve.ErrNotFound))
			Expect(err.Error()).To(Equal("cannot find valid version directory for launcher profile 'Retro'"))

			var nf *resolve.NotFoundError
			Expect(errors.As(err, &nf)).To(BeTrue())
			Expect(nf.Kind).To(Equal(resolve.KindVersionDirectory))
			Expect(nf.ConfiguredPath).To(BeEmpty())
		})
	})

	Context("without a version id", func() {
		It("should return the first valid stable release by default", func() {
			factory.EXPECT().CreateVersionDirectory(gomock.Any()).Times(0)
			list.EXPECT().FirstValidForType(profile.ReleaseTypeRelease).Return(dir("/v/1.21", true), true)

			result, err := resolver.Resolve(profile.New("Latest"))

			Expect(err).NotTo(HaveOccurred())
			Expect(result.Path()).To(Equal("/v/1.21"))
		})

		It("should fail when no stable release is installed", func() {
			list.EXPECT().FirstValidForType(profile.ReleaseTypeRelease).Return(nil, false)

			_, err := resolver.Resolve(profile.New("Latest"))

			Expect(err).To(MatchError(ContainSubstring("launcher profile 'Latest'")))
			Expect(errors.Is(err, resolve.ErrNotFound)).To(BeTrue())
		})

		It("should try release types in profile order and stop at the first hit", func() {
			gomock.InOrder(
				list.EXPECT().FirstValidForType(profile.ReleaseTypeSnapshot).Return(nil, false),
				list.EXPECT().FirstValidForType(profile.ReleaseTypeOldAlpha).Return(dir("/v/a1.2.6", true), true),
			)
			list.EXPECT().FirstValidForType(profile.ReleaseTypeRelease).Times(0)

			result, err := resolver.Resolve(profile.New("Mixed", profile.WithAllowedReleaseTypes(
				profile.ReleaseTypeSnapshot,
				profile.ReleaseTypeOldAlpha,
				profile.ReleaseTypeRelease,
			)))

			Expect(err).NotTo(HaveOccurred())
			Expect(result.Path()).To(Equal("/v/a1.2.6"))
		})

		It("should fail after every type misses", func() {
			list.EXPECT().FirstValidForType(profile.ReleaseTypeSnapshot).Return(nil, false)
			list.EXPECT().FirstValidForType(profile.ReleaseTypeRelease).Return(nil, false)

			_, err := resolver.Resolve(profile.New("Both", profile.WithAllowedReleaseTypes(
				profile.ReleaseTypeSnapshot,
				profile.ReleaseTypeRelease,
			)))

			Expect(err).To(MatchError(resolve.ErrNotFound))
		})

		It("should return equal results on repeated calls", func() {
			d := dir("/v/1.21", true)
			list.EXPECT().FirstValidForType(profile.ReleaseTypeRelease).Return(d, true).Times(2)

			p := profile.New("Latest")
			first, err := resolver.Resolve(p)
			Expect(err).NotTo(HaveOccurred())

			second, err := resolver.Resolve(p)
			Expect(err).NotTo(HaveOccurred())

			Expect(second).To(Equal(first))
		})
	})
})
