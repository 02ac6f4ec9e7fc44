package profile_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-skalski/mcdirs/pkg/profile"
)

var _ = Describe("LauncherProfile", func() {
	It("uses defaults without options", func() {
		p := profile.New("Latest")

		Expect(p.Name()).To(Equal("Latest"))

		_, ok := p.GameDir()
		Expect(ok).To(BeFalse())

		_, ok = p.LastVersionID()
		Expect(ok).To(BeFalse())

		Expect(p.AllowedReleaseTypes()).To(Equal([]profile.ReleaseType{profile.ReleaseTypeRelease}))
		Expect(p.LastUsed().IsZero()).To(BeTrue())
	})

	It("keeps the game directory verbatim", func() {
		p := profile.New("Share", profile.WithGameDir(`\\server\share\.minecraft_snapshots`))

		dir, ok := p.GameDir()
		Expect(ok).To(BeTrue())
		Expect(dir).To(Equal(`\\server\share\.minecraft_snapshots`))
	})

	It("distinguishes an empty game directory from an absent one", func() {
		dir, ok := profile.New("Empty", profile.WithGameDir("")).GameDir()

		Expect(ok).To(BeTrue())
		Expect(dir).To(BeEmpty())
	})

	It("keeps the default for an empty release type list", func() {
		p := profile.New("x", profile.WithAllowedReleaseTypes())

		Expect(p.AllowedReleaseTypes()).To(Equal(profile.DefaultReleaseTypes()))
	})

	It("does not share release types with callers", func() {
		types := []profile.ReleaseType{profile.ReleaseTypeSnapshot, profile.ReleaseTypeRelease}
		p := profile.New("x", profile.WithAllowedReleaseTypes(types...))

		types[0] = profile.ReleaseTypeOldAlpha
		got := p.AllowedReleaseTypes()
		got[1] = profile.ReleaseTypeOldBeta

		Expect(p.AllowedReleaseTypes()).To(Equal([]profile.ReleaseType{
			profile.ReleaseTypeSnapshot,
			profile.ReleaseTypeRelease,
		}))
	})

	It("records the last used time", func() {
		t := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

		Expect(profile.New("x", profile.WithLastUsed(t)).LastUsed()).To(Equal(t))
	})
})

var _ = Describe("ReleaseType", func() {
	DescribeTable("string codec",
		func(s string, expected profile.ReleaseType) {
			got, err := profile.ReleaseTypeString(s)

			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(expected))
			Expect(got.String()).To(Equal(s))
		},
		Entry("release", "release", profile.ReleaseTypeRelease),
		Entry("snapshot", "snapshot", profile.ReleaseTypeSnapshot),
		Entry("old beta", "old_beta", profile.ReleaseTypeOldBeta),
		Entry("old alpha", "old_alpha", profile.ReleaseTypeOldAlpha),
	)

	It("rejects unknown names", func() {
		_, err := profile.ReleaseTypeString("pending")

		Expect(err).To(HaveOccurred())
	})
})
