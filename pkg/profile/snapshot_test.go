package profile_test

import (
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-skalski/mcdirs/pkg/profile"
)

const profilesJSON = `{
  "profiles": {
    "c0ffee": {
      "type": "latest-release",
      "lastVersionId": "latest-release",
      "lastUsed": "2024-01-02T03:04:05.000Z"
    },
    "beef": {
      "name": "Snapshots",
      "type": "latest-snapshot",
      "lastVersionId": "latest-snapshot",
      "gameDir": "C:\\Users\\x\\AppData\\Roaming\\.minecraft_snapshots"
    },
    "abc": {
      "name": "Retro",
      "type": "custom",
      "lastVersionId": "b1.7.3",
      "allowedReleaseTypes": ["old_beta", "old_alpha"]
    },
    "dead": {
      "name": "Legacy snapshots",
      "type": "latest-snapshot"
    }
  },
  "selectedProfile": "beef"
}`

var _ = Describe("Snapshot", func() {
	var snap *profile.Snapshot

	BeforeEach(func() {
		var err error

		snap, err = profile.Parse([]byte(profilesJSON))
		Expect(err).NotTo(HaveOccurred())
	})

	It("orders entries by id", func() {
		ids := make([]string, 0, snap.Len())
		for _, e := range snap.Entries() {
			ids = append(ids, e.ID)
		}

		Expect(ids).To(Equal([]string{"abc", "beef", "c0ffee", "dead"}))
	})

	It("gives the default profile an empty name", func() {
		p, err := snap.Lookup("c0ffee")

		Expect(err).NotTo(HaveOccurred())
		Expect(p.Name()).To(BeEmpty())
		Expect(p.LastUsed()).To(Equal(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)))
	})

	It("maps latest-release to a release scan", func() {
		p, err := snap.Lookup("c0ffee")
		Expect(err).NotTo(HaveOccurred())

		_, ok := p.LastVersionID()
		Expect(ok).To(BeFalse())
		Expect(p.AllowedReleaseTypes()).To(Equal([]profile.ReleaseType{profile.ReleaseTypeRelease}))
	})

	It("maps latest-snapshot to a snapshot then release scan", func() {
		for _, key := range []string{"Snapshots", "Legacy snapshots"} {
			p, err := snap.Lookup(key)
			Expect(err).NotTo(HaveOccurred())

			_, ok := p.LastVersionID()
			Expect(ok).To(BeFalse())
			Expect(p.AllowedReleaseTypes()).To(Equal([]profile.ReleaseType{
				profile.ReleaseTypeSnapshot,
				profile.ReleaseTypeRelease,
			}))
		}
	})

	It("keeps configured release types for latest placeholders", func() {
		snap, err := profile.Parse([]byte(`{
			"profiles": {
				"a": {"name": "A", "lastVersionId": "latest-snapshot", "allowedReleaseTypes": ["old_alpha"]},
				"b": {"name": "B", "lastVersionId": "latest-release", "allowedReleaseTypes": ["old_alpha"]}
			}
		}`))
		Expect(err).NotTo(HaveOccurred())

		for _, key := range []string{"A", "B"} {
			p, err := snap.Lookup(key)
			Expect(err).NotTo(HaveOccurred())

			_, ok := p.LastVersionID()
			Expect(ok).To(BeFalse())
			Expect(p.AllowedReleaseTypes()).To(Equal([]profile.ReleaseType{profile.ReleaseTypeOldAlpha}))
		}
	})

	It("keeps explicit ids and release types", func() {
		p, err := snap.Lookup("Retro")
		Expect(err).NotTo(HaveOccurred())

		id, ok := p.LastVersionID()
		Expect(ok).To(BeTrue())
		Expect(id).To(Equal("b1.7.3"))
		Expect(p.AllowedReleaseTypes()).To(Equal([]profile.ReleaseType{
			profile.ReleaseTypeOldBeta,
			profile.ReleaseTypeOldAlpha,
		}))
	})

	It("keeps game directories verbatim", func() {
		p, err := snap.Lookup("beef")
		Expect(err).NotTo(HaveOccurred())

		dir, ok := p.GameDir()
		Expect(ok).To(BeTrue())
		Expect(dir).To(Equal(`C:\Users\x\AppData\Roaming\.minecraft_snapshots`))
	})

	It("returns the selected profile", func() {
		entry, err := snap.Selected()

		Expect(err).NotTo(HaveOccurred())
		Expect(entry.ID).To(Equal("beef"))
		Expect(snap.SelectedID()).To(Equal("beef"))
	})

	It("finds entries by name", func() {
		entry, err := snap.Find("Retro")

		Expect(err).NotTo(HaveOccurred())
		Expect(entry.ID).To(Equal("abc"))
	})

	It("fails for unknown profiles", func() {
		_, err := snap.Lookup("missing")

		Expect(errors.Is(err, profile.ErrProfileNotFound)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring(`"missing"`))
	})

	It("fails without a selected profile", func() {
		empty, err := profile.Parse([]byte(`{"profiles": {}}`))
		Expect(err).NotTo(HaveOccurred())

		_, err = empty.Selected()

		Expect(errors.Is(err, profile.ErrNoSelectedProfile)).To(BeTrue())
	})

	It("does not expose its entries for mutation", func() {
		entries := snap.Entries()
		entries[0] = profile.Entry{ID: "zzz"}

		Expect(snap.Entries()[0].ID).To(Equal("abc"))
	})

	DescribeTable("invalid documents",
		func(data string) {
			_, err := profile.Parse([]byte(data))

			Expect(errors.Is(err, profile.ErrInvalidProfiles)).To(BeTrue())
		},
		Entry("truncated", `{"profiles": {`),
		Entry("profiles is a list", `{"profiles": []}`),
		Entry("unknown release type", `{"profiles": {"a": {"allowedReleaseTypes": ["nightly"]}}}`),
	)
})

var _ = Describe("LoadFile", func() {
	It("records the source path", func() {
		path := filepath.Join(GinkgoT().TempDir(), "launcher_profiles.json")
		Expect(os.WriteFile(path, []byte(profilesJSON), 0o600)).To(Succeed())

		snap, err := profile.LoadFile(path)

		Expect(err).NotTo(HaveOccurred())
		Expect(snap.Source()).To(Equal(path))
		Expect(snap.Len()).To(Equal(4))
		Expect(snap.LoadedAt()).NotTo(BeZero())
	})

	It("fails for a missing file", func() {
		_, err := profile.LoadFile(filepath.Join(GinkgoT().TempDir(), "missing.json"))

		Expect(errors.Is(err, os.ErrNotExist)).To(BeTrue())
	})
})
