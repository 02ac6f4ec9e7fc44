package profile

//go:generate enumer -type=ReleaseType -trimprefix=ReleaseType -transform=snake -json -text -output=releasetype_enumer.go
//go:generate go run github.com/smykla-skalski/mcdirs/tools/enumerfix releasetype_enumer.go

// ReleaseType classifies a game version.
type ReleaseType int

const (
	// ReleaseTypeRelease is a stable release.
	ReleaseTypeRelease ReleaseType = iota

	// ReleaseTypeSnapshot is a development snapshot.
	ReleaseTypeSnapshot

	// ReleaseTypeOldBeta is a pre-1.0 beta version.
	ReleaseTypeOldBeta

	// ReleaseTypeOldAlpha is a pre-1.0 alpha version.
	ReleaseTypeOldAlpha
)

// DefaultReleaseTypes returns the release types a profile allows when it
// does not configure any.
func DefaultReleaseTypes() []ReleaseType {
	return []ReleaseType{ReleaseTypeRelease}
}
