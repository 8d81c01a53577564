package common

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// Version is set via ldflags at build time:
// -ldflags "-X github.com/Alia5/accessorgen/internal/codegen/common.Version=x.y.z"
var Version = ""

const devVersion = "0.0.1-dev"

// Provenance identifies the generator build and the descriptor a file was generated from.
type Provenance struct {
	Version      string
	Major        int
	Minor        int
	Patch        int
	SourceDigest string // hex BLAKE2b-256 of the raw descriptor bytes
}

// GeneratorVersion returns Version without its "v" prefix, or a dev version when unset.
func GeneratorVersion() (string, error) {
	if Version == "" {
		return devVersion, nil
	}
	v := strings.TrimPrefix(Version, "v")
	if base, _, _ := strings.Cut(v, "-"); !strings.Contains(base, ".") {
		return "", fmt.Errorf("invalid version format: %s (expected x.y.z)", Version)
	}
	return v, nil
}

// SplitVersion extracts major, minor and patch from "1.2.3" or "1.2.3-dirty".
// Missing or non-numeric components are zero.
func SplitVersion(version string) (major, minor, patch int) {
	base, _, _ := strings.Cut(version, "-")
	nums := strings.SplitN(base, ".", 3)
	parts := []*int{&major, &minor, &patch}
	for i, n := range nums {
		*parts[i], _ = strconv.Atoi(n)
	}
	return
}

// SourceDigest returns the hex BLAKE2b-256 digest of descriptor bytes.
func SourceDigest(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// NewProvenance stamps the current generator version and the digest of data.
func NewProvenance(data []byte) (Provenance, error) {
	version, err := GeneratorVersion()
	if err != nil {
		return Provenance{}, err
	}
	major, minor, patch := SplitVersion(version)
	return Provenance{
		Version:      version,
		Major:        major,
		Minor:        minor,
		Patch:        patch,
		SourceDigest: SourceDigest(data),
	}, nil
}
