package common

import (
	"fmt"
	"os"
	"strings"
)

// DefaultBuildRoot is the output tree segment generated file paths are rooted under.
const DefaultBuildRoot = "bin"

// MissingBuildRootMarkerError reports an output path that is not rooted under the build tree.
type MissingBuildRootMarkerError struct {
	Path   string
	Marker string
}

func (e *MissingBuildRootMarkerError) Error() string {
	return fmt.Sprintf("path %q does not contain build root segment %q", e.Path, e.Marker)
}

// StripBuildRoot returns the part of path that follows the first segment equal to marker,
// so it can be used in #include directives regardless of where the build tree is mounted.
// Example: StripBuildRoot("/out/bin/lib/foo.h", "bin") => "lib/foo.h"
func StripBuildRoot(path, marker string) (string, error) {
	return stripBuildRoot(path, marker, string(os.PathSeparator))
}

func stripBuildRoot(path, marker, sep string) (string, error) {
	if marker != "" {
		segments := strings.Split(path, sep)
		for i, seg := range segments {
			if seg != marker {
				continue
			}
			if rest := strings.Join(segments[i+1:], sep); rest != "" {
				return rest, nil
			}
			break
		}
	}
	return "", &MissingBuildRootMarkerError{Path: path, Marker: marker}
}
