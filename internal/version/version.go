// Package version exposes the CLI build version.
package version

import (
	"fmt"
	"runtime"
)

// Version is the semantic version, overridden by ldflags at release time.
var Version = "dev"

// String returns the full human-readable version line.
func String() string {
	return fmt.Sprintf("Lumera %s (%s %s/%s)",
		Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// Short returns just the version number.
func Short() string {
	return Version
}
