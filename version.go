package enterprise

import (
	"fmt"
	"runtime"
)

// Build metadata. GitCommit and BuildDate are set with
// -ldflags "-X github.com/redis-developer/redis-enterprise-go.GitCommit=...".
var (
	Version   = "v0.4.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// BuildInfo identifies the library build a Client runs with.
type BuildInfo struct {
	Version   string
	GitCommit string
	BuildDate string
	GoVersion string
}

// CurrentBuild returns the build metadata of this binary.
func CurrentBuild() BuildInfo {
	return BuildInfo{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
	}
}

func (b BuildInfo) String() string {
	return fmt.Sprintf("redis-enterprise-go %s (commit %s, built %s, %s)",
		b.Version, b.GitCommit, b.BuildDate, b.GoVersion)
}

// DefaultUserAgent is sent when Config.UserAgent is empty.
func DefaultUserAgent() string {
	return "redis-enterprise-go/" + Version
}
