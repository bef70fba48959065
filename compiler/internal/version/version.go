package version

import "fmt"

// Overridable at link time:
//
//	go build -ldflags "-X .../internal/version.Version=0.3.0"
var (
	Version = "0.2.0-dev"
	Commit  = ""
)

func String() string {
	if Commit == "" {
		return fmt.Sprintf("sysyc %s", Version)
	}
	return fmt.Sprintf("sysyc %s (%s)", Version, Commit)
}
