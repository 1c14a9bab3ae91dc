package feesplit

import "fmt"

// Release of the application. Bump Minor for new messages or queries and
// Major when stored models change.
const (
	Major = 0
	Minor = 1
	Patch = 0
)

// PreRelease is appended to untagged builds.
const PreRelease = "-dev"

// GitCommit is set at link time:
//
//	go build -ldflags "-X github.com/iov-one/feesplit.GitCommit=$(git rev-parse --short HEAD)"
var GitCommit = ""

// Version returns the release, followed by the commit when known.
func Version() string {
	v := fmt.Sprintf("v%d.%d.%d%s", Major, Minor, Patch, PreRelease)
	if GitCommit == "" {
		return v
	}
	return v + " " + GitCommit
}
