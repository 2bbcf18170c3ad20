// Package buildinfo carries version metadata stamped by the linker.
//
//	go build -ldflags "-X 'github.com/m3rciful/gamebot/core/buildinfo.Version=v1.0.0' \
//	  -X 'github.com/m3rciful/gamebot/core/buildinfo.Commit=$(git rev-parse --short HEAD)' \
//	  -X 'github.com/m3rciful/gamebot/core/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)'" ./cmd/gamebot
package buildinfo

// Defaults apply to local builds.
var (
	Version = "dev"
	Commit  = "local"
	Date    = ""
)
