// Package buildinfo exposes build metadata stamped into the binary with
// -ldflags, for example:
//
//	go build -ldflags "-X github.com/jsamuelsen11/graceful-shutdown/internal/platform/buildinfo.Version=1.2.0"
//
// Values not stamped at link time fall back to the VCS settings recorded by
// the Go toolchain, then to "unknown".
package buildinfo

import (
	"runtime/debug"
	"sync"
)

const unknown = "unknown"

// Set via -ldflags -X.
var (
	Version        string
	GitVersion     string
	BuildTime      string
	LastCommitTime string
	LastCommitHash string
	LastCommitUser string
)

// Info is a snapshot of the build metadata.
type Info struct {
	Version        string
	GitVersion     string
	BuildTime      string
	LastCommitTime string
	LastCommitHash string
	LastCommitUser string
}

var (
	once   sync.Once
	cached Info
)

// Get returns the build metadata, resolved once per process.
func Get() Info {
	once.Do(func() {
		cached = resolve(Info{
			Version:        Version,
			GitVersion:     GitVersion,
			BuildTime:      BuildTime,
			LastCommitTime: LastCommitTime,
			LastCommitHash: LastCommitHash,
			LastCommitUser: LastCommitUser,
		}, debug.ReadBuildInfo)
	})
	return cached
}

// resolve fills empty fields from the toolchain build info.
func resolve(in Info, read func() (*debug.BuildInfo, bool)) Info {
	if bi, ok := read(); ok {
		if in.Version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			in.Version = bi.Main.Version
		}
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if in.LastCommitHash == "" {
					in.LastCommitHash = s.Value
				}
			case "vcs.time":
				if in.LastCommitTime == "" {
					in.LastCommitTime = s.Value
				}
			}
		}
	}

	for _, f := range []*string{
		&in.Version, &in.GitVersion, &in.BuildTime,
		&in.LastCommitTime, &in.LastCommitHash, &in.LastCommitUser,
	} {
		if *f == "" {
			*f = unknown
		}
	}
	return in
}
