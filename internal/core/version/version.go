// Package version reports what build of internhasha is running
package version

import "runtime/debug"

// Service is the name reported by the gateway and the CLI
const Service = "internhasha"

// Set with -ldflags "-X internhasha/internal/core/version.version=v0.1.0 ...".
// When unset, commit and date come from the module's embedded VCS stamp
var (
	version = "dev"
	commit  = ""
	date    = ""
)

// readBuildInfo is swapped in tests
var readBuildInfo = debug.ReadBuildInfo

// BuildInfo is the payload of GET /meta/version and `internhasha version`
type BuildInfo struct {
	Service string `json:"service" yaml:"service"`
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit"  yaml:"commit"`
	Date    string `json:"date"    yaml:"date"`
}

// Info returns the build information
func Info() BuildInfo {
	bi := BuildInfo{Service: Service, Version: version, Commit: commit, Date: date}
	if info, ok := readBuildInfo(); ok {
		for _, s := range info.Settings {
			switch {
			case s.Key == "vcs.revision" && bi.Commit == "":
				bi.Commit = s.Value
			case s.Key == "vcs.time" && bi.Date == "":
				bi.Date = s.Value
			}
		}
	}
	if bi.Commit == "" {
		bi.Commit = "none"
	}
	if bi.Date == "" {
		bi.Date = "unknown"
	}
	return bi
}
