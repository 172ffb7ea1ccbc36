// Package buildinfo carries the version stamped into the firmware and host
// tools:
//
//	go build -ldflags "-X logic/internal/buildinfo.Version=v1.2.0 -X logic/internal/buildinfo.Commit=$(git rev-parse --short HEAD)"
package buildinfo

// Version is set at build time via -ldflags.
var Version = "dev"

// Commit is set at build time via -ldflags.
var Commit = "unknown"

// Date is set at build time via -ldflags.
var Date = "unknown"

// Short returns a compact build identifier for the log and window title.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// Long returns the version with the commit and build date when known.
func Long() string {
	s := Short()
	if Commit != "" && Commit != "unknown" && s != Commit {
		s += " (" + Commit + ")"
	}
	if Date != "" && Date != "unknown" {
		s += " built " + Date
	}
	return s
}
