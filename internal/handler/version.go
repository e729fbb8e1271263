package handler

import (
	"net/http"
	"runtime"
)

// VersionInfo contains version and build information
type VersionInfo struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	BuildTime string `json:"build_time,omitempty"`
	GitCommit string `json:"git_commit,omitempty"`
}

// Build-time variables (injected via ldflags)
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unset"
)

// HandleVersion returns version information about the running service.
// configured is the VERSION from the environment, used when no build-time version was injected.
func HandleVersion(service, configured string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, VersionInfo{
			Service:   service,
			Version:   resolveVersion(configured),
			GoVersion: runtime.Version(),
			BuildTime: BuildTime,
			GitCommit: GitCommit,
		})
	}
}

// resolveVersion prefers the build-time version, then the configured one
func resolveVersion(configured string) string {
	if Version != "dev" && Version != "" {
		return Version
	}
	if configured != "" {
		return configured
	}
	return "dev"
}
