package version

// Set via ldflags during release builds.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// GetVersion returns the version string.
func GetVersion() string {
	return Version
}
