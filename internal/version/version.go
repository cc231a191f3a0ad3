package version

// Version information for fuzzymatch
const (
	// Version is the current semantic version of the module
	Version = "0.1.0"

	// ConfigVersion is the newest configuration file format this build reads
	ConfigVersion = 1
)

// Info returns version information as a string
func Info() string {
	return Version
}

// SupportsConfig reports whether a configuration file of format v can be read.
func SupportsConfig(v int) bool {
	return v >= 1 && v <= ConfigVersion
}
