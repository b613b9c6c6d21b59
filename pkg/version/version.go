// Package version provides version information for the ratequorum application.
package version

// Version is the current version of the ratequorum application.
const Version = "0.2.0"

// AgentString returns the full agent string with versioning.
// Format: @zecwatch/ratequorum@v{version}
func AgentString() string {
	return "@zecwatch/ratequorum@v" + Version
}
