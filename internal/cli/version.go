package cli

// Version is the release label shown by the version command.
const Version = "1.0.0 beta"

// VersionLabel returns the full version line.
func VersionLabel() string {
	return "Version " + Version
}
