package commands

// Common constants used across command implementations
const (
	// Command usage patterns
	OptionsUsage = "[OPTIONS]"

	// BinaryName is the tool's executable name as shown in help examples
	BinaryName = "uepyside"
)
