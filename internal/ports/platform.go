package ports

// PlatformDetector reports the host operating system family.
type PlatformDetector interface {
	// Detect returns an identifier such as "windows", "darwin" or "linux".
	Detect() string
}
