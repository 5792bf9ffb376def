// Package platform detects the host operating system using gopsutil.
package platform

import (
	"context"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/host"
	"github.com/xvierd/prank-cli/internal/ports"
)

// OverrideEnv forces the detected platform, e.g. PRANK_PLATFORM=windows.
const OverrideEnv = "PRANK_PLATFORM"

// detectTimeout bounds the host lookup; detection runs once at startup.
const detectTimeout = 2 * time.Second

// Detector implements the ports.PlatformDetector interface using gopsutil.
type Detector struct {
	info   func(ctx context.Context) (*host.InfoStat, error)
	getenv func(string) string
	goos   string
}

// NewDetector creates a new platform detector.
func NewDetector() *Detector {
	return &Detector{
		info:   host.InfoWithContext,
		getenv: os.Getenv,
		goos:   runtime.GOOS,
	}
}

// Ensure Detector implements ports.PlatformDetector.
var _ ports.PlatformDetector = (*Detector)(nil)

// Detect returns a lower-case platform identifier.
// Linux running under WSL reports "windows-wsl" since the screen is viewed on Windows.
func (d *Detector) Detect() string {
	if override := strings.TrimSpace(d.getenv(OverrideEnv)); override != "" {
		return strings.ToLower(override)
	}

	ctx, cancel := context.WithTimeout(context.Background(), detectTimeout)
	defer cancel()

	info, err := d.info(ctx)
	if err != nil || info == nil || info.OS == "" {
		return d.goos
	}

	osName := strings.ToLower(info.OS)
	if osName == "linux" && isWSL(info.KernelVersion) {
		return "windows-wsl"
	}
	return osName
}

// isWSL reports whether a Linux kernel version string belongs to WSL.
func isWSL(kernelVersion string) bool {
	k := strings.ToLower(kernelVersion)
	return strings.Contains(k, "microsoft") || strings.Contains(k, "wsl")
}
