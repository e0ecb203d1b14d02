package domain

import "strings"

// HostFacts describes the machine mars runs on.
type HostFacts struct {
	// Triple is the host target triple, e.g. "x86_64-unknown-linux-gnu".
	Triple string
	// OS is the GOOS of the host.
	OS string
	// Arch is the cpu name as it appears in target triples ("x86_64", "i686", "aarch64").
	Arch string
	// HasGold reports whether ld.gold is on PATH.
	HasGold bool
	// HomeDir is the user's home directory.
	HomeDir string
}

// IsWindows reports whether the host runs windows.
func (h HostFacts) IsWindows() bool {
	return h.OS == "windows"
}

// IsMacOS reports whether the host runs macOS.
func (h HostFacts) IsMacOS() bool {
	return h.OS == "darwin" || strings.Contains(h.Triple, "apple-darwin")
}

// IsLinux reports whether the host runs linux.
func (h HostFacts) IsLinux() bool {
	return h.OS == "linux"
}

// BinSuffix is the executable suffix on the host.
func (h HostFacts) BinSuffix() string {
	if h.IsWindows() {
		return ".exe"
	}
	return ""
}
