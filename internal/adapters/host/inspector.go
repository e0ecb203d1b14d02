// Package host reports facts about the machine mars runs on.
package host

import (
	"os"
	"os/exec"
	"runtime"

	"go.trai.ch/mars/internal/core/domain"
	"go.trai.ch/mars/internal/core/ports"
)

var _ ports.HostInspector = (*Inspector)(nil)

// Inspector implements ports.HostInspector from the Go runtime and PATH.
type Inspector struct {
	goos     string
	goarch   string
	lookPath func(string) (string, error)
	homeDir  func() (string, error)
}

// NewInspector creates an Inspector for the running process.
func NewInspector() *Inspector {
	return &Inspector{
		goos:     runtime.GOOS,
		goarch:   runtime.GOARCH,
		lookPath: exec.LookPath,
		homeDir:  os.UserHomeDir,
	}
}

// Inspect gathers the host facts.
func (i *Inspector) Inspect() domain.HostFacts {
	_, goldErr := i.lookPath("ld.gold")
	home, _ := i.homeDir()

	return domain.HostFacts{
		Triple:  Triple(i.goos, i.goarch),
		OS:      i.goos,
		Arch:    Arch(i.goarch),
		HasGold: goldErr == nil,
		HomeDir: home,
	}
}

// Arch maps a GOARCH to the cpu name used in target triples.
func Arch(goarch string) string {
	switch goarch {
	case "amd64":
		return "x86_64"
	case "386":
		return "i686"
	case "arm64":
		return "aarch64"
	default:
		return goarch
	}
}

// Triple maps a GOOS/GOARCH pair to the rust host triple.
func Triple(goos, goarch string) string {
	arch := Arch(goarch)
	switch goos {
	case "linux":
		if arch == "arm" {
			return "armv7-unknown-linux-gnueabihf"
		}
		return arch + "-unknown-linux-gnu"
	case "darwin":
		return arch + "-apple-darwin"
	case "windows":
		return arch + "-pc-windows-msvc"
	case "android":
		return arch + "-linux-android"
	default:
		return arch + "-unknown-" + goos
	}
}
