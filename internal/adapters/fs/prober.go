// Package fs provides filesystem-backed ports: output probing and toolchain file reading.
package fs

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/mars/internal/core/domain"
	"go.trai.ch/mars/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.Prober          = (*Prober)(nil)
	_ ports.ToolchainSource = (*ToolchainFile)(nil)
)

// Prober answers existence questions against the real filesystem.
type Prober struct{}

// NewProber creates a new Prober.
func NewProber() *Prober {
	return &Prober{}
}

// Exists reports whether path names an existing file or directory.
func (p *Prober) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ToolchainFile reads the pinned toolchain from <root>/rust-toolchain.
type ToolchainFile struct{}

// NewToolchainFile creates a new ToolchainFile.
func NewToolchainFile() *ToolchainFile {
	return &ToolchainFile{}
}

// Toolchain returns the trimmed content of the rust-toolchain file.
func (t *ToolchainFile) Toolchain(root string) (string, error) {
	path := filepath.Join(root, domain.ToolchainFileName)

	// #nosec G304 -- path is rooted at the discovered checkout
	data, err := os.ReadFile(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrToolchainFileUnreadable.Error()), "path", path)
	}

	toolchain := strings.TrimSpace(string(data))
	if toolchain == "" {
		return "", zerr.With(domain.ErrToolchainFileUnreadable, "path", path)
	}
	return toolchain, nil
}
