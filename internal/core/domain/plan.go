package domain

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Invocation is a fully resolved child process.
type Invocation struct {
	// Binary is the executable to spawn.
	Binary string `yaml:"binary"`
	// Args are passed after the binary.
	Args []string `yaml:"args"`
	// Env is the complete child environment.
	Env Environ `yaml:"-"`
	// Verbose echoes the command before running it.
	Verbose bool `yaml:"-"`
}

// BuildPlan is everything needed to run one build.
type BuildPlan struct {
	Root     string   `yaml:"root"`
	Host     string   `yaml:"host"`
	Target   string   `yaml:"target,omitempty"`
	Platform Platform `yaml:"platform"`
	Mode     Mode     `yaml:"mode"`
	// OutputPath is where the produced binary lands.
	OutputPath string `yaml:"output_path"`
	// Features is ordered and free of duplicates.
	Features    []string   `yaml:"features"`
	Env         Environ    `yaml:"-"`
	Invocation  Invocation `yaml:"invocation"`
	VeryVerbose bool       `yaml:"-"`
	// Package is false when --no-package was given.
	Package bool `yaml:"package"`
}

// Digest fingerprints the target, mode, features and command line of the plan.
// The environment is left out since it mostly mirrors the caller's shell.
func (p *BuildPlan) Digest() string {
	h := xxhash.New()

	write := func(s string) {
		_, _ = h.WriteString(s)
		_, _ = h.Write([]byte{0})
	}

	write(p.Host)
	write(p.Target)
	write(string(p.Platform))
	write(string(p.Mode))
	for _, f := range p.Features {
		write(f)
	}
	_, _ = h.Write([]byte{0})

	write(p.Invocation.Binary)
	for _, a := range p.Invocation.Args {
		write(a)
	}

	return fmt.Sprintf("%016x", h.Sum64())
}
