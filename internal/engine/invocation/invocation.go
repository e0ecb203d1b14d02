// Package invocation turns an assembled build into the cargo command line.
package invocation

import (
	"path/filepath"
	"strconv"
	"strings"

	"go.trai.ch/mars/internal/core/domain"
	"go.trai.ch/mars/internal/core/ports"
	"go.trai.ch/zerr"
)

// Crate ports, relative to the ports directory.
const (
	PortGlutin = "glutin"
	PortJNI    = "libsimpleservo/jniapi"
	PortCAPI   = "libsimpleservo/capi"
)

// Cargo frontends.
const (
	FrontendCargo = "cargo"
	FrontendXargo = "xargo"
)

// timingsFlag is passed to cargo unless the caller asks for timings already.
const timingsFlag = "-Ztimings=info"

// msvcHostSuffix pins the MSVC flavour of the toolchain on windows hosts.
const msvcHostSuffix = "-x86_64-pc-windows-msvc"

// Input is everything the invocation planner reads.
type Input struct {
	Root     string
	Request  domain.BuildRequest
	Config   domain.ResolvedConfig
	Target   domain.TargetPlan
	Host     domain.HostFacts
	Mode     domain.Mode
	Features []string
	Env      domain.Environ
	// CargoArgs come from the platform environment block.
	CargoArgs []string
}

// Planner renders invocations.
type Planner struct {
	toolchain ports.ToolchainSource
}

// New creates a Planner reading the pinned toolchain through toolchain.
func New(toolchain ports.ToolchainSource) *Planner {
	return &Planner{toolchain: toolchain}
}

// Port picks the crate to build.
func Port(plan domain.TargetPlan) string {
	switch {
	case plan.IsAndroid():
		return PortJNI
	case plan.LibSimpleServo:
		return PortCAPI
	default:
		return PortGlutin
	}
}

// Frontend picks the cargo driver. UWP triples need a custom sysroot.
func Frontend(plan domain.TargetPlan) string {
	if domain.IsUWPTarget(plan.Target) {
		return FrontendXargo
	}
	return FrontendCargo
}

// CargoArgs builds the arguments following the frontend name.
func CargoArgs(in Input) []string {
	args := []string{
		"build",
		"--manifest-path", filepath.Join(in.Root, domain.PortsDirName, filepath.FromSlash(Port(in.Target)), domain.ManifestFileName),
	}
	if in.Target.Target != "" {
		args = append(args, "--target", in.Target.Target)
	}
	args = append(args, "--features", strings.Join(in.Features, " "))

	if !hasTimings(in.Request.Params) {
		args = append(args, timingsFlag)
	}
	if in.Mode == domain.ModeRelease {
		args = append(args, "--release")
	}
	if in.Request.Jobs > 0 {
		args = append(args, "-j", strconv.Itoa(in.Request.Jobs))
	}
	if in.Request.Verbose {
		args = append(args, "-v")
	}
	if in.Request.VeryVerbose {
		args = append(args, "-vv")
	}
	args = append(args, in.CargoArgs...)
	args = append(args, in.Request.Params...)

	return args
}

func hasTimings(params []string) bool {
	for i, p := range params {
		if strings.HasPrefix(p, "-Ztimings") {
			return true
		}
		if p == "-Z" && i+1 < len(params) && strings.HasPrefix(params[i+1], "timings") {
			return true
		}
	}
	return false
}

// Plan renders the invocation, wrapping it in "rustup run" when rustup is in use.
func (p *Planner) Plan(in Input) (domain.Invocation, error) {
	suffix := in.Host.BinSuffix()
	frontend := Frontend(in.Target)
	cargoArgs := CargoArgs(in)

	inv := domain.Invocation{
		Env:     in.Env,
		Verbose: in.Request.Verbose || in.Request.VeryVerbose,
	}

	if !in.Config.Tools.UseRustup {
		inv.Binary = frontend + suffix
		inv.Args = cargoArgs
		return inv, nil
	}

	toolchain, err := p.toolchain.Toolchain(in.Root)
	if err != nil {
		return domain.Invocation{}, zerr.Wrap(err, "failed to resolve rust toolchain")
	}
	if in.Host.IsWindows() {
		toolchain += msvcHostSuffix
	}

	inv.Binary = "rustup" + suffix
	inv.Args = append([]string{"run", "--install", toolchain, frontend}, cargoArgs...)
	return inv, nil
}
