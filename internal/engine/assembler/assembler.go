// Package assembler computes the cargo feature list and the child environment for a build.
package assembler

import (
	"strings"

	"go.trai.ch/mars/internal/core/domain"
	"go.trai.ch/mars/internal/core/ports"
	"go.trai.ch/zerr"
)

// Input is everything the assembler reads.
type Input struct {
	Root    string
	Request domain.BuildRequest
	Config  domain.ResolvedConfig
	Target  domain.TargetPlan
	Host    domain.HostFacts
	// Env is the inherited process environment.
	Env domain.Environ
}

// Assembly is the assembler's output.
type Assembly struct {
	// Features is ordered and free of duplicates.
	Features []string
	Env      domain.Environ
	// CargoArgs are extra cargo options contributed by the platform block.
	CargoArgs []string
}

// Assembler builds feature lists and environments.
type Assembler struct {
	prober ports.Prober
}

// New creates an Assembler. prober checks SDK locations named by the environment.
func New(prober ports.Prober) *Assembler {
	return &Assembler{prober: prober}
}

// Assemble runs the feature rules and then the environment stages.
func (a *Assembler) Assemble(in Input) (Assembly, error) {
	if err := checkParams(in.Request.Params); err != nil {
		return Assembly{}, err
	}

	rustflags := &flagList{}
	features, err := Features(in, rustflags)
	if err != nil {
		return Assembly{}, err
	}

	b := domain.NewEnvBuilder(in.Env)
	s := &stage{in: in, env: b, prober: a.prober}

	s.common()
	for _, f := range rustflags.items {
		b.Append("RUSTFLAGS", f, " ")
	}

	block, ok := platformBlocks[in.Target.Platform]
	if !ok {
		block = desktopBlock
	}
	if err := block(s); err != nil {
		return Assembly{}, zerr.With(err, "platform", string(in.Target.Platform))
	}
	if err := s.windowsTarget(); err != nil {
		return Assembly{}, err
	}
	s.compilerDefaults()

	return Assembly{
		Features:  features.List(),
		Env:       b.Build(),
		CargoArgs: s.cargoArgs,
	}, nil
}

// checkParams rejects passthrough arguments that already select features.
func checkParams(params []string) error {
	for _, p := range params {
		if p == "--features" || strings.HasPrefix(p, "--features=") || p == "-F" || strings.HasPrefix(p, "-F=") {
			return zerr.With(domain.ErrFeatureFlagInParams, "param", p)
		}
	}
	return nil
}

type flagList struct {
	items []string
}

func (l *flagList) add(flag string) {
	l.items = append(l.items, flag)
}
