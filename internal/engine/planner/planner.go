// Package planner derives the target triple, platform mode, output layout and build mode.
package planner

import (
	"path/filepath"

	"go.trai.ch/mars/internal/core/domain"
	"go.trai.ch/mars/internal/core/ports"
	"go.trai.ch/zerr"
)

// EnvTargetDir overrides the cargo target directory.
const EnvTargetDir = "CARGO_TARGET_DIR"

// Planner resolves targets and build modes.
type Planner struct {
	prober ports.Prober
}

// New creates a Planner probing existing outputs through prober.
func New(prober ports.Prober) *Planner {
	return &Planner{prober: prober}
}

// PlanTarget runs the target derivation steps in order and computes the output layout.
//
//nolint:cyclop // the steps mirror the documented order one to one
func PlanTarget(
	req domain.BuildRequest,
	cfg domain.ResolvedConfig,
	host domain.HostFacts,
	root string,
	env domain.Environ,
) (domain.TargetPlan, error) {
	target := req.Target
	android := req.Android
	magicleap := req.MagicLeap
	uwp := req.UWP
	var profile domain.AndroidProfile

	if _, err := pickPlatform(android, magicleap, uwp || req.WinArm64); err != nil {
		return domain.TargetPlan{}, err
	}

	// 1. UWP convenience flags pick the triple.
	if (uwp || req.WinArm64) && target == "" {
		target = domain.UWPTargetX86_64
		if req.WinArm64 {
			target = domain.UWPTargetArm64
		}
	}

	// 2. The persisted default only applies when no other platform was asked for.
	if !android && !magicleap && !uwp && !req.WinArm64 {
		android = cfg.Build.Android
	}

	switch {
	case android && target != "":
		// 3. An explicit target must be a known android triple.
		p, ok := domain.LookupAndroidProfile(target)
		if !ok {
			return domain.TargetPlan{}, zerr.With(domain.ErrInvalidAndroidTarget, "target", target)
		}
		p.Platform = cfg.Android.Profile.Platform
		profile = p
	case android:
		// 4. Otherwise the configured default.
		target = cfg.Android.Profile.Target
		profile = cfg.Android.Profile
	}

	// 5. Magic Leap always builds for the same triple.
	if magicleap && target == "" {
		target = domain.MagicLeapTarget
	}

	// 6. The triple itself can imply android.
	if !android && !magicleap && target != "" {
		if p, ok := domain.LookupAndroidProfile(target); ok {
			android = true
			p.Platform = cfg.Android.Profile.Platform
			profile = p
		}
	}

	// 7. And UWP.
	if !uwp {
		uwp = domain.IsUWPTarget(target)
	}

	platform, err := pickPlatform(android, magicleap, uwp)
	if err != nil {
		return domain.TargetPlan{}, zerr.With(err, "target", target)
	}

	plan := domain.TargetPlan{
		Target:         target,
		Platform:       platform,
		Android:        profile,
		LibSimpleServo: req.LibSimpleServo || uwp,
	}
	layout(&plan, host, root, env)

	return plan, nil
}

func pickPlatform(android, magicleap, uwp bool) (domain.Platform, error) {
	active := 0
	platform := domain.PlatformDesktop
	if android {
		active++
		platform = domain.PlatformAndroid
	}
	if magicleap {
		active++
		platform = domain.PlatformMagicLeap
	}
	if uwp {
		active++
		platform = domain.PlatformUWP
	}
	if active > 1 {
		return "", domain.ErrConflictingPlatforms
	}
	return platform, nil
}

func layout(plan *domain.TargetPlan, host domain.HostFacts, root string, env domain.Environ) {
	targetDir := env.Get(EnvTargetDir)
	if targetDir == "" {
		targetDir = filepath.Join(root, domain.TargetDirName)
	}

	plan.TargetDir = targetDir
	plan.PlatformDir = targetDir
	plan.BaseDir = targetDir

	switch plan.Platform {
	case domain.PlatformAndroid, domain.PlatformMagicLeap:
		plan.PlatformDir = filepath.Join(targetDir, string(plan.Platform))
		plan.BaseDir = filepath.Join(plan.PlatformDir, plan.Target)
	case domain.PlatformDesktop, domain.PlatformUWP:
	}

	binary := domain.BinaryName + host.BinSuffix()
	plan.DevPath = filepath.Join(plan.BaseDir, domain.ModeDev.OutputDir(), binary)
	plan.ReleasePath = filepath.Join(plan.BaseDir, domain.ModeRelease.OutputDir(), binary)
}

// ResolveMode picks dev or release. Explicit flags win, then whichever output
// binary already exists. The persisted mode only settles an ambiguous probe.
func (p *Planner) ResolveMode(req domain.BuildRequest, cfg domain.ResolvedConfig, plan domain.TargetPlan) (domain.Mode, error) {
	switch {
	case req.Release && req.Dev:
		return domain.ModeUnset, domain.ErrModeConflict
	case req.Release:
		return domain.ModeRelease, nil
	case req.Dev:
		return domain.ModeDev, nil
	}

	releaseExists := p.prober.Exists(plan.ReleasePath)
	devExists := p.prober.Exists(plan.DevPath)

	switch {
	case releaseExists && !devExists:
		return domain.ModeRelease, nil
	case !releaseExists && devExists:
		return domain.ModeDev, nil
	case cfg.Build.Mode != domain.ModeUnset:
		return cfg.Build.Mode, nil
	default:
		return domain.ModeUnset, domain.ErrModeAmbiguous
	}
}
