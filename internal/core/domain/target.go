package domain

import "strings"

// TargetPlan is the result of target planning: what to build for and where the output lands.
type TargetPlan struct {
	// Target is the explicit triple, empty when building for the host.
	Target string
	// Platform is the single platform mode in effect.
	Platform Platform
	// Android holds the NDK profile when Platform is PlatformAndroid.
	Android AndroidProfile
	// LibSimpleServo selects the embedding API instead of the desktop port.
	LibSimpleServo bool

	// TargetDir is the cargo target directory.
	TargetDir string
	// PlatformDir is TargetDir/<platform> for android and magicleap, TargetDir otherwise.
	PlatformDir string
	// BaseDir contains the debug and release profile directories.
	BaseDir string
	// DevPath and ReleasePath are the conventional binary locations of both profiles.
	DevPath     string
	ReleasePath string
}

// IsHost reports whether the plan builds for the host.
func (p TargetPlan) IsHost() bool {
	return p.Target == ""
}

// TripleOr returns the target triple, or host when building for the host.
func (p TargetPlan) TripleOr(host string) string {
	if p.Target == "" {
		return host
	}
	return p.Target
}

// IsAndroid reports whether the plan is an android build.
func (p TargetPlan) IsAndroid() bool {
	return p.Platform == PlatformAndroid
}

// IsMagicLeap reports whether the plan is a Magic Leap build.
func (p TargetPlan) IsMagicLeap() bool {
	return p.Platform == PlatformMagicLeap
}

// OutputPath is the binary location for the given mode.
func (p TargetPlan) OutputPath(m Mode) string {
	if m == ModeRelease {
		return p.ReleasePath
	}
	return p.DevPath
}

// IsUWPTarget reports whether triple names a universal windows app target.
func IsUWPTarget(triple string) bool {
	return strings.Contains(triple, UWPMarker)
}
