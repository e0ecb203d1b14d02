package domain

// Mode is the cargo build profile.
type Mode string

const (
	// ModeUnset means no profile was chosen.
	ModeUnset Mode = ""
	// ModeDev is the unoptimized debug profile.
	ModeDev Mode = "dev"
	// ModeRelease is the optimized profile.
	ModeRelease Mode = "release"
)

// ParseMode maps the .servobuild build.mode value to a Mode. Unknown values are unset.
func ParseMode(s string) Mode {
	switch Mode(s) {
	case ModeDev:
		return ModeDev
	case ModeRelease:
		return ModeRelease
	default:
		return ModeUnset
	}
}

// OutputDir is the cargo profile directory name for the mode.
func (m Mode) OutputDir() string {
	if m == ModeRelease {
		return "release"
	}
	return "debug"
}
