package domain

// PersistedConfig is the content of .servobuild. A nil field defers to the default.
type PersistedConfig struct {
	Tools   PersistedTools
	Build   PersistedBuild
	Android PersistedAndroid
}

// PersistedTools is the [tools] section.
type PersistedTools struct {
	CacheDir      *string
	CargoHomeDir  *string
	UseRustup     *bool
	RustcWithGold *bool
	NotifyCommand *string
}

// PersistedBuild is the [build] section.
type PersistedBuild struct {
	Mode            *string
	Android         *bool
	DebugAssertions *bool
	DebugMozjs      *bool
	WebGLBacktrace  *bool
	DOMBacktrace    *bool
	Layout2020      *bool
	Ccache          *string
	Rustflags       *string
	Incremental     *bool
	ThinLTO         *bool
}

// PersistedAndroid is the [android] section.
type PersistedAndroid struct {
	SDK       *string
	NDK       *string
	Toolchain *string
	Platform  *string
}

// Toggle is a boolean setting that may be left unset.
type Toggle uint8

const (
	// ToggleUnset leaves the setting to the tool's own default.
	ToggleUnset Toggle = iota
	// ToggleOn enables the setting.
	ToggleOn
	// ToggleOff disables the setting.
	ToggleOff
)

// ToggleOf converts an optional boolean into a Toggle.
func ToggleOf(b *bool) Toggle {
	switch {
	case b == nil:
		return ToggleUnset
	case *b:
		return ToggleOn
	default:
		return ToggleOff
	}
}

// ResolvedConfig is PersistedConfig with every default applied.
type ResolvedConfig struct {
	Tools   ToolsConfig
	Build   BuildConfig
	Android AndroidConfig
}

// ToolsConfig holds the resolved [tools] settings.
type ToolsConfig struct {
	CacheDir      string
	CargoHomeDir  string
	UseRustup     bool
	RustcWithGold bool
	// NotifyCommand runs after the build when non-empty.
	NotifyCommand string
}

// BuildConfig holds the resolved [build] settings.
type BuildConfig struct {
	// Mode is ModeUnset unless .servobuild pins dev or release.
	Mode            Mode
	Android         bool
	DebugAssertions bool
	DebugMozjs      bool
	WebGLBacktrace  bool
	DOMBacktrace    bool
	Layout2020      bool
	Ccache          string
	Rustflags       string
	Incremental     Toggle
	ThinLTO         bool
}

// AndroidConfig holds the resolved [android] settings and the default target profile.
type AndroidConfig struct {
	SDK       string
	NDK       string
	Toolchain string
	Profile   AndroidProfile
}
