package config

import "go.trai.ch/mars/internal/core/domain"

// Servobuild is the on-disk layout of .servobuild.
type Servobuild struct {
	Tools   ToolsDTO   `toml:"tools"`
	Build   BuildDTO   `toml:"build"`
	Android AndroidDTO `toml:"android"`
}

// ToolsDTO is the [tools] table.
type ToolsDTO struct {
	CacheDir      *string `toml:"cache-dir"`
	CargoHomeDir  *string `toml:"cargo-home-dir"`
	UseRustup     *bool   `toml:"use-rustup"`
	RustcWithGold *bool   `toml:"rustc-with-gold"`
	NotifyCommand *string `toml:"notify-command"`
}

// BuildDTO is the [build] table.
type BuildDTO struct {
	Mode            *string `toml:"mode"`
	Android         *bool   `toml:"android"`
	DebugAssertions *bool   `toml:"debug-assertions"`
	DebugMozjs      *bool   `toml:"debug-mozjs"`
	WebGLBacktrace  *bool   `toml:"webgl-backtrace"`
	DOMBacktrace    *bool   `toml:"dom-backtrace"`
	Layout2020      *bool   `toml:"layout-2020"`
	Ccache          *string `toml:"ccache"`
	Rustflags       *string `toml:"rustflags"`
	Incremental     *bool   `toml:"incremental"`
	ThinLTO         *bool   `toml:"thinlto"`
}

// AndroidDTO is the [android] table.
type AndroidDTO struct {
	SDK       *string `toml:"sdk"`
	NDK       *string `toml:"ndk"`
	Toolchain *string `toml:"toolchain"`
	Platform  *string `toml:"platform"`
}

func (s *Servobuild) toDomain() domain.PersistedConfig {
	return domain.PersistedConfig{
		Tools: domain.PersistedTools{
			CacheDir:      s.Tools.CacheDir,
			CargoHomeDir:  s.Tools.CargoHomeDir,
			UseRustup:     s.Tools.UseRustup,
			RustcWithGold: s.Tools.RustcWithGold,
			NotifyCommand: s.Tools.NotifyCommand,
		},
		Build: domain.PersistedBuild{
			Mode:            s.Build.Mode,
			Android:         s.Build.Android,
			DebugAssertions: s.Build.DebugAssertions,
			DebugMozjs:      s.Build.DebugMozjs,
			WebGLBacktrace:  s.Build.WebGLBacktrace,
			DOMBacktrace:    s.Build.DOMBacktrace,
			Layout2020:      s.Build.Layout2020,
			Ccache:          s.Build.Ccache,
			Rustflags:       s.Build.Rustflags,
			Incremental:     s.Build.Incremental,
			ThinLTO:         s.Build.ThinLTO,
		},
		Android: domain.PersistedAndroid{
			SDK:       s.Android.SDK,
			NDK:       s.Android.NDK,
			Toolchain: s.Android.Toolchain,
			Platform:  s.Android.Platform,
		},
	}
}
