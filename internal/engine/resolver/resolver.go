// Package resolver merges the persisted configuration with the environment and
// built-in defaults.
package resolver

import (
	"path/filepath"
	"strings"

	"go.trai.ch/mars/internal/core/domain"
)

// Environment variables consulted while resolving.
const (
	EnvCacheDir      = "SERVO_CACHE_DIR"
	EnvCargoHome     = "CARGO_HOME"
	EnvRustcWithGold = "SERVO_RUSTC_WITH_GOLD"
	EnvAndroidSDK    = "ANDROID_SDK"
	EnvAndroidNDK    = "ANDROID_NDK"
	EnvHome          = "HOME"
)

// Resolve applies, per field, persisted value, then environment, then default.
// It performs no I/O and never fails.
func Resolve(root string, persisted domain.PersistedConfig, env domain.Environ) domain.ResolvedConfig {
	p := pathResolver{root: root, home: env.Get(EnvHome)}

	profile := domain.DefaultAndroidProfile()
	profile.Platform = stringOr(persisted.Android.Platform, profile.Platform)

	return domain.ResolvedConfig{
		Tools: domain.ToolsConfig{
			CacheDir: p.first(persisted.Tools.CacheDir, env.Get(EnvCacheDir),
				filepath.Join(root, domain.CacheDirName)),
			CargoHomeDir: p.first(persisted.Tools.CargoHomeDir, env.Get(EnvCargoHome),
				filepath.Join(root, domain.CargoHomeDirName)),
			UseRustup:     boolOr(persisted.Tools.UseRustup, true),
			RustcWithGold: rustcWithGold(persisted.Tools.RustcWithGold, env),
			NotifyCommand: stringOr(persisted.Tools.NotifyCommand, ""),
		},
		Build: domain.BuildConfig{
			Mode:            domain.ParseMode(stringOr(persisted.Build.Mode, "")),
			Android:         boolOr(persisted.Build.Android, false),
			DebugAssertions: boolOr(persisted.Build.DebugAssertions, false),
			DebugMozjs:      boolOr(persisted.Build.DebugMozjs, false),
			WebGLBacktrace:  boolOr(persisted.Build.WebGLBacktrace, false),
			DOMBacktrace:    boolOr(persisted.Build.DOMBacktrace, false),
			Layout2020:      boolOr(persisted.Build.Layout2020, false),
			Ccache:          stringOr(persisted.Build.Ccache, ""),
			Rustflags:       stringOr(persisted.Build.Rustflags, ""),
			Incremental:     domain.ToggleOf(persisted.Build.Incremental),
			ThinLTO:         boolOr(persisted.Build.ThinLTO, false),
		},
		Android: domain.AndroidConfig{
			SDK:       p.first(persisted.Android.SDK, env.Get(EnvAndroidSDK), ""),
			NDK:       p.first(persisted.Android.NDK, env.Get(EnvAndroidNDK), ""),
			Toolchain: p.first(persisted.Android.Toolchain, "", ""),
			Profile:   profile,
		},
	}
}

// rustcWithGold honours SERVO_RUSTC_WITH_GOLD only for an exact "False".
func rustcWithGold(persisted *bool, env domain.Environ) bool {
	if persisted != nil {
		return *persisted
	}
	if v, ok := env.Lookup(EnvRustcWithGold); ok {
		return v != "False"
	}
	return true
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func stringOr(v *string, def string) string {
	if v == nil {
		return def
	}
	return *v
}

// pathResolver anchors persisted paths. Environment values and defaults are used as given.
type pathResolver struct {
	root string
	home string
}

func (p pathResolver) first(persisted *string, fromEnv, def string) string {
	if persisted != nil && *persisted != "" {
		return p.anchor(*persisted)
	}
	if fromEnv != "" {
		return fromEnv
	}
	return def
}

func (p pathResolver) anchor(path string) string {
	if p.home != "" && (path == "~" || strings.HasPrefix(path, "~/")) {
		return filepath.Join(p.home, strings.TrimPrefix(path, "~"))
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(p.root, path)
}
