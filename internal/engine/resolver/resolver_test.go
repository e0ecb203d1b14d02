package resolver_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/mars/internal/core/domain"
	"go.trai.ch/mars/internal/engine/resolver"
)

func ptr[T any](v T) *T { return &v }

func TestResolve_Defaults(t *testing.T) {
	root := filepath.FromSlash("/src/servo")

	cfg := resolver.Resolve(root, domain.PersistedConfig{}, domain.Environ{})

	assert.Equal(t, filepath.Join(root, ".servo"), cfg.Tools.CacheDir)
	assert.Equal(t, filepath.Join(root, ".cargo"), cfg.Tools.CargoHomeDir)
	assert.True(t, cfg.Tools.UseRustup)
	assert.True(t, cfg.Tools.RustcWithGold)
	assert.Empty(t, cfg.Tools.NotifyCommand)

	assert.Equal(t, domain.ModeUnset, cfg.Build.Mode)
	assert.False(t, cfg.Build.Android)
	assert.False(t, cfg.Build.DebugMozjs)
	assert.Equal(t, domain.ToggleUnset, cfg.Build.Incremental)
	assert.Empty(t, cfg.Build.Ccache)

	assert.Empty(t, cfg.Android.SDK)
	assert.Empty(t, cfg.Android.NDK)
	assert.Equal(t, domain.AndroidProfile{
		Platform:        "android-21",
		Target:          "armv7-linux-androideabi",
		ToolchainPrefix: "arm-linux-androideabi",
		Arch:            "arm",
		Lib:             "armeabi-v7a",
		ToolchainName:   "arm-linux-androideabi",
	}, cfg.Android.Profile)
}

func TestResolve_EnvironmentOverridesDefaults(t *testing.T) {
	root := filepath.FromSlash("/src/servo")
	env := domain.Environ{
		"SERVO_CACHE_DIR": "/var/cache/servo",
		"CARGO_HOME":      "/home/dev/.cargo",
		"ANDROID_SDK":     "/opt/android-sdk",
		"ANDROID_NDK":     "/opt/android-ndk",
	}

	cfg := resolver.Resolve(root, domain.PersistedConfig{}, env)

	assert.Equal(t, "/var/cache/servo", cfg.Tools.CacheDir)
	assert.Equal(t, "/home/dev/.cargo", cfg.Tools.CargoHomeDir)
	assert.Equal(t, "/opt/android-sdk", cfg.Android.SDK)
	assert.Equal(t, "/opt/android-ndk", cfg.Android.NDK)
}

func TestResolve_PersistedWins(t *testing.T) {
	root := filepath.FromSlash("/src/servo")
	env := domain.Environ{
		"SERVO_CACHE_DIR":       "/var/cache/servo",
		"CARGO_HOME":            "/home/dev/.cargo",
		"SERVO_RUSTC_WITH_GOLD": "True",
		"ANDROID_NDK":           "/opt/android-ndk",
		"HOME":                  "/home/dev",
	}
	persisted := domain.PersistedConfig{
		Tools: domain.PersistedTools{
			CacheDir:      ptr("cache"),
			CargoHomeDir:  ptr("~/cargo"),
			UseRustup:     ptr(false),
			RustcWithGold: ptr(false),
			NotifyCommand: ptr("notify-send"),
		},
		Build: domain.PersistedBuild{
			Mode:        ptr("release"),
			Incremental: ptr(true),
			ThinLTO:     ptr(true),
			Rustflags:   ptr("-C target-cpu=native"),
		},
		Android: domain.PersistedAndroid{
			NDK:      ptr("/ndk"),
			Platform: ptr("android-28"),
		},
	}

	cfg := resolver.Resolve(root, persisted, env)

	assert.Equal(t, filepath.Join(root, "cache"), cfg.Tools.CacheDir)
	assert.Equal(t, filepath.Join("/home/dev", "cargo"), cfg.Tools.CargoHomeDir)
	assert.False(t, cfg.Tools.UseRustup)
	assert.False(t, cfg.Tools.RustcWithGold)
	assert.Equal(t, "notify-send", cfg.Tools.NotifyCommand)
	assert.Equal(t, domain.ModeRelease, cfg.Build.Mode)
	assert.Equal(t, domain.ToggleOn, cfg.Build.Incremental)
	assert.True(t, cfg.Build.ThinLTO)
	assert.Equal(t, "-C target-cpu=native", cfg.Build.Rustflags)
	assert.Equal(t, "/ndk", cfg.Android.NDK)
	assert.Equal(t, "android-28", cfg.Android.Profile.Platform)
	assert.Equal(t, "armv7-linux-androideabi", cfg.Android.Profile.Target)
}

func TestResolve_RustcWithGoldFromEnvironment(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"False", false},
		{"True", true},
		{"false", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			env := domain.Environ{"SERVO_RUSTC_WITH_GOLD": tt.value}
			cfg := resolver.Resolve("/src/servo", domain.PersistedConfig{}, env)
			assert.Equal(t, tt.want, cfg.Tools.RustcWithGold)
		})
	}
}

func TestResolve_UnknownModeIsUnset(t *testing.T) {
	persisted := domain.PersistedConfig{Build: domain.PersistedBuild{Mode: ptr("fast")}}
	cfg := resolver.Resolve("/src/servo", persisted, domain.Environ{})
	assert.Equal(t, domain.ModeUnset, cfg.Build.Mode)
}

func TestResolve_IncrementalOff(t *testing.T) {
	persisted := domain.PersistedConfig{Build: domain.PersistedBuild{Incremental: ptr(false)}}
	cfg := resolver.Resolve("/src/servo", persisted, domain.Environ{})
	assert.Equal(t, domain.ToggleOff, cfg.Build.Incremental)
}
