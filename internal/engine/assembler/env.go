package assembler

import (
	"path/filepath"
	"strings"

	"go.trai.ch/mars/internal/core/domain"
	"go.trai.ch/mars/internal/core/ports"
	"go.trai.ch/zerr"
)

// stage carries the environment under construction through the ordered blocks.
type stage struct {
	in        Input
	env       *domain.EnvBuilder
	prober    ports.Prober
	cargoArgs []string
}

func (s *stage) triple() string {
	return s.in.Target.TripleOr(s.in.Host.Triple)
}

// common applies the settings shared by every platform.
func (s *stage) common() {
	cfg := s.in.Config
	b := s.env

	b.Set("CARGO_HOME", cfg.Tools.CargoHomeDir)

	for key, value := range map[string]string{
		"ANDROID_SDK":       cfg.Android.SDK,
		"ANDROID_NDK":       cfg.Android.NDK,
		"ANDROID_TOOLCHAIN": cfg.Android.Toolchain,
	} {
		if value != "" {
			b.Set(key, value)
		}
	}

	if t := s.in.Target.Target; strings.HasPrefix(t, "arm") || strings.HasPrefix(t, "aarch64") {
		b.Append("RUSTFLAGS", "-C target-feature=+neon", " ")
	}
	if cfg.Build.Rustflags != "" {
		b.Append("RUSTFLAGS", cfg.Build.Rustflags, " ")
	}
	if cfg.Tools.RustcWithGold && s.in.Host.IsLinux() && s.in.Host.HasGold {
		b.Append("RUSTFLAGS", "-C link-args=-fuse-ld=gold", " ")
	}
	if cfg.Build.ThinLTO {
		b.Append("RUSTFLAGS", "-Z thinlto", " ")
	}

	switch cfg.Build.Incremental {
	case domain.ToggleOn:
		b.Set("CARGO_INCREMENTAL", "1")
	case domain.ToggleOff:
		b.Set("CARGO_INCREMENTAL", "0")
	case domain.ToggleUnset:
	}

	if cfg.Build.Ccache != "" {
		b.Set("CCACHE", cfg.Build.Ccache)
	}
}

// windowsTarget handles windows triples, including UWP ones.
func (s *stage) windowsTarget() error {
	triple := s.triple()
	if !strings.Contains(triple, "windows") {
		return nil
	}

	if triple != s.in.Host.Triple {
		if _, ok := s.in.Env.Lookup("VisualStudioVersion"); ok {
			return zerr.With(domain.ErrVisualStudioShell, "target", triple)
		}
		s.env.Set("PKG_CONFIG_ALLOW_CROSS", "1")
	}

	if root := s.env.Get(gstreamerRootVar(triple)); root != "" {
		s.env.Append("LIB", filepath.Join(root, "lib"), ";")
	}
	return nil
}

// gstreamerRootVar names the GStreamer SDK variable for the architecture of triple.
func gstreamerRootVar(triple string) string {
	arch, _, _ := strings.Cut(triple, "-")
	switch arch {
	case "x86_64":
		arch = "X86_64"
	case "i686", "x86":
		arch = "X86"
	case "aarch64":
		arch = "ARM64"
	default:
		arch = strings.ToUpper(arch)
	}
	return "GSTREAMER_1_0_ROOT_" + arch
}

// compilerDefaults picks clang unless the caller already chose compilers.
func (s *stage) compilerDefaults() {
	if s.in.Host.IsWindows() {
		s.env.SetDefault("CC", "clang-cl.exe")
		s.env.SetDefault("CXX", "clang-cl.exe")
		return
	}
	s.env.SetDefault("CC", "clang")
	s.env.SetDefault("CXX", "clang++")
}
