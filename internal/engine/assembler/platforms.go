package assembler

import (
	"path/filepath"
	"strings"

	"go.trai.ch/mars/internal/core/domain"
	"go.trai.ch/zerr"
)

type platformBlock func(s *stage) error

// platformBlocks holds the environment block of each platform. Exactly one runs per build.
var platformBlocks = map[domain.Platform]platformBlock{
	domain.PlatformDesktop:   desktopBlock,
	domain.PlatformAndroid:   androidBlock,
	domain.PlatformMagicLeap: magicLeapBlock,
	domain.PlatformUWP:       uwpBlock,
}

func desktopBlock(s *stage) error {
	if s.in.Host.IsMacOS() && s.triple() == s.in.Host.Triple {
		s.env.Append("CXXFLAGS", "-mmacosx-version-min=10.10", " ")
	}
	return nil
}

type uwpArch struct {
	angle   string
	gst     string
	gstRoot string
}

var uwpArches = map[string]uwpArch{
	"aarch64": {angle: "arm64", gst: "ARM64", gstRoot: "arm64"},
	"x86_64":  {angle: "x64", gst: "X86_64", gstRoot: "x64"},
}

const angleVersion = "ANGLE.WindowsStore.Servo.2.1.19"

func uwpBlock(s *stage) error {
	triple := s.triple()
	cpu, _, _ := strings.Cut(triple, "-")
	arch, ok := uwpArches[cpu]
	if !ok {
		return zerr.With(domain.ErrUnsupportedUWPTarget, "target", triple)
	}

	b := s.env
	if strings.Contains(b.Get("LIB"), "gstreamer") {
		return zerr.With(domain.ErrEnvironmentConflict, "LIB", b.Get("LIB"))
	}

	b.Set("RUST_SYSROOT", filepath.Join(s.in.Host.HomeDir, ".xargo"))

	angle := filepath.Join(s.in.Root, "support", "hololens", "packages", angleVersion, "bin", "UAP", arch.angle)
	b.Append("LIB", angle, ";")

	gstRoot := filepath.Join(s.in.Config.Tools.CacheDir, "msvc-dependencies", "gstreamer-uwp", arch.gstRoot)
	b.Set("GSTREAMER_1_0_ROOT_"+arch.gst, gstRoot)
	b.Set("PKG_CONFIG_PATH", filepath.Join(gstRoot, "lib", "pkgconfig"))

	if s.in.Host.IsWindows() {
		b.Append("CFLAGS", "-DWINAPI_FAMILY=WINAPI_FAMILY_APP", " ")
		b.Append("CXXFLAGS", "-DWINAPI_FAMILY=WINAPI_FAMILY_APP", " ")
	}
	return nil
}

// ndkHost is the prebuilt directory name of the NDK for the host.
func ndkHost(h domain.HostFacts) string {
	suffix := "unknown"
	switch h.Arch {
	case "i686", "x86":
		suffix = "x86"
	case "x86_64":
		suffix = "x86_64"
	}
	return h.OS + "-" + suffix
}

//nolint:funlen // one assignment per NDK variable
func androidBlock(s *stage) error {
	cfg := s.in.Config.Android
	if cfg.NDK == "" {
		return domain.ErrMissingAndroidNDK
	}
	if cfg.SDK == "" {
		return domain.ErrMissingAndroidSDK
	}
	if !s.in.Host.IsLinux() && !s.in.Host.IsMacOS() {
		return zerr.With(domain.ErrUnsupportedHost, "host", s.in.Host.Triple)
	}

	b := s.env
	ndk := cfg.NDK
	profile := s.in.Target.Android
	target := s.in.Target.Target
	host := ndkHost(s.in.Host)
	api := profile.API()

	llvm := filepath.Join(ndk, "toolchains", "llvm", "prebuilt", host)
	gcc := filepath.Join(ndk, "toolchains", profile.ToolchainPrefix+"-4.9", "prebuilt", host)
	gccLibs := filepath.Join(gcc, "lib", "gcc", profile.ToolchainName, "4.9.x")
	sysroot := filepath.Join(ndk, "sysroot")
	supportInclude := filepath.Join(ndk, "sources", "android", "support", "include")
	cpufeaturesInclude := filepath.Join(ndk, "sources", "android", "cpufeatures")
	cxxInclude := filepath.Join(ndk, "sources", "cxx-stl", "llvm-libc++", "include")
	cxxabiInclude := filepath.Join(ndk, "sources", "cxx-stl", "llvm-libc++abi", "include")
	clangInclude := filepath.Join(llvm, "lib64", "clang", "5.0", "include")
	sysrootInclude := filepath.Join(sysroot, "usr", "include")
	archInclude := filepath.Join(sysrootInclude, profile.ToolchainName)
	platformDir := filepath.Join(ndk, "platforms", profile.Platform, "arch-"+profile.Arch)
	archLibs := filepath.Join(platformDir, "usr", "lib")
	gccBin := filepath.Join(gcc, profile.ToolchainName, "bin")

	b.Prepend("PATH", filepath.Join(llvm, "bin"), ":")
	b.Set("ANDROID_SYSROOT", sysroot)

	b.Set("HOST_CC", "clang")
	b.Set("HOST_CXX", "clang++")
	b.Set("HOST_CFLAGS", "")
	b.Set("HOST_CXXFLAGS", "")
	b.Set("CC", filepath.Join(llvm, "bin", "clang"))
	b.Set("CPP", filepath.Join(llvm, "bin", "clang")+" -E")
	b.Set("CXX", filepath.Join(llvm, "bin", "clang++"))
	b.Set("AR", filepath.Join(gccBin, "ar"))
	b.Set("RANLIB", filepath.Join(gccBin, "ranlib"))
	b.Set("OBJCOPY", filepath.Join(gccBin, "objcopy"))
	b.Set("YASM", filepath.Join(ndk, "prebuilt", host, "bin", "yasm"))

	b.Set("ANDROID_TOOLCHAIN", gcc)
	b.Set("ANDROID_TOOLCHAIN_DIR", gcc)
	b.Set("ANDROID_VERSION", api)
	b.Set("ANDROID_PLATFORM_DIR", platformDir)
	b.Set("GCC_TOOLCHAIN", gcc)

	common := []string{
		"--target=" + target,
		"--sysroot=" + sysroot,
	}
	b.Set("CFLAGS", strings.Join(append(append([]string{}, common...),
		"--gcc-toolchain="+gcc,
		"-isystem", sysrootInclude,
		"-I"+archInclude,
		"-B"+archLibs,
		"-L"+archLibs,
		"-D__ANDROID_API__="+api,
	), " "))
	b.Set("CXXFLAGS", strings.Join(append(append([]string{}, common...),
		"--gcc-toolchain="+gcc,
		"-I"+cpufeaturesInclude,
		"-I"+cxxInclude,
		"-I"+clangInclude,
		"-isystem", sysrootInclude,
		"-I"+cxxabiInclude,
		"-I"+clangInclude,
		"-I"+archInclude,
		"-I"+supportInclude,
		"-L"+gccLibs,
		"-B"+archLibs,
		"-L"+archLibs,
		"-D__ANDROID_API__="+api,
		"-D__STDC_CONSTANT_MACROS",
		"-D__NDK_FPABI__=",
	), " "))
	b.Set("CPPFLAGS", strings.Join(append(append([]string{}, common...),
		"-I"+archInclude,
	), " "))

	b.Set("NDK_ANDROID_VERSION", api)
	b.Set("ANDROID_ABI", profile.Lib)
	b.Set("ANDROID_PLATFORM", profile.Platform)
	b.Set("NDK_CMAKE_TOOLCHAIN_FILE", filepath.Join(ndk, "build", "cmake", "android.toolchain.cmake"))
	b.Set("CMAKE_TOOLCHAIN_FILE", filepath.Join(s.in.Root, "support", "android", "toolchain.cmake"))
	b.Set("AAR_OUT_DIR", filepath.Join(s.in.Target.PlatformDir, "aar"))
	b.Set("PKG_CONFIG_ALLOW_CROSS", "1")
	b.Set("PKG_CONFIG_PATH", filepath.Join(s.in.Target.PlatformDir, "gstreamer", "gst-build-"+profile.Lib, "pkgconfig"))

	return nil
}

//nolint:funlen // one default per toolchain variable
func magicLeapBlock(s *stage) error {
	if !s.in.Host.IsMacOS() {
		return zerr.With(domain.ErrUnsupportedHost, "host", s.in.Host.Triple)
	}

	b := s.env
	sdk := b.Get("MAGICLEAP_SDK")
	if sdk == "" {
		return domain.ErrMissingMagicLeapSDK
	}
	if !s.prober.Exists(sdk) {
		return zerr.With(domain.ErrMissingMagicLeapSDK, "path", sdk)
	}

	support := filepath.Join(s.in.Root, "support", "magicleap")
	target := s.in.Target.Target
	native := filepath.Join(s.in.Target.PlatformDir, target, "native")

	b.SetDefault("ANDROID_VERSION", "21")
	b.SetDefault("ANDROID_NDK", sdk)
	b.SetDefault("ANDROID_NDK_VERSION", "16.0.0")
	b.SetDefault("ANDROID_PLATFORM_DIR", filepath.Join(sdk, "lumin"))
	b.SetDefault("ANDROID_TOOLCHAIN_DIR", filepath.Join(sdk, "tools", "toolchains"))
	toolchainDir := b.Get("ANDROID_TOOLCHAIN_DIR")
	platformDir := b.Get("ANDROID_PLATFORM_DIR")
	b.SetDefault("ANDROID_CLANG", filepath.Join(toolchainDir, "bin", "clang"))

	b.SetDefault("STLPORT_LIBS", strings.Join([]string{
		"-L" + filepath.Join(sdk, "lumin", "stl", "libc++-lumin", "lib"),
		"-lc++",
	}, " "))
	b.SetDefault("STLPORT_CPPFLAGS", "-I"+filepath.Join(sdk, "lumin", "stl", "libc++-lumin", "include"))
	b.SetDefault("CPPFLAGS", strings.Join([]string{
		"--no-standard-includes",
		"--sysroot=" + platformDir,
		"-I" + filepath.Join(platformDir, "usr", "include"),
		"-isystem" + filepath.Join(toolchainDir, "lib64", "clang", "3.8", "include"),
	}, " "))
	b.SetDefault("CFLAGS", strings.Join([]string{
		b.Get("CPPFLAGS"),
		"-L" + filepath.Join(toolchainDir, "lib", "gcc", target, "4.9.x"),
	}, " "))
	b.SetDefault("CXXFLAGS", strings.Join([]string{
		"-I./gfx/angle/checkout/include",
		b.Get("STLPORT_CPPFLAGS"),
		b.Get("CFLAGS"),
	}, " "))

	bin := filepath.Join(toolchainDir, "bin")
	for key, tool := range map[string]string{
		"AR":      "aarch64-linux-android-ar",
		"AS":      "aarch64-linux-android-clang",
		"CC":      "aarch64-linux-android-clang",
		"CPP":     "aarch64-linux-android-clang -E",
		"CXX":     "aarch64-linux-android-clang++",
		"LD":      "aarch64-linux-android-ld",
		"OBJCOPY": "aarch64-linux-android-objcopy",
		"OBJDUMP": "aarch64-linux-android-objdump",
		"RANLIB":  "aarch64-linux-android-ranlib",
		"STRIP":   "aarch64-linux-android-strip",
	} {
		b.SetDefault(key, filepath.Join(bin, tool))
	}

	b.SetDefault("HOST_CFLAGS", "")
	b.SetDefault("HOST_CXXFLAGS", "")
	b.SetDefault("HOST_CC", "/usr/local/opt/llvm/bin/clang")
	b.SetDefault("HOST_CXX", "/usr/local/opt/llvm/bin/clang++")
	b.SetDefault("HOST_LD", "ld")

	b.SetDefault("HARFBUZZ_SYS_NO_PKG_CONFIG", "1")
	b.SetDefault("PKG_CONFIG_ALLOW_CROSS", "1")
	b.SetDefault("CMAKE_TOOLCHAIN_FILE", filepath.Join(support, "toolchain.cmake"))
	b.SetDefault("_LIBCPP_INLINE_VISIBILITY", "__attribute__((__always_inline__))")

	b.SetDefault("OPENSSL_DIR", filepath.Join(native, "openssl"))
	b.SetDefault("OPENSSL_VERSION", "1.0.2k")
	b.SetDefault("OPENSSL_STATIC", "1")

	b.SetDefault("GSTREAMER_DIR", filepath.Join(native, "gstreamer-1.16.0"))
	b.SetDefault("PKG_CONFIG_PATH", filepath.Join(b.Get("GSTREAMER_DIR"), "system", "lib64", "pkgconfig"))

	b.SetDefault("CARGO_TARGET_AARCH64_LINUX_ANDROID_LINKER", filepath.Join(support, "fake-ld.sh"))

	s.cargoArgs = append(s.cargoArgs, "--package", "libmlservo")
	return nil
}
