package domain

import "go.trai.ch/zerr"

var (
	// ErrRepoRootNotFound is returned when no servo checkout contains the working directory.
	ErrRepoRootNotFound = zerr.New("You must run mars within a servo repository.")

	// ErrModeAmbiguous is returned when neither --dev nor --release is given and the
	// existing build outputs do not pick one.
	ErrModeAmbiguous = zerr.New(
		"Please specify either --dev (-d) for a development build, or --release (-r) for an optimized build.",
	)

	// ErrModeConflict is returned when both --dev and --release are given.
	ErrModeConflict = zerr.New("Please specify either --dev or --release.")

	// ErrInvalidAndroidTarget is returned when android mode is combined with a non-android target.
	ErrInvalidAndroidTarget = zerr.New("target is not a supported android target")

	// ErrConflictingPlatforms is returned when more than one platform mode is requested at once.
	ErrConflictingPlatforms = zerr.New("android, magicleap and uwp builds are mutually exclusive")

	// ErrInvalidMediaStack is returned when --media-stack names an unknown backend.
	ErrInvalidMediaStack = zerr.New("media stack must be either 'gstreamer' or 'dummy'")

	// ErrFeatureFlagInParams is returned when cargo params already select features.
	ErrFeatureFlagInParams = zerr.New("pass features with --features, not as a cargo argument")

	// ErrToolchainFileUnreadable is returned when the rust-toolchain file cannot be read.
	ErrToolchainFileUnreadable = zerr.New("failed to read rust-toolchain file")

	// ErrEnvironmentConflict is returned when the inherited environment mixes
	// settings of another platform into the selected one.
	ErrEnvironmentConflict = zerr.New("environment conflicts with the selected platform")

	// ErrUnsupportedUWPTarget is returned when the UWP triple has no known architecture.
	ErrUnsupportedUWPTarget = zerr.New("unsupported UWP target")

	// ErrUnsupportedHost is returned when the host cannot build for the requested platform.
	ErrUnsupportedHost = zerr.New("host platform cannot build for this target")

	// ErrVisualStudioShell is returned when cross-compiling for windows from inside a Visual Studio shell.
	ErrVisualStudioShell = zerr.New("Can't cross-compile for Windows inside of a Visual Studio shell.")

	// ErrMissingAndroidNDK is returned when an android build has no NDK location.
	ErrMissingAndroidNDK = zerr.New("Please set the ANDROID_NDK environment variable.")

	// ErrMissingAndroidSDK is returned when an android build has no SDK location.
	ErrMissingAndroidSDK = zerr.New("Please set the ANDROID_SDK environment variable.")

	// ErrMissingMagicLeapSDK is returned when MAGICLEAP_SDK is unset or does not exist.
	ErrMissingMagicLeapSDK = zerr.New("Magic Leap builds need the MAGICLEAP_SDK environment variable")

	// ErrBuildExecutionFailed is returned when the build command exits unsuccessfully.
	ErrBuildExecutionFailed = zerr.New("build execution failed")

	// ErrCommandFailed is returned when a spawned process cannot be started or exits non-zero.
	ErrCommandFailed = zerr.New("command failed")
)
