package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/mars/internal/core/domain"
)

// addSharedFlags registers the target and variant flags every build-like command accepts.
func addSharedFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.StringP("target", "t", "", "Cross compile for given target platform")
	f.String("media-stack", "", "Which media stack to use: gstreamer or dummy")
	f.Bool("android", false, "Build for Android")
	f.Bool("magicleap", false, "Build for Magic Leap")
	f.Bool("libsimpleservo", false, "Build the libsimpleservo library instead of the servo executable")
	f.StringArray("features", nil, "Space-separated list of features to also build")
	f.Bool("debug-mozjs", false, "Enable debug assertions in mozjs")
	f.Bool("with-debug-assertions", false, "Enable debug assertions in release")
	f.Bool("with-frame-pointer", false, "Build with frame pointer enabled, used by the background hang monitor")
	f.Bool("with-raqote", false, "Use the raqote canvas backend")
	f.Bool("with-layout-2020", false, "Build with the 2020 layout engine")
	f.Bool("with-layout-2013", false, "Build with the 2013 layout engine")
	f.Bool("without-wgl", false, "Build without WGL on Windows")
}

// addBuildFlags registers the flags selecting mode, verbosity and windows app builds.
func addBuildFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.BoolP("release", "r", false, "Build in release mode")
	f.BoolP("dev", "d", false, "Build in development mode")
	f.IntP("jobs", "j", 0, "Number of jobs to run in parallel")
	f.BoolP("no-package", "n", false, "Don't package the build output")
	f.BoolP("verbose", "v", false, "Print verbose output")
	f.Bool("very-verbose", false, "Print very verbose output, including the build environment")
	f.BoolP("uwp", "u", false, "Build for HoloLens (x64)")
	f.BoolP("win-arm64", "w", false, "Use arm64 Windows target")
}

// requestFrom reads a BuildRequest out of the parsed flags. params are forwarded to cargo.
func requestFrom(cmd *cobra.Command, params []string) domain.BuildRequest {
	f := cmd.Flags()

	target, _ := f.GetString("target")
	mediaStack, _ := f.GetString("media-stack")
	features, _ := f.GetStringArray("features")
	jobs, _ := f.GetInt("jobs")

	boolFlag := func(name string) bool {
		v, _ := f.GetBool(name)
		return v
	}

	return domain.BuildRequest{
		Target:              target,
		Release:             boolFlag("release"),
		Dev:                 boolFlag("dev"),
		Jobs:                jobs,
		NoPackage:           boolFlag("no-package"),
		Verbose:             boolFlag("verbose"),
		VeryVerbose:         boolFlag("very-verbose"),
		UWP:                 boolFlag("uwp"),
		WinArm64:            boolFlag("win-arm64"),
		Android:             boolFlag("android"),
		MagicLeap:           boolFlag("magicleap"),
		LibSimpleServo:      boolFlag("libsimpleservo"),
		MediaStack:          mediaStack,
		Features:            features,
		DebugMozjs:          boolFlag("debug-mozjs"),
		WithDebugAssertions: boolFlag("with-debug-assertions"),
		WithFramePointer:    boolFlag("with-frame-pointer"),
		WithRaqote:          boolFlag("with-raqote"),
		WithLayout2020:      boolFlag("with-layout-2020"),
		WithLayout2013:      boolFlag("with-layout-2013"),
		WithoutWGL:          boolFlag("without-wgl"),
		Params:              params,
	}
}
