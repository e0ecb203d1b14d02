package domain

// Platform is the single port family an invocation builds for.
type Platform string

const (
	// PlatformDesktop builds the glutin desktop port for the host or a plain cross target.
	PlatformDesktop Platform = "desktop"
	// PlatformAndroid builds the JNI library for android.
	PlatformAndroid Platform = "android"
	// PlatformMagicLeap builds for the Magic Leap AR headset.
	PlatformMagicLeap Platform = "magicleap"
	// PlatformUWP builds a universal windows app.
	PlatformUWP Platform = "uwp"
)

const (
	// UWPMarker identifies universal windows app triples.
	UWPMarker = "uwp"

	// UWPTargetX86_64 is the default universal windows app triple.
	UWPTargetX86_64 = "x86_64-uwp-windows-msvc"

	// UWPTargetArm64 is the arm64 universal windows app triple.
	UWPTargetArm64 = "aarch64-uwp-windows-msvc"

	// MagicLeapTarget is the triple Magic Leap builds compile for.
	MagicLeapTarget = "aarch64-linux-android"
)
