package domain

// BuildRequest is the user's intent for one build, taken verbatim from the command line.
// Zero values mean "not given".
type BuildRequest struct {
	// Target is the explicit target triple, empty for the host.
	Target string

	Release bool
	Dev     bool
	// Jobs is the cargo job count, 0 when unset.
	Jobs        int
	NoPackage   bool
	Verbose     bool
	VeryVerbose bool

	// UWP requests a universal windows app build; WinArm64 selects its arm64 flavour.
	UWP      bool
	WinArm64 bool

	Android        bool
	MagicLeap      bool
	LibSimpleServo bool

	// MediaStack is "gstreamer", "dummy" or empty for automatic selection.
	MediaStack string
	// Features are extra cargo features requested by the caller.
	Features []string

	DebugMozjs          bool
	WithDebugAssertions bool
	WithFramePointer    bool
	WithRaqote          bool
	WithLayout2020      bool
	WithLayout2013      bool
	WithoutWGL          bool

	// Params are forwarded to cargo unchanged.
	Params []string
}
