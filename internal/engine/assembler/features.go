package assembler

import (
	"strings"

	"go.trai.ch/mars/internal/core/domain"
	"go.trai.ch/zerr"
)

// Media stacks.
const (
	MediaGStreamer = "gstreamer"
	MediaDummy     = "dummy"
)

// Feature tokens with rules attached.
const (
	FeatureDebugMozjs      = "debugmozjs"
	FeatureNativeBluetooth = "native-bluetooth"
	FeatureEGL             = "egl"
	FeatureUWP             = "uwp"
	FeatureNoWGL           = "no-wgl"
	FeatureCanvasRaqote    = "canvas2d-raqote"
	FeatureCanvasAzure     = "canvas2d-azure"
	FeatureLayout2020      = "layout-2020"
	FeatureLayout2013      = "layout-2013"
	FeatureProfileMozjs    = "profilemozjs"
	FeatureWebGLBacktrace  = "webgl-backtrace"
	FeatureDOMBacktrace    = "dom-backtrace"
)

// Features applies the feature rules in order. Rules that need compiler flags add them to rustflags.
func Features(in Input, rustflags *flagList) (*domain.FeatureSet, error) {
	req := in.Request
	cfg := in.Config.Build
	target := in.Target

	fs := domain.NewFeatureSet(SplitFeatures(req.Features)...)

	media, err := MediaStack(req.MediaStack, target.Target)
	if err != nil {
		return nil, err
	}
	fs.Add("media-" + media)

	if req.DebugMozjs || cfg.DebugMozjs {
		fs.Add(FeatureDebugMozjs)
	}

	if !target.IsMagicLeap() {
		fs.Add(FeatureNativeBluetooth)
	}

	surface, ok := surfaceFeatures[target.Platform]
	if !ok {
		surface = []string{FeatureEGL}
	}
	fs.Add(surface...)

	if !fs.HasAny(FeatureCanvasRaqote, FeatureCanvasAzure) {
		if req.WithRaqote {
			fs.Add(FeatureCanvasRaqote)
		} else {
			fs.Add(FeatureCanvasAzure)
		}
	}

	if !fs.HasAny(FeatureLayout2020, FeatureLayout2013) {
		if req.WithLayout2020 || (cfg.Layout2020 && !req.WithLayout2013) {
			fs.Add(FeatureLayout2020)
		} else {
			fs.Add(FeatureLayout2013)
		}
	}

	if req.WithFramePointer {
		rustflags.add("-C force-frame-pointers=yes")
		fs.Add(FeatureProfileMozjs)
	}

	if req.WithoutWGL {
		fs.Add(FeatureNoWGL)
	}
	if cfg.WebGLBacktrace {
		fs.Add(FeatureWebGLBacktrace)
	}
	if cfg.DOMBacktrace {
		fs.Add(FeatureDOMBacktrace)
	}

	if req.WithDebugAssertions || cfg.DebugAssertions {
		rustflags.add("-C debug_assertions")
	}

	return fs, nil
}

// surfaceFeatures is the graphics binding contributed by each platform.
// Platforms without an entry provide their own libEGL.
var surfaceFeatures = map[domain.Platform][]string{
	domain.PlatformUWP: {FeatureCanvasRaqote, FeatureNoWGL, FeatureUWP},
}

// MediaStack validates an explicit stack or picks one for target.
// GStreamer is used for the host, armv7 android and x86_64 targets.
func MediaStack(explicit, target string) (string, error) {
	switch explicit {
	case MediaGStreamer, MediaDummy:
		return explicit, nil
	case "":
	default:
		return "", zerr.With(domain.ErrInvalidMediaStack, "media_stack", explicit)
	}

	useGStreamer := target == "" ||
		(strings.Contains(target, "armv7") && strings.Contains(target, "android")) ||
		strings.Contains(target, "x86_64")
	if useGStreamer {
		return MediaGStreamer, nil
	}
	return MediaDummy, nil
}

// SplitFeatures flattens feature arguments that may hold several tokens separated
// by spaces or commas.
func SplitFeatures(raw []string) []string {
	var out []string
	for _, r := range raw {
		out = append(out, strings.FieldsFunc(r, func(c rune) bool {
			return c == ' ' || c == ','
		})...)
	}
	return out
}
