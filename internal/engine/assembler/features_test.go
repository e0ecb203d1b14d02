package assembler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mars/internal/core/domain"
	"go.trai.ch/mars/internal/engine/assembler"
)

func TestMediaStack(t *testing.T) {
	tests := []struct {
		name     string
		explicit string
		target   string
		want     string
	}{
		{name: "host", want: "gstreamer"},
		{name: "armv7 android", target: "armv7-linux-androideabi", want: "gstreamer"},
		{name: "x86_64 cross", target: "x86_64-pc-windows-msvc", want: "gstreamer"},
		{name: "aarch64 android", target: "aarch64-linux-android", want: "dummy"},
		{name: "i686 android", target: "i686-linux-android", want: "dummy"},
		{name: "explicit dummy on host", explicit: "dummy", want: "dummy"},
		{name: "explicit gstreamer on arm", explicit: "gstreamer", target: "aarch64-linux-android", want: "gstreamer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := assembler.MediaStack(tt.explicit, tt.target)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMediaStack_Invalid(t *testing.T) {
	_, err := assembler.MediaStack("vlc", "")
	require.ErrorContains(t, err, domain.ErrInvalidMediaStack.Error())
}

func TestSplitFeatures(t *testing.T) {
	got := assembler.SplitFeatures([]string{"a b", "c,d", "", " e ,, f"})
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, got)
}
