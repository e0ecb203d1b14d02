package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mars/internal/adapters/fs"
	"go.trai.ch/mars/internal/core/domain"
)

func TestProber_Exists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "servo")
	require.NoError(t, os.WriteFile(file, []byte{}, 0o600))

	p := fs.NewProber()
	assert.True(t, p.Exists(file))
	assert.True(t, p.Exists(dir))
	assert.False(t, p.Exists(filepath.Join(dir, "missing")))
}

func TestToolchainFile_Toolchain(t *testing.T) {
	tests := []struct {
		name    string
		content *string
		want    string
		wantErr bool
	}{
		{name: "trims whitespace", content: ptr("nightly-2020-10-01\n"), want: "nightly-2020-10-01"},
		{name: "surrounding blanks", content: ptr("  nightly \r\n\n"), want: "nightly"},
		{name: "empty file", content: ptr("\n"), wantErr: true},
		{name: "missing file", content: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			if tt.content != nil {
				err := os.WriteFile(filepath.Join(root, domain.ToolchainFileName), []byte(*tt.content), 0o600)
				require.NoError(t, err)
			}

			got, err := fs.NewToolchainFile().Toolchain(root)
			if tt.wantErr {
				require.Error(t, err)
				require.ErrorContains(t, err, domain.ErrToolchainFileUnreadable.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func ptr(s string) *string { return &s }
