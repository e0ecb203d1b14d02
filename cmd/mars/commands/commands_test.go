package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mars/cmd/mars/commands"
	"go.trai.ch/mars/internal/build"
	"go.trai.ch/mars/internal/core/domain"
	"gopkg.in/yaml.v3"
)

type mockApp struct {
	buildFunc func(ctx context.Context, cwd string, req domain.BuildRequest) error
	planFunc  func(cwd string, req domain.BuildRequest) (*domain.BuildPlan, error)
}

func (m *mockApp) Build(ctx context.Context, cwd string, req domain.BuildRequest) error {
	if m.buildFunc != nil {
		return m.buildFunc(ctx, cwd, req)
	}
	return nil
}

func (m *mockApp) Plan(cwd string, req domain.BuildRequest) (*domain.BuildPlan, error) {
	if m.planFunc != nil {
		return m.planFunc(cwd, req)
	}
	return &domain.BuildPlan{}, nil
}

func TestCommands_Build(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured domain.BuildRequest
		var capturedCwd string

		mock := &mockApp{
			buildFunc: func(_ context.Context, cwd string, req domain.BuildRequest) error {
				capturedCwd = cwd
				captured = req
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetWorkingDir("/src/servo")
		cli.SetArgs([]string{
			"build",
			"-r", "-j", "4", "-v", "--very-verbose", "-n",
			"-t", "aarch64-linux-android", "--android",
			"--media-stack", "dummy",
			"--features", "webdriver layout-2020", "--features", "egl",
			"--with-debug-assertions", "--with-frame-pointer", "--with-raqote",
			"--with-layout-2013", "--without-wgl", "--debug-mozjs",
			"--", "--locked", "-Ztimings=html",
		})

		err := cli.Execute(context.Background())
		require.NoError(t, err)

		assert.Equal(t, "/src/servo", capturedCwd)
		assert.Equal(t, domain.BuildRequest{
			Target:              "aarch64-linux-android",
			Release:             true,
			Jobs:                4,
			NoPackage:           true,
			Verbose:             true,
			VeryVerbose:         true,
			Android:             true,
			MediaStack:          "dummy",
			Features:            []string{"webdriver layout-2020", "egl"},
			DebugMozjs:          true,
			WithDebugAssertions: true,
			WithFramePointer:    true,
			WithRaqote:          true,
			WithLayout2013:      true,
			WithoutWGL:          true,
			Params:              []string{"--locked", "-Ztimings=html"},
		}, captured)
	})

	t.Run("windows app flags", func(t *testing.T) {
		var captured domain.BuildRequest
		mock := &mockApp{
			buildFunc: func(_ context.Context, _ string, req domain.BuildRequest) error {
				captured = req
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetWorkingDir("/src/servo")
		cli.SetArgs([]string{"--libsimpleservo", "build", "-d", "-u", "-w"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.True(t, captured.Dev)
		assert.True(t, captured.UWP)
		assert.True(t, captured.WinArm64)
		assert.True(t, captured.LibSimpleServo)
		assert.Empty(t, captured.Params)
	})

	t.Run("arguments after the first parameter are forwarded", func(t *testing.T) {
		var captured domain.BuildRequest
		mock := &mockApp{
			buildFunc: func(_ context.Context, _ string, req domain.BuildRequest) error {
				captured = req
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetWorkingDir("/src/servo")
		cli.SetArgs([]string{"build", "--dev", "--locked", "--offline"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.True(t, captured.Dev)
		assert.Equal(t, []string{"--locked", "--offline"}, captured.Params)
	})

	t.Run("returns error on build failure", func(t *testing.T) {
		mock := &mockApp{
			buildFunc: func(_ context.Context, _ string, _ domain.BuildRequest) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetWorkingDir("/src/servo")
		cli.SetArgs([]string{"build", "--release"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Plan(t *testing.T) {
	t.Run("prints the plan as yaml", func(t *testing.T) {
		mock := &mockApp{
			planFunc: func(_ string, req domain.BuildRequest) (*domain.BuildPlan, error) {
				assert.True(t, req.Release)
				return &domain.BuildPlan{
					Root:       "/src/servo",
					Host:       "x86_64-unknown-linux-gnu",
					Platform:   domain.PlatformDesktop,
					Mode:       domain.ModeRelease,
					OutputPath: "/src/servo/target/release/servo",
					Features:   []string{"egl"},
					Env:        domain.Environ{"SECRET": "hidden"},
					Invocation: domain.Invocation{Binary: "cargo", Args: []string{"build"}},
					Package:    true,
				}, nil
			},
		}

		cli := commands.New(mock)
		cli.SetWorkingDir("/src/servo")
		out := new(bytes.Buffer)
		cli.SetOutput(out, new(bytes.Buffer))
		cli.SetArgs([]string{"plan", "--release"})

		require.NoError(t, cli.Execute(context.Background()))

		var decoded map[string]any
		require.NoError(t, yaml.Unmarshal(out.Bytes(), &decoded))
		assert.Equal(t, "release", decoded["mode"])
		assert.Equal(t, "desktop", decoded["platform"])
		assert.Equal(t, "/src/servo/target/release/servo", decoded["output_path"])
		assert.NotContains(t, decoded, "target")
		assert.NotContains(t, out.String(), "SECRET")
		assert.Equal(t, map[string]any{"binary": "cargo", "args": []any{"build"}}, decoded["invocation"])
	})

	t.Run("returns plan errors", func(t *testing.T) {
		mock := &mockApp{
			planFunc: func(_ string, _ domain.BuildRequest) (*domain.BuildPlan, error) {
				return nil, domain.ErrModeAmbiguous
			},
		}

		cli := commands.New(mock)
		cli.SetWorkingDir("/src/servo")
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"plan"})

		err := cli.Execute(context.Background())
		require.ErrorIs(t, err, domain.ErrModeAmbiguous)
	})
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "mars version "+build.Version)
}
