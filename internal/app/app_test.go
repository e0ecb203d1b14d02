package app_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mars/internal/app"
	"go.trai.ch/mars/internal/core/domain"
	"go.trai.ch/mars/internal/core/ports/mocks"
	"go.trai.ch/mars/internal/engine/assembler"
	"go.trai.ch/mars/internal/engine/invocation"
	"go.trai.ch/mars/internal/engine/planner"
	"go.uber.org/mock/gomock"
)

const (
	root = "/src/servo"
	cwd  = "/src/servo/components/script"
)

var linuxHost = domain.HostFacts{
	Triple:  "x86_64-unknown-linux-gnu",
	OS:      "linux",
	Arch:    "x86_64",
	HomeDir: "/home/dev",
}

type harness struct {
	loader    *mocks.MockConfigLoader
	host      *mocks.MockHostInspector
	prober    *mocks.MockProber
	toolchain *mocks.MockToolchainSource
	executor  *mocks.MockExecutor
	logger    *mocks.MockLogger
	app       *app.App
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	h := &harness{
		loader:    mocks.NewMockConfigLoader(ctrl),
		host:      mocks.NewMockHostInspector(ctrl),
		prober:    mocks.NewMockProber(ctrl),
		toolchain: mocks.NewMockToolchainSource(ctrl),
		executor:  mocks.NewMockExecutor(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}
	h.app = app.New(
		h.loader,
		h.host,
		planner.New(h.prober),
		assembler.New(h.prober),
		invocation.New(h.toolchain),
		h.executor,
		h.logger,
	).WithEnviron(func() []string { return []string{"PATH=/usr/bin"} })

	return h
}

func (h *harness) expectCheckout(cfg domain.PersistedConfig) {
	h.loader.EXPECT().DiscoverRoot(cwd).Return(root, nil)
	h.loader.EXPECT().Load(root).Return(cfg)
	h.host.EXPECT().Inspect().Return(linuxHost)
}

func ptr[T any](v T) *T { return &v }

func clock(times ...time.Time) func() time.Time {
	i := 0
	return func() time.Time {
		t := times[i]
		if i < len(times)-1 {
			i++
		}
		return t
	}
}

func TestApp_Plan(t *testing.T) {
	h := newHarness(t)
	h.expectCheckout(domain.PersistedConfig{})
	h.prober.EXPECT().Exists(filepath.Join(root, "target", "release", "servo")).Return(false)
	h.prober.EXPECT().Exists(filepath.Join(root, "target", "debug", "servo")).Return(true)
	h.toolchain.EXPECT().Toolchain(root).Return("nightly-2020-02-27", nil)

	plan, err := h.app.Plan(cwd, domain.BuildRequest{Jobs: 8})
	require.NoError(t, err)

	assert.Equal(t, root, plan.Root)
	assert.Equal(t, linuxHost.Triple, plan.Host)
	assert.Empty(t, plan.Target)
	assert.Equal(t, domain.PlatformDesktop, plan.Platform)
	assert.Equal(t, domain.ModeDev, plan.Mode)
	assert.Equal(t, filepath.Join(root, "target", "debug", "servo"), plan.OutputPath)
	assert.Equal(t, []string{
		"media-gstreamer", "native-bluetooth", "egl", "canvas2d-azure", "layout-2013",
	}, plan.Features)
	assert.True(t, plan.Package)
	assert.Equal(t, "/usr/bin", plan.Env["PATH"])
	assert.Equal(t, filepath.Join(root, ".cargo"), plan.Env["CARGO_HOME"])

	assert.Equal(t, "rustup", plan.Invocation.Binary)
	assert.Equal(t, []string{
		"run", "--install", "nightly-2020-02-27", "cargo",
		"build", "--manifest-path", filepath.Join(root, "ports", "glutin", "Cargo.toml"),
		"--features", "media-gstreamer native-bluetooth egl canvas2d-azure layout-2013",
		"-Ztimings=info",
		"-j", "8",
	}, plan.Invocation.Args)
	assert.Equal(t, plan.Env, plan.Invocation.Env)
}

func TestApp_PlanModeAmbiguous(t *testing.T) {
	h := newHarness(t)
	h.expectCheckout(domain.PersistedConfig{})
	h.prober.EXPECT().Exists(gomock.Any()).Return(false).Times(2)

	_, err := h.app.Plan(cwd, domain.BuildRequest{})
	require.ErrorContains(t, err, domain.ErrModeAmbiguous.Error())
}

func TestApp_PlanModeConflictReportedFirst(t *testing.T) {
	tests := []struct {
		name string
		req  domain.BuildRequest
	}{
		{
			name: "invalid android target",
			req:  domain.BuildRequest{Release: true, Dev: true, Android: true, Target: "x86_64-unknown-linux-gnu"},
		},
		{
			name: "conflicting platforms",
			req:  domain.BuildRequest{Release: true, Dev: true, Android: true, MagicLeap: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)

			_, err := h.app.Plan(cwd, tt.req)
			require.ErrorIs(t, err, domain.ErrModeConflict)
		})
	}
}

func TestApp_PlanRootNotFound(t *testing.T) {
	h := newHarness(t)
	h.loader.EXPECT().DiscoverRoot(cwd).Return("", domain.ErrRepoRootNotFound)

	_, err := h.app.Plan(cwd, domain.BuildRequest{Release: true})
	require.ErrorIs(t, err, domain.ErrRepoRootNotFound)
}

func TestApp_PlanInvalidAndroidTarget(t *testing.T) {
	h := newHarness(t)
	h.expectCheckout(domain.PersistedConfig{})

	_, err := h.app.Plan(cwd, domain.BuildRequest{Android: true, Target: "x86_64-unknown-linux-gnu"})
	require.ErrorContains(t, err, domain.ErrInvalidAndroidTarget.Error())
}

func TestApp_PlanToolchainUnreadable(t *testing.T) {
	h := newHarness(t)
	h.expectCheckout(domain.PersistedConfig{})
	h.toolchain.EXPECT().Toolchain(root).Return("", domain.ErrToolchainFileUnreadable)

	_, err := h.app.Plan(cwd, domain.BuildRequest{Release: true})
	require.ErrorContains(t, err, "failed to plan build command")
}

func TestApp_PlanWithoutRustup(t *testing.T) {
	h := newHarness(t)
	h.expectCheckout(domain.PersistedConfig{
		Tools: domain.PersistedTools{UseRustup: ptr(false)},
		Build: domain.PersistedBuild{Mode: ptr("release")},
	})

	plan, err := h.app.Plan(cwd, domain.BuildRequest{NoPackage: true})
	require.NoError(t, err)

	assert.Equal(t, domain.ModeRelease, plan.Mode)
	assert.Equal(t, "cargo", plan.Invocation.Binary)
	assert.Contains(t, plan.Invocation.Args, "--release")
	assert.False(t, plan.Package)
}

func TestApp_Build(t *testing.T) {
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	h := newHarness(t)
	h.app.WithClock(clock(start, start.Add(62*time.Second)))
	h.expectCheckout(domain.PersistedConfig{
		Tools: domain.PersistedTools{UseRustup: ptr(false), NotifyCommand: ptr("notify-send")},
	})

	gomock.InOrder(
		h.executor.EXPECT().Run(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, inv domain.Invocation) error {
				assert.Equal(t, "cargo", inv.Binary)
				assert.Equal(t, "build", inv.Args[0])
				return nil
			}),
		h.logger.EXPECT().Info("Build Completed in 0:01:02"),
		h.executor.EXPECT().Run(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, inv domain.Invocation) error {
				assert.Equal(t, "notify-send", inv.Binary)
				assert.Equal(t, []string{"Servo build", "Completed in 0:01:02"}, inv.Args)
				return nil
			}),
	)

	err := h.app.Build(context.Background(), cwd, domain.BuildRequest{Dev: true})
	require.NoError(t, err)
}

func TestApp_BuildFailure(t *testing.T) {
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	exitErr := errors.New("exit status 101")

	h := newHarness(t)
	h.app.WithClock(clock(start, start.Add(5*time.Second)))
	h.expectCheckout(domain.PersistedConfig{
		Tools: domain.PersistedTools{UseRustup: ptr(false), NotifyCommand: ptr("notify-send")},
	})

	h.executor.EXPECT().Run(gomock.Any(), gomock.Any()).Return(exitErr)
	h.logger.EXPECT().Info("Build FAILED in 0:00:05")

	err := h.app.Build(context.Background(), cwd, domain.BuildRequest{Dev: true})
	require.ErrorIs(t, err, domain.ErrBuildExecutionFailed)
	require.ErrorIs(t, err, exitErr)
}

func TestApp_BuildNotifyFailureOnlyWarns(t *testing.T) {
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	h := newHarness(t)
	h.app.WithClock(clock(start, start.Add(time.Hour)))
	h.expectCheckout(domain.PersistedConfig{
		Tools: domain.PersistedTools{UseRustup: ptr(false), NotifyCommand: ptr("notify-send")},
	})

	h.executor.EXPECT().Run(gomock.Any(), gomock.Any()).Return(nil)
	h.logger.EXPECT().Info("Build Completed in 1:00:00")
	h.executor.EXPECT().Run(gomock.Any(), gomock.Any()).Return(errors.New("not found"))
	h.logger.EXPECT().Warn("notify command failed: not found")

	err := h.app.Build(context.Background(), cwd, domain.BuildRequest{Release: true})
	require.NoError(t, err)
}

func TestApp_BuildVerbose(t *testing.T) {
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	h := newHarness(t)
	h.app.WithClock(clock(start, start.Add(time.Second)))
	h.expectCheckout(domain.PersistedConfig{Tools: domain.PersistedTools{UseRustup: ptr(false)}})

	var logged []string
	h.logger.EXPECT().Info(gomock.Any()).Do(func(msg string) { logged = append(logged, msg) }).AnyTimes()
	h.executor.EXPECT().Run(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inv domain.Invocation) error {
			assert.True(t, inv.Verbose)
			assert.Contains(t, inv.Args, "-vv")
			return nil
		})

	err := h.app.Build(context.Background(), cwd, domain.BuildRequest{Release: true, VeryVerbose: true})
	require.NoError(t, err)

	require.NotEmpty(t, logged)
	assert.Contains(t, logged[0], "build plan ")
	assert.Contains(t, logged, "PATH=/usr/bin")
	assert.Equal(t, "Build Completed in 0:00:01", logged[len(logged)-1])
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{in: 0, want: "0:00:00"},
		{in: 1500 * time.Millisecond, want: "0:00:01"},
		{in: 62 * time.Second, want: "0:01:02"},
		{in: 3*time.Hour + 4*time.Minute + 5*time.Second, want: "3:04:05"},
		{in: 26 * time.Hour, want: "26:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, app.FormatDuration(tt.in))
		})
	}
}
