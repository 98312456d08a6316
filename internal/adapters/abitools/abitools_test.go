package abitools_test

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/abicheck/internal/adapters/abitools"
	"go.trai.ch/abicheck/internal/adapters/shell"
	"go.trai.ch/abicheck/internal/core/domain"
	"go.trai.ch/abicheck/internal/core/ports"
	"go.trai.ch/abicheck/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestDumper_Dump(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)

	executor.EXPECT().Run(gomock.Any(), domain.Command{
		Name: "abi-dumper",
		Args: []string{
			"-lver", "old",
			"libvncclient.so",
			"-o", "/out/vncclient-old.dump",
			"-public-headers", "/ws/old/rfb",
		},
		Dir: "/ws/old/build",
	}).Return(nil)

	err := abitools.NewDumper(executor).Dump(context.Background(), ports.DumpRequest{
		Label:         domain.LabelOld,
		Artifact:      "libvncclient.so",
		PublicHeaders: "/ws/old/rfb",
		Output:        "/out/vncclient-old.dump",
		WorkingDir:    "/ws/old/build",
	})
	require.NoError(t, err)
}

func TestDumper_Dump_Fails(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	executor.EXPECT().Run(gomock.Any(), gomock.Any()).Return(&domain.CommandError{ExitCode: 2})

	err := abitools.NewDumper(executor).Dump(context.Background(), ports.DumpRequest{
		Label:    domain.LabelNew,
		Artifact: "libvncserver.so",
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, "abi-dumper failed")
}

func compareCommand() domain.Command {
	return domain.Command{
		Name: "abi-compliance-checker",
		Args: []string{
			"-l", "vncserver",
			"-old", "/out/vncserver-old.dump",
			"-new", "/out/vncserver-new.dump",
			"-report-path", "/out/vncserver-report.html",
		},
	}
}

func TestComparator_Compatible(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	executor.EXPECT().Run(gomock.Any(), compareCommand()).Return(nil)

	result, err := abitools.NewComparator(executor).Compare(context.Background(),
		"vncserver", "/out/vncserver-old.dump", "/out/vncserver-new.dump", "/out/vncserver-report.html")
	require.NoError(t, err)
	assert.True(t, result.Compatible)
	assert.Equal(t, "vncserver", result.Library)
	assert.Equal(t, "/out/vncserver-report.html", result.ReportPath)
}

func TestComparator_Break(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	executor.EXPECT().Run(gomock.Any(), compareCommand()).
		Return(&domain.CommandError{Command: compareCommand(), ExitCode: 1})

	result, err := abitools.NewComparator(executor).Compare(context.Background(),
		"vncserver", "/out/vncserver-old.dump", "/out/vncserver-new.dump", "/out/vncserver-report.html")
	require.NoError(t, err)
	assert.False(t, result.Compatible)
	assert.Equal(t, 1, result.ExitCode)
}

func TestComparator_CannotStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	executor.EXPECT().Run(gomock.Any(), gomock.Any()).Return(errors.New("executable file not found"))

	_, err := abitools.NewComparator(executor).Compare(context.Background(),
		"vncserver", "/out/vncserver-old.dump", "/out/vncserver-new.dump", "/out/vncserver-report.html")
	require.Error(t, err)
	assert.ErrorContains(t, err, "abi-compliance-checker failed")
}

func TestComparator_KilledBySignal(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	executor.EXPECT().Run(gomock.Any(), compareCommand()).
		Return(&domain.CommandError{Command: compareCommand(), ExitCode: -1})

	result, err := abitools.NewComparator(executor).Compare(context.Background(),
		"vncserver", "/out/vncserver-old.dump", "/out/vncserver-new.dump", "/out/vncserver-report.html")
	require.Error(t, err)
	assert.ErrorContains(t, err, "abi-compliance-checker failed")
	assert.True(t, result.Compatible)
}

func TestComparator_ContextCanceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	executor.EXPECT().Run(gomock.Any(), compareCommand()).
		DoAndReturn(func(context.Context, domain.Command) error {
			cancel()
			return &domain.CommandError{Command: compareCommand(), ExitCode: 1}
		})

	_, err := abitools.NewComparator(executor).Compare(ctx,
		"vncserver", "/out/vncserver-old.dump", "/out/vncserver-new.dump", "/out/vncserver-report.html")
	require.ErrorIs(t, err, context.Canceled)
}

func TestComparator_TimeoutWithRealProcess(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	bin := t.TempDir()
	script := "#!/bin/sh\nsleep 10\n"
	require.NoError(t, os.WriteFile(filepath.Join(bin, domain.ToolABIComplianceChecker), []byte(script), 0o755)) //nolint:gosec // test executable
	t.Setenv("PATH", bin+string(os.PathListSeparator)+os.Getenv("PATH"))

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := abitools.NewComparator(shell.NewExecutor(log)).Compare(ctx,
		"vncserver", "old.dump", "new.dump", filepath.Join(t.TempDir(), "report.html"))
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 8*time.Second)
}
