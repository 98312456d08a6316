package commands_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/abicheck/cmd/abi-check/commands"
	"go.trai.ch/abicheck/internal/app"
	"go.trai.ch/abicheck/internal/build"
	"go.trai.ch/abicheck/internal/core/domain"
	"go.trai.ch/abicheck/internal/core/ports"
	"go.trai.ch/abicheck/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	loader     *mocks.MockSettingsLoader
	vcs        *mocks.MockVCS
	revisions  *mocks.MockRevisionStore
	workspaces *mocks.MockWorkspaceManager
	tools      *mocks.MockToolChecker
	logger     *mocks.MockLogger
	cli        *commands.CLI
	out        *bytes.Buffer
	root       string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		loader:     mocks.NewMockSettingsLoader(ctrl),
		vcs:        mocks.NewMockVCS(ctrl),
		revisions:  mocks.NewMockRevisionStore(ctrl),
		workspaces: mocks.NewMockWorkspaceManager(ctrl),
		tools:      mocks.NewMockToolChecker(ctrl),
		logger:     mocks.NewMockLogger(ctrl),
		out:        &bytes.Buffer{},
		root:       t.TempDir(),
	}

	vertex := mocks.NewMockVertex(ctrl)
	vertex.EXPECT().Complete(gomock.Any()).AnyTimes()
	telemetry := mocks.NewMockTelemetry(ctrl)
	telemetry.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string) (context.Context, ports.Vertex) {
			return ctx, vertex
		}).AnyTimes()
	telemetry.EXPECT().Close().Return(nil).AnyTimes()
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	a := app.New(
		f.loader, f.vcs,
		mocks.NewMockBuilder(ctrl), mocks.NewMockDumper(ctrl), mocks.NewMockComparator(ctrl),
		f.revisions, mocks.NewMockDumpCache(ctrl), f.workspaces, f.tools, telemetry, f.logger,
	).WithWorkingDir(f.root).WithOutput(f.out)

	f.cli = commands.New(a, f.logger)
	f.cli.SetOutput(f.out)
	return f
}

func TestVersionCommand(t *testing.T) {
	f := newFixture(t)
	f.cli.SetArgs([]string{"version"})

	require.NoError(t, f.cli.Execute(context.Background()))
	assert.Equal(t, "abi-check version "+build.Version+"\n", f.out.String())
}

func TestVersionFlag(t *testing.T) {
	f := newFixture(t)
	f.cli.SetArgs([]string{"--version"})

	require.NoError(t, f.cli.Execute(context.Background()))
	assert.Contains(t, f.out.String(), "abi-check version "+build.Version)
	assert.Contains(t, f.out.String(), "commit "+build.Commit)
}

func TestUpdateFlag(t *testing.T) {
	f := newFixture(t)
	ws := &domain.Workspace{Dir: filepath.Join(t.TempDir(), "ws")}
	settings := &domain.Settings{Root: f.root, BaseDir: f.root}

	f.loader.EXPECT().Load(f.root, "custom.yaml").Return(settings, nil)
	f.tools.EXPECT().CheckTools(domain.ToolGit).Return(nil)
	f.workspaces.EXPECT().Create().Return(ws, nil)
	f.workspaces.EXPECT().Release(ws).Return(nil)
	f.vcs.EXPECT().PruneWorktrees(gomock.Any(), f.root).Return(nil)
	f.vcs.EXPECT().Head(gomock.Any(), f.root).Return(domain.Revision("cafe"), nil)
	f.revisions.EXPECT().Write(filepath.Join(f.root, domain.RevisionFileName), domain.Revision("cafe")).Return(nil)

	f.cli.SetArgs([]string{"-u", "-c", "custom.yaml"})
	require.NoError(t, f.cli.Execute(context.Background()))
}

func TestInvalidOldRevision(t *testing.T) {
	f := newFixture(t)
	ws := &domain.Workspace{Dir: filepath.Join(t.TempDir(), "ws")}

	f.loader.EXPECT().Load(f.root, "").Return(&domain.Settings{Root: f.root}, nil)
	f.tools.EXPECT().CheckTools(gomock.Any()).Return(nil)
	f.workspaces.EXPECT().Create().Return(ws, nil)
	f.workspaces.EXPECT().Release(ws).Return(nil)
	f.vcs.EXPECT().PruneWorktrees(gomock.Any(), f.root).Return(nil)

	f.cli.SetArgs([]string{"--old=-x", "--new", "HEAD"})
	err := f.cli.Execute(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidRevision)
}

func TestUnexpectedArguments(t *testing.T) {
	f := newFixture(t)
	f.cli.SetArgs([]string{"extra"})

	require.Error(t, f.cli.Execute(context.Background()))
}
