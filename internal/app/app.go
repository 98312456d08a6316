// Package app implements the application layer for abi-check.
package app

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/abicheck/internal/core/domain"
	"go.trai.ch/abicheck/internal/core/ports"
	"go.trai.ch/abicheck/internal/ui/banner"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader     ports.SettingsLoader
	vcs        ports.VCS
	builder    ports.Builder
	dumper     ports.Dumper
	comparator ports.Comparator
	revisions  ports.RevisionStore
	cache      ports.DumpCache
	workspaces ports.WorkspaceManager
	tools      ports.ToolChecker
	telemetry  ports.Telemetry
	logger     ports.Logger

	stdout     io.Writer
	workingDir string
}

// New creates a new App instance.
func New(
	loader ports.SettingsLoader,
	vcs ports.VCS,
	builder ports.Builder,
	dumper ports.Dumper,
	comparator ports.Comparator,
	revisions ports.RevisionStore,
	cache ports.DumpCache,
	workspaces ports.WorkspaceManager,
	tools ports.ToolChecker,
	telemetry ports.Telemetry,
	log ports.Logger,
) *App {
	return &App{
		loader:     loader,
		vcs:        vcs,
		builder:    builder,
		dumper:     dumper,
		comparator: comparator,
		revisions:  revisions,
		cache:      cache,
		workspaces: workspaces,
		tools:      tools,
		telemetry:  telemetry,
		logger:     log,
		stdout:     os.Stdout,
	}
}

// WithOutput sets the writer receiving the ABI break banner.
func (a *App) WithOutput(w io.Writer) *App {
	a.stdout = w
	return a
}

// WithWorkingDir overrides the directory used for settings discovery and
// repository detection. Empty means the process working directory.
func (a *App) WithWorkingDir(dir string) *App {
	a.workingDir = dir
	return a
}

// CheckOptions configures a single Check call.
type CheckOptions struct {
	// Old is the baseline revision. Empty reads the revision file.
	Old string
	// New is the candidate revision. Empty means HEAD.
	New string
	// Update records HEAD in the revision file instead of comparing.
	Update bool
	// ConfigPath points at a settings file. Empty searches for one.
	ConfigPath string
	// NoCache disables the dump cache.
	NoCache bool
}

// Check either updates the revision file or compares the ABI of two revisions.
// The workspace and any linked worktrees are cleaned up on every path out.
func (a *App) Check(ctx context.Context, opts CheckOptions) error {
	defer func() {
		if closeErr := a.telemetry.Close(); closeErr != nil {
			a.logger.Warn("failed to close telemetry: " + closeErr.Error())
		}
	}()

	settings, err := a.loadSettings(ctx, opts.ConfigPath)
	if err != nil {
		return err
	}

	tools := domain.CompareTools()
	if opts.Update {
		tools = []string{domain.ToolGit}
	}
	if err := a.tools.CheckTools(tools...); err != nil {
		return err
	}

	ws, err := a.workspaces.Create()
	if err != nil {
		return err
	}
	defer a.cleanup(ctx, settings, ws)

	if opts.Update {
		return a.update(ctx, settings)
	}

	revs, err := a.resolveRevisions(ctx, settings, opts)
	if err != nil {
		return err
	}
	return a.compare(ctx, settings, ws, revs, !opts.NoCache)
}

func (a *App) loadSettings(ctx context.Context, configPath string) (domain.Settings, error) {
	cwd := a.workingDir
	if cwd == "" {
		var err error
		if cwd, err = os.Getwd(); err != nil {
			return domain.Settings{}, zerr.Wrap(err, "failed to get working directory")
		}
	}

	loaded, err := a.loader.Load(cwd, configPath)
	if err != nil {
		return domain.Settings{}, zerr.Wrap(err, "failed to load settings")
	}

	root := loaded.Root
	if root == "" {
		if root, err = a.vcs.TopLevel(ctx, cwd); err != nil {
			return domain.Settings{}, err
		}
	}

	settings := loaded.WithDefaults(root)
	if err := settings.Validate(); err != nil {
		return domain.Settings{}, zerr.Wrap(err, "invalid settings")
	}
	return settings, nil
}

// revisions maps each label to the commit it was resolved to.
type revisions map[domain.Label]domain.Revision

func (a *App) resolveRevisions(ctx context.Context, s domain.Settings, opts CheckOptions) (revisions, error) {
	var (
		oldRev domain.Revision
		newRev domain.Revision
		err    error
	)

	if opts.Old != "" {
		oldRev, err = domain.ParseRevision(opts.Old)
	} else {
		oldRev, err = a.revisions.Read(s.RevisionFile)
	}
	if err != nil {
		return nil, err
	}

	if opts.New != "" {
		newRev, err = domain.ParseRevision(opts.New)
	} else {
		newRev, err = a.vcs.Head(ctx, s.Root)
	}
	if err != nil {
		return nil, err
	}

	requested := revisions{domain.LabelOld: oldRev, domain.LabelNew: newRev}
	revs := revisions{}
	for _, label := range domain.Labels() {
		commit, err := a.vcs.ResolveCommit(ctx, s.Root, requested[label])
		if err != nil {
			return nil, zerr.With(err, "label", label.String())
		}
		revs[label] = commit
	}

	a.logger.Info("old revision: " + revs[domain.LabelOld].String())
	a.logger.Info("new revision: " + revs[domain.LabelNew].String())
	return revs, nil
}

func (a *App) update(ctx context.Context, s domain.Settings) error {
	return a.step(ctx, "update", func(ctx context.Context) error {
		head, err := a.vcs.Head(ctx, s.Root)
		if err != nil {
			return err
		}
		if err := a.revisions.Write(s.RevisionFile, head); err != nil {
			return err
		}
		a.logger.Info("published ABI revision set to " + head.String())
		return nil
	})
}

func (a *App) compare(
	ctx context.Context,
	s domain.Settings,
	ws *domain.Workspace,
	revs revisions,
	useCache bool,
) error {
	layout := s.Layout()
	if err := os.MkdirAll(layout.OutputDir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create output directory"), "dir", layout.OutputDir)
	}

	for _, label := range domain.Labels() {
		if useCache && a.restoreDumps(ctx, s, layout, label, revs[label]) {
			continue
		}
		if err := a.dumpRevision(ctx, s, layout, ws, label, revs[label], useCache); err != nil {
			return err
		}
	}

	for _, lib := range s.Libraries {
		if err := a.compareLibrary(ctx, layout, lib); err != nil {
			return err
		}
	}
	return nil
}

// dumpRevision snapshots, builds and dumps every library for one side of the comparison.
func (a *App) dumpRevision(
	ctx context.Context,
	s domain.Settings,
	layout domain.Layout,
	ws *domain.Workspace,
	label domain.Label,
	rev domain.Revision,
	useCache bool,
) error {
	snapshotDir := ws.SnapshotDir(label)
	buildDir := ws.BuildDir(label)

	if err := a.step(ctx, "snapshot "+label.String(), func(ctx context.Context) error {
		return a.vcs.AddWorktree(ctx, s.Root, snapshotDir, rev)
	}); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to snapshot revision"), "revision", rev.String())
	}

	if err := a.step(ctx, "configure "+label.String(), func(ctx context.Context) error {
		return a.builder.Configure(ctx, snapshotDir, buildDir, s.CFlags)
	}); err != nil {
		return zerr.With(err, "label", label.String())
	}

	for _, lib := range s.Libraries {
		suffix := " " + lib.Name + " (" + label.String() + ")"

		if err := a.step(ctx, "build"+suffix, func(ctx context.Context) error {
			return a.builder.Build(ctx, buildDir, lib.TargetName(), s.Jobs)
		}); err != nil {
			return zerr.With(zerr.With(err, "library", lib.Name), "label", label.String())
		}

		dumpPath := layout.DumpPath(lib.Name, label)
		if err := a.step(ctx, "dump"+suffix, func(ctx context.Context) error {
			return a.dumper.Dump(ctx, ports.DumpRequest{
				Label:         label,
				Artifact:      lib.ArtifactName(),
				PublicHeaders: filepath.Join(snapshotDir, s.PublicHeaders),
				Output:        dumpPath,
				WorkingDir:    buildDir,
			})
		}); err != nil {
			return zerr.With(zerr.With(err, "library", lib.Name), "label", label.String())
		}

		if useCache {
			if err := a.cache.Store(layout.CacheDir(), dumpKey(s, lib, label, rev), dumpPath); err != nil {
				a.logger.Warn("failed to cache dump for " + lib.Name + ": " + err.Error())
			}
		}
	}
	return nil
}

// restoreDumps reports whether every library's dump for label came from the cache.
func (a *App) restoreDumps(
	ctx context.Context,
	s domain.Settings,
	layout domain.Layout,
	label domain.Label,
	rev domain.Revision,
) bool {
	_, vertex := a.telemetry.Record(ctx, "restore "+label.String())

	for _, lib := range s.Libraries {
		hit, err := a.cache.Restore(layout.CacheDir(), dumpKey(s, lib, label, rev), layout.DumpPath(lib.Name, label))
		if err != nil {
			a.logger.Warn("ignoring dump cache for " + lib.Name + ": " + err.Error())
		}
		if err != nil || !hit {
			vertex.Complete(nil)
			return false
		}
	}

	a.logger.Info("using cached dumps for " + label.String() + " revision " + rev.String())
	vertex.Cached()
	return true
}

func (a *App) compareLibrary(ctx context.Context, layout domain.Layout, lib domain.Library) error {
	var result domain.CompareResult

	if err := a.step(ctx, "compare "+lib.Name, func(ctx context.Context) error {
		var err error
		result, err = a.comparator.Compare(ctx,
			lib.Name,
			layout.DumpPath(lib.Name, domain.LabelOld),
			layout.DumpPath(lib.Name, domain.LabelNew),
			layout.ReportPath(lib.Name),
		)
		return err
	}); err != nil {
		return err
	}

	if result.Compatible {
		a.logger.Info(lib.Name + ": no ABI break detected")
		return nil
	}

	if err := banner.Render(a.stdout, lib.Name, result.ReportPath); err != nil {
		a.logger.Warn("failed to print banner: " + err.Error())
	}
	return errors.Join(
		domain.ErrABIBreak,
		zerr.With(zerr.New("incompatible changes in "+lib.Name), "report", result.ReportPath),
	)
}

// cleanup restores the working directory, removes the workspace and prunes
// stale worktree registrations. Failures are logged, never returned.
func (a *App) cleanup(ctx context.Context, s domain.Settings, ws *domain.Workspace) {
	ctx = context.WithoutCancel(ctx)

	ctx, vertex := a.telemetry.Record(ctx, "cleanup")
	warn := func(msg string) {
		a.logger.Warn(msg)
		vertex.Log(domain.LogLevelWarn, msg)
	}

	if err := a.workspaces.Release(ws); err != nil {
		warn("failed to remove workspace: " + err.Error())
	}
	if err := a.vcs.PruneWorktrees(ctx, s.Root); err != nil {
		warn("failed to prune worktrees: " + err.Error())
	}
	vertex.Complete(nil)
}

func (a *App) step(ctx context.Context, name string, fn func(context.Context) error) error {
	ctx, vertex := a.telemetry.Record(ctx, name)
	err := fn(ctx)
	vertex.Complete(err)
	return err
}

func dumpKey(s domain.Settings, lib domain.Library, label domain.Label, rev domain.Revision) domain.DumpKey {
	return domain.DumpKey{
		Commit:        rev,
		Library:       lib,
		Label:         label,
		CFlags:        s.CFlags,
		PublicHeaders: s.PublicHeaders,
	}
}
