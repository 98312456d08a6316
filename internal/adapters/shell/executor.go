// Package shell provides the process executor adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"go.trai.ch/abicheck/internal/core/domain"
	"go.trai.ch/abicheck/internal/core/ports"
	"go.trai.ch/zerr"
)

// waitDelay bounds how long a killed command may keep its output pipes open.
const waitDelay = 2 * time.Second

var (
	_ ports.Executor    = (*Executor)(nil)
	_ ports.ToolChecker = (*Executor)(nil)
)

// Executor implements ports.Executor using os/exec. Commands are started
// directly, never through a shell.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Run executes cmd, streaming each output line to the logger and, when ctx
// carries a vertex, to the vertex as well.
func (e *Executor) Run(ctx context.Context, cmd domain.Command) error {
	stdout := &logWriter{logger: e.logger, level: domain.LogLevelInfo}
	stderr := &logWriter{logger: e.logger, level: domain.LogLevelWarn}
	defer stdout.Flush()
	defer stderr.Flush()

	var out, errOut io.Writer = stdout, stderr
	if v, ok := ports.VertexFromContext(ctx); ok {
		out = io.MultiWriter(stdout, v.Stdout())
		errOut = io.MultiWriter(stderr, v.Stderr())
	}

	e.logger.Info("running: " + cmd.String())
	return e.run(ctx, cmd, out, errOut)
}

// Output executes cmd and returns what it wrote to stdout. Stderr is logged.
func (e *Executor) Output(ctx context.Context, cmd domain.Command) ([]byte, error) {
	stderr := &logWriter{logger: e.logger, level: domain.LogLevelWarn}
	defer stderr.Flush()

	var buf bytes.Buffer
	if err := e.run(ctx, cmd, &buf, stderr); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *Executor) run(ctx context.Context, cmd domain.Command, stdout, stderr io.Writer) error {
	cmdEnv := resolveEnvironment(os.Environ(), cmd.Env)

	// Resolve the executable using the merged PATH.
	executable := cmd.Name
	if !filepath.IsAbs(cmd.Name) && !strings.ContainsRune(cmd.Name, filepath.Separator) {
		if lp, err := lookPath(cmd.Name, cmdEnv); err == nil {
			executable = lp
		}
	}

	c := exec.CommandContext(ctx, executable, cmd.Args...) //nolint:gosec // arguments are passed without a shell
	if len(c.Args) > 0 {
		c.Args[0] = cmd.Name
	}
	c.Dir = cmd.Dir
	c.Env = cmdEnv
	c.Stdout = stdout
	c.Stderr = stderr
	// Children that inherit the output pipes must not hold up a cancelled run.
	c.WaitDelay = waitDelay

	if err := c.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			cmdErr := &domain.CommandError{Command: cmd, ExitCode: exitErr.ExitCode(), Err: err}
			return zerr.With(zerr.Wrap(cmdErr, "command failed"), "exit_code", exitErr.ExitCode())
		}
		return zerr.With(zerr.Wrap(err, "failed to start command"), "command", cmd.Name)
	}

	return nil
}

// logWriter buffers partial writes and forwards complete lines to the logger.
type logWriter struct {
	logger ports.Logger
	level  domain.LogLevel

	mu  sync.Mutex
	buf []byte
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf = append(w.buf, p...)
	for {
		idx := bytes.IndexByte(w.buf, '\n')
		if idx < 0 {
			break
		}
		w.emit(string(w.buf[:idx]))
		w.buf = w.buf[idx+1:]
	}
	return len(p), nil
}

// Flush forwards any trailing partial line.
func (w *logWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.buf) > 0 {
		w.emit(string(w.buf))
		w.buf = nil
	}
}

func (w *logWriter) emit(line string) {
	line = strings.TrimSuffix(line, "\r")
	if line == "" {
		return
	}
	if w.level >= domain.LogLevelWarn {
		w.logger.Warn(line)
		return
	}
	w.logger.Info(line)
}

// resolveEnvironment layers overrides over the system environment.
// The result is sorted so identical inputs produce identical environments.
func resolveEnvironment(sysEnv []string, overrides map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(overrides))
	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if ok {
			envMap[k] = v
		}
	}

	maps.Copy(envMap, overrides)

	keys := slices.Sorted(maps.Keys(envMap))
	result := make([]string, 0, len(keys))
	for _, k := range keys {
		result = append(result, k+"="+envMap[k])
	}
	return result
}

// lookPath searches for an executable in the directories named by PATH in env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if after, ok := strings.CutPrefix(e, "PATH="); ok {
			path = after
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
