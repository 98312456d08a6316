package progrock

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/vito/progrock"
	"golang.org/x/term"
)

const (
	statusRunning   = "running"
	statusCompleted = "completed"
	statusFailed    = "failed"
	statusCached    = "cached"
)

// StepState is the last known state of one recorded step.
type StepState struct {
	ID     string
	Name   string
	Status string
	Error  string
	// LastLine is the most recent non-empty output line of the step.
	LastLine string
}

// Summary is a progrock writer that folds status updates into one state per
// step and prints them when the recording is closed.
type Summary struct {
	w      io.Writer
	colors bool

	mu    sync.Mutex
	steps []*StepState
	index map[string]*StepState
}

var _ progrock.Writer = (*Summary)(nil)

// NewSummary creates a Summary printing to w. Colour is used only when w is a terminal.
func NewSummary(w io.Writer) *Summary {
	return &Summary{
		w:      w,
		colors: isTerminal(w),
		index:  make(map[string]*StepState),
	}
}

// WriteStatus applies an update from the recorder.
func (s *Summary) WriteStatus(update *progrock.StatusUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, v := range update.Vertexes {
		s.updateOrAddStep(v)
	}
	for _, l := range update.Logs {
		step, ok := s.index[l.Vertex]
		if !ok {
			continue
		}
		if line := lastLine(l.Data); line != "" {
			step.LastLine = line
		}
	}
	return nil
}

func (s *Summary) updateOrAddStep(v *progrock.Vertex) {
	step, ok := s.index[v.Id]
	if !ok {
		step = &StepState{ID: v.Id, Name: v.Name, Status: statusRunning}
		s.index[v.Id] = step
		s.steps = append(s.steps, step)
	}

	switch {
	case v.Cached:
		step.Status = statusCached
	case v.Completed != nil && v.Error != nil:
		step.Status = statusFailed
		step.Error = *v.Error
	case v.Completed != nil:
		step.Status = statusCompleted
	}
}

// Steps returns a copy of the recorded steps in the order they started.
func (s *Summary) Steps() []StepState {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]StepState, 0, len(s.steps))
	for _, step := range s.steps {
		out = append(out, *step)
	}
	return out
}

// Close prints one line per step.
func (s *Summary) Close() error {
	steps := s.Steps()
	if len(steps) == 0 {
		return nil
	}

	var b strings.Builder
	for _, step := range steps {
		b.WriteString(s.render(step))
	}
	_, err := io.WriteString(s.w, b.String())
	return err
}

func (s *Summary) render(step StepState) string {
	var (
		icon  string
		style *color.Color
	)
	switch step.Status {
	case statusCompleted:
		icon, style = "✓", color.New(color.FgGreen)
	case statusFailed:
		icon, style = "✗", color.New(color.FgRed)
	case statusCached:
		icon, style = "⚡", color.New(color.FgCyan)
	default:
		icon, style = "•", color.New(color.FgYellow)
	}
	if s.colors {
		style.EnableColor()
	} else {
		style.DisableColor()
	}

	line := style.Sprint(icon) + " " + step.Name
	switch step.Status {
	case statusCached:
		line += " (cached)"
	case statusFailed:
		line += ": " + step.Error
		if step.LastLine != "" {
			line += "\n    " + step.LastLine
		}
	case statusRunning:
		line += " (interrupted)"
	}
	return fmt.Sprintln(line)
}

func lastLine(data []byte) string {
	lines := bytes.Split(bytes.TrimRight(data, "\r\n"), []byte("\n"))
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(string(lines[i])); line != "" {
			return line
		}
	}
	return ""
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // fd fits in int
}
