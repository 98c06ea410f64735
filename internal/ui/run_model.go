package ui

import (
	"context"
	"fmt"
	"strings"

	"algolab/internal/algorithms"
	"algolab/internal/benchmark"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// RowRunner benchmarks a single dataset size.
type RowRunner interface {
	RunSize(ctx context.Context, dataSize, iterations int) (benchmark.ResultRow, error)
}

type rowDoneMsg struct {
	row benchmark.ResultRow
}

type rowFailedMsg struct {
	size int
	err  error
}

// RunModel drives a benchmark one row per command, so the progress bar is
// repainted between rows.
type RunModel struct {
	ctx        context.Context
	runner     RowRunner
	observer   benchmark.Observer
	sizes      []int
	iterations int
	show       []algorithms.Kind

	rows     []benchmark.ResultRow
	next     int
	err      error
	done     bool
	quitting bool

	progress progress.Model
	help     help.Model
	width    int
}

// NewRunModel prepares a run over sizes. observer may be nil.
func NewRunModel(ctx context.Context, runner RowRunner, observer benchmark.Observer, sizes []int, iterations int, show []algorithms.Kind) RunModel {
	return RunModel{
		ctx:        ctx,
		runner:     runner,
		observer:   observer,
		sizes:      sizes,
		iterations: iterations,
		show:       show,
		progress:   progress.New(progress.WithDefaultGradient()),
		help:       help.New(),
	}
}

func (m RunModel) Init() tea.Cmd {
	if len(m.sizes) == 0 {
		return tea.Quit
	}
	return m.runNext()
}

func (m RunModel) runNext() tea.Cmd {
	ctx, runner, size, iterations := m.ctx, m.runner, m.sizes[m.next], m.iterations
	return func() tea.Msg {
		if err := ctx.Err(); err != nil {
			return rowFailedMsg{size: size, err: err}
		}
		row, err := runner.RunSize(ctx, size, iterations)
		if err != nil {
			return rowFailedMsg{size: size, err: err}
		}
		return rowDoneMsg{row: row}
	}
}

func (m RunModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, runKeys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = msg.Width - 4
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		return m, nil

	case rowDoneMsg:
		m.rows = append(m.rows, msg.row)
		m.next++
		percent := float64(m.next) / float64(len(m.sizes))
		if m.observer != nil {
			m.observer.RowCompleted(msg.row, percent*100)
		}

		cmds := []tea.Cmd{m.progress.SetPercent(percent)}
		if m.next < len(m.sizes) {
			cmds = append(cmds, m.runNext())
		} else {
			m.done = true
			cmds = append(cmds, tea.Quit)
		}
		return m, tea.Batch(cmds...)

	case rowFailedMsg:
		m.err = fmt.Errorf("benchmark n=%d: %w", msg.size, msg.err)
		if m.observer != nil {
			m.observer.RunFailed(m.err)
		}
		return m, tea.Quit

	case progress.FrameMsg:
		pm, cmd := m.progress.Update(msg)
		m.progress = pm.(progress.Model)
		return m, cmd
	}

	return m, nil
}

func (m RunModel) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder
	s.WriteString(headerStyle.Render("ALGORITHM PERFORMANCE LAB") + "\n\n")
	s.WriteString(RenderConfidence(m.iterations) + "\n\n")

	switch {
	case m.err != nil:
		s.WriteString(errorStyle.Render("Benchmark failed: "+m.err.Error()) + "\n")
	case m.done:
		s.WriteString(fmt.Sprintf("Benchmark complete: %d dataset sizes, %d iterations each\n", len(m.sizes), m.iterations))
	case m.next < len(m.sizes):
		s.WriteString(fmt.Sprintf("Running n = %s (%d/%d)\n", formatCount(m.sizes[m.next]), m.next+1, len(m.sizes)))
	}
	s.WriteString(m.progress.View() + "\n\n")

	if len(m.rows) > 0 {
		s.WriteString(RenderTable(m.rows, m.show) + "\n")
	}
	s.WriteString(helpStyle.Render(m.help.View(runKeys)))
	return s.String()
}

// Rows returns the completed rows, or nil if the run failed or was
// abandoned.
func (m RunModel) Rows() []benchmark.ResultRow {
	if m.err != nil || !m.done {
		return nil
	}
	return m.rows
}

// Err returns the failure that aborted the run, if any.
func (m RunModel) Err() error {
	return m.err
}

// Quit reports whether the user left before completion.
func (m RunModel) Quit() bool {
	return m.quitting && !m.done
}
