package main

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"algolab/internal/benchmark"
	"algolab/internal/config"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// fakeLab returns canned rows without timing anything.
type fakeLab struct {
	cfg        *config.Config
	err        error
	sizes      []int
	iterations int
}

func rowFor(size int) benchmark.ResultRow {
	return benchmark.ResultRow{
		DataSize:           size,
		Iterative:          float64(size) / 10000,
		Recursive:          float64(size) / 2000,
		Sort:               float64(size) / 1000,
		RecursiveEstimated: size > benchmark.DefaultRecursionLimit,
	}
}

func (f *fakeLab) Run(ctx context.Context, sizes []int, iterations int, progress benchmark.ProgressFunc) ([]benchmark.ResultRow, error) {
	f.sizes = sizes
	f.iterations = iterations
	if f.err != nil {
		return nil, f.err
	}
	rows := make([]benchmark.ResultRow, 0, len(sizes))
	for i, s := range sizes {
		rows = append(rows, rowFor(s))
		if progress != nil {
			progress(float64(i+1) / float64(len(sizes)) * 100)
		}
	}
	return rows, nil
}

func (f *fakeLab) RunSize(ctx context.Context, size, iterations int) (benchmark.ResultRow, error) {
	f.sizes = append(f.sizes, size)
	f.iterations = iterations
	if f.err != nil {
		return benchmark.ResultRow{}, f.err
	}
	return rowFor(size), nil
}

// setupCLI isolates a command test from the host: a clean viper, an empty
// working directory and a fake lab.
func setupCLI(t *testing.T) *fakeLab {
	t.Helper()
	t.Chdir(t.TempDir())
	viper.Reset()

	oldLab, oldProgram, oldAsk := newLabFunc, runProgramFunc, askOneFunc
	oldLogger := slog.Default()
	lab := &fakeLab{}
	newLabFunc = func(cfg *config.Config, obs benchmark.Observer) labRunner {
		lab.cfg = cfg
		return lab
	}
	t.Cleanup(func() {
		newLabFunc, runProgramFunc, askOneFunc = oldLab, oldProgram, oldAsk
		cfgFile = ""
		viper.Reset()
		slog.SetDefault(oldLogger)
	})
	return lab
}

// executeCommand executes a cobra command and returns its output.
func executeCommand(root *cobra.Command, args ...string) (string, error) {
	resetFlags(root)
	oldExit := exit
	exit = func(code int) {
		if code != 0 {
			panic(fmt.Sprintf("exit-%d", code))
		}
	}
	defer func() { exit = oldExit }()

	root.SetArgs(args)
	b := new(bytes.Buffer)
	root.SetOut(b)
	root.SetErr(b)
	root.SetIn(bytes.NewBufferString(""))
	err := root.Execute()
	return b.String(), err
}

// resetFlags resets all flags to their default values.
func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if !f.Changed {
			return
		}
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			def := strings.Trim(f.DefValue, "[]")
			var vals []string
			if def != "" {
				vals = strings.Split(def, ",")
			}
			sv.Replace(vals)
		} else {
			f.Value.Set(f.DefValue)
		}
		f.Changed = false
	})
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// driveProgram plays the role of tea.Program without a terminal. Progress
// bar animation frames are dropped.
func driveProgram(m tea.Model) tea.Model {
	queue := []tea.Cmd{m.Init()}
	for len(queue) > 0 {
		cmd := queue[0]
		queue = queue[1:]
		if cmd == nil {
			continue
		}
		switch msg := cmd().(type) {
		case tea.QuitMsg:
			return m
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case progress.FrameMsg:
		default:
			var next tea.Cmd
			m, next = m.Update(msg)
			queue = append(queue, next)
		}
	}
	return m
}
