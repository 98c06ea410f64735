package ui

import (
	"fmt"
	"strings"
	"time"

	"algolab/internal/algorithms"
	"algolab/internal/trace"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type traceTickMsg struct {
	id int
}

// PlayerSpeed configures the animation interval.
type PlayerSpeed struct {
	Interval time.Duration
	Min      time.Duration
	Step     time.Duration
}

// DefaultPlayerSpeed matches the visualizer defaults: 500ms per step,
// 200ms faster per press, never below 100ms.
var DefaultPlayerSpeed = PlayerSpeed{
	Interval: 500 * time.Millisecond,
	Min:      100 * time.Millisecond,
	Step:     200 * time.Millisecond,
}

// TracePlayer animates the step trace of one algorithm at a time. The
// sample is fixed for the lifetime of the player, so switching tabs and
// back replays the same trace.
type TracePlayer struct {
	sample  []int
	kind    algorithms.Kind
	steps   []trace.Step
	current int
	playing bool
	speed   PlayerSpeed
	tickID  int

	quitting bool
	bar      progress.Model
	help     help.Model
}

// NewTracePlayer builds a paused player showing kind.
func NewTracePlayer(sample []int, kind algorithms.Kind, speed PlayerSpeed) TracePlayer {
	if speed.Interval <= 0 {
		speed = DefaultPlayerSpeed
	}
	p := TracePlayer{
		sample: sample,
		speed:  speed,
		bar:    progress.New(progress.WithSolidFill(string(KindColor(kind))), progress.WithoutPercentage()),
		help:   help.New(),
	}
	p.bar.Width = 40
	p.selectKind(kind)
	return p
}

func (p *TracePlayer) selectKind(kind algorithms.Kind) {
	steps, err := trace.Generate(kind, p.sample)
	if err != nil {
		return
	}
	p.kind = kind
	p.steps = steps
	p.current = 0
	p.playing = false
	p.tickID++
	p.bar.FullColor = string(KindColor(kind))
}

func (p TracePlayer) tick() tea.Cmd {
	id := p.tickID
	return tea.Tick(p.speed.Interval, func(time.Time) tea.Msg {
		return traceTickMsg{id: id}
	})
}

func (p TracePlayer) Init() tea.Cmd {
	return nil
}

func (p TracePlayer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, playerKeys.Quit):
			p.quitting = true
			return p, tea.Quit

		case key.Matches(msg, playerKeys.Play):
			if p.current >= len(p.steps)-1 {
				p.current = 0
			}
			p.playing = !p.playing
			p.tickID++
			if p.playing {
				return p, p.tick()
			}
			return p, nil

		case key.Matches(msg, playerKeys.Reset):
			p.current = 0
			p.playing = false
			p.tickID++
			return p, nil

		case key.Matches(msg, playerKeys.Faster):
			p.speed.Interval -= p.speed.Step
			if p.speed.Interval < p.speed.Min {
				p.speed.Interval = p.speed.Min
			}
			return p, nil

		case key.Matches(msg, playerKeys.Next):
			if p.current < len(p.steps)-1 {
				p.current++
			}
			return p, nil

		case key.Matches(msg, playerKeys.Prev):
			if p.current > 0 {
				p.current--
			}
			return p, nil

		case key.Matches(msg, playerKeys.Tab):
			var next algorithms.Kind
			switch msg.String() {
			case "1":
				next = algorithms.Iterative
			case "2":
				next = algorithms.Recursive
			case "3":
				next = algorithms.Sort
			default:
				next = algorithms.Kinds()[(int(p.kind)+1)%len(algorithms.Kinds())]
			}
			p.selectKind(next)
			return p, nil
		}

	case tea.WindowSizeMsg:
		p.bar.Width = min(msg.Width-20, 60)
		if p.bar.Width < 10 {
			p.bar.Width = 10
		}
		return p, nil

	case traceTickMsg:
		if msg.id != p.tickID || !p.playing {
			return p, nil
		}
		if p.current >= len(p.steps)-1 {
			p.playing = false
			return p, nil
		}
		p.current++
		if p.current >= len(p.steps)-1 {
			p.playing = false
			return p, nil
		}
		return p, p.tick()
	}

	return p, nil
}

func (p TracePlayer) View() string {
	if p.quitting {
		return ""
	}

	var s strings.Builder
	s.WriteString(headerStyle.Render("ALGORITHM VISUALIZER") + "\n\n")
	s.WriteString(p.tabsView() + "\n\n")

	if step, ok := p.Current(); ok {
		s.WriteString(p.cellsView(step) + "\n")
		s.WriteString(p.detailView(step) + "\n\n")

		ratio := float64(p.current+1) / float64(len(p.steps))
		s.WriteString(fmt.Sprintf("Step %d / %d  %s\n", p.current+1, len(p.steps), p.bar.ViewAs(ratio)))
		s.WriteString(paneStyle.Render(step.Description) + "\n")
	}

	state := "paused"
	if p.playing {
		state = "playing"
	}
	s.WriteString(mutedStyle.Render(fmt.Sprintf("%s • %v per step", state, p.speed.Interval)))
	s.WriteString(helpStyle.Render(p.help.View(playerKeys)))
	return s.String()
}

func (p TracePlayer) tabsView() string {
	tabs := make([]string, 0, 3)
	for i, k := range algorithms.Kinds() {
		label := fmt.Sprintf(" %d %s ", i+1, k.Label())
		style := lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("245"))
		if k == p.kind {
			style = style.Foreground(lipgloss.Color("#FFF")).Background(KindColor(k)).Bold(true)
		}
		tabs = append(tabs, style.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (p TracePlayer) cellsView(step trace.Step) string {
	cells := make([]string, 0, len(step.Sample))
	for i, v := range step.Sample {
		style := cellStyle
		if step.Active(i) {
			style = activeCellStyle(p.kind)
		} else if p.kind == algorithms.Sort {
			style = cellStyle.Foreground(sortColor).BorderForeground(sortColor)
		}
		cells = append(cells, style.Render(fmt.Sprint(v)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (p TracePlayer) detailView(step trace.Step) string {
	switch p.kind {
	case algorithms.Iterative:
		pointer := "done"
		if step.Cursor != trace.NoCursor {
			pointer = fmt.Sprint(step.Cursor)
		}
		return "Pointer: " + kindStyle(p.kind).Render("i = "+pointer)

	case algorithms.Recursive:
		var s strings.Builder
		s.WriteString("Call Stack:\n")
		if len(step.CallStack) == 0 {
			s.WriteString(mutedStyle.Italic(true).Render("  stack empty"))
			return s.String()
		}
		// Top of stack first.
		for i := len(step.CallStack) - 1; i >= 0; i-- {
			s.WriteString(frameStyle.Foreground(recursiveColor).Render(step.CallStack[i]))
			if i > 0 {
				s.WriteString("\n")
			}
		}
		return s.String()

	default:
		status := "Sorted"
		switch p.current {
		case 0:
			status = "Unsorted"
		case 1:
			status = "Sorting..."
		}
		return "Status: " + kindStyle(p.kind).Render(status)
	}
}

// Current returns the step on display.
func (p TracePlayer) Current() (trace.Step, bool) {
	if p.current < 0 || p.current >= len(p.steps) {
		return trace.Step{}, false
	}
	return p.steps[p.current], true
}

// Kind returns the selected algorithm.
func (p TracePlayer) Kind() algorithms.Kind { return p.kind }

// Playing reports whether the animation is running.
func (p TracePlayer) Playing() bool { return p.playing }

// Interval returns the current time between steps.
func (p TracePlayer) Interval() time.Duration { return p.speed.Interval }

// Len returns the number of steps in the active trace.
func (p TracePlayer) Len() int { return len(p.steps) }
