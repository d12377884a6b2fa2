// Package tui renders a live animator on a terminal track: a thumb driven
// by the spring/decay engine, with rubber-banded overscroll past the track
// edges. It is a consumer of the engine in the same sense the original
// touch controls are.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/petterw/motion/animation"
	"github.com/petterw/motion/dynamics"
	"github.com/petterw/motion/frameclock"
	"github.com/petterw/motion/internal/config"
	"github.com/petterw/motion/rubberband"
	"github.com/petterw/motion/vector"
)

const trackCells = 48

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	trackStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	thumbStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	boundStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle  = lipgloss.NewStyle().MarginTop(1)
)

// frameMsg carries one frame from the ticker goroutine into the tea loop.
type frameMsg frameclock.Frame

// relay adapts a frameclock.Source so its callback runs inside Update,
// keeping the whole engine confined to the tea goroutine. Frames arriving
// while the UI is busy are dropped; the gap shows up in Timestep.Actual.
type relay struct {
	inner  frameclock.Source
	frames chan frameclock.Frame
	fn     func(frameclock.Frame)
}

func newRelay(inner frameclock.Source) *relay {
	return &relay{inner: inner, frames: make(chan frameclock.Frame, 1)}
}

func (r *relay) Start(fn func(frameclock.Frame)) {
	r.fn = fn
	r.inner.Start(func(f frameclock.Frame) {
		select {
		case r.frames <- f:
		default:
		}
	})
}

func (r *relay) Stop() { r.inner.Stop() }

func (r *relay) deliver(f frameclock.Frame) {
	if r.fn != nil {
		r.fn(f)
	}
}

func (r *relay) wait() tea.Cmd {
	return func() tea.Msg { return frameMsg(<-r.frames) }
}

type keymap struct {
	Left  key.Binding
	Right key.Binding
	Swap  key.Binding
	Fling key.Binding
	Over  key.Binding
	Stop  key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func (k keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Swap, k.Fling, k.Over, k.Stop, k.Help, k.Quit}
}

func (k keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Swap},
		{k.Fling, k.Over, k.Stop},
		{k.Help, k.Quit},
	}
}

var keys = keymap{
	Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "target 0")),
	Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "target 1")),
	Swap:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "swap target")),
	Fling: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "fling")),
	Over:  key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "overscroll")),
	Stop:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stop here")),
	Help:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:  key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// Model is the bubbletea model for the live view.
type Model struct {
	cfg    *config.Config
	relay  *relay
	sched  *animation.Scheduler
	thumb  *animation.Animator[vector.Scalar]
	spring dynamics.Model[vector.Scalar]
	band   rubberband.Band[vector.Scalar]

	prev    frameclock.Frame
	hasPrev bool
	ts      frameclock.Timestep
	frames  int

	help help.Model
}

// NewModel wires a scheduler onto a real ticker, funneled through the tea
// loop, and binds one scalar thumb animator to it.
func NewModel(cfg *config.Config) (*Model, error) {
	spring, err := cfg.NewModel()
	if err != nil {
		return nil, err
	}

	r := newRelay(frameclock.NewTicker(cfg.FPS))
	sched := animation.NewScheduler(r)
	thumb := animation.NewAnimator[vector.Scalar](sched, spring)
	thumb.SetValue(vector.Scalar(cfg.From))
	thumb.SetVelocity(vector.Scalar(cfg.Velocity))
	thumb.SetTarget(vector.Scalar(cfg.Target))

	band := rubberband.New(vector.Scalar(0), vector.Scalar(1), 0.1)
	if b, ok := cfg.NewBand(); ok {
		band = b
	}

	return &Model{
		cfg:    cfg,
		relay:  r,
		sched:  sched,
		thumb:  thumb,
		spring: spring,
		band:   band,
		help:   help.New(),
	}, nil
}

func (m *Model) Init() tea.Cmd {
	m.thumb.Run()
	return m.relay.wait()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.relay.inner.Stop()
			return m, tea.Quit
		case key.Matches(msg, keys.Left):
			m.retarget(0)
		case key.Matches(msg, keys.Right):
			m.retarget(1)
		case key.Matches(msg, keys.Swap):
			m.retarget(1 - m.thumb.Target())
		case key.Matches(msg, keys.Fling):
			m.thumb.SetModel(dynamics.NewDecay[vector.Scalar](m.cfg.Rate))
			m.thumb.SetVelocity(3.0)
			m.thumb.Run()
		case key.Matches(msg, keys.Over):
			// Simulate a drag released past the upper bound: place the
			// thumb at the banded position and spring it home.
			m.thumb.SetModel(m.spring)
			m.thumb.SetValue(m.band.Band(vector.Scalar(1.5)))
			m.thumb.SetTarget(m.band.Upper)
			m.thumb.Run()
		case key.Matches(msg, keys.Stop):
			m.thumb.Stop(animation.StopAtCurrent)
		case key.Matches(msg, keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	case frameMsg:
		f := frameclock.Frame(msg)
		if m.hasPrev {
			m.ts = frameclock.Timestep{
				Ideal:  f.TargetTimestamp.Sub(m.prev.TargetTimestamp).Seconds(),
				Actual: f.Timestamp.Sub(m.prev.Timestamp).Seconds(),
			}
		}
		m.prev, m.hasPrev = f, true
		m.frames++
		m.relay.deliver(f)
		return m, m.relay.wait()
	}
	return m, nil
}

func (m *Model) retarget(to vector.Scalar) {
	m.thumb.SetModel(m.spring)
	m.thumb.SetTarget(to)
	m.thumb.Run()
}

func (m *Model) View() string {
	value := float64(m.thumb.Value())
	velocity := float64(m.thumb.Velocity())
	target := float64(m.thumb.Target())

	var b strings.Builder
	b.WriteString(titleStyle.Render("motion live"))
	b.WriteString("\n")
	b.WriteString(m.track(value, target))
	b.WriteString("\n\n")

	state := "stopped"
	if m.thumb.Running() {
		state = "running"
	}
	rows := []struct{ label, value string }{
		{"value", fmt.Sprintf("%+.4f", value)},
		{"velocity", fmt.Sprintf("%+.4f", velocity)},
		{"target", fmt.Sprintf("%+.4f", target)},
		{"state", state},
		{"dt ideal", fmt.Sprintf("%6.2f ms", m.ts.Ideal*1000)},
		{"dt actual", fmt.Sprintf("%6.2f ms", m.ts.Actual*1000)},
		{"frames", fmt.Sprintf("%d", m.frames)},
	}
	for _, row := range rows {
		b.WriteString(labelStyle.Render(row.label))
		b.WriteString(valueStyle.Render(row.value))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(m.help.View(keys)))
	return b.String()
}

// track draws the [0,1] rail with overscroll margins on both sides.
func (m *Model) track(value, target float64) string {
	const lo, hi = -0.15, 1.15
	cell := func(v float64) int {
		c := int((v - lo) / (hi - lo) * (trackCells - 1))
		if c < 0 {
			c = 0
		}
		if c > trackCells-1 {
			c = trackCells - 1
		}
		return c
	}

	rail := make([]rune, trackCells)
	for i := range rail {
		rail[i] = ' '
	}
	for i := cell(0); i <= cell(1); i++ {
		rail[i] = '─'
	}
	rail[cell(0)] = '┃'
	rail[cell(1)] = '┃'
	rail[cell(target)] = '◇'

	thumbAt := cell(value)
	var out strings.Builder
	for i, r := range rail {
		if i == thumbAt {
			out.WriteString(thumbStyle.Render("●"))
			continue
		}
		switch r {
		case '┃':
			out.WriteString(boundStyle.Render(string(r)))
		default:
			out.WriteString(trackStyle.Render(string(r)))
		}
	}
	return out.String()
}
