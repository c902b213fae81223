package tui

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/fchimpan/snowflake-bounce/internal/bounce"
	"github.com/fchimpan/snowflake-bounce/internal/config"
)

type Options struct {
	Engine bounce.Options // Viewport is taken from the terminal
	FPS    int
	HUD    bool
	Logger *log.Logger
}

type Model struct {
	opts   Options
	logger *log.Logger

	engine *bounce.Engine
	fps    int
	paused bool

	ready bool
	w     int
	h     int

	viewBuf bytes.Buffer
	runBuf  []rune

	// Cached blank line for the current width.
	spaceLine  string
	spaceLineW int
}

func NewModel(opts Options) *Model {
	if opts.FPS < config.MinFPS || opts.FPS > config.MaxFPS {
		opts.FPS = config.Default().FPS
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Model{
		opts:   opts,
		logger: logger,
		fps:    opts.FPS,
	}
}

type tickMsg time.Time

func tickCmd(d time.Duration) tea.Cmd {
	if d <= 0 {
		d = time.Second / 20
	}
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *Model) Init() tea.Cmd {
	return tickCmd(m.frameDuration())
}

func (m *Model) frameDuration() time.Duration {
	return time.Second / time.Duration(m.fps)
}

func (m *Model) terminated() bool {
	return m.engine != nil && m.engine.Terminated()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.terminated() {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tickMsg:
		if m.ready && !m.paused {
			m.engine.Handle(bounce.Tick{})
		}
		return m, tickCmd(m.frameDuration())
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quit("interrupt")
		return m, tea.Interrupt
	case "q":
		m.quit("key")
		return m, tea.Quit
	}
	if !m.ready {
		return m, nil
	}

	switch msg.String() {
	case "c":
		m.handle(bounce.ChangeColor{})
	case "s":
		before := m.engine.Glyph.Size
		m.handle(bounce.ChangeSize{})
		if m.engine.Glyph.Size == before {
			m.logger.Debug("no larger size fits", "size", before, "width", m.engine.Viewport.Width, "height", m.engine.Viewport.Height)
		}
	case "f":
		m.handle(bounce.ToggleEasterEgg{})
	case "+", "=":
		m.setFPS(m.fps + fpsStep(m.fps))
	case "-", "_":
		m.setFPS(m.fps - fpsStep(m.fps-1))
	case " ", "p":
		m.paused = !m.paused
		m.logger.Debug("pause toggled", "paused", m.paused)
	}
	return m, nil
}

func fpsStep(fps int) int {
	if fps < 10 {
		return 1
	}
	return 5
}

func (m *Model) setFPS(fps int) {
	fps = min(max(fps, config.MinFPS), config.MaxFPS)
	if fps != m.fps {
		m.logger.Debug("fps changed", "fps", fps)
	}
	m.fps = fps
}

func (m *Model) handle(ev bounce.Event) {
	if !m.engine.Handle(ev) {
		m.logger.Debug("event ignored", "event", fmt.Sprintf("%T", ev))
	}
}

func (m *Model) quit(reason string) {
	if m.engine != nil {
		m.engine.Handle(bounce.Quit{})
		m.logger.Info("quit", "reason", reason, "ticks", m.engine.Stats.Ticks,
			"bounces", m.engine.Stats.Bounces, "corners", m.engine.Stats.Corners)
		return
	}
	m.logger.Info("quit before first frame", "reason", reason)
}

// viewportSize returns the drawable area, reserving the bottom row for the
// HUD when it is enabled and there is room for it.
func (m *Model) viewportSize() (int, int) {
	h := m.h
	if m.opts.HUD && h > 1 {
		h--
	}
	return m.w, h
}

func (m *Model) resize(w, h int) {
	m.w = w
	m.h = h
	vw, vh := m.viewportSize()

	if !m.ready {
		opts := m.opts.Engine
		opts.Viewport = bounce.Viewport{Width: vw, Height: vh}
		m.engine = bounce.New(opts)
		m.ready = true
		m.logger.Info("started",
			"width", m.engine.Viewport.Width, "height", m.engine.Viewport.Height,
			"color", m.engine.Glyph.Color, "size", m.engine.Glyph.Size, "fps", m.fps)
		return
	}

	before := m.engine.Glyph.Size
	if !m.engine.Handle(bounce.Resize{Width: vw, Height: vh}) {
		m.logger.Warn("resize rejected", "width", vw, "height", vh)
		return
	}
	m.logger.Debug("resized", "width", vw, "height", vh)
	if after := m.engine.Glyph.Size; after != before {
		m.logger.Info("size reduced to fit", "from", before, "to", after)
	}
}

func (m *Model) View() string {
	if !m.ready {
		return "loading...\n"
	}
	if m.terminated() {
		return ""
	}

	fb := m.engine.Render()

	if fb.Width != m.spaceLineW {
		m.spaceLine = strings.Repeat(" ", max(fb.Width, 0))
		m.spaceLineW = fb.Width
	}

	m.viewBuf.Reset()
	b := &m.viewBuf
	// No trailing newline: the renderer would scroll the top row away.
	for y := 0; y < fb.Height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		m.writeRow(b, fb.Row(y))
	}
	if _, vh := m.viewportSize(); vh < m.h {
		b.WriteByte('\n')
		hud := renderHUD(m.engine.Glyph, m.engine.Stats, m.fps, m.paused)
		b.WriteString(lipgloss.NewStyle().MaxWidth(m.w).Render(hud))
	}
	return b.String()
}

// writeRow emits one frame row, styling each same-colored run of glyph
// cells with a single Render call.
func (m *Model) writeRow(b *bytes.Buffer, row []bounce.Cell) {
	x := 0
	for x < len(row) {
		if empty(row[x]) {
			start := x
			for x < len(row) && empty(row[x]) {
				x++
			}
			b.WriteString(m.spaceLine[:x-start])
			continue
		}

		color := row[x].Color
		m.runBuf = m.runBuf[:0]
		for x < len(row) && !empty(row[x]) && row[x].Color == color {
			if !row[x].Cont {
				m.runBuf = append(m.runBuf, row[x].Rune)
			}
			x++
		}
		b.WriteString(glyphStyle(color).Render(string(m.runBuf)))
	}
}

func empty(c bounce.Cell) bool {
	return c.Rune == 0 && !c.Cont
}

func renderHUD(g bounce.Glyph, stats bounce.Stats, fps int, paused bool) string {
	sep := styleHudDim.Render("  |  ")

	state := styleHudOk.Render("running")
	if paused {
		state = styleHudWarn.Render("paused")
	}

	return strings.Join([]string{
		styleHudLabel.Render("color ") + glyphStyle(g.Color).Bold(true).Render(g.Color.String()),
		sep,
		styleHudLabel.Render("size ") + styleHudValue.Render(g.Size.String()),
		sep,
		styleHudLabel.Render("mode ") + styleHudValue.Render(g.Mode.String()),
		sep,
		styleHudLabel.Render("fps ") + styleHudValue.Render(fmt.Sprintf("%3d", fps)) + " " + state,
		sep,
		styleHudLabel.Render("bounces ") + styleHudValue.Render(fmt.Sprintf("%6d", stats.Bounces)),
		sep,
		styleHudLabel.Render("corners ") + styleHudScore.Render(fmt.Sprintf("%4d", stats.Corners)),
		styleHudDim.Render("  (c color, s size, f surprise, +/- speed, p pause, q quit)"),
	}, "")
}

// ===== Styles =====

var (
	styleHudLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("#8b949e"))
	styleHudValue = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#d0d7de"))
	styleHudScore = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffd33d"))
	styleHudOk    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7ee787"))
	styleHudWarn  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff7b72"))
	styleHudDim   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6e7681"))

	// Bright ANSI colors, so the terminal theme decides the exact shade.
	glyphColors = map[bounce.Color]lipgloss.Color{
		bounce.White:   lipgloss.Color("15"),
		bounce.Cyan:    lipgloss.Color("14"),
		bounce.Blue:    lipgloss.Color("12"),
		bounce.Magenta: lipgloss.Color("13"),
		bounce.Red:     lipgloss.Color("9"),
		bounce.Yellow:  lipgloss.Color("11"),
		bounce.Green:   lipgloss.Color("10"),
	}
	glyphStyles = func() map[bounce.Color]lipgloss.Style {
		out := make(map[bounce.Color]lipgloss.Style, len(glyphColors))
		for c, col := range glyphColors {
			out[c] = lipgloss.NewStyle().Foreground(col)
		}
		return out
	}()
)

func glyphStyle(c bounce.Color) lipgloss.Style {
	if st, ok := glyphStyles[c]; ok {
		return st
	}
	return glyphStyles[bounce.White]
}
