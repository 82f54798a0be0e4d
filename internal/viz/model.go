package viz

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/eggburst/internal/dynamo"
	"github.com/san-kum/eggburst/internal/particle"
	"github.com/san-kum/eggburst/internal/scene"
	"github.com/san-kum/eggburst/internal/shell"
)

const (
	canvasWidth     = 60
	canvasHeight    = 22
	panelWidth      = 46
	headerRows      = 1
	historyCapacity = 240
)

type TickMsg time.Time

// quad is the terminal's transform for one confetti particle.
type quad struct {
	pos, rot dynamo.Vec3
	size     particle.Size
	color    particle.Color
}

func (q *quad) SetPosition(p dynamo.Vec3) { q.pos = p }
func (q *quad) SetRotation(r dynamo.Vec3) { q.rot = r }

// hingeGroup is the terminal's transform for one shell's hinge.
type hingeGroup struct {
	angle float64
}

func (h *hingeGroup) SetPosition(dynamo.Vec3)   {}
func (h *hingeGroup) SetRotation(r dynamo.Vec3) { h.angle = r.Z }

type Options struct {
	FPS    int
	Theme  string
	Zoom   float64
	Logger *log.Logger
}

// Model drives a scene from Bubble Tea ticks and mouse events.
type Model struct {
	scene    *scene.Scene
	shells   [2]scene.ShellDesc
	hinges   [2]*hingeGroup
	quads    []*quad
	canvas   *Canvas
	camera   *Camera
	theme    Theme
	styles   styles
	fps      int
	last     time.Time
	info     scene.FrameInfo
	hit      bounds
	inside   bool
	revealed bool
	showHelp bool
	hingeLog []float64
	meanLog  []float64
	log      *log.Logger
}

func NewModel(sc *scene.Scene, opts Options) Model {
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.Zoom <= 0 {
		opts.Zoom = 0.45
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	theme := GetTheme(opts.Theme)

	m := Model{
		scene:    sc,
		canvas:   NewCanvas(canvasWidth, canvasHeight),
		camera:   NewCamera(opts.Zoom),
		theme:    theme,
		styles:   newStyles(theme),
		fps:      opts.FPS,
		hingeLog: make([]float64, 0, historyCapacity),
		meanLog:  make([]float64, 0, historyCapacity),
		log:      logger,
	}

	desc := sc.Describe()
	for _, side := range []scene.Side{scene.Left, scene.Right} {
		m.shells[side] = desc.Shells[side]
		m.hinges[side] = &hingeGroup{angle: desc.Shells[side].Hinge}
		sc.AttachShell(side, m.hinges[side])
	}
	m.quads = make([]*quad, len(desc.Particles))
	for i, p := range desc.Particles {
		q := &quad{pos: p.Position, rot: p.Rotation, size: p.Size, color: p.Color}
		m.quads[i] = q
		if err := sc.AttachParticle(p.Index, q); err != nil {
			logger.Warn("attach particle", "index", p.Index, "err", err)
		}
	}
	m.draw()
	return m
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "enter":
			m.pointer(shell.Click)
		case "?":
			m.showHelp = !m.showHelp
		case "t":
			m.theme = nextTheme(m.theme)
			m.styles = newStyles(m.theme)
			m.log.Info("theme changed", "theme", m.theme.Name)
		case "x":
			m.camera.RotateX(0.1)
		case "X":
			m.camera.RotateX(-0.1)
		case "y":
			m.camera.RotateY(0.1)
		case "Y":
			m.camera.RotateY(-0.1)
		case "+", "=":
			m.camera.ZoomIn()
		case "-", "_":
			m.camera.ZoomOut()
		}
		m.draw()
	case tea.MouseMsg:
		m.mouse(msg)
	case tea.WindowSizeMsg:
		w := max(20, msg.Width-panelWidth)
		h := max(8, msg.Height-headerRows-1)
		m.canvas = NewCanvas(w, h)
		m.draw()
	case TickMsg:
		now := time.Time(msg)
		dt := 0.0
		if !m.last.IsZero() {
			dt = now.Sub(m.last).Seconds()
		}
		m.last = now
		m.step(dt)
		return m, m.tick()
	}
	return m, nil
}

// mouse turns terminal mouse reports into shell pointer events. Hover is
// only delivered while the machine still accepts it.
func (m *Model) mouse(msg tea.MouseMsg) {
	col, row := msg.X, msg.Y-headerRows
	inside := row >= 0 && col < m.canvas.Width && row < m.canvas.Height && m.hit.containsCell(col, row)

	if inside != m.inside {
		m.inside = inside
		if m.scene.Machine().HoverEnabled() {
			if inside {
				m.pointer(shell.PointerEnter)
			} else {
				m.pointer(shell.PointerLeave)
			}
		}
	}
	if inside && msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.pointer(shell.Click)
		// A toggle close re-enables hover with the pointer still on the egg.
		if m.scene.Machine().State() == shell.Idle {
			m.pointer(shell.PointerEnter)
		}
	}
}

func (m *Model) pointer(ev shell.Event) {
	if m.scene.Pointer(ev) {
		m.log.Debug("pointer", "event", ev, "state", m.scene.Machine().State())
	}
}

func (m *Model) step(dt float64) {
	m.info = m.scene.Tick(dt)
	if m.info.Active {
		m.revealed = true
	}
	m.hingeLog = appendCapped(m.hingeLog, m.info.Hinge.Left*180/math.Pi)
	m.meanLog = appendCapped(m.meanLog, m.info.Field.MeanY)
	m.draw()
}

func appendCapped(s []float64, v float64) []float64 {
	s = append(s, v)
	if len(s) > historyCapacity {
		s = s[1:]
	}
	return s
}

func (m *Model) draw() {
	c := m.canvas
	c.Clear()
	sw, sh := c.SubWidth(), c.SubHeight()

	// Confetti stays hidden inside the shell until the egg first opens.
	if m.revealed {
		for _, q := range m.quads {
			m.drawQuad(q, sw, sh)
		}
	}

	var hit bounds
	hovered := m.scene.Machine().Snapshot().Hovered
	for side, d := range m.shells {
		col := solid(d.Color)
		if hovered {
			col = blend(d.Color, string(m.theme.Hover), 0.55)
		}
		c.Pen(col)
		for _, seg := range shellSegments(d, m.hinges[side].angle) {
			x0, y0, _, ok0 := m.camera.Project(seg.a, sw, sh)
			x1, y1, _, ok1 := m.camera.Project(seg.b, sw, sh)
			if !ok0 || !ok1 {
				continue
			}
			c.DrawLine(x0, y0, x1, y1)
			hit.add(x0, y0)
			hit.add(x1, y1)
		}
	}
	m.hit = hit
}

func (m *Model) drawQuad(q *quad, sw, sh int) {
	half := rotateEuler(dynamo.Vec3{X: q.size.W / 2}, q.rot)
	x0, y0, depth, ok0 := m.camera.Project(q.pos.Sub(half), sw, sh)
	x1, y1, _, ok1 := m.camera.Project(q.pos.Add(half), sw, sh)
	if !ok0 || !ok1 {
		return
	}
	fade := math.Max(0, math.Min(0.7, 0.3-depth*0.2))
	m.canvas.Pen(blend(q.color.Hex(), string(m.theme.Background), fade))
	m.canvas.DrawLine(x0, y0, x1, y1)
}

func (m Model) stateLabel() string {
	switch m.scene.Machine().State() {
	case shell.Open:
		return "OPEN"
	case shell.Hovered:
		return "HOVER"
	}
	return "CLOSED"
}

func (m Model) View() string {
	st := m.styles
	header := GradientText("EGGBURST", m.theme.Title, m.theme.Accent) + "  " + st.accent.Render(m.stateLabel())

	var s strings.Builder
	s.WriteString(st.label.Render("Frame") + st.value.Render(fmt.Sprintf("%d", m.info.Frame)) + "\n")
	s.WriteString(st.label.Render("Variant") + st.value.Render(m.scene.Machine().Variant().String()) + "\n")
	s.WriteString(st.label.Render("Hinge") + st.value.Render(fmt.Sprintf("%+6.1f° / %+6.1f°",
		m.info.Hinge.Left*180/math.Pi, m.info.Hinge.Right*180/math.Pi)) + "\n")
	if m.info.HingeAtRest {
		s.WriteString(st.label.Render("") + st.value.Render("at rest") + "\n")
	}
	s.WriteString(st.label.Render("Active") + st.value.Render(fmt.Sprintf("%t", m.info.Active)) + "\n")

	stats := m.info.Field
	frac := 0.0
	if stats.Count > 0 {
		frac = float64(stats.Frozen) / float64(stats.Count)
	}
	s.WriteString(st.label.Render("Landed") + ProgressBar(frac, 16, m.theme.Accent) +
		st.value.Render(fmt.Sprintf(" %d/%d", stats.Frozen, stats.Count)) + "\n")
	s.WriteString(st.label.Render("Mean y") + st.value.Render(fmt.Sprintf("%.2f", stats.MeanY)) + "\n")
	s.WriteString(st.label.Render("Lowest y") + st.value.Render(fmt.Sprintf("%.2f", stats.LowestY)) + "\n")

	if len(m.hingeLog) > 1 {
		chart := asciigraph.Plot(m.hingeLog, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("hinge (deg)"))
		s.WriteString("\n" + st.graph.Render(chart) + "\n")
	}
	if m.revealed && len(m.meanLog) > 1 {
		chart := asciigraph.Plot(m.meanLog, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("mean height"))
		s.WriteString("\n" + st.graph.Render(chart) + "\n")
	}
	s.WriteString(st.help.Render("SP:Click T:Theme ?:Help Q:Quit\nX/Y:Orbit +/-:Zoom  theme " + m.theme.Name))

	main := lipgloss.JoinHorizontal(lipgloss.Top, m.canvas.String(), st.stats.Render(s.String()))
	if m.showHelp {
		return header + "\n" + main + "\n" + helpText
	}
	return header + "\n" + main
}

const helpText = `
╔══════════════════════════════════════╗
║            KEYBOARD & MOUSE           ║
╠══════════════════════════════════════╣
║  Mouse over   - Highlight the shells  ║
║  Left click   - Open the egg          ║
║  Space/Enter  - Open the egg          ║
║  X / Y        - Orbit camera          ║
║  + / -        - Zoom                  ║
║  T            - Cycle themes          ║
║  ?            - Toggle this help      ║
║  Q            - Quit                  ║
╚══════════════════════════════════════╝`

// Run takes over the terminal until the user quits.
func Run(sc *scene.Scene, opts Options) error {
	p := tea.NewProgram(NewModel(sc, opts), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}

// Snapshot draws the scene's current frame onto a fresh canvas without a
// terminal. Confetti is shown once the shell is open.
func Snapshot(sc *scene.Scene, width, height int, opts Options) *Canvas {
	m := NewModel(sc, opts)
	m.canvas = NewCanvas(width, height)
	m.revealed = sc.Machine().Active()
	m.draw()
	return m.canvas
}
