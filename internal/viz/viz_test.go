package viz

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/eggburst/internal/dynamo"
	"github.com/san-kum/eggburst/internal/rng"
	"github.com/san-kum/eggburst/internal/scene"
	"github.com/san-kum/eggburst/internal/shell"
)

func TestCanvasSetAndColor(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Pen(lipgloss.Color("#ff0000"))
	c.Set(0, 0)
	c.Set(3, 3)

	if c.Grid[0][0] != rune(blank|0x1) {
		t.Errorf("expected dot 1 in cell 0, got %U", c.Grid[0][0])
	}
	if c.Grid[0][1] != rune(blank|0x80) {
		t.Errorf("expected dot 8 in cell 1, got %U", c.Grid[0][1])
	}
	if c.Colors[0][0] != "#ff0000" {
		t.Errorf("cell color not recorded: %q", c.Colors[0][0])
	}

	c.Set(-1, 0)
	c.Set(100, 0)

	c.Clear()
	if c.Grid[0][0] != blank || c.Colors[0][0] != "" {
		t.Error("clear did not reset cell")
	}
}

func TestCanvasStringShape(t *testing.T) {
	c := NewCanvas(5, 3)
	c.Pen(lipgloss.Color("#00ff00"))
	c.DrawLine(0, 0, 9, 11)
	lines := strings.Split(strings.TrimSuffix(c.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(lines))
	}
	for i, l := range lines {
		if w := lipgloss.Width(l); w != 5 {
			t.Errorf("row %d: expected width 5, got %d", i, w)
		}
	}
}

func TestCameraCentersTarget(t *testing.T) {
	cam := NewCamera(1)
	cam.RotX = 0
	x, y, depth, ok := cam.Project(cam.Target, 120, 80)
	if !ok || x != 60 || y != 40 || depth != 0 {
		t.Errorf("target projected to (%d,%d,%f,%v)", x, y, depth, ok)
	}

	above := cam.Target.Add(dynamo.Vec3{Y: 1})
	_, ya, _, _ := cam.Project(above, 120, 80)
	if ya >= y {
		t.Errorf("point above target drawn at or below it: %d vs %d", ya, y)
	}

	if _, _, _, ok := cam.Project(cam.Target.Add(dynamo.Vec3{Z: 50}), 120, 80); ok {
		t.Error("point behind camera reported visible")
	}
}

func TestShellSegmentsMirror(t *testing.T) {
	sc := newTestScene(t)
	d := sc.Describe()
	left := shellSegments(d.Shells[scene.Left], 0.4)
	right := shellSegments(d.Shells[scene.Right], -0.4)
	if len(left) == 0 || len(left) != len(right) {
		t.Fatalf("unexpected segment counts %d and %d", len(left), len(right))
	}
	for i := range left {
		l, r := left[i].a, right[i].a
		if abs(l.X+r.X) > 1e-9 || abs(l.Y-r.Y) > 1e-9 {
			t.Fatalf("segment %d not mirrored: %+v vs %+v", i, l, r)
		}
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func newTestScene(t *testing.T) *scene.Scene {
	t.Helper()
	opts := scene.DefaultOptions()
	opts.Source = rng.New(3)
	sc, err := scene.New(opts)
	if err != nil {
		t.Fatalf("new scene: %v", err)
	}
	return sc
}

// eggCell returns terminal coordinates inside the shell hit region.
func eggCell(m Model) (int, int) {
	col := (m.hit.minX + m.hit.maxX) / 2 / 2
	row := (m.hit.minY + m.hit.maxY) / 2 / 4
	return col, row + headerRows
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestMouseHoverAndClick(t *testing.T) {
	sc := newTestScene(t)
	m := NewModel(sc, Options{})
	if !m.hit.ok {
		t.Fatal("no hit region after first draw")
	}
	x, y := eggCell(m)

	m = update(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion})
	if sc.Machine().State() != shell.Hovered {
		t.Fatalf("expected hovered, got %s", sc.Machine().State())
	}

	m = update(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionMotion})
	if sc.Machine().State() != shell.Idle {
		t.Fatalf("expected idle after leaving, got %s", sc.Machine().State())
	}

	m = update(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if sc.Machine().State() != shell.Open {
		t.Fatalf("expected open after click, got %s", sc.Machine().State())
	}

	m = update(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionMotion})
	if sc.Machine().State() != shell.Open {
		t.Error("leaving after open changed state")
	}
}

func TestToggleCloseKeepsHover(t *testing.T) {
	opts := scene.DefaultOptions()
	opts.Source = rng.New(3)
	opts.Variant = shell.Toggle
	sc, err := scene.New(opts)
	if err != nil {
		t.Fatalf("new scene: %v", err)
	}
	m := NewModel(sc, Options{})
	x, y := eggCell(m)
	click := tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}

	m = update(t, m, click)
	if sc.Machine().State() != shell.Open {
		t.Fatalf("expected open, got %s", sc.Machine().State())
	}
	update(t, m, click)
	if sc.Machine().State() != shell.Hovered {
		t.Errorf("expected hovered after closing under the pointer, got %s", sc.Machine().State())
	}
}

func TestClickOutsideIgnored(t *testing.T) {
	sc := newTestScene(t)
	m := NewModel(sc, Options{})
	update(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if sc.Machine().State() != shell.Idle {
		t.Errorf("click outside the egg changed state to %s", sc.Machine().State())
	}
}

func TestTickDrivesScene(t *testing.T) {
	sc := newTestScene(t)
	m := NewModel(sc, Options{FPS: 30})

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	start := time.Now()
	for i := 0; i < 30; i++ {
		m = update(t, m, TickMsg(start.Add(time.Duration(i)*time.Second/30)))
	}

	if sc.Frame() != 30 {
		t.Errorf("expected 30 frames, got %d", sc.Frame())
	}
	if m.info.Hinge.Left <= 0 {
		t.Error("hinge did not open")
	}
	if !m.revealed {
		t.Error("confetti not revealed after opening")
	}
	if m.quads[0].pos != sc.Field().At(0).Position {
		t.Error("quad transform not following particle")
	}
	if m.hinges[scene.Right].angle != m.info.Hinge.Right {
		t.Error("hinge group not following animator")
	}

	view := m.View()
	if !strings.Contains(view, "OPEN") {
		t.Error("view does not show open state")
	}
	if !strings.Contains(view, "hinge (deg)") {
		t.Error("view missing hinge chart")
	}
}

func TestThemeCycle(t *testing.T) {
	m := NewModel(newTestScene(t), Options{Theme: "ocean"})
	if m.theme.Name != "ocean" {
		t.Fatalf("expected ocean theme, got %s", m.theme.Name)
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	if m.theme.Name != "sunset" {
		t.Errorf("expected sunset after cycling, got %s", m.theme.Name)
	}
	if GetTheme("missing").Name != Themes[0].Name {
		t.Error("unknown theme should fall back to the first")
	}
}

func TestGradientText(t *testing.T) {
	if GradientText("", "#000000", "#ffffff") != "" {
		t.Error("expected empty output for empty text")
	}
	out := GradientText("egg", "#000000", "#ffffff")
	if lipgloss.Width(out) != 3 {
		t.Errorf("expected width 3, got %d", lipgloss.Width(out))
	}
}

func TestSnapshotShowsConfettiOnlyWhenOpen(t *testing.T) {
	shellColors := map[lipgloss.Color]bool{solid("skyblue"): true, solid("pink"): true}
	confetti := func(c *Canvas) int {
		n := 0
		for _, row := range c.Colors {
			for _, col := range row {
				if col != "" && !shellColors[col] {
					n++
				}
			}
		}
		return n
	}

	sc := newTestScene(t)
	closed := Snapshot(sc, 80, 40, Options{})
	if n := confetti(closed); n != 0 {
		t.Fatalf("closed egg shows %d confetti cells", n)
	}

	sc.Pointer(shell.Click)
	sc.Tick(0)
	c := Snapshot(sc, 80, 40, Options{})
	if c.Width != 80 || c.Height != 40 {
		t.Errorf("unexpected canvas size %dx%d", c.Width, c.Height)
	}
	if confetti(c) == 0 {
		t.Error("expected confetti once open")
	}
}
