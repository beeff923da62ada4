// Package tui is the interactive playback view. It is the single
// authoritative driver of the clock: one tea.Tick loop feeds real elapsed
// time into Tick, everything else renders from the cursor.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/telari/stagecue/internal/choreo"
	"github.com/telari/stagecue/internal/clock"
	"github.com/telari/stagecue/internal/viz"
)

const (
	stageWidth  = 56
	stageHeight = 16
	seekStep    = 1.0
	seekJump    = 5.0
)

type TickMsg time.Time

// Model holds the open project, its transport, and render context.
type Model struct {
	project    *choreo.Project
	clock      *clock.Clock
	fps        int
	patchFloor int
	lastTick   time.Time
	width      int
	showHelp   bool
}

// New builds a playback model for a project at the given frame rate. The
// patch floor must match the one used at layer ingestion so clips are
// badged the same way they were minted.
func New(p *choreo.Project, fps, patchFloor int) Model {
	return Model{
		project:    p,
		clock:      clock.New(p.Duration()),
		fps:        fps,
		patchFloor: patchFloor,
		width:      80,
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		now := time.Time(msg)
		if m.clock.Playing() && !m.lastTick.IsZero() {
			m.clock.Tick(now.Sub(m.lastTick).Seconds())
		}
		m.lastTick = now
		return m, m.tick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ":
		if m.clock.Playing() {
			m.clock.Pause()
		} else {
			m.clock.Play()
		}
	case "left":
		m.clock.Seek(m.clock.Now() - seekStep)
	case "right":
		m.clock.Seek(m.clock.Now() + seekStep)
	case "shift+left":
		m.clock.Seek(m.clock.Now() - seekJump)
	case "shift+right":
		m.clock.Seek(m.clock.Now() + seekJump)
	case "0", "home":
		m.clock.Seek(0)
	case "end":
		m.clock.Seek(m.clock.Duration())
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

func (m Model) View() string {
	t := m.clock.Now()

	var b strings.Builder
	b.WriteString(viz.Header.Render(m.project.Title))
	b.WriteString("\n")
	b.WriteString(viz.Stage.Render(m.stageCanvas(t)))
	b.WriteString("\n")
	b.WriteString(m.transportLine(t))
	b.WriteString("\n")

	for _, tr := range m.project.Tracks {
		b.WriteString(m.trackLine(tr, t))
		b.WriteString("\n")
	}

	if m.showHelp {
		b.WriteString(viz.Help.Render(
			"space play/pause · ←/→ seek 1s · shift+←/→ seek 5s · 0 rewind · end jump to end · q quit"))
	} else {
		b.WriteString(viz.Help.Render("? for keys"))
	}
	return b.String()
}

// stageCanvas draws the normalized stage as a rune grid with each on-stage
// performer at their resolved position.
func (m Model) stageCanvas(t float64) string {
	canvas := make([][]rune, stageHeight)
	for y := range canvas {
		canvas[y] = make([]rune, stageWidth)
		for x := range canvas[y] {
			canvas[y][x] = ' '
		}
	}

	// slots[y][x] remembers which performer sits on a cell so the digit can
	// be styled without re-scanning the rendered line.
	slots := make([][]int, stageHeight)
	for y := range slots {
		slots[y] = make([]int, stageWidth)
	}
	for _, tr := range m.project.Tracks {
		pos, ok := tr.Position(t)
		if !ok {
			continue
		}
		cx := int(pos.X * float64(stageWidth-1))
		cy := int(pos.Y * float64(stageHeight-1))
		canvas[cy][cx] = rune('0' + tr.Slot)
		slots[cy][cx] = tr.Slot
	}

	lines := make([]string, stageHeight)
	for y := range canvas {
		var line strings.Builder
		for x, c := range canvas[y] {
			if slot := slots[y][x]; slot > 0 {
				line.WriteString(viz.Performers[slot-1].Render(string(c)))
			} else {
				line.WriteRune(c)
			}
		}
		lines[y] = line.String()
	}
	return strings.Join(lines, "\n")
}

func (m Model) transportLine(t float64) string {
	status := viz.StatusStopped.Render("■ stopped")
	if m.clock.Playing() {
		status = viz.StatusPlaying.Render("▶ playing")
	}

	duration := m.clock.Duration()
	barWidth := stageWidth - 2
	filled := 0
	if duration > 0 {
		filled = int(t / duration * float64(barWidth))
		if filled > barWidth {
			filled = barWidth
		}
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)

	return fmt.Sprintf("%s  %s  %s",
		status,
		viz.Dim.Render(bar),
		viz.Value.Render(fmt.Sprintf("%6.2fs / %.2fs", t, duration)))
}

func (m Model) trackLine(tr *choreo.Track, t float64) string {
	label := viz.Dim.Render("no clip")
	if l, ok := tr.ActiveLayer(t); ok {
		name := l.Label
		if name == "" {
			name = l.ID[:8]
		}
		if l.IsPatch(m.patchFloor) {
			name += " (patch)"
		}
		label = viz.Value.Render(name)
	}

	pos := viz.Dim.Render("off stage")
	if p, ok := tr.Position(t); ok {
		pos = viz.Value.Render(fmt.Sprintf("(%.2f, %.2f)", p.X, p.Y))
	}

	slot := viz.Performers[tr.Slot-1].Render(fmt.Sprintf("performer %d", tr.Slot))
	return fmt.Sprintf("%s  %s %s  %s %s",
		slot, viz.Label.Render("clip"), label, viz.Label.Render("position"), pos)
}
