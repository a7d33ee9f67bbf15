package sim

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"courtsim/internal/match"
)

// teaProgram abstracts bubbletea.Program for testing.
type teaProgram interface {
	Send(tea.Msg)
}

// logMsg carries a play-by-play line for the viewport.
type logMsg struct{ line string }

// frameMsg carries the latest snapshot.
type frameMsg struct{ match.Snapshot }

// boxMsg carries a box score for the stats table.
type boxMsg struct{ match.BoxScore }

// adminMsg reports admin UI status.
type adminMsg struct{ active bool }

type setControlsMsg struct{ c Controls }

const (
	maxLogLines    = 1000
	courtHeightPct = 0.45
	userStepFt     = 3.0
)

// teamStyles color home and away agents.
var teamStyles = [2]lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
}

// TUIWriter renders the match using a bubbletea TUI and turns key presses
// into operator controls.
type TUIWriter struct {
	program    teaProgram
	done       chan struct{}
	sendSignal atomic.Bool
}

// NewTUIWriter starts a bubbletea program and returns a TUIWriter.
func NewTUIWriter(s match.Settings) *TUIWriter {
	w := &TUIWriter{done: make(chan struct{})}
	w.sendSignal.Store(true)
	m := newTUIModel(s)
	p := tea.NewProgram(m, tea.WithAltScreen())
	w.program = p
	go func() {
		_, _ = p.Run()
		close(w.done)
		if w.sendSignal.Load() {
			if proc, err := os.FindProcess(os.Getpid()); err == nil {
				_ = proc.Signal(os.Interrupt)
			}
		}
	}()
	return w
}

// Done is closed once the TUI has exited.
func (w *TUIWriter) Done() <-chan struct{} { return w.done }

// WriteEvent implements EventWriter.
func (w *TUIWriter) WriteEvent(e match.Event) error {
	w.program.Send(logMsg{line: formatEventLine(e)})
	return nil
}

// WriteEvents outputs multiple events.
func (w *TUIWriter) WriteEvents(events []match.Event) error {
	for _, e := range events {
		_ = w.WriteEvent(e)
	}
	return nil
}

// WriteFrame implements FrameWriter.
func (w *TUIWriter) WriteFrame(s match.Snapshot) error {
	w.program.Send(frameMsg{s})
	return nil
}

// WriteBoxScore implements BoxScoreWriter.
func (w *TUIWriter) WriteBoxScore(b match.BoxScore) error {
	w.program.Send(boxMsg{b})
	return nil
}

// SetAdminStatus updates the admin UI indicator.
func (w *TUIWriter) SetAdminStatus(active bool) {
	w.program.Send(adminMsg{active: active})
}

// SetControls registers the operator controls key presses drive.
func (w *TUIWriter) SetControls(c Controls) {
	w.program.Send(setControlsMsg{c: c})
}

// Close shuts down the TUI program and waits for cleanup.
func (w *TUIWriter) Close() error {
	w.sendSignal.Store(false)
	if w.program != nil {
		w.program.Send(tea.Quit())
	}
	if w.done != nil {
		<-w.done
	}
	return nil
}

func formatEventLine(e match.Event) string {
	return fmt.Sprintf("%sQ%d %s%s %s%s%s %s",
		colorGray, e.Period, e.Clock, colorReset,
		kindColor(e.Kind), strings.ToUpper(string(e.Kind)), colorReset,
		e.Text)
}

type tuiModel struct {
	settings   match.Settings
	controls   Controls
	frame      match.Snapshot
	haveFrame  bool
	box        table.Model
	vp         viewport.Model
	logs       []string
	admin      bool
	wrap       bool
	autoscroll bool
	help       bool
	showBox    bool
	status     string
	width      int
	height     int
}

func newTUIModel(s match.Settings) tuiModel {
	cols := []table.Column{{Title: "Player", Width: 18}}
	for _, k := range match.StatKeys {
		cols = append(cols, table.Column{Title: k, Width: 4})
	}
	t := table.New(table.WithColumns(cols), table.WithHeight(2*(len(s.Home.Players)+2)+1))
	return tuiModel{
		settings:   s,
		box:        t,
		vp:         viewport.New(0, 0),
		autoscroll: true,
		showBox:    true,
	}
}

func (m tuiModel) Init() tea.Cmd { return nil }

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.vp.Width = msg.Width
		m.box.SetWidth(msg.Width)
		m.updateViewportHeight()
		m.refreshViewport()
	case tea.KeyMsg:
		if m.help {
			switch msg.String() {
			case "?", "h", "esc":
				m.help = false
			}
			return m, nil
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "w":
			m.wrap = !m.wrap
			m.refreshViewport()
			return m, nil
		case "s":
			m.autoscroll = !m.autoscroll
			if m.autoscroll {
				m.vp.GotoBottom()
			}
			return m, nil
		case "b":
			m.showBox = !m.showBox
			m.updateViewportHeight()
			return m, nil
		case "h", "?":
			m.help = true
			return m, nil
		}
		if m.controls != nil && m.handleControl(msg.String()) {
			return m, nil
		}
		if !m.autoscroll {
			switch msg.String() {
			case "j":
				m.vp.LineDown(1)
			case "k":
				m.vp.LineUp(1)
			case "pgdown", "ctrl+n":
				m.vp.LineDown(10)
			case "pgup", "ctrl+p":
				m.vp.LineUp(10)
			default:
				var cmd tea.Cmd
				m.vp, cmd = m.vp.Update(msg)
				return m, cmd
			}
		}
		return m, nil
	case logMsg:
		m.logs = append(m.logs, msg.line)
		if len(m.logs) > maxLogLines {
			m.logs = m.logs[len(m.logs)-maxLogLines:]
		}
		m.refreshViewport()
	case frameMsg:
		m.frame = msg.Snapshot
		m.haveFrame = true
	case boxMsg:
		m.box.SetRows(boxRows(msg.BoxScore))
	case adminMsg:
		m.admin = msg.active
	case setControlsMsg:
		m.controls = msg.c
	}
	return m, nil
}

// handleControl maps a key to an operator command and reports whether the
// key was consumed.
func (m *tuiModel) handleControl(key string) bool {
	c := m.controls
	switch key {
	case " ", "p":
		if c.TogglePause() {
			m.status = "paused"
		} else {
			m.status = "resumed"
		}
	case "enter":
		if c.ToggleMenu() {
			m.status = "menu"
		} else {
			m.status = "tip-off"
		}
	case "u":
		if c.ToggleUser() {
			m.status = "user control on"
		} else {
			m.status = "user control off"
		}
	case "r":
		c.Reset()
		m.logs = nil
		m.box.SetRows(nil)
		m.refreshViewport()
		m.status = "reset"
	case "x":
		if !c.UserShoot() {
			m.status = "no shot"
		}
	case "1", "2", "3", "4", "5":
		pos, _ := strconv.Atoi(key)
		if !c.UserPass(pos) {
			m.status = "pass refused"
		}
	case "up":
		c.MoveUser(0, -userStepFt)
	case "down":
		c.MoveUser(0, userStepFt)
	case "left":
		c.MoveUser(-userStepFt, 0)
	case "right":
		c.MoveUser(userStepFt, 0)
	default:
		return false
	}
	return true
}

func boxRows(b match.BoxScore) []table.Row {
	var rows []table.Row
	for _, tb := range b.Teams {
		rows = append(rows, statRow(fmt.Sprintf("%s (%d)", tb.Name, tb.Score), nil))
		for _, l := range tb.Players {
			rows = append(rows, statRow(l.Name, l.Stats.Values()))
		}
		rows = append(rows, statRow("Totals", tb.Totals.Values()))
	}
	return rows
}

func statRow(label string, vals []int) table.Row {
	row := table.Row{label}
	for i := range match.StatKeys {
		cell := ""
		if vals != nil {
			cell = strconv.Itoa(vals[i])
		}
		row = append(row, cell)
	}
	return row
}

func (m *tuiModel) updateViewportHeight() {
	h := m.height - m.courtRows() - lipgloss.Height(m.renderBottom()) - 6
	if m.showBox {
		h -= lipgloss.Height(m.box.View())
	}
	if h < 1 {
		h = 1
	}
	m.vp.Height = h
	if m.autoscroll {
		m.vp.GotoBottom()
	}
}

func (m *tuiModel) refreshViewport() {
	var lines []string
	for _, l := range m.logs {
		if m.wrap && m.vp.Width > 0 {
			lines = append(lines, wordwrap.String(l, m.vp.Width))
		} else {
			lines = append(lines, l)
		}
	}
	m.vp.SetContent(strings.Join(lines, "\n"))
	if m.autoscroll {
		m.vp.GotoBottom()
	}
}

func (m tuiModel) View() string {
	if m.help {
		return m.renderHelp()
	}
	divider := strings.Repeat("─", max(m.width, 1))
	sections := []string{
		m.renderScoreboard(),
		divider,
		m.renderCourt(),
		divider,
		m.vp.View(),
	}
	if m.showBox {
		sections = append(sections, divider, m.box.View())
	}
	sections = append(sections, divider, m.renderBottom())
	return strings.Join(sections, "\n")
}

func (m tuiModel) renderScoreboard() string {
	home := teamStyles[0].Render(m.settings.Home.Name)
	away := teamStyles[1].Render(m.settings.Away.Name)
	if !m.haveFrame {
		return fmt.Sprintf("%s vs %s", home, away)
	}
	f := m.frame
	state := ""
	switch {
	case f.Over:
		state = " FINAL"
	case f.Menu:
		state = " MENU (enter to start)"
	case f.Paused:
		state = " PAUSED"
	}
	possession := [2]string{" ", " "}
	for i, t := range f.Teams {
		if t.Offense {
			possession[i] = "●"
		}
	}
	return fmt.Sprintf("%s%s %d - %d %s%s | Q%d %s | Shot %d%s",
		possession[0], home, f.Teams[0].Score, f.Teams[1].Score, away, possession[1],
		f.Period, f.GameClock, f.ShotClock, state)
}

func (m tuiModel) courtRows() int {
	rows := int(float64(m.height) * courtHeightPct)
	if rows < 5 {
		rows = 5
	}
	return rows
}

// renderCourt draws the court as a character grid: lines, hoops, agents by
// position number, the user as @ and a loose ball as *.
func (m tuiModel) renderCourt() string {
	if !m.haveFrame || m.width < 10 {
		return "waiting for tip-off"
	}
	f := m.frame
	cv := f.Court
	cols := m.width
	rows := m.courtRows()
	toCell := func(x, y float64) (int, int) {
		c := int(x / cv.TotalWidth * float64(cols-1))
		r := int(y / cv.TotalHeight * float64(rows-1))
		return clampInt(c, 0, cols-1), clampInt(r, 0, rows-1)
	}
	grid := make([][]string, rows)
	for i := range grid {
		grid[i] = make([]string, cols)
		for j := range grid[i] {
			grid[i][j] = " "
		}
	}
	left, top := toCell(cv.Margin, cv.Margin)
	right, bottom := toCell(cv.Margin+cv.Width, cv.Margin+cv.Height)
	mid, _ := toCell(cv.TotalWidth/2, 0)
	for c := left; c <= right; c++ {
		grid[top][c] = "─"
		grid[bottom][c] = "─"
	}
	for r := top; r <= bottom; r++ {
		grid[r][left] = "│"
		grid[r][right] = "│"
		grid[r][mid] = "│"
	}
	for _, h := range []struct{ x, y float64 }{{cv.HoopOne.X, cv.HoopOne.Y}, {cv.HoopTwo.X, cv.HoopTwo.Y}} {
		c, r := toCell(h.x, h.y)
		grid[r][c] = "O"
	}
	for _, p := range f.Players {
		c, r := toCell(p.X, p.Y)
		glyph := strconv.Itoa(p.Position)
		if p.User {
			glyph = "@"
		}
		grid[r][c] = teamStyles[p.Team].Render(glyph)
	}
	if f.Ball.InFlight {
		c, r := toCell(f.Ball.X, f.Ball.Y)
		grid[r][c] = "*"
	}
	lines := make([]string, rows)
	for i, row := range grid {
		lines[i] = strings.Join(row, "")
	}
	return strings.Join(lines, "\n")
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (m tuiModel) renderBottom() string {
	indicator := func(on bool) string {
		c := lipgloss.Color("9")
		if on {
			c = lipgloss.Color("10")
		}
		return lipgloss.NewStyle().Foreground(c).Render("●")
	}
	user := false
	if m.haveFrame {
		user = m.frame.UserPlaying
	}
	line := fmt.Sprintf("User %s | Admin UI %s | Wrap %s | Scroll %s | Box %s | h help",
		indicator(user), indicator(m.admin), indicator(m.wrap), indicator(m.autoscroll), indicator(m.showBox))
	if m.status != "" {
		line = fmt.Sprintf("%s | %s%s%s", line, colorYellow, m.status, colorReset)
	}
	return line
}

func (m tuiModel) renderHelp() string {
	lines := []string{
		"Key Bindings:",
		" q        quit",
		" space/p  pause or resume",
		" enter    leave or show the start menu",
		" u        toggle user control of the ball carrier",
		" ←→↑↓     move the user agent",
		" x        shoot",
		" 1-5      pass to position",
		" r        reset the match",
		" b        toggle box score",
		" w        toggle wrap for play-by-play",
		" s        toggle auto-scroll",
		" h/?      toggle this help view",
		"",
		"When auto-scroll is disabled:",
		" j/k               scroll one line",
		" pgdown/pgup       scroll a page",
	}
	return strings.Join(lines, "\n")
}
