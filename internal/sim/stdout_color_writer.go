// ColorStdoutWriter prints human-friendly, colorized play-by-play to STDOUT.
package sim

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"text/tabwriter"

	"courtsim/internal/match"
)

const (
	colorReset   = "\x1b[0m"
	colorRed     = "\x1b[31m"
	colorGreen   = "\x1b[32m"
	colorYellow  = "\x1b[33m"
	colorBlue    = "\x1b[34m"
	colorMagenta = "\x1b[35m"
	colorCyan    = "\x1b[36m"
	colorGray    = "\x1b[90m"
)

// teamPalette colors home and away in that order.
var teamPalette = [2]string{colorRed, colorCyan}

// ColorStdoutWriter prints events using ANSI colors.
type ColorStdoutWriter struct {
	settings *match.Settings
	out      io.Writer
	once     sync.Once
}

// NewColorStdoutWriter creates a ColorStdoutWriter writing to os.Stdout.
// The match overview is printed before the first event.
func NewColorStdoutWriter(s *match.Settings) *ColorStdoutWriter {
	return &ColorStdoutWriter{settings: s, out: os.Stdout}
}

func (w *ColorStdoutWriter) printOverview() {
	if w.settings == nil {
		return
	}
	s := w.settings

	fmt.Fprintln(w.out, "Match Configuration:")
	tw := tabwriter.NewWriter(w.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Period (s):\t%.0f\n", s.PeriodSeconds)
	fmt.Fprintf(tw, "Overtime (s):\t%.0f\n", s.OvertimeSeconds)
	fmt.Fprintf(tw, "Shot Clock (s):\t%.0f\n", s.ShotClockSeconds)
	fmt.Fprintf(tw, "Seconds per Tick:\t%.3f\n", s.SecondsPerTick)
	fmt.Fprintf(tw, "Tempo:\t%.0f\n", s.Tempo)
	tw.Flush()

	fmt.Fprintln(w.out, "\nRosters:")
	tw = tabwriter.NewWriter(w.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Pos\t%s%s%s\t%s%s%s\n", teamPalette[0], s.Home.Name, colorReset, teamPalette[1], s.Away.Name, colorReset)
	for i := range s.Home.Players {
		var away string
		if i < len(s.Away.Players) {
			away = s.Away.Players[i].Name
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\n", s.Home.Players[i].Position, s.Home.Players[i].Name, away)
	}
	tw.Flush()
	fmt.Fprintln(w.out)
}

func kindColor(k match.EventKind) string {
	switch k {
	case match.EventScore, match.EventFinal:
		return colorGreen
	case match.EventSteal, match.EventBlock, match.EventShotClock:
		return colorRed
	case match.EventRebound:
		return colorYellow
	case match.EventAssist:
		return colorMagenta
	case match.EventControl, match.EventOvertime, match.EventStart:
		return colorBlue
	}
	return colorCyan
}

// WriteEvent outputs a single event in colorized format.
func (w *ColorStdoutWriter) WriteEvent(e match.Event) error {
	w.once.Do(w.printOverview)
	fmt.Fprintf(w.out, "%sQ%d %s%s ", colorGray, e.Period, e.Clock, colorReset)
	fmt.Fprintf(w.out, "%s%-10s%s ", kindColor(e.Kind), strings.ToUpper(string(e.Kind)), colorReset)
	fmt.Fprintf(w.out, "%s", e.Text)
	fmt.Fprintf(w.out, " %s(%d-%d, shot %d)%s\n", colorGray, e.HomeScore, e.AwayScore, e.ShotClock, colorReset)
	return nil
}

// WriteEvents outputs multiple events.
func (w *ColorStdoutWriter) WriteEvents(events []match.Event) error {
	for _, e := range events {
		_ = w.WriteEvent(e)
	}
	return nil
}

// WriteBoxScore prints both teams' stat tables.
func (w *ColorStdoutWriter) WriteBoxScore(b match.BoxScore) error {
	w.once.Do(w.printOverview)
	for i, tb := range b.Teams {
		fmt.Fprintf(w.out, "%s%s%s %d\n", teamPalette[i], tb.Name, colorReset, tb.Score)
		PrintTeamBox(w.out, tb)
		fmt.Fprintln(w.out)
	}
	return nil
}

// PrintBoxScore writes a plain-text box score.
func PrintBoxScore(out io.Writer, b match.BoxScore) {
	state := "in progress"
	if b.Final {
		state = "final"
	}
	fmt.Fprintf(out, "Match %s (%s, %d periods)\n", b.MatchID, state, b.Period)
	for _, tb := range b.Teams {
		fmt.Fprintf(out, "\n%s %d\n", tb.Name, tb.Score)
		PrintTeamBox(out, tb)
	}
}

// PrintTeamBox writes one team's stat table.
func PrintTeamBox(out io.Writer, tb match.TeamBox) {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "Player\t%s\t\n", strings.Join(match.StatKeys, "\t"))
	for _, l := range tb.Players {
		fmt.Fprintf(tw, "%s\t%s\t\n", l.Name, joinInts(l.Stats.Values()))
	}
	fmt.Fprintf(tw, "Totals\t%s\t\n", joinInts(tb.Totals.Values()))
	tw.Flush()
}

func joinInts(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, "\t")
}
