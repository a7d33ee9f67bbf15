package sim

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"strconv"

	gpb "github.com/GreptimeTeam/greptime-proto/go/greptime/v1"
	greptime "github.com/GreptimeTeam/greptimedb-ingester-go"
	"github.com/GreptimeTeam/greptimedb-ingester-go/table"
	"github.com/GreptimeTeam/greptimedb-ingester-go/table/types"

	"courtsim/internal/match"
)

const defaultGreptimePort = 4001

// greptimeClient is the subset of the ingester client the writer uses.
type greptimeClient interface {
	Write(ctx context.Context, tables ...*table.Table) (*gpb.GreptimeResponse, error)
}

// GreptimeDBWriter exports play-by-play events and final stat lines to
// GreptimeDB via the ingester client.
type GreptimeDBWriter struct {
	client     greptimeClient
	eventTable string
	statTable  string
	log        *slog.Logger
}

// NewGreptimeDBWriter connects to endpoint ("host" or "host:port").
func NewGreptimeDBWriter(endpoint, database, eventTable, statTable string) (*GreptimeDBWriter, error) {
	host, port, err := splitEndpoint(endpoint)
	if err != nil {
		return nil, err
	}
	cfg := greptime.NewConfig(host).WithPort(port).WithDatabase(database)
	client, err := greptime.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("greptime client: %w", err)
	}
	if eventTable == "" {
		eventTable = "match_events"
	}
	if statTable == "" {
		statTable = "match_stat_lines"
	}
	return &GreptimeDBWriter{client: client, eventTable: eventTable, statTable: statTable}, nil
}

func splitEndpoint(endpoint string) (string, int, error) {
	host, portStr, err := net.SplitHostPort(endpoint)
	if err != nil {
		return endpoint, defaultGreptimePort, nil
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return "", 0, fmt.Errorf("invalid greptime port %q: %w", portStr, err)
	}
	return host, port, nil
}

func (w *GreptimeDBWriter) logger() *slog.Logger {
	if w.log != nil {
		return w.log
	}
	return slog.Default()
}

// WriteEvent inserts a single event.
func (w *GreptimeDBWriter) WriteEvent(e match.Event) error {
	return w.WriteEvents([]match.Event{e})
}

// WriteEvents inserts multiple events.
func (w *GreptimeDBWriter) WriteEvents(events []match.Event) error {
	if len(events) == 0 || w.eventTable == "" {
		return nil
	}
	tbl, err := table.New(w.eventTable)
	if err != nil {
		return err
	}
	tbl.AddTagColumn("match_id", types.STRING)
	tbl.AddTagColumn("kind", types.STRING)
	tbl.AddFieldColumn("seq", types.INT64)
	tbl.AddFieldColumn("period", types.INT64)
	tbl.AddFieldColumn("clock", types.STRING)
	tbl.AddFieldColumn("shot_clock", types.INT64)
	tbl.AddFieldColumn("player", types.STRING)
	tbl.AddFieldColumn("other", types.STRING)
	tbl.AddFieldColumn("team", types.STRING)
	tbl.AddFieldColumn("text", types.STRING)
	tbl.AddFieldColumn("home_score", types.INT64)
	tbl.AddFieldColumn("away_score", types.INT64)
	tbl.AddTimestampColumn("ts", types.TIMESTAMP_MILLISECOND)

	for _, e := range events {
		if err := tbl.AddRow(
			e.MatchID, string(e.Kind),
			int64(e.Seq), int64(e.Period), e.Clock, int64(e.ShotClock),
			e.Player, e.Other, e.Team, e.Text,
			int64(e.HomeScore), int64(e.AwayScore),
			e.Timestamp,
		); err != nil {
			return err
		}
	}

	if _, err := w.client.Write(context.Background(), tbl); err != nil {
		w.logger().Error("greptime event write failed", "table", w.eventTable, "err", err)
		return err
	}
	w.logger().Debug("greptime events written", "rows", len(events))
	return nil
}

// WriteBoxScore inserts one row per player of the final box score.
func (w *GreptimeDBWriter) WriteBoxScore(b match.BoxScore) error {
	if w.statTable == "" {
		return nil
	}
	tbl, err := table.New(w.statTable)
	if err != nil {
		return err
	}
	tbl.AddTagColumn("match_id", types.STRING)
	tbl.AddTagColumn("team", types.STRING)
	tbl.AddTagColumn("player", types.STRING)
	tbl.AddFieldColumn("position", types.INT64)
	for _, k := range match.StatKeys {
		tbl.AddFieldColumn(statColumn(k), types.INT64)
	}
	tbl.AddFieldColumn("final", types.BOOLEAN)
	tbl.AddTimestampColumn("ts", types.TIMESTAMP_MILLISECOND)

	for _, tb := range b.Teams {
		for _, l := range tb.Players {
			row := []any{b.MatchID, tb.Name, l.Name, int64(l.Position)}
			for _, v := range l.Stats.Values() {
				row = append(row, int64(v))
			}
			row = append(row, b.Final, b.Timestamp)
			if err := tbl.AddRow(row...); err != nil {
				return err
			}
		}
	}

	if _, err := w.client.Write(context.Background(), tbl); err != nil {
		w.logger().Error("greptime stat write failed", "table", w.statTable, "err", err)
		return err
	}
	return nil
}

// statColumn maps a box score key to a column name; 3PM becomes fg3m.
func statColumn(key string) string {
	switch key {
	case "3PM":
		return "fg3m"
	case "3PA":
		return "fg3a"
	}
	out := []byte(key)
	for i, c := range out {
		if c >= 'A' && c <= 'Z' {
			out[i] = c + 'a' - 'A'
		}
	}
	return string(out)
}
