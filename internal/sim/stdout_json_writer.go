package sim

import (
	"encoding/json"
	"io"
	"os"

	"courtsim/internal/match"
)

// JSONStdoutWriter prints events and the final box score as JSON lines.
type JSONStdoutWriter struct {
	out io.Writer
	enc *json.Encoder
}

// NewJSONStdoutWriter creates a JSONStdoutWriter writing to os.Stdout.
func NewJSONStdoutWriter() *JSONStdoutWriter {
	return &JSONStdoutWriter{out: os.Stdout}
}

func (w *JSONStdoutWriter) encoder() *json.Encoder {
	if w.enc == nil {
		w.enc = json.NewEncoder(w.out)
	}
	return w.enc
}

// WriteEvent outputs a single event as JSON.
func (w *JSONStdoutWriter) WriteEvent(e match.Event) error {
	return w.encoder().Encode(e)
}

// WriteEvents outputs multiple events.
func (w *JSONStdoutWriter) WriteEvents(events []match.Event) error {
	for _, e := range events {
		if err := w.WriteEvent(e); err != nil {
			return err
		}
	}
	return nil
}

// WriteBoxScore outputs the box score as JSON.
func (w *JSONStdoutWriter) WriteBoxScore(b match.BoxScore) error {
	return w.encoder().Encode(b)
}
