package sim

import (
	"encoding/json"
	"os"

	"courtsim/internal/match"
)

// FileWriter writes play-by-play events to a JSONL file and the final box
// score to a separate JSON file.
type FileWriter struct {
	eventFile *os.File
	eventEnc  *json.Encoder
	boxPath   string
}

// NewFileWriter creates a FileWriter. boxScorePath may be empty to skip the
// box score.
func NewFileWriter(eventPath, boxScorePath string) (*FileWriter, error) {
	ef, err := os.Create(eventPath)
	if err != nil {
		return nil, err
	}
	return &FileWriter{eventFile: ef, eventEnc: json.NewEncoder(ef), boxPath: boxScorePath}, nil
}

// WriteEvent logs a single event.
func (f *FileWriter) WriteEvent(e match.Event) error {
	return f.eventEnc.Encode(e)
}

// WriteEvents logs multiple events.
func (f *FileWriter) WriteEvents(events []match.Event) error {
	for _, e := range events {
		if err := f.WriteEvent(e); err != nil {
			return err
		}
	}
	return nil
}

// WriteBoxScore replaces the box score file, if enabled.
func (f *FileWriter) WriteBoxScore(b match.BoxScore) error {
	if f.boxPath == "" {
		return nil
	}
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(f.boxPath, append(data, '\n'), 0644)
}

// Close closes the event file.
func (f *FileWriter) Close() error {
	if f.eventFile == nil {
		return nil
	}
	return f.eventFile.Close()
}

// ReadBoxScoreFile loads a box score written by FileWriter.
func ReadBoxScoreFile(path string) (match.BoxScore, error) {
	var b match.BoxScore
	data, err := os.ReadFile(path)
	if err != nil {
		return b, err
	}
	err = json.Unmarshal(data, &b)
	return b, err
}
