package sim

import (
	"errors"

	"courtsim/internal/match"
)

// MultiWriter fans events, frames and box scores out to multiple writers.
// Frames and box scores only reach writers that implement them.
type MultiWriter struct {
	writers []EventWriter
}

// NewMultiWriter creates a new MultiWriter. Nil writers are skipped.
func NewMultiWriter(ws ...EventWriter) *MultiWriter {
	mw := &MultiWriter{}
	for _, w := range ws {
		if w != nil {
			mw.writers = append(mw.writers, w)
		}
	}
	return mw
}

// WriteEvent sends an event to all writers.
func (mw *MultiWriter) WriteEvent(e match.Event) error {
	for _, w := range mw.writers {
		if err := w.WriteEvent(e); err != nil {
			return err
		}
	}
	return nil
}

// WriteEvents sends multiple events to all writers, using batch if supported.
func (mw *MultiWriter) WriteEvents(events []match.Event) error {
	for _, w := range mw.writers {
		if bw, ok := w.(batchEventWriter); ok {
			if err := bw.WriteEvents(events); err != nil {
				return err
			}
			continue
		}
		for _, e := range events {
			if err := w.WriteEvent(e); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteFrame forwards a snapshot to every frame writer.
func (mw *MultiWriter) WriteFrame(s match.Snapshot) error {
	var errs []error
	for _, w := range mw.writers {
		if fw, ok := w.(FrameWriter); ok {
			errs = append(errs, fw.WriteFrame(s))
		}
	}
	return errors.Join(errs...)
}

// WriteBoxScore forwards the box score to every box score writer. One
// failing export does not stop the others.
func (mw *MultiWriter) WriteBoxScore(b match.BoxScore) error {
	var errs []error
	for _, w := range mw.writers {
		if bw, ok := w.(BoxScoreWriter); ok {
			errs = append(errs, bw.WriteBoxScore(b))
		}
	}
	return errors.Join(errs...)
}

// SetControls forwards operator controls to writers that accept them.
func (mw *MultiWriter) SetControls(c Controls) {
	for _, w := range mw.writers {
		if cr, ok := w.(ControlsReceiver); ok {
			cr.SetControls(c)
		}
	}
}

// SetAdminStatus forwards the admin UI status to writers that show it.
func (mw *MultiWriter) SetAdminStatus(listening bool) {
	for _, w := range mw.writers {
		if aw, ok := w.(AdminStatusWriter); ok {
			aw.SetAdminStatus(listening)
		}
	}
}

// Close closes every writer that holds resources.
func (mw *MultiWriter) Close() error {
	var errs []error
	for _, w := range mw.writers {
		if c, ok := w.(interface{ Close() error }); ok {
			errs = append(errs, c.Close())
		}
	}
	return errors.Join(errs...)
}
