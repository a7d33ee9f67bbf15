package admin

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"courtsim/internal/geom"
	"courtsim/internal/logging"
	"courtsim/internal/match"
	"courtsim/internal/sim"
)

const feedWriteTimeout = 5 * time.Second

// Server exposes the running match over HTTP.
type Server struct {
	Sim *sim.Simulator
	tpl *template.Template
	mux *http.ServeMux
}

//go:embed templates/index.html
var content embed.FS

// NewServer routes the admin endpoints onto a running simulator.
func NewServer(sim *sim.Simulator) *Server {
	tpl := template.Must(template.New("index.html").ParseFS(content, "templates/index.html"))
	s := &Server{Sim: sim, tpl: tpl, mux: http.NewServeMux()}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /{$}", s.handleIndex)
	s.mux.HandleFunc("GET /snapshot", s.handleSnapshot)
	s.mux.HandleFunc("GET /boxscore", s.handleBoxScore)
	s.mux.HandleFunc("GET /score", s.handleScore)
	s.mux.HandleFunc("POST /pause", s.handlePause)
	s.mux.HandleFunc("POST /reset", s.handleReset)
	s.mux.HandleFunc("POST /user", s.handleUser)
	s.mux.HandleFunc("POST /menu", s.handleMenu)
	s.mux.HandleFunc("POST /shoot", s.handleShoot)
	s.mux.HandleFunc("POST /pass", s.handlePass)
	s.mux.HandleFunc("POST /target", s.handleTarget)
	s.mux.HandleFunc("GET /feed", s.handleFeed)
}

// Handler returns the routed handler, mainly for tests.
func (s *Server) Handler() http.Handler { return s.mux }

// Start serves until ctx is cancelled.
func (s *Server) Start(ctx context.Context, addr string) error {
	log := logging.FromContext(ctx)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(_ net.Listener) context.Context { return ctx },
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn("admin shutdown", "err", err)
		}
	}()
	log.Info("admin server listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := struct {
		Snapshot match.Snapshot
		Box      match.BoxScore
		Keys     []string
	}{
		Snapshot: s.Sim.Snapshot(),
		Box:      s.Sim.BoxScore(),
		Keys:     match.StatKeys,
	}
	if err := s.tpl.Execute(w, data); err != nil {
		logging.FromContext(r.Context()).Error("render index", "err", err)
	}
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Sim.Snapshot())
}

func (s *Server) handleBoxScore(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Sim.BoxScore())
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	home, away := s.Sim.Scores()
	writeJSON(w, map[string]any{"home": home, "away": away, "over": s.Sim.Over()})
}

func (s *Server) handlePause(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{"paused": s.Sim.TogglePause()})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.Sim.Reset()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleUser(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{"user": s.Sim.ToggleUser()})
}

func (s *Server) handleMenu(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{"menu": s.Sim.ToggleMenu()})
}

func (s *Server) handleShoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{"shot": s.Sim.UserShoot()})
}

func (s *Server) handlePass(w http.ResponseWriter, r *http.Request) {
	pos, err := strconv.Atoi(r.URL.Query().Get("position"))
	if err != nil || pos < 1 || pos > 5 {
		http.Error(w, "position must be 1-5", http.StatusBadRequest)
		return
	}
	writeJSON(w, map[string]any{"passed": s.Sim.UserPass(pos)})
}

// handleTarget sends the controlled agent to a point given in court units.
func (s *Server) handleTarget(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	x, errX := strconv.ParseFloat(q.Get("x"), 64)
	y, errY := strconv.ParseFloat(q.Get("y"), 64)
	if errX != nil || errY != nil {
		http.Error(w, "x and y must be numbers", http.StatusBadRequest)
		return
	}
	s.Sim.SetUserTarget(geom.Point{X: x, Y: y})
	w.WriteHeader(http.StatusNoContent)
}

// handleFeed streams snapshots to a websocket client until either side goes away.
func (s *Server) handleFeed(w http.ResponseWriter, r *http.Request) {
	log := logging.FromContext(r.Context())
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		log.Warn("feed accept", "err", err)
		return
	}
	defer conn.CloseNow()

	frames, unsubscribe := s.Sim.Subscribe()
	defer unsubscribe()

	// the client never sends; CloseRead handles control frames and
	// cancels ctx once it disconnects
	ctx := conn.CloseRead(r.Context())
	if err := writeFrame(ctx, conn, s.Sim.Snapshot()); err != nil {
		return
	}
	for {
		select {
		case <-ctx.Done():
			conn.Close(websocket.StatusNormalClosure, "")
			return
		case frame := <-frames:
			if err := writeFrame(ctx, conn, frame); err != nil {
				log.Debug("feed write", "err", err)
				return
			}
		}
	}
}

func writeFrame(ctx context.Context, conn *websocket.Conn, frame match.Snapshot) error {
	ctx, cancel := context.WithTimeout(ctx, feedWriteTimeout)
	defer cancel()
	return wsjson.Write(ctx, conn, frame)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
