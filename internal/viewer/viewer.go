// Package viewer serves a live, updatable view of plotted frames over
// HTTP. Poses are posted as JSON and drawn onto one shared echarts3d
// scene; posting an existing frame id replots it in place. This is a
// debugging tool: no auth, no persistence.
package viewer

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/banshee-data/frameplot"
	"github.com/banshee-data/frameplot/internal/version"
	"github.com/banshee-data/frameplot/render"
	"github.com/banshee-data/frameplot/render/echarts3d"
)

// Server holds the frames on display. All handlers serialise on one
// mutex; the underlying scene is not safe for concurrent use.
type Server struct {
	mu     sync.Mutex
	scene  *echarts3d.Scene
	frames map[string]*entry
}

type entry struct {
	info   FrameInfo
	handle *frameplot.Frame
}

// FrameRequest is the POST body for creating or updating a frame.
// Leaving ID empty creates a new frame; an existing ID replots that
// frame in place.
type FrameRequest struct {
	ID          string        `json:"id,omitempty"`
	Name        string        `json:"name,omitempty"`
	Rotation    [3][3]float64 `json:"rotation"`
	Translation [3]float64    `json:"translation"`
	Lengths     []float64     `json:"lengths,omitempty"`
	ColumnMajor bool          `json:"column_major,omitempty"`
	Labels      bool          `json:"labels,omitempty"`
	Colors      []string      `json:"colors,omitempty"`
}

// FrameInfo describes one displayed frame.
type FrameInfo struct {
	ID          string        `json:"id"`
	Name        string        `json:"name,omitempty"`
	Rotation    [3][3]float64 `json:"rotation"`
	Translation [3]float64    `json:"translation"`
	Labels      bool          `json:"labels"`
}

// NewServer creates a viewer with an empty scene.
func NewServer(title string) *Server {
	return &Server{
		scene:  echarts3d.NewScene(title),
		frames: make(map[string]*entry),
	}
}

// Routes returns the viewer's HTTP handler.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/frames", s.handleFrames)
	mux.HandleFunc("/view", s.handleView)
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/", s.handleIndex)
	return mux
}

func (s *Server) handleFrames(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleListFrames(w, r)
	case http.MethodPost:
		s.handleUpsertFrame(w, r)
	case http.MethodDelete:
		s.handleDeleteFrame(w, r)
	default:
		writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handleListFrames(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]FrameInfo, 0, len(s.frames))
	for _, e := range s.frames {
		out = append(out, e.info)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(out); err != nil {
		log.Printf("failed to encode frame list: %v", err)
	}
}

func (s *Server) handleUpsertFrame(w http.ResponseWriter, r *http.Request) {
	var req FrameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, fmt.Sprintf("bad request body: %v", err))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cfg := frameplot.Config{
		Lengths:    req.Lengths,
		LabelBasis: req.Labels,
	}
	if req.ColumnMajor {
		cfg.Indexing = frameplot.ColumnMajor
	}
	for _, c := range req.Colors {
		spec := render.ColorSpec(c)
		if _, err := spec.Resolve(); err != nil {
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		cfg.Colors = append(cfg.Colors, spec)
	}

	id := req.ID
	if id == "" {
		id = uuid.NewString()
	} else if existing, ok := s.frames[id]; ok {
		cfg.Update = existing.handle
	} else {
		writeJSONError(w, http.StatusNotFound, fmt.Sprintf("no frame with id %q", id))
		return
	}

	pose := frameplot.Pose{
		Rotation: req.Rotation,
		Translation: r3.Vec{
			X: req.Translation[0],
			Y: req.Translation[1],
			Z: req.Translation[2],
		},
	}

	handle, err := frameplot.Plot(s.scene, pose, cfg)
	if err != nil {
		writeJSONError(w, plotErrorStatus(err), err.Error())
		return
	}

	info := FrameInfo{
		ID:          id,
		Name:        req.Name,
		Rotation:    req.Rotation,
		Translation: req.Translation,
		Labels:      req.Labels,
	}
	s.frames[id] = &entry{info: info, handle: handle}
	log.Printf("frame %s plotted (update=%v)", id, cfg.Update != nil)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(info); err != nil {
		log.Printf("failed to encode frame info: %v", err)
	}
}

func (s *Server) handleDeleteFrame(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeJSONError(w, http.StatusBadRequest, "missing 'id' parameter")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.frames[id]
	if !ok {
		writeJSONError(w, http.StatusNotFound, fmt.Sprintf("no frame with id %q", id))
		return
	}

	if err := s.scene.RemoveGroup(e.handle.Group()); err != nil {
		writeJSONError(w, http.StatusInternalServerError, fmt.Sprintf("failed to remove frame: %v", err))
		return
	}
	delete(s.frames, id)

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleView(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.scene.Render(w); err != nil {
		log.Printf("failed to render scene: %v", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"version": version.Version,
	}); err != nil {
		log.Printf("failed to encode health response: %v", err)
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, indexHTML)
}

// plotErrorStatus maps frameplot validation failures to 400s; anything
// else is a server-side problem.
func plotErrorStatus(err error) int {
	var styleErr *render.StyleError
	switch {
	case errors.Is(err, frameplot.ErrInvalidRotation),
		errors.Is(err, frameplot.ErrInvalidLengths),
		errors.Is(err, frameplot.ErrInvalidColorCount),
		errors.Is(err, frameplot.ErrInvalidUpdateTarget),
		errors.As(err, &styleErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

const indexHTML = `<!DOCTYPE html>
<html>
<head><title>frameplot viewer</title></head>
<body style="margin:0;background:#111;color:#eee;font-family:sans-serif">
<div style="padding:8px">POST poses to /api/frames; the scene below refreshes every 2s.</div>
<iframe src="/view" style="border:0;width:100%;height:90vh"></iframe>
<script>setInterval(function(){document.querySelector('iframe').src='/view'},2000)</script>
</body>
</html>
`
