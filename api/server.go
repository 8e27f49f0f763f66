package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/matt-g-everett/ledclock/stream"
	"github.com/matt-g-everett/ledclock/tween"
)

// A Snapshotter reports what the clock is showing.
type Snapshotter interface {
	Snapshot() stream.Snapshot
}

// Api serves the client pages and the clock's current geometry.
type Api struct {
	listen    string
	staticDir string
	source    Snapshotter
}

// NewApi creates an Api.
func NewApi(listen, staticDir string, source Snapshotter) *Api {
	a := new(Api)
	a.listen = listen
	a.staticDir = staticDir
	a.source = source
	return a
}

// Handler returns the HTTP routes.
func (a *Api) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(a.staticDir)))
	mux.HandleFunc("/path", a.handlePath)
	mux.HandleFunc("/hands", a.handleHands)
	return mux
}

func (a *Api) handlePath(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s := a.source.Snapshot()
	writeJSON(w, struct {
		Face    string        `json:"face"`
		Outline []tween.Point `json:"outline"`
	}{s.Face, s.Outline})
}

func (a *Api) handleHands(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s := a.source.Snapshot()
	writeJSON(w, struct {
		Face          string       `json:"face"`
		Next          string       `json:"next,omitempty"`
		Transitioning bool         `json:"transitioning"`
		Hands         stream.Hands `json:"hands"`
	}{s.Face, s.Next, s.Transitioning, s.Hands})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

// Serve listens until the server fails.
func (a *Api) Serve() error {
	log.Printf("Listening on %s...", a.listen)
	return http.ListenAndServe(a.listen, a.Handler())
}
