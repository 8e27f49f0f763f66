package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matt-g-everett/ledclock/stream"
	"github.com/matt-g-everett/ledclock/tween"
)

type fixedSource struct {
	snapshot stream.Snapshot
}

func (s fixedSource) Snapshot() stream.Snapshot {
	return s.snapshot
}

func newTestApi(t *testing.T) *Api {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>clock</h1>"), 0o644); err != nil {
		t.Fatalf("write index: %v", err)
	}
	source := fixedSource{stream.Snapshot{
		Face:    "oval",
		Outline: []tween.Point{{X: 0, Y: 1}, {X: 1, Y: 0}},
		Hands: stream.Hands{
			Hour:        tween.Point{X: 3, Y: 4},
			HourPercent: 0.25,
		},
	}}
	return NewApi(":0", dir, source)
}

func TestPath(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestApi(t).Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/path", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got struct {
		Face    string        `json:"face"`
		Outline []tween.Point `json:"outline"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Face != "oval" || len(got.Outline) != 2 || got.Outline[1] != (tween.Point{X: 1, Y: 0}) {
		t.Fatalf("response = %+v", got)
	}
}

func TestHands(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestApi(t).Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/hands", nil))

	var got struct {
		Face  string       `json:"face"`
		Hands stream.Hands `json:"hands"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Hands.Hour != (tween.Point{X: 3, Y: 4}) || got.Hands.HourPercent != 0.25 {
		t.Fatalf("hands = %+v", got.Hands)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("Content-Type = %q", ct)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestApi(t).Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/hands", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}

func TestStaticFiles(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestApi(t).Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if !strings.Contains(rec.Body.String(), "clock") {
		t.Fatalf("body = %q, want index page", rec.Body.String())
	}
}
