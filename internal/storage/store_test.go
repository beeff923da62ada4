package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/telari/stagecue/internal/choreo"
)

func testProject(t *testing.T) *choreo.Project {
	t.Helper()
	p := choreo.NewProject("Evening Duet")
	p.BackingDuration = 30

	tr, err := p.Track(1)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tr.AddLayer(choreo.LayerSpec{Start: 0, End: 20, Label: "full take"}); err != nil {
		t.Fatal(err)
	}
	if _, err := tr.AddPatchLayer(choreo.LayerSpec{Start: 5, End: 8, Label: "fix"}, choreo.DefaultPatchPriority); err != nil {
		t.Fatal(err)
	}

	e := choreo.NewEditor()
	if err := tr.CommitHold(e, 0, 0.2, 0.7); err != nil {
		t.Fatal(err)
	}
	if err := tr.CommitHold(e, 10, 0.5, 0.5); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestStoreRoundTrip(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}

	id, err := store.Create(testProject(t))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !strings.HasPrefix(id, "evening-duet_") {
		t.Errorf("id = %q, want slug prefix", id)
	}

	got, err := store.Load(id)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got.Title != "Evening Duet" {
		t.Errorf("title = %q", got.Title)
	}
	if got.Duration() != 30 {
		t.Errorf("duration = %v, want 30", got.Duration())
	}

	tr := got.Tracks[0]
	if len(tr.Layers) != 2 {
		t.Fatalf("layers = %d, want 2", len(tr.Layers))
	}
	if l, ok := tr.ActiveLayer(6); !ok || l.Label != "fix" {
		t.Error("patch must still out-rank the base layer after a round trip")
	}

	// The auto-inserted transition must survive as LINEAR: glide behavior at
	// t=9.75 differs from a pure jump.
	pos, ok := tr.Position(9.75)
	if !ok {
		t.Fatal("expected position")
	}
	if pos.X <= 0.2 || pos.X >= 0.5 {
		t.Errorf("mid-glide x = %v, want strictly between 0.2 and 0.5", pos.X)
	}
}

func TestStoreSaveUnknownID(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Save("missing_1", choreo.NewProject("x")); err == nil {
		t.Error("expected error for unknown project id")
	}
}

func writeProjectJSON(t *testing.T, dir, id, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Join(dir, id), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, id, "project.json"), []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadRejectsMalformedKeyframes(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			"STEP missing coordinates",
			`{"title":"x","tracks":[{"slot":1,"keyframes":[{"id":"k1","timeSec":1,"interp":"STEP"}]}]}`,
		},
		{
			"STEP x beyond stage",
			`{"title":"x","tracks":[{"slot":1,"keyframes":[{"id":"k1","timeSec":1,"interp":"STEP","x":5,"y":0.5}]}]}`,
		},
		{
			"STEP negative y",
			`{"title":"x","tracks":[{"slot":1,"keyframes":[{"id":"k1","timeSec":1,"interp":"STEP","x":0.5,"y":-0.2}]}]}`,
		},
		{
			"unknown interp",
			`{"title":"x","tracks":[{"slot":1,"keyframes":[{"id":"k1","timeSec":1,"interp":"CUBIC"}]}]}`,
		},
		{
			"negative time",
			`{"title":"x","tracks":[{"slot":1,"keyframes":[{"id":"k1","timeSec":-1,"interp":"LINEAR"}]}]}`,
		},
		{
			"inverted layer span",
			`{"title":"x","tracks":[{"slot":1,"layers":[{"id":"l1","startSec":5,"endSec":2,"priority":1}]}]}`,
		},
		{
			"slot out of range",
			`{"title":"x","tracks":[{"slot":4}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeProjectJSON(t, dir, "bad_1", tt.body)
			if _, err := New(dir).Load("bad_1"); err == nil {
				t.Error("expected load to reject malformed project")
			}
		})
	}
}

func TestLoadWireNames(t *testing.T) {
	dir := t.TempDir()
	writeProjectJSON(t, dir, "wire_1", `{
		"title": "wire",
		"tracks": [{
			"slot": 2,
			"keyframes": [
				{"id": "k1", "timeSec": 0, "interp": "STEP", "x": 0.1, "y": 0.9},
				{"id": "k2", "timeSec": 1, "interp": "LINEAR"}
			]
		}]
	}`)

	p, err := New(dir).Load("wire_1")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	frames := p.Tracks[1].Keyframes
	if len(frames) != 2 {
		t.Fatalf("keyframes = %d, want 2", len(frames))
	}
	if h, ok := frames[0].(choreo.Hold); !ok || h.X != 0.1 || h.Y != 0.9 {
		t.Errorf("STEP record did not decode to a Hold: %#v", frames[0])
	}
	if _, ok := frames[1].(choreo.Transition); !ok {
		t.Errorf("LINEAR record did not decode to a Transition: %#v", frames[1])
	}
}

func TestStoreList(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}

	if projects, err := store.List(); err != nil || len(projects) != 0 {
		t.Fatalf("empty store: projects = %v err = %v", projects, err)
	}

	id, err := store.Create(testProject(t))
	if err != nil {
		t.Fatal(err)
	}

	projects, err := store.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(projects) != 1 {
		t.Fatalf("projects = %d, want 1", len(projects))
	}
	meta := projects[0]
	if meta.ID != id || meta.Title != "Evening Duet" {
		t.Errorf("metadata = %+v", meta)
	}
	if meta.Layers != 2 {
		t.Errorf("layers = %d, want 2", meta.Layers)
	}
	if meta.Keyframes != 3 {
		t.Errorf("keyframes = %d, want 2 holds + 1 auto transition", meta.Keyframes)
	}
}
