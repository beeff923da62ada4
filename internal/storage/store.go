// Package storage persists projects under a data directory, one directory
// per project id, and maps the on-disk wire format onto the choreo model.
// The wire names for keyframe kinds are STEP (hold) and LINEAR (transition).
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/telari/stagecue/internal/choreo"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// ProjectMetadata is the listing row for a stored project.
type ProjectMetadata struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Duration  float64   `json:"duration"`
	Layers    int       `json:"layers"`
	Keyframes int       `json:"keyframes"`
	SavedAt   time.Time `json:"savedAt"`
}

// Create stores a new project and returns its minted id.
func (s *Store) Create(p *choreo.Project) (string, error) {
	id := fmt.Sprintf("%s_%d", slug(p.Title), time.Now().Unix())
	if err := s.write(id, p); err != nil {
		return "", err
	}
	return id, nil
}

// Save overwrites an existing project.
func (s *Store) Save(id string, p *choreo.Project) error {
	if _, err := os.Stat(filepath.Join(s.baseDir, id)); err != nil {
		return fmt.Errorf("unknown project %q: %w", id, err)
	}
	return s.write(id, p)
}

func (s *Store) write(id string, p *choreo.Project) error {
	dir := filepath.Join(s.baseDir, id)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	file, err := encodeProject(p)
	if err != nil {
		return err
	}
	file.SavedAt = time.Now()

	f, err := os.Create(filepath.Join(dir, "project.json"))
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(file)
}

// Load reads a project back, rejecting malformed keyframe records so bad
// data never reaches the interpolator.
func (s *Store) Load(id string) (*choreo.Project, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, "project.json"))
	if err != nil {
		return nil, err
	}
	var file projectFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	return decodeProject(&file)
}

// List returns metadata for every stored project, most fields derived from
// the project file itself.
func (s *Store) List() ([]ProjectMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var out []ProjectMetadata
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, e.Name(), "project.json"))
		if err != nil {
			continue
		}
		var file projectFile
		if err := json.Unmarshal(data, &file); err != nil {
			continue
		}
		p, err := decodeProject(&file)
		if err != nil {
			continue
		}
		layers, frames := 0, 0
		for _, tr := range p.Tracks {
			layers += len(tr.Layers)
			frames += len(tr.Keyframes)
		}
		out = append(out, ProjectMetadata{
			ID:        e.Name(),
			Title:     p.Title,
			Duration:  p.Duration(),
			Layers:    layers,
			Keyframes: frames,
			SavedAt:   file.SavedAt,
		})
	}
	return out, nil
}

// Dir returns the directory backing a project id.
func (s *Store) Dir(id string) string {
	return filepath.Join(s.baseDir, id)
}

func slug(title string) string {
	title = strings.ToLower(strings.TrimSpace(title))
	var b strings.Builder
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('-')
		}
	}
	if b.Len() == 0 {
		return "project"
	}
	return b.String()
}
