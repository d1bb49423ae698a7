package corpus

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

// ManifestFile is written next to the corpus outputs after every build.
const ManifestFile = "quarry-manifest.json"

// OutputFile records one file produced by a build.
type OutputFile struct {
	Path  string `json:"path"`
	Lines int    `json:"lines"`
}

// Manifest is the per-run build record: what went in, what came out, and
// what was skipped along the way.
type Manifest struct {
	RunID        uuid.UUID    `json:"run_id"`
	StartedAt    time.Time    `json:"started_at"`
	FinishedAt   time.Time    `json:"finished_at"`
	BaseLines    int          `json:"base_lines"`
	SeedLines    int          `json:"seed_lines"`
	IncludedDocs int          `json:"included_docs"`
	Outputs      []OutputFile `json:"outputs"`
	Warnings     []string     `json:"warnings,omitempty"`
}

func NewManifest() *Manifest {
	return &Manifest{
		RunID:     uuid.New(),
		StartedAt: time.Now().UTC(),
	}
}

func (m *Manifest) AddOutput(path string, lines int) {
	m.Outputs = append(m.Outputs, OutputFile{Path: path, Lines: lines})
}

func (m *Manifest) AddWarning(msg string) {
	m.Warnings = append(m.Warnings, msg)
}

func (m *Manifest) Finish() {
	m.FinishedAt = time.Now().UTC()
}

// TotalLines sums the line counts across all outputs.
func (m *Manifest) TotalLines() int {
	total := 0
	for _, o := range m.Outputs {
		total += o.Lines
	}
	return total
}

// Save persists the manifest to disk.
func (m *Manifest) Save(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// LoadManifest reads a previously saved manifest.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &m, nil
}
