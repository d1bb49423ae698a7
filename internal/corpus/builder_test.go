package corpus

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestBuild_SeedsOnly(t *testing.T) {
	out := t.TempDir()
	b := NewBuilder(Options{OutDir: out}, testLogger())

	m, err := b.Build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	corpus := readFile(t, filepath.Join(out, CorpusFile))
	lines := strings.Split(strings.TrimRight(corpus, "\n"), "\n")
	if len(lines) != len(SeedConversations) {
		t.Errorf("expected %d corpus lines, got %d", len(SeedConversations), len(lines))
	}
	if lines[0] != SeedConversations[0] {
		t.Errorf("first line = %q", lines[0])
	}

	if m.BaseLines != 0 {
		t.Errorf("expected 0 base lines, got %d", m.BaseLines)
	}
	if m.SeedLines != len(SeedConversations) {
		t.Errorf("seed lines = %d", m.SeedLines)
	}
	if m.RunID == uuid.Nil {
		t.Error("expected non-nil run ID")
	}
	if m.FinishedAt.Before(m.StartedAt) {
		t.Error("finished before started")
	}
}

func TestBuild_MergesBaseCorpusFirst(t *testing.T) {
	out := t.TempDir()
	base := filepath.Join(t.TempDir(), "base.txt")
	if err := os.WriteFile(base, []byte("base line one\nbase line two\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	b := NewBuilder(Options{OutDir: out, BaseCorpus: base}, testLogger())
	m, err := b.Build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	corpus := readFile(t, filepath.Join(out, CorpusFile))
	lines := strings.Split(strings.TrimRight(corpus, "\n"), "\n")
	if lines[0] != "base line one" || lines[1] != "base line two" {
		t.Errorf("base corpus must come first, got %q, %q", lines[0], lines[1])
	}
	if len(lines) != 2+len(SeedConversations) {
		t.Errorf("expected %d lines, got %d", 2+len(SeedConversations), len(lines))
	}
	if m.BaseLines != 2 {
		t.Errorf("base lines = %d", m.BaseLines)
	}
}

func TestBuild_MissingBaseCorpusIsNotAnError(t *testing.T) {
	out := t.TempDir()
	b := NewBuilder(Options{OutDir: out, BaseCorpus: filepath.Join(out, "missing.txt")}, testLogger())

	m, err := b.Build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if m.BaseLines != 0 {
		t.Errorf("base lines = %d", m.BaseLines)
	}
	if len(m.Warnings) != 0 {
		t.Errorf("missing base corpus should not warn, got %v", m.Warnings)
	}
}

func TestBuild_IncludeDir(t *testing.T) {
	out := t.TempDir()
	docs := t.TempDir()

	files := map[string]string{
		"notes.txt": "a note line\n",
		"guide.md":  "a guide line\n",
		"skip.json": `{"ignored": true}`,
		"empty.txt": "",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(docs, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	b := NewBuilder(Options{OutDir: out, IncludeDir: docs}, testLogger())
	m, err := b.Build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	if m.IncludedDocs != 2 {
		t.Errorf("expected 2 included docs (.txt and .md), got %d", m.IncludedDocs)
	}
	if len(m.Warnings) != 1 || !strings.Contains(m.Warnings[0], "empty file") {
		t.Errorf("expected one empty-file warning, got %v", m.Warnings)
	}

	corpus := readFile(t, filepath.Join(out, CorpusFile))
	if !strings.Contains(corpus, "a note line") || !strings.Contains(corpus, "a guide line") {
		t.Error("expected include-dir document lines in corpus")
	}
	if strings.Contains(corpus, "ignored") {
		t.Error("non-txt/md files must not be merged")
	}
}

func TestBuild_IncludeDirDocumentCap(t *testing.T) {
	out := t.TempDir()
	docs := t.TempDir()
	for _, name := range []string{"a.txt", "b.txt", "c.txt"} {
		if err := os.WriteFile(filepath.Join(docs, name), []byte("doc line from "+name+"\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	b := NewBuilder(Options{OutDir: out, IncludeDir: docs, MaxDocuments: 2}, testLogger())
	m, err := b.Build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if m.IncludedDocs != 2 {
		t.Errorf("expected document cap of 2, got %d", m.IncludedDocs)
	}
}

func TestBuild_DialoguePatterns(t *testing.T) {
	out := t.TempDir()
	b := NewBuilder(Options{OutDir: out}, testLogger())

	if _, err := b.Build(); err != nil {
		t.Fatalf("build failed: %v", err)
	}

	dialogue := readFile(t, filepath.Join(out, DialogueFile))
	lines := strings.Split(strings.TrimRight(dialogue, "\n"), "\n")
	if len(lines) != len(SeedQA)*3 {
		t.Fatalf("expected %d dialogue lines, got %d", len(SeedQA)*3, len(lines))
	}

	first := SeedQA[0]
	if lines[0] != first.Q+" "+first.A {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "User asks: "+first.Q+" Assistant responds: "+first.A {
		t.Errorf("line 1 = %q", lines[1])
	}
	if lines[2] != "Question: "+first.Q+" Answer: "+first.A {
		t.Errorf("line 2 = %q", lines[2])
	}
}

func TestBuild_WritesManifest(t *testing.T) {
	out := t.TempDir()
	b := NewBuilder(Options{OutDir: out}, testLogger())

	m, err := b.Build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	loaded, err := LoadManifest(filepath.Join(out, ManifestFile))
	if err != nil {
		t.Fatalf("load manifest: %v", err)
	}
	if loaded.RunID != m.RunID {
		t.Errorf("run ID mismatch: %s vs %s", loaded.RunID, m.RunID)
	}
	if len(loaded.Outputs) != 2 {
		t.Fatalf("expected 2 outputs, got %d", len(loaded.Outputs))
	}
	if loaded.TotalLines() != m.TotalLines() {
		t.Errorf("total lines mismatch: %d vs %d", loaded.TotalLines(), m.TotalLines())
	}
}
