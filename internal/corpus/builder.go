package corpus

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const (
	// CorpusFile is the combined training corpus, one sample per line.
	CorpusFile = "conversational_corpus.txt"
	// DialogueFile holds the Q&A seed pairs in three framings per pair.
	DialogueFile = "dialogue_patterns.txt"

	// maxDocBytes guards the include-dir merge against huge files.
	maxDocBytes = 10 * 1024 * 1024
	// defaultMaxDocuments caps how many include-dir documents one build merges.
	defaultMaxDocuments = 1000
)

// Options configures one corpus build.
type Options struct {
	OutDir       string
	BaseCorpus   string // pre-existing corpus to merge; missing is fine
	IncludeDir   string // optional directory of .txt/.md documents to merge
	MaxDocuments int    // include-dir document cap; 0 means default
}

// Builder assembles the combined corpus and dialogue-patterns files.
type Builder struct {
	opts   Options
	logger *slog.Logger
}

func NewBuilder(opts Options, logger *slog.Logger) *Builder {
	if opts.MaxDocuments <= 0 {
		opts.MaxDocuments = defaultMaxDocuments
	}
	if opts.OutDir == "" {
		opts.OutDir = "."
	}
	return &Builder{opts: opts, logger: logger}
}

// Build merges the base corpus, any include-dir documents, and the seed
// conversations into the corpus file, then writes the dialogue-patterns
// file. Per-file failures are warnings; the build keeps going.
func (b *Builder) Build() (*Manifest, error) {
	m := NewManifest()

	if err := os.MkdirAll(b.opts.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir out dir: %w", err)
	}

	var lines []string

	// Pre-existing corpus, merged verbatim.
	if b.opts.BaseCorpus != "" {
		base, err := readLines(b.opts.BaseCorpus)
		if err != nil {
			if !os.IsNotExist(err) {
				m.AddWarning(fmt.Sprintf("read base corpus %s: %v", b.opts.BaseCorpus, err))
			}
			b.logger.Info("no base corpus merged", "path", b.opts.BaseCorpus)
		} else {
			lines = append(lines, base...)
			m.BaseLines = len(base)
			b.logger.Info("base corpus merged", "path", b.opts.BaseCorpus, "lines", len(base))
		}
	}

	// Optional document directory.
	if b.opts.IncludeDir != "" {
		docLines, docs := b.mergeDocuments(m)
		lines = append(lines, docLines...)
		m.IncludedDocs = docs
	}

	// Seed conversations always go in.
	lines = append(lines, SeedConversations...)
	m.SeedLines = len(SeedConversations)

	corpusPath := filepath.Join(b.opts.OutDir, CorpusFile)
	if err := writeLines(corpusPath, lines); err != nil {
		return nil, fmt.Errorf("write corpus: %w", err)
	}
	m.AddOutput(corpusPath, len(lines))
	b.logger.Info("corpus written", "path", corpusPath, "lines", len(lines))

	dialoguePath := filepath.Join(b.opts.OutDir, DialogueFile)
	dialogueLines := renderDialogue(SeedQA)
	if err := writeLines(dialoguePath, dialogueLines); err != nil {
		return nil, fmt.Errorf("write dialogue patterns: %w", err)
	}
	m.AddOutput(dialoguePath, len(dialogueLines))
	b.logger.Info("dialogue patterns written", "path", dialoguePath, "lines", len(dialogueLines))

	m.Finish()
	if err := m.Save(filepath.Join(b.opts.OutDir, ManifestFile)); err != nil {
		return nil, fmt.Errorf("save manifest: %w", err)
	}

	return m, nil
}

// mergeDocuments reads .txt and .md files from the include directory, up to
// the document cap. Oversized and empty files are skipped with a warning.
func (b *Builder) mergeDocuments(m *Manifest) ([]string, int) {
	entries, err := os.ReadDir(b.opts.IncludeDir)
	if err != nil {
		m.AddWarning(fmt.Sprintf("read include dir %s: %v", b.opts.IncludeDir, err))
		return nil, 0
	}

	var lines []string
	docs := 0
	for _, entry := range entries {
		if docs >= b.opts.MaxDocuments {
			break
		}
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".txt") && !strings.HasSuffix(name, ".md") {
			continue
		}

		path := filepath.Join(b.opts.IncludeDir, name)
		info, err := entry.Info()
		if err != nil {
			m.AddWarning(fmt.Sprintf("stat %s: %v", path, err))
			continue
		}
		if info.Size() > maxDocBytes {
			m.AddWarning(fmt.Sprintf("skip %s: %d bytes over the %d byte limit", path, info.Size(), maxDocBytes))
			continue
		}
		if info.Size() == 0 {
			m.AddWarning(fmt.Sprintf("skip %s: empty file", path))
			continue
		}

		docLines, err := readLines(path)
		if err != nil {
			m.AddWarning(fmt.Sprintf("read %s: %v", path, err))
			continue
		}
		lines = append(lines, docLines...)
		docs++
		b.logger.Info("document merged", "path", path, "lines", len(docLines))
	}

	return lines, docs
}

// renderDialogue emits each Q&A pair in three framings, matching what the
// trainer expects in the dialogue-patterns file.
func renderDialogue(pairs []QAPair) []string {
	lines := make([]string, 0, len(pairs)*3)
	for _, p := range pairs {
		lines = append(lines,
			fmt.Sprintf("%s %s", p.Q, p.A),
			fmt.Sprintf("User asks: %s Assistant responds: %s", p.Q, p.A),
			fmt.Sprintf("Question: %s Answer: %s", p.Q, p.A),
		)
	}
	return lines
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxDocBytes)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func writeLines(path string, lines []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			f.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
