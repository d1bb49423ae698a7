package extract

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
)

// WriteCorpus writes snippets one per line to path, replacing any existing
// file. Output is UTF-8 newline-delimited text, the format the trainer
// consumes directly.
func WriteCorpus(path string, snippets []string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	w := bufio.NewWriter(f)
	for _, s := range snippets {
		if _, err := w.WriteString(s + "\n"); err != nil {
			f.Close()
			return fmt.Errorf("write snippet: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("flush output: %w", err)
	}
	return f.Close()
}

// ExtractToFile runs Extract on the input and writes the retained snippets
// to the output path. The returned result reports the count retained.
func ExtractToFile(inPath, outPath string, maxSamples int) (Result, error) {
	res, err := Extract(inPath, maxSamples)
	if err != nil {
		return res, err
	}
	if err := WriteCorpus(outPath, res.Snippets); err != nil {
		return res, err
	}
	return res, nil
}
