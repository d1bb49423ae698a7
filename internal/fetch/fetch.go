package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// Fetcher downloads dataset files over HTTP. One request per file, no
// retries: a failed download is reported and the caller moves on.
type Fetcher struct {
	client *http.Client
	logger *slog.Logger
}

func New(logger *slog.Logger) *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: 10 * time.Minute},
		logger: logger,
	}
}

// Download fetches url into dest. The body is written to a temporary file
// in the destination directory and renamed into place on success, so a
// partial download never replaces an existing file.
func (f *Fetcher) Download(ctx context.Context, url, dest string) error {
	f.logger.Info("downloading", "url", url, "dest", dest)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), filepath.Base(dest)+".part-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	written, err := io.Copy(tmp, resp.Body)
	if err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write body: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpName, dest); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename into place: %w", err)
	}

	f.logger.Info("download complete",
		"url", url,
		"dest", dest,
		"bytes", written,
		"content_length", resp.ContentLength,
	)
	return nil
}
