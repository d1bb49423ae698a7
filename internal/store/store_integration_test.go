//go:build integration

package store

import (
	"context"
	"os"
	"testing"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	ctx := context.Background()
	s, err := New(ctx, dbURL)
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}

	t.Cleanup(func() {
		s.Close()
	})
	return s
}

func TestIntegration_SampleTexts(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	texts, err := s.SampleTexts(ctx, 10)
	if err != nil {
		t.Fatalf("SampleTexts failed: %v", err)
	}
	if len(texts) > 10 {
		t.Errorf("limit not respected: got %d rows", len(texts))
	}
	for i, text := range texts {
		if text == "" {
			t.Errorf("row %d: empty transcript content", i)
		}
	}
}
