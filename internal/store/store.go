package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store reads conversation texts out of a transcript database so corpora
// can be cut from stored sessions as well as from files. It never writes.
type Store struct {
	pool *pgxpool.Pool
}

func New(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	s.pool.Close()
}

// SampleTexts returns up to limit transcript texts, newest first. The rows
// go through the same normalize/length-filter pipeline as file inputs.
func (s *Store) SampleTexts(ctx context.Context, limit int) ([]string, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT content FROM transcripts ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query transcripts: %w", err)
	}
	defer rows.Close()

	var texts []string
	for rows.Next() {
		var content string
		if err := rows.Scan(&content); err != nil {
			return nil, fmt.Errorf("scan transcript: %w", err)
		}
		texts = append(texts, content)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read transcripts: %w", err)
	}
	return texts, nil
}
