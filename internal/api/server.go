package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server exposes built corpus files over HTTP so a trainer on another host
// can pull them without shared storage.
type Server struct {
	router *chi.Mux
	port   int
	outDir string
}

func NewServer(port int, outDir string) *Server {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	s := &Server{
		router: router,
		port:   port,
		outDir: outDir,
	}

	router.Get("/health", s.health)
	router.Get("/api/v1/corpus/status", s.status)
	router.Get("/api/v1/corpus/files/{name}", s.file)

	return s
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	slog.Info("corpus server starting", "addr", addr, "dir", s.outDir)
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

type corpusFile struct {
	Name  string `json:"name"`
	Bytes int64  `json:"bytes"`
	Lines int    `json:"lines"`
}

func (s *Server) status(w http.ResponseWriter, r *http.Request) {
	files := []corpusFile{}

	entries, err := os.ReadDir(s.outDir)
	if err != nil {
		http.Error(w, "corpus directory unavailable", http.StatusInternalServerError)
		return
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, corpusFile{
			Name:  entry.Name(),
			Bytes: info.Size(),
			Lines: countLines(filepath.Join(s.outDir, entry.Name())),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]any{
		"dir":   s.outDir,
		"files": files,
	})
}

func (s *Server) file(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	// Only bare file names are valid; anything path-like is rejected.
	if name != filepath.Base(name) || name == "." || name == ".." {
		http.Error(w, "invalid file name", http.StatusBadRequest)
		return
	}

	path := filepath.Join(s.outDir, name)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	http.ServeFile(w, r, path)
}

func countLines(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0
	}
	return strings.Count(string(data), "\n")
}
