// Command report profiles a local data file and serves the resulting quality
// report as HTML. Useful for inspecting a dataset without running the full
// explorer API.
package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"vizlens/internal/config"
	"vizlens/internal/dataset"
	"vizlens/internal/profiling"
	"vizlens/internal/schema"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatalf("usage: %s <data-file>", filepath.Base(os.Args[0]))
	}
	path := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", path, err)
	}

	table, fileType, err := dataset.Parse(path, content)
	if err != nil {
		log.Fatalf("Failed to parse %s: %v", path, err)
	}
	log.Printf("Parsed %s (%s): %d rows, %d columns", path, fileType, table.RowCount(), len(table.Headers))

	inferred := schema.InferSchema(table, cfg.Data.SampleSize)
	report := profiling.NewProfilerWithLimit(cfg.Data.TopValues).ProfileData(table, inferred)

	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(profiling.SummaryHTML(report))
	})
	router.Get("/report.md", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.Write([]byte(profiling.SummaryMarkdown(report)))
	})
	router.Get("/report.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(report)
	})

	addr := ":" + cfg.Server.ReportPort
	log.Printf("Serving profile report on http://localhost%s", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
