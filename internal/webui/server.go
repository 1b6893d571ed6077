// Package webui serves the browser-based editor. The page collects raw XML
// (paste, file pick or drag-and-drop) and renders the converted JSON; all
// conversion happens in the /api/convert handler, which runs the same
// pipeline as the CLI on fresh data per request.
package webui

import (
	_ "embed"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mcncl/xmljson/internal/config"
	"github.com/mcncl/xmljson/internal/converter"
	"github.com/mcncl/xmljson/internal/errors"
)

//go:embed editor.html
var editorPage []byte

// Server hosts the editor page and the conversion endpoint.
type Server struct {
	cfg *config.Config
}

// NewServer creates a Server using cfg as the per-request conversion
// defaults.
func NewServer(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

// Router registers the editor routes.
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/", s.handleEditor).Methods(http.MethodGet)
	router.HandleFunc("/api/convert", s.handleConvert).Methods(http.MethodPost)
	return router
}

// ListenAndServe starts the editor on addr and blocks.
func (s *Server) ListenAndServe(addr string) error {
	log.Printf("xmljson editor listening on %s", addr)
	return http.ListenAndServe(addr, s.Router())
}

func (s *Server) handleEditor(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(editorPage); err != nil {
		log.Printf("failed to write editor page: %v", err)
	}
}

// handleConvert reads the request body as raw XML text and responds with
// the converted JSON string. Query parameters pretty and prefix override
// the server's configured defaults for the single request. Malformed XML
// yields 422 with the decoder's message verbatim as plain text.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "failed to read request body", http.StatusBadRequest)
		return
	}

	cfg := *s.cfg
	if raw := r.URL.Query().Get("pretty"); raw != "" {
		pretty, err := strconv.ParseBool(raw)
		if err != nil {
			http.Error(w, "invalid pretty parameter", http.StatusBadRequest)
			return
		}
		cfg.Pretty = pretty
	}
	if raw := r.URL.Query().Get("prefix"); raw != "" {
		prefix, err := strconv.ParseBool(raw)
		if err != nil {
			http.Error(w, "invalid prefix parameter", http.StatusBadRequest)
			return
		}
		cfg.Attributes.Prefix = prefix
	}

	output, err := converter.Convert(string(body), &cfg)
	if err != nil {
		http.Error(w, errors.ConversionMessage(err), http.StatusUnprocessableEntity)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if _, err := io.WriteString(w, output); err != nil {
		log.Printf("failed to write conversion response: %v", err)
	}
}
