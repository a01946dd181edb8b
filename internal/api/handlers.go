package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/dgallion1/mandown/internal/check"
	"github.com/dgallion1/mandown/internal/filter"
	"github.com/dgallion1/mandown/internal/pandoc"
)

// handleFilter runs the rewrite pipeline over a pandoc JSON document and
// returns the rewritten document.
func (s *Server) handleFilter(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)

	doc, err := pandoc.ReadDoc(r.Body)
	if err != nil {
		jsonError(w, "invalid pandoc document: "+err.Error(), http.StatusBadRequest)
		return
	}

	opts := filter.Options{
		ManURLHost: s.cfg.ManURLHost,
		ManSection: s.cfg.ManSection,
	}
	if err := filter.Run(doc, r.URL.Query().Get("format"), opts); err != nil {
		// The document broke a pipeline invariant; the diagnostic names it.
		jsonError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := doc.Write(w); err != nil {
		s.log.Error("write filtered document", "error", err)
	}
}

// handleCheck cross-checks in-page links in a rendered markdown body.
func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	src, err := io.ReadAll(body)
	if err != nil {
		jsonError(w, "failed to read body: "+err.Error(), http.StatusBadRequest)
		return
	}

	rep := check.Run(src)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rep)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
