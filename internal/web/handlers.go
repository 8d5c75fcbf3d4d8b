package web

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/JonMunkholm/elc/internal/core"
	"github.com/JonMunkholm/elc/internal/core/kinds"
	"github.com/JonMunkholm/elc/internal/election"
)

// ElectionInfo is one entry of GET /api/elections.
type ElectionInfo struct {
	Year   int            `json:"year"`
	Counts map[string]int `json:"counts"`
}

type invalidYearError struct {
	value string
}

func (e *invalidYearError) Error() string {
	return fmt.Sprintf("invalid year: %q", e.value)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"status":    "ok",
		"elections": len(s.store.Years()),
	})
}

func (s *Server) handleListKinds(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, core.All())
}

func (s *Server) handleListElections(w http.ResponseWriter, r *http.Request) {
	years := s.store.Years()
	out := make([]ElectionInfo, 0, len(years))
	for _, y := range years {
		d, err := s.store.Get(y)
		if err != nil {
			continue
		}
		out = append(out, ElectionInfo{Year: y, Counts: d.Counts()})
	}
	writeJSON(w, out)
}

func (s *Server) handleGetElection(w http.ResponseWriter, r *http.Request) {
	d, ok := s.dataset(w, r)
	if !ok {
		return
	}
	writeJSON(w, d)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	d, ok := s.dataset(w, r)
	if !ok {
		return
	}
	writeJSON(w, election.Summarize(d))
}

func (s *Server) handleGetKind(w http.ResponseWriter, r *http.Request) {
	d, ok := s.dataset(w, r)
	if !ok {
		return
	}

	records, err := kinds.Select(d, chi.URLParam(r, "kind"))
	if err != nil {
		s.respondError(w, r, err, http.StatusNotFound)
		return
	}
	writeJSON(w, records)
}

// dataset resolves the {year} parameter, writing the error response when
// it cannot.
func (s *Server) dataset(w http.ResponseWriter, r *http.Request) (election.Dataset, bool) {
	raw := chi.URLParam(r, "year")
	year, err := strconv.Atoi(raw)
	if err != nil || year <= 0 {
		s.respondError(w, r, &invalidYearError{value: raw}, http.StatusBadRequest)
		return election.Dataset{}, false
	}

	d, err := s.store.Get(year)
	if err != nil {
		s.respondError(w, r, err, http.StatusNotFound)
		return election.Dataset{}, false
	}
	return d, true
}
