// internal/httpserver/routes_solve.go
//
// HTTP routes for the solver and the piece-set catalog.
//   - GET  /piecesets      → list the built-in catalog
//   - POST /solve          → solve a board from a catalog set or inline codes
//   - GET  /solve/{id}     → fetch a stored solver run
//
// Saved piece sets (require auth, registered by mountSets):
//   - GET    /sets             → list the caller's saved sets
//   - POST   /sets             → save a new set (codes validated up front)
//   - DELETE /sets/{id}        → delete a saved set
//   - POST   /sets/{id}/solve  → solve a saved set
//
// Solves run synchronously inside the request; the board area is capped so
// a request cannot pin a worker on an exponential search.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/otplabs/onetough/internal/pieceset"
	"github.com/otplabs/onetough/internal/puzzle"
	"github.com/otplabs/onetough/internal/sets"
	"github.com/otplabs/onetough/internal/store"
)

// maxSolveCells bounds the board area accepted over HTTP.
const maxSolveCells = 12

// mountSolve registers the public solver + catalog routes.
func (s *Server) mountSolve() {
	s.r.Get("/piecesets", s.handleListPieceSets)
	s.r.Post("/solve", s.handleSolve)
	s.r.Get("/solve/{id}", s.handleGetRun)
}

// mountSets registers the gated saved-set routes.
func (s *Server) mountSets() {
	s.r.Route("/sets", func(r chi.Router) {
		r.Use(s.requireAuth())
		r.Get("/", s.handleListSets)
		r.Post("/", s.handleCreateSet)
		r.Delete("/{id}", s.handleDeleteSet)
		r.Post("/{id}/solve", s.handleSolveSavedSet)
	})
}

// -----------------------------------------------------------------------------
// /piecesets

type pieceSetRes struct {
	Name   string   `json:"name"`
	Pieces []string `json:"pieces"`
}

func (s *Server) handleListPieceSets(w http.ResponseWriter, r *http.Request) {
	out := []pieceSetRes{}
	for _, set := range pieceset.Sets() {
		out = append(out, pieceSetRes{Name: set.Name, Pieces: set.Pieces})
	}
	_ = json.NewEncoder(w).Encode(out)
}

// -----------------------------------------------------------------------------
// /solve

// solveReq names a catalog set or carries inline piece codes; exactly one of
// Set and Pieces must be given. Columns*Rows must match the piece count.
type solveReq struct {
	Set     string   `json:"set"`
	Pieces  []string `json:"pieces"`
	Columns int      `json:"columns"`
	Rows    int      `json:"rows"`
}

type solveRes struct {
	RunID     string      `json:"runId"`
	Columns   int         `json:"columns"`
	Rows      int         `json:"rows"`
	Pieces    []string    `json:"pieces"`
	Solutions []string    `json:"solutions"`
	Counts    map[int]int `json:"counts"`
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}

	codes := req.Pieces
	setName := ""
	switch {
	case req.Set != "" && len(req.Pieces) > 0:
		http.Error(w, `{"error":"set and pieces are mutually exclusive"}`, http.StatusBadRequest)
		return
	case req.Set != "":
		set, ok := pieceset.Get(req.Set)
		if !ok {
			http.Error(w, `{"error":"unknown_set"}`, http.StatusNotFound)
			return
		}
		codes = set.Pieces
		setName = set.Name
	case len(req.Pieces) == 0:
		http.Error(w, `{"error":"no pieces given"}`, http.StatusBadRequest)
		return
	}

	s.runSolve(w, r, setName, codes, req.Columns, req.Rows)
}

// runSolve parses codes, runs the search, stores the run, and writes the
// response. Shared by /solve and /sets/{id}/solve.
func (s *Server) runSolve(w http.ResponseWriter, r *http.Request, setName string, codes []string, columns, rows int) {
	if columns <= 0 || rows <= 0 || columns*rows > maxSolveCells {
		http.Error(w, `{"error":"board must have between 1 and 12 cells"}`, http.StatusBadRequest)
		return
	}
	if len(codes) != columns*rows {
		http.Error(w, `{"error":"piece count must equal columns*rows"}`, http.StatusBadRequest)
		return
	}

	pieces := make([]*puzzle.Piece, 0, len(codes))
	faces := make([]string, 0, len(codes))
	for _, code := range codes {
		p, err := pieceset.ParseCode(code)
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
			return
		}
		pieces = append(pieces, p)
		faces = append(faces, p.String())
	}

	started := time.Now()
	layers, err := puzzle.Solve(columns, rows, pieces)
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	counts := make(map[int]int, len(layers))
	for size, boards := range layers {
		counts[size] = len(boards)
	}
	solutions := []string{}
	for _, b := range layers[columns*rows] {
		solutions = append(solutions, b.String())
	}

	run := &store.Run{
		ID:        genID(),
		SetName:   setName,
		Columns:   columns,
		Rows:      rows,
		Pieces:    faces,
		Solutions: solutions,
		Counts:    counts,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.Save(r.Context(), run); err != nil {
		log.Error().Err(err).Msg("save run")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}

	log.Info().
		Str("runId", run.ID).
		Str("set", setName).
		Int("columns", columns).
		Int("rows", rows).
		Int("solutions", len(solutions)).
		Dur("elapsed", time.Since(started)).
		Msg("solve")

	_ = json.NewEncoder(w).Encode(solveRes{
		RunID:     run.ID,
		Columns:   columns,
		Rows:      rows,
		Pieces:    faces,
		Solutions: solutions,
		Counts:    counts,
	})
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	run, err := s.store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, `{"error":"server_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(run)
}

// -----------------------------------------------------------------------------
// /sets (saved piece sets, gated)

type createSetReq struct {
	Name   string   `json:"name"`
	Pieces []string `json:"pieces"`
}

func (s *Server) handleListSets(w http.ResponseWriter, r *http.Request) {
	me, _ := r.Context().Value(ctxUserKey{}).(*authUser)
	recs, err := s.sets.ListByUser(r.Context(), me.ID)
	if err != nil {
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	if recs == nil {
		recs = []sets.Record{}
	}
	_ = json.NewEncoder(w).Encode(recs)
}

func (s *Server) handleCreateSet(w http.ResponseWriter, r *http.Request) {
	me, _ := r.Context().Value(ctxUserKey{}).(*authUser)
	var body createSetReq
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	if body.Name == "" || len(body.Pieces) == 0 || len(body.Pieces) > maxSolveCells {
		http.Error(w, `{"error":"need a name and 1-12 pieces"}`, http.StatusBadRequest)
		return
	}
	// Reject bad codes at save time, not solve time.
	for _, code := range body.Pieces {
		if _, err := pieceset.ParseCode(code); err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
			return
		}
	}
	rec := sets.Record{ID: genID(), UserID: me.ID, Name: body.Name, Pieces: body.Pieces}
	if err := s.sets.Insert(r.Context(), rec); err != nil {
		log.Error().Err(err).Msg("insert piece set")
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(rec)
}

func (s *Server) handleDeleteSet(w http.ResponseWriter, r *http.Request) {
	me, _ := r.Context().Value(ctxUserKey{}).(*authUser)
	err := s.sets.Delete(r.Context(), me.ID, chi.URLParam(r, "id"))
	if errors.Is(err, sets.ErrNotFound) {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// solveSavedSetReq carries the board shape; the pieces come from the set.
type solveSavedSetReq struct {
	Columns int `json:"columns"`
	Rows    int `json:"rows"`
}

func (s *Server) handleSolveSavedSet(w http.ResponseWriter, r *http.Request) {
	me, _ := r.Context().Value(ctxUserKey{}).(*authUser)
	rec, err := s.sets.Get(r.Context(), me.ID, chi.URLParam(r, "id"))
	if errors.Is(err, sets.ErrNotFound) {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	var body solveSavedSetReq
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	s.runSolve(w, r, rec.Name, rec.Pieces, body.Columns, body.Rows)
}
