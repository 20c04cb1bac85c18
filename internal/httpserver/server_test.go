package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otplabs/onetough/internal/pieceset"
	"github.com/otplabs/onetough/internal/store"
)

// newTestServer builds a server on the in-memory run store without a
// database; the routes under test never touch SQL.
func newTestServer(t *testing.T) *Server {
	t.Helper()
	require.NoError(t, pieceset.Init())
	return New(store.NewMemoryStore(), nil)
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}

func TestListPieceSets(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodGet, "/piecesets", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var out []pieceSetRes
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out, 2)
	assert.Equal(t, "one-tough-puzzle", out[0].Name)
	assert.Len(t, out[0].Pieces, 9)
}

func TestSolveInlinePieces(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodPost, "/solve", solveReq{
		Pieces:  []string{"DCCD", "HSSC"},
		Columns: 2,
		Rows:    1,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var out solveRes
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.NotEmpty(t, out.RunID)
	assert.Equal(t, []string{"Red-♦♣♧♢", "Red-♥♠♤♧"}, out.Pieces)
	assert.Len(t, out.Solutions, 8)
	assert.Equal(t, 16, out.Counts[1])
	assert.Equal(t, 8, out.Counts[2])

	// The run is retrievable afterwards.
	rec = doJSON(t, s, http.MethodGet, "/solve/"+out.RunID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var run store.Run
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &run))
	assert.Equal(t, out.Solutions, run.Solutions)
}

func TestSolveCatalogSet(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodPost, "/solve", solveReq{
		Set:     "two-piece-demo",
		Columns: 1,
		Rows:    2,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var out solveRes
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Len(t, out.Solutions, 8)
}

func TestSolveBadRequests(t *testing.T) {
	s := newTestServer(t)

	cases := []struct {
		name string
		req  solveReq
		code int
	}{
		{"no pieces", solveReq{Columns: 1, Rows: 1}, http.StatusBadRequest},
		{"set and pieces", solveReq{Set: "two-piece-demo", Pieces: []string{"DCCD"}, Columns: 1, Rows: 1}, http.StatusBadRequest},
		{"unknown set", solveReq{Set: "nope", Columns: 1, Rows: 1}, http.StatusNotFound},
		{"count mismatch", solveReq{Pieces: []string{"DCCD"}, Columns: 2, Rows: 1}, http.StatusBadRequest},
		{"bad code", solveReq{Pieces: []string{"XXXX"}, Columns: 1, Rows: 1}, http.StatusBadRequest},
		{"zero board", solveReq{Pieces: []string{"DCCD"}, Columns: 0, Rows: 1}, http.StatusBadRequest},
		{"board too big", solveReq{Set: "one-tough-puzzle", Columns: 4, Rows: 4}, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doJSON(t, s, http.MethodPost, "/solve", tc.req)
			assert.Equal(t, tc.code, rec.Code, rec.Body.String())
		})
	}
}

func TestGetRunNotFound(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodGet, "/solve/absent", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSetsRequireAuth(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodGet, "/sets/", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
