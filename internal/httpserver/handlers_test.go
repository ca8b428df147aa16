package httpserver

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/hangman/apps/go-server/internal/store"
	"github.com/robalobadob/hangman/apps/go-server/internal/words"
)

// newTestServer wires a Server against an in-memory SQLite database with
// the real schema applied and the embedded dictionary loaded.
func newTestServer(t *testing.T) *Server {
	t.Helper()
	require.NoError(t, words.Init())

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// each new pool connection would get its own empty :memory: database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	schema, err := os.ReadFile(filepath.Join("..", "..", "sql", "001_init.sql"))
	require.NoError(t, err)
	_, err = db.Exec(string(schema))
	require.NoError(t, err)

	return New(store.NewMemoryStore(), db)
}

// doJSON runs one request through the full router, carrying any cookies
// captured from earlier responses.
func doJSON(t *testing.T, s *Server, method, path string, body any, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(w.Body).Decode(v))
}

func TestNewRoundDefaults(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/round/new", map[string]any{}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var res newRoundRes
	decodeJSON(t, w, &res)
	assert.NotEmpty(t, res.RoundID)
	assert.Equal(t, "-----", res.Pattern)
	assert.Equal(t, defaultMaxWrong, res.GuessesLeft)
	assert.Greater(t, res.PoolSize, 0)
}

func TestNewRoundRejectsBadConfig(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/round/new", map[string]any{"difficulty": "nightmare"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// no dictionary words of this length
	w = doJSON(t, s, http.MethodPost, "/round/new", map[string]any{"wordLength": 99}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGuessErrorPaths(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/round/new", newRoundReq{WordLength: 4}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var created newRoundRes
	decodeJSON(t, w, &created)

	w = doJSON(t, s, http.MethodPost, "/round/guess", guessReq{RoundID: created.RoundID, Letter: "ab"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code, "multi-char letter")

	w = doJSON(t, s, http.MethodPost, "/round/guess", guessReq{RoundID: "missing", Letter: "a"}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code, "unknown round")

	w = doJSON(t, s, http.MethodGet, "/round/missing", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code, "unknown round snapshot")

	w = doJSON(t, s, http.MethodPost, "/round/guess", guessReq{RoundID: created.RoundID, Letter: "e"}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, s, http.MethodPost, "/round/guess", guessReq{RoundID: created.RoundID, Letter: "e"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code, "repeated letter")
}

func TestGuessToWin(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/round/new",
		newRoundReq{WordLength: 5, MaxWrongGuesses: 26, Difficulty: "hard"}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var created newRoundRes
	decodeJSON(t, w, &created)

	// A 26-guess budget cannot run out before the alphabet does, so the
	// round must end with the pattern fully revealed.
	var res guessRes
	for c := byte('a'); c <= 'z'; c++ {
		w = doJSON(t, s, http.MethodPost, "/round/guess",
			guessReq{RoundID: created.RoundID, Letter: string(c)}, nil)
		require.Equal(t, http.StatusOK, w.Code)
		res = guessRes{}
		decodeJSON(t, w, &res)
		assert.NotEmpty(t, res.Families)
		if res.State != "playing" {
			break
		}
	}
	require.Equal(t, "won", res.State)
	require.Len(t, res.Word, 5)
	assert.Equal(t, res.Word, res.Pattern)

	// finished rounds reject further guesses
	w = doJSON(t, s, http.MethodPost, "/round/guess", guessReq{RoundID: created.RoundID, Letter: "q"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// the snapshot keeps the outcome
	w = doJSON(t, s, http.MethodGet, "/round/"+created.RoundID, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var snap roundStateRes
	decodeJSON(t, w, &snap)
	assert.Equal(t, "won", snap.State)
	assert.Equal(t, res.Word, snap.Word)
}

func TestGuessToLoss(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/round/new",
		newRoundReq{WordLength: 5, MaxWrongGuesses: 1, Difficulty: "hard"}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var created newRoundRes
	decodeJSON(t, w, &created)

	// On hard the engine always keeps the hardest family, so early guesses
	// against a broad pool miss; a 1-guess budget loses quickly.
	var res guessRes
	for c := byte('a'); c <= 'z'; c++ {
		w = doJSON(t, s, http.MethodPost, "/round/guess",
			guessReq{RoundID: created.RoundID, Letter: string(c)}, nil)
		require.Equal(t, http.StatusOK, w.Code)
		res = guessRes{}
		decodeJSON(t, w, &res)
		if res.State != "playing" {
			break
		}
	}
	require.Equal(t, "lost", res.State)
	require.Len(t, res.Word, 5)
}

func TestRevealForfeitsRound(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/round/new", newRoundReq{WordLength: 4}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var created newRoundRes
	decodeJSON(t, w, &created)

	w = doJSON(t, s, http.MethodPost, "/round/reveal", revealReq{RoundID: created.RoundID}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var rev revealRes
	decodeJSON(t, w, &rev)
	assert.Equal(t, "lost", rev.State)
	assert.Len(t, rev.Word, 4)

	// revealing a finished round returns the same word
	w = doJSON(t, s, http.MethodPost, "/round/reveal", revealReq{RoundID: created.RoundID}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var again revealRes
	decodeJSON(t, w, &again)
	assert.Equal(t, rev.Word, again.Word)
	assert.Equal(t, "lost", again.State)

	w = doJSON(t, s, http.MethodPost, "/round/reveal", revealReq{RoundID: "missing"}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
