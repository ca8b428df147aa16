// internal/httpserver/server.go
//
// HTTP server wiring for the Evil Hangman backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Round endpoints (optional auth): POST /round/new, POST /round/guess,
//     POST /round/reveal, GET /round/{id}.
//   - Daily Challenge endpoints (optional auth): mounted under /daily.
//   - Auth + profile/stat endpoints (require auth): /auth/*, /stats/me, /rounds/mine.
//   - JWT + cookie handling, anonymous session cookie, user CRUD helpers.
//   - Database persistence for rounds and user stats.
//
// Notes:
//   - The engine itself is single-threaded; each session carries a mutex
//     and handlers hold it across every engine call.
//   - CORS is origin-aware and credentials-enabled (so cookies work).
//   - Optional auth decorates requests with user context when a valid token
//     is present; routes can still run for guests.

package httpserver

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/robalobadob/hangman/apps/go-server/internal/hangman"
	"github.com/robalobadob/hangman/apps/go-server/internal/store"
	"github.com/robalobadob/hangman/apps/go-server/internal/words"
)

// Round setup defaults when the request leaves fields unset.
const (
	defaultWordLength = 5
	defaultMaxWrong   = 6
)

// Server bundles router, in-memory session store, and DB handle.
type Server struct {
	r     *chi.Mux
	store store.Store
	db    *sql.DB
	debug bool
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, db *sql.DB) *Server {
	s := &Server{r: chi.NewRouter(), store: st, db: db,
		debug: os.Getenv("ENGINE_DEBUG") == "1"}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(corsFromEnv)                     // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"hangman-go","endpoints":["/health","POST /round/new","POST /round/guess","POST /round/reveal","/auth/*"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	// Round endpoints — OPTIONAL AUTH (guests can play)
	s.r.With(s.withOptionalAuth()).Post("/round/new", s.handleNewRound)
	s.r.With(s.withOptionalAuth()).Post("/round/guess", s.handleGuess)
	s.r.With(s.withOptionalAuth()).Post("/round/reveal", s.handleReveal)
	s.r.With(s.withOptionalAuth()).Get("/round/{id}", s.handleGetRound)

	// Daily Challenge — OPTIONAL AUTH (guests can play; results persisted on finish)
	s.mountDaily(s.r.With(s.withOptionalAuth()))

	// Auth + profile/stats (require auth)
	s.mountAuthRoutes()

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	// Debug: dictionary stats
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		wc, lc := words.Stats()
		_ = json.NewEncoder(w).Encode(map[string]int{"words": wc, "lengths": lc})
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFromEnv enables credentialed CORS for a single origin.
// Uses CLIENT_ORIGIN env var; defaults to http://localhost:5173.
func corsFromEnv(next http.Handler) http.Handler {
	origin := os.Getenv("CLIENT_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ ROUNDS -------------------------------------

// newRoundReq/Res payloads for POST /round/new.
type newRoundReq struct {
	WordLength      int    `json:"wordLength"`      // default 5
	MaxWrongGuesses int    `json:"maxWrongGuesses"` // default 6
	Difficulty      string `json:"difficulty"`      // "easy" | "medium" | "hard" (default medium)
}
type newRoundRes struct {
	RoundID     string `json:"roundId"`
	Pattern     string `json:"pattern"`
	GuessesLeft int    `json:"guessesLeft"`
	PoolSize    int    `json:"poolSize"`
}

// handleNewRound creates a new in-memory round and persists a DB "owner"
// row (either user_id or anonymous_id) for history/stats.
func (s *Server) handleNewRound(w http.ResponseWriter, r *http.Request) {
	var req newRoundReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	if req.WordLength == 0 {
		req.WordLength = defaultWordLength
	}
	if req.MaxWrongGuesses == 0 {
		req.MaxWrongGuesses = defaultMaxWrong
	}
	diff, err := hangman.ParseDifficulty(req.Difficulty)
	if err != nil {
		http.Error(w, `{"error":"unknown_difficulty"}`, http.StatusBadRequest)
		return
	}

	sess, err := s.newSession(req.WordLength, req.MaxWrongGuesses, diff)
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save round")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}

	// Persist owner row; the secret word does not exist yet, so nothing
	// about the answer is stored.
	now := time.Now().UTC().Format(time.RFC3339)
	if me, _ := r.Context().Value(ctxUserKey{}).(*authUser); me != nil {
		_, err := s.db.Exec(`INSERT INTO rounds (id, user_id, word_length, difficulty, started_at, status, guesses)
		                     VALUES (?,?,?,?,?,?,0)`, sess.ID, me.ID, req.WordLength, string(diff), now, "playing")
		if err != nil {
			log.Warn().Err(err).Str("roundId", sess.ID).Msg("insert user round row")
		}
	} else {
		anon := s.ensureAnonID(w, r)
		_, err := s.db.Exec(`INSERT INTO rounds (id, anonymous_id, word_length, difficulty, started_at, status, guesses)
		                     VALUES (?,?,?,?,?,?,0)`, sess.ID, anon, req.WordLength, string(diff), now, "playing")
		if err != nil {
			log.Warn().Err(err).Str("roundId", sess.ID).Msg("insert anon round row")
		}
	}

	_ = json.NewEncoder(w).Encode(newRoundRes{
		RoundID:     sess.ID,
		Pattern:     sess.Manager.Pattern(),
		GuessesLeft: sess.Manager.GuessesLeft(),
		PoolSize:    sess.Manager.PoolSize(),
	})
}

// newSession builds a fresh engine over the loaded dictionary and starts
// a round on it. One engine per round keeps engine access simple: the
// session mutex is the only lock.
func (s *Server) newSession(wordLength, maxWrong int, diff hangman.Difficulty) (*store.Session, error) {
	var opts []hangman.Option
	if s.debug {
		opts = append(opts, hangman.WithDebug(true))
	}
	mgr, err := hangman.New(words.Dictionary(), opts...)
	if err != nil {
		return nil, err
	}
	if mgr.WordCount(wordLength) == 0 {
		return nil, errors.New("no_words_of_that_length")
	}
	if err := mgr.StartRound(wordLength, maxWrong, diff); err != nil {
		return nil, err
	}
	return &store.Session{
		ID:         genID(),
		Manager:    mgr,
		WordLength: wordLength,
		Difficulty: diff,
		CreatedAt:  time.Now().UTC(),
	}, nil
}

// guessReq/Res payloads for POST /round/guess.
type guessReq struct {
	RoundID string `json:"roundId"`
	Letter  string `json:"letter"`
}
type guessRes struct {
	Pattern     string         `json:"pattern"`
	GuessesLeft int            `json:"guessesLeft"`
	Guesses     string         `json:"guesses"`        // e.g. "[a, c, e]"
	Families    map[string]int `json:"families"`       // pattern → family size
	State       string         `json:"state"`          // "playing" | "won" | "lost"
	Word        string         `json:"word,omitempty"` // secret, once finished
}

// handleGuess applies a guess letter to an in-memory round, persists
// progress, and (if finished) resolves the secret word and updates user
// stats in a best-effort transaction.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	c, ok := parseLetter(req.Letter)
	if !ok {
		http.Error(w, `{"error":"letter must be a single a-z character"}`, http.StatusBadRequest)
		return
	}
	sess, err := s.store.Get(r.Context(), req.RoundID)
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}

	sess.Mu.Lock()
	defer sess.Mu.Unlock()

	if sess.Finished {
		http.Error(w, `{"error":"round finished"}`, http.StatusBadRequest)
		return
	}
	families, err := sess.Manager.Guess(c)
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	state := roundState(sess.Manager)
	res := guessRes{
		Pattern:     sess.Manager.Pattern(),
		GuessesLeft: sess.Manager.GuessesLeft(),
		Guesses:     formatGuesses(sess.Manager.Guesses()),
		Families:    families,
		State:       state,
	}
	if state != "playing" {
		// Round over: fix the secret now, win or lose.
		word, err := sess.Manager.SecretWord()
		if err != nil {
			log.Error().Err(err).Str("roundId", sess.ID).Msg("resolve secret")
			http.Error(w, `{"error":"resolve_failed"}`, http.StatusInternalServerError)
			return
		}
		sess.Finished = true
		sess.Won = state == "won"
		sess.Word = word
		res.Word = word
	}

	s.persistGuess(w, r, sess, state)
	_ = json.NewEncoder(w).Encode(res)
}

// persistGuess records counters/history for a guess (best effort,
// non-fatal if it fails) and bumps user stats on terminal states.
func (s *Server) persistGuess(w http.ResponseWriter, r *http.Request, sess *store.Session, state string) {
	me, _ := r.Context().Value(ctxUserKey{}).(*authUser)
	ownerClause := `anonymous_id=?`
	ownerArg := any(s.ensureAnonID(w, r))
	if me != nil {
		ownerClause = `user_id=?`
		ownerArg = any(me.ID)
	}

	tx, err := s.db.Begin()
	if err != nil {
		log.Warn().Err(err).Msg("begin round tx")
		return
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`UPDATE rounds SET guesses = guesses + 1 WHERE id=? AND `+ownerClause, sess.ID, ownerArg); err != nil {
		log.Warn().Err(err).Msg("update guesses")
	}

	if state == "won" || state == "lost" {
		if _, err := tx.Exec(`UPDATE rounds SET status=?, word=?, finished_at=? WHERE id=? AND `+ownerClause,
			state, sess.Word, time.Now().UTC().Format(time.RFC3339), sess.ID, ownerArg); err != nil {
			log.Warn().Err(err).Msg("finish round")
		}
		if me != nil {
			if err := s.bumpStats(tx, me.ID, state == "won"); err != nil {
				log.Warn().Err(err).Str("user", me.ID).Msg("bump stats")
			}
		}
	}
	_ = tx.Commit()
}

// revealReq/Res payloads for POST /round/reveal.
type revealReq struct {
	RoundID string `json:"roundId"`
}
type revealRes struct {
	Word  string `json:"word"`
	State string `json:"state"`
}

// handleReveal forfeits an in-progress round and resolves the secret
// word. A finished round returns the already-revealed word.
func (s *Server) handleReveal(w http.ResponseWriter, r *http.Request) {
	var req revealReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	sess, err := s.store.Get(r.Context(), req.RoundID)
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}

	sess.Mu.Lock()
	defer sess.Mu.Unlock()

	if sess.Finished {
		state := "lost"
		if sess.Won {
			state = "won"
		}
		_ = json.NewEncoder(w).Encode(revealRes{Word: sess.Word, State: state})
		return
	}

	word, err := sess.Manager.SecretWord()
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusConflict)
		return
	}
	sess.Finished = true
	sess.Won = false
	sess.Word = word

	s.persistReveal(w, r, sess)
	_ = json.NewEncoder(w).Encode(revealRes{Word: word, State: "lost"})
}

// persistReveal marks a forfeited round as lost (best effort).
func (s *Server) persistReveal(w http.ResponseWriter, r *http.Request, sess *store.Session) {
	me, _ := r.Context().Value(ctxUserKey{}).(*authUser)
	ownerClause := `anonymous_id=?`
	ownerArg := any(s.ensureAnonID(w, r))
	if me != nil {
		ownerClause = `user_id=?`
		ownerArg = any(me.ID)
	}
	if _, err := s.db.Exec(`UPDATE rounds SET status='lost', word=?, finished_at=? WHERE id=? AND `+ownerClause,
		sess.Word, time.Now().UTC().Format(time.RFC3339), sess.ID, ownerArg); err != nil {
		log.Warn().Err(err).Msg("persist reveal")
	}
}

// roundStateRes is returned by GET /round/{id}.
type roundStateRes struct {
	RoundID     string `json:"roundId"`
	Pattern     string `json:"pattern"`
	GuessesLeft int    `json:"guessesLeft"`
	Guesses     string `json:"guesses"`
	PoolSize    int    `json:"poolSize"`
	Difficulty  string `json:"difficulty"`
	State       string `json:"state"`
	Word        string `json:"word,omitempty"`
}

// handleGetRound returns a read-only snapshot of a round.
func (s *Server) handleGetRound(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sess, err := s.store.Get(r.Context(), id)
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}

	sess.Mu.Lock()
	defer sess.Mu.Unlock()

	state := roundState(sess.Manager)
	if sess.Finished && !sess.Won {
		state = "lost"
	}
	res := roundStateRes{
		RoundID:     sess.ID,
		Pattern:     sess.Manager.Pattern(),
		GuessesLeft: sess.Manager.GuessesLeft(),
		Guesses:     formatGuesses(sess.Manager.Guesses()),
		PoolSize:    sess.Manager.PoolSize(),
		Difficulty:  string(sess.Difficulty),
		State:       state,
	}
	if sess.Finished {
		res.Word = sess.Word
	}
	_ = json.NewEncoder(w).Encode(res)
}

// roundState reports the coarse state of a round from the engine's
// observable queries: won when no blanks remain, lost when the budget is
// spent, playing otherwise.
func roundState(m *hangman.Manager) string {
	if !strings.ContainsRune(m.Pattern(), hangman.Blank) {
		return "won"
	}
	if m.GuessesLeft() <= 0 {
		return "lost"
	}
	return "playing"
}

// parseLetter accepts a single ASCII letter, case-insensitive.
func parseLetter(s string) (byte, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 1 || s[0] < 'a' || s[0] > 'z' {
		return 0, false
	}
	return s[0], true
}

// formatGuesses renders guessed letters as "[a, c, e]" (ascending; the
// engine already sorts them). An empty history renders as "[]".
func formatGuesses(letters []byte) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, c := range letters {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte(c)
	}
	b.WriteByte(']')
	return b.String()
}

// ------------------------------- AUTH --------------------------------------

// Request payloads for signup/login.
type signupReq struct{ Username, Password string }
type loginReq struct{ Username, Password string }

// authUser is placed into request context by auth middleware.
type authUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// mountAuthRoutes registers authentication + gated routes (/auth/*, /stats/me, /rounds/mine).
func (s *Server) mountAuthRoutes() {
	s.r.Post("/auth/signup", s.handleSignup)
	s.r.Post("/auth/login", s.handleLogin)
	s.r.Post("/auth/logout", s.handleLogout)

	// Current user (gated)
	s.r.With(s.requireAuth()).Get("/auth/me", func(w http.ResponseWriter, r *http.Request) {
		me, _ := r.Context().Value(ctxUserKey{}).(*authUser)
		if me == nil {
			http.Error(w, `{"error":"Unauthorized"}`, http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(me)
	})

	// Stats (gated)
	s.r.With(s.requireAuth()).Get("/stats/me", func(w http.ResponseWriter, r *http.Request) {
		me, _ := r.Context().Value(ctxUserKey{}).(*authUser)
		if me == nil {
			http.Error(w, `{"error":"Unauthorized"}`, http.StatusUnauthorized)
			return
		}
		u, err := s.findUserByID(me.ID)
		if err != nil {
			http.Error(w, `{"error":"not_found"}`, http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":           u.ID,
			"roundsPlayed": u.RoundsPlayed,
			"wins":         u.Wins,
			"streak":       u.Streak,
		})
	})

	// Recent rounds (gated)
	s.r.With(s.requireAuth()).Get("/rounds/mine", func(w http.ResponseWriter, r *http.Request) {
		me, _ := r.Context().Value(ctxUserKey{}).(*authUser)
		if me == nil {
			http.Error(w, `{"error":"Unauthorized"}`, http.StatusUnauthorized)
			return
		}
		rows, err := s.db.Query(`SELECT id, status, word_length, difficulty, guesses, COALESCE(word,''), started_at, COALESCE(finished_at,'')
		                         FROM rounds WHERE user_id=? ORDER BY started_at DESC LIMIT 50`, me.ID)
		if err != nil {
			http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
			return
		}
		defer rows.Close()

		type roundRow struct {
			ID         string `json:"id"`
			Status     string `json:"status"`
			WordLength int    `json:"wordLength"`
			Difficulty string `json:"difficulty"`
			Guesses    int    `json:"guesses"`
			Word       string `json:"word,omitempty"`
			StartedAt  string `json:"startedAt"`
			FinishedAt string `json:"finishedAt,omitempty"`
		}
		out := []roundRow{}
		for rows.Next() {
			var rr roundRow
			if err := rows.Scan(&rr.ID, &rr.Status, &rr.WordLength, &rr.Difficulty, &rr.Guesses, &rr.Word, &rr.StartedAt, &rr.FinishedAt); err == nil {
				out = append(out, rr)
			}
		}
		_ = json.NewEncoder(w).Encode(out)
	})
}

// handleSignup creates a new user, signs a JWT, sets auth cookie, and claims anon history.
func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var body signupReq
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, `{"error":"invalid_json"}`, http.StatusBadRequest)
		return
	}
	u, err := s.createUser(body.Username, body.Password)
	if err != nil {
		if err.Error() == "username taken" {
			http.Error(w, `{"error":"Username taken"}`, http.StatusConflict)
			return
		}
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}
	tok, exp, err := s.signJWT(u.ID, u.Username)
	if err != nil {
		http.Error(w, `{"error":"sign_failed"}`, http.StatusInternalServerError)
		return
	}
	s.setAuthCookie(w, tok, exp)
	// Attach any anonymous rounds to the new account
	s.claimAnonRounds(s.ensureAnonID(w, r), u.ID)
	_ = json.NewEncoder(w).Encode(map[string]any{"id": u.ID, "username": u.Username, "createdAt": u.CreatedAt})
}

// handleLogin authenticates user, sets cookie, and claims anon history.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body loginReq
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, `{"error":"invalid_json"}`, http.StatusBadRequest)
		return
	}
	u, err := s.findUserByUsername(strings.TrimSpace(body.Username))
	if err != nil || !checkPassword(u.PasswordHash, body.Password) {
		http.Error(w, `{"error":"Invalid username or password"}`, http.StatusUnauthorized)
		return
	}
	tok, exp, err := s.signJWT(u.ID, u.Username)
	if err != nil {
		http.Error(w, `{"error":"sign_failed"}`, http.StatusInternalServerError)
		return
	}
	s.setAuthCookie(w, tok, exp)
	s.claimAnonRounds(s.ensureAnonID(w, r), u.ID)
	_ = json.NewEncoder(w).Encode(map[string]any{"id": u.ID, "username": u.Username})
}

// handleLogout clears the auth cookie.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.clearAuthCookie(w)
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// --------------------------- optional auth ---------------------------------

// withOptionalAuth decorates requests with user context if a valid JWT is present.
// It never 401s; used for routes where guests are allowed.
func (s *Server) withOptionalAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if tok := bearerOrCookie(r); tok != "" {
				claims := jwt.MapClaims{}
				if t, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
					return []byte(getEnv("JWT_SECRET", "dev_secret_change_me")), nil
				}); err == nil && t.Valid {
					if id, _ := claims["id"].(string); id != "" {
						if u, err := s.findUserByID(id); err == nil {
							ctx := context.WithValue(r.Context(), ctxUserKey{}, &authUser{ID: u.ID, Username: u.Username})
							r = r.WithContext(ctx)
						}
					}
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

const anonCookieName = "hangman_anon"

// ensureAnonID returns an existing anon cookie or sets a new one.
// Used to associate guest rounds with a stable identifier.
func (s *Server) ensureAnonID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(anonCookieName); err == nil && c.Value != "" {
		return c.Value
	}
	id := genID()
	http.SetCookie(w, &http.Cookie{
		Name:     anonCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   os.Getenv("NODE_ENV") == "production",
		SameSite: func() http.SameSite {
			if os.Getenv("NODE_ENV") == "production" {
				return http.SameSiteNoneMode
			}
			return http.SameSiteLaxMode
		}(),
		Expires: time.Now().Add(180 * 24 * time.Hour),
	})
	return id
}

// claimAnonRounds transfers any anonymous rounds to a user account after auth.
func (s *Server) claimAnonRounds(anonID, userID string) {
	if anonID == "" || userID == "" {
		return
	}
	if _, err := s.db.Exec(`UPDATE rounds SET user_id=?, anonymous_id=NULL WHERE anonymous_id=?`, userID, anonID); err != nil {
		log.Warn().Err(err).Msg("claim anon rounds")
	}
}

// ------------------------ auth helpers & users -----------------------------

// userRow matches the users table shape.
type userRow struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	RoundsPlayed int
	Wins         int
	Streak       int
}

// createUser validates input, checks uniqueness, hashes password, and inserts a new user.
func (s *Server) createUser(username, pw string) (*userRow, error) {
	username = normalizeUsername(username)
	if err := validateSignup(username, pw); err != nil {
		return nil, err
	}
	var exists int
	_ = s.db.QueryRow(`SELECT 1 FROM users WHERE lower(username)=lower(?)`, username).Scan(&exists)
	if exists == 1 {
		return nil, errors.New("username taken")
	}
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC().Format(time.RFC3339)
	id := genID()
	if _, err := s.db.Exec(`INSERT INTO users (id, username, password_hash, created_at) VALUES (?,?,?,?)`,
		id, username, string(h), now); err != nil {
		return nil, err
	}
	return &userRow{ID: id, Username: username, PasswordHash: string(h), CreatedAt: mustParse(now)}, nil
}

// findUserByUsername/ID load a user row or return an error if missing.
func (s *Server) findUserByUsername(username string) (*userRow, error) {
	row := s.db.QueryRow(`SELECT id, username, password_hash, created_at, rounds_played, wins, streak
	                      FROM users WHERE lower(username)=lower(?)`, username)
	return scanUser(row)
}
func (s *Server) findUserByID(id string) (*userRow, error) {
	row := s.db.QueryRow(`SELECT id, username, password_hash, created_at, rounds_played, wins, streak
	                      FROM users WHERE id=?`, id)
	return scanUser(row)
}

// scanUser converts a *sql.Row into a userRow.
func scanUser(row *sql.Row) (*userRow, error) {
	var u userRow
	var created string
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &created, &u.RoundsPlayed, &u.Wins, &u.Streak); err != nil {
		return nil, err
	}
	u.CreatedAt = mustParse(created)
	return &u, nil
}

// mustParse parses RFC3339 timestamps; on error returns zero time.
func mustParse(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}

// checkPassword is a bcrypt verifier.
func checkPassword(hash, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}

// normalizeUsername trims whitespace; adjust here if you want stricter rules.
func normalizeUsername(u string) string {
	return strings.TrimSpace(u)
}

// validateSignup enforces basic username/password rules.
func validateSignup(u, p string) error {
	if len(u) < 3 || len(u) > 24 {
		return errors.New("username must be 3–24 chars")
	}
	for _, r := range u {
		if !(r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return errors.New("username: letters, numbers, underscore only")
		}
	}
	if len(p) < 8 || len(p) > 100 {
		return errors.New("password must be 8–100 chars")
	}
	return nil
}

// genID creates a 22-char URL-safe, crypto-random identifier (no padding).
func genID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	s := base64.URLEncoding.WithPadding(base64.NoPadding).EncodeToString(b[:])
	if len(s) > 22 {
		return s[:22]
	}
	return s
}

// bumpStats increments rounds played; updates wins and streak based on result (within tx).
func (s *Server) bumpStats(tx *sql.Tx, userID string, won bool) error {
	var rp, wins, streak int
	row := tx.QueryRow(`SELECT rounds_played, wins, streak FROM users WHERE id=?`, userID)
	if err := row.Scan(&rp, &wins, &streak); err != nil {
		return err
	}
	rp++
	if won {
		wins++
		streak++
	} else {
		streak = 0
	}
	_, err := tx.Exec(`UPDATE users SET rounds_played=?, wins=?, streak=? WHERE id=?`, rp, wins, streak, userID)
	return err
}

// ------------------------------ JWT & cookies ------------------------------

// signJWT creates an HS256 JWT with id/username and a configurable expiry (JWT_EXPIRES_DAYS; default 14).
func (s *Server) signJWT(id, username string) (string, time.Time, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev_secret_change_me"
	}
	days := 14
	if v := os.Getenv("JWT_EXPIRES_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			days = n
		}
	}
	exp := time.Now().Add(time.Duration(days) * 24 * time.Hour)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":       id,
		"username": username,
		"exp":      exp.Unix(),
		"iat":      time.Now().Unix(),
	})
	ss, err := t.SignedString([]byte(secret))
	return ss, exp, err
}

// setAuthCookie writes the auth token cookie with appropriate security attributes.
func (s *Server) setAuthCookie(w http.ResponseWriter, token string, exp time.Time) {
	name := getEnv("COOKIE_NAME", "hangman_token")
	secure := os.Getenv("NODE_ENV") == "production"
	sameSite := http.SameSiteLaxMode
	if secure {
		sameSite = http.SameSiteNoneMode // required for third-party contexts when Secure
	}
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: sameSite,
		Expires:  exp,
	})
}

// clearAuthCookie deletes the auth token cookie.
func (s *Server) clearAuthCookie(w http.ResponseWriter) {
	name := getEnv("COOKIE_NAME", "hangman_token")
	secure := os.Getenv("NODE_ENV") == "production"
	sameSite := http.SameSiteLaxMode
	if secure {
		sameSite = http.SameSiteNoneMode
	}
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: sameSite,
		MaxAge:   -1,
	})
}

// bearerOrCookie extracts a bearer token from Authorization header or auth cookie.
func bearerOrCookie(r *http.Request) string {
	// Authorization: Bearer <token>
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(getEnv("COOKIE_NAME", "hangman_token")); err == nil {
		return c.Value
	}
	return ""
}

// ---------------------------- auth middleware ------------------------------

// ctxUserKey is the context key type for storing authUser.
type ctxUserKey struct{}

// requireAuth enforces a valid JWT and injects authUser into request context.
func (s *Server) requireAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := bearerOrCookie(r)
			if tokenStr == "" {
				http.Error(w, `{"error":"Unauthorized"}`, http.StatusUnauthorized)
				return
			}
			claims := jwt.MapClaims{}
			token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
				return []byte(getEnv("JWT_SECRET", "dev_secret_change_me")), nil
			})
			if err != nil || !token.Valid {
				http.Error(w, `{"error":"Invalid token"}`, http.StatusUnauthorized)
				return
			}
			id, _ := claims["id"].(string)
			username, _ := claims["username"].(string)
			if id == "" || username == "" {
				http.Error(w, `{"error":"Invalid token"}`, http.StatusUnauthorized)
				return
			}
			// Ensure user still exists
			if _, err := s.findUserByID(id); err != nil {
				http.Error(w, `{"error":"Invalid token"}`, http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), ctxUserKey{}, &authUser{ID: id, Username: username})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ------------------------------- small util --------------------------------

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
