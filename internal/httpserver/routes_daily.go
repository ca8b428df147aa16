// internal/httpserver/routes_daily.go
//
// HTTP routes for the "Daily Challenge" mode.
// Exposes three endpoints under /daily:
//   - POST /daily/new         → start the day's round (creates or reuses session)
//   - POST /daily/guess       → submit a letter for today's daily round
//   - GET  /daily/leaderboard → fetch top 20 results for today (or a given date)
//
// Everyone plays the same round shape per day: the date deterministically
// fixes the word length and the difficulty (there is no fixed answer word
// to share — the engine stays adversarial). Each user can play once per
// day (enforced by DB + in-memory session). Sessions are held in memory
// for active play and persisted to DB when the round finishes.

package httpserver

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/hangman/apps/go-server/internal/daily"
	"github.com/robalobadob/hangman/apps/go-server/internal/hangman"
	"github.com/robalobadob/hangman/apps/go-server/internal/store"
	"github.com/robalobadob/hangman/apps/go-server/internal/words"
)

// dailyMaxWrong is the fixed wrong-guess budget for daily rounds, so
// leaderboard scores are comparable.
const dailyMaxWrong = 6

// dailyServer wraps dependencies for /daily endpoints.
type dailyServer struct {
	srv      *Server
	store    *daily.Store
	salt     string
	sessions map[string]*dailySession // active sessions keyed by userID|date
	mu       sync.Mutex               // guards sessions
}

// dailySession holds transient in-memory state for an in-progress daily
// round. Elapsed time is measured from the Session's CreatedAt.
type dailySession struct {
	Session *store.Session
	UserID  string
	Date    string
}

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	dd := &dailyServer{
		srv:      s,
		store:    daily.NewStore(s.db),
		salt:     getEnv("DAILY_SALT", "local_dev_salt"),
		sessions: make(map[string]*dailySession),
	}
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", dd.handleNew)
		r.Post("/guess", dd.handleGuess)
		r.Get("/leaderboard", dd.handleLeaderboard)
	})
}

// pruneStale evicts sessions whose date is no longer today. Abandoned
// rounds would otherwise sit in the map forever. Caller must hold d.mu.
func (d *dailyServer) pruneStale(today string) {
	for k, ds := range d.sessions {
		if ds.Date != today {
			delete(d.sessions, k)
		}
	}
}

// shapeNow returns today's date key and the deterministic round shape.
func (d *dailyServer) shapeNow() (date string, wordLength int, diff string) {
	now := time.Now().UTC()
	date = daily.DateKey(now)
	length, difficulty := daily.Shape(now, d.salt, words.Lengths())
	return date, length, string(difficulty)
}

// userIDWithAnon returns the authenticated user ID if logged in,
// otherwise ensures an anonymous ID via Server.ensureAnonID.
func (d *dailyServer) userIDWithAnon(w http.ResponseWriter, r *http.Request) (string, bool) {
	if me, _ := r.Context().Value(ctxUserKey{}).(*authUser); me != nil {
		return me.ID, true
	}
	return d.srv.ensureAnonID(w, r), true
}

// -----------------------------------------------------------------------------
// /daily/new

// dailyNewRes is returned by /daily/new.
type dailyNewRes struct {
	RoundID     string `json:"roundId"`
	Date        string `json:"date"`
	WordLength  int    `json:"wordLength"`
	Difficulty  string `json:"difficulty"`
	GuessesLeft int    `json:"guessesLeft"`
	Played      bool   `json:"played"`
}

// handleNew creates or reuses a daily session for the current date.
// - If user already has a DB row for today → return Played=true.
// - Otherwise create/reuse an in-memory session and return RoundID.
func (d *dailyServer) handleNew(w http.ResponseWriter, r *http.Request) {
	uid, ok := d.userIDWithAnon(w, r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	date, length, diff := d.shapeNow()
	if length == 0 {
		http.Error(w, `{"error":"dictionary_empty"}`, http.StatusInternalServerError)
		return
	}

	// Check if already played (persisted in DB).
	if played, err := d.store.AlreadyPlayed(r.Context(), uid, date); err == nil && played {
		_ = json.NewEncoder(w).Encode(dailyNewRes{Date: date, WordLength: length, Difficulty: diff, Played: true})
		return
	}

	// Reuse or create session in memory.
	key := uid + "|" + date
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pruneStale(date)
	if ds, ok := d.sessions[key]; ok {
		ds.Session.Mu.Lock()
		left := ds.Session.Manager.GuessesLeft()
		ds.Session.Mu.Unlock()
		_ = json.NewEncoder(w).Encode(dailyNewRes{
			RoundID: ds.Session.ID, Date: date, WordLength: length,
			Difficulty: diff, GuessesLeft: left,
		})
		return
	}

	sess, err := d.srv.newSession(length, dailyMaxWrong, hangman.Difficulty(diff))
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
		return
	}
	d.sessions[key] = &dailySession{
		Session: sess,
		UserID:  uid,
		Date:    date,
	}
	_ = json.NewEncoder(w).Encode(dailyNewRes{
		RoundID: sess.ID, Date: date, WordLength: length,
		Difficulty: diff, GuessesLeft: dailyMaxWrong,
	})
}

// -----------------------------------------------------------------------------
// /daily/guess

type dailyGuessReq struct {
	Letter string `json:"letter"`
}
type dailyGuessRes struct {
	Pattern     string `json:"pattern"`
	GuessesLeft int    `json:"guessesLeft"`
	Guesses     string `json:"guesses"`
	State       string `json:"state"`
	Word        string `json:"word,omitempty"`
}

// handleGuess applies a letter to the caller's active daily session.
// When the round finishes the result row is persisted (wins only are
// ranked, but losses also consume the day's attempt).
func (d *dailyServer) handleGuess(w http.ResponseWriter, r *http.Request) {
	uid, _ := d.userIDWithAnon(w, r)
	date, _, _ := d.shapeNow()

	var req dailyGuessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	c, ok := parseLetter(req.Letter)
	if !ok {
		http.Error(w, `{"error":"letter must be a single a-z character"}`, http.StatusBadRequest)
		return
	}

	key := uid + "|" + date
	d.mu.Lock()
	ds, found := d.sessions[key]
	d.mu.Unlock()
	if !found {
		http.Error(w, `{"error":"no_active_daily"}`, http.StatusNotFound)
		return
	}

	// Lock order is always d.mu before Session.Mu; the session map is
	// only touched again after the session lock is released.
	sess := ds.Session
	sess.Mu.Lock()

	if sess.Finished {
		sess.Mu.Unlock()
		http.Error(w, `{"error":"round finished"}`, http.StatusBadRequest)
		return
	}
	if _, err := sess.Manager.Guess(c); err != nil {
		sess.Mu.Unlock()
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	state := roundState(sess.Manager)
	res := dailyGuessRes{
		Pattern:     sess.Manager.Pattern(),
		GuessesLeft: sess.Manager.GuessesLeft(),
		Guesses:     formatGuesses(sess.Manager.Guesses()),
		State:       state,
	}
	var result *daily.Result
	if state != "playing" {
		word, err := sess.Manager.SecretWord()
		if err == nil {
			sess.Finished = true
			sess.Won = state == "won"
			sess.Word = word
			res.Word = word
		}
		result = &daily.Result{
			UserID:     uid,
			Date:       date,
			WordLength: sess.WordLength,
			Difficulty: string(sess.Difficulty),
			WrongUsed:  dailyMaxWrong - sess.Manager.GuessesLeft(),
			ElapsedMs:  int(time.Since(sess.CreatedAt).Milliseconds()),
		}
	}
	sess.Mu.Unlock()

	if result != nil {
		if err := d.store.InsertResult(r.Context(), *result); err != nil {
			http.Error(w, `{"error":"persist_failed"}`, http.StatusInternalServerError)
			return
		}
		d.mu.Lock()
		delete(d.sessions, key)
		d.mu.Unlock()
	}
	_ = json.NewEncoder(w).Encode(res)
}

// -----------------------------------------------------------------------------
// /daily/leaderboard

// handleLeaderboard returns the top results for a date (default today).
func (d *dailyServer) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	date := strings.TrimSpace(r.URL.Query().Get("date"))
	if date == "" {
		date = daily.DateKey(time.Now())
	}
	rows, err := d.store.Leaderboard(r.Context(), date, 20)
	if err != nil {
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"date": date, "top": rows})
}
