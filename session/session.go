package session

import (
	"encoding/base64"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"seoulmap/lang"
	"seoulmap/location"
	"seoulmap/viewport"
)

// A session is one browser's UI state: language, filter, selection, viewport
// and any in-flight location request. Nothing survives the process; sessions
// idle out and are swept.

const (
	cookieName = "session"
	idleExpiry = 2 * time.Hour
	sweepEvery = 10 * time.Minute
)

// State holds the mutable UI state for one session.
type State struct {
	ID string

	mu         sync.Mutex
	lang       string
	query      string
	category   string
	selectedID string
	lastFix    *location.Fix
	lastSeen   time.Time

	Viewport *viewport.Controller
	Location *location.Provider
}

func newState(id string) *State {
	return &State{
		ID:       id,
		lang:     lang.Default,
		category: "all",
		lastSeen: time.Now(),
		Viewport: viewport.NewDefault(),
		Location: location.New(),
	}
}

// Lang returns the session language.
func (s *State) Lang() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lang
}

// SetLang switches the session language if code is supported.
func (s *State) SetLang(code string) {
	if !lang.Known(code) {
		return
	}
	s.mu.Lock()
	s.lang = code
	s.mu.Unlock()
}

// Filter returns the current filter state.
func (s *State) Filter() (query, category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query, s.category
}

// SetFilter updates the filter state. Filter changes alone never move the
// viewport.
func (s *State) SetFilter(query, category string) {
	s.mu.Lock()
	s.query = query
	s.category = category
	s.mu.Unlock()
}

// Selected returns the selected place id, or "".
func (s *State) Selected() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedID
}

// Select sets the selection; empty id clears it.
func (s *State) Select(id string) {
	s.mu.Lock()
	s.selectedID = id
	s.mu.Unlock()
}

// LastFix returns the most recently resolved location, if any.
func (s *State) LastFix() *location.Fix {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastFix
}

// SetFix records a resolved location.
func (s *State) SetFix(f location.Fix) {
	s.mu.Lock()
	s.lastFix = &f
	s.mu.Unlock()
}

func (s *State) touch() {
	s.mu.Lock()
	s.lastSeen = time.Now()
	s.mu.Unlock()
}

var (
	storeMu sync.RWMutex
	store   = map[string]*State{}
)

// Load starts the idle-session sweeper.
func Load() {
	go sweeper()
}

func sweeper() {
	ticker := time.NewTicker(sweepEvery)
	defer ticker.Stop()
	for range ticker.C {
		cutoff := time.Now().Add(-idleExpiry)
		storeMu.Lock()
		for id, s := range store {
			s.mu.Lock()
			idle := s.lastSeen.Before(cutoff)
			s.mu.Unlock()
			if idle {
				delete(store, id)
			}
		}
		storeMu.Unlock()
	}
}

// Count returns the number of live sessions.
func Count() int {
	storeMu.RLock()
	defer storeMu.RUnlock()
	return len(store)
}

// GenerateToken mints a new session token.
func GenerateToken() string {
	id := uuid.New().String()
	return base64.StdEncoding.EncodeToString([]byte(id))
}

// ParseToken extracts the session id from a token.
func ParseToken(tk string) (string, error) {
	dec, err := base64.StdEncoding.DecodeString(tk)
	if err != nil {
		return "", errors.New("invalid session")
	}
	id, err := uuid.Parse(string(dec))
	if err != nil {
		return "", errors.New("invalid session")
	}
	return id.String(), nil
}

// Get returns the session for the request, creating one (and setting the
// cookie) if none exists.
func Get(w http.ResponseWriter, r *http.Request) *State {
	if c, err := r.Cookie(cookieName); err == nil && c != nil {
		if id, err := ParseToken(c.Value); err == nil {
			storeMu.RLock()
			s := store[id]
			storeMu.RUnlock()
			if s != nil {
				s.touch()
				return s
			}
			// Known token, expired state: recreate under the same id.
			return create(w, id, c.Value)
		}
	}
	id := uuid.New().String()
	token := base64.StdEncoding.EncodeToString([]byte(id))
	return create(w, id, token)
}

// Lookup returns the session for the request without creating one.
func Lookup(r *http.Request) *State {
	c, err := r.Cookie(cookieName)
	if err != nil || c == nil {
		return nil
	}
	id, err := ParseToken(c.Value)
	if err != nil {
		return nil
	}
	storeMu.RLock()
	defer storeMu.RUnlock()
	return store[id]
}

func create(w http.ResponseWriter, id, token string) *State {
	s := newState(id)
	storeMu.Lock()
	store[id] = s
	storeMu.Unlock()

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return s
}
