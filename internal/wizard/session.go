package wizard

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"stagedai-backend/internal/models"
)

// Step numbers for the five-step intake flow.
const (
	StepUpload       = 1
	StepGoalPersona  = 2
	StepPropertyType = 3
	StepStyle        = 4
	StepRefine       = 5
)

// Session is one in-progress intake. Everything entered so far is kept even
// when the user walks back, so moving forward again never re-asks for data.
type Session struct {
	ID   string
	Step int

	Image        models.ImagePayload
	Goal         models.PropertyGoal
	Persona      models.BuyerPersona
	PropertyType models.PropertyType
	Style        models.StagingStyle

	Recommendations []models.StyleRecommendation

	MarketPositioning models.MarketPositioning
	UsagePlatform     []string
	EmotionalTone     string
	Notes             string
	DeepCleanRequired bool

	UpdatedAt time.Time
}

// Store keeps sessions in memory behind a mutex. Sessions are ephemeral
// intake state; once a project is submitted the session is discarded.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

func (s *Store) Create() *Session {
	session := &Session{
		ID:        uuid.New().String(),
		Step:      StepUpload,
		UpdatedAt: time.Now(),
	}
	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()
	return session
}

// Get returns a copy of the session so readers never race with writers.
func (s *Store) Get(id string) (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return Session{}, false
	}
	return *session, true
}

// Update applies fn to the session under the write lock and stamps it.
func (s *Store) Update(id string, fn func(*Session)) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return Session{}, false
	}
	fn(session)
	session.UpdatedAt = time.Now()
	return *session, true
}

func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// PruneIdle drops sessions untouched for longer than maxIdle and returns how
// many were removed.
func (s *Store) PruneIdle(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, session := range s.sessions {
		if session.UpdatedAt.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// StartJanitor prunes idle sessions on a ticker until stop is closed.
func (s *Store) StartJanitor(interval, maxIdle time.Duration, stop <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.PruneIdle(maxIdle)
			case <-stop:
				return
			}
		}
	}()
}
