package application

import (
	"fmt"
	"sync"

	"bbq-enquiry/internal/domain"
	"bbq-enquiry/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// ChatService struct - Application service implementing the turn use case.
// It owns the session lifecycle around the dialogue engine: load or create
// the context, run the turn, persist the derived context. Turns for the
// same session are serialized through a per-session lock because the
// read-compute-write sequence against the store is not atomic. Lock entries
// are reference-counted and dropped once no turn holds or waits on them, so
// the table only ever holds sessions with a turn in flight.
type ChatService struct {
	sessions output.SessionStore
	engine   *DialogueEngine
	locksMu  sync.Mutex
	locks    map[string]*sessionLock
}

type sessionLock struct {
	mu   sync.Mutex
	refs int
}

// NewChatService func - Creates new chat service
func NewChatService(sessions output.SessionStore, engine *DialogueEngine) *ChatService {
	return &ChatService{
		sessions: sessions,
		engine:   engine,
		locks:    make(map[string]*sessionLock),
	}
}

// Chat func - Use case: process one conversation turn.
// A returned error is the explicit reset outcome: the session has been
// deleted and the next turn for this identifier starts at the greeting.
func (s *ChatService) Chat(request domain.ChatRequest) (*domain.ChatReply, error) {
	lock := s.acquire(request.SessionID)
	defer s.release(request.SessionID, lock)

	context, err := s.sessions.GetSession(request.SessionID)
	if err != nil {
		logrus.Errorf("Failed to load session %s: %v", request.SessionID, err)
		return nil, s.reset(request.SessionID, err)
	}

	hint, hintValid := domain.ParseConversationState(request.CurrentState)
	if context == nil {
		// Brand-new session: a valid caller hint seeds the state,
		// anything else defaults to the greeting
		initial := domain.StateInitialGreeting
		if hintValid {
			initial = hint
		}
		fresh := domain.NewSessionContext(request.SessionID, initial)
		context = &fresh
	} else if hintValid {
		// Existing session: a valid hint overrides the stored state,
		// an invalid one is ignored
		context.CurrentState = hint
	}

	next, reply, err := s.engine.ProcessTurn(*context, request.Message)
	if err != nil {
		logrus.Errorf("Turn failed for session %s: %v", request.SessionID, err)
		return nil, s.reset(request.SessionID, err)
	}

	if err := s.sessions.UpdateSession(&next); err != nil {
		logrus.Errorf("Failed to persist session %s: %v", request.SessionID, err)
		return nil, s.reset(request.SessionID, err)
	}

	return reply, nil
}

// reset deletes the session so the next turn restarts cleanly. No partial
// context survives a failed turn.
func (s *ChatService) reset(sessionID string, cause error) error {
	if err := s.sessions.DeleteSession(sessionID); err != nil {
		logrus.Errorf("Failed to delete session %s after fault: %v", sessionID, err)
	}
	return fmt.Errorf("turn failed, session reset: %w", cause)
}

func (s *ChatService) acquire(sessionID string) *sessionLock {
	s.locksMu.Lock()
	lock := s.locks[sessionID]
	if lock == nil {
		lock = &sessionLock{}
		s.locks[sessionID] = lock
	}
	lock.refs++
	s.locksMu.Unlock()

	lock.mu.Lock()
	return lock
}

func (s *ChatService) release(sessionID string, lock *sessionLock) {
	lock.mu.Unlock()

	s.locksMu.Lock()
	lock.refs--
	if lock.refs == 0 {
		delete(s.locks, sessionID)
	}
	s.locksMu.Unlock()
}
