package sessions

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CarwashService/internal/flow"
)

const janitorInterval = time.Minute

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// Session одна гостевая сессия флоу. Запросы одной сессии
// сериализуются через Lock.
type Session struct {
	ID    string
	State *flow.State

	mu            sync.Mutex
	rememberedKey string
	expiresAt     time.Time
}

// Lock захватывает сессию на время обработки запроса
func (s *Session) Lock() { s.mu.Lock() }

// Unlock отпускает сессию
func (s *Session) Unlock() { s.mu.Unlock() }

// Store in-memory хранилище сессий с TTL. Протухшие сессии
// убирает фоновый janitor.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	logger   Logger
	done     chan struct{}
}

// NewStore создает хранилище и запускает janitor
func NewStore(ttl time.Duration, logger Logger) *Store {
	store := &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		logger:   logger,
		done:     make(chan struct{}),
	}
	go store.janitor()
	return store
}

// Create создает новую сессию со свежим состоянием флоу
func (s *Store) Create() *Session {
	session := &Session{
		ID:    uuid.NewString(),
		State: flow.NewState(),
	}

	s.mu.Lock()
	session.expiresAt = time.Now().Add(s.ttl)
	s.sessions[session.ID] = session
	s.mu.Unlock()

	s.logger.Info("sessions: created session id=%s", session.ID)
	return session
}

// Get возвращает живую сессию и продлевает ее TTL
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	if time.Now().After(session.expiresAt) {
		delete(s.sessions, id)
		return nil, false
	}
	session.expiresAt = time.Now().Add(s.ttl)
	return session, true
}

// Delete удаляет сессию
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Close останавливает janitor
func (s *Store) Close() {
	close(s.done)
}

// janitor периодически удаляет протухшие сессии
func (s *Store) janitor() {
	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case now := <-ticker.C:
			s.sweep(now)
		}
	}
}

func (s *Store) sweep(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, session := range s.sessions {
		if now.After(session.expiresAt) {
			delete(s.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		s.logger.Info("sessions: swept %d expired sessions, %d alive", removed, len(s.sessions))
	}
}

type sessionKey struct{}

// ContextWithSession кладет сессию запроса в контекст
func ContextWithSession(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

// FromContext достает сессию запроса из контекста
func FromContext(ctx context.Context) (*Session, bool) {
	session, ok := ctx.Value(sessionKey{}).(*Session)
	return session, ok
}

// Preference реализация "запомнить меня" поверх сессии из контекста.
// Без сессии в контексте все операции no-op.
type Preference struct{}

// Load возвращает сохраненный ключ клиента
func (Preference) Load(ctx context.Context) (string, bool) {
	session, ok := FromContext(ctx)
	if !ok {
		return "", false
	}
	return session.rememberedKey, session.rememberedKey != ""
}

// Save запоминает ключ клиента на время жизни сессии
func (Preference) Save(ctx context.Context, key string) {
	if session, ok := FromContext(ctx); ok {
		session.rememberedKey = key
	}
}

// Clear забывает сохраненный ключ
func (Preference) Clear(ctx context.Context) {
	if session, ok := FromContext(ctx); ok {
		session.rememberedKey = ""
	}
}
