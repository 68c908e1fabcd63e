// Package session guarda las sesiones del dashboard: el token de acceso del
// upstream indexado por un ID de sesión opaco que viaja al browser. Limpiar
// una sesión desloguea a todo tab que la tenga — el análogo del logout
// cross-tab por storage events.
package session

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/talentgate/talentgate/pkg/errx"
)

// Session vincula un ID opaco con el token de acceso del upstream
type Session struct {
	ID          string    `json:"id"`
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Expired indica si la sesión venció según el reloj local
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// Store es el contrato de persistencia de sesiones. Touch corre la
// expiración hacia adelante (TTL deslizante): cada request autenticado
// renueva la sesión.
type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Set(ctx context.Context, s Session) error
	Touch(ctx context.Context, id string, ttl time.Duration) error
	Clear(ctx context.Context, id string) error
}

// ============================================================================
// In-Memory Store
// ============================================================================

// MemoryStore es el Store en memoria para desarrollo y tests.
// En producción multi-instancia usar sessioninfra.RedisStore.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

// NewMemoryStore crea un MemoryStore vacío
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]Session)}
}

func (m *MemoryStore) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound()
	}
	if s.Expired(time.Now()) {
		m.mu.Lock()
		delete(m.sessions, id)
		m.mu.Unlock()
		return nil, ErrSessionExpired()
	}
	return &s, nil
}

func (m *MemoryStore) Set(ctx context.Context, s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return nil
}

func (m *MemoryStore) Touch(ctx context.Context, id string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return ErrSessionNotFound()
	}
	if s.Expired(time.Now()) {
		delete(m.sessions, id)
		return ErrSessionExpired()
	}

	s.ExpiresAt = time.Now().Add(ttl)
	m.sessions[id] = s
	return nil
}

func (m *MemoryStore) Clear(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

// StartCleanup purga sesiones vencidas periódicamente hasta que el contexto
// se cancele
func (m *MemoryStore) StartCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			now := time.Now()
			m.mu.Lock()
			for id, s := range m.sessions {
				if s.Expired(now) {
					delete(m.sessions, id)
				}
			}
			m.mu.Unlock()
		}
	}
}

// ============================================================================
// Error Registry
// ============================================================================

var sessionErrors = errx.NewRegistry("SESSION")

var (
	CodeSessionNotFound = sessionErrors.Register("NOT_FOUND", errx.TypeAuthentication, http.StatusUnauthorized, "Session not found; sign in required")
	CodeSessionExpired  = sessionErrors.Register("EXPIRED", errx.TypeAuthentication, http.StatusUnauthorized, "Session expired; sign in required")
	CodeMalformedToken  = sessionErrors.Register("MALFORMED_TOKEN", errx.TypeAuthentication, http.StatusUnauthorized, "Access token could not be decoded")
)

func ErrSessionNotFound() *errx.Error { return sessionErrors.New(CodeSessionNotFound) }
func ErrSessionExpired() *errx.Error  { return sessionErrors.New(CodeSessionExpired) }
func ErrMalformedToken() *errx.Error  { return sessionErrors.New(CodeMalformedToken) }
