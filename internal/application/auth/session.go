// Package auth implementa el store de sesión: cero o un usuario autenticado
// por proceso, persistido al almacenamiento local del dispositivo.
package auth

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/emart-api/internal/domain/entity"
)

// StorageKey clave bajo la que se persiste el usuario de la sesión.
const StorageKey = "emart-user"

// SessionStorage contrato mínimo de persistencia local (lo implementa
// localstore.Store). Un solo registro, sin versionado, sin TTL.
type SessionStorage interface {
	Get(key string, out interface{}) (bool, error)
	Put(key string, v interface{}) error
	Delete(key string) error
}

// SessionStore mantiene el usuario autenticado actual. Construcción y cierre
// explícitos: nada de singletons de proceso.
type SessionStore struct {
	mu       sync.RWMutex
	current  *entity.User
	verifier CredentialVerifier
	storage  SessionStorage
	delay    time.Duration
}

// NewSessionStore construye el store y adopta, si existe, el usuario
// persistido — sin revalidar credenciales ni expiración (arranque del
// proceso, §almacenamiento local).
func NewSessionStore(verifier CredentialVerifier, storage SessionStorage, delay time.Duration) (*SessionStore, error) {
	s := &SessionStore{verifier: verifier, storage: storage, delay: delay}

	var u entity.User
	found, err := storage.Get(StorageKey, &u)
	if err != nil {
		return nil, err
	}
	if found {
		s.current = &u
	}
	return s, nil
}

// Login verifica las credenciales con el colaborador inyectado. Simula la
// latencia de red con un retraso fijo (respetando la cancelación del
// contexto). En éxito fija el usuario actual y lo persiste bajo StorageKey;
// en fallo devuelve false sin tocar el estado. No se distingue usuario
// desconocido de contraseña incorrecta.
func (s *SessionStore) Login(ctx context.Context, username, password string) (bool, *entity.User, error) {
	if s.delay > 0 {
		select {
		case <-ctx.Done():
			return false, nil, ctx.Err()
		case <-time.After(s.delay):
		}
	}

	user := s.verifier.Verify(username, password)
	if user == nil {
		return false, nil, nil
	}

	s.mu.Lock()
	s.current = user
	s.mu.Unlock()

	if err := s.storage.Put(StorageKey, user); err != nil {
		// La sesión en memoria sigue siendo válida aunque falle la persistencia.
		return true, copia(user), err
	}
	return true, copia(user), nil
}

// Logout limpia el usuario actual y elimina la entrada persistida.
func (s *SessionStore) Logout() error {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
	return s.storage.Delete(StorageKey)
}

// Current devuelve una copia del usuario actual, o nil si no hay sesión.
func (s *SessionStore) Current() *entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copia(s.current)
}

func copia(u *entity.User) *entity.User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}
