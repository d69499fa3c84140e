// Package localstore implementa un almacén clave-valor JSON respaldado por un
// archivo local: el equivalente del "local storage" del dispositivo. Sin
// versionado, sin cifrado, sin TTL.
package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store almacén clave-valor sobre un único archivo JSON. Cada escritura
// reescribe el archivo completo (volúmenes de un registro; no es una base de
// datos). Seguro para uso concurrente.
type Store struct {
	mu   sync.Mutex
	path string
}

// New construye el store sobre el archivo dado. El archivo se crea en la
// primera escritura.
func New(path string) *Store {
	return &Store{path: path}
}

// Get deserializa el valor de la clave en out. Devuelve false si la clave (o
// el archivo) no existe.
func (s *Store) Get(key string, out interface{}) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return false, err
	}
	raw, ok := data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("localstore: deserializar %q: %w", key, err)
	}
	return true, nil
}

// Put serializa v y lo guarda bajo la clave.
func (s *Store) Put(key string, v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return err
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("localstore: serializar %q: %w", key, err)
	}
	data[key] = raw
	return s.write(data)
}

// Delete elimina la clave. Es un no-op si no existe.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return err
	}
	if _, ok := data[key]; !ok {
		return nil
	}
	delete(data, key)
	return s.write(data)
}

func (s *Store) read() (map[string]json.RawMessage, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]json.RawMessage{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("localstore: leer %s: %w", s.path, err)
	}
	data := map[string]json.RawMessage{}
	if len(b) > 0 {
		if err := json.Unmarshal(b, &data); err != nil {
			return nil, fmt.Errorf("localstore: archivo corrupto %s: %w", s.path, err)
		}
	}
	return data, nil
}

// write persiste con archivo temporal + rename para no dejar un archivo a
// medias si el proceso muere durante la escritura.
func (s *Store) write(data map[string]json.RawMessage) error {
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".localstore-*")
	if err != nil {
		return fmt.Errorf("localstore: archivo temporal: %w", err)
	}
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}
