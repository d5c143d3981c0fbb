package geocache

import (
	"errors"
	"sync"
)

// ErrQuotaExceeded is returned by a Storage that has no room for a value.
var ErrQuotaExceeded = errors.New("geocache: storage quota exceeded")

// Storage is a string key/value store such as the browser's session or
// local storage.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Remove(key string)
}

// MemoryStorage is an in-process Storage.
type MemoryStorage struct {
	mu    sync.Mutex
	quota int
	used  int
	data  map[string]string
}

// NewMemoryStorage returns a Storage holding at most quota bytes of keys and
// values. A quota of zero means unbounded.
func NewMemoryStorage(quota int) *MemoryStorage {
	return &MemoryStorage{quota: quota, data: make(map[string]string)}
}

func (s *MemoryStorage) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	return v, ok
}

func (s *MemoryStorage) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	used := s.used
	if old, ok := s.data[key]; ok {
		used -= len(key) + len(old)
	}
	used += len(key) + len(value)
	if s.quota > 0 && used > s.quota {
		return ErrQuotaExceeded
	}
	s.data[key] = value
	s.used = used
	return nil
}

func (s *MemoryStorage) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if old, ok := s.data[key]; ok {
		s.used -= len(key) + len(old)
		delete(s.data, key)
	}
}
