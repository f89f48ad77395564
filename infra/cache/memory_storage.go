package cache

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
)

// MemoryStorage implements fiber.Storage in process memory. It backs the
// rate limiter when no Redis is configured.
type MemoryStorage struct {
	entries map[string]*entry
	mu      sync.RWMutex
	done    chan struct{}
	once    sync.Once
}

type entry struct {
	value     []byte
	expiresAt time.Time
}

func (e *entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// NewMemoryStorage creates a new in-memory storage that evicts expired keys
// every interval.
func NewMemoryStorage(interval time.Duration) *MemoryStorage {
	s := &MemoryStorage{
		entries: make(map[string]*entry),
		done:    make(chan struct{}),
	}
	if interval <= 0 {
		interval = time.Minute
	}
	go s.cleanup(interval)
	return s
}

// Get returns nil when the key is missing or expired.
func (s *MemoryStorage) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[key]
	if !ok || e.expired(time.Now()) {
		return nil, nil
	}
	return e.value, nil
}

// Set stores val under key. A zero exp keeps the key forever.
func (s *MemoryStorage) Set(key string, val []byte, exp time.Duration) error {
	if key == "" || len(val) == 0 {
		return nil
	}
	e := &entry{value: append([]byte(nil), val...)}
	if exp > 0 {
		e.expiresAt = time.Now().Add(exp)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = e
	return nil
}

// Delete removes key.
func (s *MemoryStorage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

// Reset removes every key.
func (s *MemoryStorage) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]*entry)
	return nil
}

// Close stops the eviction goroutine.
func (s *MemoryStorage) Close() error {
	s.once.Do(func() { close(s.done) })
	return nil
}

func (s *MemoryStorage) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.evict(time.Now())
		}
	}
}

func (s *MemoryStorage) evict(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, e := range s.entries {
		if e.expired(now) {
			delete(s.entries, key)
		}
	}
}

var _ fiber.Storage = (*MemoryStorage)(nil)
