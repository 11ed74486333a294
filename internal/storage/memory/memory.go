package memory

import (
	"sync"

	"github.com/MikhailRaia/shorturl/internal/storage"
)

var _ storage.URLStorage = (*Storage)(nil)

// Storage keeps sequentially numbered URLs in memory.
// The next ID is always the current number of entries.
type Storage struct {
	urlMap map[uint32]string
	mutex  sync.RWMutex
}

// NewStorage creates an empty in-memory storage.
func NewStorage() *Storage {
	return &Storage{
		urlMap: make(map[uint32]string),
	}
}

// Insert stores originalURL verbatim under the next free ID and returns that ID.
func (s *Storage) Insert(originalURL string) uint32 {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	id := uint32(len(s.urlMap))
	s.urlMap[id] = originalURL
	return id
}

// Lookup returns the URL stored under id.
func (s *Storage) Lookup(id uint32) (string, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	originalURL, found := s.urlMap[id]
	return originalURL, found
}

// Len returns the number of stored URLs.
func (s *Storage) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return len(s.urlMap)
}
