package services

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"privacyassist/dataset"
)

// storedDataset запись хранилища: датасет и срок его жизни
type storedDataset struct {
	name      string
	ds        *dataset.Dataset
	expiresAt time.Time
}

// DatasetStore потокобезопасное in-memory хранилище датасетов на время
// сессии. Датасет после помещения не мутируется: анализаторы получают
// его только на чтение, поэтому параллельные анализы безопасны.
// Просроченные записи вытесняются лениво при обращениях.
type DatasetStore struct {
	mu      sync.RWMutex
	entries map[string]storedDataset
	ttl     time.Duration
	now     func() time.Time
}

// NewDatasetStore создает хранилище с заданным временем жизни записей
func NewDatasetStore(ttl time.Duration) *DatasetStore {
	return &DatasetStore{
		entries: make(map[string]storedDataset),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Put сохраняет датасет и возвращает его идентификатор
func (s *DatasetStore) Put(name string, ds *dataset.Dataset) string {
	id := uuid.New().String()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictExpiredLocked()
	s.entries[id] = storedDataset{
		name:      name,
		ds:        ds,
		expiresAt: s.now().Add(s.ttl),
	}

	return id
}

// Get возвращает датасет по идентификатору
func (s *DatasetStore) Get(id string) (string, *dataset.Dataset, bool) {
	s.mu.RLock()
	entry, ok := s.entries[id]
	s.mu.RUnlock()

	if !ok || s.now().After(entry.expiresAt) {
		return "", nil, false
	}
	return entry.name, entry.ds, true
}

// Delete удаляет датасет из хранилища
func (s *DatasetStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
}

// Len количество живых записей
func (s *DatasetStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictExpiredLocked()
	return len(s.entries)
}

// evictExpiredLocked вытесняет просроченные записи; вызывается под мьютексом
func (s *DatasetStore) evictExpiredLocked() {
	now := s.now()
	for id, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, id)
		}
	}
}
