package store

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
)

var (
	ErrKeyAlreadyExists = errors.New("key already exists")
	ErrKeyNotFound      = errors.New("key not found")
)

// CustomStore is a concurrency-safe keyed store.
type CustomStore[K comparable, T any] interface {
	Add(k K, t T) error
	Put(k K, t T)
	Get(k K) (T, bool)
	Remove(k K) error
	Keys() []K
	Count() int
}

type MemoryStore[K comparable, T any] struct {
	lock   sync.RWMutex
	values map[K]T
	less   func(a, b K) bool
}

// NewMemoryStore creates an in-memory store. less orders the keys returned by Keys, it can be nil.
func NewMemoryStore[K comparable, T any](less func(a, b K) bool) CustomStore[K, T] {
	return &MemoryStore[K, T]{
		values: make(map[K]T),
		less:   less,
	}
}

// Add stores t under k and fails if k is already used.
func (s *MemoryStore[K, T]) Add(k K, t T) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.values[k]; ok {
		return ErrKeyAlreadyExists
	}

	s.values[k] = t

	return nil
}

// Put stores t under k, replacing any previous value.
func (s *MemoryStore[K, T]) Put(k K, t T) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.values[k] = t
}

func (s *MemoryStore[K, T]) Get(k K) (T, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	v, ok := s.values[k]

	return v, ok
}

func (s *MemoryStore[K, T]) Remove(k K) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.values[k]; !ok {
		return ErrKeyNotFound
	}

	delete(s.values, k)

	return nil
}

func (s *MemoryStore[K, T]) Keys() []K {
	s.lock.RLock()
	defer s.lock.RUnlock()

	keys := make([]K, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	if s.less != nil {
		sort.Slice(keys, func(i, j int) bool {
			return s.less(keys[i], keys[j])
		})
	}

	return keys
}

func (s *MemoryStore[K, T]) Count() int {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return len(s.values)
}
