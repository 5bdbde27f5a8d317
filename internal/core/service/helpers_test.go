package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/99minutos/label-system/internal/core/domain"
)

var testDate = time.Date(2025, time.April, 7, 14, 30, 0, 0, time.UTC)

// countingRand returns v for every call and counts the calls.
type countingRand struct {
	v     int
	calls int
}

func (r *countingRand) IntN(n int) int {
	r.calls++
	return r.v % n
}

// countingClock returns a fixed instant and counts the calls.
type countingClock struct {
	t     time.Time
	calls int
}

func (c *countingClock) Now() time.Time {
	c.calls++
	return c.t
}

// ---------------------------------------------------------------------------
// In-memory stub template store
// ---------------------------------------------------------------------------

type stubTemplateStore struct {
	mu        sync.Mutex
	templates map[string]domain.NamedTemplate
	err       error // if set, every call returns it
}

func newStubTemplateStore() *stubTemplateStore {
	return &stubTemplateStore{templates: make(map[string]domain.NamedTemplate)}
}

func (s *stubTemplateStore) Get(_ context.Context, name string) (*domain.NamedTemplate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	t, ok := s.templates[name]
	if !ok {
		return nil, domain.ErrTemplateNotFound
	}
	return &t, nil
}

func (s *stubTemplateStore) Set(_ context.Context, t *domain.NamedTemplate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.templates[t.Name] = *t
	return nil
}

func (s *stubTemplateStore) Delete(_ context.Context, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return false, s.err
	}
	_, ok := s.templates[name]
	delete(s.templates, name)
	return ok, nil
}

func (s *stubTemplateStore) List(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	names := make([]string, 0, len(s.templates))
	for n := range s.templates {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, nil
}

func (s *stubTemplateStore) Ping(_ context.Context) error { return s.err }
