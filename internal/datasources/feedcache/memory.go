package feedcache

import (
	"context"
	"sync"
	"time"

	"github.com/empowerverse/personalized-feed/internal/datasources"
	"github.com/empowerverse/personalized-feed/internal/domain"
)

var _ datasources.FeedCache = (*Memory)(nil)

// Memory is an in-process FeedCache with per-entry TTL. Entries expire lazily
// on read; suitable for a single instance, lost on restart.
type Memory struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.RWMutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	page      domain.FeedPage
	expiresAt time.Time
}

func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]memoryEntry),
	}
}

func (m *Memory) GetFeedPage(_ context.Context, key string) (domain.FeedPage, bool, error) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok {
		return domain.FeedPage{}, false, nil
	}

	if m.now().After(entry.expiresAt) {
		// Reclaim the slot so dead keys do not accumulate; re-check under
		// the write lock in case a writer refreshed the entry meanwhile.
		m.mu.Lock()
		if current, ok := m.entries[key]; ok && m.now().After(current.expiresAt) {
			delete(m.entries, key)
		}
		m.mu.Unlock()

		return domain.FeedPage{}, false, nil
	}

	return entry.page, true, nil
}

func (m *Memory) SetFeedPage(_ context.Context, key string, page domain.FeedPage) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = memoryEntry{
		page:      page,
		expiresAt: m.now().Add(m.ttl),
	}
	return nil
}
