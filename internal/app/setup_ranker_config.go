package app

import (
	"math/rand"
	"sync"
	"time"

	"github.com/empowerverse/personalized-feed/internal/domain"
)

// lockedSource synchronizes a rand.Source64 so one *rand.Rand can serve
// every request goroutine. rand.Rand itself keeps no state outside its
// source for the draws the rankers make.
type lockedSource struct {
	mu  sync.Mutex
	src rand.Source64
}

func newLockedSource(seed int64) *lockedSource {
	return &lockedSource{src: rand.NewSource(seed).(rand.Source64)}
}

func (s *lockedSource) Int63() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Int63()
}

func (s *lockedSource) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Uint64()
}

func (s *lockedSource) Seed(seed int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.src.Seed(seed)
}

// DefaultRankConfig returns the default scoring weights for the personalized path.
func DefaultRankConfig() domain.RankConfig {
	return domain.RankConfig{
		CreatorWeight:         30,
		CategoryWeight:        20,
		CategoryOverlapWeight: 25,
		TagOverlapWeight:      15,
		MoodWeight:            15,
		ExplorationWeight:     10,
		Rand:                  rand.New(newLockedSource(time.Now().UnixNano())),
	}
}

// DefaultColdStartConfig returns the default config for the cold-start path.
func DefaultColdStartConfig() domain.ColdStartConfig {
	return domain.ColdStartConfig{
		DiversityCreatorThreshold: 10,
		ExplorationSampleSize:     10,
		Rand:                      rand.New(newLockedSource(time.Now().UnixNano())),
	}
}
