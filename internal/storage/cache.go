package storage

import (
	"babylog/internal/logger"
	"babylog/internal/models"
)

// Session wraps a Provider with a per-category read cache keyed by a
// generation token. A read at the current generation is served from memory;
// every successful replace bumps the generation so the next read refetches.
//
// A Session lives for one interactive session and starts at generation 0.
// It is never persisted and is not safe for concurrent use by multiple
// goroutines: each user interaction runs one request-response cycle to
// completion. Concurrent sessions against the same store are not coordinated
// and resolve last-writer-wins.
type Session struct {
	provider Provider

	gen    map[models.Category]int
	asOf   map[models.Category]int // generation each cached slice was fetched at
	cached map[models.Category]interface{}
}

// NewSession creates a session cache over the given provider.
func NewSession(provider Provider) *Session {
	return &Session{
		provider: provider,
		gen:      make(map[models.Category]int),
		asOf:     make(map[models.Category]int),
		cached:   make(map[models.Category]interface{}),
	}
}

// Generation returns the current generation token for a category.
func (s *Session) Generation(cat models.Category) int {
	return s.gen[cat]
}

// Bump invalidates the read cache for a category by advancing its generation.
func (s *Session) Bump(cat models.Category) {
	s.gen[cat]++
	logger.Debug("cache generation bumped", "category", cat, "generation", s.gen[cat])
}

func (s *Session) hit(cat models.Category) (interface{}, bool) {
	v, ok := s.cached[cat]
	if !ok || s.asOf[cat] != s.gen[cat] {
		return nil, false
	}
	return v, true
}

func (s *Session) fill(cat models.Category, v interface{}) {
	s.cached[cat] = v
	s.asOf[cat] = s.gen[cat]
}

// Lifecycle passthroughs.
func (s *Session) Init() error  { return s.provider.Init() }
func (s *Session) Load() error  { return s.provider.Load() }
func (s *Session) Close() error { return s.provider.Close() }

// GetConfigPath returns the underlying provider's config path.
func (s *Session) GetConfigPath() string { return s.provider.GetConfigPath() }

// FetchDiapers returns the diaper collection, from cache when the generation
// has not moved since the last fetch.
func (s *Session) FetchDiapers() ([]models.DiaperRecord, error) {
	if v, ok := s.hit(models.CategoryDiaper); ok {
		return v.([]models.DiaperRecord), nil
	}
	recs, err := s.provider.FetchDiapers()
	if err != nil {
		return nil, err
	}
	s.fill(models.CategoryDiaper, recs)
	return recs, nil
}

// ReplaceDiapers overwrites the diaper table and, on success, invalidates the
// diaper cache.
func (s *Session) ReplaceDiapers(recs []models.DiaperRecord) error {
	if err := s.provider.ReplaceDiapers(recs); err != nil {
		return err
	}
	s.Bump(models.CategoryDiaper)
	return nil
}

// FetchSleeps returns the sleep collection, cached by generation.
func (s *Session) FetchSleeps() ([]models.SleepRecord, error) {
	if v, ok := s.hit(models.CategorySleep); ok {
		return v.([]models.SleepRecord), nil
	}
	recs, err := s.provider.FetchSleeps()
	if err != nil {
		return nil, err
	}
	s.fill(models.CategorySleep, recs)
	return recs, nil
}

// ReplaceSleeps overwrites the sleep table and invalidates its cache.
func (s *Session) ReplaceSleeps(recs []models.SleepRecord) error {
	if err := s.provider.ReplaceSleeps(recs); err != nil {
		return err
	}
	s.Bump(models.CategorySleep)
	return nil
}

// FetchFeeds returns the feed collection, cached by generation.
func (s *Session) FetchFeeds() ([]models.FeedRecord, error) {
	if v, ok := s.hit(models.CategoryFeed); ok {
		return v.([]models.FeedRecord), nil
	}
	recs, err := s.provider.FetchFeeds()
	if err != nil {
		return nil, err
	}
	s.fill(models.CategoryFeed, recs)
	return recs, nil
}

// ReplaceFeeds overwrites the feed table and invalidates its cache.
func (s *Session) ReplaceFeeds(recs []models.FeedRecord) error {
	if err := s.provider.ReplaceFeeds(recs); err != nil {
		return err
	}
	s.Bump(models.CategoryFeed)
	return nil
}
