package levels

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/paarad/27-backroom-generator/pkg/backroom"
)

var _ backroom.Store = (*InMemoryStore)(nil)

// InMemoryStore keeps levels in process memory. Data is lost on restart.
type InMemoryStore struct {
	levels map[string]*LevelModel
	now    func() time.Time
	mutex  sync.RWMutex
}

// NewInMemoryStore creates an empty in-memory store. now stamps created_at; nil means time.Now in UTC.
func NewInMemoryStore(now func() time.Time) *InMemoryStore {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}

	return &InMemoryStore{
		levels: make(map[string]*LevelModel),
		now:    now,
	}
}

// SaveLevel applies the same matching rules as Store.SaveLevel
func (s *InMemoryStore) SaveLevel(ctx context.Context, level *backroom.Level, authorName string) (backroom.SaveResult, error) {
	if err := level.Validate(); err != nil {
		return backroom.SaveResult{}, err
	}

	model := toModel(level, resolveAuthor(authorName, level))

	s.mutex.Lock()
	defer s.mutex.Unlock()

	now := s.now()
	model.UpdatedAt = now

	if existing := s.findExisting(level); existing != nil {
		model.ID = existing.ID
		model.CreatedAt = existing.CreatedAt
		s.levels[model.ID] = model
		return backroom.SaveResult{ID: model.ID, Updated: true}, nil
	}

	model.ID = uuid.NewString()
	model.CreatedAt = now
	s.levels[model.ID] = model
	return backroom.SaveResult{ID: model.ID, Updated: false}, nil
}

func (s *InMemoryStore) findExisting(level *backroom.Level) *LevelModel {
	if existing, ok := s.levels[level.ID]; ok && level.ID != "" {
		return existing
	}

	var match *LevelModel
	for _, model := range s.levels {
		if model.Prompt != level.Prompt || model.Name != level.Name {
			continue
		}
		if match == nil || model.CreatedAt.After(match.CreatedAt) {
			match = model
		}
	}
	return match
}

// ListLevels returns all saved levels, newest first
func (s *InMemoryStore) ListLevels(ctx context.Context) ([]*backroom.Level, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	levels := make([]*backroom.Level, 0, len(s.levels))
	for _, model := range s.levels {
		levels = append(levels, toLevel(model))
	}

	slices.SortFunc(levels, func(a, b *backroom.Level) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(b.ID, a.ID)
	})

	return levels, nil
}

// GetLevel retrieves a level by id, returning nil when it does not exist
func (s *InMemoryStore) GetLevel(ctx context.Context, id string) (*backroom.Level, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	model, ok := s.levels[id]
	if !ok {
		return nil, nil
	}
	return toLevel(model), nil
}
