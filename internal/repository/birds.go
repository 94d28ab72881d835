package repository

import (
	"context"
	"sync"

	"github.com/asaskevich/EventBus"
	"github.com/talkincode/catalogd/internal/domain"
	"go.uber.org/zap"
)

// BirdRepository is a read-through cache over the bird catalog. Birds
// have no identifier; removal is only whole-collection Clear.
type BirdRepository struct {
	remote *RemoteStore[domain.Bird]
	writer *Writer
	bus    EventBus.Bus

	mu    sync.RWMutex
	cache []domain.Bird
}

func NewBirdRepository(remote *RemoteStore[domain.Bird], writer *Writer, bus EventBus.Bus) *BirdRepository {
	r := &BirdRepository{
		remote: remote,
		writer: writer,
		bus:    bus,
		cache:  []domain.Bird{},
	}
	go func() {
		if err := r.Reload(context.Background()); err != nil {
			zap.L().Warn("initial bird load failed", zap.Error(err))
		}
	}()
	return r
}

func (r *BirdRepository) Reload(ctx context.Context) error {
	items, err := r.remote.FetchAll(ctx)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.cache = items
	r.mu.Unlock()
	return nil
}

func (r *BirdRepository) GetAll() []domain.Bird {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Bird, len(r.cache))
	copy(out, r.cache)
	return out
}

func (r *BirdRepository) GetByName(name string) (domain.Bird, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.cache {
		if b.Name == name {
			return b, true
		}
	}
	return domain.Bird{}, false
}

func (r *BirdRepository) Add(bird domain.Bird) {
	r.mu.Lock()
	r.cache = append(r.cache, bird)
	r.mu.Unlock()

	r.writer.Submit("birds", "create", func() error {
		return r.remote.Create(context.Background(), bird)
	})
	r.bus.Publish(TopicBirdAdded, bird.Name)
}

// Clear empties the cache and the remote collection.
func (r *BirdRepository) Clear() {
	r.mu.Lock()
	r.cache = []domain.Bird{}
	r.mu.Unlock()

	r.writer.Submit("birds", "clear", func() error {
		return r.remote.Clear(context.Background())
	})
	r.bus.Publish(TopicBirdsCleared)
}
