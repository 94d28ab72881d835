package repository

import (
	"context"
	"sync"

	"github.com/asaskevich/EventBus"
	"github.com/talkincode/catalogd/internal/domain"
	"go.uber.org/zap"
)

// ProductRepository is a read-through cache over the products catalog.
// Until the initial fetch resolves, reads return the empty collection.
type ProductRepository struct {
	remote *RemoteStore[domain.Product]
	writer *Writer
	bus    EventBus.Bus

	mu    sync.RWMutex
	cache []domain.Product
}

func NewProductRepository(remote *RemoteStore[domain.Product], writer *Writer, bus EventBus.Bus) *ProductRepository {
	r := &ProductRepository{
		remote: remote,
		writer: writer,
		bus:    bus,
		cache:  []domain.Product{},
	}
	go func() {
		if err := r.Reload(context.Background()); err != nil {
			zap.L().Warn("initial product load failed", zap.Error(err))
		}
	}()
	return r
}

// Reload replaces the cache with the remote collection. On error the
// current cache is kept.
func (r *ProductRepository) Reload(ctx context.Context) error {
	items, err := r.remote.FetchAll(ctx)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.cache = items
	r.mu.Unlock()
	return nil
}

func (r *ProductRepository) GetAll() []domain.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Product, len(r.cache))
	copy(out, r.cache)
	return out
}

func (r *ProductRepository) GetByID(id string) (domain.Product, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.cache {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// Add applies to the cache immediately and persists in the background.
func (r *ProductRepository) Add(p domain.Product) {
	r.mu.Lock()
	r.cache = append(r.cache, p)
	r.mu.Unlock()

	r.writer.Submit("products", "create", func() error {
		return r.remote.Create(context.Background(), p)
	})
	r.bus.Publish(TopicProductAdded, p.ID)
}

func (r *ProductRepository) Remove(id string) {
	r.mu.Lock()
	kept := r.cache[:0]
	for _, p := range r.cache {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	r.cache = kept
	r.mu.Unlock()

	r.writer.Submit("products", "delete", func() error {
		return r.remote.Delete(context.Background(), id)
	})
	r.bus.Publish(TopicProductRemoved, id)
}
