package repository

import (
	"context"
	"sync"

	"github.com/asaskevich/EventBus"
	"github.com/talkincode/catalogd/internal/domain"
	"github.com/talkincode/catalogd/internal/parking"
	"go.uber.org/zap"
)

// ParkingRepository is a read-through cache over the parking catalog.
type ParkingRepository struct {
	remote *RemoteStore[domain.ParkingRecord]
	writer *Writer
	bus    EventBus.Bus

	mu    sync.RWMutex
	cache []domain.ParkingRecord
}

var _ parking.Repository = (*ParkingRepository)(nil)

func NewParkingRepository(remote *RemoteStore[domain.ParkingRecord], writer *Writer, bus EventBus.Bus) *ParkingRepository {
	r := &ParkingRepository{
		remote: remote,
		writer: writer,
		bus:    bus,
		cache:  []domain.ParkingRecord{},
	}
	go func() {
		if err := r.Reload(context.Background()); err != nil {
			zap.L().Warn("initial parking load failed", zap.Error(err))
		}
	}()
	return r
}

func (r *ParkingRepository) Reload(ctx context.Context) error {
	items, err := r.remote.FetchAll(ctx)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.cache = items
	r.mu.Unlock()
	return nil
}

func (r *ParkingRepository) GetAll() []domain.ParkingRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.ParkingRecord, len(r.cache))
	copy(out, r.cache)
	return out
}

func (r *ParkingRepository) GetByID(id string) (domain.ParkingRecord, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rec := range r.cache {
		if rec.ID == id {
			return rec, true
		}
	}
	return domain.ParkingRecord{}, false
}

func (r *ParkingRepository) Add(record domain.ParkingRecord) {
	r.mu.Lock()
	r.cache = append(r.cache, record)
	r.mu.Unlock()

	r.writer.Submit("parking", "create", func() error {
		return r.remote.Create(context.Background(), record)
	})
	r.bus.Publish(TopicParkingAdded, record.ID)
}

func (r *ParkingRepository) Update(record domain.ParkingRecord) {
	r.mu.Lock()
	for i := range r.cache {
		if r.cache[i].ID == record.ID {
			r.cache[i] = record
			break
		}
	}
	r.mu.Unlock()

	r.writer.Submit("parking", "update", func() error {
		return r.remote.Update(context.Background(), record)
	})
	r.bus.Publish(TopicParkingUpdated, record.ID)
}
