package repository

import (
	"github.com/asaskevich/EventBus"
	"github.com/panjf2000/ants/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Event topics published by the repositories.
const (
	TopicWriteFailed = "store.write.failed"

	TopicProductAdded   = "catalog.products.added"
	TopicProductRemoved = "catalog.products.removed"
	TopicParkingAdded   = "catalog.parking.added"
	TopicParkingUpdated = "catalog.parking.updated"
	TopicBirdAdded      = "catalog.birds.added"
	TopicBirdsCleared   = "catalog.birds.cleared"
)

// Writer runs remote store writes on a bounded worker pool. Callers do
// not wait for completion; a write that still fails after one retry is
// logged and published on the bus as TopicWriteFailed rather than
// silently dropped.
type Writer struct {
	pool *ants.Pool
	bus  EventBus.Bus
}

func NewWriter(size int, bus EventBus.Bus) (*Writer, error) {
	pool, err := ants.NewPool(size)
	if err != nil {
		return nil, errors.Wrap(err, "repository: create write pool")
	}
	return &Writer{pool: pool, bus: bus}, nil
}

// Submit enqueues one remote write. The local cache mutation has already
// happened by the time this runs; cache and store diverge until the write
// lands or the next full reload.
func (w *Writer) Submit(catalog, op string, fn func() error) {
	task := func() {
		err := fn()
		if err != nil {
			err = fn()
		}
		if err != nil {
			zap.L().Warn("background store write failed",
				zap.String("catalog", catalog),
				zap.String("op", op),
				zap.Error(err),
			)
			w.bus.Publish(TopicWriteFailed, catalog, op, err)
		}
	}
	if err := w.pool.Submit(task); err != nil {
		// Pool released or overloaded; run inline so the write is not lost.
		task()
	}
}

func (w *Writer) Release() {
	w.pool.Release()
}
