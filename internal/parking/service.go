package parking

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/talkincode/catalogd/internal/domain"
	"github.com/talkincode/catalogd/pkg/common"
	"go.uber.org/zap"
)

var (
	ErrRecordNotFound = errors.New("parking record not found")
	ErrAlreadyExited  = errors.New("parking record already exited")
)

// Repository is the parking record data access contract.
type Repository interface {
	GetAll() []domain.ParkingRecord
	GetByID(id string) (domain.ParkingRecord, bool)
	Add(r domain.ParkingRecord)
	Update(r domain.ParkingRecord)
}

// Service orchestrates parking entries and exits. The fee for an exit is
// computed by the active rate strategy.
type Service struct {
	repo Repository

	mu       sync.RWMutex
	strategy RateStrategy
}

func NewService(repo Repository, strategy RateStrategy) *Service {
	return &Service{repo: repo, strategy: strategy}
}

// RegisterEntry creates an active record for a vehicle entering the lot.
func (s *Service) RegisterEntry(plate string, vtype domain.VehicleType) domain.ParkingRecord {
	record := domain.NewParkingRecord(common.UUID(), plate, time.Now(), vtype)
	s.repo.Add(record)
	zap.L().Info("parking entry registered",
		zap.String("record_id", record.ID),
		zap.String("plate", plate),
		zap.String("vehicle_type", string(vtype)),
	)
	return record
}

// RegisterExit stamps the exit time, computes the fee via the active
// strategy and persists the updated record. A record that has already
// exited is never reactivated.
func (s *Service) RegisterExit(recordID string) (domain.ParkingRecord, float64, error) {
	record, ok := s.repo.GetByID(recordID)
	if !ok {
		return domain.ParkingRecord{}, 0, errors.Wrap(ErrRecordNotFound, recordID)
	}
	if !record.IsActive() {
		return domain.ParkingRecord{}, 0, errors.Wrap(ErrAlreadyExited, recordID)
	}

	now := time.Now()
	record.ExitTime = &now
	fee := s.Strategy().Calculate(record)
	record.FeeCharged = &fee
	s.repo.Update(record)

	zap.L().Info("parking exit registered",
		zap.String("record_id", record.ID),
		zap.String("plate", record.VehiclePlate),
		zap.Float64("fee", fee),
	)
	return record, fee, nil
}

// ActiveRecords returns the records of vehicles still parked.
func (s *Service) ActiveRecords() []domain.ParkingRecord {
	all := s.repo.GetAll()
	active := make([]domain.ParkingRecord, 0, len(all))
	for _, r := range all {
		if r.IsActive() {
			active = append(active, r)
		}
	}
	return active
}

func (s *Service) AllRecords() []domain.ParkingRecord {
	return s.repo.GetAll()
}

// SetRateStrategy swaps the active fee strategy at runtime.
func (s *Service) SetRateStrategy(strategy RateStrategy) {
	s.mu.Lock()
	s.strategy = strategy
	s.mu.Unlock()
}

func (s *Service) Strategy() RateStrategy {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.strategy
}
