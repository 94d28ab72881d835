package parking

import (
	"time"

	"github.com/pkg/errors"
	"github.com/talkincode/catalogd/internal/domain"
)

// RateStrategy computes the fee for a completed parking stay. Strategies
// are injected into the Service and swappable at runtime.
type RateStrategy interface {
	Calculate(r domain.ParkingRecord) float64
	Description() string
}

func vehicleFactor(vtype domain.VehicleType) float64 {
	switch vtype {
	case domain.VehicleTruck:
		return 1.5
	case domain.VehicleMotorcycle:
		return 0.5
	}
	return 1.0
}

// StandardRate charges 10 per started hour.
type StandardRate struct{}

func (StandardRate) Calculate(r domain.ParkingRecord) float64 {
	return float64(r.DurationHours(time.Now())) * 10 * vehicleFactor(r.VehicleType)
}

func (StandardRate) Description() string {
	return "Standard rate: 10/hour"
}

// WeekendRate charges 8 per started hour.
type WeekendRate struct{}

func (WeekendRate) Calculate(r domain.ParkingRecord) float64 {
	return float64(r.DurationHours(time.Now())) * 8 * vehicleFactor(r.VehicleType)
}

func (WeekendRate) Description() string {
	return "Weekend rate: 8/hour"
}

// VIPRate is always free.
type VIPRate struct{}

func (VIPRate) Calculate(r domain.ParkingRecord) float64 {
	return 0
}

func (VIPRate) Description() string {
	return "VIP rate: free"
}

// StrategyByName resolves a configured strategy name.
func StrategyByName(name string) (RateStrategy, error) {
	switch name {
	case "", "standard":
		return StandardRate{}, nil
	case "weekend":
		return WeekendRate{}, nil
	case "vip":
		return VIPRate{}, nil
	}
	return nil, errors.Errorf("unknown parking rate strategy %q", name)
}
