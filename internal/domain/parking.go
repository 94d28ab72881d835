package domain

import (
	"math"
	"time"
)

type VehicleType string

const (
	VehicleCar        VehicleType = "car"
	VehicleMotorcycle VehicleType = "motorcycle"
	VehicleTruck      VehicleType = "truck"
)

// ParkingRecord tracks one parking stay. ExitTime nil means the vehicle is
// still parked; FeeCharged is set exactly once, when the exit is registered.
type ParkingRecord struct {
	ID           string      `json:"id"`
	VehiclePlate string      `json:"vehiclePlate"`
	EntryTime    time.Time   `json:"entryTime"`
	ExitTime     *time.Time  `json:"exitTime"`
	VehicleType  VehicleType `json:"vehicleType"`
	FeeCharged   *float64    `json:"feeCharged"`
}

func NewParkingRecord(id, plate string, entry time.Time, vtype VehicleType) ParkingRecord {
	return ParkingRecord{
		ID:           id,
		VehiclePlate: plate,
		EntryTime:    entry,
		VehicleType:  vtype,
	}
}

// IsActive reports whether the vehicle is still parked.
func (r ParkingRecord) IsActive() bool {
	return r.ExitTime == nil
}

// DurationHours returns the stay duration rounded up to whole hours.
// For an active record the duration runs up to now; that value is for
// display only and is never used to charge a fee.
func (r ParkingRecord) DurationHours(now time.Time) int {
	exit := now
	if r.ExitTime != nil {
		exit = *r.ExitTime
	}
	return int(math.Ceil(exit.Sub(r.EntryTime).Hours()))
}
