package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRoundTrip(t *testing.T) {
	expiry := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	products := []Product{
		NewFoodProduct("p1", "milk", 1200, &expiry),
		NewFoodProduct("p2", "rice", 800, nil),
		NewElectronicProduct("p3", "laptop", 500000, 24, "Acme"),
		NewClothingProduct("p4", "shirt", 30000, "L", "Linen"),
	}

	for _, p := range products {
		data, err := json.Marshal(p)
		require.NoError(t, err)

		var got Product
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, p, got)
	}
}

func TestProductTypeDiscriminator(t *testing.T) {
	p := NewElectronicProduct("p1", "tv", 1000, 12, "")
	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type":"electronic"`)
}

func TestProductDefaults(t *testing.T) {
	e := NewElectronicProduct("p1", "tv", 1000, 0, "")
	assert.Equal(t, DefaultWarrantyMonths, e.WarrantyMonths)
	assert.Equal(t, DefaultBrand, e.Brand)

	c := NewClothingProduct("p2", "shirt", 1000, "", "")
	assert.Equal(t, DefaultSize, c.Size)
	assert.Equal(t, DefaultMaterial, c.Material)
}

func TestParkingRecordRoundTrip(t *testing.T) {
	entry := time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC)
	exit := entry.Add(3 * time.Hour)
	fee := 45.0

	active := NewParkingRecord("r1", "ABC-123", entry, VehicleTruck)
	exited := active
	exited.ExitTime = &exit
	exited.FeeCharged = &fee

	for _, r := range []ParkingRecord{active, exited} {
		data, err := json.Marshal(r)
		require.NoError(t, err)

		var got ParkingRecord
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, r.ID, got.ID)
		assert.Equal(t, r.VehiclePlate, got.VehiclePlate)
		assert.True(t, r.EntryTime.Equal(got.EntryTime))
		assert.Equal(t, r.IsActive(), got.IsActive())
		assert.Equal(t, r.FeeCharged, got.FeeCharged)
	}
}

func TestParkingRecordNullFields(t *testing.T) {
	r := NewParkingRecord("r1", "ABC-123", time.Now(), VehicleCar)
	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"exitTime":null`)
	assert.Contains(t, string(data), `"feeCharged":null`)
}

func TestIsActive(t *testing.T) {
	r := NewParkingRecord("r1", "ABC-123", time.Now(), VehicleCar)
	assert.True(t, r.IsActive())

	exit := time.Now()
	r.ExitTime = &exit
	assert.False(t, r.IsActive())
}

func TestDurationHoursRoundsUp(t *testing.T) {
	entry := time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC)
	r := NewParkingRecord("r1", "ABC-123", entry, VehicleCar)

	// active record measures against now, display only
	assert.Equal(t, 1, r.DurationHours(entry.Add(10*time.Minute)))
	assert.Equal(t, 3, r.DurationHours(entry.Add(150*time.Minute)))

	exit := entry.Add(3 * time.Hour)
	r.ExitTime = &exit
	assert.Equal(t, 3, r.DurationHours(entry.Add(100*time.Hour)))
}

func TestBirdRoundTrip(t *testing.T) {
	b := NewBird("Pika", "Penguin", map[CapabilityKind]Capability{
		CapSwim: {Description: "Pika darts underwater", Speed: 50},
		CapRun:  {Description: "Pika shuffles across the ice", Speed: 2},
	})

	data, err := json.Marshal(b)
	require.NoError(t, err)

	var got Bird
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, b, got)
}

func TestBirdCan(t *testing.T) {
	b := NewBird("Ron", "Ostrich", map[CapabilityKind]Capability{
		CapRun: {Speed: 70},
	})

	assert.True(t, b.Can(CapRun))
	assert.False(t, b.Can(CapFly))
	assert.False(t, b.Can(CapSwim))
}

func TestNewBirdNilCapabilities(t *testing.T) {
	b := NewBird("Solo", "Kiwi", nil)
	require.NotNil(t, b.Capabilities)
	assert.False(t, b.Can(CapWalk))
}
