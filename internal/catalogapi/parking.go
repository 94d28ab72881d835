package catalogapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/talkincode/catalogd/internal/domain"
	"github.com/talkincode/catalogd/pkg/common"
)

func (s *Server) registerParkingRoutes() {
	s.echo.GET("/api/parking", s.listParkingRecords)
	s.echo.GET("/api/parking/active", s.listActiveParkingRecords)
	s.echo.POST("/api/parking", s.createParkingRecord)
	s.echo.PUT("/api/parking", s.updateParkingRecord)
}

func (s *Server) listParkingRecords(c echo.Context) error {
	return c.JSON(http.StatusOK, s.parking.ReadAll())
}

func (s *Server) listActiveParkingRecords(c echo.Context) error {
	all := s.parking.ReadAll()
	active := make([]domain.ParkingRecord, 0, len(all))
	for _, r := range all {
		if r.IsActive() {
			active = append(active, r)
		}
	}
	return c.JSON(http.StatusOK, active)
}

func (s *Server) createParkingRecord(c echo.Context) error {
	var record domain.ParkingRecord
	if err := c.Bind(&record); err != nil {
		return fail(c, http.StatusBadRequest, "unable to parse parking record")
	}
	record.VehiclePlate = strings.TrimSpace(record.VehiclePlate)
	if record.VehiclePlate == "" {
		return fail(c, http.StatusBadRequest, "vehicle plate is required")
	}
	if record.ID == "" {
		record.ID = common.UUID()
	}
	if record.EntryTime.IsZero() {
		record.EntryTime = time.Now()
	}

	if err := s.parking.Append(record); err != nil {
		return fail(c, http.StatusInternalServerError, "failed to save parking record")
	}
	return success(c, "record", record)
}

// updateParkingRecord replaces the stored record by id; the exit flow is
// the only caller in practice.
func (s *Server) updateParkingRecord(c echo.Context) error {
	var record domain.ParkingRecord
	if err := c.Bind(&record); err != nil {
		return fail(c, http.StatusBadRequest, "unable to parse parking record")
	}
	if record.ID == "" {
		return fail(c, http.StatusBadRequest, "id is required")
	}

	matched, err := s.parking.Replace(record)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "failed to update parking record")
	}
	if !matched {
		return fail(c, http.StatusNotFound, "parking record not found")
	}
	return success(c, "record", record)
}
