package catalogapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talkincode/catalogd/config"
	"github.com/talkincode/catalogd/internal/domain"
	"github.com/talkincode/catalogd/internal/jsonstore"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	dir := t.TempDir()

	products, err := jsonstore.Open[domain.Product](filepath.Join(dir, "products.json"),
		func(p domain.Product) string { return p.ID })
	require.NoError(t, err)
	parking, err := jsonstore.Open[domain.ParkingRecord](filepath.Join(dir, "parking.json"),
		func(r domain.ParkingRecord) string { return r.ID })
	require.NoError(t, err)
	birds, err := jsonstore.Open[domain.Bird](filepath.Join(dir, "birds.json"),
		func(b domain.Bird) string { return b.Name })
	require.NoError(t, err)

	cfg := config.LoadConfig("")
	cfg.Data.Dir = dir
	return NewServer(cfg, products, parking, birds)
}

func doJSON(s *Server, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func TestListProductsEmptyStore(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(s, http.MethodGet, "/api/products", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestCreateAndListProducts(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(s, http.MethodPost, "/api/products",
		`{"type":"food","name":"milk","acquisitionPrice":1200,"expirationDate":"2026-09-15"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var created struct {
		Success bool           `json:"success"`
		Product domain.Product `json:"product"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.True(t, created.Success)
	assert.NotEmpty(t, created.Product.ID)
	assert.Equal(t, domain.CategoryFood, created.Product.Category)
	require.NotNil(t, created.Product.ExpirationDate)

	rec = doJSON(s, http.MethodGet, "/api/products", "")
	var listed []domain.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, created.Product.ID, listed[0].ID)
}

func TestCreateProductValidation(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(s, http.MethodPost, "/api/products", `{"type":"food"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(s, http.MethodPost, "/api/products", `{"type":"gadget","name":"x"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(s, http.MethodPost, "/api/products",
		`{"type":"clothing","name":"shirt","acquisitionPrice":-5}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteProduct(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(s, http.MethodPost, "/api/products",
		`{"type":"clothing","id":"c1","name":"shirt","acquisitionPrice":100}`)
	require.Equal(t, http.StatusOK, rec.Code)

	// id query parameter is mandatory
	rec = doJSON(s, http.MethodDelete, "/api/products", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(s, http.MethodDelete, "/api/products?id=c1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(s, http.MethodGet, "/api/products", "")
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestExportProductsCSV(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(s, http.MethodPost, "/api/products",
		`{"type":"electronic","id":"e1","name":"laptop","acquisitionPrice":1000,"warrantyMonths":24}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(s, http.MethodGet, "/api/products/export", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, rec.Body.String(), "final_price")
	assert.Contains(t, rec.Body.String(), "1499")
}

func TestParkingLifecycle(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(s, http.MethodPost, "/api/parking",
		`{"id":"r1","vehiclePlate":"ABC-123","entryTime":"2026-08-01T08:00:00Z","vehicleType":"truck","exitTime":null,"feeCharged":null}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(s, http.MethodGet, "/api/parking/active", "")
	var active []domain.ParkingRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &active))
	require.Len(t, active, 1)

	rec = doJSON(s, http.MethodPut, "/api/parking",
		`{"id":"r1","vehiclePlate":"ABC-123","entryTime":"2026-08-01T08:00:00Z","exitTime":"2026-08-01T11:00:00Z","vehicleType":"truck","feeCharged":45}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(s, http.MethodGet, "/api/parking/active", "")
	assert.JSONEq(t, "[]", rec.Body.String())

	rec = doJSON(s, http.MethodGet, "/api/parking", "")
	var all []domain.ParkingRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	require.Len(t, all, 1)
	require.NotNil(t, all[0].FeeCharged)
	assert.Equal(t, 45.0, *all[0].FeeCharged)
}

func TestUpdateParkingRecordNotFound(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(s, http.MethodPut, "/api/parking",
		`{"id":"missing","vehiclePlate":"ABC-123","entryTime":"2026-08-01T08:00:00Z","vehicleType":"car"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var rsp struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rsp))
	assert.False(t, rsp.Success)
	assert.NotEmpty(t, rsp.Error)
}

func TestBirdsLifecycle(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(s, http.MethodGet, "/api/birds", "")
	assert.JSONEq(t, "[]", rec.Body.String())

	rec = doJSON(s, http.MethodPost, "/api/birds",
		`{"name":"Pika","species":"Penguin","capabilities":{"swim":{"description":"Pika darts underwater","speed":50}}}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(s, http.MethodGet, "/api/birds", "")
	var birds []domain.Bird
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &birds))
	require.Len(t, birds, 1)
	assert.True(t, birds[0].Can(domain.CapSwim))
	assert.False(t, birds[0].Can(domain.CapFly))

	// DELETE clears the whole collection
	rec = doJSON(s, http.MethodDelete, "/api/birds", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(s, http.MethodGet, "/api/birds", "")
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestCreateParkingRecordFillsDefaults(t *testing.T) {
	s := newTestServer(t)

	before := time.Now()
	rec := doJSON(s, http.MethodPost, "/api/parking",
		`{"vehiclePlate":"XYZ-999","vehicleType":"car"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var created struct {
		Record domain.ParkingRecord `json:"record"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.Record.ID)
	assert.False(t, created.Record.EntryTime.Before(before.Add(-time.Second)))
}
