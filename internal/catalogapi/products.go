package catalogapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/gocarina/gocsv"
	"github.com/labstack/echo/v4"
	"github.com/talkincode/catalogd/internal/domain"
	"github.com/talkincode/catalogd/internal/pricing"
	"github.com/talkincode/catalogd/pkg/common"
)

type productPayload struct {
	Type             string  `json:"type"`
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	AcquisitionPrice float64 `json:"acquisitionPrice"`
	ExpirationDate   string  `json:"expirationDate"`
	WarrantyMonths   int     `json:"warrantyMonths"`
	Brand            string  `json:"brand"`
	Size             string  `json:"size"`
	Material         string  `json:"material"`
}

func (s *Server) registerProductRoutes() {
	s.echo.GET("/api/products", s.listProducts)
	s.echo.GET("/api/products/export", s.exportProducts)
	s.echo.POST("/api/products", s.createProduct)
	s.echo.DELETE("/api/products", s.deleteProduct)
}

func (s *Server) listProducts(c echo.Context) error {
	return c.JSON(http.StatusOK, s.products.ReadAll())
}

func (s *Server) createProduct(c echo.Context) error {
	var payload productPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "unable to parse product")
	}
	payload.Name = strings.TrimSpace(payload.Name)
	if payload.Name == "" {
		return fail(c, http.StatusBadRequest, "name is required")
	}
	if payload.AcquisitionPrice < 0 {
		return fail(c, http.StatusBadRequest, "acquisition price must be >= 0")
	}
	if payload.ID == "" {
		payload.ID = common.UUID()
	}

	var product domain.Product
	switch payload.Type {
	case domain.KindFood:
		var expiration *time.Time
		if payload.ExpirationDate != "" {
			t, err := dateparse.ParseAny(payload.ExpirationDate)
			if err != nil {
				return fail(c, http.StatusBadRequest, "invalid expiration date")
			}
			expiration = &t
		}
		product = domain.NewFoodProduct(payload.ID, payload.Name, payload.AcquisitionPrice, expiration)
	case domain.KindElectronic:
		product = domain.NewElectronicProduct(payload.ID, payload.Name, payload.AcquisitionPrice,
			payload.WarrantyMonths, payload.Brand)
	case domain.KindClothing:
		product = domain.NewClothingProduct(payload.ID, payload.Name, payload.AcquisitionPrice,
			payload.Size, payload.Material)
	default:
		return fail(c, http.StatusBadRequest, "type must be food, electronic or clothing")
	}

	if err := s.products.Append(product); err != nil {
		return fail(c, http.StatusInternalServerError, "failed to save product")
	}
	return success(c, "product", product)
}

func (s *Server) deleteProduct(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return fail(c, http.StatusBadRequest, "id is required")
	}
	if err := s.products.Remove(id); err != nil {
		return fail(c, http.StatusInternalServerError, "failed to delete product")
	}
	return success(c, "", nil)
}

type productCSVRow struct {
	ID               string  `csv:"id"`
	Type             string  `csv:"type"`
	Name             string  `csv:"name"`
	Category         string  `csv:"category"`
	AcquisitionPrice float64 `csv:"acquisition_price"`
	FinalPrice       float64 `csv:"final_price"`
}

// exportProducts dumps the catalog as CSV, including the computed sale
// price per record.
func (s *Server) exportProducts(c echo.Context) error {
	now := time.Now()
	items := s.products.ReadAll()
	rows := make([]productCSVRow, 0, len(items))
	for _, p := range items {
		rows = append(rows, productCSVRow{
			ID:               p.ID,
			Type:             p.Kind,
			Name:             p.Name,
			Category:         p.Category,
			AcquisitionPrice: p.AcquisitionPrice,
			FinalPrice:       pricing.FinalPrice(p, now),
		})
	}
	data, err := gocsv.MarshalString(&rows)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "failed to export products")
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="products.csv"`)
	return c.Blob(http.StatusOK, "text/csv", []byte(data))
}
