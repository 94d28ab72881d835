// Package service holds the catalog orchestration layer between the
// policies and the repositories.
package service

import (
	"time"

	"github.com/talkincode/catalogd/internal/domain"
	"github.com/talkincode/catalogd/internal/pricing"
)

// ProductRepository is the product data access contract.
type ProductRepository interface {
	GetAll() []domain.Product
	GetByID(id string) (domain.Product, bool)
	Add(p domain.Product)
	Remove(id string)
}

type ProductService struct {
	repo ProductRepository
}

func NewProductService(repo ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

func (s *ProductService) All() []domain.Product {
	return s.repo.GetAll()
}

func (s *ProductService) ByID(id string) (domain.Product, bool) {
	return s.repo.GetByID(id)
}

func (s *ProductService) Add(p domain.Product) {
	s.repo.Add(p)
}

func (s *ProductService) Remove(id string) {
	s.repo.Remove(id)
}

// TotalPrice sums the final sale prices of the identified products.
// Unknown ids are skipped.
func (s *ProductService) TotalPrice(ids []string, now time.Time) float64 {
	var total float64
	for _, id := range ids {
		if p, ok := s.repo.GetByID(id); ok {
			total += pricing.FinalPrice(p, now)
		}
	}
	return total
}

func (s *ProductService) ByCategory(category string) []domain.Product {
	all := s.repo.GetAll()
	out := make([]domain.Product, 0, len(all))
	for _, p := range all {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}
