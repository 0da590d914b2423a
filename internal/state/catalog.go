package state

import (
	"fmt"

	"github.com/eesaa/retail-suite/internal/domain/entity"
)

// AddProduct appends a validated catalog entry. Validation happens in the
// use case; the store only records.
func (s *Store) AddProduct(p entity.Product, actor string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = append(s.products, cloneProduct(p))
	s.persist(KeyProducts, s.products)
	s.appendAudit(entity.AuditProductAdded, fmt.Sprintf("Master created: %s", p.Name), actor)
}

// UpdateProduct replaces a catalog entry wholesale, including per-branch
// stock counts. Reports false when the id is unknown.
func (s *Store) UpdateProduct(p entity.Product, actor string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i] = cloneProduct(p)
			s.persist(KeyProducts, s.products)
			s.appendAudit(entity.AuditProductUpdated, fmt.Sprintf("Master modified: %s", p.Name), actor)
			return true
		}
	}
	return false
}

// RefillStock adds manufactured units to the hub's on-hand count. Reports
// false when the product is unknown.
func (s *Store) RefillStock(productID string, qty int, actor string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == productID {
			if s.products[i].StockCount == nil {
				s.products[i].StockCount = map[string]int{}
			}
			s.products[i].StockCount[entity.HubBranchID] += qty
			s.persist(KeyProducts, s.products)
			s.appendAudit(entity.AuditStockRefilled,
				fmt.Sprintf("Added %d units of %s to Factory.", qty, s.products[i].Name), actor)
			return true
		}
	}
	return false
}

// consumeStockOnSale deducts each invoice line from the selling branch.
// Quantities clamp at zero; an oversell silently drains the branch to zero
// rather than going negative. Caller must hold s.mu.
func (s *Store) consumeStockOnSale(inv entity.Invoice) {
	for _, item := range inv.Items {
		for i := range s.products {
			if s.products[i].ID != item.ProductID {
				continue
			}
			if s.products[i].StockCount == nil {
				s.products[i].StockCount = map[string]int{}
			}
			remaining := s.products[i].StockCount[inv.BranchID] - item.Quantity
			if remaining < 0 {
				remaining = 0
			}
			s.products[i].StockCount[inv.BranchID] = remaining
			break
		}
	}
	s.persist(KeyProducts, s.products)
}
