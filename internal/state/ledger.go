package state

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/eesaa/retail-suite/internal/domain/entity"
)

// AddCustomer registers a new dealer.
func (s *Store) AddCustomer(c entity.Customer, actor string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.customers = append(s.customers, c)
	s.persist(KeyCustomers, s.customers)
	s.appendAudit(entity.AuditCustomerAdded, fmt.Sprintf("New dealer registered: %s", c.Name), actor)
}

// UpdateCustomer replaces a dealer's profile fields. The stored outstanding
// balance is preserved; only billing and collections may move it. Reports
// false when the id is unknown.
func (s *Store) UpdateCustomer(c entity.Customer, actor string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.customers {
		if s.customers[i].ID == c.ID {
			c.Outstanding = s.customers[i].Outstanding
			s.customers[i] = c
			s.persist(KeyCustomers, s.customers)
			s.appendAudit(entity.AuditCustomerUpdated, fmt.Sprintf("Details changed for: %s", c.Name), actor)
			return true
		}
	}
	return false
}

// applyCreditSale raises the customer's outstanding by the billed amount.
// Caller must hold s.mu.
func (s *Store) applyCreditSale(customerID string, amount decimal.Decimal) {
	for i := range s.customers {
		if s.customers[i].ID == customerID {
			s.customers[i].Outstanding = s.customers[i].Outstanding.Add(amount)
			break
		}
	}
	s.persist(KeyCustomers, s.customers)
}

// applyPayment lowers the customer's outstanding, clamped at zero so an
// overpayment never produces a negative balance. Caller must hold s.mu.
func (s *Store) applyPayment(customerID string, amount decimal.Decimal) {
	for i := range s.customers {
		if s.customers[i].ID == customerID {
			next := s.customers[i].Outstanding.Sub(amount)
			if next.IsNegative() {
				next = decimal.Zero
			}
			s.customers[i].Outstanding = next
			break
		}
	}
	s.persist(KeyCustomers, s.customers)
}
