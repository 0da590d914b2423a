// Package state owns the application's seven record collections and every
// mutation that touches them. It replaces ambient process-wide state with an
// explicit container wired to a persistence port, so the bookkeeping rules
// can be unit tested without a real storage backend.
//
// Every mutation runs as a single synchronous step: update the in-memory
// collections, persist each changed collection (whole-collection overwrite),
// and append one audit entry. There is no cross-collection transaction; a
// crash between two related writes can leave collections inconsistent, which
// is an accepted risk of the storage model.
package state

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/eesaa/retail-suite/internal/application/ports"
	"github.com/eesaa/retail-suite/internal/domain/entity"
	"github.com/eesaa/retail-suite/pkg/logger"
)

// Collection keys in the durable key-value store. A missing key means an
// empty collection, except products and customers which fall back to the
// built-in seed data.
const (
	KeyInvoices       = "eesaa_invoices"
	KeyPayments       = "eesaa_payments"
	KeyProducts       = "eesaa_products"
	KeyCustomers      = "eesaa_customers"
	KeyStockRequests  = "eesaa_stock_requests"
	KeyStockMovements = "eesaa_stock_movements"
	KeyAuditLogs      = "eesaa_audit_logs"
)

// Store is the state container. The mutex serializes mutations, preserving
// the one-action-at-a-time model the bookkeeping rules assume.
type Store struct {
	mu  sync.Mutex
	kv  ports.KV
	log *logger.Logger

	branches []entity.Branch // fixed reference data, never persisted

	invoices       []entity.Invoice
	payments       []entity.Payment
	products       []entity.Product
	customers      []entity.Customer
	stockRequests  []entity.StockRequest
	stockMovements []entity.StockMovement
	auditLogs      []entity.AuditLog
}

// New loads all collections from the persistence port, seeding products and
// customers on first run.
func New(kv ports.KV, log *logger.Logger) (*Store, error) {
	s := &Store{kv: kv, log: log, branches: Branches()}

	if err := loadCollection(kv, KeyInvoices, &s.invoices); err != nil {
		return nil, err
	}
	if err := loadCollection(kv, KeyPayments, &s.payments); err != nil {
		return nil, err
	}
	if err := loadCollection(kv, KeyStockRequests, &s.stockRequests); err != nil {
		return nil, err
	}
	if err := loadCollection(kv, KeyStockMovements, &s.stockMovements); err != nil {
		return nil, err
	}
	if err := loadCollection(kv, KeyAuditLogs, &s.auditLogs); err != nil {
		return nil, err
	}

	// Products and customers seed on first run and persist the seed so later
	// loads see the same records.
	seededProducts, err := loadOrSeed(kv, KeyProducts, &s.products, SeedProducts)
	if err != nil {
		return nil, err
	}
	seededCustomers, err := loadOrSeed(kv, KeyCustomers, &s.customers, SeedCustomers)
	if err != nil {
		return nil, err
	}
	if seededProducts || seededCustomers {
		log.Info().
			Bool("products", seededProducts).
			Bool("customers", seededCustomers).
			Msg("first run: seeded built-in data")
	}

	return s, nil
}

func loadCollection[T any](kv ports.KV, key string, dst *[]T) error {
	data, ok, err := kv.Load(key)
	if err != nil {
		return fmt.Errorf("state: load %s: %w", key, err)
	}
	if !ok {
		*dst = nil
		return nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("state: decode %s: %w", key, err)
	}
	return nil
}

// loadOrSeed loads a collection, falling back to seed() when the key has
// never been written. Reports whether the seed was used.
func loadOrSeed[T any](kv ports.KV, key string, dst *[]T, seed func() []T) (bool, error) {
	data, ok, err := kv.Load(key)
	if err != nil {
		return false, fmt.Errorf("state: load %s: %w", key, err)
	}
	if ok {
		if err := json.Unmarshal(data, dst); err != nil {
			return false, fmt.Errorf("state: decode %s: %w", key, err)
		}
		return false, nil
	}
	*dst = seed()
	raw, err := json.Marshal(*dst)
	if err != nil {
		return false, fmt.Errorf("state: encode seed %s: %w", key, err)
	}
	if err := kv.Save(key, raw); err != nil {
		return false, fmt.Errorf("state: save seed %s: %w", key, err)
	}
	return true, nil
}

// persist writes one collection back to durable storage. Writes are best
// effort: a failure is logged, not propagated, and never retried.
func (s *Store) persist(key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		s.log.Error().Err(err).Str("collection", key).Msg("encode collection")
		return
	}
	if err := s.kv.Save(key, data); err != nil {
		s.log.Warn().Err(err).Str("collection", key).Msg("persist collection")
	}
}

// ── Snapshot accessors ────────────────────────────────────────────────────────
//
// Accessors return copies so callers can never mutate container state behind
// the store's back.

// Branches returns the fixed branch reference data.
func (s *Store) Branches() []entity.Branch {
	out := make([]entity.Branch, len(s.branches))
	copy(out, s.branches)
	return out
}

// BranchByID looks up a branch in the fixed set.
func (s *Store) BranchByID(id string) (entity.Branch, bool) {
	for _, b := range s.branches {
		if b.ID == id {
			return b, true
		}
	}
	return entity.Branch{}, false
}

// Invoices returns the transaction log, newest first.
func (s *Store) Invoices() []entity.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Invoice, len(s.invoices))
	copy(out, s.invoices)
	return out
}

// InvoiceByID looks up an invoice.
func (s *Store) InvoiceByID(id string) (entity.Invoice, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, inv := range s.invoices {
		if inv.ID == id {
			return inv, true
		}
	}
	return entity.Invoice{}, false
}

// Payments returns collected payments, newest first.
func (s *Store) Payments() []entity.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Payment, len(s.payments))
	copy(out, s.payments)
	return out
}

// PaymentByID looks up a payment receipt.
func (s *Store) PaymentByID(id string) (entity.Payment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.payments {
		if p.ID == id {
			return p, true
		}
	}
	return entity.Payment{}, false
}

// Products returns the catalog.
func (s *Store) Products() []entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Product, len(s.products))
	for i, p := range s.products {
		out[i] = cloneProduct(p)
	}
	return out
}

// ProductByID looks up a product.
func (s *Store) ProductByID(id string) (entity.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.productByIDLocked(id)
}

func (s *Store) productByIDLocked(id string) (entity.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return cloneProduct(p), true
		}
	}
	return entity.Product{}, false
}

// Customers returns the dealer ledger records.
func (s *Store) Customers() []entity.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Customer, len(s.customers))
	copy(out, s.customers)
	return out
}

// CustomerByID looks up a customer.
func (s *Store) CustomerByID(id string) (entity.Customer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.customers {
		if c.ID == id {
			return c, true
		}
	}
	return entity.Customer{}, false
}

// StockRequests returns raised requests, newest first.
func (s *Store) StockRequests() []entity.StockRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.StockRequest, len(s.stockRequests))
	copy(out, s.stockRequests)
	return out
}

// StockMovements returns completed transfers, newest first.
func (s *Store) StockMovements() []entity.StockMovement {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.StockMovement, len(s.stockMovements))
	copy(out, s.stockMovements)
	return out
}

// AuditLogs returns the audit trail, newest first.
func (s *Store) AuditLogs() []entity.AuditLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.AuditLog, len(s.auditLogs))
	copy(out, s.auditLogs)
	return out
}

func cloneProduct(p entity.Product) entity.Product {
	stock := make(map[string]int, len(p.StockCount))
	for k, v := range p.StockCount {
		stock[k] = v
	}
	p.StockCount = stock
	return p
}
