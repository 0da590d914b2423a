package state

import (
	"fmt"

	"github.com/eesaa/retail-suite/internal/domain/entity"
	"github.com/eesaa/retail-suite/pkg/money"
)

// RecordInvoice commits a fully-validated sale in one step: the invoice is
// prepended to the transaction log, stock is consumed at the selling branch,
// and a credit sale raises the customer's outstanding. The use case has
// already validated the cart, so this mutation cannot fail.
func (s *Store) RecordInvoice(inv entity.Invoice, actor string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.invoices = append([]entity.Invoice{inv}, s.invoices...)
	s.persist(KeyInvoices, s.invoices)

	s.consumeStockOnSale(inv)

	if inv.IsCredit() {
		s.applyCreditSale(inv.CustomerID, inv.GrandTotal)
	}

	s.appendAudit(entity.AuditInvoiceGenerated,
		fmt.Sprintf("Inv #%s for %s", inv.InvoiceNumber, money.Rupees(inv.GrandTotal)), actor)
}

// RecordPayment commits a collection: the receipt is prepended to the
// payment log and the customer's outstanding drops by the amount (clamped
// at zero).
func (s *Store) RecordPayment(p entity.Payment, actor string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.payments = append([]entity.Payment{p}, s.payments...)
	s.persist(KeyPayments, s.payments)

	s.applyPayment(p.CustomerID, p.Amount)

	s.appendAudit(entity.AuditPaymentCollected,
		fmt.Sprintf("Receipt #%s for %s", p.ReceiptNumber, money.Rupees(p.Amount)), actor)
}
