// Package ledger manages dealer records and their running credit ledgers:
// registration, profile updates, payment collection, chronological ledgers
// and monthly statements with share texts.
package ledger

import (
	"fmt"
	"net/url"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/eesaa/retail-suite/internal/application/dto"
	"github.com/eesaa/retail-suite/internal/domain"
	"github.com/eesaa/retail-suite/internal/domain/entity"
	"github.com/eesaa/retail-suite/internal/state"
	"github.com/eesaa/retail-suite/pkg/logger"
	"github.com/eesaa/retail-suite/pkg/money"
)

const defaultCreditLimit = 10000

// UseCase dealer ledger operations.
type UseCase struct {
	store *state.Store
	log   *logger.Logger
}

// NewUseCase builds the ledger use case.
func NewUseCase(store *state.Store, log *logger.Logger) *UseCase {
	return &UseCase{store: store, log: log}
}

// ListCustomers returns every dealer record.
func (uc *UseCase) ListCustomers() []entity.Customer {
	return uc.store.Customers()
}

// GetCustomer looks up one dealer.
func (uc *UseCase) GetCustomer(id string) (*entity.Customer, error) {
	c, ok := uc.store.CustomerByID(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

// CreateCustomer registers a dealer. Name, mobile and address are required;
// the credit limit defaults when not positive. New dealers start with a zero
// outstanding balance.
func (uc *UseCase) CreateCustomer(actor dto.Actor, in dto.CreateCustomerRequest) (*entity.Customer, error) {
	if in.Name == "" || in.Mobile == "" || in.Address == "" {
		return nil, domain.ErrInvalidInput
	}
	limit := in.CreditLimit
	if !limit.IsPositive() {
		limit = decimal.NewFromInt(defaultCreditLimit)
	}
	c := entity.Customer{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Mobile:      in.Mobile,
		Address:     in.Address,
		GST:         in.GST,
		Outstanding: decimal.Zero,
		CreditLimit: limit,
	}
	uc.store.AddCustomer(c, actor.Name)
	return &c, nil
}

// UpdateCustomer replaces a dealer's profile. The stored outstanding balance
// is untouched regardless of the request body.
func (uc *UseCase) UpdateCustomer(actor dto.Actor, id string, in dto.UpdateCustomerRequest) (*entity.Customer, error) {
	if in.Name == "" || in.Mobile == "" || in.Address == "" {
		return nil, domain.ErrInvalidInput
	}
	limit := in.CreditLimit
	if !limit.IsPositive() {
		limit = decimal.NewFromInt(defaultCreditLimit)
	}
	c := entity.Customer{
		ID:          id,
		Name:        in.Name,
		Mobile:      in.Mobile,
		Address:     in.Address,
		GST:         in.GST,
		CreditLimit: limit,
	}
	if !uc.store.UpdateCustomer(c, actor.Name) {
		return nil, domain.ErrNotFound
	}
	updated, _ := uc.store.CustomerByID(id)
	return &updated, nil
}

// CollectPayment records money received against a dealer's outstanding
// balance. The balance drops by the amount, clamped at zero.
func (uc *UseCase) CollectPayment(actor dto.Actor, in dto.CollectPaymentRequest) (*entity.Payment, error) {
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidPaymentMethod(in.PaymentMethod) {
		return nil, domain.ErrInvalidInput
	}
	if _, ok := uc.store.CustomerByID(in.CustomerID); !ok {
		return nil, domain.ErrNotFound
	}

	branchID := actor.BranchID
	if branchID == "" {
		branchID = entity.HubBranchID
	}
	now := time.Now()
	p := entity.Payment{
		ID:            uuid.NewString(),
		ReceiptNumber: entity.DocumentNumber("RCP", branchID, now),
		Date:          now,
		CustomerID:    in.CustomerID,
		Amount:        in.Amount,
		PaymentMethod: in.PaymentMethod,
		Notes:         in.Notes,
		BranchID:      branchID,
	}
	uc.store.RecordPayment(p, actor.Name)

	uc.log.Info().
		Str("receipt", p.ReceiptNumber).
		Str("customer_id", p.CustomerID).
		Str("amount", p.Amount.String()).
		Msg("payment collected")
	return &p, nil
}

// ListPayments returns collected payments, newest first.
func (uc *UseCase) ListPayments() []entity.Payment {
	return uc.store.Payments()
}

// Ledger returns a dealer's chronological ledger, newest first. Debit rows
// are credit invoices; cash, UPI and bank sales never touch the ledger.
// Zero from/to bounds mean unbounded.
func (uc *UseCase) Ledger(customerID string, from, to time.Time) ([]dto.LedgerEntry, error) {
	if _, ok := uc.store.CustomerByID(customerID); !ok {
		return nil, domain.ErrNotFound
	}
	entries := uc.entriesFor(customerID, func(at time.Time) bool {
		if !from.IsZero() && at.Before(from) {
			return false
		}
		if !to.IsZero() && at.After(to) {
			return false
		}
		return true
	})
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].at.After(entries[j].at) })
	return project(entries), nil
}

// Statement builds a dealer's activity for one calendar month (YYYY-MM),
// oldest first, with totals and the ready-to-send share text. The closing
// figure is the dealer's live outstanding balance, not a month-end cutoff.
func (uc *UseCase) Statement(customerID, month string) (*dto.StatementResponse, error) {
	if _, err := time.Parse("2006-01", month); err != nil {
		return nil, domain.ErrInvalidInput
	}
	customer, ok := uc.store.CustomerByID(customerID)
	if !ok {
		return nil, domain.ErrNotFound
	}

	entries := uc.entriesFor(customerID, func(at time.Time) bool {
		return at.Format("2006-01") == month
	})
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].at.Before(entries[j].at) })

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, e := range entries {
		totalDebit = totalDebit.Add(e.row.Debit)
		totalCredit = totalCredit.Add(e.row.Credit)
	}

	text := fmt.Sprintf("EESAA Monthly Statement\nCustomer: %s\nMonth: %s\nTotal Debit: %s\nTotal Credit: %s\nClosing Balance: %s\nThank you!",
		customer.Name, month,
		money.Rupees(totalDebit), money.Rupees(totalCredit), money.Rupees(customer.Outstanding))

	return &dto.StatementResponse{
		CustomerID:   customer.ID,
		CustomerName: customer.Name,
		Month:        month,
		Entries:      project(entries),
		TotalDebit:   totalDebit,
		TotalCredit:  totalCredit,
		Closing:      customer.Outstanding,
		ShareText:    text,
		ShareLink:    "https://wa.me/?text=" + url.QueryEscape(text),
	}, nil
}

type datedEntry struct {
	at  time.Time
	row dto.LedgerEntry
}

func (uc *UseCase) entriesFor(customerID string, keep func(time.Time) bool) []datedEntry {
	var entries []datedEntry
	for _, inv := range uc.store.Invoices() {
		if inv.CustomerID != customerID || !inv.IsCredit() || !keep(inv.Date) {
			continue
		}
		entries = append(entries, datedEntry{at: inv.Date, row: dto.LedgerEntry{
			Date:      inv.Date.Format("2006-01-02"),
			Type:      "INVOICE",
			Reference: inv.InvoiceNumber,
			Debit:     inv.GrandTotal,
			Credit:    decimal.Zero,
		}})
	}
	for _, p := range uc.store.Payments() {
		if p.CustomerID != customerID || !keep(p.Date) {
			continue
		}
		entries = append(entries, datedEntry{at: p.Date, row: dto.LedgerEntry{
			Date:      p.Date.Format("2006-01-02"),
			Type:      "PAYMENT",
			Reference: p.ReceiptNumber,
			Debit:     decimal.Zero,
			Credit:    p.Amount,
		}})
	}
	return entries
}

func project(entries []datedEntry) []dto.LedgerEntry {
	out := make([]dto.LedgerEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.row)
	}
	return out
}
