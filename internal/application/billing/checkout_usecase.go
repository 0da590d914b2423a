// Package billing implements point-of-sale checkout: cart validation,
// catalog-priced totals, the credit limit gate and invoice commitment.
package billing

import (
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/eesaa/retail-suite/internal/application/dto"
	"github.com/eesaa/retail-suite/internal/domain"
	"github.com/eesaa/retail-suite/internal/domain/entity"
	"github.com/eesaa/retail-suite/internal/domain/policy"
	"github.com/eesaa/retail-suite/internal/state"
	"github.com/eesaa/retail-suite/pkg/logger"
	"github.com/eesaa/retail-suite/pkg/money"
)

var hundred = decimal.NewFromInt(100)

// UseCase validates carts and commits sales.
type UseCase struct {
	store *state.Store
	log   *logger.Logger
}

// NewUseCase builds the checkout use case.
func NewUseCase(store *state.Store, log *logger.Logger) *UseCase {
	return &UseCase{store: store, log: log}
}

// Checkout validates the cart and, if every check passes, commits the sale
// in a single state mutation. Line prices come from the catalog; the client
// only sends product ids and quantities.
//
// A CREDIT sale that leaves the customer past their limit needs Override
// unless the acting role bypasses the gate.
func (uc *UseCase) Checkout(actor dto.Actor, in dto.CheckoutRequest) (*entity.Invoice, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}
	if in.CustomerID == "" {
		return nil, domain.ErrNoCustomer
	}
	if !entity.ValidPaymentType(in.PaymentType) {
		return nil, domain.ErrInvalidInput
	}

	customer, ok := uc.store.CustomerByID(in.CustomerID)
	if !ok {
		return nil, domain.ErrNoCustomer
	}

	branchID := in.BranchID
	if branchID == "" {
		branchID = actor.BranchID
	}
	if branchID == "" {
		branchID = entity.HubBranchID
	}
	if _, ok := uc.store.BranchByID(branchID); !ok {
		return nil, domain.ErrInvalidInput
	}

	// Price every line from the catalog and verify availability at the
	// selling branch before anything is committed.
	items := make([]entity.InvoiceItem, 0, len(in.Items))
	subtotal := decimal.Zero
	totalTax := decimal.Zero
	for _, line := range in.Items {
		if line.ProductID == "" || line.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		product, ok := uc.store.ProductByID(line.ProductID)
		if !ok {
			return nil, domain.ErrNotFound
		}
		if product.StockAt(branchID) < line.Quantity {
			return nil, fmt.Errorf("%w: %s has %d at %s, need %d",
				domain.ErrInsufficientStock, product.Name, product.StockAt(branchID), branchID, line.Quantity)
		}

		qty := decimal.NewFromInt(int64(line.Quantity))
		lineNet := qty.Mul(product.Rate)
		lineTax := lineNet.Mul(product.TaxPercent).Div(hundred)
		items = append(items, entity.InvoiceItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    line.Quantity,
			Rate:        product.Rate,
			Tax:         lineTax,
			Total:       lineNet.Add(lineTax),
		})
		subtotal = subtotal.Add(lineNet)
		totalTax = totalTax.Add(lineTax)
	}
	grandTotal := subtotal.Add(totalTax)

	if in.PaymentType == entity.PaymentTypeCredit &&
		(customer.OverLimit() || customer.WouldExceedLimit(grandTotal)) &&
		!policy.CanBypassCreditLimit(entity.Role(actor.Role)) {
		if !in.Override {
			return nil, domain.ErrCreditLimitExceeded
		}
		uc.log.Warn().
			Str("customer_id", customer.ID).
			Str("user", actor.Name).
			Str("amount", grandTotal.String()).
			Msg("credit limit override")
	}

	now := time.Now()
	inv := entity.Invoice{
		ID:                uuid.NewString(),
		InvoiceNumber:     entity.DocumentNumber("EESAA", branchID, now),
		Date:              now,
		BranchID:          branchID,
		CustomerID:        customer.ID,
		CustomerName:      customer.Name,
		Items:             items,
		Subtotal:          subtotal,
		TotalTax:          totalTax,
		GrandTotal:        grandTotal,
		PaymentType:       in.PaymentType,
		OutstandingAtTime: customer.Outstanding,
		IsSynced:          true,
	}
	uc.store.RecordInvoice(inv, actor.Name)

	uc.log.Info().
		Str("invoice", inv.InvoiceNumber).
		Str("branch", branchID).
		Str("payment_type", in.PaymentType).
		Str("total", grandTotal.String()).
		Msg("sale committed")
	return &inv, nil
}

// ListInvoices returns the transaction log, newest first.
func (uc *UseCase) ListInvoices() []entity.Invoice {
	return uc.store.Invoices()
}

// GetInvoice looks up one invoice.
func (uc *UseCase) GetInvoice(id string) (*entity.Invoice, error) {
	inv, ok := uc.store.InvoiceByID(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &inv, nil
}

// ShareInvoice builds the WhatsApp share text and deep link for an invoice.
func (uc *UseCase) ShareInvoice(id string) (*dto.ShareTextResponse, error) {
	inv, ok := uc.store.InvoiceByID(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	text := fmt.Sprintf("EESAA INVOICE\nNo: %s\nDate: %s\nCustomer: %s\nAmount: %s\nThank you!",
		inv.InvoiceNumber, inv.Date.Format("02/01/2006"), inv.CustomerName, money.Rupees(inv.GrandTotal))
	return &dto.ShareTextResponse{
		Text: text,
		Link: "https://wa.me/?text=" + url.QueryEscape(text),
	}, nil
}
