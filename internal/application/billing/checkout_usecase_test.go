package billing_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eesaa/retail-suite/internal/application/billing"
	"github.com/eesaa/retail-suite/internal/application/dto"
	"github.com/eesaa/retail-suite/internal/domain"
	"github.com/eesaa/retail-suite/internal/domain/entity"
	"github.com/eesaa/retail-suite/internal/infrastructure/storage"
	"github.com/eesaa/retail-suite/internal/state"
	"github.com/eesaa/retail-suite/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

var (
	factoryAdmin = dto.Actor{UserID: "1", Name: "Rajesh Shah", Role: string(entity.RoleFactoryAdmin), BranchID: entity.HubBranchID}
	branchAdmin  = dto.Actor{UserID: "2", Name: "Amit Patel", Role: string(entity.RoleBranchAdmin), BranchID: "B1"}
	salesStaff   = dto.Actor{UserID: "3", Name: "Suresh Kumar", Role: string(entity.RoleSalesStaff), BranchID: "B1"}
)

func newCheckoutUC(t *testing.T) (*billing.UseCase, *state.Store) {
	t.Helper()
	store, err := state.New(storage.NewMemoryKV(), logger.Nop())
	require.NoError(t, err)
	return billing.NewUseCase(store, logger.Nop()), store
}

func cart(productID string, qty int) []dto.CartLineRequest {
	return []dto.CartLineRequest{{ProductID: productID, Quantity: qty}}
}

// ──────────────────────────────────────────────────────────────────────────────
// Cart validation
// ──────────────────────────────────────────────────────────────────────────────

func TestCheckout_EmptyCart(t *testing.T) {
	uc, _ := newCheckoutUC(t)

	_, err := uc.Checkout(salesStaff, dto.CheckoutRequest{
		CustomerID: "C1", PaymentType: entity.PaymentTypeCash,
	})
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestCheckout_NoCustomer(t *testing.T) {
	uc, _ := newCheckoutUC(t)

	_, err := uc.Checkout(salesStaff, dto.CheckoutRequest{
		Items: cart("P1", 1), PaymentType: entity.PaymentTypeCash,
	})
	assert.ErrorIs(t, err, domain.ErrNoCustomer, "empty customer id")

	_, err = uc.Checkout(salesStaff, dto.CheckoutRequest{
		CustomerID: "C99", Items: cart("P1", 1), PaymentType: entity.PaymentTypeCash,
	})
	assert.ErrorIs(t, err, domain.ErrNoCustomer, "unknown customer id")
}

func TestCheckout_InvalidPaymentType(t *testing.T) {
	uc, _ := newCheckoutUC(t)

	_, err := uc.Checkout(salesStaff, dto.CheckoutRequest{
		CustomerID: "C1", Items: cart("P1", 1), PaymentType: "CHEQUE",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCheckout_UnknownProduct(t *testing.T) {
	uc, _ := newCheckoutUC(t)

	_, err := uc.Checkout(salesStaff, dto.CheckoutRequest{
		CustomerID: "C1", Items: cart("P99", 1), PaymentType: entity.PaymentTypeCash,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCheckout_BadLine(t *testing.T) {
	uc, _ := newCheckoutUC(t)

	_, err := uc.Checkout(salesStaff, dto.CheckoutRequest{
		CustomerID: "C1", Items: cart("P1", 0), PaymentType: entity.PaymentTypeCash,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "zero quantity")

	_, err = uc.Checkout(salesStaff, dto.CheckoutRequest{
		CustomerID: "C1", Items: cart("", 1), PaymentType: entity.PaymentTypeCash,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "missing product id")
}

func TestCheckout_InsufficientStock(t *testing.T) {
	uc, store := newCheckoutUC(t)

	// B1 holds 5 units of P1; asking for 6 must fail before anything commits.
	_, err := uc.Checkout(salesStaff, dto.CheckoutRequest{
		CustomerID: "C1", Items: cart("P1", 6), PaymentType: entity.PaymentTypeCash,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.True(t, strings.Contains(err.Error(), "B1"), "error names the selling branch: %v", err)

	p, _ := store.ProductByID("P1")
	assert.Equal(t, 5, p.StockAt("B1"), "rejected sale leaves stock untouched")
	assert.Empty(t, store.Invoices())
}

func TestCheckout_UnknownBranch(t *testing.T) {
	uc, _ := newCheckoutUC(t)

	_, err := uc.Checkout(salesStaff, dto.CheckoutRequest{
		CustomerID: "C1", BranchID: "B9", Items: cart("P1", 1), PaymentType: entity.PaymentTypeCash,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Committed sales
// ──────────────────────────────────────────────────────────────────────────────

func TestCheckout_CashSaleTotals(t *testing.T) {
	uc, store := newCheckoutUC(t)

	inv, err := uc.Checkout(salesStaff, dto.CheckoutRequest{
		CustomerID: "C1", Items: cart("P1", 1), PaymentType: entity.PaymentTypeCash,
	})
	require.NoError(t, err)

	// P1 is 5,200 at 18% GST.
	assert.True(t, decimal.NewFromInt(5200).Equal(inv.Subtotal), "subtotal %s", inv.Subtotal)
	assert.True(t, decimal.NewFromInt(936).Equal(inv.TotalTax), "tax %s", inv.TotalTax)
	assert.True(t, decimal.NewFromInt(6136).Equal(inv.GrandTotal), "grand total %s", inv.GrandTotal)
	assert.Equal(t, "B1", inv.BranchID, "defaults to the seller's branch")
	assert.True(t, strings.HasPrefix(inv.InvoiceNumber, "EESAA-B1-"), "number %s", inv.InvoiceNumber)
	assert.True(t, inv.IsSynced)

	p, _ := store.ProductByID("P1")
	assert.Equal(t, 4, p.StockAt("B1"))

	c, _ := store.CustomerByID("C1")
	assert.True(t, decimal.NewFromInt(15400).Equal(c.Outstanding), "cash sale never hits the ledger")
}

func TestCheckout_CatalogPricesWin(t *testing.T) {
	uc, _ := newCheckoutUC(t)

	// Two lines; the multi-line sum uses catalog rates only.
	inv, err := uc.Checkout(factoryAdmin, dto.CheckoutRequest{
		CustomerID: "C2",
		Items: []dto.CartLineRequest{
			{ProductID: "P1", Quantity: 2},
			{ProductID: "P3", Quantity: 1},
		},
		PaymentType: entity.PaymentTypeUPI,
	})
	require.NoError(t, err)

	// 2*5200 + 3200 = 13,600 net; 18% of that is 2,448.
	assert.True(t, decimal.NewFromInt(13600).Equal(inv.Subtotal), "subtotal %s", inv.Subtotal)
	assert.True(t, decimal.NewFromInt(2448).Equal(inv.TotalTax), "tax %s", inv.TotalTax)
	assert.True(t, decimal.NewFromInt(16048).Equal(inv.GrandTotal), "grand total %s", inv.GrandTotal)
	assert.Equal(t, entity.HubBranchID, inv.BranchID, "hub user with no branch override sells from the hub")
	require.Len(t, inv.Items, 2)
	assert.Equal(t, "EESAA TT-Series (Commercial)", inv.Items[0].ProductName)
}

func TestCheckout_RecordsOutstandingAtTime(t *testing.T) {
	uc, _ := newCheckoutUC(t)

	inv, err := uc.Checkout(salesStaff, dto.CheckoutRequest{
		CustomerID: "C1", Items: cart("P1", 1), PaymentType: entity.PaymentTypeCredit,
	})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(15400).Equal(inv.OutstandingAtTime),
		"snapshot taken before the sale posts")
}

// ──────────────────────────────────────────────────────────────────────────────
// Credit limit gate
// ──────────────────────────────────────────────────────────────────────────────

func TestCheckout_CreditLimitBlocks(t *testing.T) {
	uc, store := newCheckoutUC(t)

	// C1: outstanding 15,400, limit 50,000. Two platform scales on credit
	// come to 43,660 and would push the balance past the limit.
	_, err := uc.Checkout(branchAdmin, dto.CheckoutRequest{
		CustomerID: "C1", Items: cart("P2", 2), BranchID: "B3",
		PaymentType: entity.PaymentTypeCredit,
	})
	require.ErrorIs(t, err, domain.ErrCreditLimitExceeded)
	assert.Empty(t, store.Invoices())
}

func TestCheckout_CreditLimitOverride(t *testing.T) {
	uc, store := newCheckoutUC(t)

	inv, err := uc.Checkout(branchAdmin, dto.CheckoutRequest{
		CustomerID: "C1", Items: cart("P2", 2), BranchID: "B3",
		PaymentType: entity.PaymentTypeCredit, Override: true,
	})
	require.NoError(t, err)

	c, _ := store.CustomerByID("C1")
	want := decimal.NewFromInt(15400).Add(inv.GrandTotal)
	assert.True(t, want.Equal(c.Outstanding), "outstanding %s", c.Outstanding)
}

func TestCheckout_FactoryAdminBypassesGate(t *testing.T) {
	uc, _ := newCheckoutUC(t)

	_, err := uc.Checkout(factoryAdmin, dto.CheckoutRequest{
		CustomerID: "C1", Items: cart("P2", 2), BranchID: "B3",
		PaymentType: entity.PaymentTypeCredit,
	})
	assert.NoError(t, err, "the hub role needs no override")
}

func TestCheckout_CashIgnoresCreditLimit(t *testing.T) {
	uc, _ := newCheckoutUC(t)

	// Same amount in cash sails through regardless of the ledger.
	_, err := uc.Checkout(branchAdmin, dto.CheckoutRequest{
		CustomerID: "C1", Items: cart("P2", 2), BranchID: "B3",
		PaymentType: entity.PaymentTypeCash,
	})
	assert.NoError(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Lookup and sharing
// ──────────────────────────────────────────────────────────────────────────────

func TestGetInvoice(t *testing.T) {
	uc, _ := newCheckoutUC(t)

	inv, err := uc.Checkout(salesStaff, dto.CheckoutRequest{
		CustomerID: "C1", Items: cart("P1", 1), PaymentType: entity.PaymentTypeCash,
	})
	require.NoError(t, err)

	got, err := uc.GetInvoice(inv.ID)
	require.NoError(t, err)
	assert.Equal(t, inv.InvoiceNumber, got.InvoiceNumber)

	_, err = uc.GetInvoice("missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestShareInvoice(t *testing.T) {
	uc, _ := newCheckoutUC(t)

	inv, err := uc.Checkout(salesStaff, dto.CheckoutRequest{
		CustomerID: "C1", Items: cart("P1", 1), PaymentType: entity.PaymentTypeCash,
	})
	require.NoError(t, err)

	share, err := uc.ShareInvoice(inv.ID)
	require.NoError(t, err)
	assert.Contains(t, share.Text, "EESAA INVOICE")
	assert.Contains(t, share.Text, inv.InvoiceNumber)
	assert.Contains(t, share.Text, "₹6,136")
	assert.Contains(t, share.Text, "Radhe Electronics")
	assert.True(t, strings.HasPrefix(share.Link, "https://wa.me/?text="), "link %s", share.Link)
	assert.NotContains(t, share.Link, "\n", "link must be fully escaped")

	_, err = uc.ShareInvoice("missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
