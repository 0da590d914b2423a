package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eesaa/retail-suite/internal/application/dto"
	"github.com/eesaa/retail-suite/internal/application/inventory"
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

func newInventoryUC(t *testing.T) (*inventory.UseCase, *state.Store) {
	t.Helper()
	store, err := state.New(storage.NewMemoryKV(), logger.Nop())
	require.NoError(t, err)
	return inventory.NewUseCase(store, logger.Nop()), store
}

func validProduct() dto.SaveProductRequest {
	return dto.SaveProductRequest{
		Name: "Bench Scale 60kg", SKU: "BS-60", Category: "Commercial", Unit: "PCS",
		Rate: decimal.NewFromInt(7400), TaxPercent: decimal.NewFromInt(18), MinStock: 10,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Catalog views
// ──────────────────────────────────────────────────────────────────────────────

func TestListProducts_ViewerBranchAvailability(t *testing.T) {
	uc, _ := newInventoryUC(t)

	views := uc.ListProducts(salesStaff)
	require.Len(t, views, 4)

	// P1 at B1: 5 on hand against a minimum of 20.
	assert.Equal(t, "P1", views[0].ID)
	assert.Equal(t, 5, views[0].BranchStock)
	assert.Equal(t, 138, views[0].TotalStock)
	assert.Equal(t, entity.StockStatusLow, views[0].StockStatus)
}

func TestGetProduct_StatusBoundaries(t *testing.T) {
	uc, _ := newInventoryUC(t)

	// P2 at B1 is out of stock.
	v, err := uc.GetProduct(salesStaff, "P2")
	require.NoError(t, err)
	assert.Equal(t, entity.StockStatusOut, v.StockStatus)

	// The same product at the hub is comfortably in stock.
	v, err = uc.GetProduct(factoryAdmin, "P2")
	require.NoError(t, err)
	assert.Equal(t, entity.StockStatusOK, v.StockStatus)

	// P7 at B1 sits exactly at its minimum, which still counts as in stock.
	v, err = uc.GetProduct(salesStaff, "P7")
	require.NoError(t, err)
	assert.Equal(t, entity.StockStatusOK, v.StockStatus)

	_, err = uc.GetProduct(salesStaff, "P99")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Catalog management
// ──────────────────────────────────────────────────────────────────────────────

func TestAddProduct_AdminOnly(t *testing.T) {
	uc, store := newInventoryUC(t)

	_, err := uc.AddProduct(salesStaff, validProduct())
	assert.ErrorIs(t, err, domain.ErrForbidden)

	p, err := uc.AddProduct(branchAdmin, validProduct())
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.NotNil(t, p.StockCount, "stock map initialized even when the request omits it")
	require.Len(t, store.Products(), 5)
}

func TestAddProduct_Validation(t *testing.T) {
	uc, _ := newInventoryUC(t)

	in := validProduct()
	in.Name = ""
	_, err := uc.AddProduct(factoryAdmin, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "name required")

	in = validProduct()
	in.SKU = ""
	_, err = uc.AddProduct(factoryAdmin, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sku required")

	in = validProduct()
	in.Rate = decimal.NewFromInt(-1)
	_, err = uc.AddProduct(factoryAdmin, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "negative rate")
}

func TestUpdateProduct_KeepsStockWhenOmitted(t *testing.T) {
	uc, store := newInventoryUC(t)

	in := validProduct()
	in.Name = "EESAA TT-Series (Commercial, rev B)"
	updated, err := uc.UpdateProduct(factoryAdmin, "P1", in)
	require.NoError(t, err)
	assert.Equal(t, "EESAA TT-Series (Commercial, rev B)", updated.Name)

	p, _ := store.ProductByID("P1")
	assert.Equal(t, 100, p.StockAt(entity.HubBranchID), "omitted stock map leaves counts alone")
	assert.Equal(t, 5, p.StockAt("B1"))

	_, err = uc.UpdateProduct(factoryAdmin, "missing", validProduct())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRefill(t *testing.T) {
	uc, store := newInventoryUC(t)

	require.NoError(t, uc.Refill(factoryAdmin, "P1", dto.RefillRequest{Quantity: 50}))
	p, _ := store.ProductByID("P1")
	assert.Equal(t, 150, p.StockAt(entity.HubBranchID))

	assert.ErrorIs(t, uc.Refill(salesStaff, "P1", dto.RefillRequest{Quantity: 50}), domain.ErrForbidden)
	assert.ErrorIs(t, uc.Refill(factoryAdmin, "P1", dto.RefillRequest{Quantity: 0}), domain.ErrInvalidInput)
	assert.ErrorIs(t, uc.Refill(factoryAdmin, "missing", dto.RefillRequest{Quantity: 5}), domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Direct transfers
// ──────────────────────────────────────────────────────────────────────────────

func TestTransfer(t *testing.T) {
	uc, store := newInventoryUC(t)

	err := uc.Transfer(factoryAdmin, dto.TransferRequest{
		ProductID: "P1", FromBranch: entity.HubBranchID, ToBranch: "B4", Quantity: 10,
	})
	require.NoError(t, err)

	p, _ := store.ProductByID("P1")
	assert.Equal(t, 90, p.StockAt(entity.HubBranchID))
	assert.Equal(t, 15, p.StockAt("B4"))

	movements := store.StockMovements()
	require.Len(t, movements, 1)
	assert.Equal(t, entity.MovementTypeSupply, movements[0].Type)
}

func TestTransfer_ToHubRecordsReturn(t *testing.T) {
	uc, store := newInventoryUC(t)

	err := uc.Transfer(factoryAdmin, dto.TransferRequest{
		ProductID: "P7", FromBranch: "B3", ToBranch: entity.HubBranchID, Quantity: 10,
	})
	require.NoError(t, err)

	p, _ := store.ProductByID("P7")
	assert.Equal(t, 50, p.StockAt("B3"))
	assert.Equal(t, 310, p.StockAt(entity.HubBranchID))

	movements := store.StockMovements()
	require.Len(t, movements, 1)
	assert.Equal(t, entity.MovementTypeReturn, movements[0].Type, "stock pulled back to the hub is a return")
}

func TestTransfer_Validation(t *testing.T) {
	uc, _ := newInventoryUC(t)

	err := uc.Transfer(branchAdmin, dto.TransferRequest{
		ProductID: "P1", FromBranch: entity.HubBranchID, ToBranch: "B1", Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden, "hub-side decision only")

	err = uc.Transfer(factoryAdmin, dto.TransferRequest{
		ProductID: "P1", FromBranch: "B1", ToBranch: "B1", Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "same source and destination")

	err = uc.Transfer(factoryAdmin, dto.TransferRequest{
		ProductID: "P1", FromBranch: "B9", ToBranch: "B1", Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "unknown source branch")

	err = uc.Transfer(factoryAdmin, dto.TransferRequest{
		ProductID: "missing", FromBranch: entity.HubBranchID, ToBranch: "B1", Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Request workflow
// ──────────────────────────────────────────────────────────────────────────────

func TestRaiseRequest(t *testing.T) {
	uc, store := newInventoryUC(t)

	r, err := uc.RaiseRequest(branchAdmin, dto.RaiseStockRequestRequest{
		ProductID: "P2", Quantity: 5, RequestType: entity.RequestTypeRequisition,
	})
	require.NoError(t, err)

	assert.Equal(t, "B1", r.BranchID, "request belongs to the raiser's branch")
	assert.Equal(t, "Ahmedabad Branch", r.BranchName)
	assert.Equal(t, "EESAA Heavy Platform Scale", r.ProductName)
	assert.Equal(t, entity.RequestStatusPending, r.Status)
	require.Len(t, store.StockRequests(), 1)
}

func TestRaiseRequest_Validation(t *testing.T) {
	uc, _ := newInventoryUC(t)

	_, err := uc.RaiseRequest(branchAdmin, dto.RaiseStockRequestRequest{
		ProductID: "P2", Quantity: 0, RequestType: entity.RequestTypeRequisition,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.RaiseRequest(branchAdmin, dto.RaiseStockRequestRequest{
		ProductID: "P2", Quantity: 5, RequestType: "LOAN",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.RaiseRequest(branchAdmin, dto.RaiseStockRequestRequest{
		ProductID: "missing", Quantity: 5, RequestType: entity.RequestTypeReturn,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProcessRequest(t *testing.T) {
	uc, store := newInventoryUC(t)

	r, err := uc.RaiseRequest(branchAdmin, dto.RaiseStockRequestRequest{
		ProductID: "P1", Quantity: 20, RequestType: entity.RequestTypeRequisition,
	})
	require.NoError(t, err)

	assert.ErrorIs(t, uc.ProcessRequest(branchAdmin, r.ID, dto.ProcessStockRequestRequest{
		Decision: entity.RequestStatusApproved,
	}), domain.ErrForbidden, "branches cannot settle their own requests")

	assert.ErrorIs(t, uc.ProcessRequest(factoryAdmin, r.ID, dto.ProcessStockRequestRequest{
		Decision: "MAYBE",
	}), domain.ErrInvalidInput)

	require.NoError(t, uc.ProcessRequest(factoryAdmin, r.ID, dto.ProcessStockRequestRequest{
		Decision: entity.RequestStatusApproved,
	}))

	p, _ := store.ProductByID("P1")
	assert.Equal(t, 80, p.StockAt(entity.HubBranchID))
	assert.Equal(t, 25, p.StockAt("B1"))

	assert.ErrorIs(t, uc.ProcessRequest(factoryAdmin, "missing", dto.ProcessStockRequestRequest{
		Decision: entity.RequestStatusRejected,
	}), domain.ErrNotFound)
}
