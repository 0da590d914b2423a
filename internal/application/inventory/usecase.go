// Package inventory implements catalog management and multi-branch stock
// control: refills at the hub, direct transfers, and the branch
// requisition/return workflow.
package inventory

import (
	"time"

	"github.com/google/uuid"

	"github.com/eesaa/retail-suite/internal/application/dto"
	"github.com/eesaa/retail-suite/internal/domain"
	"github.com/eesaa/retail-suite/internal/domain/entity"
	"github.com/eesaa/retail-suite/internal/domain/policy"
	"github.com/eesaa/retail-suite/internal/state"
	"github.com/eesaa/retail-suite/pkg/logger"
)

// UseCase catalog and stock operations.
type UseCase struct {
	store *state.Store
	log   *logger.Logger
}

// NewUseCase builds the inventory use case.
func NewUseCase(store *state.Store, log *logger.Logger) *UseCase {
	return &UseCase{store: store, log: log}
}

// ListBranches returns the fixed branch network.
func (uc *UseCase) ListBranches() []entity.Branch {
	return uc.store.Branches()
}

// ListProducts returns the catalog decorated with availability at the
// viewer's branch.
func (uc *UseCase) ListProducts(actor dto.Actor) []dto.ProductView {
	branchID := actor.BranchID
	if branchID == "" {
		branchID = entity.HubBranchID
	}
	products := uc.store.Products()
	out := make([]dto.ProductView, 0, len(products))
	for _, p := range products {
		out = append(out, toProductView(p, branchID))
	}
	return out
}

// GetProduct looks up one catalog entry with availability at the viewer's
// branch.
func (uc *UseCase) GetProduct(actor dto.Actor, id string) (*dto.ProductView, error) {
	p, ok := uc.store.ProductByID(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	branchID := actor.BranchID
	if branchID == "" {
		branchID = entity.HubBranchID
	}
	view := toProductView(p, branchID)
	return &view, nil
}

// AddProduct creates a product master. Admin roles only.
func (uc *UseCase) AddProduct(actor dto.Actor, in dto.SaveProductRequest) (*entity.Product, error) {
	if !policy.CanManageCatalog(entity.Role(actor.Role)) {
		return nil, domain.ErrForbidden
	}
	if err := validateProduct(in); err != nil {
		return nil, err
	}
	stock := in.StockCount
	if stock == nil {
		stock = map[string]int{}
	}
	p := entity.Product{
		ID:         uuid.NewString(),
		Name:       in.Name,
		SKU:        in.SKU,
		Category:   in.Category,
		Unit:       in.Unit,
		Rate:       in.Rate,
		TaxPercent: in.TaxPercent,
		MinStock:   in.MinStock,
		ImageURL:   in.ImageURL,
		StockCount: stock,
	}
	uc.store.AddProduct(p, actor.Name)
	return &p, nil
}

// UpdateProduct replaces a product master wholesale, stock counts included.
// Admin roles only.
func (uc *UseCase) UpdateProduct(actor dto.Actor, id string, in dto.SaveProductRequest) (*entity.Product, error) {
	if !policy.CanManageCatalog(entity.Role(actor.Role)) {
		return nil, domain.ErrForbidden
	}
	if err := validateProduct(in); err != nil {
		return nil, err
	}
	existing, ok := uc.store.ProductByID(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	stock := in.StockCount
	if stock == nil {
		stock = existing.StockCount
	}
	p := entity.Product{
		ID:         id,
		Name:       in.Name,
		SKU:        in.SKU,
		Category:   in.Category,
		Unit:       in.Unit,
		Rate:       in.Rate,
		TaxPercent: in.TaxPercent,
		MinStock:   in.MinStock,
		ImageURL:   in.ImageURL,
		StockCount: stock,
	}
	if !uc.store.UpdateProduct(p, actor.Name) {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

// Refill adds manufactured units to the hub's stock. Admin roles only.
func (uc *UseCase) Refill(actor dto.Actor, productID string, in dto.RefillRequest) error {
	if !policy.CanManageCatalog(entity.Role(actor.Role)) {
		return domain.ErrForbidden
	}
	if in.Quantity <= 0 {
		return domain.ErrInvalidInput
	}
	if !uc.store.RefillStock(productID, in.Quantity, actor.Name) {
		return domain.ErrNotFound
	}
	return nil
}

// Transfer dispatches units between two branches directly, outside the
// request workflow. Hub-side decision, so factory admin only. Movement
// direction decides the record type: anything landing at the hub is a
// RETURN, everything else a SUPPLY.
func (uc *UseCase) Transfer(actor dto.Actor, in dto.TransferRequest) error {
	if !policy.CanProcessStockRequests(entity.Role(actor.Role)) {
		return domain.ErrForbidden
	}
	if in.Quantity <= 0 || in.FromBranch == in.ToBranch {
		return domain.ErrInvalidInput
	}
	if _, ok := uc.store.BranchByID(in.FromBranch); !ok {
		return domain.ErrInvalidInput
	}
	if _, ok := uc.store.BranchByID(in.ToBranch); !ok {
		return domain.ErrInvalidInput
	}
	movementType := entity.MovementTypeSupply
	if in.ToBranch == entity.HubBranchID {
		movementType = entity.MovementTypeReturn
	}
	if !uc.store.Transfer(in.ProductID, in.FromBranch, in.ToBranch, in.Quantity, movementType, actor.Name) {
		return domain.ErrNotFound
	}
	return nil
}

// RaiseRequest queues a requisition or return for the acting user's branch.
func (uc *UseCase) RaiseRequest(actor dto.Actor, in dto.RaiseStockRequestRequest) (*entity.StockRequest, error) {
	if in.Quantity <= 0 || !entity.ValidRequestType(in.RequestType) {
		return nil, domain.ErrInvalidInput
	}
	product, ok := uc.store.ProductByID(in.ProductID)
	if !ok {
		return nil, domain.ErrNotFound
	}
	branchID := actor.BranchID
	if branchID == "" {
		branchID = entity.HubBranchID
	}
	branch, ok := uc.store.BranchByID(branchID)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	r := entity.StockRequest{
		ID:          uuid.NewString(),
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    in.Quantity,
		BranchID:    branch.ID,
		BranchName:  branch.Name,
		Date:        time.Now(),
		Status:      entity.RequestStatusPending,
		RequestType: in.RequestType,
	}
	uc.store.RaiseStockRequest(r, actor.Name)
	return &r, nil
}

// ProcessRequest settles a pending request at the hub. Approving a
// requisition supplies the branch from the hub; approving a return takes
// the stock back. Factory admin only.
func (uc *UseCase) ProcessRequest(actor dto.Actor, requestID string, in dto.ProcessStockRequestRequest) error {
	if !policy.CanProcessStockRequests(entity.Role(actor.Role)) {
		return domain.ErrForbidden
	}
	if !entity.ValidDecision(in.Decision) {
		return domain.ErrInvalidInput
	}
	if !uc.store.ProcessStockRequest(requestID, in.Decision, actor.Name) {
		return domain.ErrNotFound
	}
	return nil
}

// ListRequests returns raised stock requests, newest first.
func (uc *UseCase) ListRequests() []entity.StockRequest {
	return uc.store.StockRequests()
}

// ListMovements returns completed transfers, newest first.
func (uc *UseCase) ListMovements() []entity.StockMovement {
	return uc.store.StockMovements()
}

func validateProduct(in dto.SaveProductRequest) error {
	if in.Name == "" || in.SKU == "" {
		return domain.ErrInvalidInput
	}
	if in.Rate.IsNegative() || in.TaxPercent.IsNegative() || in.MinStock < 0 {
		return domain.ErrInvalidInput
	}
	return nil
}

func toProductView(p entity.Product, branchID string) dto.ProductView {
	return dto.ProductView{
		ID:          p.ID,
		Name:        p.Name,
		SKU:         p.SKU,
		Category:    p.Category,
		Unit:        p.Unit,
		Rate:        p.Rate,
		TaxPercent:  p.TaxPercent,
		MinStock:    p.MinStock,
		ImageURL:    p.ImageURL,
		StockCount:  p.StockCount,
		BranchStock: p.StockAt(branchID),
		TotalStock:  p.TotalStock(),
		StockStatus: p.StockStatusAt(branchID),
	}
}
