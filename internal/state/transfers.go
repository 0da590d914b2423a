package state

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/eesaa/retail-suite/internal/domain/entity"
)

// Transfer moves units between two branches directly (hub dispatch outside
// the request workflow). Reports false when the product is unknown.
func (s *Store) Transfer(productID, fromID, toID string, qty int, movementType, actor string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	mv, ok := s.applyTransfer(productID, fromID, toID, qty, movementType)
	if !ok {
		return false
	}
	s.appendAudit(entity.AuditStockMoved,
		fmt.Sprintf("%d units of %s from %s to %s", qty, mv.ProductName, mv.FromBranchName, mv.ToBranchName),
		actor)
	return true
}

// applyTransfer performs the stock move and appends the movement record
// without auditing; callers decide what single audit entry the overall
// action produces. The source clamps at zero, so a transfer can deliver
// units the source never had. Caller must hold s.mu.
func (s *Store) applyTransfer(productID, fromID, toID string, qty int, movementType string) (entity.StockMovement, bool) {
	var prod *entity.Product
	for i := range s.products {
		if s.products[i].ID == productID {
			prod = &s.products[i]
			break
		}
	}
	if prod == nil {
		return entity.StockMovement{}, false
	}
	if prod.StockCount == nil {
		prod.StockCount = map[string]int{}
	}

	remaining := prod.StockCount[fromID] - qty
	if remaining < 0 {
		remaining = 0
	}
	prod.StockCount[fromID] = remaining
	prod.StockCount[toID] += qty

	mv := entity.StockMovement{
		ID:             uuid.NewString(),
		ProductID:      prod.ID,
		ProductName:    prod.Name,
		FromBranch:     fromID,
		ToBranch:       toID,
		FromBranchName: s.branchName(fromID),
		ToBranchName:   s.branchName(toID),
		Quantity:       qty,
		Date:           time.Now(),
		Type:           movementType,
	}
	s.stockMovements = append([]entity.StockMovement{mv}, s.stockMovements...)

	s.persist(KeyProducts, s.products)
	s.persist(KeyStockMovements, s.stockMovements)
	return mv, true
}

func (s *Store) branchName(id string) string {
	for _, b := range s.branches {
		if b.ID == id {
			return b.Name
		}
	}
	return id
}

// RaiseStockRequest queues a branch's requisition or return for a decision
// at the hub.
func (s *Store) RaiseStockRequest(r entity.StockRequest, actor string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stockRequests = append([]entity.StockRequest{r}, s.stockRequests...)
	s.persist(KeyStockRequests, s.stockRequests)
	s.appendAudit(entity.AuditStockRequestRaised,
		fmt.Sprintf("%s: %d units of %s", r.RequestType, r.Quantity, r.ProductName), actor)
}

// ProcessStockRequest settles a pending request. Approval moves stock hub to
// branch for a requisition, or branch to hub for a return; rejection moves
// nothing. Either way exactly one audit entry records the decision. An
// unknown request id is a silent no-op (reports false), and so is a request
// already settled: PENDING is the only state a decision applies to, so a
// retried call can never move stock twice.
func (s *Store) ProcessStockRequest(requestID, decision, actor string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	var req *entity.StockRequest
	for i := range s.stockRequests {
		if s.stockRequests[i].ID == requestID {
			req = &s.stockRequests[i]
			break
		}
	}
	if req == nil || req.Status != entity.RequestStatusPending {
		return false
	}

	req.Status = decision
	s.persist(KeyStockRequests, s.stockRequests)

	if decision == entity.RequestStatusApproved {
		if req.RequestType == entity.RequestTypeRequisition {
			s.applyTransfer(req.ProductID, entity.HubBranchID, req.BranchID, req.Quantity, entity.MovementTypeSupply)
		} else {
			s.applyTransfer(req.ProductID, req.BranchID, entity.HubBranchID, req.Quantity, entity.MovementTypeReturn)
		}
	}

	s.appendAudit(entity.AuditStockRequestProcessed,
		fmt.Sprintf("Request for %s %s", req.ProductName, decision), actor)
	return true
}
