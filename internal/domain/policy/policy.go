// Package policy centralizes role capability checks so the rules live at one
// boundary instead of scattered role comparisons.
package policy

import "github.com/eesaa/retail-suite/internal/domain/entity"

// CanBypassCreditLimit reports whether the role may finalize a CREDIT sale
// past the customer's credit limit without an explicit override confirmation.
// Only the top-level factory admin bypasses the gate; branch-level roles must
// confirm.
func CanBypassCreditLimit(r entity.Role) bool {
	return r == entity.RoleFactoryAdmin
}

// CanProcessStockRequests reports whether the role may approve or reject
// branch stock requests. Decisions are taken at the hub.
func CanProcessStockRequests(r entity.Role) bool {
	return r == entity.RoleFactoryAdmin
}

// CanManageCatalog reports whether the role may create or edit product
// masters and refill hub stock.
func CanManageCatalog(r entity.Role) bool {
	return r == entity.RoleFactoryAdmin || r == entity.RoleBranchAdmin
}
