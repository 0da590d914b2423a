package policy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eesaa/retail-suite/internal/domain/entity"
	"github.com/eesaa/retail-suite/internal/domain/policy"
)

func TestCanBypassCreditLimit(t *testing.T) {
	assert.True(t, policy.CanBypassCreditLimit(entity.RoleFactoryAdmin))
	assert.False(t, policy.CanBypassCreditLimit(entity.RoleBranchAdmin))
	assert.False(t, policy.CanBypassCreditLimit(entity.RoleSalesStaff))
}

func TestCanProcessStockRequests(t *testing.T) {
	assert.True(t, policy.CanProcessStockRequests(entity.RoleFactoryAdmin))
	assert.False(t, policy.CanProcessStockRequests(entity.RoleBranchAdmin))
	assert.False(t, policy.CanProcessStockRequests(entity.RoleSalesStaff))
}

func TestCanManageCatalog(t *testing.T) {
	assert.True(t, policy.CanManageCatalog(entity.RoleFactoryAdmin))
	assert.True(t, policy.CanManageCatalog(entity.RoleBranchAdmin))
	assert.False(t, policy.CanManageCatalog(entity.RoleSalesStaff))
}
