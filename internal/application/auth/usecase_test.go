package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eesaa/retail-suite/internal/application/auth"
	"github.com/eesaa/retail-suite/internal/application/dto"
	"github.com/eesaa/retail-suite/internal/domain"
	"github.com/eesaa/retail-suite/internal/domain/entity"
	"github.com/eesaa/retail-suite/pkg/jwt"
	"github.com/eesaa/retail-suite/pkg/logger"
)

const testSecret = "test-secret-for-auth"

var testJWT = auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "eesaa-test"}

func newAuthUC(t *testing.T) *auth.UseCase {
	t.Helper()
	uc, err := auth.NewWithPINs(testJWT, map[string]string{
		"1": "1111",
		"2": "2222",
		"3": "3333",
	}, logger.Nop())
	require.NoError(t, err)
	return uc
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_IssuesTokenWithOperatorClaims(t *testing.T) {
	uc := newAuthUC(t)

	resp, err := uc.Login(dto.LoginRequest{UserID: "2", PIN: "2222"})
	require.NoError(t, err)

	assert.Equal(t, "Amit Patel", resp.User.Name)
	assert.Equal(t, string(entity.RoleBranchAdmin), resp.User.Role)
	assert.Equal(t, "B1", resp.User.BranchID)

	claims, err := jwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "2", claims.UserID)
	assert.Equal(t, "Amit Patel", claims.Name)
	assert.Equal(t, string(entity.RoleBranchAdmin), claims.Role)
	assert.Equal(t, "B1", claims.BranchID)
	assert.Equal(t, "eesaa-test", claims.Issuer)
}

func TestLogin_WrongPIN(t *testing.T) {
	uc := newAuthUC(t)

	_, err := uc.Login(dto.LoginRequest{UserID: "1", PIN: "9999"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UnknownOperator(t *testing.T) {
	uc := newAuthUC(t)

	_, err := uc.Login(dto.LoginRequest{UserID: "7", PIN: "1111"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLogin_MissingFields(t *testing.T) {
	uc := newAuthUC(t)

	_, err := uc.Login(dto.LoginRequest{UserID: "1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "missing PIN")

	_, err = uc.Login(dto.LoginRequest{PIN: "1111"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "missing user id")
}

func TestLogin_TokenRejectedUnderDifferentSecret(t *testing.T) {
	uc := newAuthUC(t)

	resp, err := uc.Login(dto.LoginRequest{UserID: "1", PIN: "1111"})
	require.NoError(t, err)

	_, err = jwt.Parse("some-other-secret", resp.Token)
	assert.Error(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Operator roster
// ──────────────────────────────────────────────────────────────────────────────

func TestListUsers_FixedRoster(t *testing.T) {
	uc := newAuthUC(t)

	users := uc.ListUsers()
	require.Len(t, users, 3)
	assert.Equal(t, "Rajesh Shah", users[0].Name)
	assert.Equal(t, string(entity.RoleFactoryAdmin), users[0].Role)
	assert.Equal(t, entity.HubBranchID, users[0].BranchID)
	assert.Equal(t, "Suresh Kumar", users[2].Name)
}

func TestNewWithPINs_Override(t *testing.T) {
	uc, err := auth.NewWithPINs(testJWT, map[string]string{"1": "4321"}, logger.Nop())
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{UserID: "1", PIN: "4321"})
	assert.NoError(t, err, "overridden PIN works")

	_, err = uc.Login(dto.LoginRequest{UserID: "1", PIN: "1111"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "factory PIN no longer works")

	_, err = uc.Login(dto.LoginRequest{UserID: "2", PIN: "2222"})
	assert.NoError(t, err, "operators without an override keep the factory PIN")
}
