// Package auth implements PIN login for the fixed set of counter operators.
// There is no user registration: the three operators are built in, as on a
// shop-floor terminal, and each signs in by picking their profile and typing
// a PIN.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/eesaa/retail-suite/internal/application/dto"
	"github.com/eesaa/retail-suite/internal/domain"
	"github.com/eesaa/retail-suite/internal/domain/entity"
	"github.com/eesaa/retail-suite/pkg/jwt"
	"github.com/eesaa/retail-suite/pkg/logger"
)

// JWTConfig token generation settings.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

type operator struct {
	user    entity.User
	pinHash []byte
}

// UseCase authenticates operators and issues session tokens.
type UseCase struct {
	operators []operator
	jwtCfg    JWTConfig
	log       *logger.Logger
}

// defaultPINs are the factory-set PINs, overridable per deployment via
// WithPINs before first use.
var defaultPINs = map[string]string{
	"1": "1111",
	"2": "2222",
	"3": "3333",
}

// builtinUsers is the fixed operator roster.
func builtinUsers() []entity.User {
	return []entity.User{
		{ID: "1", Name: "Rajesh Shah", Role: entity.RoleFactoryAdmin, BranchID: entity.HubBranchID},
		{ID: "2", Name: "Amit Patel", Role: entity.RoleBranchAdmin, BranchID: "B1"},
		{ID: "3", Name: "Suresh Kumar", Role: entity.RoleSalesStaff, BranchID: "B1"},
	}
}

// New builds the use case, hashing each operator's PIN with bcrypt so plain
// PINs are never held past construction.
func New(jwtCfg JWTConfig, log *logger.Logger) (*UseCase, error) {
	return NewWithPINs(jwtCfg, defaultPINs, log)
}

// NewWithPINs builds the use case with explicit PINs (used by tests and by
// deployments that override the factory defaults).
func NewWithPINs(jwtCfg JWTConfig, pins map[string]string, log *logger.Logger) (*UseCase, error) {
	uc := &UseCase{jwtCfg: jwtCfg, log: log}
	for _, u := range builtinUsers() {
		pin, ok := pins[u.ID]
		if !ok {
			pin = defaultPINs[u.ID]
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		uc.operators = append(uc.operators, operator{user: u, pinHash: hash})
	}
	return uc, nil
}

// Login verifies the operator's PIN and returns a signed session token.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.UserID == "" || in.PIN == "" {
		return nil, domain.ErrInvalidInput
	}
	var op *operator
	for i := range uc.operators {
		if uc.operators[i].user.ID == in.UserID {
			op = &uc.operators[i]
			break
		}
	}
	if op == nil {
		return nil, domain.ErrNotFound
	}
	if err := bcrypt.CompareHashAndPassword(op.pinHash, []byte(in.PIN)); err != nil {
		uc.log.Warn().Str("user_id", in.UserID).Msg("failed login attempt")
		return nil, domain.ErrUnauthorized
	}

	u := op.user
	token, err := jwt.Generate(uc.jwtCfg.Secret, u.ID, u.Name, string(u.Role), u.BranchID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  toUserResponse(u),
	}, nil
}

// ListUsers returns the selectable operator profiles for the login screen.
func (uc *UseCase) ListUsers() []dto.UserResponse {
	out := make([]dto.UserResponse, 0, len(uc.operators))
	for _, op := range uc.operators {
		out = append(out, toUserResponse(op.user))
	}
	return out
}

func toUserResponse(u entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:       u.ID,
		Name:     u.Name,
		Role:     string(u.Role),
		BranchID: u.BranchID,
	}
}
