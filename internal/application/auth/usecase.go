package auth

import (
	"github.com/staffboard/attestation-dashboard/internal/application/dto"
	"github.com/staffboard/attestation-dashboard/internal/domain"
	"github.com/staffboard/attestation-dashboard/pkg/jwt"
)

// Credentials are the two configured secrets the login form is checked
// against. The comparison is verbatim plain-string equality; hardening is
// out of scope for this dashboard.
type Credentials struct {
	Username string
	Password string
}

// JWTConfig token generation settings.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase single-user login against configured credentials.
type AuthUseCase struct {
	creds  Credentials
	jwtCfg JWTConfig
}

// NewAuthUseCase builds the auth use case.
func NewAuthUseCase(creds Credentials, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{creds: creds, jwtCfg: jwtCfg}
}

// Login compares the submitted credentials with the configured ones and
// issues a session token on an exact match. Any mismatch returns
// domain.ErrUnauthorized without detail about which field was wrong.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username != uc.creds.Username || in.Password != uc.creds.Password {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, in.Username, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Username: in.Username}, nil
}
