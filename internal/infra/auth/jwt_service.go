package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"sapzurro/config"
	"sapzurro/internal/domain/service"
	"sapzurro/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret   string
	tokenTTL time.Duration
}

// ErrInvalidToken is returned when a session token fails validation for any reason.
var ErrInvalidToken = errors.New("invalid session token")

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth == nil || cfg.Auth.JWTSecret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret:   cfg.Auth.JWTSecret,
		tokenTTL: cfg.Auth.TokenTTL,
	}, nil
}

// GenerateToken creates a signed HS256 session token carrying the credential
// id, login name and profile name.
func (s *jwtService) GenerateToken(credentialID uuid.UUID, loginName, profileName string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":     credentialID.String(),
		"usuario": loginName,
		"perfil":  profileName,
		"iat":     now.Unix(),
		"exp":     now.Add(s.tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// ValidateToken checks the validity of a token string and extracts its claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Only accept the HMAC family we sign with.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.Wrap(ErrInvalidToken, "token parse failed")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.Wrap(ErrInvalidToken, "unexpected claims type")
	}

	sub, _ := mapClaims["sub"].(string)
	credentialID, err := uuid.Parse(sub)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, "invalid credential id claim")
	}

	loginName, _ := mapClaims["usuario"].(string)
	profileName, _ := mapClaims["perfil"].(string)

	return &service.Claims{
		CredentialID: credentialID,
		LoginName:    loginName,
		ProfileName:  profileName,
	}, nil
}

// TokenDuration returns the configured session token lifetime.
func (s *jwtService) TokenDuration() time.Duration {
	return s.tokenTTL
}
