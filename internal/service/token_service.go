package service

import (
	"fmt"
	"time"

	"cash-wallet-ledger/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTTokenService implements ports.TokenService using HS256 JWT.
type JWTTokenService struct {
	secret []byte
	expiry time.Duration
	issuer string
}

// NewJWTTokenService creates a new JWT token service.
func NewJWTTokenService(secret string, expiry time.Duration, issuer string) *JWTTokenService {
	return &JWTTokenService{
		secret: []byte(secret),
		expiry: expiry,
		issuer: issuer,
	}
}

// Generate creates a signed JWT identifying a user acting within a company.
func (s *JWTTokenService) Generate(companyID, userID uuid.UUID) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.expiry)

	claims := jwt.MapClaims{
		"sub":        userID.String(),
		"company_id": companyID.String(),
		"iat":        now.Unix(),
		"exp":        expiresAt.Unix(),
		"iss":        s.issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing token: %w", err)
	}

	return tokenString, expiresAt, nil
}

// Validate parses and validates a JWT token, returning the claims.
func (s *JWTTokenService) Validate(tokenString string) (*ports.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(s.issuer))
	if err != nil {
		return nil, fmt.Errorf("parsing token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return nil, fmt.Errorf("missing subject claim")
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID in token: %w", err)
	}

	company, ok := claims["company_id"].(string)
	if !ok {
		return nil, fmt.Errorf("missing company_id claim")
	}
	companyID, err := uuid.Parse(company)
	if err != nil {
		return nil, fmt.Errorf("invalid company ID in token: %w", err)
	}

	return &ports.TokenClaims{
		CompanyID: companyID,
		UserID:    userID,
	}, nil
}
