package service

import (
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	apperrors "freight-admin/pkg/errors"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

type AccessClaims struct {
	UserID    uint64 `json:"userId"`
	UserName  string `json:"userName"`
	Email     string `json:"email"`
	RoleID    uint64 `json:"roleId"`
	TokenType string `json:"tokenType"`
	jwt.RegisteredClaims
}

type RefreshClaims struct {
	UserID    uint64 `json:"userId"`
	TokenType string `json:"tokenType"`
	jwt.RegisteredClaims
}

// TokenSubject is the identity embedded into an access token.
type TokenSubject struct {
	UserID   uint64
	UserName string
	Email    string
	RoleID   uint64
}

type TokenPair struct {
	AccessToken      string
	RefreshToken     string
	RefreshTokenID   string
	RefreshExpiresAt time.Time
}

type JWTService interface {
	GenerateTokens(subject TokenSubject) (*TokenPair, error)
	ValidateAccessToken(tokenString string) (*AccessClaims, error)
	ValidateRefreshToken(tokenString string) (*RefreshClaims, error)
	GetAccessTokenTTL() time.Duration
	GetRefreshTokenTTL() time.Duration
}

type jwtService struct {
	accessSecret    []byte
	refreshSecret   []byte
	accessTokenExp  time.Duration
	refreshTokenExp time.Duration
	now             func() time.Time
}

func NewJWTService(accessSecret, refreshSecret string, accessTokenExp, refreshTokenExp time.Duration) JWTService {
	return &jwtService{
		accessSecret:    []byte(accessSecret),
		refreshSecret:   []byte(refreshSecret),
		accessTokenExp:  accessTokenExp,
		refreshTokenExp: refreshTokenExp,
		now:             time.Now,
	}
}

func (s *jwtService) GenerateTokens(subject TokenSubject) (*TokenPair, error) {
	now := s.now()
	refreshExp := now.Add(s.refreshTokenExp)
	refreshID := uuid.NewString()

	accessClaims := &AccessClaims{
		UserID:    subject.UserID,
		UserName:  subject.UserName,
		Email:     subject.Email,
		RoleID:    subject.RoleID,
		TokenType: TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", subject.UserID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTokenExp)),
		},
	}

	refreshClaims := &RefreshClaims{
		UserID:    subject.UserID,
		TokenType: TokenTypeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        refreshID,
			Subject:   fmt.Sprintf("%d", subject.UserID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(refreshExp),
		},
	}

	accessTokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS512, accessClaims).SignedString(s.accessSecret)
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	refreshTokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS512, refreshClaims).SignedString(s.refreshSecret)
	if err != nil {
		return nil, fmt.Errorf("sign refresh token: %w", err)
	}

	return &TokenPair{
		AccessToken:      accessTokenString,
		RefreshToken:     refreshTokenString,
		RefreshTokenID:   refreshID,
		RefreshExpiresAt: refreshExp,
	}, nil
}

func (s *jwtService) GetAccessTokenTTL() time.Duration {
	return s.accessTokenExp
}

func (s *jwtService) GetRefreshTokenTTL() time.Duration {
	return s.refreshTokenExp
}

func (s *jwtService) ValidateAccessToken(tokenString string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	if err := s.parse(tokenString, claims, s.accessSecret); err != nil {
		return nil, err
	}
	if claims.TokenType != TokenTypeAccess {
		return nil, apperrors.ErrTokenIsNotAccess
	}
	return claims, nil
}

func (s *jwtService) ValidateRefreshToken(tokenString string) (*RefreshClaims, error) {
	claims := &RefreshClaims{}
	if err := s.parse(tokenString, claims, s.refreshSecret); err != nil {
		return nil, err
	}
	if claims.TokenType != TokenTypeRefresh || claims.ID == "" {
		return nil, apperrors.ErrTokenIsNotRefresh
	}
	return claims, nil
}

func (s *jwtService) parse(tokenString string, claims jwt.Claims, secret []byte) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrInvalidSigningMethod
		}
		return secret, nil
	}, jwt.WithTimeFunc(s.now))

	switch {
	case err == nil && token.Valid:
		return nil
	case errors.Is(err, jwt.ErrTokenExpired):
		return apperrors.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenNotValidYet), errors.Is(err, jwt.ErrTokenUsedBeforeIssued):
		return apperrors.ErrTokenNotYetValid
	case errors.Is(err, apperrors.ErrInvalidSigningMethod):
		return apperrors.ErrInvalidSigningMethod
	default:
		return apperrors.ErrInvalidToken
	}
}
