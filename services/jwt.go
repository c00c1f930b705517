package services

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/golang-jwt/jwt/v5"
	"github.com/lac-hong-legacy/edu_api/dto"
	log "github.com/sirupsen/logrus"
)

// ErrInvalidToken covers every way a session token can fail verification.
var ErrInvalidToken = errors.New("invalid or expired token")

const (
	defaultTokenTTL = 7 * 24 * time.Hour
	defaultIssuer   = "edu-platform"
)

type JWTService struct {
	context.DefaultService

	TokenDuration time.Duration
	issuer        string
	jwtSecretKey  []byte
}

type CustomClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Grade  int    `json:"grade,omitempty"`
	jwt.RegisteredClaims
}

const JWT_SVC = "jwt_svc"

func (svc JWTService) Id() string {
	return JWT_SVC
}

func (svc *JWTService) Configure(ctx *context.Context) error {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return errors.New("JWT_SECRET must be set")
	}
	svc.jwtSecretKey = []byte(secret)

	svc.TokenDuration = defaultTokenTTL
	if v := os.Getenv("JWT_EXPIRES_IN"); v != "" {
		d, err := ParseTokenDuration(v)
		if err != nil {
			return fmt.Errorf("JWT_EXPIRES_IN: %w", err)
		}
		svc.TokenDuration = d
	}

	svc.issuer = os.Getenv("JWT_ISSUER")
	if svc.issuer == "" {
		svc.issuer = defaultIssuer
	}

	return svc.DefaultService.Configure(ctx)
}

func (svc *JWTService) Start() error {
	return nil
}

// NewJWTService builds a ready issuer without the service context.
func NewJWTService(secret string, ttl time.Duration, issuer string) *JWTService {
	return &JWTService{
		TokenDuration: ttl,
		issuer:        issuer,
		jwtSecretKey:  []byte(secret),
	}
}

// ParseTokenDuration accepts Go durations plus a "d" suffix for days ("7d").
func ParseTokenDuration(v string) (time.Duration, error) {
	v = strings.TrimSpace(v)
	if strings.HasSuffix(v, "d") {
		days, err := strconv.Atoi(strings.TrimSuffix(v, "d"))
		if err != nil || days <= 0 {
			return 0, fmt.Errorf("invalid day duration %q", v)
		}
		return time.Duration(days) * 24 * time.Hour, nil
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration must be positive, got %q", v)
	}
	return d, nil
}

// Issue signs a session token for identity.
func (svc *JWTService) Issue(identity dto.Identity) (string, error) {
	now := time.Now()

	claims := &CustomClaims{
		UserID: identity.UserID,
		Email:  identity.Email,
		Role:   identity.Role,
		Grade:  identity.Grade,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UserID,
			ExpiresAt: jwt.NewNumericDate(now.Add(svc.TokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    svc.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(svc.jwtSecretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %v", err)
	}

	return tokenString, nil
}

// Verify checks signature, algorithm, expiry and issuer. Every failure
// collapses to ErrInvalidToken.
func (svc *JWTService) Verify(tokenString string) (*dto.Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, svc.getJWTKey,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(svc.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		log.WithError(err).Debug("Rejected session token")
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || claims.UserID == "" || claims.Role == "" {
		return nil, ErrInvalidToken
	}

	return &dto.Identity{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   claims.Role,
		Grade:  claims.Grade,
	}, nil
}

func (svc *JWTService) getJWTKey(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}

	return svc.jwtSecretKey, nil
}
