package services

import (
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"reeyo/pkg/auth"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTokenRevoked       = errors.New("session has been logged out")
)

// RoleAdmin is the only role the dashboard knows.
const RoleAdmin = "admin"

// AuthService authenticates the single configured administrator.
type AuthService struct {
	email    string
	hash     []byte
	issuer   *auth.TokenIssuer
	tokenTTL time.Duration
	revoked  *cache.Cache
}

// NewAuthService hashes password with bcrypt at cost. The plaintext is not
// kept.
func NewAuthService(email, password, secret string, tokenTTL time.Duration, cost int) (*AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return nil, errors.Wrap(err, "hash admin password")
	}
	return &AuthService{
		email:    strings.ToLower(strings.TrimSpace(email)),
		hash:     hash,
		issuer:   auth.NewTokenIssuer(secret, tokenTTL),
		tokenTTL: tokenTTL,
		revoked:  cache.New(tokenTTL, tokenTTL),
	}, nil
}

// Login checks the credentials and issues a session token.
func (s *AuthService) Login(email, password string) (string, *auth.Claims, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email != s.email {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.hash, []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}
	return s.issuer.Issue(email, RoleAdmin)
}

// Authenticate validates a token and rejects logged-out sessions.
func (s *AuthService) Authenticate(token string) (*auth.Claims, error) {
	claims, err := s.issuer.Validate(token)
	if err != nil {
		return nil, err
	}
	if _, revoked := s.revoked.Get(claims.ID); revoked {
		return nil, ErrTokenRevoked
	}
	return claims, nil
}

// IsAuthenticated reports whether token is a live admin session.
func (s *AuthService) IsAuthenticated(token string) bool {
	_, err := s.Authenticate(token)
	return err == nil
}

// Logout revokes the session until the token would have expired anyway.
func (s *AuthService) Logout(claims *auth.Claims) {
	ttl := s.tokenTTL
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if ttl <= 0 {
		return
	}
	s.revoked.Set(claims.ID, struct{}{}, ttl)
}
