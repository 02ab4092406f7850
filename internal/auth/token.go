package auth

import (
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/jobboard/jobboard-api/internal/domain"
)

var (
	// ErrMissingToken is returned when no token was presented.
	ErrMissingToken = errors.New("missing token")
	// ErrInvalidToken covers malformed tokens, bad signatures and unexpected algorithms.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken is returned for tokens past their exp claim.
	ErrExpiredToken = errors.New("token expired")
	// ErrUnknownIdentity is returned when a verified payload is neither a user nor a company.
	ErrUnknownIdentity = errors.New("token carries no recognizable identity")
)

// Identity is the role-bearing part of a token. It is either a UserIdentity or a CompanyIdentity.
type Identity interface {
	Subject() domain.SubjectType
	ID() string
	isIdentity()
}

// UserIdentity identifies a job seeker by username.
type UserIdentity struct {
	Username string
}

func (UserIdentity) Subject() domain.SubjectType { return domain.SubjectTypeUser }
func (u UserIdentity) ID() string                { return u.Username }
func (UserIdentity) isIdentity()                 {}

// CompanyIdentity identifies a company by handle.
type CompanyIdentity struct {
	Handle string
}

func (CompanyIdentity) Subject() domain.SubjectType { return domain.SubjectTypeCompany }
func (c CompanyIdentity) ID() string                { return c.Handle }
func (CompanyIdentity) isIdentity()                 {}

// Claims is the verified, decoded token payload.
type Claims struct {
	Identity  Identity
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// tokenClaims is the wire shape of the JWT payload.
type tokenClaims struct {
	Username string `json:"username,omitempty"`
	Handle   string `json:"handle,omitempty"`
	jwt.RegisteredClaims
}

// TokenManager handles issuing and validating JWT tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager builds a new manager.
func NewTokenManager(secret string, ttlMinutes int) *TokenManager {
	if ttlMinutes <= 0 {
		ttlMinutes = 60
	}
	return &TokenManager{
		secret: []byte(secret),
		ttl:    time.Duration(ttlMinutes) * time.Minute,
		now:    time.Now,
	}
}

// IssueUserToken signs a token for the given username.
func (tm *TokenManager) IssueUserToken(username string) (string, time.Time, error) {
	return tm.Issue(UserIdentity{Username: username})
}

// IssueCompanyToken signs a token for the given company handle.
func (tm *TokenManager) IssueCompanyToken(handle string) (string, time.Time, error) {
	return tm.Issue(CompanyIdentity{Handle: handle})
}

// Issue builds and signs a JWT for the identity.
func (tm *TokenManager) Issue(identity Identity) (string, time.Time, error) {
	issuedAt := tm.now()
	expiresAt := issuedAt.Add(tm.ttl)

	claims := &tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
		},
	}
	switch id := identity.(type) {
	case UserIdentity:
		if id.Username == "" {
			return "", time.Time{}, ErrUnknownIdentity
		}
		claims.Username = id.Username
	case CompanyIdentity:
		if id.Handle == "" {
			return "", time.Time{}, ErrUnknownIdentity
		}
		claims.Handle = id.Handle
	default:
		return "", time.Time{}, ErrUnknownIdentity
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Verify checks signature and expiry and decodes the identity.
// Every failure wraps one of the package sentinel errors.
func (tm *TokenManager) Verify(tokenStr string) (Claims, error) {
	if tokenStr == "" {
		return Claims{}, ErrMissingToken
	}

	parsed, err := jwt.ParseWithClaims(tokenStr, &tokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method %q", token.Method.Alg())
		}
		return tm.secret, nil
	}, jwt.WithExpirationRequired(), jwt.WithTimeFunc(tm.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, fmt.Errorf("%w: %v", ErrExpiredToken, err)
		}
		return Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	raw, ok := parsed.Claims.(*tokenClaims)
	if !ok || !parsed.Valid {
		return Claims{}, ErrInvalidToken
	}

	identity, err := decodeIdentity(raw)
	if err != nil {
		return Claims{}, err
	}

	claims := Claims{Identity: identity}
	if raw.IssuedAt != nil {
		claims.IssuedAt = raw.IssuedAt.Time
	}
	if raw.ExpiresAt != nil {
		claims.ExpiresAt = raw.ExpiresAt.Time
	}
	return claims, nil
}

// decodeIdentity requires exactly one of username and handle.
func decodeIdentity(raw *tokenClaims) (Identity, error) {
	switch {
	case raw.Username != "" && raw.Handle == "":
		return UserIdentity{Username: raw.Username}, nil
	case raw.Handle != "" && raw.Username == "":
		return CompanyIdentity{Handle: raw.Handle}, nil
	default:
		return nil, ErrUnknownIdentity
	}
}
