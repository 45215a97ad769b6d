package jwt

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// Principal kinds carried in a token. Seeker tokens come from the external
// identity provider (shared HMAC secret); company tokens are issued by the
// recruiter login flow.
const (
	PrincipalUser    = "user"
	PrincipalCompany = "company"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

type Claims struct {
	PrincipalID   string `json:"principal_id"`
	PrincipalType string `json:"principal_type"`
	Email         string `json:"email,omitempty"`

	jwtlib.RegisteredClaims
}

type Service interface {
	GenerateToken(principalID, principalType, email string) (string, error)
	ValidateToken(tokenString string) (Claims, error)
}

type HMACService struct {
	secret    []byte
	expiresIn time.Duration

	now func() time.Time
}

func NewHMACService(secret string, expiresIn time.Duration) *HMACService {
	return &HMACService{secret: []byte(secret), expiresIn: expiresIn, now: time.Now}
}

func (s *HMACService) GenerateToken(principalID, principalType, email string) (string, error) {
	if len(s.secret) == 0 || s.expiresIn <= 0 {
		return "", ErrTokenInvalid
	}
	if principalType != PrincipalUser && principalType != PrincipalCompany {
		return "", ErrTokenInvalid
	}

	now := s.now().UTC()
	c := Claims{
		PrincipalID:   principalID,
		PrincipalType: principalType,
		Email:         email,
		RegisteredClaims: jwtlib.RegisteredClaims{
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(s.expiresIn)),
			Subject:   principalID,
		},
	}

	t := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, c)
	return t.SignedString(s.secret)
}

func (s *HMACService) ValidateToken(tokenString string) (Claims, error) {
	p := jwtlib.NewParser(jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}))

	var c Claims
	tok, err := p.ParseWithClaims(tokenString, &c, func(token *jwtlib.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, ErrTokenInvalid
	}
	if tok == nil || !tok.Valid {
		return Claims{}, ErrTokenInvalid
	}

	if c.PrincipalType != PrincipalUser && c.PrincipalType != PrincipalCompany {
		return Claims{}, ErrTokenInvalid
	}
	if c.PrincipalID == "" {
		return Claims{}, ErrTokenInvalid
	}

	return c, nil
}
