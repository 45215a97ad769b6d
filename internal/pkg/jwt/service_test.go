package jwt

import (
	"errors"
	"testing"
	"time"
)

func TestGenerateAndValidateRoundTrip(t *testing.T) {
	svc := NewHMACService("test-secret", time.Hour)

	token, err := svc.GenerateToken("company-1", PrincipalCompany, "jobs@acme.com")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.PrincipalID != "company-1" || claims.PrincipalType != PrincipalCompany {
		t.Fatalf("claims = %+v", claims)
	}
	if claims.Email != "jobs@acme.com" {
		t.Fatalf("email = %q", claims.Email)
	}
}

func TestGenerateTokenRejectsUnknownPrincipalType(t *testing.T) {
	svc := NewHMACService("test-secret", time.Hour)

	_, err := svc.GenerateToken("id", "admin", "")
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("GenerateToken() error = %v, want ErrTokenInvalid", err)
	}
}

func TestValidateTokenExpired(t *testing.T) {
	svc := NewHMACService("test-secret", time.Minute)
	svc.now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, err := svc.GenerateToken("user-1", PrincipalUser, "")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	_, err = NewHMACService("test-secret", time.Minute).ValidateToken(token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("ValidateToken() error = %v, want ErrTokenExpired", err)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := NewHMACService("secret-a", time.Hour).GenerateToken("user-1", PrincipalUser, "")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	_, err = NewHMACService("secret-b", time.Hour).ValidateToken(token)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("ValidateToken() error = %v, want ErrTokenInvalid", err)
	}
}
