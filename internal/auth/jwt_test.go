package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rogerio-castellano/store-api/internal/models"
)

func TestGenerateAndParseToken(t *testing.T) {
	SetSecret("unit-test-secret")

	user := models.User{ID: 7, Name: "Grace", Username: "grace"}
	tokenStr, err := GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	_, claims, err := TokenClaims("Bearer " + tokenStr)
	if err != nil {
		t.Fatalf("TokenClaims failed: %v", err)
	}
	if int(claims["id"].(float64)) != 7 {
		t.Errorf("expected id claim 7, got %v", claims["id"])
	}
	if claims["username"] != "grace" {
		t.Errorf("expected username claim 'grace', got %v", claims["username"])
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		t.Fatalf("missing exp claim: %v", err)
	}
	ttl := time.Until(exp.Time)
	if ttl <= 9*time.Minute || ttl > 10*time.Minute {
		t.Errorf("expected roughly 10 minute expiry, got %s", ttl)
	}
}

func TestTokenClaims_WithoutBearerPrefix(t *testing.T) {
	SetSecret("unit-test-secret")

	tokenStr, err := GenerateToken(models.User{ID: 1, Username: "admin"})
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, _, err := TokenClaims(tokenStr); err != nil {
		t.Errorf("raw token without prefix should verify, got %v", err)
	}
}

func TestTokenClaims_WrongSecret(t *testing.T) {
	SetSecret("unit-test-secret")

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":       1,
		"username": "admin",
		"exp":      time.Now().Add(10 * time.Minute).Unix(),
	}).SignedString([]byte("some-other-secret"))
	if err != nil {
		t.Fatalf("could not sign token: %v", err)
	}

	if _, _, err := TokenClaims("Bearer " + forged); err == nil {
		t.Error("expected verification failure for token signed with a different secret")
	}
}

func TestTokenClaims_Expired(t *testing.T) {
	SetSecret("unit-test-secret")

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":       1,
		"username": "admin",
		"exp":      time.Now().Add(-time.Second).Unix(),
	}).SignedString([]byte("unit-test-secret"))
	if err != nil {
		t.Fatalf("could not sign token: %v", err)
	}

	if _, _, err := TokenClaims("Bearer " + expired); err == nil {
		t.Error("expected verification failure for expired token")
	}
}

func TestGenerateToken_NoSecret(t *testing.T) {
	SetSecret("")

	if _, err := GenerateToken(models.User{ID: 1, Username: "admin"}); err == nil {
		t.Error("expected error when no secret is configured")
	}
	SetSecret("unit-test-secret")
}
