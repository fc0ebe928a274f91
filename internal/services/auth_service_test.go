package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jobtrail/jobtrail-backend/internal/config"
	"github.com/jobtrail/jobtrail-backend/internal/models"
)

func TestGenerateTokenRoundTrip(t *testing.T) {
	cfg := &config.Config{
		JWTSecret: "test-secret-do-not-use",
		JWTExpiry: time.Hour,
	}
	svc := NewAuthService(nil, cfg)

	user := &models.User{
		ID:    uuid.New(),
		Email: "jane@example.com",
	}

	signed, err := svc.generateToken(user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	token, err := jwt.Parse(signed, func(tok *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		t.Fatalf("failed to parse token: %v", err)
	}
	if !token.Valid {
		t.Fatal("token should be valid")
	}

	claims := token.Claims.(jwt.MapClaims)
	if claims["sub"] != user.ID.String() {
		t.Errorf("sub = %v, want %s", claims["sub"], user.ID)
	}
	if claims["email"] != user.Email {
		t.Errorf("email = %v", claims["email"])
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		t.Fatalf("missing exp claim: %v", err)
	}
	untilExpiry := time.Until(exp.Time)
	if untilExpiry < 55*time.Minute || untilExpiry > 65*time.Minute {
		t.Errorf("expiry %v not near configured 1h", untilExpiry)
	}
}

func TestGenerateTokenRejectsWrongKey(t *testing.T) {
	svc := NewAuthService(nil, &config.Config{JWTSecret: "right-key", JWTExpiry: time.Hour})

	signed, err := svc.generateToken(&models.User{ID: uuid.New(), Email: "a@b.c"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = jwt.Parse(signed, func(tok *jwt.Token) (interface{}, error) {
		return []byte("wrong-key"), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err == nil {
		t.Fatal("token signed with a different key must not verify")
	}
}
