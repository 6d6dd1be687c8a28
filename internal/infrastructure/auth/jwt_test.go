package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/domain"
)

func TestJWTManager_GenerateAndVerify(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)

	user := &domain.User{
		ID:    "u-1",
		Email: "hr@example.com",
		Role:  domain.RoleHR,
	}

	token, err := manager.Generate(user)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := manager.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}

	if claims.UserID != "u-1" || claims.Email != "hr@example.com" || claims.Role != domain.RoleHR {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestJWTManager_Expired(t *testing.T) {
	manager := NewJWTManager("test-secret", -time.Minute)

	token, err := manager.Generate(&domain.User{ID: "u-1", Role: domain.RoleEmployee})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	_, err = manager.Verify(token)
	if !errors.Is(err, domain.ErrExpiredToken) {
		t.Fatalf("error = %v, want ErrExpiredToken", err)
	}
}

func TestJWTManager_WrongSecret(t *testing.T) {
	token, err := NewJWTManager("secret-a", time.Hour).Generate(&domain.User{ID: "u-1", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	_, err = NewJWTManager("secret-b", time.Hour).Verify(token)
	if !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("error = %v, want ErrInvalidToken", err)
	}
}

func TestJWTManager_InvalidRole(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)

	token, err := manager.Generate(&domain.User{ID: "u-1", Role: domain.Role("operator")})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	_, err = manager.Verify(token)
	if !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("error = %v, want ErrInvalidToken", err)
	}
}

func TestJWTManager_Garbage(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)

	if _, err := manager.Verify("not-a-token"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("error = %v, want ErrInvalidToken", err)
	}
}
