package utils

import (
	"testing"
)

func TestGenerateVerifyToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "rahasia-test")

	token, err := GenerateToken("user-123", "admin")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	claims, err := VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken() error = %v", err)
	}
	if claims.UserID != "user-123" {
		t.Errorf("UserID = %q, harusnya user-123", claims.UserID)
	}
	if claims.Role != "admin" {
		t.Errorf("Role = %q, harusnya admin", claims.Role)
	}
}

func TestVerifyTokenInvalid(t *testing.T) {
	t.Setenv("JWT_SECRET", "rahasia-test")

	tests := []struct {
		name  string
		token string
	}{
		{"kosong", ""},
		{"bukan jwt", "bukan.token.jwt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := VerifyToken(tt.token); err == nil {
				t.Error("VerifyToken() harus gagal untuk token tidak valid")
			}
		})
	}
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "rahasia-satu")
	token, err := GenerateToken("user-123", "guru")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	t.Setenv("JWT_SECRET", "rahasia-dua")
	if _, err := VerifyToken(token); err == nil {
		t.Error("VerifyToken() harus gagal kalau secret berbeda")
	}
}
