package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

const jwtTestSecret = "jwt-test-secret"

func TestTokenPairRoundTrip(t *testing.T) {
	userID := uuid.New()
	access, refresh, err := GenerateTokenPair(userID, "farmer", "farmer@example.com", "viewer", jwtTestSecret, time.Hour, 24*time.Hour)
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}

	userCtx, err := ValidateAccessToken(access, jwtTestSecret)
	if err != nil {
		t.Fatalf("ValidateAccessToken: %v", err)
	}
	if userCtx.ID != userID || userCtx.Username != "farmer" || userCtx.Role != "viewer" {
		t.Errorf("user context = %+v", userCtx)
	}

	claims, err := ParseRefreshToken(refresh, jwtTestSecret)
	if err != nil {
		t.Fatalf("ParseRefreshToken: %v", err)
	}
	if claims.TokenType != TokenTypeRefresh {
		t.Errorf("token type = %s", claims.TokenType)
	}
	if claims.ID == "" {
		t.Error("refresh token missing jti")
	}
}

func TestTokenTypeEnforcement(t *testing.T) {
	access, refresh, err := GenerateTokenPair(uuid.New(), "farmer", "farmer@example.com", "viewer", jwtTestSecret, time.Hour, 24*time.Hour)
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}

	if _, err := ValidateAccessToken(refresh, jwtTestSecret); !errors.Is(err, ErrWrongTokenType) {
		t.Errorf("refresh as access: got %v, want ErrWrongTokenType", err)
	}
	if _, err := ParseRefreshToken(access, jwtTestSecret); !errors.Is(err, ErrWrongTokenType) {
		t.Errorf("access as refresh: got %v, want ErrWrongTokenType", err)
	}
}

func TestParseTokenErrors(t *testing.T) {
	if _, err := ParseToken("", jwtTestSecret); !errors.Is(err, ErrMissingToken) {
		t.Errorf("empty token: got %v, want ErrMissingToken", err)
	}
	if _, err := ParseToken("not-a-token", jwtTestSecret); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("garbage token: got %v, want ErrInvalidToken", err)
	}

	access, _, err := GenerateTokenPair(uuid.New(), "farmer", "farmer@example.com", "viewer", jwtTestSecret, time.Hour, time.Hour)
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}
	if _, err := ParseToken(access, "other-secret"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("wrong secret: got %v, want ErrInvalidToken", err)
	}
}

func TestExpiredToken(t *testing.T) {
	access, _, err := GenerateTokenPair(uuid.New(), "farmer", "farmer@example.com", "viewer", jwtTestSecret, -time.Minute, time.Hour)
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}
	if _, err := ParseToken(access, jwtTestSecret); !errors.Is(err, ErrExpiredToken) {
		t.Errorf("expired token: got %v, want ErrExpiredToken", err)
	}
}

func TestExtractTokenFromHeader(t *testing.T) {
	cases := []struct {
		header string
		want   string
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi"},
		{"", ""},
		{"abc.def.ghi", ""},
		{"Basic dXNlcjpwYXNz", ""},
		{"Bearer", ""},
	}
	for _, tc := range cases {
		if got := ExtractTokenFromHeader(tc.header); got != tc.want {
			t.Errorf("ExtractTokenFromHeader(%q) = %q, want %q", tc.header, got, tc.want)
		}
	}
}
