package helpers

import (
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
)

func TestGenerateAndValidateToken(t *testing.T) {
	t.Setenv("SECRET_KEY", "unit-test-secret")

	token, refreshToken, err := GenerateAllTokens("owner@restaurant.com", "Alex Chen", "user-1", "OWNER")
	if err != nil {
		t.Fatal(err)
	}
	if token == "" || refreshToken == "" {
		t.Fatal("expected both tokens to be signed")
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.Email != "owner@restaurant.com" {
		t.Errorf("email = %q, want owner@restaurant.com", claims.Email)
	}
	if claims.Name != "Alex Chen" {
		t.Errorf("name = %q, want Alex Chen", claims.Name)
	}
	if claims.Uid != "user-1" {
		t.Errorf("uid = %q, want user-1", claims.Uid)
	}
	if claims.User_role != "OWNER" {
		t.Errorf("user_role = %q, want OWNER", claims.User_role)
	}

	// The refresh token carries only the uid.
	refreshClaims, err := ValidateToken(refreshToken)
	if err != nil {
		t.Fatal(err)
	}
	if refreshClaims.Uid != "user-1" {
		t.Errorf("refresh uid = %q, want user-1", refreshClaims.Uid)
	}
	if refreshClaims.Email != "" {
		t.Errorf("refresh email = %q, want empty", refreshClaims.Email)
	}
}

func TestValidateToken_Expired(t *testing.T) {
	t.Setenv("SECRET_KEY", "unit-test-secret")

	expired := SignedDetails{
		Uid: "user-1",
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(-time.Hour).Unix(),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expired).SignedString([]byte("unit-test-secret"))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ValidateToken(signed); err == nil {
		t.Fatal("expected an expired token to be rejected")
	}
}

func TestValidateToken_Invalid(t *testing.T) {
	t.Setenv("SECRET_KEY", "unit-test-secret")

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "not a jwt", token: "garbage"},
		{name: "wrong segment count", token: "a.b"},
		{name: "mangled payload", token: "eyJhbGciOiJIUzI1NiJ9.bm90anNvbg.sig"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := ValidateToken(tt.token)
			if err == nil {
				t.Fatal("expected an error for a malformed token")
			}
			if claims != nil {
				t.Errorf("claims = %+v, want nil on rejection", claims)
			}
		})
	}
}

func TestValidateToken_WrongKey(t *testing.T) {
	t.Setenv("SECRET_KEY", "key-used-for-signing")
	token, _, err := GenerateAllTokens("staff@restaurant.com", "Sam Park", "user-2", "STAFF")
	if err != nil {
		t.Fatal(err)
	}

	t.Setenv("SECRET_KEY", "a-different-key")
	if _, err := ValidateToken(token); err == nil {
		t.Fatal("expected a token signed with another key to be rejected")
	}
}
