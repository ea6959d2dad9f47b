package jwt

import (
	"testing"
	"time"

	"github.com/pmchavezc/proyecto-analisis-de-sistemas-2/config"
)

func newTestManager() *Manager {
	return NewManager(&config.AuthConfig{
		JWTSecret:               "clave-secreta-de-pruebas-unitarias",
		AccessTokenTTL:          15 * time.Minute,
		RefreshTokenTTLDefault:  24 * time.Hour,
		RefreshTokenTTLRemember: 7 * 24 * time.Hour,
	})
}

func TestGenerateAndParseAccessToken(t *testing.T) {
	mgr := newTestManager()

	token, err := mgr.GenerateAccessToken("user-1", "admin", "ADMIN")
	if err != nil {
		t.Fatalf("GenerateAccessToken debería funcionar: %v", err)
	}

	claims, err := mgr.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken debería funcionar: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("se esperaba UserID=user-1, se obtuvo %s", claims.UserID)
	}
	if claims.Username != "admin" {
		t.Errorf("se esperaba Username=admin, se obtuvo %s", claims.Username)
	}
	if claims.TokenType != "access" {
		t.Errorf("se esperaba TokenType=access, se obtuvo %s", claims.TokenType)
	}
	if claims.ID == "" {
		t.Error("el JTI no debería estar vacío")
	}
}

func TestGenerateRefreshToken_RememberMe(t *testing.T) {
	mgr := newTestManager()

	token, err := mgr.GenerateRefreshToken("user-1", "admin", "ADMIN", true)
	if err != nil {
		t.Fatalf("GenerateRefreshToken debería funcionar: %v", err)
	}

	claims, err := mgr.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken debería funcionar: %v", err)
	}
	if claims.TokenType != "refresh" {
		t.Errorf("se esperaba TokenType=refresh, se obtuvo %s", claims.TokenType)
	}
	if !claims.RememberMe {
		t.Error("se esperaba RememberMe=true")
	}

	// Con rememberMe la vigencia debe superar el TTL por defecto
	if time.Until(claims.ExpiresAt.Time) < 25*time.Hour {
		t.Error("rememberMe debería extender la vigencia del refresh token")
	}
}

func TestParseToken_Invalid(t *testing.T) {
	mgr := newTestManager()

	if _, err := mgr.ParseToken("cadena.invalida.token"); err != ErrTokenInvalid {
		t.Errorf("se esperaba ErrTokenInvalid, se obtuvo %v", err)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	mgr := newTestManager()
	otro := NewManager(&config.AuthConfig{
		JWTSecret:      "otra-clave-distinta-de-pruebas",
		AccessTokenTTL: 15 * time.Minute,
	})

	token, _ := mgr.GenerateAccessToken("user-1", "admin", "ADMIN")
	if _, err := otro.ParseToken(token); err != ErrTokenInvalid {
		t.Errorf("token firmado con otra clave debería ser inválido, se obtuvo %v", err)
	}
}
