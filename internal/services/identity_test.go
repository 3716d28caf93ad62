package services

import (
	"testing"

	"github.com/levushkin/orders-backend/internal/config"
	"github.com/levushkin/orders-backend/internal/logger"
	"golang.org/x/crypto/bcrypt"
)

func TestNewIdentityService(t *testing.T) {
	t.Run("Identity_CreatesService", func(t *testing.T) {
		cfg := config.DefaultConfig()
		identity := NewIdentity(cfg.Admin)
		baseService, ok := identity.(*Identity)
		if !ok {
			t.Fatalf("Expected *Identity, got: '%T'", identity)
		}
		if baseService == nil || baseService.JWTAuth == nil {
			t.Errorf("Expected Identity to be initialized with JWTAuth")
		}
	})
}

func TestAuthenticate(t *testing.T) {
	cfg := config.DefaultConfig()
	if err := logger.Initialize(cfg.Server.LogLevel); err != nil {
		logger.Panic(err)
	}
	defer logger.Sync()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("Failed to generate hash: %v", err)
	}

	testCases := []struct {
		TestName string
		Admin    config.AdminConfig
		Login    string
		Password string
		Expected bool
	}{
		{
			TestName: "Success. Valid credentials #1",
			Admin:    config.AdminConfig{Login: "admin", PasswordHash: string(hash), JWTSecret: "secret"},
			Login:    "admin",
			Password: "correct horse",
			Expected: true,
		},
		{
			TestName: "Error. Wrong password #2",
			Admin:    config.AdminConfig{Login: "admin", PasswordHash: string(hash), JWTSecret: "secret"},
			Login:    "admin",
			Password: "battery staple",
			Expected: false,
		},
		{
			TestName: "Error. Wrong login #3",
			Admin:    config.AdminConfig{Login: "admin", PasswordHash: string(hash), JWTSecret: "secret"},
			Login:    "root",
			Password: "correct horse",
			Expected: false,
		},
		{
			TestName: "Error. No hash configured, login disabled #4",
			Admin:    config.AdminConfig{Login: "admin", JWTSecret: "secret"},
			Login:    "admin",
			Password: "correct horse",
			Expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			identity := NewIdentity(tc.Admin)

			if got := identity.Authenticate(tc.Login, tc.Password); got != tc.Expected {
				t.Errorf("Expected %v, got %v", tc.Expected, got)
			}
		})
	}
}

func TestGenerateJWT(t *testing.T) {
	cfg := config.DefaultConfig()
	identity := NewIdentity(cfg.Admin)

	token, err := identity.GenerateJWT("admin")
	if err != nil {
		t.Fatalf("Expected no error, got '%v'", err)
	}
	if token == "" {
		t.Errorf("Expected non-empty token")
	}
}
