package services

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/levushkin/orders-backend/internal/config"
	"github.com/levushkin/orders-backend/internal/logger"
	"golang.org/x/crypto/bcrypt"
)

// IdentityService - аутентификация администратора
type IdentityService interface {
	Authenticate(login string, password string) bool
	GenerateJWT(login string) (string, error)
	GetTokenAuth() *jwtauth.JWTAuth
}

const (
	TokenSecterAlgo     = "HS256"
	TokenExpirationTime = 24 * time.Hour
)

type Identity struct {
	JWTAuth *jwtauth.JWTAuth
	Config  config.AdminConfig
}

// Создание сервиса
func NewIdentity(cfg config.AdminConfig) IdentityService {
	tokenAuth := jwtauth.New(TokenSecterAlgo, []byte(cfg.JWTSecret), nil)
	return &Identity{JWTAuth: tokenAuth, Config: cfg}
}

// Authenticate - проверка логина и пароля администратора.
// Без настроенного ADMIN_PASSWORD_HASH вход всегда закрыт.
func (i *Identity) Authenticate(login string, password string) bool {
	if i.Config.PasswordHash == "" {
		logger.Warn("Admin login disabled, ADMIN_PASSWORD_HASH is not set")
		return false
	}
	if login != i.Config.Login {
		return false
	}
	err := bcrypt.CompareHashAndPassword([]byte(i.Config.PasswordHash), []byte(password))
	if err != nil {
		logger.Warn("Invalid admin password", login)
		return false
	}
	return true
}

// Создание строки JWT токена
func (i *Identity) GenerateJWT(login string) (string, error) {
	expirationTime := time.Now().Add(TokenExpirationTime)

	_, tokenString, err := i.JWTAuth.Encode(map[string]interface{}{
		"username": login,
		"exp":      expirationTime,
	})
	return tokenString, err
}

// Возвращаем указатель на JWTAuth (chi)
func (i *Identity) GetTokenAuth() *jwtauth.JWTAuth {
	return i.JWTAuth
}
