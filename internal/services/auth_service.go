package services

import (
	"context"
	"errors"
	"time"

	"shop-service/internal/domain"
	"shop-service/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("Invalid credentials")

const sessionTTL = 24 * time.Hour

// AuthService issues and verifies admin session tokens. The env credential
// pair is checked before the user table, so a single-admin deployment needs
// no DB row at all.
type AuthService struct {
	users         repository.UserRepository
	secret        []byte
	adminEmail    string
	adminPassword string
}

func NewAuthService(users repository.UserRepository, secret, adminEmail, adminPassword string) *AuthService {
	return &AuthService{
		users:         users,
		secret:        []byte(secret),
		adminEmail:    adminEmail,
		adminPassword: adminPassword,
	}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	if s.adminEmail != "" && email == s.adminEmail && password == s.adminPassword {
		return s.issueToken("admin-env", email)
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil || user.Role != domain.RoleAdmin {
		return "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	return s.issueToken(user.ID, user.Email)
}

func (s *AuthService) issueToken(userID, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(sessionTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// VerifyToken parses and validates a session token, returning the admin's
// email.
func (s *AuthService) VerifyToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}
	email, _ := claims["email"].(string)
	if email == "" {
		return "", errors.New("invalid token claims")
	}
	return email, nil
}
