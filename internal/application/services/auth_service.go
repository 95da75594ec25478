package services

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"github.com/sorrisolabs/odonto-backend/internal/application/validation"
	"github.com/sorrisolabs/odonto-backend/internal/domain/repositories"
	apperrors "github.com/sorrisolabs/odonto-backend/pkg/errors"
)

// TokenIssuer issues session tokens for an employee identifier
type TokenIssuer interface {
	Issue(employeeID int64) (string, error)
}

// TokenVerifier validates a bearer token and returns the embedded employee
// identifier
type TokenVerifier interface {
	Verify(token string) (int64, error)
}

// AuthResult is the successful authentication response
type AuthResult struct {
	Token string `json:"token"`
	Nome  string `json:"nome"`
}

// AuthService verifies employee credentials and issues signed, time-limited
// tokens. Wrong login and wrong password both answer as a 400-mapped
// rejection with distinct messages; neither issues a token.
type AuthService struct {
	repo   repositories.EmployeeRepository
	secret []byte
	ttl    time.Duration
}

// NewAuthService creates the authentication service
func NewAuthService(repo repositories.EmployeeRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		repo:   repo,
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Authenticate checks a login (CPF) and password against the stored employee
// record. The existence check and the credential fetch are two sequential
// reads, not a transaction; a concurrent credential change between them is an
// accepted race.
func (s *AuthService) Authenticate(ctx context.Context, login, senha string) (*AuthResult, error) {
	if err := validation.Required(map[string]any{
		"login": login,
		"senha": senha,
	}); err != nil {
		return nil, err
	}

	employee, err := s.repo.GetByLogin(ctx, login)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Type == apperrors.ErrorTypeNotFound {
			return nil, apperrors.NewUnauthorizedError("user not found")
		}
		return nil, err
	}

	hash, err := s.repo.GetCredential(ctx, login)
	if err != nil {
		return nil, err
	}
	if !checkPassword(hash, senha) {
		log.Info().Str("login", login).Msg("authentication rejected")
		return nil, apperrors.NewUnauthorizedError("invalid password")
	}

	token, err := s.Issue(employee.ID)
	if err != nil {
		return nil, err
	}

	return &AuthResult{Token: token, Nome: employee.Nome}, nil
}

// Issue signs a token embedding the employee identifier, valid for the
// configured window (7 days by default)
func (s *AuthService) Issue(employeeID int64) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":  employeeID,
		"iat": now.Unix(),
		"exp": now.Add(s.ttl).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", apperrors.NewInternalError("failed to sign token", err)
	}
	return token, nil
}

// Verify parses a bearer token, rejecting bad signatures and expired claims,
// and returns the embedded employee identifier
func (s *AuthService) Verify(tokenString string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.NewUnauthorizedError("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, apperrors.NewUnauthorizedError("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, apperrors.NewUnauthorizedError("malformed token claims")
	}
	id, ok := claims["id"].(float64)
	if !ok {
		return 0, apperrors.NewUnauthorizedError("malformed token claims")
	}

	return int64(id), nil
}
