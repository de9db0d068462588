package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/martijn/inkwell/internal/core/domain"
	"github.com/martijn/inkwell/internal/core/repository"
	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultTokenTTLHours = 24
	BcryptCost           = 10
)

type AuthService struct {
	userRepo     repository.UserRepository
	jwtSecret    string
	jwtAlgorithm string
	tokenTTL     time.Duration
}

func NewAuthService(
	userRepo repository.UserRepository,
	jwtSecret string,
	jwtAlgorithm string,
	tokenTTLHours int,
) *AuthService {
	if tokenTTLHours <= 0 {
		tokenTTLHours = DefaultTokenTTLHours
	}
	return &AuthService{
		userRepo:     userRepo,
		jwtSecret:    jwtSecret,
		jwtAlgorithm: jwtAlgorithm,
		tokenTTL:     time.Duration(tokenTTLHours) * time.Hour,
	}
}

// HashPassword hashes a password using bcrypt
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword verifies a password against a hash
func (s *AuthService) VerifyPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// Register creates a new user with a hashed password. The email must not
// be in use yet.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	taken, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := s.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := domain.NewUser(name, email, hash)
	if err := s.userRepo.Create(ctx, user); err != nil {
		// A concurrent signup can slip past the existence check; the
		// unique constraint is the authority.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Authenticate verifies the credentials and mints a bearer token. The
// failure is identical whether the email is unknown or the password is
// wrong.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !s.VerifyPassword(password, user.Password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.generateJWT(user.ID)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// ResolveUser loads the user identified by a validated token's claims.
func (s *AuthService) ResolveUser(ctx context.Context, claims *TokenClaims) (*domain.User, error) {
	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid token subject: %w", err)
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

// ValidateToken validates a JWT token and returns the claims
func (s *AuthService) ValidateToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if token.Method.Alg() != s.jwtAlgorithm {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})

	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(*TokenClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token claims")
}

// TokenTTL returns the configured token lifetime.
func (s *AuthService) TokenTTL() time.Duration {
	return s.tokenTTL
}

// generateJWT generates a JWT token with the user id as subject
func (s *AuthService) generateJWT(userID int64) (string, error) {
	now := time.Now()

	claims := TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "inkwell",
		},
	}

	var signingMethod jwt.SigningMethod
	switch s.jwtAlgorithm {
	case "HS256":
		signingMethod = jwt.SigningMethodHS256
	case "HS384":
		signingMethod = jwt.SigningMethodHS384
	case "HS512":
		signingMethod = jwt.SigningMethodHS512
	default:
		signingMethod = jwt.SigningMethodHS256
	}

	token := jwt.NewWithClaims(signingMethod, claims)
	tokenString, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// TokenClaims represents JWT claims
type TokenClaims struct {
	jwt.RegisteredClaims
}
