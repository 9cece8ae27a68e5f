package services

import (
	"context"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/waitlist-simple/apperrors"
	"github.com/waitlist-simple/dto"
	"github.com/waitlist-simple/models"
	"github.com/waitlist-simple/repositories"
)

const tokenTTL = time.Hour

// AuthService handles the human login path: accounts and identity tokens.
// This is orthogonal to tenancy; an identity token never grants project or
// admin access.
type AuthService struct {
	userRepo *repositories.UserRepository
}

// NewAuthService creates a new auth service instance
func NewAuthService() *AuthService {
	return &AuthService{
		userRepo: repositories.NewUserRepository(),
	}
}

// Register creates a new user account. Email uniqueness is enforced by the
// database constraint, not a lookup.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, apperrors.NewInternal(err)
	}

	userType := models.UserType(req.UserType)
	if userType == "" {
		userType = models.UserTypeUser
	}

	user := models.User{
		Email:    NormalizeEmail(req.Email),
		Password: string(hashedPassword),
		Username: req.Username,
		UserType: userType,
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return models.User{}, err
	}

	created.Password = ""
	return created, nil
}

// Login authenticates a user and returns a signed identity token. Unknown
// email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (dto.AuthResponse, error) {
	invalid := apperrors.NewUnauthorized("Invalid email or password")

	user, err := s.userRepo.FindByEmail(ctx, NormalizeEmail(req.Email))
	if err != nil {
		if apperrors.IsKind(err, apperrors.KindNotFound) {
			return dto.AuthResponse{}, invalid
		}
		return dto.AuthResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return dto.AuthResponse{}, invalid
	}

	token, expiresAt, err := GenerateToken(user)
	if err != nil {
		return dto.AuthResponse{}, err
	}

	user.Password = ""
	return dto.AuthResponse{
		Token:     token,
		User:      user,
		ExpiresAt: expiresAt,
	}, nil
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(ctx context.Context, id string) (models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	user.Password = ""
	return user, nil
}

// GenerateToken signs a new identity JWT for a user.
func GenerateToken(user models.User) (string, time.Time, error) {
	secretKey := os.Getenv("JWT_SECRET")
	if secretKey == "" {
		return "", time.Time{}, apperrors.NewInternal(jwt.ErrTokenUnverifiable)
	}

	expiresAt := time.Now().Add(tokenTTL)

	claims := dto.TokenClaims{
		ID:       user.ID,
		Email:    user.Email,
		Username: user.Username,
		UserType: string(user.UserType),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secretKey))
	if err != nil {
		return "", time.Time{}, apperrors.NewInternal(err)
	}

	return tokenString, expiresAt, nil
}

// ValidateToken verifies an identity JWT. Any failure, bad signature or
// expiry alike, yields the same uniform error.
func ValidateToken(tokenString string) (*dto.TokenClaims, error) {
	invalid := apperrors.NewUnauthorized("Invalid or expired token")

	secretKey := os.Getenv("JWT_SECRET")
	if secretKey == "" {
		return nil, invalid
	}

	token, err := jwt.ParseWithClaims(tokenString, &dto.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secretKey), nil
	})
	if err != nil || !token.Valid {
		return nil, invalid
	}

	claims, ok := token.Claims.(*dto.TokenClaims)
	if !ok {
		return nil, invalid
	}

	return claims, nil
}
