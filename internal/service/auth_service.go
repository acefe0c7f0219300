package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"pet-care-api/internal/model"
	"pet-care-api/pkg/apierror"
)

const (
	minUsernameLength = 3
	minPasswordLength = 6
	bcryptCost        = 12
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// UserStore is the credential store the authenticator needs. Both the
// Postgres and in-memory repositories satisfy it.
type UserStore interface {
	Create(ctx context.Context, u model.User) error
	FindByID(ctx context.Context, id string) (model.User, error)
	FindByIdentifier(ctx context.Context, identifier string) (model.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type AuthService struct {
	users     UserStore
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuthService(jwtSecret string, tokenTTL time.Duration, users UserStore) (*AuthService, error) {
	if strings.TrimSpace(jwtSecret) == "" {
		return nil, errors.New("jwt secret is required")
	}
	if tokenTTL <= 0 {
		return nil, errors.New("token ttl must be positive")
	}

	return &AuthService{
		users:     users,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
	}, nil
}

type sessionClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username,omitempty"`
}

// Register creates the account and mints a session token so the new
// user is logged in immediately.
func (s *AuthService) Register(ctx context.Context, username string, email string, password string) (model.AuthResult, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	if len(username) < minUsernameLength {
		return model.AuthResult{}, apierror.Validation("username must be at least 3 characters", "username")
	}
	if !emailPattern.MatchString(email) {
		return model.AuthResult{}, apierror.Validation("a valid email is required", "email")
	}
	if len(password) < minPasswordLength {
		return model.AuthResult{}, apierror.Validation("password must be at least 6 characters", "password")
	}

	// Pre-checks give the caller a field-specific conflict message.
	// The store's unique indexes still close the race underneath.
	taken, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return model.AuthResult{}, fmt.Errorf("check username: %w", err)
	}
	if taken {
		return model.AuthResult{}, apierror.Duplicate("username already taken", "username")
	}

	registered, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return model.AuthResult{}, fmt.Errorf("check email: %w", err)
	}
	if registered {
		return model.AuthResult{}, apierror.Duplicate("email already registered", "email")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return model.AuthResult{}, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := model.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, model.ErrUsernameTaken) {
			return model.AuthResult{}, apierror.Duplicate("username already taken", "username")
		}
		if errors.Is(err, model.ErrEmailTaken) {
			return model.AuthResult{}, apierror.Duplicate("email already registered", "email")
		}
		return model.AuthResult{}, fmt.Errorf("create user: %w", err)
	}

	return s.issueToken(user)
}

// Login resolves the account by username or email and verifies the
// password. Every failure collapses into one generic error so callers
// cannot probe which accounts exist.
func (s *AuthService) Login(ctx context.Context, identifier string, password string) (model.AuthResult, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return model.AuthResult{}, apierror.Validation("identifier and password are required", "identifier", "password")
	}

	user, err := s.users.FindByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return model.AuthResult{}, apierror.Unauthorized("invalid credentials")
		}
		return model.AuthResult{}, fmt.Errorf("find user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return model.AuthResult{}, apierror.Unauthorized("invalid credentials")
	}

	return s.issueToken(user)
}

// Authenticate turns a presented bearer token into the account it was
// minted for.
func (s *AuthService) Authenticate(ctx context.Context, tokenString string) (model.PublicUser, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return model.PublicUser{}, model.ErrMissingToken
	}

	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, model.ErrInvalidToken
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return model.PublicUser{}, model.ErrExpiredToken
		}
		return model.PublicUser{}, model.ErrInvalidToken
	}
	if !parsed.Valid || claims.Subject == "" {
		return model.PublicUser{}, model.ErrInvalidToken
	}

	user, err := s.users.FindByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return model.PublicUser{}, model.ErrUserNotFound
		}
		return model.PublicUser{}, fmt.Errorf("resolve token subject: %w", err)
	}

	return user.Public(), nil
}

// CheckUsername reports availability without requiring auth.
func (s *AuthService) CheckUsername(ctx context.Context, username string) (bool, error) {
	username = strings.TrimSpace(username)
	if len(username) < minUsernameLength {
		return false, apierror.Validation("username must be at least 3 characters", "username")
	}

	taken, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return false, fmt.Errorf("check username: %w", err)
	}
	return !taken, nil
}

func (s *AuthService) issueToken(user model.User) (model.AuthResult, error) {
	now := time.Now().UTC()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			ID:        uuid.NewString(),
		},
		Username: user.Username,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return model.AuthResult{}, fmt.Errorf("sign token: %w", err)
	}

	return model.AuthResult{
		Token:     signed,
		TokenType: "Bearer",
		ExpiresIn: int64(s.tokenTTL.Seconds()),
		User:      user.Public(),
	}, nil
}
