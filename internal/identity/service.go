package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"auction-marketplace/internal/marketerrors"
	model "auction-marketplace/internal/models"
	"auction-marketplace/utils"

	"github.com/golang-jwt/jwt/v5"
)

//go:generate mockgen -source=service.go -destination=mock_service.go -package=identity

// UserStore is the slice of the user table the identity service needs
type UserStore interface {
	GetUser(ctx context.Context, id uint) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	CreateUser(ctx context.Context, user *model.User) error
}

// TokenClaims are the JWT claims issued at login
type TokenClaims struct {
	UserID uint       `json:"uid"`
	Role   model.Role `json:"role"`
	jwt.RegisteredClaims
}

// Service authenticates credentials and verifies bearer tokens
type Service struct {
	users  UserStore
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewService creates an identity service signing HS256 tokens with secret
func NewService(users UserStore, secret string, ttl time.Duration) *Service {
	return &Service{
		users:  users,
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Login checks the email/password pair and issues an access token
func (s *Service) Login(ctx context.Context, email, password string) (model.Token, error) {
	user, err := s.users.GetUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, marketerrors.ErrNotFound) {
			return model.Token{}, fmt.Errorf("identity: %w", marketerrors.ErrInvalidCredentials)
		}
		return model.Token{}, fmt.Errorf("identity: failed to load user: %w", err)
	}
	if !CheckPassword(user.Password, password) {
		return model.Token{}, fmt.Errorf("identity: %w", marketerrors.ErrInvalidCredentials)
	}

	token, err := s.issue(user)
	if err != nil {
		return model.Token{}, fmt.Errorf("identity: failed to sign token: %w", err)
	}

	return model.Token{
		AccessToken: token,
		TokenType:   "bearer",
		UserID:      user.ID,
		UserName:    user.Name,
		UserEmail:   user.Email,
		UserRole:    user.Role,
		UserImg:     user.Img,
	}, nil
}

// Register creates a regular user account
func (s *Service) Register(ctx context.Context, in model.NewUser) (model.UserView, error) {
	user, err := NewAccount(in, model.RoleUser, s.now())
	if err != nil {
		return model.UserView{}, fmt.Errorf("identity: %w", err)
	}
	if err := s.users.CreateUser(ctx, &user); err != nil {
		return model.UserView{}, fmt.Errorf("identity: failed to create user %s: %w", in.Email, err)
	}
	return user.ToView(), nil
}

// Verify resolves a bearer token to the principal it was issued for. The
// user is reloaded so role changes and deletions take effect immediately.
func (s *Service) Verify(ctx context.Context, token string) (*Principal, error) {
	claims := &TokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("identity: %w: %v", marketerrors.ErrUnauthenticated, err)
	}

	user, err := s.users.GetUser(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, marketerrors.ErrNotFound) {
			return nil, fmt.Errorf("identity: token user %d gone: %w", claims.UserID, marketerrors.ErrUnauthenticated)
		}
		return nil, fmt.Errorf("identity: failed to load token user: %w", err)
	}
	return FromUser(user), nil
}

// EnsureAdmin creates the bootstrap administrator when no user owns email
func (s *Service) EnsureAdmin(ctx context.Context, name, email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	_, err := s.users.GetUserByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, marketerrors.ErrNotFound) {
		return fmt.Errorf("identity: failed to look up admin %s: %w", email, err)
	}

	admin, err := NewAccount(model.NewUser{Name: name, Email: email, Password: password}, model.RoleAdmin, s.now())
	if err != nil {
		return fmt.Errorf("identity: %w", err)
	}
	if err := s.users.CreateUser(ctx, &admin); err != nil {
		return fmt.Errorf("identity: failed to create admin %s: %w", email, err)
	}
	utils.Info("bootstrap admin created", map[string]any{"user_id": admin.ID, "email": email})
	return nil
}

func (s *Service) issue(user model.User) (string, error) {
	now := s.now()
	claims := TokenClaims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// NewAccount validates registration data and builds the row to insert with a
// hashed password.
func NewAccount(in model.NewUser, role model.Role, now time.Time) (model.User, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" {
		return model.User{}, fmt.Errorf("%w: name and email are required", marketerrors.ErrInvalidInput)
	}
	if len(in.Password) < 5 {
		return model.User{}, fmt.Errorf("%w: password must have at least 5 characters", marketerrors.ErrInvalidInput)
	}
	hashed, err := HashPassword(in.Password)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}
	return model.User{
		Name:      name,
		Email:     email,
		Password:  hashed,
		Role:      role,
		Address:   in.Address,
		Phone:     in.Phone,
		CreatedAt: now,
		Img:       in.Img,
	}, nil
}
