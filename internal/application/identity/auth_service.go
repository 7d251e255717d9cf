package identity

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/retailnet/backend/internal/domain/identity"
	"github.com/retailnet/backend/internal/domain/shared"
)

// KeyGenerator produces opaque token keys
type KeyGenerator func() (string, error)

// AuthService handles registration, login and token issuance
type AuthService struct {
	users  identity.UserRepository
	tokens identity.TokenRepository
	keygen KeyGenerator
	logger *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(users identity.UserRepository, tokens identity.TokenRepository, keygen KeyGenerator, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		keygen: keygen,
		logger: logger,
	}
}

// Register creates a new account. The password is validated against the
// policy before the email uniqueness check so that weak-password feedback
// does not depend on whether the address is taken.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*UserInfo, error) {
	if err := identity.ValidatePassword(input.Password); err != nil {
		return nil, err
	}

	user, err := identity.NewUser(input.Email, input.FirstName, input.LastName, input.Company, input.Position, input.Type)
	if err != nil {
		return nil, err
	}

	taken, err := s.users.ExistsByEmail(ctx, user.Email)
	if err != nil {
		s.logger.Error("Failed to check email uniqueness", zap.Error(err))
		return nil, err
	}
	if taken {
		return nil, shared.NewDomainError("DUPLICATE_EMAIL", "A user with this email already exists")
	}

	if err := user.SetPassword(input.Password); err != nil {
		return nil, err
	}

	if err := s.users.Create(ctx, user); err != nil {
		s.logger.Error("Failed to create user", zap.String("email", user.Email), zap.Error(err))
		return nil, err
	}

	s.logger.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("type", string(user.Type)))

	info := ToUserInfo(user)
	return &info, nil
}

// Login verifies credentials and returns the user's bearer token. The token
// is created on first login and reused afterwards.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	user, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
		}
		s.logger.Error("Failed to look up user", zap.Error(err))
		return nil, err
	}

	if !user.VerifyPassword(input.Password) {
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}
	if !user.IsActive {
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Account is disabled")
	}

	token, err := s.tokens.GetOrCreate(ctx, user.ID, s.keygen)
	if err != nil {
		s.logger.Error("Failed to issue token", zap.String("user_id", user.ID.String()), zap.Error(err))
		return nil, err
	}

	s.logger.Info("User logged in", zap.String("user_id", user.ID.String()))

	return &LoginResult{
		Token: token.Key,
		User:  ToUserInfo(user),
	}, nil
}

// Authenticate resolves a bearer token key to its user. Unknown keys and
// disabled accounts both fail with UNAUTHORIZED.
func (s *AuthService) Authenticate(ctx context.Context, key string) (*identity.User, error) {
	token, err := s.tokens.FindByKey(ctx, key)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid token")
		}
		return nil, err
	}

	user, err := s.users.FindByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid token")
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Account is disabled")
	}
	return user, nil
}
