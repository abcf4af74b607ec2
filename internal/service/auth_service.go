package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/record-shop/internal/auth"
	"github.com/spec-kit/record-shop/internal/domain"
	"github.com/spec-kit/record-shop/internal/notify"
	"github.com/spec-kit/record-shop/internal/repository"
	apperrors "github.com/spec-kit/record-shop/pkg/util/errorutil"
)

// AuthService coordinates registration and login flows. Every authentication
// outcome is published on the auth topic so dashboard observers see logins
// in real time; token issuance never depends on notification delivery.
type AuthService struct {
	users       repository.UserRepository
	issuer      *auth.Issuer
	validator   *auth.Validator
	broadcaster *notify.Broadcaster
	ttl         time.Duration
	bcryptCost  int
	now         func() time.Time
}

// AuthDependencies encapsulates collaborator requirements for auth service.
type AuthDependencies struct {
	UserRepo    repository.UserRepository
	Issuer      *auth.Issuer
	Validator   *auth.Validator
	Broadcaster *notify.Broadcaster
	TokenTTL    time.Duration
	BcryptCost  int
}

// NewAuthService builds the service.
func NewAuthService(deps AuthDependencies) *AuthService {
	return &AuthService{
		users:       deps.UserRepo,
		issuer:      deps.Issuer,
		validator:   deps.Validator,
		broadcaster: deps.Broadcaster,
		ttl:         deps.TokenTTL,
		bcryptCost:  deps.BcryptCost,
		now:         time.Now,
	}
}

// Register creates a new account and issues a first token.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*domain.User, string, time.Time, error) {
	emailTaken, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if emailTaken {
		return nil, "", time.Time{}, apperrors.NewConflict("email already registered", nil)
	}

	usernameTaken, err := s.users.UsernameExists(ctx, username)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if usernameTaken {
		return nil, "", time.Time{}, apperrors.NewConflict("username already taken", nil)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", time.Time{}, err
	}

	token, exp, err := s.issueFor(user)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	s.broadcaster.Publish(notify.TopicAuth, notify.Message{
		Message: "User registered: " + user.Email,
		Type:    notify.TypeInfo,
	})
	return user, token, exp, nil
}

// Login authenticates credentials and issues a token. Unknown accounts and
// bad passwords take the same rejection path.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.publishLoginFailure(email)
			return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, "", time.Time{}, err
	}

	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		s.publishLoginFailure(email)
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}

	token, exp, err := s.issueFor(user)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	s.broadcaster.Publish(notify.TopicAuth, notify.Message{
		Message: "User logged in: " + user.Email,
		Type:    notify.TypeSuccess,
	})
	return user, token, exp, nil
}

// ValidateToken checks an incoming token and returns its claims.
func (s *AuthService) ValidateToken(tokenStr string) (*auth.Claims, error) {
	return s.validator.Validate(tokenStr, s.now())
}

// Logout no-ops server-side for the stateless token approach; the handler
// clears the cookie.
func (s *AuthService) Logout(_ context.Context) error {
	return nil
}

func (s *AuthService) issueFor(user *domain.User) (string, time.Time, error) {
	principal := auth.Principal{
		UserID:  user.ID,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
	}
	return s.issuer.Issue(principal, s.now(), s.ttl)
}

func (s *AuthService) publishLoginFailure(email string) {
	s.broadcaster.Publish(notify.TopicAuth, notify.Message{
		Message: "Login failed: " + email,
		Type:    notify.TypeFailure,
	})
}
