package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/peopledesk/internal/domain/entity"
	repo "github.com/oksasatya/peopledesk/internal/domain/repository"
	"github.com/oksasatya/peopledesk/pkg/helpers"
)

// AuthService orchestrates the identity lifecycle: signup, login, password
// recovery, and OTP verification.
type AuthService struct {
	Repo     repo.UserRepository
	JWT      *helpers.JWTManager
	Notifier *NotificationService
	Logger   *logrus.Logger
}

func NewAuthService(r repo.UserRepository, jwt *helpers.JWTManager, notifier *NotificationService, logger *logrus.Logger) *AuthService {
	return &AuthService{Repo: r, JWT: jwt, Notifier: notifier, Logger: logger}
}

// AuthResult carries a freshly issued session token and the public user.
type AuthResult struct {
	Token       string
	TokenExpiry time.Time
	User        *entity.User
}

// Signup registers a new user and immediately issues a session token.
// The email verification flag is set eagerly; the OTP flow re-confirms it but
// login is never gated on it.
func (s *AuthService) Signup(ctx context.Context, email, password, name string) (*AuthResult, error) {
	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		Email:           email,
		Password:        hash,
		Name:            name,
		IsEmailVerified: true,
	}
	if err := s.Repo.Create(u); err != nil {
		return nil, err
	}

	token, exp, err := s.JWT.GenerateToken(u.ID, u.Email)
	if err != nil {
		return nil, err
	}
	s.Logger.WithField("email", email).Info("new user registered")
	return &AuthResult{Token: token, TokenExpiry: exp, User: u}, nil
}

// Login validates credentials and issues a session token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if u == nil || !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}

	token, exp, err := s.JWT.GenerateToken(u.ID, u.Email)
	if err != nil {
		return nil, err
	}
	s.Logger.WithField("email", email).Info("user logged in")
	return &AuthResult{Token: token, TokenExpiry: exp, User: u}, nil
}

// ForgotPassword kicks off the OTP-based reset flow. It never reports whether
// the email is registered; the handler answers with the same generic message
// either way.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	return s.Notifier.SendPasswordResetOTP(ctx, email)
}

// SendOTP issues a verification OTP for a known email. Resend is the same
// operation.
func (s *AuthService) SendOTP(ctx context.Context, email string) error {
	return s.Notifier.SendVerificationOTP(ctx, email)
}

// VerifyOTP consumes a cached OTP. On a match the denormalized OTP fields are
// cleared, the email is marked verified, and - when newPassword is supplied -
// the password is rehashed and persisted, completing a reset flow.
func (s *AuthService) VerifyOTP(ctx context.Context, email, code, newPassword string) error {
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrUserNotFound
	}

	if err := s.Notifier.VerifyOTP(ctx, email, code); err != nil {
		return err
	}

	u.OTP = ""
	u.OTPExpiry = nil
	u.IsEmailVerified = true
	if newPassword != "" {
		hash, err := helpers.HashPassword(newPassword)
		if err != nil {
			return err
		}
		u.Password = hash
	}
	if err := s.Repo.Update(u); err != nil {
		return err
	}
	s.Logger.WithField("email", email).Info("OTP verified")
	return nil
}

// UpdatePassword rehashes and persists a new password for an authenticated
// user. The email comes from the validated session token, not the payload.
func (s *AuthService) UpdatePassword(ctx context.Context, email, newPassword string) error {
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrUserNotFound
	}
	hash, err := helpers.HashPassword(newPassword)
	if err != nil {
		return err
	}
	u.Password = hash
	if err := s.Repo.Update(u); err != nil {
		return err
	}
	s.Logger.WithField("email", email).Info("password updated")
	return nil
}
