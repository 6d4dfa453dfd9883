package application

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	repo "github.com/oksasatya/peopledesk/internal/domain/repository"
	"github.com/oksasatya/peopledesk/pkg/helpers"
	"github.com/oksasatya/peopledesk/pkg/mailer"
)

// OTPTTL is how long an issued OTP stays valid in the cache.
const OTPTTL = 300 * time.Second

// NotificationService generates OTP codes, caches them, and dispatches them
// by email. The cache entry is the source of truth for verification; the copy
// stamped onto the user record is an audit trail only.
type NotificationService struct {
	Repo        repo.UserRepository
	Cache       OTPCache
	Queue       EmailQueue
	Logger      *logrus.Logger
	MailEnabled bool
}

func NewNotificationService(r repo.UserRepository, cache OTPCache, queue EmailQueue, logger *logrus.Logger, mailEnabled bool) *NotificationService {
	return &NotificationService{Repo: r, Cache: cache, Queue: queue, Logger: logger, MailEnabled: mailEnabled}
}

// SendEmail enqueues a single mail job. One attempt, no retries; transport
// failure surfaces as ErrMailSend.
func (s *NotificationService) SendEmail(ctx context.Context, to, subject, text string) error {
	if !s.MailEnabled {
		s.Logger.WithField("to", to).Debug("mail sending disabled, dropping email")
		return nil
	}
	job := mailer.EmailJob{To: to, Subject: subject, Text: text}
	if err := s.Queue.PublishJSON(ctx, job); err != nil {
		s.Logger.WithError(err).WithField("to", to).Error("failed to enqueue email")
		return ErrMailSend
	}
	s.Logger.WithField("to", to).Info("email enqueued")
	return nil
}

func (s *NotificationService) sendOTPEmail(ctx context.Context, email, code, purpose string) error {
	subject := "Email Verification OTP"
	if purpose != "verification" {
		subject = "Password Reset OTP"
	}
	text := fmt.Sprintf("Your OTP for %s is: %s. This OTP will expire in 5 minutes.", purpose, code)
	return s.SendEmail(ctx, email, subject, text)
}

// issueOTP generates a fresh code, caches it under the email with OTPTTL, and
// stamps the audit copy onto the user record.
func (s *NotificationService) issueOTP(ctx context.Context, email string) (string, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrUserNotFound
	}

	code, err := helpers.GenOTPCode()
	if err != nil {
		return "", err
	}
	if err := s.Cache.Put(ctx, email, code, OTPTTL); err != nil {
		return "", err
	}

	expiry := time.Now().Add(OTPTTL)
	u.OTP = code
	u.OTPExpiry = &expiry
	if err := s.Repo.Update(u); err != nil {
		return "", err
	}
	return code, nil
}

// SendVerificationOTP issues and emails a verification OTP. Resend performs
// the identical operation; no cooldown is enforced.
func (s *NotificationService) SendVerificationOTP(ctx context.Context, email string) error {
	code, err := s.issueOTP(ctx, email)
	if err != nil {
		return err
	}
	if err := s.sendOTPEmail(ctx, email, code, "verification"); err != nil {
		return err
	}
	s.Logger.WithField("email", email).Info("verification OTP sent")
	return nil
}

// SendPasswordResetOTP issues and emails a password-reset OTP. An unknown
// email is not an error: the caller always answers with the same generic
// message, so account existence never leaks.
func (s *NotificationService) SendPasswordResetOTP(ctx context.Context, email string) error {
	code, err := s.issueOTP(ctx, email)
	if err == ErrUserNotFound {
		s.Logger.WithField("email", email).Info("password reset attempted for unknown email")
		return nil
	}
	if err != nil {
		return err
	}
	if err := s.sendOTPEmail(ctx, email, code, "password reset"); err != nil {
		return err
	}
	s.Logger.WithField("email", email).Info("password reset OTP sent")
	return nil
}

// VerifyOTP checks the supplied code against the cache. A matching code is
// consumed atomically (single use); a mismatch leaves the cached code intact.
func (s *NotificationService) VerifyOTP(ctx context.Context, email, code string) error {
	res, err := s.Cache.Consume(ctx, email, code)
	if err != nil {
		return err
	}
	switch res {
	case OTPMatched:
		s.Logger.WithField("email", email).Info("OTP verified and consumed")
		return nil
	case OTPMismatch:
		return ErrOTPMismatch
	default:
		return ErrOTPExpired
	}
}
