package auth

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"go.uber.org/zap"

	"CampusHire/internal/apperr"
)

const (
	// OTPTTL is how long a reset code stays valid after issuance.
	OTPTTL = 5 * time.Minute
	// resendMinInterval throttles back-to-back resend requests.
	resendMinInterval = 30 * time.Second
)

// Sender delivers transactional mail. *config.EmailService implements it.
type Sender interface {
	Send(ctx context.Context, to, subject, html string) error
}

// OTPService issues, resends, verifies and consumes the one-time reset codes
// used by the password-reset flow.
type OTPService struct {
	users  UserStore
	email  Sender
	jwtKey []byte
	logger *zap.Logger
	now    func() time.Time
}

func NewOTPService(users UserStore, email Sender, jwtKey []byte, logger *zap.Logger) *OTPService {
	return &OTPService{users: users, email: email, jwtKey: jwtKey, logger: logger, now: time.Now}
}

// generateCode returns a uniform random 6-digit code in [100000, 999999].
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

func (s *OTPService) hasActiveCode(user *User) bool {
	return user.ResetCodeExpiry != nil && s.now().Before(*user.ResetCodeExpiry)
}

// deliver emails the code, and only after successful delivery persists it
// with its expiry. Nothing is stored when delivery fails, so a failed issue
// leaves the account unchanged.
func (s *OTPService) deliver(ctx context.Context, user *User) error {
	code, err := generateCode()
	if err != nil {
		return err
	}

	subject := "Your CampusHire password reset code"
	body := fmt.Sprintf("<p>Hi %s,</p><p>Your password reset code is <strong>%s</strong>. It expires in 5 minutes.</p>", user.Name, code)
	if err := s.email.Send(ctx, user.Email, subject, body); err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrDeliveryFailed, err)
	}

	now := s.now()
	expiry := now.Add(OTPTTL)
	user.ResetCode = code
	user.ResetCodeExpiry = &expiry
	user.ResetCodeIssuedAt = &now
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}
	s.logger.Info("reset code issued", zap.String("email", user.Email))
	return nil
}

// Issue generates and emails a fresh reset code unless one is still active,
// in which case the request is rejected to curb spamming and enumeration.
func (s *OTPService) Issue(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return err
	}
	if user == nil {
		return apperr.ErrNotFound
	}
	if s.hasActiveCode(user) {
		return apperr.ErrAlreadyPending
	}
	return s.deliver(ctx, user)
}

// Resend always overwrites the previous code, active or not. It is the escape
// hatch for lost or expired codes, throttled to one request per
// resendMinInterval.
func (s *OTPService) Resend(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return err
	}
	if user == nil {
		return apperr.ErrNotFound
	}
	if user.ResetCodeIssuedAt != nil && s.now().Sub(*user.ResetCodeIssuedAt) < resendMinInterval {
		return apperr.ErrAlreadyPending
	}
	return s.deliver(ctx, user)
}

// Verify checks a submitted code. Expiry takes precedence over mismatch in
// the reported error. On success the code is cleared so it cannot be
// replayed, and a one-time proof token for the password-change step is
// returned.
func (s *OTPService) Verify(ctx context.Context, email, code string) (string, error) {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", apperr.ErrNotFound
	}
	if user.ResetCodeExpiry == nil {
		return "", apperr.ErrNoActiveCode
	}
	if s.now().After(*user.ResetCodeExpiry) {
		return "", apperr.ErrExpired
	}
	if user.ResetCode != code {
		return "", apperr.ErrMismatch
	}

	proof, jti, err := generateResetProof(user.Email, s.jwtKey, s.now())
	if err != nil {
		return "", err
	}
	user.ResetCode = ""
	user.ResetCodeExpiry = nil
	user.ResetCodeIssuedAt = nil
	user.ResetProofID = jti
	if err := s.users.Update(ctx, user); err != nil {
		return "", err
	}
	s.logger.Info("reset code verified", zap.String("email", user.Email))
	return proof, nil
}

// ConsumeForPasswordChange sets a new password. The proof token from Verify
// must be presented and its jti must match the stored one, so skipping the
// verify step or replaying an old proof fails. The confirmation check runs
// first, regardless of OTP state.
func (s *OTPService) ConsumeForPasswordChange(ctx context.Context, email, proofToken, newPassword, confirmPassword string) error {
	if newPassword == "" || newPassword != confirmPassword {
		return apperr.ErrMismatch
	}
	email = normalizeEmail(email)
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return apperr.ErrNotFound
	}

	jti, err := validateResetProof(proofToken, email, s.jwtKey, s.now)
	if err != nil || user.ResetProofID == "" || jti != user.ResetProofID {
		return apperr.ErrUnauthorized
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	user.ResetProofID = ""
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}
	s.logger.Info("password changed", zap.String("email", user.Email))
	return nil
}
