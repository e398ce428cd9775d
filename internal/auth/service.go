package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"CampusHire/internal/apperr"
)

// normalizeEmail is the one canonical form for account lookups: every entry
// point that takes an email (registration, login, the whole OTP flow) must
// pass it through here, or mixed-case registrants become unfindable.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Cascade removes the records a domain package keeps for a user; account
// deletion runs every registered cascade before dropping the credential
// record.
type Cascade interface {
	DeleteForUser(ctx context.Context, userID primitive.ObjectID) error
}

// UserService covers registration, login and account deletion.
type UserService struct {
	users    UserStore
	jwtKey   []byte
	cascades []Cascade
	logger   *zap.Logger
}

func NewUserService(users UserStore, jwtKey []byte, cascades []Cascade, logger *zap.Logger) *UserService {
	return &UserService{users: users, jwtKey: jwtKey, cascades: cascades, logger: logger}
}

func (s *UserService) Register(ctx context.Context, req RegisterRequest) error {
	req.Email = normalizeEmail(req.Email)
	if req.Email == "" || req.Name == "" || req.Password == "" {
		return errors.New("name, email and password are required")
	}
	if req.Role != RoleStudent && req.Role != RoleAdmin {
		return errors.New("role must be student or admin")
	}

	existing, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return apperr.ErrConflict
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return err
	}
	user := &User{
		ID:           primitive.NewObjectID(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
		CreatedAt:    time.Now(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return err
	}
	s.logger.Info("user registered", zap.String("email", user.Email), zap.String("role", user.Role))
	return nil
}

// Authenticate checks credentials and mints a session token. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *UserService) Authenticate(ctx context.Context, cred Credential) (string, error) {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(cred.Email))
	if err != nil {
		return "", err
	}
	if user == nil || user.PasswordHash == "" || !CheckPasswordHash(cred.Password, user.PasswordHash) {
		return "", apperr.ErrInvalidCredentials
	}

	token, err := GenerateJWT(user.ID.Hex(), user.Name, user.Role, s.jwtKey, SessionTTL)
	if err != nil {
		return "", err
	}
	return token, nil
}

func (s *UserService) GetByID(ctx context.Context, id primitive.ObjectID) (*User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.ErrNotFound
	}
	return user, nil
}

// DeleteAccount removes the user and everything hanging off it: student
// profile, applications, notifications.
func (s *UserService) DeleteAccount(ctx context.Context, id primitive.ObjectID) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return apperr.ErrNotFound
	}
	for _, c := range s.cascades {
		if err := c.DeleteForUser(ctx, id); err != nil {
			return err
		}
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("account deleted", zap.String("email", user.Email))
	return nil
}
