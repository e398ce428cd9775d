package student

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"CampusHire/internal/apperr"
)

type Service struct {
	store  Store
	logger *zap.Logger
}

func NewService(store Store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Save creates or updates the caller's own profile.
func (s *Service) Save(ctx context.Context, userID primitive.ObjectID, req UpsertProfileRequest) (*Profile, error) {
	if req.Degree == "" || req.Branch == "" {
		return nil, errors.New("degree and branch are required")
	}
	if req.CGPA < 0 || req.CGPA > 10 {
		return nil, errors.New("cgpa must be between 0 and 10")
	}
	profile := &Profile{
		ID:             primitive.NewObjectID(),
		UserID:         userID,
		Degree:         req.Degree,
		Branch:         req.Branch,
		GraduationYear: req.GraduationYear,
		CGPA:           req.CGPA,
		Skills:         req.Skills,
		ResumeURL:      req.ResumeURL,
	}
	if existing, err := s.store.FindByUser(ctx, userID); err != nil {
		return nil, err
	} else if existing != nil {
		profile.ID = existing.ID
	}
	if err := s.store.Upsert(ctx, profile); err != nil {
		return nil, err
	}
	s.logger.Info("student profile saved", zap.String("user", userID.Hex()))
	return profile, nil
}

func (s *Service) Get(ctx context.Context, userID primitive.ObjectID) (*Profile, error) {
	profile, err := s.store.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperr.ErrNotFound
	}
	return profile, nil
}

func (s *Service) List(ctx context.Context) ([]*Profile, error) {
	return s.store.FindAll(ctx)
}
