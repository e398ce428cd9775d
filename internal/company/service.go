package company

import (
	"context"
	"errors"
	"time"

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

func (s *Service) Create(ctx context.Context, req UpsertCompanyRequest) (*CompanyProfile, error) {
	if req.Name == "" {
		return nil, errors.New("company name is required")
	}
	company := &CompanyProfile{
		ID:          primitive.NewObjectID(),
		Name:        req.Name,
		Website:     req.Website,
		Industry:    req.Industry,
		Description: req.Description,
		CreatedAt:   time.Now(),
	}
	if err := s.store.Create(ctx, company); err != nil {
		return nil, err
	}
	s.logger.Info("company created", zap.String("name", company.Name))
	return company, nil
}

func (s *Service) List(ctx context.Context) ([]*CompanyProfile, error) {
	return s.store.FindAll(ctx)
}

func (s *Service) Get(ctx context.Context, id primitive.ObjectID) (*CompanyProfile, error) {
	company, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, apperr.ErrNotFound
	}
	return company, nil
}

func (s *Service) Update(ctx context.Context, id primitive.ObjectID, req UpsertCompanyRequest) (*CompanyProfile, error) {
	company, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != "" {
		company.Name = req.Name
	}
	company.Website = req.Website
	company.Industry = req.Industry
	company.Description = req.Description
	if err := s.store.Update(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

func (s *Service) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.store.Delete(ctx, id)
}
