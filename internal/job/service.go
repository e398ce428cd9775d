package job

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"CampusHire/internal/apperr"
	"CampusHire/internal/company"
)

// ApplicationCascade removes the applications attached to a job when the job
// is deleted. Implemented by the application repository.
type ApplicationCascade interface {
	DeleteForJob(ctx context.Context, jobID primitive.ObjectID) error
}

type Service struct {
	store        Store
	companies    company.Store
	applications ApplicationCascade
	logger       *zap.Logger
}

func NewService(store Store, companies company.Store, applications ApplicationCascade, logger *zap.Logger) *Service {
	return &Service{store: store, companies: companies, applications: applications, logger: logger}
}

func (s *Service) validate(ctx context.Context, req UpsertJobRequest) (primitive.ObjectID, error) {
	if req.Title == "" {
		return primitive.NilObjectID, errors.New("job title is required")
	}
	if req.Type != "full-time" && req.Type != "internship" {
		return primitive.NilObjectID, errors.New("job type must be full-time or internship")
	}
	companyID, err := primitive.ObjectIDFromHex(req.CompanyID)
	if err != nil {
		return primitive.NilObjectID, errors.New("invalid company id")
	}
	existing, err := s.companies.FindByID(ctx, companyID)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if existing == nil {
		return primitive.NilObjectID, apperr.ErrNotFound
	}
	return companyID, nil
}

func (s *Service) Create(ctx context.Context, req UpsertJobRequest, postedBy primitive.ObjectID) (*Job, error) {
	companyID, err := s.validate(ctx, req)
	if err != nil {
		return nil, err
	}
	job := &Job{
		ID:          primitive.NewObjectID(),
		Title:       req.Title,
		CompanyID:   companyID,
		Description: req.Description,
		Location:    req.Location,
		Type:        req.Type,
		SalaryMin:   req.SalaryMin,
		SalaryMax:   req.SalaryMax,
		Deadline:    req.Deadline,
		PostedBy:    postedBy,
		CreatedAt:   time.Now(),
	}
	if err := s.store.Create(ctx, job); err != nil {
		return nil, err
	}
	s.logger.Info("job posted", zap.String("title", job.Title), zap.String("company", companyID.Hex()))
	return job, nil
}

func (s *Service) List(ctx context.Context) ([]*Job, error) {
	return s.store.FindAll(ctx)
}

func (s *Service) Get(ctx context.Context, id primitive.ObjectID) (*Job, error) {
	job, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, apperr.ErrNotFound
	}
	return job, nil
}

func (s *Service) Update(ctx context.Context, id primitive.ObjectID, req UpsertJobRequest) (*Job, error) {
	job, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	companyID, err := s.validate(ctx, req)
	if err != nil {
		return nil, err
	}
	job.Title = req.Title
	job.CompanyID = companyID
	job.Description = req.Description
	job.Location = req.Location
	job.Type = req.Type
	job.SalaryMin = req.SalaryMin
	job.SalaryMax = req.SalaryMax
	job.Deadline = req.Deadline
	if err := s.store.Update(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// Delete removes the job and every application filed against it.
func (s *Service) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.applications.DeleteForJob(ctx, id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("job deleted", zap.String("job", id.Hex()))
	return nil
}
