package application

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"CampusHire/internal/apperr"
	"CampusHire/internal/job"
	"CampusHire/internal/notification"
)

type Service struct {
	store    Store
	jobs     job.Store
	notifier *notification.Service
	logger   *zap.Logger
	now      func() time.Time
}

func NewService(store Store, jobs job.Store, notifier *notification.Service, logger *zap.Logger) *Service {
	return &Service{store: store, jobs: jobs, notifier: notifier, logger: logger, now: time.Now}
}

// Apply files an application for the calling student. Duplicate applications
// and applications past the job deadline are rejected.
func (s *Service) Apply(ctx context.Context, studentID primitive.ObjectID, jobIDHex string) (*Application, error) {
	jobID, err := primitive.ObjectIDFromHex(jobIDHex)
	if err != nil {
		return nil, apperr.ErrNotFound
	}
	posting, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if posting == nil {
		return nil, apperr.ErrNotFound
	}
	if !posting.Deadline.IsZero() && s.now().After(posting.Deadline) {
		return nil, apperr.ErrDeadlinePassed
	}

	app := &Application{
		ID:        primitive.NewObjectID(),
		JobID:     jobID,
		StudentID: studentID,
		Status:    StatusApplied,
		AppliedAt: s.now(),
		UpdatedAt: s.now(),
	}
	if err := s.store.Create(ctx, app); err != nil {
		return nil, err
	}
	s.logger.Info("application filed",
		zap.String("student", studentID.Hex()), zap.String("job", jobID.Hex()))
	return app, nil
}

func (s *Service) ListForStudent(ctx context.Context, studentID primitive.ObjectID) ([]*Application, error) {
	return s.store.FindByStudent(ctx, studentID)
}

func (s *Service) ListForJob(ctx context.Context, jobID primitive.ObjectID) ([]*Application, error) {
	return s.store.FindByJob(ctx, jobID)
}

func validStatus(status string) bool {
	switch status {
	case StatusApplied, StatusShortlisted, StatusRejected, StatusHired:
		return true
	}
	return false
}

// UpdateStatus is the admin review action. The student gets an in-app
// notification about the change.
func (s *Service) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*Application, error) {
	if !validStatus(status) {
		return nil, apperr.ErrMismatch
	}
	app, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, apperr.ErrNotFound
	}
	app.Status = status
	app.UpdatedAt = s.now()
	if err := s.store.Update(ctx, app); err != nil {
		return nil, err
	}

	posting, err := s.jobs.FindByID(ctx, app.JobID)
	title := "a job you applied to"
	if err == nil && posting != nil {
		title = posting.Title
	}
	s.notifier.Notify(ctx, app.StudentID, fmt.Sprintf("Your application for %s is now %s", title, status))
	return app, nil
}
