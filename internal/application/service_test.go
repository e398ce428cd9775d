package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"CampusHire/internal/apperr"
	"CampusHire/internal/job"
	"CampusHire/internal/notification"
)

type fakeAppStore struct {
	apps map[primitive.ObjectID]*Application
}

func newFakeAppStore() *fakeAppStore {
	return &fakeAppStore{apps: make(map[primitive.ObjectID]*Application)}
}

func (s *fakeAppStore) Create(_ context.Context, app *Application) error {
	for _, existing := range s.apps {
		if existing.JobID == app.JobID && existing.StudentID == app.StudentID {
			return apperr.ErrConflict
		}
	}
	cp := *app
	s.apps[app.ID] = &cp
	return nil
}

func (s *fakeAppStore) FindByID(_ context.Context, id primitive.ObjectID) (*Application, error) {
	app, ok := s.apps[id]
	if !ok {
		return nil, nil
	}
	cp := *app
	return &cp, nil
}

func (s *fakeAppStore) FindByStudent(_ context.Context, studentID primitive.ObjectID) ([]*Application, error) {
	var out []*Application
	for _, app := range s.apps {
		if app.StudentID == studentID {
			out = append(out, app)
		}
	}
	return out, nil
}

func (s *fakeAppStore) FindByJob(_ context.Context, jobID primitive.ObjectID) ([]*Application, error) {
	var out []*Application
	for _, app := range s.apps {
		if app.JobID == jobID {
			out = append(out, app)
		}
	}
	return out, nil
}

func (s *fakeAppStore) Update(_ context.Context, app *Application) error {
	if _, ok := s.apps[app.ID]; !ok {
		return apperr.ErrNotFound
	}
	cp := *app
	s.apps[app.ID] = &cp
	return nil
}

func (s *fakeAppStore) DeleteForJob(_ context.Context, jobID primitive.ObjectID) error {
	for id, app := range s.apps {
		if app.JobID == jobID {
			delete(s.apps, id)
		}
	}
	return nil
}

func (s *fakeAppStore) DeleteForUser(_ context.Context, userID primitive.ObjectID) error {
	for id, app := range s.apps {
		if app.StudentID == userID {
			delete(s.apps, id)
		}
	}
	return nil
}

type fakeJobStore struct {
	jobs map[primitive.ObjectID]*job.Job
}

func (s *fakeJobStore) Create(_ context.Context, j *job.Job) error {
	s.jobs[j.ID] = j
	return nil
}

func (s *fakeJobStore) FindAll(_ context.Context) ([]*job.Job, error) {
	var out []*job.Job
	for _, j := range s.jobs {
		out = append(out, j)
	}
	return out, nil
}

func (s *fakeJobStore) FindByID(_ context.Context, id primitive.ObjectID) (*job.Job, error) {
	j, ok := s.jobs[id]
	if !ok {
		return nil, nil
	}
	return j, nil
}

func (s *fakeJobStore) Update(_ context.Context, j *job.Job) error {
	s.jobs[j.ID] = j
	return nil
}

func (s *fakeJobStore) Delete(_ context.Context, id primitive.ObjectID) error {
	delete(s.jobs, id)
	return nil
}

type fakeNotifStore struct {
	created []*notification.Notification
}

func (s *fakeNotifStore) Create(_ context.Context, n *notification.Notification) error {
	s.created = append(s.created, n)
	return nil
}

func (s *fakeNotifStore) FindByUser(_ context.Context, _ primitive.ObjectID) ([]*notification.Notification, error) {
	return s.created, nil
}

func (s *fakeNotifStore) MarkRead(_ context.Context, _, _ primitive.ObjectID) error { return nil }

func (s *fakeNotifStore) Delete(_ context.Context, _, _ primitive.ObjectID) error { return nil }

func (s *fakeNotifStore) DeleteForUser(_ context.Context, _ primitive.ObjectID) error { return nil }

func newTestService(t *testing.T) (*Service, *fakeAppStore, *fakeJobStore, *fakeNotifStore, *job.Job) {
	t.Helper()
	apps := newFakeAppStore()
	jobs := &fakeJobStore{jobs: make(map[primitive.ObjectID]*job.Job)}
	notifs := &fakeNotifStore{}

	posting := &job.Job{
		ID:       primitive.NewObjectID(),
		Title:    "Backend Engineer",
		Type:     "full-time",
		Deadline: time.Now().Add(24 * time.Hour),
	}
	jobs.jobs[posting.ID] = posting

	svc := NewService(apps, jobs, notification.NewService(notifs, zap.NewNop()), zap.NewNop())
	return svc, apps, jobs, notifs, posting
}

func TestApply(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _, posting := newTestService(t)
	studentID := primitive.NewObjectID()

	app, err := svc.Apply(ctx, studentID, posting.ID.Hex())
	require.NoError(t, err)
	require.Equal(t, StatusApplied, app.Status)
	require.Equal(t, posting.ID, app.JobID)
}

func TestApply_DuplicateIsConflict(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _, posting := newTestService(t)
	studentID := primitive.NewObjectID()

	_, err := svc.Apply(ctx, studentID, posting.ID.Hex())
	require.NoError(t, err)

	_, err = svc.Apply(ctx, studentID, posting.ID.Hex())
	require.ErrorIs(t, err, apperr.ErrConflict)
}

func TestApply_UnknownJob(t *testing.T) {
	svc, _, _, _, _ := newTestService(t)
	_, err := svc.Apply(context.Background(), primitive.NewObjectID(), primitive.NewObjectID().Hex())
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestApply_PastDeadline(t *testing.T) {
	ctx := context.Background()
	svc, _, jobs, _, posting := newTestService(t)
	posting.Deadline = time.Now().Add(-time.Hour)
	jobs.jobs[posting.ID] = posting

	_, err := svc.Apply(ctx, primitive.NewObjectID(), posting.ID.Hex())
	require.ErrorIs(t, err, apperr.ErrDeadlinePassed)
	require.NotErrorIs(t, err, apperr.ErrExpired, "closed postings must not report the reset-code error")
}

func TestUpdateStatus_NotifiesStudent(t *testing.T) {
	ctx := context.Background()
	svc, _, _, notifs, posting := newTestService(t)
	studentID := primitive.NewObjectID()

	app, err := svc.Apply(ctx, studentID, posting.ID.Hex())
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(ctx, app.ID, StatusShortlisted)
	require.NoError(t, err)
	require.Equal(t, StatusShortlisted, updated.Status)

	require.Len(t, notifs.created, 1)
	require.Equal(t, studentID, notifs.created[0].UserID)
	require.Contains(t, notifs.created[0].Message, "Backend Engineer")
	require.Contains(t, notifs.created[0].Message, StatusShortlisted)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _, posting := newTestService(t)

	app, err := svc.Apply(ctx, primitive.NewObjectID(), posting.ID.Hex())
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, app.ID, "promoted")
	require.ErrorIs(t, err, apperr.ErrMismatch)
}

func TestUpdateStatus_UnknownApplication(t *testing.T) {
	svc, _, _, _, _ := newTestService(t)
	_, err := svc.UpdateStatus(context.Background(), primitive.NewObjectID(), StatusRejected)
	require.ErrorIs(t, err, apperr.ErrNotFound)
}
