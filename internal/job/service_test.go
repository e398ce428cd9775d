package job

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"CampusHire/internal/apperr"
	"CampusHire/internal/company"
)

type fakeJobStore struct {
	jobs map[primitive.ObjectID]*Job
}

func (s *fakeJobStore) Create(_ context.Context, j *Job) error {
	cp := *j
	s.jobs[j.ID] = &cp
	return nil
}

func (s *fakeJobStore) FindAll(_ context.Context) ([]*Job, error) {
	var out []*Job
	for _, j := range s.jobs {
		out = append(out, j)
	}
	return out, nil
}

func (s *fakeJobStore) FindByID(_ context.Context, id primitive.ObjectID) (*Job, error) {
	j, ok := s.jobs[id]
	if !ok {
		return nil, nil
	}
	cp := *j
	return &cp, nil
}

func (s *fakeJobStore) Update(_ context.Context, j *Job) error {
	if _, ok := s.jobs[j.ID]; !ok {
		return apperr.ErrNotFound
	}
	cp := *j
	s.jobs[j.ID] = &cp
	return nil
}

func (s *fakeJobStore) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := s.jobs[id]; !ok {
		return apperr.ErrNotFound
	}
	delete(s.jobs, id)
	return nil
}

type fakeCompanyStore struct {
	companies map[primitive.ObjectID]*company.CompanyProfile
}

func (s *fakeCompanyStore) Create(_ context.Context, c *company.CompanyProfile) error {
	s.companies[c.ID] = c
	return nil
}

func (s *fakeCompanyStore) FindAll(_ context.Context) ([]*company.CompanyProfile, error) {
	return nil, nil
}

func (s *fakeCompanyStore) FindByID(_ context.Context, id primitive.ObjectID) (*company.CompanyProfile, error) {
	c, ok := s.companies[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}

func (s *fakeCompanyStore) Update(_ context.Context, c *company.CompanyProfile) error { return nil }

func (s *fakeCompanyStore) Delete(_ context.Context, id primitive.ObjectID) error { return nil }

type recordingCascade struct {
	deleted []primitive.ObjectID
}

func (r *recordingCascade) DeleteForJob(_ context.Context, jobID primitive.ObjectID) error {
	r.deleted = append(r.deleted, jobID)
	return nil
}

func newTestService() (*Service, *fakeJobStore, *recordingCascade, primitive.ObjectID) {
	store := &fakeJobStore{jobs: make(map[primitive.ObjectID]*Job)}
	companies := &fakeCompanyStore{companies: make(map[primitive.ObjectID]*company.CompanyProfile)}
	cascade := &recordingCascade{}

	acme := &company.CompanyProfile{ID: primitive.NewObjectID(), Name: "Acme"}
	companies.companies[acme.ID] = acme

	return NewService(store, companies, cascade, zap.NewNop()), store, cascade, acme.ID
}

func validRequest(companyID primitive.ObjectID) UpsertJobRequest {
	return UpsertJobRequest{
		Title:     "Backend Engineer",
		CompanyID: companyID.Hex(),
		Type:      "full-time",
		Location:  "Pune",
		Deadline:  time.Now().Add(7 * 24 * time.Hour),
	}
}

func TestCreateJob(t *testing.T) {
	svc, store, _, companyID := newTestService()
	postedBy := primitive.NewObjectID()

	created, err := svc.Create(context.Background(), validRequest(companyID), postedBy)
	require.NoError(t, err)
	require.Equal(t, postedBy, created.PostedBy)
	require.Len(t, store.jobs, 1)
}

func TestCreateJob_UnknownCompany(t *testing.T) {
	svc, _, _, _ := newTestService()
	req := validRequest(primitive.NewObjectID())

	_, err := svc.Create(context.Background(), req, primitive.NewObjectID())
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCreateJob_InvalidType(t *testing.T) {
	svc, _, _, companyID := newTestService()
	req := validRequest(companyID)
	req.Type = "gig"

	_, err := svc.Create(context.Background(), req, primitive.NewObjectID())
	require.Error(t, err)
}

func TestDeleteJob_CascadesApplications(t *testing.T) {
	ctx := context.Background()
	svc, store, cascade, companyID := newTestService()

	created, err := svc.Create(ctx, validRequest(companyID), primitive.NewObjectID())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	require.Empty(t, store.jobs)
	require.Equal(t, []primitive.ObjectID{created.ID}, cascade.deleted)
}

func TestDeleteJob_NotFound(t *testing.T) {
	svc, _, cascade, _ := newTestService()
	err := svc.Delete(context.Background(), primitive.NewObjectID())
	require.ErrorIs(t, err, apperr.ErrNotFound)
	require.Empty(t, cascade.deleted)
}
