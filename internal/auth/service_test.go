package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"CampusHire/internal/apperr"
)

func newTestUserService(store UserStore, cascades ...Cascade) *UserService {
	return NewUserService(store, testKey, cascades, zap.NewNop())
}

func TestRegisterAndAuthenticate(t *testing.T) {
	ctx := context.Background()
	store := newFakeUserStore()
	svc := newTestUserService(store)

	err := svc.Register(ctx, RegisterRequest{Name: "Asha", Email: "A@X.com", Password: "hunter2", Role: RoleStudent})
	require.NoError(t, err)

	// Email was normalized at registration.
	token, err := svc.Authenticate(ctx, Credential{Email: "a@x.com", Password: "hunter2"})
	require.NoError(t, err)

	claims, err := ValidateJWT(token, testKey)
	require.NoError(t, err)
	require.Equal(t, RoleStudent, claims.Role)
	require.Equal(t, "Asha", claims.Name)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := newTestUserService(newFakeUserStore())

	req := RegisterRequest{Name: "Asha", Email: "a@x.com", Password: "pw", Role: RoleStudent}
	require.NoError(t, svc.Register(ctx, req))
	require.ErrorIs(t, svc.Register(ctx, req), apperr.ErrConflict)
}

func TestRegister_InvalidRole(t *testing.T) {
	svc := newTestUserService(newFakeUserStore())
	err := svc.Register(context.Background(), RegisterRequest{Name: "n", Email: "e@x.com", Password: "pw", Role: "root"})
	require.Error(t, err)
}

// Unknown email and wrong password must be indistinguishable.
func TestAuthenticate_UniformFailure(t *testing.T) {
	ctx := context.Background()
	store := newFakeUserStore()
	svc := newTestUserService(store)
	require.NoError(t, svc.Register(ctx, RegisterRequest{Name: "Asha", Email: "a@x.com", Password: "hunter2", Role: RoleStudent}))

	_, errUnknown := svc.Authenticate(ctx, Credential{Email: "ghost@x.com", Password: "hunter2"})
	_, errWrongPw := svc.Authenticate(ctx, Credential{Email: "a@x.com", Password: "wrong"})

	require.ErrorIs(t, errUnknown, apperr.ErrInvalidCredentials)
	require.ErrorIs(t, errWrongPw, apperr.ErrInvalidCredentials)
	require.Equal(t, errUnknown.Error(), errWrongPw.Error())
}

// Federated accounts have no password hash and can never log in with one.
func TestAuthenticate_NoPasswordHash(t *testing.T) {
	store := newFakeUserStore(&User{ID: primitive.NewObjectID(), Name: "Fed", Email: "fed@x.com", Role: RoleStudent})
	svc := newTestUserService(store)

	_, err := svc.Authenticate(context.Background(), Credential{Email: "fed@x.com", Password: ""})
	require.ErrorIs(t, err, apperr.ErrInvalidCredentials)
}

type recordingCascade struct {
	deleted []primitive.ObjectID
}

func (r *recordingCascade) DeleteForUser(_ context.Context, userID primitive.ObjectID) error {
	r.deleted = append(r.deleted, userID)
	return nil
}

func TestDeleteAccount_RunsCascades(t *testing.T) {
	ctx := context.Background()
	user := testUser("a@x.com")
	store := newFakeUserStore(user)
	cascade := &recordingCascade{}
	svc := newTestUserService(store, cascade)

	require.NoError(t, svc.DeleteAccount(ctx, user.ID))
	require.Equal(t, []primitive.ObjectID{user.ID}, cascade.deleted)

	found, err := store.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.Nil(t, found)
}

func TestDeleteAccount_NotFound(t *testing.T) {
	svc := newTestUserService(newFakeUserStore())
	err := svc.DeleteAccount(context.Background(), primitive.NewObjectID())
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestSweeper_ClearsOnlyExpiredCodes(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)

	expired := testUser("old@x.com")
	expired.ResetCode = "111111"
	expired.ResetCodeExpiry = &past
	active := testUser("new@x.com")
	active.ResetCode = "222222"
	active.ResetCodeExpiry = &future

	store := newFakeUserStore(expired, active)
	cleared, err := store.ClearExpiredResetCodes(ctx, now)
	require.NoError(t, err)
	require.Equal(t, int64(1), cleared)
	require.Empty(t, store.users["old@x.com"].ResetCode)
	require.Equal(t, "222222", store.users["new@x.com"].ResetCode)
}
